// Package cmdutil provides shared CLI utilities for the gamexml commands.
package cmdutil

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/speakeasy-api/gamexml/errors"
	"github.com/speakeasy-api/gamexml/xmlcfg"
	"github.com/spf13/cobra"
)

// StdinIndicator is the conventional Unix indicator to read from stdin.
const StdinIndicator = "-"

// IsStdin returns true if the given path indicates stdin should be used.
func IsStdin(path string) bool {
	return path == StdinIndicator
}

// StdinIsPiped returns true when stdin is connected to a pipe (not a terminal).
func StdinIsPiped() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) == 0
}

// NewLogger returns a debug logger writing to w when verbose is set, and a logger that discards everything otherwise.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Logger returns the logger selected by the persistent --verbose flag.
func Logger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return NewLogger(cmd.ErrOrStderr(), verbose)
}

// LoadConfigFile reads serialization overrides from a YAML file on top of the default configuration.
func LoadConfigFile(path string) (*xmlcfg.Config, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	return xmlcfg.LoadConfig(f, xmlcfg.GetDefaultConfig())
}

// Context returns the context of cmd carrying the configuration named by the persistent --config flag, if any.
func Context(cmd *cobra.Command) (context.Context, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return ctx, nil
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		return nil, err
	}
	Logger(cmd).Debug("loaded xml config", "path", path, "indentation", cfg.Indentation, "style", cfg.IndentationStyle, "strict", cfg.Strict)

	return xmlcfg.ContextWithConfig(ctx, cfg), nil
}

// Dief prints a formatted message to stderr and exits with code 1.
func Dief(f string, args ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", args...)
	os.Exit(1)
}

// Die prints an error to stderr and exits with code 1.
func Die(err error) {
	WriteError(os.Stderr, err)
	os.Exit(1)
}

// WriteError writes err to w, one line per error when several were joined, e.g. every missing
// required member of a document.
func WriteError(w io.Writer, err error) {
	for _, e := range errors.UnwrapErrors(err) {
		fmt.Fprintf(w, "Error: %v\n", e)
	}
}
