package gamedata

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/speakeasy-api/gamexml/cmd/gamexml/commands/cmdutil"
	"github.com/speakeasy-api/gamexml/families"
	"github.com/speakeasy-api/gamexml/marshaller"
)

// Processor handles reading a game data file and writing the result of a command.
type Processor struct {
	InputFile     string
	OutputFile    string
	ReadFromStdin bool
	WriteToStdout bool

	// Optional overrides for testing. When nil, os.Stdin/os.Stdout/os.Stderr are used.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

func (p *Processor) stdin() io.Reader {
	if p.Stdin != nil {
		return p.Stdin
	}
	return os.Stdin
}

func (p *Processor) stdout() io.Writer {
	if p.Stdout != nil {
		return p.Stdout
	}
	return os.Stdout
}

func (p *Processor) stderr() io.Writer {
	if p.Stderr != nil {
		return p.Stderr
	}
	return os.Stderr
}

func (p *Processor) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return cmdutil.NewLogger(p.stderr(), false)
}

// NewProcessor creates a new processor with the given input and output files.
// Pass "-" as inputFile to read from stdin.
func NewProcessor(inputFile, outputFile string, writeInPlace bool) (*Processor, error) {
	readFromStdin := cmdutil.IsStdin(inputFile)

	if writeInPlace {
		if readFromStdin {
			return nil, errors.New("cannot use --write flag when reading from stdin")
		}
		if outputFile != "" {
			return nil, errors.New("cannot specify output file when using --write flag")
		}
		outputFile = inputFile
	}

	return &Processor{
		InputFile:     inputFile,
		OutputFile:    outputFile,
		ReadFromStdin: readFromStdin,
		WriteToStdout: outputFile == "",
	}, nil
}

// ReadInput reads the raw bytes of the input file or stdin.
func (p *Processor) ReadInput() ([]byte, error) {
	if p.ReadFromStdin {
		data, err := io.ReadAll(p.stdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		p.logger().Debug("read document", "source", "stdin", "bytes", len(data))
		return data, nil
	}

	cleanInputFile := filepath.Clean(p.InputFile)
	data, err := os.ReadFile(cleanInputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	p.logger().Debug("read document", "source", cleanInputFile, "bytes", len(data))
	return data, nil
}

// LoadModel reads the input and decodes it into the presence model of family.
func (p *Processor) LoadModel(ctx context.Context, family *families.Family) (marshaller.RootElement, []byte, error) {
	data, err := p.ReadInput()
	if err != nil {
		return nil, nil, err
	}

	m, err := family.Deserialize(ctx, data)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to deserialize %s document: %w", family.Name, err)
	}
	p.logger().Debug("deserialized document", "family", family.Name, "root", m.XMLName())

	return m, data, nil
}

// WriteOutput writes data to the output file, or to stdout when there is none.
func (p *Processor) WriteOutput(data []byte) error {
	if p.WriteToStdout {
		_, err := p.stdout().Write(data)
		return err
	}

	cleanOutputFile := filepath.Clean(p.OutputFile)
	if err := os.WriteFile(cleanOutputFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(p.stderr(), "Document written to: %s\n", cleanOutputFile)
	return nil
}

// resolveFamily takes the family from the first of two arguments, or detects it from the file name.
func resolveFamily(args []string) (*families.Family, string, error) {
	if len(args) >= 2 {
		family, err := families.Lookup(args[0])
		if err != nil {
			return nil, "", err
		}
		return family, args[1], nil
	}

	if len(args) == 0 {
		return nil, "", errors.New("a file is required")
	}
	if cmdutil.IsStdin(args[0]) {
		return nil, "", errors.New("a family is required when reading from stdin")
	}

	family, err := families.ForFile(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("%w (name the family explicitly)", err)
	}
	return family, args[0], nil
}
