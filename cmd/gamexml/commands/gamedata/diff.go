package gamedata

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/speakeasy-api/gamexml/cmd/gamexml/commands/cmdutil"
	"github.com/speakeasy-api/gamexml/diff"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var errDocumentsDiffer = errors.New("documents differ")

var diffCmd = &cobra.Command{
	Use:   "diff <expected> <actual>",
	Short: "Compare two XML documents structurally",
	Long: `Compare two XML documents element by element and print a report of their differences.

Attribute order, indentation, comments and the XML declaration are ignored; element order is
not. Same-named siblings are matched by position. The report lists missing and extra elements,
element name changes, missing, extra and changed attributes, and changed text.

Exits with status 1 when the documents differ.`,
	Example: `  # Human readable report
  gamexml diff original/looknfeel.xml edited/looknfeel.xml

  # Machine readable report, ignoring xmlns declarations
  gamexml diff a.xml b.xml --format json --ignore-namespaces

  # Only the paths of removed elements
  gamexml diff a.xml b.xml --select '$.missingNodes[*]'`,
	Args: cobra.ExactArgs(2),
	Run:  runDiff,
}

var (
	diffFormatFlag string
	diffSelectFlag string
)

func init() {
	diffCmd.Flags().StringVarP(&diffFormatFlag, "format", "f", "text", "report format: text, json or yaml")
	diffCmd.Flags().StringVar(&diffSelectFlag, "select", "", "JSONPath expression selecting part of the report, e.g. $.missingNodes[*]")
	addCompareFlags(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) {
	logger := cmdutil.Logger(cmd)

	expected, err := os.ReadFile(filepath.Clean(args[0]))
	if err != nil {
		cmdutil.Dief("Failed to read %q: %v", args[0], err)
	}
	actual, err := os.ReadFile(filepath.Clean(args[1]))
	if err != nil {
		cmdutil.Dief("Failed to read %q: %v", args[1], err)
	}
	logger.Debug("comparing documents", "expected", args[0], "actual", args[1])

	report, err := diff.Compare(expected, actual, compareOptions(cmd)...)
	if err != nil {
		cmdutil.Die(err)
	}

	if diffSelectFlag != "" {
		selected, err := selectFromReport(report, diffSelectFlag)
		if err != nil {
			cmdutil.Die(err)
		}
		if err := writeSelection(cmd.OutOrStdout(), selected, diffFormatFlag); err != nil {
			cmdutil.Die(err)
		}
	} else if err := writeReport(cmd.OutOrStdout(), report, diffFormatFlag); err != nil {
		cmdutil.Die(err)
	}
	if !report.IsStructurallyEqual() {
		os.Exit(1)
	}
}

func writeReport(w io.Writer, report *diff.Report, format string) error {
	switch format {
	case "text", "":
		_, err := io.WriteString(w, report.String())
		return err
	case "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report as json: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report as yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown report format %q (expected text, json or yaml)", format)
	}
}

func addCompareFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("ignore-namespaces", false, "do not compare xmlns declarations")
	cmd.Flags().Bool("booleans", false, "treat equivalent boolean spellings such as 1 and true as equal")
	cmd.Flags().Float64("tolerance", 0, "treat numbers within this absolute difference as equal")
}

func compareOptions(cmd *cobra.Command) []diff.Option {
	var opts []diff.Option
	if ignore, _ := cmd.Flags().GetBool("ignore-namespaces"); ignore {
		opts = append(opts, diff.WithIgnoreNamespaceDeclarations())
	}
	if booleans, _ := cmd.Flags().GetBool("booleans"); booleans {
		opts = append(opts, diff.WithBooleanSpellings())
	}
	if cmd.Flags().Changed("tolerance") {
		tolerance, _ := cmd.Flags().GetFloat64("tolerance")
		opts = append(opts, diff.WithNumericTolerance(tolerance))
	}
	return opts
}
