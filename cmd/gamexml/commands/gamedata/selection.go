package gamedata

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/speakeasy-api/gamexml/diff"
	"github.com/speakeasy-api/jsonpath/pkg/jsonpath"
	"github.com/speakeasy-api/jsonpath/pkg/jsonpath/config"
	"gopkg.in/yaml.v3"
)

// selectFromReport evaluates a JSONPath expression against the YAML form of report.
func selectFromReport(report *diff.Report, expr string) ([]any, error) {
	path, err := jsonpath.NewPath(expr, config.WithPropertyNameExtension())
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath %q: %w", expr, err)
	}

	var body yaml.Node
	if err := body.Encode(report); err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	root := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{&body}}

	matches := path.Query(root)
	results := make([]any, 0, len(matches))
	for _, m := range matches {
		var v any
		if err := m.Decode(&v); err != nil {
			return nil, fmt.Errorf("failed to decode selected node: %w", err)
		}
		results = append(results, v)
	}

	return results, nil
}

// writeSelection writes selected values as a JSON array or, for the text and yaml formats, a YAML sequence.
func writeSelection(w io.Writer, selected []any, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(selected, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode selection as json: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case "text", "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(selected); err != nil {
			return fmt.Errorf("failed to encode selection as yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown report format %q (expected text, json or yaml)", format)
	}
}
