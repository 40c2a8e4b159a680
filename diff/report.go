package diff

import (
	"fmt"
	"strings"
)

// NodeNameDifference is a position where both documents have an element but with different names.
type NodeNameDifference struct {
	// Path is the parent of the differing elements.
	Path string `json:"path" yaml:"path"`
	// Position is the 1-based index of the element among its siblings.
	Position int    `json:"position" yaml:"position"`
	Expected string `json:"expected" yaml:"expected"`
	Actual   string `json:"actual" yaml:"actual"`
}

// AttributeRef is an attribute present in only one of the documents.
type AttributeRef struct {
	Path      string `json:"path" yaml:"path"`
	Attribute string `json:"attribute" yaml:"attribute"`
	Value     string `json:"value" yaml:"value"`
}

type AttributeValueDifference struct {
	Path      string `json:"path" yaml:"path"`
	Attribute string `json:"attribute" yaml:"attribute"`
	Expected  string `json:"expected" yaml:"expected"`
	Actual    string `json:"actual" yaml:"actual"`
}

type TextDifference struct {
	Path     string `json:"path" yaml:"path"`
	Expected string `json:"expected" yaml:"expected"`
	Actual   string `json:"actual" yaml:"actual"`
}

// Report describes how a document B differs from a document A.
// Missing means present in A and absent from B, Extra the reverse.
type Report struct {
	// NodeCountDifference is the number of elements in B minus the number of elements in A.
	NodeCountDifference int `json:"nodeCountDifference" yaml:"nodeCountDifference"`
	// AttributeCountDifference is the number of attributes in B minus the number of attributes in A.
	AttributeCountDifference  int                        `json:"attributeCountDifference" yaml:"attributeCountDifference"`
	MissingNodes              []string                   `json:"missingNodes" yaml:"missingNodes"`
	ExtraNodes                []string                   `json:"extraNodes" yaml:"extraNodes"`
	NodeNameDifferences       []NodeNameDifference       `json:"nodeNameDifferences" yaml:"nodeNameDifferences"`
	MissingAttributes         []AttributeRef             `json:"missingAttributes" yaml:"missingAttributes"`
	ExtraAttributes           []AttributeRef             `json:"extraAttributes" yaml:"extraAttributes"`
	AttributeValueDifferences []AttributeValueDifference `json:"attributeValueDifferences" yaml:"attributeValueDifferences"`
	TextDifferences           []TextDifference           `json:"textDifferences" yaml:"textDifferences"`
}

// IsStructurallyEqual reports whether the report records no difference at all.
func (r *Report) IsStructurallyEqual() bool {
	return r.NodeCountDifference == 0 &&
		r.AttributeCountDifference == 0 &&
		len(r.MissingNodes) == 0 &&
		len(r.ExtraNodes) == 0 &&
		len(r.NodeNameDifferences) == 0 &&
		len(r.MissingAttributes) == 0 &&
		len(r.ExtraAttributes) == 0 &&
		len(r.AttributeValueDifferences) == 0 &&
		len(r.TextDifferences) == 0
}

// String renders the report as a human readable listing.
func (r *Report) String() string {
	if r.IsStructurallyEqual() {
		return "documents are structurally equal\n"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "node count difference: %+d\n", r.NodeCountDifference)
	fmt.Fprintf(&sb, "attribute count difference: %+d\n", r.AttributeCountDifference)

	for _, p := range r.MissingNodes {
		fmt.Fprintf(&sb, "missing node: %s\n", p)
	}
	for _, p := range r.ExtraNodes {
		fmt.Fprintf(&sb, "extra node: %s\n", p)
	}
	for _, d := range r.NodeNameDifferences {
		fmt.Fprintf(&sb, "node name difference: %s position %d: expected <%s>, got <%s>\n", d.Path, d.Position, d.Expected, d.Actual)
	}
	for _, a := range r.MissingAttributes {
		fmt.Fprintf(&sb, "missing attribute: %s@%s=%q\n", a.Path, a.Attribute, a.Value)
	}
	for _, a := range r.ExtraAttributes {
		fmt.Fprintf(&sb, "extra attribute: %s@%s=%q\n", a.Path, a.Attribute, a.Value)
	}
	for _, d := range r.AttributeValueDifferences {
		fmt.Fprintf(&sb, "attribute value difference: %s@%s: expected %q, got %q\n", d.Path, d.Attribute, d.Expected, d.Actual)
	}
	for _, d := range r.TextDifferences {
		fmt.Fprintf(&sb, "text difference: %s: expected %q, got %q\n", d.Path, d.Expected, d.Actual)
	}

	return sb.String()
}
