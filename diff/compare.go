// Package diff compares two XML documents structurally.
//
// Documents are compared element by element rather than byte by byte: attribute order,
// indentation, comments and the XML declaration do not matter, while element order does.
// Siblings are matched positionally within groups of the same name, so the i-th <widget> of one
// document is compared with the i-th <widget> of the other.
package diff

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/speakeasy-api/gamexml/sequencedmap"
	"github.com/speakeasy-api/gamexml/values"
	"github.com/speakeasy-api/gamexml/xmltree"
	"golang.org/x/sync/errgroup"
)

// Pair is a pair of documents compared by CompareAll.
type Pair struct {
	Name     string
	Expected []byte
	Actual   []byte
}

// Compare parses both documents and reports how b differs from a.
// It only fails when a document is not well-formed.
func Compare(a, b []byte, opts ...Option) (*Report, error) {
	docA, err := xmltree.Parse(a)
	if err != nil {
		return nil, fmt.Errorf("failed to parse expected document: %w", err)
	}
	docB, err := xmltree.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("failed to parse actual document: %w", err)
	}
	return CompareDocuments(docA, docB, opts...), nil
}

// AreStructurallyEqual reports whether the two documents have no structural difference.
func AreStructurallyEqual(a, b []byte, opts ...Option) (bool, error) {
	report, err := Compare(a, b, opts...)
	if err != nil {
		return false, err
	}
	return report.IsStructurallyEqual(), nil
}

// CompareAll compares independent pairs of documents concurrently. Reports are returned in the order of pairs.
func CompareAll(ctx context.Context, pairs []Pair, opts ...Option) ([]*Report, error) {
	reports := make([]*Report, len(pairs))

	g, ctx := errgroup.WithContext(ctx)
	for i, p := range pairs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report, err := Compare(p.Expected, p.Actual, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", p.Name, err)
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

// CompareDocuments reports how document b differs from document a.
func CompareDocuments(a, b *xmltree.Document, opts ...Option) *Report {
	c := &comparer{
		opts:   newOptions(opts),
		report: &Report{},
	}

	rootA, rootB := rootOf(a), rootOf(b)

	c.report.NodeCountDifference = c.countNodes(rootB) - c.countNodes(rootA)
	c.report.AttributeCountDifference = c.countAttrs(rootB) - c.countAttrs(rootA)

	switch {
	case rootA == nil && rootB == nil:
	case rootA == nil:
		c.report.ExtraNodes = append(c.report.ExtraNodes, "/"+rootB.Name)
	case rootB == nil:
		c.report.MissingNodes = append(c.report.MissingNodes, "/"+rootA.Name)
	case rootA.Name != rootB.Name:
		c.report.NodeNameDifferences = append(c.report.NodeNameDifferences, NodeNameDifference{
			Path:     "/",
			Position: 1,
			Expected: rootA.Name,
			Actual:   rootB.Name,
		})
	default:
		c.element(rootA, rootB, "/"+rootA.Name)
	}

	return c.report
}

func rootOf(doc *xmltree.Document) *xmltree.Node {
	if doc == nil {
		return nil
	}
	return doc.Root
}

type comparer struct {
	opts   options
	report *Report
}

func (c *comparer) element(a, b *xmltree.Node, path string) {
	if !c.opts.ignoreNamespaces {
		c.attrs(a.Namespaces, b.Namespaces, path)
	}
	c.attrs(a.Attrs, b.Attrs, path)
	c.text(a, b, path)
	c.children(a, b, path)
}

func (c *comparer) attrs(a, b []xmltree.Attr, path string) {
	for _, attrA := range a {
		valueB, ok := lookup(b, attrA.Name)
		if !ok {
			c.report.MissingAttributes = append(c.report.MissingAttributes, AttributeRef{Path: path, Attribute: attrA.Name, Value: attrA.Value})
			continue
		}
		if !c.valuesEqual(attrA.Value, valueB) {
			c.report.AttributeValueDifferences = append(c.report.AttributeValueDifferences, AttributeValueDifference{
				Path:      path,
				Attribute: attrA.Name,
				Expected:  attrA.Value,
				Actual:    valueB,
			})
		}
	}
	for _, attrB := range b {
		if _, ok := lookup(a, attrB.Name); !ok {
			c.report.ExtraAttributes = append(c.report.ExtraAttributes, AttributeRef{Path: path, Attribute: attrB.Name, Value: attrB.Value})
		}
	}
}

func lookup(attrs []xmltree.Attr, name string) (string, bool) {
	for _, a := range attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

func (c *comparer) text(a, b *xmltree.Node, path string) {
	if a.HasText == b.HasText && (!a.HasText || c.valuesEqual(a.Text, b.Text)) {
		return
	}
	c.report.TextDifferences = append(c.report.TextDifferences, TextDifference{
		Path:     path,
		Expected: a.Text,
		Actual:   b.Text,
	})
}

func (c *comparer) children(a, b *xmltree.Node, path string) {
	groupsA := groupByName(a.Children)
	groupsB := groupByName(b.Children)

	names := sequencedmap.New[string, struct{}]()
	for name := range groupsA.Keys() {
		names.Set(name, struct{}{})
	}
	for name := range groupsB.Keys() {
		names.Set(name, struct{}{})
	}

	balanced := true
	for name := range names.Keys() {
		childrenA := groupsA.GetOrZero(name)
		childrenB := groupsB.GetOrZero(name)
		count := max(len(childrenA), len(childrenB))
		if len(childrenA) != len(childrenB) {
			balanced = false
		}

		for i := range count {
			childPath := path + "/" + xmltree.PathStep(name, i+1, count)
			switch {
			case i >= len(childrenB):
				c.report.MissingNodes = append(c.report.MissingNodes, childPath)
			case i >= len(childrenA):
				c.report.ExtraNodes = append(c.report.ExtraNodes, childPath)
			default:
				c.element(childrenA[i], childrenB[i], childPath)
			}
		}
	}

	// same elements in a different interleaving across names
	if balanced {
		for i := range a.Children {
			if a.Children[i].Name != b.Children[i].Name {
				c.report.NodeNameDifferences = append(c.report.NodeNameDifferences, NodeNameDifference{
					Path:     path,
					Position: i + 1,
					Expected: a.Children[i].Name,
					Actual:   b.Children[i].Name,
				})
			}
		}
	}
}

func groupByName(nodes []*xmltree.Node) *sequencedmap.Map[string, []*xmltree.Node] {
	groups := sequencedmap.New[string, []*xmltree.Node]()
	for _, n := range nodes {
		groups.Set(n.Name, append(groups.GetOrZero(n.Name), n))
	}
	return groups
}

func (c *comparer) valuesEqual(a, b string) bool {
	if a == b {
		return true
	}

	if c.opts.booleans {
		boolA, okA := values.ParseBool(a)
		boolB, okB := values.ParseBool(b)
		if okA && okB && boolA == boolB {
			return true
		}
	}

	if c.opts.useTolerance {
		numA, errA := strconv.ParseFloat(strings.TrimSpace(a), 64)
		numB, errB := strconv.ParseFloat(strings.TrimSpace(b), 64)
		if errA == nil && errB == nil && math.Abs(numA-numB) <= c.opts.tolerance {
			return true
		}
	}

	return false
}

func (c *comparer) countNodes(n *xmltree.Node) int {
	count := 0
	for range n.All() {
		count++
	}
	return count
}

func (c *comparer) countAttrs(n *xmltree.Node) int {
	count := 0
	for el := range n.All() {
		count += len(el.Attrs)
		if !c.opts.ignoreNamespaces {
			count += len(el.Namespaces)
		}
	}
	return count
}
