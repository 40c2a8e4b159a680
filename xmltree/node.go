// Package xmltree is a small ordered DOM for XML documents.
//
// It keeps exactly the information needed for structural comparison and faithful
// re-serialization: element names as written (prefix included), attributes and namespace
// declarations in source order, element children in order, and significant text.
// Whitespace-only character data and comments are not part of the tree.
package xmltree

import (
	"iter"
	"strings"
)

// Attr is an attribute or namespace declaration with its qualified name as written in the source.
type Attr struct {
	Name  string
	Value string
}

// Node is an element.
type Node struct {
	Name string
	// Attrs holds the attributes of the element in source order, excluding namespace declarations.
	Attrs []Attr
	// Namespaces holds the xmlns and xmlns:* declarations of the element in source order.
	Namespaces []Attr
	Children   []*Node
	// Text is the concatenation of the element's non whitespace-only character data.
	Text    string
	HasText bool
	// Line and Column are the 1-based position of the start tag, 0 for nodes built in memory.
	Line   int
	Column int
}

// NewNode creates an element with the provided name.
func NewNode(name string) *Node {
	return &Node{Name: name}
}

// Document is a parsed XML document.
type Document struct {
	// HasDeclaration reports whether the source started with an <?xml ...?> declaration.
	HasDeclaration bool
	// Declaration is the content of the declaration, e.g. version="1.0" encoding="utf-8".
	Declaration string
	// Doctype is the raw content of a <!DOCTYPE ...> directive without the surrounding <! >.
	Doctype string
	Root    *Node
}

// LocalName returns the name of the element without its namespace prefix.
func (n *Node) LocalName() string {
	if n == nil {
		return ""
	}
	if i := strings.IndexByte(n.Name, ':'); i >= 0 {
		return n.Name[i+1:]
	}
	return n.Name
}

// Attr returns the value of the attribute with the given qualified name.
func (n *Node) Attr(name string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr adds the attribute or replaces the value of an existing attribute with the same name.
func (n *Node) SetAttr(name, value string) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
}

// AddChild appends children to the element.
func (n *Node) AddChild(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// SetText sets the element's text content.
func (n *Node) SetText(text string) {
	n.Text = text
	n.HasText = true
}

// Child returns the first child element with the given name.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns all child elements with the given name in document order.
func (n *Node) ChildrenNamed(name string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// IsEmpty reports whether the element has no attributes, children or text.
func (n *Node) IsEmpty() bool {
	return len(n.Attrs) == 0 && len(n.Namespaces) == 0 && len(n.Children) == 0 && !n.HasText
}

// Clone returns a deep copy of the element.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	c.Attrs = cloneAttrs(n.Attrs)
	c.Namespaces = cloneAttrs(n.Namespaces)
	if n.Children != nil {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}
	return &c
}

// ClearPositions zeroes the source position of the element and all of its descendants.
func (n *Node) ClearPositions() {
	for el := range n.All() {
		el.Line = 0
		el.Column = 0
	}
}

// All iterates over the element and all of its descendants in document order.
func (n *Node) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		walk(n, yield)
	}
}

func walk(n *Node, yield func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !yield(n) {
		return false
	}
	for _, c := range n.Children {
		if !walk(c, yield) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	c := *d
	c.Root = d.Root.Clone()
	return &c
}

func cloneAttrs(attrs []Attr) []Attr {
	if attrs == nil {
		return nil
	}
	out := make([]Attr, len(attrs))
	copy(out, attrs)
	return out
}

// CloneAttrs returns a copy of attrs, preserving nil.
func CloneAttrs(attrs []Attr) []Attr {
	return cloneAttrs(attrs)
}
