package marshaller

import (
	"context"
	"slices"

	"github.com/speakeasy-api/gamexml/validation"
	"github.com/speakeasy-api/gamexml/xmltree"
)

// ElementWriter builds one element from a presence model. Members are written in the order the
// MarshalElement implementation emits them, and only when they are Present.
type ElementWriter struct {
	ctx  context.Context
	node *xmltree.Node
	path string
	errs []error
}

func (w *ElementWriter) Context() context.Context {
	return w.ctx
}

// Path returns the location of the element being written.
func (w *ElementWriter) Path() string {
	return w.path
}

// Attr writes an optional attribute if it is present.
func (w *ElementWriter) Attr(name string, n Node[string]) {
	if !n.Present {
		return
	}
	w.node.Attrs = append(w.node.Attrs, xmltree.Attr{Name: name, Value: n.Value})
}

// RequiredAttr writes an attribute the shape requires, recording a schema mismatch when it is not present.
func (w *ElementWriter) RequiredAttr(name string, n Node[string]) {
	if !n.Present {
		w.missing(name, validation.MemberAttribute)
		return
	}
	w.Attr(name, n)
}

// Text writes the character data of the element if it is present.
func (w *ElementWriter) Text(n Node[string]) {
	if n.Present {
		w.node.SetText(n.Value)
	}
}

// WriteChild writes an optional child element if it is present. A present child without a value is written as an empty element.
func WriteChild[T any, PT elementPtr[T]](w *ElementWriter, name string, n Node[*T]) {
	if !n.Present {
		return
	}
	path := w.path + "/" + name
	if n.Value == nil {
		w.node.AddChild(xmltree.NewNode(name))
		return
	}
	w.append(encodeElement(w.ctx, name, path, PT(n.Value)))
}

// WriteRequiredChild writes a child element the shape requires, recording a schema mismatch when it is not present.
func WriteRequiredChild[T any, PT elementPtr[T]](w *ElementWriter, name string, n Node[*T]) {
	if !n.Present {
		w.missing(name, validation.MemberElement)
		return
	}
	WriteChild[T, PT](w, name, n)
}

// WriteChildren writes every element of a collection under the same element name. Nil entries are skipped.
func WriteChildren[T any, PT elementPtr[T]](w *ElementWriter, name string, items []*T) {
	count := 0
	for _, item := range items {
		if item != nil {
			count++
		}
	}

	index := 0
	for _, item := range items {
		if item == nil {
			continue
		}
		index++
		path := w.path + "/" + xmltree.PathStep(name, index, count)
		w.append(encodeElement(w.ctx, name, path, PT(item)))
	}
}

// WriteNamedChildren writes a mixed-kind collection, naming each element after the kind it records.
func WriteNamedChildren[T any, PT namedElementPtr[T]](w *ElementWriter, items []*T) {
	counts := make(map[string]int, len(items))
	for _, item := range items {
		if item != nil {
			counts[PT(item).ElementName()]++
		}
	}

	seen := make(map[string]int, len(counts))
	for _, item := range items {
		if item == nil {
			continue
		}
		name := PT(item).ElementName()
		seen[name]++
		path := w.path + "/" + xmltree.PathStep(name, seen[name], counts[name])
		w.append(encodeElement(w.ctx, name, path, PT(item)))
	}
}

func (w *ElementWriter) append(node *xmltree.Node, errs []error) {
	w.node.AddChild(node)
	w.errs = append(w.errs, errs...)
}

func (w *ElementWriter) missing(member string, kind validation.MemberKind) {
	w.errs = append(w.errs, &validation.SchemaMismatchError{
		Path:   w.path,
		Member: member,
		Kind:   kind,
	})
}

func encodeElement(ctx context.Context, name, path string, m Marshaler) (*xmltree.Node, []error) {
	node := xmltree.NewNode(name)

	core := m.GetCoreModel()
	node.Namespaces = xmltree.CloneAttrs(core.Namespaces)

	w := &ElementWriter{
		ctx:  ctx,
		node: node,
		path: path,
	}
	m.MarshalElement(w)
	w.finish(core)
	node.Children = sourceOrder(node.Children, core.ChildOrder)

	return node, w.errs
}

// finish appends the preserved unknown members after the known ones.
func (w *ElementWriter) finish(core *CoreModel) {
	for _, a := range core.Extras.Attrs {
		if _, exists := w.node.Attr(a.Name); exists {
			continue
		}
		w.node.Attrs = append(w.node.Attrs, a)
	}
	for _, el := range core.Extras.Elements {
		w.node.AddChild(el.Clone())
	}
	if !w.node.HasText && core.Extras.Text.Present {
		w.node.SetText(core.Extras.Text.Value)
	}
}

// sourceOrder arranges children in the relative order recorded in order. The k-th child named n
// takes the position of the k-th n in order. Children without a recorded position are placed after
// the last placed sibling of the same name, or at the end.
func sourceOrder(children []*xmltree.Node, order []string) []*xmltree.Node {
	if len(order) == 0 || len(children) < 2 {
		return children
	}

	byName := make(map[string][]*xmltree.Node, len(order))
	for _, c := range children {
		byName[c.Name] = append(byName[c.Name], c)
	}

	out := make([]*xmltree.Node, 0, len(children))
	placed := make(map[*xmltree.Node]bool, len(children))
	for _, name := range order {
		queue := byName[name]
		if len(queue) == 0 {
			continue
		}
		out = append(out, queue[0])
		placed[queue[0]] = true
		byName[name] = queue[1:]
	}

	for _, c := range children {
		if placed[c] {
			continue
		}
		at := len(out)
		for i := len(out) - 1; i >= 0; i-- {
			if out[i].Name == c.Name {
				at = i + 1
				break
			}
		}
		out = slices.Insert(out, at, c)
	}

	return out
}
