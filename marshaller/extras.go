package marshaller

import "github.com/speakeasy-api/gamexml/xmltree"

// Extras holds the members of an element that its shape does not describe.
// Unknown attributes are written after the known ones. Unknown elements return to their source
// position among their siblings, see CoreModel.ChildOrder.
type Extras struct {
	Attrs    []xmltree.Attr
	Elements []*xmltree.Node
	Text     Node[string]
}

func (e Extras) IsEmpty() bool {
	return len(e.Attrs) == 0 && len(e.Elements) == 0 && !e.Text.Present
}

func (e Extras) Clone() Extras {
	out := Extras{
		Attrs: xmltree.CloneAttrs(e.Attrs),
		Text:  e.Text,
	}
	if e.Elements != nil {
		out.Elements = make([]*xmltree.Node, len(e.Elements))
		for i, el := range e.Elements {
			out.Elements[i] = el.Clone()
		}
	}
	return out
}
