package values

import "github.com/speakeasy-api/gamexml/marshaller"

// ChildView maps an optional child of a presence model onto a view, nil when the child is absent.
// A present child without a value maps to the view of an empty element.
func ChildView[C, V any](n marshaller.Node[*C], fn func(*C) (*V, error)) (*V, error) {
	if !n.Present {
		return nil, nil
	}
	c := n.Value
	if c == nil {
		c = new(C)
	}
	return fn(c)
}

// ChildNode maps an optional view child onto a presence member, absent when v is nil.
func ChildNode[V, C any](v *V, fn func(*V) *C) marshaller.Node[*C] {
	if v == nil {
		return marshaller.Node[*C]{}
	}
	return marshaller.NewNode(fn(v))
}
