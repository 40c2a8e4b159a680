package marshaller

// Node is a member of an element together with whether it was present in the source document.
//
// A Node that is not Present is never serialized, whatever its Value. A Node that is Present is
// always serialized, even when its Value is the zero value, so present-but-empty members survive
// a round trip.
type Node[V any] struct {
	Value   V
	Present bool
}

// NewNode returns a present Node holding value.
func NewNode[V any](value V) Node[V] {
	return Node[V]{Value: value, Present: true}
}

func (n Node[V]) GetValue() V {
	return n.Value
}

// GetValueOrZero returns the value if the member is present and the zero value otherwise.
func (n Node[V]) GetValueOrZero() V {
	if !n.Present {
		var zero V
		return zero
	}
	return n.Value
}

func (n Node[V]) IsPresent() bool {
	return n.Present
}

// Set assigns a value and marks the member present.
func (n *Node[V]) Set(value V) {
	n.Value = value
	n.Present = true
}

// SetPresent changes only the presence of the member. An absent member keeps its value in the
// presence model, but a convenience view does not carry it, see Clear.
func (n *Node[V]) SetPresent(present bool) {
	n.Present = present
}

// Clear marks the member absent and drops its value.
func (n *Node[V]) Clear() {
	var zero V
	n.Value = zero
	n.Present = false
}
