package marshaller

import (
	"context"
	"runtime"

	"github.com/speakeasy-api/gamexml/validation"
	"github.com/speakeasy-api/gamexml/xmltree"
	"golang.org/x/sync/errgroup"
)

// concurrentDecodeThreshold is the collection size from which elements are decoded in parallel.
const concurrentDecodeThreshold = 64

// Unmarshaler is implemented by presence models that can be read from an element.
type Unmarshaler interface {
	CoreModeler
	UnmarshalElement(r *ElementReader)
}

// Marshaler is implemented by presence models that can be written to an element.
type Marshaler interface {
	CoreModeler
	MarshalElement(w *ElementWriter)
}

// Element is a presence model for a single element shape.
type Element interface {
	Unmarshaler
	Marshaler
}

// RootElement is a presence model for the root element of a document.
type RootElement interface {
	Element
	XMLName() string
}

// NamedElement is an element of a mixed-kind collection that records which element name it was read from.
type NamedElement interface {
	Element
	ElementName() string
}

type elementPtr[T any] interface {
	*T
	Element
}

type namedElementPtr[T any] interface {
	*T
	NamedElement
}

type rootElementPtr[T any] interface {
	*T
	RootElement
}

// ElementReader gives an UnmarshalElement implementation access to the members of one element.
// Every member obtained through the reader is marked consumed; whatever is left when the model
// returns is preserved as Extras, or reported as unexpected in strict mode.
type ElementReader struct {
	ctx    context.Context
	node   *xmltree.Node
	path   string
	strict bool

	childPaths   []string
	usedAttrs    []bool
	usedChildren []bool
	usedText     bool

	errs    []error
	hardErr error
}

func newElementReader(ctx context.Context, node *xmltree.Node, path string, strict bool) *ElementReader {
	return &ElementReader{
		ctx:          ctx,
		node:         node,
		path:         path,
		strict:       strict,
		usedAttrs:    make([]bool, len(node.Attrs)),
		usedChildren: make([]bool, len(node.Children)),
	}
}

func (r *ElementReader) Context() context.Context {
	return r.ctx
}

// Name returns the qualified name of the element being read.
func (r *ElementReader) Name() string {
	return r.node.Name
}

// Path returns the location of the element being read, e.g. /base/widgets/widget[2].
func (r *ElementReader) Path() string {
	return r.path
}

// Attr reads an optional attribute.
func (r *ElementReader) Attr(name string, out *Node[string]) {
	*out = Node[string]{}
	for i, a := range r.node.Attrs {
		if a.Name == name && !r.usedAttrs[i] {
			r.usedAttrs[i] = true
			out.Set(a.Value)
			return
		}
	}
}

// RequiredAttr reads an attribute the shape requires, recording a schema mismatch when it is absent.
func (r *ElementReader) RequiredAttr(name string, out *Node[string]) {
	r.Attr(name, out)
	if !out.Present {
		r.missing(name, validation.MemberAttribute)
	}
}

// Text reads the character data of the element.
func (r *ElementReader) Text(out *Node[string]) {
	*out = Node[string]{}
	r.usedText = true
	if r.node.HasText {
		out.Set(r.node.Text)
	}
}

// Child reads the first element named name into out.
func Child[T any, PT elementPtr[T]](r *ElementReader, name string, out *Node[*T]) {
	*out = Node[*T]{}
	for i, c := range r.node.Children {
		if c.Name != name || r.usedChildren[i] {
			continue
		}
		r.usedChildren[i] = true

		v, errs, err := decodeElement[T, PT](r.ctx, c, r.childPath(i), r.strict)
		r.collect(errs, err)
		out.Set(v)
		return
	}
}

// RequiredChild reads an element the shape requires, recording a schema mismatch when it is absent.
func RequiredChild[T any, PT elementPtr[T]](r *ElementReader, name string, out *Node[*T]) {
	Child[T, PT](r, name, out)
	if !out.Present {
		r.missing(name, validation.MemberElement)
	}
}

// Children reads every element named name in document order. The result is nil when there are none.
func Children[T any, PT elementPtr[T]](r *ElementReader, name string, out *[]*T) {
	*out = decodeMatching[T, PT](r, func(n string) bool { return n == name })
}

// ChildrenOf reads every element whose name is one of names into a single collection, keeping the
// relative document order across names. Elements are expected to record the name they were read from.
func ChildrenOf[T any, PT namedElementPtr[T]](r *ElementReader, names []string, out *[]*T) {
	*out = decodeMatching[T, PT](r, func(n string) bool {
		for _, name := range names {
			if n == name {
				return true
			}
		}
		return false
	})
}

func decodeMatching[T any, PT elementPtr[T]](r *ElementReader, match func(string) bool) []*T {
	var idxs []int
	for i, c := range r.node.Children {
		if !r.usedChildren[i] && match(c.Name) {
			r.usedChildren[i] = true
			idxs = append(idxs, i)
		}
	}
	if len(idxs) == 0 {
		return nil
	}

	results := make([]*T, len(idxs))
	childErrs := make([][]error, len(idxs))

	decode := func(i int) error {
		idx := idxs[i]
		v, errs, err := decodeElement[T, PT](r.ctx, r.node.Children[idx], r.childPath(idx), r.strict)
		results[i] = v
		childErrs[i] = errs
		return err
	}

	if len(idxs) < concurrentDecodeThreshold {
		for i := range idxs {
			if err := decode(i); err != nil {
				r.collect(nil, err)
				return nil
			}
		}
	} else {
		// child paths are computed lazily and must not be initialised from several goroutines
		r.paths()

		g, ctx := errgroup.WithContext(r.ctx)
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i := range idxs {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				return decode(i)
			})
		}
		if err := g.Wait(); err != nil {
			r.collect(nil, err)
			return nil
		}
	}

	for _, errs := range childErrs {
		r.collect(errs, nil)
	}
	return results
}

func decodeElement[T any, PT elementPtr[T]](ctx context.Context, node *xmltree.Node, path string, strict bool) (*T, []error, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	v := PT(new(T))
	core := v.GetCoreModel()
	core.Namespaces = xmltree.CloneAttrs(node.Namespaces)
	if len(node.Children) > 0 {
		core.ChildOrder = make([]string, len(node.Children))
		for i, c := range node.Children {
			core.ChildOrder[i] = c.Name
		}
	}

	r := newElementReader(ctx, node, path, strict)
	v.UnmarshalElement(r)
	if r.hardErr != nil {
		return nil, nil, r.hardErr
	}
	r.finish(core)

	return (*T)(v), r.errs, nil
}

func (r *ElementReader) paths() []string {
	if r.childPaths == nil {
		r.childPaths = xmltree.ChildPaths(r.path, r.node)
	}
	return r.childPaths
}

func (r *ElementReader) childPath(i int) string {
	return r.paths()[i]
}

func (r *ElementReader) collect(errs []error, err error) {
	if err != nil && r.hardErr == nil {
		r.hardErr = err
	}
	r.errs = append(r.errs, errs...)
}

func (r *ElementReader) missing(member string, kind validation.MemberKind) {
	r.errs = append(r.errs, &validation.SchemaMismatchError{
		Path:   r.path,
		Member: member,
		Kind:   kind,
		Line:   r.node.Line,
		Column: r.node.Column,
	})
}

func (r *ElementReader) unexpected(member string, kind validation.MemberKind, line, column int) {
	r.errs = append(r.errs, &validation.SchemaMismatchError{
		Path:       r.path,
		Member:     member,
		Kind:       kind,
		Unexpected: true,
		Line:       line,
		Column:     column,
	})
}

// finish moves every member the model did not consume into the element's Extras.
func (r *ElementReader) finish(core *CoreModel) {
	for i, a := range r.node.Attrs {
		if r.usedAttrs[i] {
			continue
		}
		if r.strict {
			r.unexpected(a.Name, validation.MemberAttribute, r.node.Line, r.node.Column)
			continue
		}
		core.Extras.Attrs = append(core.Extras.Attrs, a)
	}

	for i, c := range r.node.Children {
		if r.usedChildren[i] {
			continue
		}
		if r.strict {
			r.unexpected(c.Name, validation.MemberElement, c.Line, c.Column)
			continue
		}
		el := c.Clone()
		el.ClearPositions()
		core.Extras.Elements = append(core.Extras.Elements, el)
	}

	if r.node.HasText && !r.usedText {
		if r.strict {
			r.unexpected("", validation.MemberText, r.node.Line, r.node.Column)
		} else {
			core.Extras.Text.Set(r.node.Text)
		}
	}
}
