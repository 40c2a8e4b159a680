package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/speakeasy-api/gamexml/validation"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// Parse decodes a complete XML document.
//
// Malformed input fails with a *validation.ParseError carrying the position where decoding stopped.
// Start and end tags are matched explicitly because the decoder runs in raw mode to keep
// namespace prefixes exactly as written.
func Parse(data []byte) (*Document, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	p := &parser{
		dec: xml.NewDecoder(bytes.NewReader(data)),
		doc: &Document{},
	}
	p.dec.Strict = true

	if err := p.run(); err != nil {
		return nil, err
	}

	return p.doc, nil
}

// ParseReader reads r to EOF and parses the result.
func ParseReader(r io.Reader) (*Document, []byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read xml: %w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, data, err
	}
	return doc, data, nil
}

type parser struct {
	dec   *xml.Decoder
	doc   *Document
	stack []*Node
	seen  int // tokens seen before the root element
}

func (p *parser) run() error {
	for {
		line, column := p.dec.InputPos()

		tok, err := p.dec.RawToken()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return p.finish()
			}
			return p.syntaxError(err)
		}

		switch tok := tok.(type) {
		case xml.ProcInst:
			if err := p.procInst(tok, line, column); err != nil {
				return err
			}
		case xml.Directive:
			if p.doc.Root == nil && len(p.stack) == 0 {
				d := strings.TrimSpace(string(tok))
				if strings.HasPrefix(d, "DOCTYPE") {
					p.doc.Doctype = d
				}
			}
		case xml.Comment:
		case xml.CharData:
			if err := p.charData(tok, line, column); err != nil {
				return err
			}
		case xml.StartElement:
			if err := p.startElement(tok, line, column); err != nil {
				return err
			}
		case xml.EndElement:
			if err := p.endElement(tok, line, column); err != nil {
				return err
			}
		}

		if p.doc.Root == nil {
			p.seen++
		}
	}
}

func (p *parser) procInst(tok xml.ProcInst, line, column int) error {
	if tok.Target != "xml" {
		return nil
	}
	if p.seen > 0 || p.doc.Root != nil {
		return p.errorAt(line, column, "xml declaration allowed only at the start of the document")
	}
	p.doc.HasDeclaration = true
	p.doc.Declaration = strings.TrimSpace(string(tok.Inst))
	return nil
}

func (p *parser) charData(tok xml.CharData, line, column int) error {
	if len(bytes.TrimSpace(tok)) == 0 {
		return nil
	}
	if len(p.stack) == 0 {
		return p.errorAt(line, column, "character data outside of the root element")
	}

	top := p.stack[len(p.stack)-1]
	top.Text += string(tok)
	top.HasText = true
	return nil
}

func (p *parser) startElement(tok xml.StartElement, line, column int) error {
	if len(p.stack) == 0 && p.doc.Root != nil {
		return p.errorAt(line, column, fmt.Sprintf("unexpected element <%s> after the root element", qualifiedName(tok.Name)))
	}

	n := &Node{
		Name:   qualifiedName(tok.Name),
		Line:   line,
		Column: column,
	}

	seen := make(map[string]struct{}, len(tok.Attr))
	for _, a := range tok.Attr {
		name := qualifiedName(a.Name)
		if _, dup := seen[name]; dup {
			return p.errorAt(line, column, fmt.Sprintf("attribute %q redefined on <%s>", name, n.Name))
		}
		seen[name] = struct{}{}

		attr := Attr{Name: name, Value: a.Value}
		if isNamespaceDeclaration(a.Name) {
			n.Namespaces = append(n.Namespaces, attr)
		} else {
			n.Attrs = append(n.Attrs, attr)
		}
	}

	if len(p.stack) == 0 {
		p.doc.Root = n
	} else {
		parent := p.stack[len(p.stack)-1]
		parent.Children = append(parent.Children, n)
	}
	p.stack = append(p.stack, n)
	return nil
}

func (p *parser) endElement(tok xml.EndElement, line, column int) error {
	name := qualifiedName(tok.Name)
	if len(p.stack) == 0 {
		return p.errorAt(line, column, fmt.Sprintf("unexpected end element </%s>", name))
	}

	top := p.stack[len(p.stack)-1]
	if top.Name != name {
		return p.errorAt(line, column, fmt.Sprintf("element <%s> closed by </%s>", top.Name, name))
	}
	p.stack = p.stack[:len(p.stack)-1]
	return nil
}

func (p *parser) finish() error {
	line, column := p.dec.InputPos()
	if len(p.stack) > 0 {
		return p.errorAt(line, column, fmt.Sprintf("unexpected EOF: element <%s> is not closed", p.stack[len(p.stack)-1].Name))
	}
	if p.doc.Root == nil {
		return p.errorAt(line, column, "no root element")
	}
	return nil
}

func (p *parser) syntaxError(err error) error {
	line, column := p.dec.InputPos()

	msg := err.Error()
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		msg = syntaxErr.Msg
		line = syntaxErr.Line
	}

	return &validation.ParseError{
		Line:    line,
		Column:  column,
		Offset:  p.dec.InputOffset(),
		Message: msg,
	}
}

func (p *parser) errorAt(line, column int, msg string) error {
	return &validation.ParseError{
		Line:    line,
		Column:  column,
		Offset:  p.dec.InputOffset(),
		Message: msg,
	}
}

func qualifiedName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

func isNamespaceDeclaration(n xml.Name) bool {
	return n.Space == "xmlns" || (n.Space == "" && n.Local == "xmlns")
}
