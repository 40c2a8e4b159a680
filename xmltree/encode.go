package xmltree

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/speakeasy-api/gamexml/xmlcfg"
)

// Encode writes doc to w using the formatting preferences in cfg.
// Namespace declarations are written before the attributes of each element.
func Encode(w io.Writer, doc *Document, cfg *xmlcfg.Config) error {
	if doc == nil || doc.Root == nil {
		return errors.New("document has no root element")
	}
	if cfg == nil {
		cfg = xmlcfg.GetDefaultConfig()
	}

	e := &encoder{
		w:      bufio.NewWriter(w),
		cfg:    cfg,
		indent: strings.Repeat(cfg.IndentationStyle.ToIndent(), cfg.Indentation),
	}
	e.pretty = cfg.IndentationStyle != xmlcfg.IndentationStyleNone

	first := true
	if cfg.Declaration {
		decl := cfg.DeclarationText
		if decl == "" {
			decl = xmlcfg.DefaultDeclaration
		}
		e.str("<?xml ")
		e.str(decl)
		e.str("?>")
		first = false
	}
	if doc.Doctype != "" {
		e.newline(first, 0)
		e.str("<!")
		e.str(doc.Doctype)
		e.str(">")
		first = false
	}

	e.newline(first, 0)
	e.node(doc.Root, 0)

	if cfg.TrailingNewline {
		e.str("\n")
	}

	return e.w.Flush()
}

type encoder struct {
	w      *bufio.Writer
	cfg    *xmlcfg.Config
	indent string
	pretty bool
}

func (e *encoder) str(s string) {
	// bufio.Writer keeps the first error and reports it from Flush
	_, _ = e.w.WriteString(s)
}

func (e *encoder) newline(first bool, depth int) {
	if first || !e.pretty {
		return
	}
	e.str("\n")
	for range depth {
		e.str(e.indent)
	}
}

func (e *encoder) node(n *Node, depth int) {
	e.str("<")
	e.str(n.Name)
	for _, a := range n.Namespaces {
		e.attr(a)
	}
	for _, a := range n.Attrs {
		e.attr(a)
	}

	if len(n.Children) == 0 && !n.HasText {
		switch {
		case !e.cfg.SelfClosing:
			e.str("></")
			e.str(n.Name)
			e.str(">")
		case e.cfg.SpaceBeforeSelfClose:
			e.str(" />")
		default:
			e.str("/>")
		}
		return
	}

	e.str(">")
	if n.HasText {
		e.str(escapeText(n.Text))
	}

	for _, c := range n.Children {
		e.newline(false, depth+1)
		e.node(c, depth+1)
	}

	if len(n.Children) > 0 {
		e.newline(false, depth)
	}
	e.str("</")
	e.str(n.Name)
	e.str(">")
}

func (e *encoder) attr(a Attr) {
	e.str(" ")
	e.str(a.Name)
	e.str(`="`)
	e.str(escapeAttr(a.Value))
	e.str(`"`)
}

var (
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"\t", "&#x9;",
		"\n", "&#xA;",
		"\r", "&#xD;",
	)
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\r", "&#xD;",
	)
)

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// EncodeToString is a convenience wrapper around Encode.
func EncodeToString(doc *Document, cfg *xmlcfg.Config) (string, error) {
	var sb strings.Builder
	if err := Encode(&sb, doc, cfg); err != nil {
		return "", err
	}
	return sb.String(), nil
}
