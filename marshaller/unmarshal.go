// Package marshaller maps XML documents onto presence models and back.
//
// A presence model is a hand-written struct per element shape that embeds CoreModel and holds
// every attribute and optional child in a Node, recording whether the member appeared in the
// source independently of its value. Models read themselves through an ElementReader and write
// themselves through an ElementWriter; the writer consults the Present flag of every member so a
// deserialize/serialize cycle reproduces exactly the members the source had.
package marshaller

import (
	"context"
	"fmt"
	"io"

	"github.com/speakeasy-api/gamexml/errors"
	"github.com/speakeasy-api/gamexml/validation"
	"github.com/speakeasy-api/gamexml/xmlcfg"
	"github.com/speakeasy-api/gamexml/xmltree"
)

// Unmarshal reads a complete document from r and decodes it into a new presence model.
func Unmarshal[T any, PT rootElementPtr[T]](ctx context.Context, r io.Reader) (*T, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return Deserialize[T, PT](ctx, data)
}

// Deserialize decodes a complete document into a new presence model.
//
// Malformed XML fails with a *validation.ParseError. A root element with the wrong name or missing
// required members fail with *validation.SchemaMismatchError values, joined and ordered by source
// position. The formatting preferences of data are stored as the Config of the returned model.
func Deserialize[T any, PT rootElementPtr[T]](ctx context.Context, data []byte) (*T, error) {
	doc, err := xmltree.Parse(data)
	if err != nil {
		return nil, err
	}

	out, err := FromDocument[T, PT](ctx, doc)
	if err != nil {
		return nil, err
	}
	PT(out).GetCoreModel().SetConfig(xmlcfg.GetConfigFromDoc(data))

	return out, nil
}

// FromDocument decodes an already parsed document into a new presence model.
func FromDocument[T any, PT rootElementPtr[T]](ctx context.Context, doc *xmltree.Document) (*T, error) {
	if doc == nil || doc.Root == nil {
		return nil, errors.New("document has no root element")
	}

	expected := PT(new(T)).XMLName()
	if doc.Root.Name != expected {
		return nil, &validation.SchemaMismatchError{
			Path:   doc.Root.Name,
			Member: expected,
			Kind:   validation.MemberRoot,
			Line:   doc.Root.Line,
			Column: doc.Root.Column,
		}
	}

	strict := xmlcfg.GetConfigFromContext(ctx).Strict

	out, errs, err := decodeElement[T, PT](ctx, doc.Root, "/"+expected, strict)
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		validation.SortErrors(errs)
		return nil, errors.Join(errs...)
	}

	cfg := xmlcfg.GetDefaultConfig()
	cfg.Declaration = doc.HasDeclaration
	if doc.Declaration != "" {
		cfg.DeclarationText = doc.Declaration
	}
	core := PT(out).GetCoreModel()
	core.SetConfig(cfg)
	core.Doctype = doc.Doctype

	return out, nil
}
