package marshaller

import (
	"bytes"
	"context"
	"io"
	"reflect"

	"github.com/speakeasy-api/gamexml/errors"
	"github.com/speakeasy-api/gamexml/validation"
	"github.com/speakeasy-api/gamexml/xmlcfg"
	"github.com/speakeasy-api/gamexml/xmltree"
)

// ErrNilModel is returned when marshaling a nil model.
const ErrNilModel = errors.Error("model is nil")

// Marshal writes model as a complete document to w.
//
// Formatting follows the config attached to ctx, otherwise the config stored on the model when it
// was unmarshaled, otherwise the defaults. A required member that is not present fails with
// *validation.SchemaMismatchError values and nothing is written.
func Marshal(ctx context.Context, model RootElement, w io.Writer) error {
	doc, err := ToDocument(ctx, model)
	if err != nil {
		return err
	}
	return xmltree.Encode(w, doc, resolveConfig(ctx, model))
}

// Serialize is a convenience wrapper around Marshal.
func Serialize(ctx context.Context, model RootElement) ([]byte, error) {
	var buf bytes.Buffer
	if err := Marshal(ctx, model, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToDocument builds the document tree of model without encoding it.
func ToDocument(ctx context.Context, model RootElement) (*xmltree.Document, error) {
	if model == nil || (reflect.ValueOf(model).Kind() == reflect.Pointer && reflect.ValueOf(model).IsNil()) {
		return nil, ErrNilModel
	}

	name := model.XMLName()
	root, errs := encodeElement(ctx, name, "/"+name, model)
	if len(errs) > 0 {
		validation.SortErrors(errs)
		return nil, errors.Join(errs...)
	}

	cfg := resolveConfig(ctx, model)
	return &xmltree.Document{
		HasDeclaration: cfg.Declaration,
		Declaration:    cfg.DeclarationText,
		Doctype:        model.GetCoreModel().Doctype,
		Root:           root,
	}, nil
}

func resolveConfig(ctx context.Context, model RootElement) *xmlcfg.Config {
	if xmlcfg.HasConfig(ctx) {
		return xmlcfg.GetConfigFromContext(ctx)
	}
	if cfg := model.GetCoreModel().GetConfig(); cfg != nil {
		return cfg
	}
	return xmlcfg.GetDefaultConfig()
}
