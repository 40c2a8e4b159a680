package marshaller

import (
	"slices"

	"github.com/speakeasy-api/gamexml/xmlcfg"
	"github.com/speakeasy-api/gamexml/xmltree"
)

// CoreModeler is implemented by every presence model through its embedded CoreModel.
type CoreModeler interface {
	GetCoreModel() *CoreModel
}

// CoreModel is embedded in every presence model and carries what the element holds besides its known members.
type CoreModel struct {
	// Namespaces are the xmlns declarations of the element in source order.
	Namespaces []xmltree.Attr
	// Extras are members of the element that are not part of its shape.
	Extras Extras
	// ChildOrder holds the names of the element's children in source order, known and unknown alike.
	// The writer puts children back in this relative order; children it does not account for follow
	// the last sibling of the same name.
	ChildOrder []string
	// Doctype is the content of the document's <!DOCTYPE ...> directive without the surrounding <! >.
	// Only set on the root model.
	Doctype string
	// Config is generally only set on the top-level model that was unmarshaled.
	Config *xmlcfg.Config
}

var _ CoreModeler = (*CoreModel)(nil)

func (c *CoreModel) GetCoreModel() *CoreModel {
	return c
}

func (c *CoreModel) GetConfig() *xmlcfg.Config {
	return c.Config
}

func (c *CoreModel) SetConfig(config *xmlcfg.Config) {
	c.Config = config
}

// Clone returns a deep copy of the metadata.
func (c CoreModel) Clone() CoreModel {
	out := CoreModel{
		Namespaces: xmltree.CloneAttrs(c.Namespaces),
		Extras:     c.Extras.Clone(),
		ChildOrder: slices.Clone(c.ChildOrder),
		Doctype:    c.Doctype,
	}
	if c.Config != nil {
		cfg := *c.Config
		out.Config = &cfg
	}
	return out
}
