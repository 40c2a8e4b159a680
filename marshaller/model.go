package marshaller

import (
	"github.com/speakeasy-api/gamexml/xmlcfg"
	"github.com/speakeasy-api/gamexml/xmltree"
)

// Model is embedded in convenience views. It keeps a private copy of the element metadata of the
// presence model the view was built from, so mapping the view back reproduces namespace
// declarations and preserved unknown members.
type Model struct {
	core CoreModel
}

// GetCore returns a copy of the element metadata.
func (m *Model) GetCore() CoreModel {
	return m.core.Clone()
}

// SetCore stores a copy of core.
func (m *Model) SetCore(core CoreModel) {
	m.core = core.Clone()
}

func (m *Model) GetNamespaces() []xmltree.Attr {
	return m.core.Namespaces
}

func (m *Model) SetNamespaces(namespaces []xmltree.Attr) {
	m.core.Namespaces = xmltree.CloneAttrs(namespaces)
}

func (m *Model) GetExtras() Extras {
	return m.core.Extras
}

// GetConfig returns the formatting preferences detected on the source document, nil for nested elements and views built in memory.
func (m *Model) GetConfig() *xmlcfg.Config {
	return m.core.Config
}

func (m *Model) SetConfig(config *xmlcfg.Config) {
	m.core.Config = config
}
