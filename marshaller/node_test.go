package marshaller_test

import (
	"testing"

	"github.com/speakeasy-api/gamexml/marshaller"
	"github.com/speakeasy-api/gamexml/xmlcfg"
	"github.com/speakeasy-api/gamexml/xmltree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_Presence_Success(t *testing.T) {
	t.Parallel()

	var n marshaller.Node[string]
	assert.False(t, n.IsPresent())
	assert.Empty(t, n.GetValueOrZero())

	n.Set("")
	assert.True(t, n.IsPresent(), "an empty value is still present")
	assert.Empty(t, n.GetValue())

	n.Set("value")
	n.SetPresent(false)
	assert.False(t, n.IsPresent())
	assert.Equal(t, "value", n.GetValue())
	assert.Empty(t, n.GetValueOrZero())

	n.Clear()
	assert.Equal(t, marshaller.Node[string]{}, n)

	assert.Equal(t, marshaller.Node[int]{Value: 3, Present: true}, marshaller.NewNode(3))
}

func TestModel_SetCore_Clones(t *testing.T) {
	t.Parallel()

	core := marshaller.CoreModel{
		Namespaces: []xmltree.Attr{{Name: "xmlns:xsi", Value: "http://www.w3.org/2001/XMLSchema-instance"}},
		Extras: marshaller.Extras{
			Attrs:    []xmltree.Attr{{Name: "extra", Value: "1"}},
			Elements: []*xmltree.Node{xmltree.NewNode("unknown")},
		},
		Config: xmlcfg.GetDefaultConfig(),
	}

	var m marshaller.Model
	m.SetCore(core)

	core.Namespaces[0].Value = "changed"
	core.Extras.Attrs[0].Value = "changed"
	core.Extras.Elements[0].Name = "changed"
	core.Config.Indentation = 8

	got := m.GetCore()
	assert.Equal(t, "http://www.w3.org/2001/XMLSchema-instance", got.Namespaces[0].Value)
	assert.Equal(t, "1", got.Extras.Attrs[0].Value)
	assert.Equal(t, "unknown", got.Extras.Elements[0].Name)
	require.NotNil(t, m.GetConfig())
	assert.Equal(t, 1, m.GetConfig().Indentation)
	assert.False(t, m.GetExtras().IsEmpty())

	var empty marshaller.Model
	assert.Equal(t, marshaller.CoreModel{}, empty.GetCore())
	assert.True(t, empty.GetExtras().IsEmpty())
}
