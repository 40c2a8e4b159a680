package itemmodifiers_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/speakeasy-api/gamexml/internal/testutils"
	"github.com/speakeasy-api/gamexml/itemmodifiers"
	"github.com/speakeasy-api/gamexml/itemmodifiers/core"
	"github.com/speakeasy-api/gamexml/marshaller"
	"github.com/speakeasy-api/gamexml/pointer"
	"github.com/speakeasy-api/gamexml/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemModifiers_RoundTrip_Success(t *testing.T) {
	t.Parallel()

	data := testutils.ReadFixture(t, "item_modifiers.xml")

	c, err := marshaller.Deserialize[core.ItemModifiers](t.Context(), data)
	require.NoError(t, err)

	out, err := marshaller.Serialize(t.Context(), c)
	require.NoError(t, err)
	assert.NotEqual(t, string(data), string(out), "attributes are written in schema order")
	testutils.RequireStructurallyEqual(t, data, out)

	view := itemmodifiers.FromCore(c)
	assert.Equal(t, c, itemmodifiers.ToCore(view))

	viaView, err := itemmodifiers.Serialize(t.Context(), view)
	require.NoError(t, err)
	assert.Equal(t, string(out), string(viaView))
}

func TestItemModifiers_View_Success(t *testing.T) {
	t.Parallel()

	view, err := itemmodifiers.Deserialize(t.Context(), testutils.ReadFixture(t, "item_modifiers.xml"))
	require.NoError(t, err)
	require.Len(t, view.ItemModifiers, 4)

	swords := view.Group("sword")
	require.Len(t, swords, 2)
	assert.Equal(t, pointer.From("lordly_sword"), swords[0].ID)

	rusty := view.Find("rusty_sword")
	require.NotNil(t, rusty)
	damage, err := rusty.DamageInt()
	require.NoError(t, err)
	assert.Equal(t, -3, damage)
	factor, err := rusty.PriceFactorFloat()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, factor, 1e-9)
	assert.Nil(t, rusty.LootDropScore)

	spirited := view.Find("spirited")
	require.NotNil(t, spirited)
	maneuver, err := spirited.ManeuverFloat()
	require.NoError(t, err)
	assert.InDelta(t, 1.05, maneuver, 1e-9)
	hitPoints, err := spirited.HitPointsInt()
	require.NoError(t, err)
	assert.Zero(t, hitPoints)

	assert.Nil(t, view.Find("missing"))
	assert.Empty(t, view.Group("missing"))
}

func TestItemModifiers_Edit_Success(t *testing.T) {
	t.Parallel()

	data := testutils.ReadFixture(t, "item_modifiers.xml")
	view, err := itemmodifiers.Deserialize(t.Context(), data)
	require.NoError(t, err)

	bag := view.Find("large_bag")
	bag.SetStackCount(5)
	bag.ClearMissileSpeed()
	bag.SetPriceFactor(1.25)

	out, err := itemmodifiers.Serialize(t.Context(), view)
	require.NoError(t, err)

	report := testutils.RequireDiff(t, data, out)
	assert.Zero(t, report.NodeCountDifference)
	assert.Zero(t, report.AttributeCountDifference)
	require.Len(t, report.AttributeValueDifferences, 1)
	assert.Equal(t, "/ItemModifiers/ItemModifier[4]", report.AttributeValueDifferences[0].Path)
	assert.Equal(t, "5", report.AttributeValueDifferences[0].Actual)
	require.Len(t, report.MissingAttributes, 1)
	assert.Equal(t, "missile_speed", report.MissingAttributes[0].Attribute)
	require.Len(t, report.ExtraAttributes, 1)
	assert.Equal(t, "price_factor", report.ExtraAttributes[0].Attribute)
	assert.Equal(t, "1.25", report.ExtraAttributes[0].Value)
}

func TestItemModifiers_Presence_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		xml  string
	}{
		{name: "empty root", xml: `<ItemModifiers/>`},
		{name: "present empty attributes", xml: `<ItemModifiers><ItemModifier id="x" name="" quality=""/></ItemModifiers>`},
		{name: "unknown child kept", xml: `<ItemModifiers><ItemModifier id="x"/><Comment text="kept"/></ItemModifiers>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			view, err := itemmodifiers.Deserialize(t.Context(), []byte(tt.xml))
			require.NoError(t, err)

			out, err := itemmodifiers.Serialize(t.Context(), view)
			require.NoError(t, err)
			assert.Equal(t, tt.xml, string(out))
		})
	}
}

func TestItemModifiers_LargeFile_PreservesOrder(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	sb.WriteString("<ItemModifiers>")
	for i := range 300 {
		fmt.Fprintf(&sb, `<ItemModifier id="m%d" damage="%d"/>`, i, i-150)
	}
	sb.WriteString("</ItemModifiers>")

	view, err := itemmodifiers.Deserialize(t.Context(), []byte(sb.String()))
	require.NoError(t, err)
	require.Len(t, view.ItemModifiers, 300)

	for i, m := range view.ItemModifiers {
		damage, err := m.DamageInt()
		require.NoError(t, err)
		assert.Equal(t, i-150, damage)
	}

	out, err := itemmodifiers.Serialize(t.Context(), view)
	require.NoError(t, err)
	assert.Equal(t, sb.String(), string(out))
}

func TestItemModifiers_Error(t *testing.T) {
	t.Parallel()

	_, err := itemmodifiers.Deserialize(t.Context(), []byte(`<ItemModifiers><ItemModifier name="no id"/></ItemModifiers>`))
	require.ErrorIs(t, err, validation.ErrSchemaMismatch)
	assert.Contains(t, err.Error(), "/ItemModifiers/ItemModifier")

	m := &itemmodifiers.ItemModifier{Armor: pointer.From("heavy"), HorseSpeed: pointer.From("fast")}
	_, err = m.ArmorInt()
	require.ErrorIs(t, err, validation.ErrFormat)
	_, err = m.HorseSpeedFloat()
	require.ErrorIs(t, err, validation.ErrFormat)

	_, err = itemmodifiers.Serialize(t.Context(), &itemmodifiers.ItemModifiers{
		ItemModifiers: []*itemmodifiers.ItemModifier{{Name: pointer.From("no id")}},
	})
	require.ErrorIs(t, err, validation.ErrSchemaMismatch)
}
