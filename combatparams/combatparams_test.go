package combatparams_test

import (
	"testing"

	"github.com/speakeasy-api/gamexml/combatparams"
	"github.com/speakeasy-api/gamexml/combatparams/core"
	"github.com/speakeasy-api/gamexml/diff"
	"github.com/speakeasy-api/gamexml/internal/testutils"
	"github.com/speakeasy-api/gamexml/marshaller"
	"github.com/speakeasy-api/gamexml/pointer"
	"github.com/speakeasy-api/gamexml/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombatParameters_RoundTrip_Success(t *testing.T) {
	t.Parallel()

	data := testutils.ReadFixture(t, "combat_parameters.xml")

	c, err := marshaller.Deserialize[core.CombatParameters](t.Context(), data)
	require.NoError(t, err)

	out, err := marshaller.Serialize(t.Context(), c)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(out))

	view := combatparams.FromCore(c)
	assert.Equal(t, c, combatparams.ToCore(view), "mapping must be lossless")

	viaView, err := combatparams.Serialize(t.Context(), view)
	require.NoError(t, err)
	testutils.RequireStructurallyEqual(t, data, viaView)
}

func TestCombatParameters_View_Success(t *testing.T) {
	t.Parallel()

	view, err := combatparams.Deserialize(t.Context(), testutils.ReadFixture(t, "combat_parameters.xml"))
	require.NoError(t, err)

	assert.Equal(t, pointer.From("combat_parameters"), view.Type)

	val, ok := view.Definitions.Lookup("ladder_rot_limit")
	assert.True(t, ok)
	assert.Equal(t, "1.57", val)
	_, ok = view.Definitions.Lookup("missing")
	assert.False(t, ok)

	human := view.CombatParameters.Find("human")
	require.NotNil(t, human)

	radius, err := human.CollisionRadiusFloat()
	require.NoError(t, err)
	assert.InDelta(t, 0.3, radius, 1e-9)

	limit, err := human.LeftRiderRotLimitFloat()
	require.NoError(t, err)
	assert.InDelta(t, -1.8, limit, 1e-9)

	bone, err := human.ShoulderHitBoneIndexInt()
	require.NoError(t, err)
	assert.Equal(t, 13, bone)
	assert.Equal(t, pointer.From("0.0"), human.WeaponOffset, "source spelling is kept")
	assert.Nil(t, human.CustomCollisionCapsule)

	horse := view.CombatParameters.Find("horse")
	require.NotNil(t, horse)
	assert.Nil(t, horse.HitBoneIndex)
	require.NotNil(t, horse.CustomCollisionCapsule)
	r, err := horse.CustomCollisionCapsule.RFloat()
	require.NoError(t, err)
	assert.InDelta(t, 0.25, r, 1e-9)

	empty := view.CombatParameters.Find("empty")
	require.NotNil(t, empty)
	radius, err = empty.CollisionRadiusFloat()
	require.NoError(t, err)
	assert.Zero(t, radius)

	assert.Nil(t, view.CombatParameters.Find("unknown"))
}

func TestCombatParameters_Edit_Success(t *testing.T) {
	t.Parallel()

	data := testutils.ReadFixture(t, "combat_parameters.xml")
	view, err := combatparams.Deserialize(t.Context(), data)
	require.NoError(t, err)

	horse := view.CombatParameters.Find("horse")
	horse.SetCollisionRadius(0.45)
	horse.SetHitBoneIndex(2)
	horse.CustomCollisionCapsule = nil
	view.CombatParameters.Find("human").ClearWeaponOffset()

	out, err := combatparams.Serialize(t.Context(), view)
	require.NoError(t, err)

	report := testutils.RequireDiff(t, data, out)
	assert.Equal(t, []string{"/base/combat_parameters/combat_parameter[2]/custom_collision_capsule"}, report.MissingNodes)
	assert.Equal(t, []diffAttr{{"/base/combat_parameters/combat_parameter[1]", "weapon_offset"}}, attrNames(report.MissingAttributes))
	assert.Equal(t, []diffAttr{{"/base/combat_parameters/combat_parameter[2]", "hit_bone_index"}}, attrNames(report.ExtraAttributes))
	require.Len(t, report.AttributeValueDifferences, 1)
	assert.Equal(t, "0.45", report.AttributeValueDifferences[0].Actual)
	assert.Equal(t, -1, report.NodeCountDifference)
}

func TestCombatParameters_Presence_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		xml  string
	}{
		{name: "absent wrappers", xml: `<base type="combat_parameters"/>`},
		{name: "present empty wrappers", xml: `<base><definitions/><combat_parameters/></base>`},
		{name: "present empty attribute", xml: `<base><combat_parameters><combat_parameter id="x" weapon_offset=""/></combat_parameters></base>`},
		{name: "unknown attribute kept", xml: `<base><combat_parameters><combat_parameter id="x" new_tuning="1"/></combat_parameters></base>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			view, err := combatparams.Deserialize(t.Context(), []byte(tt.xml))
			require.NoError(t, err)

			out, err := combatparams.Serialize(t.Context(), view)
			require.NoError(t, err)
			assert.Equal(t, tt.xml, string(out))
		})
	}
}

func TestCombatParameters_Mapper_AbsentMembers_Success(t *testing.T) {
	t.Parallel()

	c := &core.CombatParameters{
		Type:        marshaller.Node[string]{Value: "combat_parameters"},
		Definitions: marshaller.Node[*core.Definitions]{Value: &core.Definitions{}},
	}
	assert.Equal(t, &core.CombatParameters{}, combatparams.ToCore(combatparams.FromCore(c)), "absent members map back without their values")

	c.Type.Clear()
	c.Definitions.Clear()
	assert.Equal(t, c, combatparams.ToCore(combatparams.FromCore(c)))

	parsed, err := marshaller.Deserialize[core.CombatParameters](t.Context(), []byte(`<base/>`))
	require.NoError(t, err)
	assert.Equal(t, marshaller.Node[string]{}, parsed.Type, "deserialized absent members hold no value")
	assert.Equal(t, parsed, combatparams.ToCore(combatparams.FromCore(parsed)))
}

func TestCombatParameters_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		xml  string
	}{
		{name: "missing combat parameter id", xml: `<base><combat_parameters><combat_parameter/></combat_parameters></base>`},
		{name: "missing def name", xml: `<base><definitions><def val="1"/></definitions></base>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := combatparams.Deserialize(t.Context(), []byte(tt.xml))
			require.ErrorIs(t, err, validation.ErrSchemaMismatch)
		})
	}
}

func TestCombatParameter_Accessors_Error(t *testing.T) {
	t.Parallel()

	p := &combatparams.CombatParameter{
		CollisionRadius: pointer.From("wide"),
		HitBoneIndex:    pointer.From("1.5"),
	}

	_, err := p.CollisionRadiusFloat()
	require.ErrorIs(t, err, validation.ErrFormat)

	_, err = p.HitBoneIndexInt()
	require.ErrorIs(t, err, validation.ErrFormat)

	p.SetCollisionRadius(12)
	assert.Equal(t, pointer.From("12"), p.CollisionRadius)
}

type diffAttr struct {
	path string
	name string
}

func attrNames(refs []diff.AttributeRef) []diffAttr {
	out := make([]diffAttr, 0, len(refs))
	for _, r := range refs {
		out = append(out, diffAttr{r.Path, r.Attribute})
	}
	return out
}
