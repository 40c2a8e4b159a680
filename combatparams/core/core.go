// Package core holds the presence models of combat_parameters.xml.
package core

import "github.com/speakeasy-api/gamexml/marshaller"

// CombatParameters is the <base> root of combat_parameters.xml.
type CombatParameters struct {
	marshaller.CoreModel

	Type             marshaller.Node[string]
	Definitions      marshaller.Node[*Definitions]
	CombatParameters marshaller.Node[*CombatParameterList]
}

var _ marshaller.RootElement = (*CombatParameters)(nil)

func (c *CombatParameters) XMLName() string { return "base" }

func (c *CombatParameters) UnmarshalElement(r *marshaller.ElementReader) {
	r.Attr("type", &c.Type)
	marshaller.Child(r, "definitions", &c.Definitions)
	marshaller.Child(r, "combat_parameters", &c.CombatParameters)
}

func (c *CombatParameters) MarshalElement(w *marshaller.ElementWriter) {
	w.Attr("type", c.Type)
	marshaller.WriteChild(w, "definitions", c.Definitions)
	marshaller.WriteChild(w, "combat_parameters", c.CombatParameters)
}

// Definitions holds named constants other attributes may refer to.
type Definitions struct {
	marshaller.CoreModel

	Defs []*Def
}

func (d *Definitions) UnmarshalElement(r *marshaller.ElementReader) {
	marshaller.Children(r, "def", &d.Defs)
}

func (d *Definitions) MarshalElement(w *marshaller.ElementWriter) {
	marshaller.WriteChildren(w, "def", d.Defs)
}

type Def struct {
	marshaller.CoreModel

	Name marshaller.Node[string]
	Val  marshaller.Node[string]
}

func (d *Def) UnmarshalElement(r *marshaller.ElementReader) {
	r.RequiredAttr("name", &d.Name)
	r.Attr("val", &d.Val)
}

func (d *Def) MarshalElement(w *marshaller.ElementWriter) {
	w.RequiredAttr("name", d.Name)
	w.Attr("val", d.Val)
}

// CombatParameterList is the <combat_parameters> wrapper.
type CombatParameterList struct {
	marshaller.CoreModel

	CombatParameters []*CombatParameter
}

func (l *CombatParameterList) UnmarshalElement(r *marshaller.ElementReader) {
	marshaller.Children(r, "combat_parameter", &l.CombatParameters)
}

func (l *CombatParameterList) MarshalElement(w *marshaller.ElementWriter) {
	marshaller.WriteChildren(w, "combat_parameter", l.CombatParameters)
}

type CombatParameter struct {
	marshaller.CoreModel

	ID                              marshaller.Node[string]
	CollisionCheckStartingPercent   marshaller.Node[string]
	CollisionDamageStartingPercent  marshaller.Node[string]
	CollisionCheckEndingPercent     marshaller.Node[string]
	VerticalRotLimitMultiplierUp    marshaller.Node[string]
	VerticalRotLimitMultiplierDown  marshaller.Node[string]
	LeftRiderRotLimit               marshaller.Node[string]
	LeftRiderMinRotLimit            marshaller.Node[string]
	RightRiderRotLimit              marshaller.Node[string]
	RightRiderMinRotLimit           marshaller.Node[string]
	RiderLookDownLimit              marshaller.Node[string]
	LeftLadderRotLimit              marshaller.Node[string]
	RightLadderRotLimit             marshaller.Node[string]
	WeaponOffset                    marshaller.Node[string]
	CollisionRadius                 marshaller.Node[string]
	AlternativeAttackCooldownPeriod marshaller.Node[string]
	HitBoneIndex                    marshaller.Node[string]
	ShoulderHitBoneIndex            marshaller.Node[string]
	LookSlopeBlendFactorUpLimit     marshaller.Node[string]
	LookSlopeBlendFactorDownLimit   marshaller.Node[string]
	LookSlopeBlendSpeedFactor       marshaller.Node[string]
	CustomCollisionCapsule          marshaller.Node[*CustomCollisionCapsule]
}

type attrSlot struct {
	name string
	node *marshaller.Node[string]
}

// attrs lists the optional attributes in the order they are written.
func (p *CombatParameter) attrs() []attrSlot {
	return []attrSlot{
		{"collision_check_starting_percent", &p.CollisionCheckStartingPercent},
		{"collision_damage_starting_percent", &p.CollisionDamageStartingPercent},
		{"collision_check_ending_percent", &p.CollisionCheckEndingPercent},
		{"vertical_rot_limit_multiplier_up", &p.VerticalRotLimitMultiplierUp},
		{"vertical_rot_limit_multiplier_down", &p.VerticalRotLimitMultiplierDown},
		{"left_rider_rot_limit", &p.LeftRiderRotLimit},
		{"left_rider_min_rot_limit", &p.LeftRiderMinRotLimit},
		{"right_rider_rot_limit", &p.RightRiderRotLimit},
		{"right_rider_min_rot_limit", &p.RightRiderMinRotLimit},
		{"rider_look_down_limit", &p.RiderLookDownLimit},
		{"left_ladder_rot_limit", &p.LeftLadderRotLimit},
		{"right_ladder_rot_limit", &p.RightLadderRotLimit},
		{"weapon_offset", &p.WeaponOffset},
		{"collision_radius", &p.CollisionRadius},
		{"alternative_attack_cooldown_period", &p.AlternativeAttackCooldownPeriod},
		{"hit_bone_index", &p.HitBoneIndex},
		{"shoulder_hit_bone_index", &p.ShoulderHitBoneIndex},
		{"look_slope_blend_factor_up_limit", &p.LookSlopeBlendFactorUpLimit},
		{"look_slope_blend_factor_down_limit", &p.LookSlopeBlendFactorDownLimit},
		{"look_slope_blend_speed_factor", &p.LookSlopeBlendSpeedFactor},
	}
}

func (p *CombatParameter) UnmarshalElement(r *marshaller.ElementReader) {
	r.RequiredAttr("id", &p.ID)
	for _, a := range p.attrs() {
		r.Attr(a.name, a.node)
	}
	marshaller.Child(r, "custom_collision_capsule", &p.CustomCollisionCapsule)
}

func (p *CombatParameter) MarshalElement(w *marshaller.ElementWriter) {
	w.RequiredAttr("id", p.ID)
	for _, a := range p.attrs() {
		w.Attr(a.name, *a.node)
	}
	marshaller.WriteChild(w, "custom_collision_capsule", p.CustomCollisionCapsule)
}

// CustomCollisionCapsule is a capsule between two points with radius r.
type CustomCollisionCapsule struct {
	marshaller.CoreModel

	P1 marshaller.Node[string]
	P2 marshaller.Node[string]
	R  marshaller.Node[string]
}

func (c *CustomCollisionCapsule) UnmarshalElement(r *marshaller.ElementReader) {
	r.Attr("p1", &c.P1)
	r.Attr("p2", &c.P2)
	r.Attr("r", &c.R)
}

func (c *CustomCollisionCapsule) MarshalElement(w *marshaller.ElementWriter) {
	w.Attr("p1", c.P1)
	w.Attr("p2", c.P2)
	w.Attr("r", c.R)
}
