// Package combatparams maps combat_parameters.xml onto a typed view.
//
// Tuning values stay in their source spelling. The Float and Int accessors parse them on demand
// and fail with a *validation.FormatError when the spelling is not a number.
package combatparams

import (
	"bytes"
	"context"
	"io"

	"github.com/speakeasy-api/gamexml/combatparams/core"
	"github.com/speakeasy-api/gamexml/marshaller"
	"github.com/speakeasy-api/gamexml/values"
)

// FileName is the name of the game data file this family describes.
const FileName = "combat_parameters.xml"

type CombatParameters struct {
	marshaller.Model

	Type             *string
	Definitions      *Definitions
	CombatParameters *CombatParameterList
}

type Definitions struct {
	marshaller.Model

	Defs []*Def
}

// Lookup returns the value of the definition called name.
func (d *Definitions) Lookup(name string) (string, bool) {
	if d == nil {
		return "", false
	}
	for _, def := range d.Defs {
		if def.Name != nil && *def.Name == name && def.Val != nil {
			return *def.Val, true
		}
	}
	return "", false
}

type Def struct {
	marshaller.Model

	Name *string
	Val  *string
}

type CombatParameterList struct {
	marshaller.Model

	CombatParameters []*CombatParameter
}

// Find returns the combat parameter with the given id, nil when there is none.
func (l *CombatParameterList) Find(id string) *CombatParameter {
	if l == nil {
		return nil
	}
	for _, p := range l.CombatParameters {
		if p.ID != nil && *p.ID == id {
			return p
		}
	}
	return nil
}

type CombatParameter struct {
	marshaller.Model

	ID                              *string
	CollisionCheckStartingPercent   *string
	CollisionDamageStartingPercent  *string
	CollisionCheckEndingPercent     *string
	VerticalRotLimitMultiplierUp    *string
	VerticalRotLimitMultiplierDown  *string
	LeftRiderRotLimit               *string
	LeftRiderMinRotLimit            *string
	RightRiderRotLimit              *string
	RightRiderMinRotLimit           *string
	RiderLookDownLimit              *string
	LeftLadderRotLimit              *string
	RightLadderRotLimit             *string
	WeaponOffset                    *string
	CollisionRadius                 *string
	AlternativeAttackCooldownPeriod *string
	HitBoneIndex                    *string
	ShoulderHitBoneIndex            *string
	LookSlopeBlendFactorUpLimit     *string
	LookSlopeBlendFactorDownLimit   *string
	LookSlopeBlendSpeedFactor       *string
	CustomCollisionCapsule          *CustomCollisionCapsule
}

func (p *CombatParameter) CollisionCheckStartingPercentFloat() (float64, error) {
	return values.Float("collision_check_starting_percent", p.CollisionCheckStartingPercent)
}

func (p *CombatParameter) SetCollisionCheckStartingPercent(v float64) {
	p.CollisionCheckStartingPercent = values.FormatFloat(v)
}

func (p *CombatParameter) ClearCollisionCheckStartingPercent() {
	p.CollisionCheckStartingPercent = nil
}

func (p *CombatParameter) CollisionDamageStartingPercentFloat() (float64, error) {
	return values.Float("collision_damage_starting_percent", p.CollisionDamageStartingPercent)
}

func (p *CombatParameter) SetCollisionDamageStartingPercent(v float64) {
	p.CollisionDamageStartingPercent = values.FormatFloat(v)
}

func (p *CombatParameter) ClearCollisionDamageStartingPercent() {
	p.CollisionDamageStartingPercent = nil
}

func (p *CombatParameter) CollisionCheckEndingPercentFloat() (float64, error) {
	return values.Float("collision_check_ending_percent", p.CollisionCheckEndingPercent)
}

func (p *CombatParameter) SetCollisionCheckEndingPercent(v float64) {
	p.CollisionCheckEndingPercent = values.FormatFloat(v)
}

func (p *CombatParameter) ClearCollisionCheckEndingPercent() {
	p.CollisionCheckEndingPercent = nil
}

func (p *CombatParameter) VerticalRotLimitMultiplierUpFloat() (float64, error) {
	return values.Float("vertical_rot_limit_multiplier_up", p.VerticalRotLimitMultiplierUp)
}

func (p *CombatParameter) SetVerticalRotLimitMultiplierUp(v float64) {
	p.VerticalRotLimitMultiplierUp = values.FormatFloat(v)
}

func (p *CombatParameter) ClearVerticalRotLimitMultiplierUp() {
	p.VerticalRotLimitMultiplierUp = nil
}

func (p *CombatParameter) VerticalRotLimitMultiplierDownFloat() (float64, error) {
	return values.Float("vertical_rot_limit_multiplier_down", p.VerticalRotLimitMultiplierDown)
}

func (p *CombatParameter) SetVerticalRotLimitMultiplierDown(v float64) {
	p.VerticalRotLimitMultiplierDown = values.FormatFloat(v)
}

func (p *CombatParameter) ClearVerticalRotLimitMultiplierDown() {
	p.VerticalRotLimitMultiplierDown = nil
}

func (p *CombatParameter) LeftRiderRotLimitFloat() (float64, error) {
	return values.Float("left_rider_rot_limit", p.LeftRiderRotLimit)
}

func (p *CombatParameter) SetLeftRiderRotLimit(v float64) {
	p.LeftRiderRotLimit = values.FormatFloat(v)
}

func (p *CombatParameter) ClearLeftRiderRotLimit() {
	p.LeftRiderRotLimit = nil
}

func (p *CombatParameter) LeftRiderMinRotLimitFloat() (float64, error) {
	return values.Float("left_rider_min_rot_limit", p.LeftRiderMinRotLimit)
}

func (p *CombatParameter) SetLeftRiderMinRotLimit(v float64) {
	p.LeftRiderMinRotLimit = values.FormatFloat(v)
}

func (p *CombatParameter) ClearLeftRiderMinRotLimit() {
	p.LeftRiderMinRotLimit = nil
}

func (p *CombatParameter) RightRiderRotLimitFloat() (float64, error) {
	return values.Float("right_rider_rot_limit", p.RightRiderRotLimit)
}

func (p *CombatParameter) SetRightRiderRotLimit(v float64) {
	p.RightRiderRotLimit = values.FormatFloat(v)
}

func (p *CombatParameter) ClearRightRiderRotLimit() {
	p.RightRiderRotLimit = nil
}

func (p *CombatParameter) RightRiderMinRotLimitFloat() (float64, error) {
	return values.Float("right_rider_min_rot_limit", p.RightRiderMinRotLimit)
}

func (p *CombatParameter) SetRightRiderMinRotLimit(v float64) {
	p.RightRiderMinRotLimit = values.FormatFloat(v)
}

func (p *CombatParameter) ClearRightRiderMinRotLimit() {
	p.RightRiderMinRotLimit = nil
}

func (p *CombatParameter) RiderLookDownLimitFloat() (float64, error) {
	return values.Float("rider_look_down_limit", p.RiderLookDownLimit)
}

func (p *CombatParameter) SetRiderLookDownLimit(v float64) {
	p.RiderLookDownLimit = values.FormatFloat(v)
}

func (p *CombatParameter) ClearRiderLookDownLimit() {
	p.RiderLookDownLimit = nil
}

func (p *CombatParameter) LeftLadderRotLimitFloat() (float64, error) {
	return values.Float("left_ladder_rot_limit", p.LeftLadderRotLimit)
}

func (p *CombatParameter) SetLeftLadderRotLimit(v float64) {
	p.LeftLadderRotLimit = values.FormatFloat(v)
}

func (p *CombatParameter) ClearLeftLadderRotLimit() {
	p.LeftLadderRotLimit = nil
}

func (p *CombatParameter) RightLadderRotLimitFloat() (float64, error) {
	return values.Float("right_ladder_rot_limit", p.RightLadderRotLimit)
}

func (p *CombatParameter) SetRightLadderRotLimit(v float64) {
	p.RightLadderRotLimit = values.FormatFloat(v)
}

func (p *CombatParameter) ClearRightLadderRotLimit() {
	p.RightLadderRotLimit = nil
}

func (p *CombatParameter) WeaponOffsetFloat() (float64, error) {
	return values.Float("weapon_offset", p.WeaponOffset)
}

func (p *CombatParameter) SetWeaponOffset(v float64) {
	p.WeaponOffset = values.FormatFloat(v)
}

func (p *CombatParameter) ClearWeaponOffset() {
	p.WeaponOffset = nil
}

func (p *CombatParameter) CollisionRadiusFloat() (float64, error) {
	return values.Float("collision_radius", p.CollisionRadius)
}

func (p *CombatParameter) SetCollisionRadius(v float64) {
	p.CollisionRadius = values.FormatFloat(v)
}

func (p *CombatParameter) ClearCollisionRadius() {
	p.CollisionRadius = nil
}

func (p *CombatParameter) AlternativeAttackCooldownPeriodFloat() (float64, error) {
	return values.Float("alternative_attack_cooldown_period", p.AlternativeAttackCooldownPeriod)
}

func (p *CombatParameter) SetAlternativeAttackCooldownPeriod(v float64) {
	p.AlternativeAttackCooldownPeriod = values.FormatFloat(v)
}

func (p *CombatParameter) ClearAlternativeAttackCooldownPeriod() {
	p.AlternativeAttackCooldownPeriod = nil
}

func (p *CombatParameter) HitBoneIndexInt() (int, error) {
	return values.Int("hit_bone_index", p.HitBoneIndex)
}

func (p *CombatParameter) SetHitBoneIndex(v int) {
	p.HitBoneIndex = values.FormatInt(v)
}

func (p *CombatParameter) ClearHitBoneIndex() {
	p.HitBoneIndex = nil
}

func (p *CombatParameter) ShoulderHitBoneIndexInt() (int, error) {
	return values.Int("shoulder_hit_bone_index", p.ShoulderHitBoneIndex)
}

func (p *CombatParameter) SetShoulderHitBoneIndex(v int) {
	p.ShoulderHitBoneIndex = values.FormatInt(v)
}

func (p *CombatParameter) ClearShoulderHitBoneIndex() {
	p.ShoulderHitBoneIndex = nil
}

func (p *CombatParameter) LookSlopeBlendFactorUpLimitFloat() (float64, error) {
	return values.Float("look_slope_blend_factor_up_limit", p.LookSlopeBlendFactorUpLimit)
}

func (p *CombatParameter) SetLookSlopeBlendFactorUpLimit(v float64) {
	p.LookSlopeBlendFactorUpLimit = values.FormatFloat(v)
}

func (p *CombatParameter) ClearLookSlopeBlendFactorUpLimit() {
	p.LookSlopeBlendFactorUpLimit = nil
}

func (p *CombatParameter) LookSlopeBlendFactorDownLimitFloat() (float64, error) {
	return values.Float("look_slope_blend_factor_down_limit", p.LookSlopeBlendFactorDownLimit)
}

func (p *CombatParameter) SetLookSlopeBlendFactorDownLimit(v float64) {
	p.LookSlopeBlendFactorDownLimit = values.FormatFloat(v)
}

func (p *CombatParameter) ClearLookSlopeBlendFactorDownLimit() {
	p.LookSlopeBlendFactorDownLimit = nil
}

func (p *CombatParameter) LookSlopeBlendSpeedFactorFloat() (float64, error) {
	return values.Float("look_slope_blend_speed_factor", p.LookSlopeBlendSpeedFactor)
}

func (p *CombatParameter) SetLookSlopeBlendSpeedFactor(v float64) {
	p.LookSlopeBlendSpeedFactor = values.FormatFloat(v)
}

func (p *CombatParameter) ClearLookSlopeBlendSpeedFactor() {
	p.LookSlopeBlendSpeedFactor = nil
}

// CustomCollisionCapsule replaces the default collision shape. P1 and P2 are "x,y,z" triples.
type CustomCollisionCapsule struct {
	marshaller.Model

	P1 *string
	P2 *string
	R  *string
}

// RFloat returns the capsule radius, 0 when absent.
func (c *CustomCollisionCapsule) RFloat() (float64, error) {
	return values.Float("r", c.R)
}

func (c *CustomCollisionCapsule) SetR(r float64) {
	c.R = values.FormatFloat(r)
}

// Unmarshal reads combat_parameters.xml from r into a view.
func Unmarshal(ctx context.Context, r io.Reader) (*CombatParameters, error) {
	c, err := marshaller.Unmarshal[core.CombatParameters](ctx, r)
	if err != nil {
		return nil, err
	}
	return FromCore(c), nil
}

// Deserialize decodes combat_parameters.xml into a view.
func Deserialize(ctx context.Context, data []byte) (*CombatParameters, error) {
	return Unmarshal(ctx, bytes.NewReader(data))
}

// Marshal writes the view as combat_parameters.xml to w.
func Marshal(ctx context.Context, v *CombatParameters, w io.Writer) error {
	return marshaller.Marshal(ctx, ToCore(v), w)
}

// Serialize encodes the view as combat_parameters.xml.
func Serialize(ctx context.Context, v *CombatParameters) ([]byte, error) {
	return marshaller.Serialize(ctx, ToCore(v))
}
