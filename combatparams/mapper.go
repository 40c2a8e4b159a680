package combatparams

import (
	"github.com/speakeasy-api/gamexml/combatparams/core"
	"github.com/speakeasy-api/gamexml/internal/sliceutil"
	"github.com/speakeasy-api/gamexml/marshaller"
	"github.com/speakeasy-api/gamexml/values"
)

// FromCore builds the view of a presence model.
func FromCore(c *core.CombatParameters) *CombatParameters {
	if c == nil {
		return nil
	}

	v := &CombatParameters{
		Type:             values.String(c.Type),
		Definitions:      childView(c.Definitions, definitionsFromCore),
		CombatParameters: childView(c.CombatParameters, combatParameterListFromCore),
	}
	v.SetCore(c.CoreModel)
	return v
}

// ToCore builds the presence model of a view. Nil members become absent members.
func ToCore(v *CombatParameters) *core.CombatParameters {
	if v == nil {
		return nil
	}

	return &core.CombatParameters{
		CoreModel:        v.GetCore(),
		Type:             values.StringNode(v.Type),
		Definitions:      values.ChildNode(v.Definitions, definitionsToCore),
		CombatParameters: values.ChildNode(v.CombatParameters, combatParameterListToCore),
	}
}

// childView adapts an infallible mapping to values.ChildView.
func childView[C, V any](n marshaller.Node[*C], fn func(*C) *V) *V {
	v, _ := values.ChildView(n, func(c *C) (*V, error) { return fn(c), nil })
	return v
}

func definitionsFromCore(c *core.Definitions) *Definitions {
	v := &Definitions{Defs: sliceutil.Map(c.Defs, defFromCore)}
	v.SetCore(c.CoreModel)
	return v
}

func definitionsToCore(v *Definitions) *core.Definitions {
	return &core.Definitions{
		CoreModel: v.GetCore(),
		Defs:      sliceutil.Map(v.Defs, defToCore),
	}
}

func defFromCore(c *core.Def) *Def {
	v := &Def{
		Name: values.String(c.Name),
		Val:  values.String(c.Val),
	}
	v.SetCore(c.CoreModel)
	return v
}

func defToCore(v *Def) *core.Def {
	return &core.Def{
		CoreModel: v.GetCore(),
		Name:      values.StringNode(v.Name),
		Val:       values.StringNode(v.Val),
	}
}

func combatParameterListFromCore(c *core.CombatParameterList) *CombatParameterList {
	v := &CombatParameterList{CombatParameters: sliceutil.Map(c.CombatParameters, combatParameterFromCore)}
	v.SetCore(c.CoreModel)
	return v
}

func combatParameterListToCore(v *CombatParameterList) *core.CombatParameterList {
	return &core.CombatParameterList{
		CoreModel:        v.GetCore(),
		CombatParameters: sliceutil.Map(v.CombatParameters, combatParameterToCore),
	}
}

func combatParameterFromCore(c *core.CombatParameter) *CombatParameter {
	v := &CombatParameter{
		ID:                              values.String(c.ID),
		CollisionCheckStartingPercent:   values.String(c.CollisionCheckStartingPercent),
		CollisionDamageStartingPercent:  values.String(c.CollisionDamageStartingPercent),
		CollisionCheckEndingPercent:     values.String(c.CollisionCheckEndingPercent),
		VerticalRotLimitMultiplierUp:    values.String(c.VerticalRotLimitMultiplierUp),
		VerticalRotLimitMultiplierDown:  values.String(c.VerticalRotLimitMultiplierDown),
		LeftRiderRotLimit:               values.String(c.LeftRiderRotLimit),
		LeftRiderMinRotLimit:            values.String(c.LeftRiderMinRotLimit),
		RightRiderRotLimit:              values.String(c.RightRiderRotLimit),
		RightRiderMinRotLimit:           values.String(c.RightRiderMinRotLimit),
		RiderLookDownLimit:              values.String(c.RiderLookDownLimit),
		LeftLadderRotLimit:              values.String(c.LeftLadderRotLimit),
		RightLadderRotLimit:             values.String(c.RightLadderRotLimit),
		WeaponOffset:                    values.String(c.WeaponOffset),
		CollisionRadius:                 values.String(c.CollisionRadius),
		AlternativeAttackCooldownPeriod: values.String(c.AlternativeAttackCooldownPeriod),
		HitBoneIndex:                    values.String(c.HitBoneIndex),
		ShoulderHitBoneIndex:            values.String(c.ShoulderHitBoneIndex),
		LookSlopeBlendFactorUpLimit:     values.String(c.LookSlopeBlendFactorUpLimit),
		LookSlopeBlendFactorDownLimit:   values.String(c.LookSlopeBlendFactorDownLimit),
		LookSlopeBlendSpeedFactor:       values.String(c.LookSlopeBlendSpeedFactor),
		CustomCollisionCapsule:          childView(c.CustomCollisionCapsule, capsuleFromCore),
	}
	v.SetCore(c.CoreModel)
	return v
}

func combatParameterToCore(v *CombatParameter) *core.CombatParameter {
	return &core.CombatParameter{
		CoreModel:                       v.GetCore(),
		ID:                              values.StringNode(v.ID),
		CollisionCheckStartingPercent:   values.StringNode(v.CollisionCheckStartingPercent),
		CollisionDamageStartingPercent:  values.StringNode(v.CollisionDamageStartingPercent),
		CollisionCheckEndingPercent:     values.StringNode(v.CollisionCheckEndingPercent),
		VerticalRotLimitMultiplierUp:    values.StringNode(v.VerticalRotLimitMultiplierUp),
		VerticalRotLimitMultiplierDown:  values.StringNode(v.VerticalRotLimitMultiplierDown),
		LeftRiderRotLimit:               values.StringNode(v.LeftRiderRotLimit),
		LeftRiderMinRotLimit:            values.StringNode(v.LeftRiderMinRotLimit),
		RightRiderRotLimit:              values.StringNode(v.RightRiderRotLimit),
		RightRiderMinRotLimit:           values.StringNode(v.RightRiderMinRotLimit),
		RiderLookDownLimit:              values.StringNode(v.RiderLookDownLimit),
		LeftLadderRotLimit:              values.StringNode(v.LeftLadderRotLimit),
		RightLadderRotLimit:             values.StringNode(v.RightLadderRotLimit),
		WeaponOffset:                    values.StringNode(v.WeaponOffset),
		CollisionRadius:                 values.StringNode(v.CollisionRadius),
		AlternativeAttackCooldownPeriod: values.StringNode(v.AlternativeAttackCooldownPeriod),
		HitBoneIndex:                    values.StringNode(v.HitBoneIndex),
		ShoulderHitBoneIndex:            values.StringNode(v.ShoulderHitBoneIndex),
		LookSlopeBlendFactorUpLimit:     values.StringNode(v.LookSlopeBlendFactorUpLimit),
		LookSlopeBlendFactorDownLimit:   values.StringNode(v.LookSlopeBlendFactorDownLimit),
		LookSlopeBlendSpeedFactor:       values.StringNode(v.LookSlopeBlendSpeedFactor),
		CustomCollisionCapsule:          values.ChildNode(v.CustomCollisionCapsule, capsuleToCore),
	}
}

func capsuleFromCore(c *core.CustomCollisionCapsule) *CustomCollisionCapsule {
	v := &CustomCollisionCapsule{
		P1: values.String(c.P1),
		P2: values.String(c.P2),
		R:  values.String(c.R),
	}
	v.SetCore(c.CoreModel)
	return v
}

func capsuleToCore(v *CustomCollisionCapsule) *core.CustomCollisionCapsule {
	return &core.CustomCollisionCapsule{
		CoreModel: v.GetCore(),
		P1:        values.StringNode(v.P1),
		P2:        values.StringNode(v.P2),
		R:         values.StringNode(v.R),
	}
}
