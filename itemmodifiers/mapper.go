package itemmodifiers

import (
	"github.com/speakeasy-api/gamexml/internal/sliceutil"
	"github.com/speakeasy-api/gamexml/itemmodifiers/core"
	"github.com/speakeasy-api/gamexml/values"
)

// FromCore builds the view of a presence model.
func FromCore(c *core.ItemModifiers) *ItemModifiers {
	if c == nil {
		return nil
	}

	v := &ItemModifiers{ItemModifiers: sliceutil.Map(c.ItemModifiers, itemModifierFromCore)}
	v.SetCore(c.CoreModel)
	return v
}

// ToCore builds the presence model of a view. Nil members become absent members.
func ToCore(v *ItemModifiers) *core.ItemModifiers {
	if v == nil {
		return nil
	}

	return &core.ItemModifiers{
		CoreModel:     v.GetCore(),
		ItemModifiers: sliceutil.Map(v.ItemModifiers, itemModifierToCore),
	}
}

func itemModifierFromCore(c *core.ItemModifier) *ItemModifier {
	v := &ItemModifier{
		ModifierGroup:       values.String(c.ModifierGroup),
		ID:                  values.String(c.ID),
		Name:                values.String(c.Name),
		LootDropScore:       values.String(c.LootDropScore),
		ProductionDropScore: values.String(c.ProductionDropScore),
		Damage:              values.String(c.Damage),
		Speed:               values.String(c.Speed),
		MissileSpeed:        values.String(c.MissileSpeed),
		PriceFactor:         values.String(c.PriceFactor),
		Quality:             values.String(c.Quality),
		HitPoints:           values.String(c.HitPoints),
		HorseSpeed:          values.String(c.HorseSpeed),
		StackCount:          values.String(c.StackCount),
		Armor:               values.String(c.Armor),
		Maneuver:            values.String(c.Maneuver),
		ChargeDamage:        values.String(c.ChargeDamage),
		HorseHitPoints:      values.String(c.HorseHitPoints),
	}
	v.SetCore(c.CoreModel)
	return v
}

func itemModifierToCore(v *ItemModifier) *core.ItemModifier {
	return &core.ItemModifier{
		CoreModel:           v.GetCore(),
		ModifierGroup:       values.StringNode(v.ModifierGroup),
		ID:                  values.StringNode(v.ID),
		Name:                values.StringNode(v.Name),
		LootDropScore:       values.StringNode(v.LootDropScore),
		ProductionDropScore: values.StringNode(v.ProductionDropScore),
		Damage:              values.StringNode(v.Damage),
		Speed:               values.StringNode(v.Speed),
		MissileSpeed:        values.StringNode(v.MissileSpeed),
		PriceFactor:         values.StringNode(v.PriceFactor),
		Quality:             values.StringNode(v.Quality),
		HitPoints:           values.StringNode(v.HitPoints),
		HorseSpeed:          values.StringNode(v.HorseSpeed),
		StackCount:          values.StringNode(v.StackCount),
		Armor:               values.StringNode(v.Armor),
		Maneuver:            values.StringNode(v.Maneuver),
		ChargeDamage:        values.StringNode(v.ChargeDamage),
		HorseHitPoints:      values.StringNode(v.HorseHitPoints),
	}
}
