// Package core holds the presence models of item_modifiers.xml.
package core

import "github.com/speakeasy-api/gamexml/marshaller"

// ItemModifiers is the <ItemModifiers> root. Its modifiers sit directly under the root.
type ItemModifiers struct {
	marshaller.CoreModel

	ItemModifiers []*ItemModifier
}

var _ marshaller.RootElement = (*ItemModifiers)(nil)

func (m *ItemModifiers) XMLName() string { return "ItemModifiers" }

func (m *ItemModifiers) UnmarshalElement(r *marshaller.ElementReader) {
	marshaller.Children(r, "ItemModifier", &m.ItemModifiers)
}

func (m *ItemModifiers) MarshalElement(w *marshaller.ElementWriter) {
	marshaller.WriteChildren(w, "ItemModifier", m.ItemModifiers)
}

type ItemModifier struct {
	marshaller.CoreModel

	ModifierGroup       marshaller.Node[string]
	ID                  marshaller.Node[string]
	Name                marshaller.Node[string]
	LootDropScore       marshaller.Node[string]
	ProductionDropScore marshaller.Node[string]
	Damage              marshaller.Node[string]
	Speed               marshaller.Node[string]
	MissileSpeed        marshaller.Node[string]
	PriceFactor         marshaller.Node[string]
	Quality             marshaller.Node[string]
	HitPoints           marshaller.Node[string]
	HorseSpeed          marshaller.Node[string]
	StackCount          marshaller.Node[string]
	Armor               marshaller.Node[string]
	Maneuver            marshaller.Node[string]
	ChargeDamage        marshaller.Node[string]
	HorseHitPoints      marshaller.Node[string]
}

func (m *ItemModifier) UnmarshalElement(r *marshaller.ElementReader) {
	r.Attr("modifier_group", &m.ModifierGroup)
	r.RequiredAttr("id", &m.ID)
	r.Attr("name", &m.Name)
	r.Attr("loot_drop_score", &m.LootDropScore)
	r.Attr("production_drop_score", &m.ProductionDropScore)
	r.Attr("damage", &m.Damage)
	r.Attr("speed", &m.Speed)
	r.Attr("missile_speed", &m.MissileSpeed)
	r.Attr("price_factor", &m.PriceFactor)
	r.Attr("quality", &m.Quality)
	r.Attr("hit_points", &m.HitPoints)
	r.Attr("horse_speed", &m.HorseSpeed)
	r.Attr("stack_count", &m.StackCount)
	r.Attr("armor", &m.Armor)
	r.Attr("maneuver", &m.Maneuver)
	r.Attr("charge_damage", &m.ChargeDamage)
	r.Attr("horse_hit_points", &m.HorseHitPoints)
}

func (m *ItemModifier) MarshalElement(w *marshaller.ElementWriter) {
	w.Attr("modifier_group", m.ModifierGroup)
	w.RequiredAttr("id", m.ID)
	w.Attr("name", m.Name)
	w.Attr("loot_drop_score", m.LootDropScore)
	w.Attr("production_drop_score", m.ProductionDropScore)
	w.Attr("damage", m.Damage)
	w.Attr("speed", m.Speed)
	w.Attr("missile_speed", m.MissileSpeed)
	w.Attr("price_factor", m.PriceFactor)
	w.Attr("quality", m.Quality)
	w.Attr("hit_points", m.HitPoints)
	w.Attr("horse_speed", m.HorseSpeed)
	w.Attr("stack_count", m.StackCount)
	w.Attr("armor", m.Armor)
	w.Attr("maneuver", m.Maneuver)
	w.Attr("charge_damage", m.ChargeDamage)
	w.Attr("horse_hit_points", m.HorseHitPoints)
}
