// Package itemmodifiers maps item_modifiers.xml onto a typed view.
//
// Scores and stat deltas are integers, factors and horse stats are floats. Both stay in their
// source spelling until an accessor parses them.
package itemmodifiers

import (
	"bytes"
	"context"
	"io"

	"github.com/speakeasy-api/gamexml/itemmodifiers/core"
	"github.com/speakeasy-api/gamexml/marshaller"
	"github.com/speakeasy-api/gamexml/values"
)

// FileName is the name of the game data file this family describes.
const FileName = "item_modifiers.xml"

type ItemModifiers struct {
	marshaller.Model

	ItemModifiers []*ItemModifier
}

// Group returns the modifiers of a modifier group in document order.
func (m *ItemModifiers) Group(group string) []*ItemModifier {
	if m == nil {
		return nil
	}
	var out []*ItemModifier
	for _, im := range m.ItemModifiers {
		if im.ModifierGroup != nil && *im.ModifierGroup == group {
			out = append(out, im)
		}
	}
	return out
}

// Find returns the modifier with the given id, nil when there is none.
func (m *ItemModifiers) Find(id string) *ItemModifier {
	if m == nil {
		return nil
	}
	for _, im := range m.ItemModifiers {
		if im.ID != nil && *im.ID == id {
			return im
		}
	}
	return nil
}

type ItemModifier struct {
	marshaller.Model

	ModifierGroup       *string
	ID                  *string
	Name                *string
	LootDropScore       *string
	ProductionDropScore *string
	Damage              *string
	Speed               *string
	MissileSpeed        *string
	PriceFactor         *string
	Quality             *string
	HitPoints           *string
	HorseSpeed          *string
	StackCount          *string
	Armor               *string
	Maneuver            *string
	ChargeDamage        *string
	HorseHitPoints      *string
}

func (m *ItemModifier) LootDropScoreInt() (int, error) {
	return values.Int("loot_drop_score", m.LootDropScore)
}

func (m *ItemModifier) SetLootDropScore(v int) {
	m.LootDropScore = values.FormatInt(v)
}

func (m *ItemModifier) ClearLootDropScore() {
	m.LootDropScore = nil
}

func (m *ItemModifier) ProductionDropScoreInt() (int, error) {
	return values.Int("production_drop_score", m.ProductionDropScore)
}

func (m *ItemModifier) SetProductionDropScore(v int) {
	m.ProductionDropScore = values.FormatInt(v)
}

func (m *ItemModifier) ClearProductionDropScore() {
	m.ProductionDropScore = nil
}

func (m *ItemModifier) DamageInt() (int, error) {
	return values.Int("damage", m.Damage)
}

func (m *ItemModifier) SetDamage(v int) {
	m.Damage = values.FormatInt(v)
}

func (m *ItemModifier) ClearDamage() {
	m.Damage = nil
}

func (m *ItemModifier) SpeedInt() (int, error) {
	return values.Int("speed", m.Speed)
}

func (m *ItemModifier) SetSpeed(v int) {
	m.Speed = values.FormatInt(v)
}

func (m *ItemModifier) ClearSpeed() {
	m.Speed = nil
}

func (m *ItemModifier) MissileSpeedInt() (int, error) {
	return values.Int("missile_speed", m.MissileSpeed)
}

func (m *ItemModifier) SetMissileSpeed(v int) {
	m.MissileSpeed = values.FormatInt(v)
}

func (m *ItemModifier) ClearMissileSpeed() {
	m.MissileSpeed = nil
}

func (m *ItemModifier) PriceFactorFloat() (float64, error) {
	return values.Float("price_factor", m.PriceFactor)
}

func (m *ItemModifier) SetPriceFactor(v float64) {
	m.PriceFactor = values.FormatFloat(v)
}

func (m *ItemModifier) ClearPriceFactor() {
	m.PriceFactor = nil
}

func (m *ItemModifier) HitPointsInt() (int, error) {
	return values.Int("hit_points", m.HitPoints)
}

func (m *ItemModifier) SetHitPoints(v int) {
	m.HitPoints = values.FormatInt(v)
}

func (m *ItemModifier) ClearHitPoints() {
	m.HitPoints = nil
}

func (m *ItemModifier) HorseSpeedFloat() (float64, error) {
	return values.Float("horse_speed", m.HorseSpeed)
}

func (m *ItemModifier) SetHorseSpeed(v float64) {
	m.HorseSpeed = values.FormatFloat(v)
}

func (m *ItemModifier) ClearHorseSpeed() {
	m.HorseSpeed = nil
}

func (m *ItemModifier) StackCountInt() (int, error) {
	return values.Int("stack_count", m.StackCount)
}

func (m *ItemModifier) SetStackCount(v int) {
	m.StackCount = values.FormatInt(v)
}

func (m *ItemModifier) ClearStackCount() {
	m.StackCount = nil
}

func (m *ItemModifier) ArmorInt() (int, error) {
	return values.Int("armor", m.Armor)
}

func (m *ItemModifier) SetArmor(v int) {
	m.Armor = values.FormatInt(v)
}

func (m *ItemModifier) ClearArmor() {
	m.Armor = nil
}

func (m *ItemModifier) ManeuverFloat() (float64, error) {
	return values.Float("maneuver", m.Maneuver)
}

func (m *ItemModifier) SetManeuver(v float64) {
	m.Maneuver = values.FormatFloat(v)
}

func (m *ItemModifier) ClearManeuver() {
	m.Maneuver = nil
}

func (m *ItemModifier) ChargeDamageFloat() (float64, error) {
	return values.Float("charge_damage", m.ChargeDamage)
}

func (m *ItemModifier) SetChargeDamage(v float64) {
	m.ChargeDamage = values.FormatFloat(v)
}

func (m *ItemModifier) ClearChargeDamage() {
	m.ChargeDamage = nil
}

func (m *ItemModifier) HorseHitPointsFloat() (float64, error) {
	return values.Float("horse_hit_points", m.HorseHitPoints)
}

func (m *ItemModifier) SetHorseHitPoints(v float64) {
	m.HorseHitPoints = values.FormatFloat(v)
}

func (m *ItemModifier) ClearHorseHitPoints() {
	m.HorseHitPoints = nil
}

// Unmarshal reads item_modifiers.xml from r into a view.
func Unmarshal(ctx context.Context, r io.Reader) (*ItemModifiers, error) {
	c, err := marshaller.Unmarshal[core.ItemModifiers](ctx, r)
	if err != nil {
		return nil, err
	}
	return FromCore(c), nil
}

// Deserialize decodes item_modifiers.xml into a view.
func Deserialize(ctx context.Context, data []byte) (*ItemModifiers, error) {
	return Unmarshal(ctx, bytes.NewReader(data))
}

// Marshal writes the view as item_modifiers.xml to w.
func Marshal(ctx context.Context, v *ItemModifiers, w io.Writer) error {
	return marshaller.Marshal(ctx, ToCore(v), w)
}

// Serialize encodes the view as item_modifiers.xml.
func Serialize(ctx context.Context, v *ItemModifiers) ([]byte, error) {
	return marshaller.Serialize(ctx, ToCore(v))
}
