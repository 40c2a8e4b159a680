package bannericons

import (
	"github.com/speakeasy-api/gamexml/bannericons/core"
	"github.com/speakeasy-api/gamexml/internal/sliceutil"
	"github.com/speakeasy-api/gamexml/values"
)

// FromCore builds the view of a presence model. It fails with a *validation.FormatError when a
// boolean attribute uses a spelling that is not recognised.
func FromCore(c *core.BannerIcons) (*BannerIcons, error) {
	if c == nil {
		return nil, nil
	}

	data, err := values.ChildView(c.BannerIconData, bannerIconDataFromCore)
	if err != nil {
		return nil, err
	}

	v := &BannerIcons{
		Type:           values.String(c.Type),
		BannerIconData: data,
	}
	v.SetCore(c.CoreModel)
	return v, nil
}

// ToCore builds the presence model of a view. Nil members become absent members.
func ToCore(v *BannerIcons) *core.BannerIcons {
	if v == nil {
		return nil
	}

	return &core.BannerIcons{
		CoreModel:      v.GetCore(),
		Type:           values.StringNode(v.Type),
		BannerIconData: values.ChildNode(v.BannerIconData, bannerIconDataToCore),
	}
}

func bannerIconDataFromCore(c *core.BannerIconData) (*BannerIconData, error) {
	groups, err := sliceutil.MapErr(c.BannerIconGroups, bannerIconGroupFromCore)
	if err != nil {
		return nil, err
	}
	colors, err := values.ChildView(c.BannerColors, bannerColorsFromCore)
	if err != nil {
		return nil, err
	}

	v := &BannerIconData{
		BannerIconGroups: groups,
		BannerColors:     colors,
	}
	v.SetCore(c.CoreModel)
	return v, nil
}

func bannerIconDataToCore(v *BannerIconData) *core.BannerIconData {
	return &core.BannerIconData{
		CoreModel:        v.GetCore(),
		BannerIconGroups: sliceutil.Map(v.BannerIconGroups, bannerIconGroupToCore),
		BannerColors:     values.ChildNode(v.BannerColors, bannerColorsToCore),
	}
}

func bannerIconGroupFromCore(c *core.BannerIconGroup) (*BannerIconGroup, error) {
	isPattern, err := values.Bool("is_pattern", c.IsPattern)
	if err != nil {
		return nil, err
	}
	backgrounds, err := sliceutil.MapErr(c.Backgrounds, backgroundFromCore)
	if err != nil {
		return nil, err
	}
	icons, err := sliceutil.MapErr(c.Icons, iconFromCore)
	if err != nil {
		return nil, err
	}

	v := &BannerIconGroup{
		ID:          values.String(c.ID),
		Name:        values.String(c.Name),
		IsPattern:   isPattern,
		Backgrounds: backgrounds,
		Icons:       icons,
	}
	v.SetCore(c.CoreModel)
	return v, nil
}

func bannerIconGroupToCore(v *BannerIconGroup) *core.BannerIconGroup {
	return &core.BannerIconGroup{
		CoreModel:   v.GetCore(),
		ID:          values.StringNode(v.ID),
		Name:        values.StringNode(v.Name),
		IsPattern:   values.BoolNode(v.IsPattern),
		Backgrounds: sliceutil.Map(v.Backgrounds, backgroundToCore),
		Icons:       sliceutil.Map(v.Icons, iconToCore),
	}
}

func backgroundFromCore(c *core.Background) (*Background, error) {
	isBase, err := values.Bool("is_base_background", c.IsBaseBackground)
	if err != nil {
		return nil, err
	}

	v := &Background{
		ID:               values.String(c.ID),
		MeshName:         values.String(c.MeshName),
		IsBaseBackground: isBase,
	}
	v.SetCore(c.CoreModel)
	return v, nil
}

func backgroundToCore(v *Background) *core.Background {
	return &core.Background{
		CoreModel:        v.GetCore(),
		ID:               values.StringNode(v.ID),
		MeshName:         values.StringNode(v.MeshName),
		IsBaseBackground: values.BoolNode(v.IsBaseBackground),
	}
}

func iconFromCore(c *core.Icon) (*Icon, error) {
	isReserved, err := values.Bool("is_reserved", c.IsReserved)
	if err != nil {
		return nil, err
	}

	v := &Icon{
		ID:           values.String(c.ID),
		MaterialName: values.String(c.MaterialName),
		TextureIndex: values.String(c.TextureIndex),
		IsReserved:   isReserved,
	}
	v.SetCore(c.CoreModel)
	return v, nil
}

func iconToCore(v *Icon) *core.Icon {
	return &core.Icon{
		CoreModel:    v.GetCore(),
		ID:           values.StringNode(v.ID),
		MaterialName: values.StringNode(v.MaterialName),
		TextureIndex: values.StringNode(v.TextureIndex),
		IsReserved:   values.BoolNode(v.IsReserved),
	}
}

func bannerColorsFromCore(c *core.BannerColors) (*BannerColors, error) {
	colors, err := sliceutil.MapErr(c.Colors, colorFromCore)
	if err != nil {
		return nil, err
	}

	v := &BannerColors{Colors: colors}
	v.SetCore(c.CoreModel)
	return v, nil
}

func bannerColorsToCore(v *BannerColors) *core.BannerColors {
	return &core.BannerColors{
		CoreModel: v.GetCore(),
		Colors:    sliceutil.Map(v.Colors, colorToCore),
	}
}

func colorFromCore(c *core.Color) (*Color, error) {
	forBackground, err := values.Bool("player_can_choose_for_background", c.PlayerCanChooseForBackground)
	if err != nil {
		return nil, err
	}
	forSigil, err := values.Bool("player_can_choose_for_sigil", c.PlayerCanChooseForSigil)
	if err != nil {
		return nil, err
	}

	v := &Color{
		ID:                           values.String(c.ID),
		Hex:                          values.String(c.Hex),
		PlayerCanChooseForBackground: forBackground,
		PlayerCanChooseForSigil:      forSigil,
	}
	v.SetCore(c.CoreModel)
	return v, nil
}

func colorToCore(v *Color) *core.Color {
	return &core.Color{
		CoreModel:                    v.GetCore(),
		ID:                           values.StringNode(v.ID),
		Hex:                          values.StringNode(v.Hex),
		PlayerCanChooseForBackground: values.BoolNode(v.PlayerCanChooseForBackground),
		PlayerCanChooseForSigil:      values.BoolNode(v.PlayerCanChooseForSigil),
	}
}
