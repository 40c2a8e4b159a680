// Package core holds the presence models of banner_icons.xml.
package core

import "github.com/speakeasy-api/gamexml/marshaller"

// BannerIcons is the <base> root of banner_icons.xml.
type BannerIcons struct {
	marshaller.CoreModel

	Type           marshaller.Node[string]
	BannerIconData marshaller.Node[*BannerIconData]
}

var _ marshaller.RootElement = (*BannerIcons)(nil)

func (b *BannerIcons) XMLName() string { return "base" }

func (b *BannerIcons) UnmarshalElement(r *marshaller.ElementReader) {
	r.Attr("type", &b.Type)
	marshaller.Child(r, "BannerIconData", &b.BannerIconData)
}

func (b *BannerIcons) MarshalElement(w *marshaller.ElementWriter) {
	w.Attr("type", b.Type)
	marshaller.WriteChild(w, "BannerIconData", b.BannerIconData)
}

type BannerIconData struct {
	marshaller.CoreModel

	BannerIconGroups []*BannerIconGroup
	BannerColors     marshaller.Node[*BannerColors]
}

func (d *BannerIconData) UnmarshalElement(r *marshaller.ElementReader) {
	marshaller.Children(r, "BannerIconGroup", &d.BannerIconGroups)
	marshaller.Child(r, "BannerColors", &d.BannerColors)
}

func (d *BannerIconData) MarshalElement(w *marshaller.ElementWriter) {
	marshaller.WriteChildren(w, "BannerIconGroup", d.BannerIconGroups)
	marshaller.WriteChild(w, "BannerColors", d.BannerColors)
}

type BannerIconGroup struct {
	marshaller.CoreModel

	ID          marshaller.Node[string]
	Name        marshaller.Node[string]
	IsPattern   marshaller.Node[string]
	Backgrounds []*Background
	Icons       []*Icon
}

func (g *BannerIconGroup) UnmarshalElement(r *marshaller.ElementReader) {
	r.RequiredAttr("id", &g.ID)
	r.Attr("name", &g.Name)
	r.Attr("is_pattern", &g.IsPattern)
	marshaller.Children(r, "Background", &g.Backgrounds)
	marshaller.Children(r, "Icon", &g.Icons)
}

func (g *BannerIconGroup) MarshalElement(w *marshaller.ElementWriter) {
	w.RequiredAttr("id", g.ID)
	w.Attr("name", g.Name)
	w.Attr("is_pattern", g.IsPattern)
	marshaller.WriteChildren(w, "Background", g.Backgrounds)
	marshaller.WriteChildren(w, "Icon", g.Icons)
}

type Background struct {
	marshaller.CoreModel

	ID               marshaller.Node[string]
	MeshName         marshaller.Node[string]
	IsBaseBackground marshaller.Node[string]
}

func (b *Background) UnmarshalElement(r *marshaller.ElementReader) {
	r.RequiredAttr("id", &b.ID)
	r.Attr("mesh_name", &b.MeshName)
	r.Attr("is_base_background", &b.IsBaseBackground)
}

func (b *Background) MarshalElement(w *marshaller.ElementWriter) {
	w.RequiredAttr("id", b.ID)
	w.Attr("mesh_name", b.MeshName)
	w.Attr("is_base_background", b.IsBaseBackground)
}

type Icon struct {
	marshaller.CoreModel

	ID           marshaller.Node[string]
	MaterialName marshaller.Node[string]
	TextureIndex marshaller.Node[string]
	IsReserved   marshaller.Node[string]
}

func (i *Icon) UnmarshalElement(r *marshaller.ElementReader) {
	r.RequiredAttr("id", &i.ID)
	r.Attr("material_name", &i.MaterialName)
	r.Attr("texture_index", &i.TextureIndex)
	r.Attr("is_reserved", &i.IsReserved)
}

func (i *Icon) MarshalElement(w *marshaller.ElementWriter) {
	w.RequiredAttr("id", i.ID)
	w.Attr("material_name", i.MaterialName)
	w.Attr("texture_index", i.TextureIndex)
	w.Attr("is_reserved", i.IsReserved)
}

type BannerColors struct {
	marshaller.CoreModel

	Colors []*Color
}

func (c *BannerColors) UnmarshalElement(r *marshaller.ElementReader) {
	marshaller.Children(r, "Color", &c.Colors)
}

func (c *BannerColors) MarshalElement(w *marshaller.ElementWriter) {
	marshaller.WriteChildren(w, "Color", c.Colors)
}

type Color struct {
	marshaller.CoreModel

	ID                           marshaller.Node[string]
	Hex                          marshaller.Node[string]
	PlayerCanChooseForBackground marshaller.Node[string]
	PlayerCanChooseForSigil      marshaller.Node[string]
}

func (c *Color) UnmarshalElement(r *marshaller.ElementReader) {
	r.RequiredAttr("id", &c.ID)
	r.Attr("hex", &c.Hex)
	r.Attr("player_can_choose_for_background", &c.PlayerCanChooseForBackground)
	r.Attr("player_can_choose_for_sigil", &c.PlayerCanChooseForSigil)
}

func (c *Color) MarshalElement(w *marshaller.ElementWriter) {
	w.RequiredAttr("id", c.ID)
	w.Attr("hex", c.Hex)
	w.Attr("player_can_choose_for_background", c.PlayerCanChooseForBackground)
	w.Attr("player_can_choose_for_sigil", c.PlayerCanChooseForSigil)
}
