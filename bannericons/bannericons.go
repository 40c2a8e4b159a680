// Package bannericons maps banner_icons.xml onto a typed view.
//
// The presence models live in the core subpackage. FromCore and ToCore convert between the two;
// Unmarshal and Marshal chain them with the marshaller so callers can work on the view alone.
package bannericons

import (
	"bytes"
	"context"
	"io"

	"github.com/speakeasy-api/gamexml/bannericons/core"
	"github.com/speakeasy-api/gamexml/marshaller"
	"github.com/speakeasy-api/gamexml/values"
)

// FileName is the name of the game data file this family describes.
const FileName = "banner_icons.xml"

type BannerIcons struct {
	marshaller.Model

	Type           *string
	BannerIconData *BannerIconData
}

type BannerIconData struct {
	marshaller.Model

	BannerIconGroups []*BannerIconGroup
	BannerColors     *BannerColors
}

type BannerIconGroup struct {
	marshaller.Model

	ID          *string
	Name        *string
	IsPattern   *bool
	Backgrounds []*Background
	Icons       []*Icon
}

// IDInt returns the group id, 0 when absent.
func (g *BannerIconGroup) IDInt() (int, error) {
	return values.Int("id", g.ID)
}

func (g *BannerIconGroup) SetID(id int) {
	g.ID = values.FormatInt(id)
}

type Background struct {
	marshaller.Model

	ID               *string
	MeshName         *string
	IsBaseBackground *bool
}

// IDInt returns the background id, 0 when absent.
func (b *Background) IDInt() (int, error) {
	return values.Int("id", b.ID)
}

func (b *Background) SetID(id int) {
	b.ID = values.FormatInt(id)
}

type Icon struct {
	marshaller.Model

	ID           *string
	MaterialName *string
	TextureIndex *string
	IsReserved   *bool
}

// IDInt returns the icon id, 0 when absent.
func (i *Icon) IDInt() (int, error) {
	return values.Int("id", i.ID)
}

func (i *Icon) SetID(id int) {
	i.ID = values.FormatInt(id)
}

// TextureIndexInt returns the index of the icon in its material atlas, 0 when absent.
func (i *Icon) TextureIndexInt() (int, error) {
	return values.Int("texture_index", i.TextureIndex)
}

func (i *Icon) SetTextureIndex(index int) {
	i.TextureIndex = values.FormatInt(index)
}

func (i *Icon) ClearTextureIndex() {
	i.TextureIndex = nil
}

type BannerColors struct {
	marshaller.Model

	Colors []*Color
}

type Color struct {
	marshaller.Model

	ID *string
	// Hex is the ARGB color as written in the file, e.g. 0xffB57A1E.
	Hex                          *string
	PlayerCanChooseForBackground *bool
	PlayerCanChooseForSigil      *bool
}

// IDInt returns the color id, 0 when absent.
func (c *Color) IDInt() (int, error) {
	return values.Int("id", c.ID)
}

func (c *Color) SetID(id int) {
	c.ID = values.FormatInt(id)
}

// Unmarshal reads banner_icons.xml from r into a view.
func Unmarshal(ctx context.Context, r io.Reader) (*BannerIcons, error) {
	c, err := marshaller.Unmarshal[core.BannerIcons](ctx, r)
	if err != nil {
		return nil, err
	}
	return FromCore(c)
}

// Deserialize decodes banner_icons.xml into a view.
func Deserialize(ctx context.Context, data []byte) (*BannerIcons, error) {
	return Unmarshal(ctx, bytes.NewReader(data))
}

// Marshal writes the view as banner_icons.xml to w.
func Marshal(ctx context.Context, v *BannerIcons, w io.Writer) error {
	return marshaller.Marshal(ctx, ToCore(v), w)
}

// Serialize encodes the view as banner_icons.xml.
func Serialize(ctx context.Context, v *BannerIcons) ([]byte, error) {
	return marshaller.Serialize(ctx, ToCore(v))
}
