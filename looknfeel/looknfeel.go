// Package looknfeel maps looknfeel.xml, the UI widget catalogue, onto a typed view.
//
// Sizes are presentational: their Int accessors fall back to 0 when a value is absent or not a
// number, so a malformed font size never prevents a file from loading. Booleans must use one of
// the recognised spellings.
package looknfeel

import (
	"bytes"
	"context"
	"io"

	"github.com/speakeasy-api/gamexml/looknfeel/core"
	"github.com/speakeasy-api/gamexml/marshaller"
	"github.com/speakeasy-api/gamexml/values"
)

// FileName is the name of the game data file this family describes.
const FileName = "looknfeel.xml"

// MeshKind is the element name of a mesh.
type MeshKind string

const (
	MeshKindBackground    MeshKind = "background_mesh"
	MeshKindButton        MeshKind = "button_mesh"
	MeshKindButtonPressed MeshKind = "button_pressed_mesh"
	MeshKindHighlight     MeshKind = "highlight_mesh"
	MeshKindCursor        MeshKind = "cursor_mesh"
	MeshKindLeftBorder    MeshKind = "left_border_mesh"
	MeshKindRightBorder   MeshKind = "right_border_mesh"
)

type Looknfeel struct {
	marshaller.Model

	Type              *string
	VirtualResolution *string
	Widgets           *Widgets
}

type Widgets struct {
	marshaller.Model

	Widgets []*Widget
}

// Find returns the first widget called name, nil when there is none.
func (ws *Widgets) Find(name string) *Widget {
	if ws == nil {
		return nil
	}
	for _, w := range ws.Widgets {
		if w.Name != nil && *w.Name == name {
			return w
		}
	}
	return nil
}

type Widget struct {
	marshaller.Model

	Type                            *string
	Name                            *string
	TilingBorderSize                *string
	TileBackgroundAccordingToBorder *bool
	BackgroundTileSize              *string
	Focusable                       *bool
	Style                           *string
	TrackAreaInset                  *string
	Text                            *string
	InitialState                    *string
	NumOfCols                       *string
	NumOfRows                       *string
	MaxNumOfRows                    *string
	BorderSize                      *string
	ShowScrollBars                  *bool
	ScrollAreaInset                 *string
	CellSize                        *string
	LayoutStyle                     *string
	LayoutAlignment                 *string
	AutoShowScrollBars              *bool
	IncrementVec                    *string
	InitialValue                    *string
	MaxAllowedDigit                 *string
	MinAllowedValue                 *string
	MaxAllowedValue                 *string
	StepValue                       *string
	MinValue                        *string
	MaxValue                        *string
	VerticalAlignment               *string
	HorizontalAlignment             *string
	HorizontalAligment              *string
	TextHighlightColor              *string
	TextColor                       *string
	FontSize                        *string
	Size                            *string
	Position                        *string
	ButtonMesh                      *string
	Meshes                          *Meshes
	SubWidgets                      *SubWidgets
}

func (wd *Widget) TilingBorderSizeInt() int {
	return values.IntOrZero(wd.TilingBorderSize)
}

func (wd *Widget) SetTilingBorderSize(v int) {
	wd.TilingBorderSize = values.FormatInt(v)
}

func (wd *Widget) BackgroundTileSizeInt() int {
	return values.IntOrZero(wd.BackgroundTileSize)
}

func (wd *Widget) SetBackgroundTileSize(v int) {
	wd.BackgroundTileSize = values.FormatInt(v)
}

func (wd *Widget) NumOfColsInt() int {
	return values.IntOrZero(wd.NumOfCols)
}

func (wd *Widget) SetNumOfCols(v int) {
	wd.NumOfCols = values.FormatInt(v)
}

func (wd *Widget) NumOfRowsInt() int {
	return values.IntOrZero(wd.NumOfRows)
}

func (wd *Widget) SetNumOfRows(v int) {
	wd.NumOfRows = values.FormatInt(v)
}

func (wd *Widget) MaxNumOfRowsInt() int {
	return values.IntOrZero(wd.MaxNumOfRows)
}

func (wd *Widget) SetMaxNumOfRows(v int) {
	wd.MaxNumOfRows = values.FormatInt(v)
}

func (wd *Widget) BorderSizeInt() int {
	return values.IntOrZero(wd.BorderSize)
}

func (wd *Widget) SetBorderSize(v int) {
	wd.BorderSize = values.FormatInt(v)
}

func (wd *Widget) FontSizeInt() int {
	return values.IntOrZero(wd.FontSize)
}

func (wd *Widget) SetFontSize(v int) {
	wd.FontSize = values.FormatInt(v)
}

type Meshes struct {
	marshaller.Model

	Meshes []*Mesh
}

// OfKind returns the meshes of the given kind in document order.
func (m *Meshes) OfKind(kind MeshKind) []*Mesh {
	if m == nil {
		return nil
	}
	var out []*Mesh
	for _, mesh := range m.Meshes {
		if mesh.Kind == kind {
			out = append(out, mesh)
		}
	}
	return out
}

// Mesh is a mesh of a widget. An empty Kind is written as a background mesh.
type Mesh struct {
	marshaller.Model

	Kind     MeshKind
	Name     *string
	Tiling   *bool
	MainMesh *bool
	Position *string
}

type SubWidgets struct {
	marshaller.Model

	SubWidgets []*SubWidget
}

type SubWidget struct {
	marshaller.Model

	Ref                 *string
	Name                *string
	Size                *string
	Position            *string
	Style               *string
	VerticalAlignment   *string
	HorizontalAlignment *string
	HorizontalAligment  *string
	ScrollSpeed         *string
	CellSize            *string
	LayoutStyle         *string
	LayoutAlignment     *string
	Text                *string
	TextColor           *string
	TextHighlightColor  *string
	FontSize            *string
	Meshes              *Meshes
	SubWidgets          *SubWidgets
}

func (s *SubWidget) FontSizeInt() int {
	return values.IntOrZero(s.FontSize)
}

func (s *SubWidget) SetFontSize(v int) {
	s.FontSize = values.FormatInt(v)
}

// Unmarshal reads looknfeel.xml from r into a view.
func Unmarshal(ctx context.Context, r io.Reader) (*Looknfeel, error) {
	c, err := marshaller.Unmarshal[core.Looknfeel](ctx, r)
	if err != nil {
		return nil, err
	}
	return FromCore(c)
}

// Deserialize decodes looknfeel.xml into a view.
func Deserialize(ctx context.Context, data []byte) (*Looknfeel, error) {
	return Unmarshal(ctx, bytes.NewReader(data))
}

// Marshal writes the view as looknfeel.xml to w.
func Marshal(ctx context.Context, v *Looknfeel, w io.Writer) error {
	return marshaller.Marshal(ctx, ToCore(v), w)
}

// Serialize encodes the view as looknfeel.xml.
func Serialize(ctx context.Context, v *Looknfeel) ([]byte, error) {
	return marshaller.Serialize(ctx, ToCore(v))
}
