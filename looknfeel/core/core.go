// Package core holds the presence models of looknfeel.xml.
package core

import "github.com/speakeasy-api/gamexml/marshaller"

// MeshKinds are the element names a <meshes> collection may hold, in no particular order.
var MeshKinds = []string{
	"background_mesh",
	"button_mesh",
	"button_pressed_mesh",
	"highlight_mesh",
	"cursor_mesh",
	"left_border_mesh",
	"right_border_mesh",
}

// Looknfeel is the <base> root of looknfeel.xml.
type Looknfeel struct {
	marshaller.CoreModel

	Type              marshaller.Node[string]
	VirtualResolution marshaller.Node[string]
	Widgets           marshaller.Node[*Widgets]
}

var _ marshaller.RootElement = (*Looknfeel)(nil)

func (l *Looknfeel) XMLName() string { return "base" }

func (l *Looknfeel) UnmarshalElement(r *marshaller.ElementReader) {
	r.Attr("type", &l.Type)
	r.Attr("virtual_resolution", &l.VirtualResolution)
	marshaller.Child(r, "widgets", &l.Widgets)
}

func (l *Looknfeel) MarshalElement(w *marshaller.ElementWriter) {
	w.Attr("type", l.Type)
	w.Attr("virtual_resolution", l.VirtualResolution)
	marshaller.WriteChild(w, "widgets", l.Widgets)
}

type Widgets struct {
	marshaller.CoreModel

	Widgets []*Widget
}

func (ws *Widgets) UnmarshalElement(r *marshaller.ElementReader) {
	marshaller.Children(r, "widget", &ws.Widgets)
}

func (ws *Widgets) MarshalElement(w *marshaller.ElementWriter) {
	marshaller.WriteChildren(w, "widget", ws.Widgets)
}

type attrSlot struct {
	name string
	node *marshaller.Node[string]
}

func readAttrs(r *marshaller.ElementReader, slots []attrSlot) {
	for _, s := range slots {
		r.Attr(s.name, s.node)
	}
}

func writeAttrs(w *marshaller.ElementWriter, slots []attrSlot) {
	for _, s := range slots {
		w.Attr(s.name, *s.node)
	}
}

// Widget is a widget template. HorizontalAligment holds the misspelled horizontal_aligment attribute
// found in shipped files, kept apart from HorizontalAlignment.
type Widget struct {
	marshaller.CoreModel

	Type                            marshaller.Node[string]
	Name                            marshaller.Node[string]
	TilingBorderSize                marshaller.Node[string]
	TileBackgroundAccordingToBorder marshaller.Node[string]
	BackgroundTileSize              marshaller.Node[string]
	Focusable                       marshaller.Node[string]
	Style                           marshaller.Node[string]
	TrackAreaInset                  marshaller.Node[string]
	Text                            marshaller.Node[string]
	InitialState                    marshaller.Node[string]
	NumOfCols                       marshaller.Node[string]
	NumOfRows                       marshaller.Node[string]
	MaxNumOfRows                    marshaller.Node[string]
	BorderSize                      marshaller.Node[string]
	ShowScrollBars                  marshaller.Node[string]
	ScrollAreaInset                 marshaller.Node[string]
	CellSize                        marshaller.Node[string]
	LayoutStyle                     marshaller.Node[string]
	LayoutAlignment                 marshaller.Node[string]
	AutoShowScrollBars              marshaller.Node[string]
	IncrementVec                    marshaller.Node[string]
	InitialValue                    marshaller.Node[string]
	MaxAllowedDigit                 marshaller.Node[string]
	MinAllowedValue                 marshaller.Node[string]
	MaxAllowedValue                 marshaller.Node[string]
	StepValue                       marshaller.Node[string]
	MinValue                        marshaller.Node[string]
	MaxValue                        marshaller.Node[string]
	VerticalAlignment               marshaller.Node[string]
	HorizontalAlignment             marshaller.Node[string]
	HorizontalAligment              marshaller.Node[string]
	TextHighlightColor              marshaller.Node[string]
	TextColor                       marshaller.Node[string]
	FontSize                        marshaller.Node[string]
	Size                            marshaller.Node[string]
	Position                        marshaller.Node[string]
	ButtonMesh                      marshaller.Node[string]
	Meshes                          marshaller.Node[*Meshes]
	SubWidgets                      marshaller.Node[*SubWidgets]
}

// attrs lists the attributes in the order they are written.
func (wd *Widget) attrs() []attrSlot {
	return []attrSlot{
		{"type", &wd.Type},
		{"name", &wd.Name},
		{"tiling_border_size", &wd.TilingBorderSize},
		{"tile_background_according_to_border", &wd.TileBackgroundAccordingToBorder},
		{"background_tile_size", &wd.BackgroundTileSize},
		{"focusable", &wd.Focusable},
		{"style", &wd.Style},
		{"track_area_inset", &wd.TrackAreaInset},
		{"text", &wd.Text},
		{"initial_state", &wd.InitialState},
		{"num_of_cols", &wd.NumOfCols},
		{"num_of_rows", &wd.NumOfRows},
		{"max_num_of_rows", &wd.MaxNumOfRows},
		{"border_size", &wd.BorderSize},
		{"show_scroll_bars", &wd.ShowScrollBars},
		{"scroll_area_inset", &wd.ScrollAreaInset},
		{"cell_size", &wd.CellSize},
		{"layout_style", &wd.LayoutStyle},
		{"layout_alignment", &wd.LayoutAlignment},
		{"auto_show_scroll_bars", &wd.AutoShowScrollBars},
		{"increment_vec", &wd.IncrementVec},
		{"initial_value", &wd.InitialValue},
		{"max_allowed_digit", &wd.MaxAllowedDigit},
		{"min_allowed_value", &wd.MinAllowedValue},
		{"max_allowed_value", &wd.MaxAllowedValue},
		{"step_value", &wd.StepValue},
		{"min_value", &wd.MinValue},
		{"max_value", &wd.MaxValue},
		{"vertical_alignment", &wd.VerticalAlignment},
		{"horizontal_alignment", &wd.HorizontalAlignment},
		{"horizontal_aligment", &wd.HorizontalAligment},
		{"text_highlight_color", &wd.TextHighlightColor},
		{"text_color", &wd.TextColor},
		{"font_size", &wd.FontSize},
		{"size", &wd.Size},
		{"position", &wd.Position},
		{"button_mesh", &wd.ButtonMesh},
	}
}

func (wd *Widget) UnmarshalElement(r *marshaller.ElementReader) {
	readAttrs(r, wd.attrs())
	marshaller.Child(r, "meshes", &wd.Meshes)
	marshaller.Child(r, "sub_widgets", &wd.SubWidgets)
}

func (wd *Widget) MarshalElement(w *marshaller.ElementWriter) {
	writeAttrs(w, wd.attrs())
	marshaller.WriteChild(w, "meshes", wd.Meshes)
	marshaller.WriteChild(w, "sub_widgets", wd.SubWidgets)
}

// Meshes holds the meshes of a widget. Kinds may interleave and their order is significant.
type Meshes struct {
	marshaller.CoreModel

	Meshes []*Mesh
}

func (m *Meshes) UnmarshalElement(r *marshaller.ElementReader) {
	marshaller.ChildrenOf(r, MeshKinds, &m.Meshes)
}

func (m *Meshes) MarshalElement(w *marshaller.ElementWriter) {
	marshaller.WriteNamedChildren(w, m.Meshes)
}

// Mesh is one element of a <meshes> collection. Kind is its element name, e.g. button_mesh.
type Mesh struct {
	marshaller.CoreModel

	Kind     string
	Name     marshaller.Node[string]
	Tiling   marshaller.Node[string]
	MainMesh marshaller.Node[string]
	Position marshaller.Node[string]
}

var _ marshaller.NamedElement = (*Mesh)(nil)

func (m *Mesh) ElementName() string { return m.Kind }

func (m *Mesh) UnmarshalElement(r *marshaller.ElementReader) {
	m.Kind = r.Name()
	r.Attr("name", &m.Name)
	r.Attr("tiling", &m.Tiling)
	r.Attr("main_mesh", &m.MainMesh)
	r.Attr("position", &m.Position)
}

func (m *Mesh) MarshalElement(w *marshaller.ElementWriter) {
	w.Attr("name", m.Name)
	w.Attr("tiling", m.Tiling)
	w.Attr("main_mesh", m.MainMesh)
	w.Attr("position", m.Position)
}

type SubWidgets struct {
	marshaller.CoreModel

	SubWidgets []*SubWidget
}

func (s *SubWidgets) UnmarshalElement(r *marshaller.ElementReader) {
	marshaller.Children(r, "sub_widget", &s.SubWidgets)
}

func (s *SubWidgets) MarshalElement(w *marshaller.ElementWriter) {
	marshaller.WriteChildren(w, "sub_widget", s.SubWidgets)
}

// SubWidget is a nested widget. Sub widgets nest to any depth.
type SubWidget struct {
	marshaller.CoreModel

	Ref                 marshaller.Node[string]
	Name                marshaller.Node[string]
	Size                marshaller.Node[string]
	Position            marshaller.Node[string]
	Style               marshaller.Node[string]
	VerticalAlignment   marshaller.Node[string]
	HorizontalAlignment marshaller.Node[string]
	HorizontalAligment  marshaller.Node[string]
	ScrollSpeed         marshaller.Node[string]
	CellSize            marshaller.Node[string]
	LayoutStyle         marshaller.Node[string]
	LayoutAlignment     marshaller.Node[string]
	Text                marshaller.Node[string]
	TextColor           marshaller.Node[string]
	TextHighlightColor  marshaller.Node[string]
	FontSize            marshaller.Node[string]
	Meshes              marshaller.Node[*Meshes]
	SubWidgets          marshaller.Node[*SubWidgets]
}

// attrs lists the attributes in the order they are written.
func (s *SubWidget) attrs() []attrSlot {
	return []attrSlot{
		{"ref", &s.Ref},
		{"name", &s.Name},
		{"size", &s.Size},
		{"position", &s.Position},
		{"style", &s.Style},
		{"vertical_alignment", &s.VerticalAlignment},
		{"horizontal_alignment", &s.HorizontalAlignment},
		{"horizontal_aligment", &s.HorizontalAligment},
		{"scroll_speed", &s.ScrollSpeed},
		{"cell_size", &s.CellSize},
		{"layout_style", &s.LayoutStyle},
		{"layout_alignment", &s.LayoutAlignment},
		{"text", &s.Text},
		{"text_color", &s.TextColor},
		{"text_highlight_color", &s.TextHighlightColor},
		{"font_size", &s.FontSize},
	}
}

func (s *SubWidget) UnmarshalElement(r *marshaller.ElementReader) {
	readAttrs(r, s.attrs())
	marshaller.Child(r, "meshes", &s.Meshes)
	marshaller.Child(r, "sub_widgets", &s.SubWidgets)
}

func (s *SubWidget) MarshalElement(w *marshaller.ElementWriter) {
	writeAttrs(w, s.attrs())
	marshaller.WriteChild(w, "meshes", s.Meshes)
	marshaller.WriteChild(w, "sub_widgets", s.SubWidgets)
}
