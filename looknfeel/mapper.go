package looknfeel

import (
	"github.com/speakeasy-api/gamexml/internal/sliceutil"
	"github.com/speakeasy-api/gamexml/looknfeel/core"
	"github.com/speakeasy-api/gamexml/values"
)

// FromCore builds the view of a presence model. It fails with a *validation.FormatError when a
// boolean attribute uses a spelling that is not recognised.
func FromCore(c *core.Looknfeel) (*Looknfeel, error) {
	if c == nil {
		return nil, nil
	}

	widgets, err := values.ChildView(c.Widgets, widgetsFromCore)
	if err != nil {
		return nil, err
	}

	v := &Looknfeel{
		Type:              values.String(c.Type),
		VirtualResolution: values.String(c.VirtualResolution),
		Widgets:           widgets,
	}
	v.SetCore(c.CoreModel)
	return v, nil
}

// ToCore builds the presence model of a view. Nil members become absent members.
func ToCore(v *Looknfeel) *core.Looknfeel {
	if v == nil {
		return nil
	}

	return &core.Looknfeel{
		CoreModel:         v.GetCore(),
		Type:              values.StringNode(v.Type),
		VirtualResolution: values.StringNode(v.VirtualResolution),
		Widgets:           values.ChildNode(v.Widgets, widgetsToCore),
	}
}

func widgetsFromCore(c *core.Widgets) (*Widgets, error) {
	widgets, err := sliceutil.MapErr(c.Widgets, widgetFromCore)
	if err != nil {
		return nil, err
	}

	v := &Widgets{Widgets: widgets}
	v.SetCore(c.CoreModel)
	return v, nil
}

func widgetsToCore(v *Widgets) *core.Widgets {
	return &core.Widgets{
		CoreModel: v.GetCore(),
		Widgets:   sliceutil.Map(v.Widgets, widgetToCore),
	}
}

func widgetFromCore(c *core.Widget) (*Widget, error) {
	tileBackgroundAccordingToBorder, err := values.Bool("tile_background_according_to_border", c.TileBackgroundAccordingToBorder)
	if err != nil {
		return nil, err
	}
	focusable, err := values.Bool("focusable", c.Focusable)
	if err != nil {
		return nil, err
	}
	showScrollBars, err := values.Bool("show_scroll_bars", c.ShowScrollBars)
	if err != nil {
		return nil, err
	}
	autoShowScrollBars, err := values.Bool("auto_show_scroll_bars", c.AutoShowScrollBars)
	if err != nil {
		return nil, err
	}
	meshes, err := values.ChildView(c.Meshes, meshesFromCore)
	if err != nil {
		return nil, err
	}
	subWidgets, err := values.ChildView(c.SubWidgets, subWidgetsFromCore)
	if err != nil {
		return nil, err
	}

	v := &Widget{
		Type:                            values.String(c.Type),
		Name:                            values.String(c.Name),
		TilingBorderSize:                values.String(c.TilingBorderSize),
		TileBackgroundAccordingToBorder: tileBackgroundAccordingToBorder,
		BackgroundTileSize:              values.String(c.BackgroundTileSize),
		Focusable:                       focusable,
		Style:                           values.String(c.Style),
		TrackAreaInset:                  values.String(c.TrackAreaInset),
		Text:                            values.String(c.Text),
		InitialState:                    values.String(c.InitialState),
		NumOfCols:                       values.String(c.NumOfCols),
		NumOfRows:                       values.String(c.NumOfRows),
		MaxNumOfRows:                    values.String(c.MaxNumOfRows),
		BorderSize:                      values.String(c.BorderSize),
		ShowScrollBars:                  showScrollBars,
		ScrollAreaInset:                 values.String(c.ScrollAreaInset),
		CellSize:                        values.String(c.CellSize),
		LayoutStyle:                     values.String(c.LayoutStyle),
		LayoutAlignment:                 values.String(c.LayoutAlignment),
		AutoShowScrollBars:              autoShowScrollBars,
		IncrementVec:                    values.String(c.IncrementVec),
		InitialValue:                    values.String(c.InitialValue),
		MaxAllowedDigit:                 values.String(c.MaxAllowedDigit),
		MinAllowedValue:                 values.String(c.MinAllowedValue),
		MaxAllowedValue:                 values.String(c.MaxAllowedValue),
		StepValue:                       values.String(c.StepValue),
		MinValue:                        values.String(c.MinValue),
		MaxValue:                        values.String(c.MaxValue),
		VerticalAlignment:               values.String(c.VerticalAlignment),
		HorizontalAlignment:             values.String(c.HorizontalAlignment),
		HorizontalAligment:              values.String(c.HorizontalAligment),
		TextHighlightColor:              values.String(c.TextHighlightColor),
		TextColor:                       values.String(c.TextColor),
		FontSize:                        values.String(c.FontSize),
		Size:                            values.String(c.Size),
		Position:                        values.String(c.Position),
		ButtonMesh:                      values.String(c.ButtonMesh),
		Meshes:                          meshes,
		SubWidgets:                      subWidgets,
	}
	v.SetCore(c.CoreModel)
	return v, nil
}

func widgetToCore(v *Widget) *core.Widget {
	return &core.Widget{
		CoreModel:                       v.GetCore(),
		Type:                            values.StringNode(v.Type),
		Name:                            values.StringNode(v.Name),
		TilingBorderSize:                values.StringNode(v.TilingBorderSize),
		TileBackgroundAccordingToBorder: values.BoolNode(v.TileBackgroundAccordingToBorder),
		BackgroundTileSize:              values.StringNode(v.BackgroundTileSize),
		Focusable:                       values.BoolNode(v.Focusable),
		Style:                           values.StringNode(v.Style),
		TrackAreaInset:                  values.StringNode(v.TrackAreaInset),
		Text:                            values.StringNode(v.Text),
		InitialState:                    values.StringNode(v.InitialState),
		NumOfCols:                       values.StringNode(v.NumOfCols),
		NumOfRows:                       values.StringNode(v.NumOfRows),
		MaxNumOfRows:                    values.StringNode(v.MaxNumOfRows),
		BorderSize:                      values.StringNode(v.BorderSize),
		ShowScrollBars:                  values.BoolNode(v.ShowScrollBars),
		ScrollAreaInset:                 values.StringNode(v.ScrollAreaInset),
		CellSize:                        values.StringNode(v.CellSize),
		LayoutStyle:                     values.StringNode(v.LayoutStyle),
		LayoutAlignment:                 values.StringNode(v.LayoutAlignment),
		AutoShowScrollBars:              values.BoolNode(v.AutoShowScrollBars),
		IncrementVec:                    values.StringNode(v.IncrementVec),
		InitialValue:                    values.StringNode(v.InitialValue),
		MaxAllowedDigit:                 values.StringNode(v.MaxAllowedDigit),
		MinAllowedValue:                 values.StringNode(v.MinAllowedValue),
		MaxAllowedValue:                 values.StringNode(v.MaxAllowedValue),
		StepValue:                       values.StringNode(v.StepValue),
		MinValue:                        values.StringNode(v.MinValue),
		MaxValue:                        values.StringNode(v.MaxValue),
		VerticalAlignment:               values.StringNode(v.VerticalAlignment),
		HorizontalAlignment:             values.StringNode(v.HorizontalAlignment),
		HorizontalAligment:              values.StringNode(v.HorizontalAligment),
		TextHighlightColor:              values.StringNode(v.TextHighlightColor),
		TextColor:                       values.StringNode(v.TextColor),
		FontSize:                        values.StringNode(v.FontSize),
		Size:                            values.StringNode(v.Size),
		Position:                        values.StringNode(v.Position),
		ButtonMesh:                      values.StringNode(v.ButtonMesh),
		Meshes:                          values.ChildNode(v.Meshes, meshesToCore),
		SubWidgets:                      values.ChildNode(v.SubWidgets, subWidgetsToCore),
	}
}

func meshesFromCore(c *core.Meshes) (*Meshes, error) {
	meshes, err := sliceutil.MapErr(c.Meshes, meshFromCore)
	if err != nil {
		return nil, err
	}

	v := &Meshes{Meshes: meshes}
	v.SetCore(c.CoreModel)
	return v, nil
}

func meshesToCore(v *Meshes) *core.Meshes {
	return &core.Meshes{
		CoreModel: v.GetCore(),
		Meshes:    sliceutil.Map(v.Meshes, meshToCore),
	}
}

func meshFromCore(c *core.Mesh) (*Mesh, error) {
	tiling, err := values.Bool("tiling", c.Tiling)
	if err != nil {
		return nil, err
	}
	mainMesh, err := values.Bool("main_mesh", c.MainMesh)
	if err != nil {
		return nil, err
	}

	v := &Mesh{
		Kind:     MeshKind(c.Kind),
		Name:     values.String(c.Name),
		Tiling:   tiling,
		MainMesh: mainMesh,
		Position: values.String(c.Position),
	}
	v.SetCore(c.CoreModel)
	return v, nil
}

func meshToCore(v *Mesh) *core.Mesh {
	kind := v.Kind
	if kind == "" {
		kind = MeshKindBackground
	}

	return &core.Mesh{
		CoreModel: v.GetCore(),
		Kind:      string(kind),
		Name:      values.StringNode(v.Name),
		Tiling:    values.BoolNode(v.Tiling),
		MainMesh:  values.BoolNode(v.MainMesh),
		Position:  values.StringNode(v.Position),
	}
}

func subWidgetsFromCore(c *core.SubWidgets) (*SubWidgets, error) {
	subWidgets, err := sliceutil.MapErr(c.SubWidgets, subWidgetFromCore)
	if err != nil {
		return nil, err
	}

	v := &SubWidgets{SubWidgets: subWidgets}
	v.SetCore(c.CoreModel)
	return v, nil
}

func subWidgetsToCore(v *SubWidgets) *core.SubWidgets {
	return &core.SubWidgets{
		CoreModel:  v.GetCore(),
		SubWidgets: sliceutil.Map(v.SubWidgets, subWidgetToCore),
	}
}

func subWidgetFromCore(c *core.SubWidget) (*SubWidget, error) {
	meshes, err := values.ChildView(c.Meshes, meshesFromCore)
	if err != nil {
		return nil, err
	}
	subWidgets, err := values.ChildView(c.SubWidgets, subWidgetsFromCore)
	if err != nil {
		return nil, err
	}

	v := &SubWidget{
		Ref:                 values.String(c.Ref),
		Name:                values.String(c.Name),
		Size:                values.String(c.Size),
		Position:            values.String(c.Position),
		Style:               values.String(c.Style),
		VerticalAlignment:   values.String(c.VerticalAlignment),
		HorizontalAlignment: values.String(c.HorizontalAlignment),
		HorizontalAligment:  values.String(c.HorizontalAligment),
		ScrollSpeed:         values.String(c.ScrollSpeed),
		CellSize:            values.String(c.CellSize),
		LayoutStyle:         values.String(c.LayoutStyle),
		LayoutAlignment:     values.String(c.LayoutAlignment),
		Text:                values.String(c.Text),
		TextColor:           values.String(c.TextColor),
		TextHighlightColor:  values.String(c.TextHighlightColor),
		FontSize:            values.String(c.FontSize),
		Meshes:              meshes,
		SubWidgets:          subWidgets,
	}
	v.SetCore(c.CoreModel)
	return v, nil
}

func subWidgetToCore(v *SubWidget) *core.SubWidget {
	return &core.SubWidget{
		CoreModel:           v.GetCore(),
		Ref:                 values.StringNode(v.Ref),
		Name:                values.StringNode(v.Name),
		Size:                values.StringNode(v.Size),
		Position:            values.StringNode(v.Position),
		Style:               values.StringNode(v.Style),
		VerticalAlignment:   values.StringNode(v.VerticalAlignment),
		HorizontalAlignment: values.StringNode(v.HorizontalAlignment),
		HorizontalAligment:  values.StringNode(v.HorizontalAligment),
		ScrollSpeed:         values.StringNode(v.ScrollSpeed),
		CellSize:            values.StringNode(v.CellSize),
		LayoutStyle:         values.StringNode(v.LayoutStyle),
		LayoutAlignment:     values.StringNode(v.LayoutAlignment),
		Text:                values.StringNode(v.Text),
		TextColor:           values.StringNode(v.TextColor),
		TextHighlightColor:  values.StringNode(v.TextHighlightColor),
		FontSize:            values.StringNode(v.FontSize),
		Meshes:              values.ChildNode(v.Meshes, meshesToCore),
		SubWidgets:          values.ChildNode(v.SubWidgets, subWidgetsToCore),
	}
}
