package editor

import (
	"fmt"
	"image/color"
	"slices"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/tilemapeditor/common"
	"github.com/milk9111/tilemapeditor/config"
)

type paneMode int

const (
	paneNone paneMode = iota
	panePicking
	paneEditing
)

// UIPane is the ebitenui side panel, anchored to the left edge.
type UIPane struct {
	ui   *ebitenui.UI
	cfg  config.Config
	face text.Face

	panel   *widget.Container
	picking *widget.Container
	editing *widget.Container
	mode    paneMode

	actions []Action

	entries      []TilemapEntry
	entryButtons []*widget.Button

	toolGroup    *widget.RadioGroup
	toolButtons  []*widget.Button
	shownTool    Tool
	textureLabel *widget.Label
	flipButtons  [3]*widget.Button
	placeholder  *widget.Container
}

func NewUIPane(cfg config.Config) (*UIPane, error) {
	face, err := newFace(cfg.Pane.FontSize)
	if err != nil {
		return nil, err
	}
	p := &UIPane{ui: &ebitenui.UI{}, cfg: cfg, face: face}
	p.build()
	return p, nil
}

func (p *UIPane) push(a Action) {
	p.actions = append(p.actions, a)
}

func (p *UIPane) build() {
	p.ui.PrimaryTheme = newEditorTheme(&p.face)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	p.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(p.ui.PrimaryTheme.PanelTheme.BackgroundImage),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 8, Right: 8}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(p.cfg.Pane.Width, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchVertical:    true,
			}),
		),
	)
	root.AddChild(p.panel)
	p.ui.Container = root

	p.picking = column(4)
	p.entryButtons = nil
	p.editing = p.buildEditing()
	p.mode = paneNone
}

func column(spacing int) *widget.Container {
	return widget.NewContainer(widget.ContainerOpts.Layout(widget.NewRowLayout(
		widget.RowLayoutOpts.Direction(widget.DirectionVertical),
		widget.RowLayoutOpts.Spacing(spacing),
	)))
}

func row(spacing int) *widget.Container {
	return widget.NewContainer(widget.ContainerOpts.Layout(widget.NewRowLayout(
		widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
		widget.RowLayoutOpts.Spacing(spacing),
	)))
}

func (p *UIPane) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(p.ui.PrimaryTheme.ButtonTheme.Image),
		widget.ButtonOpts.Text(label, &p.face, buttonTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(40, 24)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (p *UIPane) buildEditing() *widget.Container {
	c := column(8)
	c.AddChild(p.button("Exit", func() { p.push(ExitEditing{}) }))

	tools := row(4)
	p.toolButtons = nil
	for _, t := range Tools {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(p.ui.PrimaryTheme.ButtonTheme.Image),
			widget.ButtonOpts.Text(t.String(), &p.face, buttonTextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(48, 24)),
		)
		p.toolButtons = append(p.toolButtons, btn)
		tools.AddChild(btn)
	}
	elements := make([]widget.RadioGroupElement, 0, len(p.toolButtons))
	for _, b := range p.toolButtons {
		elements = append(elements, b)
	}
	p.toolGroup = widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			for idx, b := range p.toolButtons {
				// Changes made by ShowEditing land here too; only report
				// ones that differ from what is shown.
				if args.Active == b && Tools[idx] != p.shownTool {
					p.shownTool = Tools[idx]
					p.push(SelectTool{Tool: Tools[idx]})
					return
				}
			}
		}),
	)
	p.shownTool = ToolPainter
	p.toolGroup.SetActive(p.toolButtons[0])
	c.AddChild(tools)

	p.textureLabel = widget.NewLabel(widget.LabelOpts.Text("Tile texture ID: 0", &p.face, labelColor))
	c.AddChild(p.textureLabel)

	p.placeholder = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{20, 20, 20, 255})),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(int(p.cfg.Palette.Width), int(p.cfg.Palette.Height)),
		),
	)
	c.AddChild(p.placeholder)

	p.flipButtons = [3]*widget.Button{
		p.button(flipLabel("Horizontal", false), func() { p.push(ToggleFlip{X: true}) }),
		p.button(flipLabel("Vertical", false), func() { p.push(ToggleFlip{Y: true}) }),
		p.button(flipLabel("Diagonal", false), func() { p.push(ToggleFlip{D: true}) }),
	}
	for _, b := range p.flipButtons {
		c.AddChild(b)
	}

	rotate := row(4)
	rotate.AddChild(p.button("+90°", func() { p.push(Rotate{Clockwise: true}) }))
	rotate.AddChild(p.button("-90°", func() { p.push(Rotate{}) }))
	c.AddChild(rotate)

	tints := row(4)
	for _, tint := range p.cfg.Colors.Tints {
		col := tint.NRGBA()
		swatch := solidNineSlice(col)
		tints.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: swatch, Hover: swatch, Pressed: swatch}),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(24, 24)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				p.push(SelectTint{Color: col})
			}),
		))
	}
	c.AddChild(tints)
	return c
}

func flipLabel(axis string, on bool) string {
	state := "off"
	if on {
		state = "on"
	}
	return axis + " flip: " + state
}

func relabel(b *widget.Button, label string) {
	if t := b.Text(); t != nil {
		t.Label = label
	}
}

func (p *UIPane) switchTo(mode paneMode) {
	if p.mode == mode {
		return
	}
	switch p.mode {
	case panePicking:
		p.panel.RemoveChild(p.picking)
	case paneEditing:
		p.panel.RemoveChild(p.editing)
	}
	switch mode {
	case panePicking:
		p.panel.AddChild(p.picking)
	case paneEditing:
		p.panel.AddChild(p.editing)
	}
	p.mode = mode
}

func (p *UIPane) Update() {
	p.ui.Update()
}

func (p *UIPane) Draw(screen *ebiten.Image) {
	p.ui.Draw(screen)
}

func (p *UIPane) Actions() []Action {
	out := p.actions
	p.actions = nil
	return out
}

func (p *UIPane) ShowPicking(entries []TilemapEntry) {
	p.switchTo(panePicking)
	if slices.Equal(entries, p.entries) {
		return
	}
	for _, b := range p.entryButtons {
		p.picking.RemoveChild(b)
	}
	p.entryButtons = p.entryButtons[:0]
	p.entries = slices.Clone(entries)
	for _, e := range p.entries {
		tilemap := e.Tilemap
		b := p.button(e.Label, func() { p.push(PickTilemap{Tilemap: tilemap}) })
		p.entryButtons = append(p.entryButtons, b)
		p.picking.AddChild(b)
	}
}

func (p *UIPane) ShowEditing(v EditingView) {
	p.switchTo(paneEditing)
	if v.Tool != p.shownTool && int(v.Tool) < len(p.toolButtons) {
		p.shownTool = v.Tool
		p.toolGroup.SetActive(p.toolButtons[v.Tool])
	}
	p.textureLabel.Label = fmt.Sprintf("Tile texture ID: %d", v.Brush.Texture)
	relabel(p.flipButtons[0], flipLabel("Horizontal", v.Brush.Flip.X))
	relabel(p.flipButtons[1], flipLabel("Vertical", v.Brush.Flip.Y))
	relabel(p.flipButtons[2], flipLabel("Diagonal", v.Brush.Flip.D))
}

func (p *UIPane) PaletteRect() (common.Rect, bool) {
	if p.mode != paneEditing || p.placeholder == nil {
		return common.Rect{}, false
	}
	r := p.placeholder.GetWidget().Rect
	if r.Empty() {
		return common.Rect{}, false
	}
	return common.Rect{
		Min: common.Vec2{X: float64(r.Min.X), Y: float64(r.Min.Y)},
		Max: common.Vec2{X: float64(r.Max.X), Y: float64(r.Max.Y)},
	}, true
}

// Configure rebuilds the widgets with cfg and restores the shown mode.
func (p *UIPane) Configure(cfg config.Config) {
	if face, err := newFace(cfg.Pane.FontSize); err == nil {
		p.face = face
	}
	p.cfg = cfg
	mode := p.mode
	entries := p.entries
	p.entries = nil
	p.build()
	switch mode {
	case panePicking:
		p.ShowPicking(entries)
	case paneEditing:
		p.switchTo(paneEditing)
	}
}
