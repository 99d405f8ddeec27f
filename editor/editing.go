package editor

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilemapeditor/common"
	"github.com/milk9111/tilemapeditor/ecs"
	"github.com/milk9111/tilemapeditor/tiledata"
	"github.com/milk9111/tilemapeditor/tilemap"
)

// editingState edits one tilemap.
type editingState struct {
	tilemap ecs.Entity
	tool    Tool
	brush   TileProperties
	texture TextureID
	atlas   tilemap.ImageHandle
	tileset tiledata.TilesetID
	palette palette

	// paletteRect is where the palette was laid out last frame.
	paletteRect common.Rect
}

var defaultPaletteOrigin = common.Vec2{X: 8, Y: 8}

func newEditingState(e *Editor, tm ecs.Entity) (*editingState, error) {
	q, err := queryTilemap(e.world, tm)
	if err != nil {
		return nil, err
	}
	if *q.typ != tilemap.Square {
		return nil, &UnsupportedTilemapTypeError{Type: *q.typ}
	}
	atlas, err := q.texture.Single()
	if err != nil {
		return nil, err
	}
	if _, ok := e.images.ImageSize(atlas); !ok {
		return nil, &InvalidImageHandleError{Handle: atlas}
	}
	return &editingState{
		tilemap: tm,
		tool:    ToolPainter,
		brush:   DefaultTileProperties(),
		texture: e.textures.Add(atlas),
		atlas:   atlas,
		tileset: tiledata.SingleImage(atlas),
	}, nil
}

func (s *editingState) cleanup(e *Editor) {
	e.textures.Remove(s.texture)
}

func (s *editingState) apply(a Action) Message {
	switch a := a.(type) {
	case ExitEditing:
		return StopEditing{}
	case SelectTool:
		s.tool = a.Tool
	case ToggleFlip:
		s.brush.Flip.X = s.brush.Flip.X != a.X
		s.brush.Flip.Y = s.brush.Flip.Y != a.Y
		s.brush.Flip.D = s.brush.Flip.D != a.D
	case Rotate:
		if a.Clockwise {
			s.brush.Flip = s.brush.Flip.RotatePlus90()
		} else {
			s.brush.Flip = s.brush.Flip.RotateMinus90()
		}
	case SelectTint:
		s.brush.Color = tilemap.TileColor{Color: a.Color}
	}
	return nil
}

// shortcuts turns key presses into the same actions the pane reports.
func (s *editingState) shortcuts(f *frame) []Action {
	keys := f.cfg.Keys
	var out []Action
	if f.in.KeyJustPressed(keys.FlipX) {
		out = append(out, ToggleFlip{X: true})
	}
	if f.in.KeyJustPressed(keys.FlipY) {
		out = append(out, ToggleFlip{Y: true})
	}
	if f.in.KeyJustPressed(keys.FlipD) {
		out = append(out, ToggleFlip{D: true})
	}
	if f.in.KeyJustPressed(keys.Rotate) {
		out = append(out, Rotate{Clockwise: f.in.KeyPressed(keys.RotateModifier)})
	}
	for _, b := range []struct {
		key  ebiten.Key
		tool Tool
	}{
		{keys.Brush, ToolPainter},
		{keys.Eraser, ToolEraser},
		{keys.Picker, ToolPicker},
		{keys.Whois, ToolWhois},
	} {
		if f.in.KeyJustPressed(b.key) {
			out = append(out, SelectTool{Tool: b.tool})
		}
	}
	if f.in.KeyJustPressed(keys.Exit) {
		out = append(out, ExitEditing{})
	}
	return out
}

func (s *editingState) ui(e *Editor, f *frame) Message {
	var actions []Action
	if e.pane != nil {
		actions = e.pane.Actions()
	}
	actions = append(actions, s.shortcuts(f)...)
	for _, a := range actions {
		if msg := s.apply(a); msg != nil {
			return msg
		}
	}

	q, err := queryTilemap(e.world, s.tilemap)
	if err != nil {
		return ShowErrorAndReturnToPicking{Err: err}
	}
	atlasSize, ok := e.images.ImageSize(s.atlas)
	if !ok {
		return ShowErrorAndReturnToPicking{Err: &InvalidImageHandleError{Handle: s.atlas}}
	}

	rect := common.RectFromMinSize(defaultPaletteOrigin, common.Vec2{X: f.cfg.Palette.Width, Y: f.cfg.Palette.Height})
	if e.pane != nil {
		if r, ok := e.pane.PaletteRect(); ok {
			rect = r
		}
	}
	s.paletteRect = rect
	paneFrame := *f
	paneFrame.draw = &e.paneOps
	s.palette.step(&paneFrame, paletteView{
		rect:      rect,
		atlasSize: atlasSize,
		tileSize:  *q.tileSize,
		texture:   s.texture,
	}, &s.brush.Texture)

	if e.pane != nil {
		e.pane.ShowEditing(EditingView{Tool: s.tool, Brush: s.brush})
	}
	return nil
}

func (s *editingState) viewport(e *Editor, f *frame) Message {
	proj, ok := tilemap.ActiveProjection(e.world, e.viewport)
	if !ok {
		return nil
	}
	q, err := queryTilemap(e.world, s.tilemap)
	if err != nil {
		return ShowErrorAndReturnToPicking{Err: err}
	}
	atlasSize, ok := e.images.ImageSize(s.atlas)
	if !ok {
		return ShowErrorAndReturnToPicking{Err: &InvalidImageHandleError{Handle: s.atlas}}
	}

	points := tilemapPoints(proj, q)
	f.draw.StrokeRect(points.TilemapRect(), 2, f.cfg.Colors.MapOutline.NRGBA())

	text := f.cfg.Colors.Text.NRGBA()
	f.draw.Label("Tool: "+s.tool.String(), text)

	cursor := f.in.CursorPosition()
	pos, ok := hoveredTile(cursor, points, *q.size)
	if !ok || !e.viewport.Contains(cursor) || s.paletteRect.Contains(cursor) {
		f.draw.Label("Pos: out of bounds", text)
		return nil
	}
	f.draw.Label(fmt.Sprintf("Pos: %d %d", pos.X, pos.Y), text)

	ctx := &ToolContext{
		world:     e.world,
		types:     e.types,
		registry:  e.registry,
		points:    points,
		tilemap:   s.tilemap,
		tileset:   s.tileset,
		texture:   s.texture,
		atlasSize: atlasSize,
		tileSize:  *q.tileSize,
		Brush:     &s.brush,
	}
	if err := s.tool.act(ctx, pos, f); err != nil {
		return ShowErrorAndReturnToPicking{Err: err}
	}
	return nil
}
