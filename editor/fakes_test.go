package editor

import (
	"bytes"
	"errors"
	"log"
	"slices"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilemapeditor/common"
	"github.com/milk9111/tilemapeditor/config"
	"github.com/milk9111/tilemapeditor/ecs"
	"github.com/milk9111/tilemapeditor/ecs/component"
	"github.com/milk9111/tilemapeditor/tilemap"
)

// fakeInput is one frame of input. click implies the button is held.
type fakeInput struct {
	cursor common.Vec2
	down   bool
	click  bool
	keys   []ebiten.Key // just pressed
	held   []ebiten.Key
	wheel  common.Vec2
}

func (f fakeInput) CursorPosition() common.Vec2 { return f.cursor }

func (f fakeInput) MouseButtonPressed(b ebiten.MouseButton) bool {
	return b == primaryButton && (f.down || f.click)
}

func (f fakeInput) MouseButtonJustPressed(b ebiten.MouseButton) bool {
	return b == primaryButton && f.click
}

func (f fakeInput) KeyPressed(k ebiten.Key) bool {
	return slices.Contains(f.held, k) || slices.Contains(f.keys, k)
}

func (f fakeInput) KeyJustPressed(k ebiten.Key) bool {
	return slices.Contains(f.keys, k)
}

func (f fakeInput) Wheel() common.Vec2 { return f.wheel }

type fakeImages map[tilemap.ImageHandle]common.Vec2

func (f fakeImages) ImageSize(h tilemap.ImageHandle) (common.Vec2, bool) {
	s, ok := f[h]
	return s, ok
}

type fakeClipboard struct {
	texts []string
	err   error
}

func (c *fakeClipboard) WriteText(s string) error {
	if c.err != nil {
		return c.err
	}
	c.texts = append(c.texts, s)
	return nil
}

var errClipboard = errors.New("clipboard unavailable")

type fakePane struct {
	queued     []Action
	updates    int
	picking    []TilemapEntry
	editing    *EditingView
	rect       common.Rect
	configured []config.Config
}

func (p *fakePane) Update() { p.updates++ }

func (p *fakePane) Draw(*ebiten.Image) {}

func (p *fakePane) Configure(c config.Config) { p.configured = append(p.configured, c) }

func (p *fakePane) Actions() []Action {
	out := p.queued
	p.queued = nil
	return out
}

func (p *fakePane) ShowPicking(entries []TilemapEntry) {
	p.picking = entries
	p.editing = nil
}

func (p *fakePane) ShowEditing(v EditingView) {
	p.picking = nil
	p.editing = &v
}

func (p *fakePane) PaletteRect() (common.Rect, bool) {
	return p.rect, p.rect != (common.Rect{})
}

const atlasHandle tilemap.ImageHandle = "atlas.png"

// The palette sits well away from the map so clicks never hit both.
var (
	paletteRect = common.RectFromMinSize(common.Vec2{X: 1000, Y: 1000}, common.Vec2{X: 200, Y: 200})
	viewport    = common.Rect{Max: common.Vec2{X: 640, Y: 480}}
)

type fixture struct {
	t       *testing.T
	world   *ecs.World
	types   *ecs.TypeRegistry
	pane    *fakePane
	clip    *fakeClipboard
	logs    *bytes.Buffer
	editor  *Editor
	tilemap ecs.Entity
}

// newFixture builds a world with a camera at the origin and a 4x4 map of
// 16px tiles over a 64x64 atlas, so tile (x, y) covers screen pixels
// [16x, 16x+16) x [16y, 16y+16).
func newFixture(t *testing.T) *fixture {
	t.Helper()
	w := ecs.NewWorld()

	cam := w.CreateEntity()
	for _, err := range []error{
		ecs.Add(w, cam, component.CameraComponent, component.Camera{Zoom: 1, Active: true}),
		ecs.Add(w, cam, component.TransformComponent, component.Transform{}),
		ecs.Add(w, cam, component.EditorCameraTagComponent, component.EditorCameraTag{}),
	} {
		if err != nil {
			t.Fatal(err)
		}
	}

	tm, err := tilemap.SpawnTilemap(w, tilemap.TilemapBundle{
		Name:     "ground",
		Texture:  tilemap.SingleTexture(atlasHandle),
		Size:     tilemap.TilemapSize{X: 4, Y: 4},
		TileSize: tilemap.TilemapTileSize{X: 16, Y: 16},
		Type:     tilemap.Square,
	})
	if err != nil {
		t.Fatal(err)
	}

	types := ecs.NewTypeRegistry()
	ecs.RegisterComponent(types, groundTagComponent)
	ecs.RegisterComponent(types, hiddenMineralsComponent)
	ecs.RegisterComponent(types, woodAmountComponent)

	f := &fixture{
		t:       t,
		world:   w,
		types:   types,
		pane:    &fakePane{rect: paletteRect},
		clip:    &fakeClipboard{},
		logs:    &bytes.Buffer{},
		tilemap: tm,
	}
	f.editor = New(w, types, fakeImages{atlasHandle: {X: 64, Y: 64}},
		WithPane(f.pane),
		WithClipboard(f.clip),
		WithLogger(log.New(f.logs, "", 0)),
	)
	return f
}

func (f *fixture) frame(in fakeInput, actions ...Action) {
	f.t.Helper()
	f.pane.queued = append(f.pane.queued, actions...)
	f.editor.Update(in, viewport)
}

func (f *fixture) startEditing() {
	f.t.Helper()
	f.frame(fakeInput{}, PickTilemap{Tilemap: f.tilemap})
	if got, ok := f.editor.Editing(); !ok || got != f.tilemap {
		f.t.Fatalf("expected to edit %v, got %v (editing=%v); log: %s", f.tilemap, got, ok, f.logs)
	}
	// the transition lands after both steps ran; let the editing state draw once
	f.frame(fakeInput{})
}

// selectIndex clicks atlas tile i in the palette.
func (f *fixture) selectIndex(i uint32) {
	f.t.Helper()
	origin := common.CellOrigin(i, common.Vec2{X: 64, Y: 64}, common.Vec2{X: 16, Y: 16})
	f.frame(fakeInput{cursor: paletteRect.Min.Add(origin).Add(common.Vec2{X: 4, Y: 4}), click: true})
	if b, _ := f.editor.Brush(); uint32(b.Texture) != i {
		f.t.Fatalf("palette click selected %d, want %d", b.Texture, i)
	}
}

// over returns a cursor inside tile pos.
func over(x, y uint32) common.Vec2 {
	return common.Vec2{X: float64(x)*16 + 4, Y: float64(y)*16 + 4}
}

func (f *fixture) tileAt(x, y uint32) (ecs.Entity, bool) {
	f.t.Helper()
	s, ok := ecs.Get(f.world, f.tilemap, tilemap.TileStorageComponent)
	if !ok {
		f.t.Fatal("tilemap lost its storage")
	}
	return s.Get(tilemap.TilePos{X: x, Y: y})
}

type groundTag struct{}

type hiddenMinerals struct {
	Kind string
}

type woodAmount struct {
	N int
}

var (
	groundTagComponent      = component.NewComponent[groundTag]()
	hiddenMineralsComponent = component.NewComponent[hiddenMinerals]()
	woodAmountComponent     = component.NewComponent[woodAmount]()
)
