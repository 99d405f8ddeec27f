package editor

import (
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/tilemapeditor/common"
	"github.com/milk9111/tilemapeditor/config"
	"github.com/milk9111/tilemapeditor/ecs"
	"github.com/milk9111/tilemapeditor/tiledata"
	"github.com/milk9111/tilemapeditor/tilemap"
)

// Editor is an in-game tilemap editor. It starts in picking mode; once a
// tilemap is picked it paints onto it until the user exits or something
// goes wrong.
//
// Update and Draw must be called from the game loop goroutine. SetConfig
// may be called from anywhere.
type Editor struct {
	world    *ecs.World
	types    *ecs.TypeRegistry
	images   ImageSource
	registry *tiledata.Registry
	textures *TextureTable

	pane   Pane
	clip   Clipboard
	logger *log.Logger

	cfg       config.Config
	mu        sync.Mutex
	pending   *config.Config
	face      text.Face
	faceSize  float64
	faceError bool

	state    state
	viewport common.Rect
	overlay  DrawList
	paneOps  DrawList
}

type Option func(*Editor)

func WithConfig(cfg config.Config) Option {
	return func(e *Editor) { e.cfg = cfg }
}

func WithLogger(l *log.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l
		}
	}
}

func WithClipboard(c Clipboard) Option {
	return func(e *Editor) { e.clip = c }
}

// WithPane attaches a side panel. Without one the editor can still be
// driven with Edit and the keyboard shortcuts.
func WithPane(p Pane) Option {
	return func(e *Editor) { e.pane = p }
}

// WithRegistry shares a tile data registry with the host.
func WithRegistry(r *tiledata.Registry) Option {
	return func(e *Editor) {
		if r != nil {
			e.registry = r
		}
	}
}

func New(w *ecs.World, types *ecs.TypeRegistry, images ImageSource, opts ...Option) *Editor {
	e := &Editor{
		world:    w,
		types:    types,
		images:   images,
		registry: tiledata.NewRegistry(),
		textures: NewTextureTable(),
		logger:   log.Default(),
		cfg:      config.Default(),
		state:    pickingState{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Editor) Registry() *tiledata.Registry {
	return e.registry
}

func (e *Editor) Config() config.Config {
	return e.cfg
}

// SetConfig replaces the configuration at the start of the next Update.
func (e *Editor) SetConfig(cfg config.Config) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pending = &cfg
}

func (e *Editor) applyPendingConfig() {
	e.mu.Lock()
	cfg := e.pending
	e.pending = nil
	e.mu.Unlock()
	if cfg == nil {
		return
	}
	e.cfg = *cfg
	if e.pane != nil {
		e.pane.Configure(e.cfg)
	}
}

// Viewport is the part of a screenW x screenH screen the editor projects
// tilemaps into: everything right of the pane.
func (e *Editor) Viewport(screenW, screenH int) common.Rect {
	var left float64
	if e.pane != nil {
		left = float64(e.cfg.Pane.Width)
	}
	return common.Rect{
		Min: common.Vec2{X: left},
		Max: common.Vec2{X: float64(screenW), Y: float64(screenH)},
	}
}

// Update runs one frame: the pane step, then the viewport step. Only the
// first transition requested in a frame is taken.
func (e *Editor) Update(in Input, viewport common.Rect) {
	e.applyPendingConfig()
	e.viewport = viewport
	e.overlay.Reset(viewport.Min.Add(common.Vec2{X: 8, Y: 8}))
	e.paneOps.Reset(common.Vec2{})

	f := &frame{
		in:   in,
		draw: &e.overlay,
		cfg:  &e.cfg,
		clip: e.clip,
		log:  e.logger,
	}

	if e.pane != nil {
		e.pane.Update()
	}
	msgs := []Message{
		e.state.ui(e, f),
		e.state.viewport(e, f),
	}

	handled := false
	for _, m := range msgs {
		if m == nil {
			continue
		}
		if handled {
			e.logger.Printf("editor: dropping %T, a transition was already handled this frame", m)
			continue
		}
		e.handle(m)
		handled = true
	}
}

func (e *Editor) handle(m Message) {
	switch m := m.(type) {
	case StartEditing:
		if err := e.Edit(m.Tilemap); err != nil {
			e.logger.Printf("editor: cannot edit tilemap %v: %v", m.Tilemap, err)
		}
	case StopEditing:
		e.stopEditing()
	case ShowErrorAndReturnToPicking:
		e.logger.Printf("the editor has closed due to the following error: %v", m.Err)
		e.stopEditing()
	}
}

// Edit switches to editing tm. On error the editor keeps its current mode.
func (e *Editor) Edit(tm ecs.Entity) error {
	st, err := newEditingState(e, tm)
	if err != nil {
		return err
	}
	e.stopEditing()
	e.state = st
	return nil
}

func (e *Editor) stopEditing() {
	if st, ok := e.state.(*editingState); ok {
		st.cleanup(e)
	}
	e.state = pickingState{}
}

// Editing reports the tilemap being edited.
func (e *Editor) Editing() (ecs.Entity, bool) {
	st, ok := e.state.(*editingState)
	if !ok {
		return 0, false
	}
	return st.tilemap, true
}

func (e *Editor) Tool() (Tool, bool) {
	st, ok := e.state.(*editingState)
	if !ok {
		return 0, false
	}
	return st.tool, true
}

func (e *Editor) Brush() (TileProperties, bool) {
	st, ok := e.state.(*editingState)
	if !ok {
		return TileProperties{}, false
	}
	return st.brush, true
}

// Overlay is what the last Update recorded for the viewport.
func (e *Editor) Overlay() *DrawList {
	return &e.overlay
}

// PaneOverlay is what the last Update recorded on top of the pane.
func (e *Editor) PaneOverlay() *DrawList {
	return &e.paneOps
}

func (e *Editor) labelFace() text.Face {
	if e.face != nil && e.faceSize == e.cfg.Pane.FontSize {
		return e.face
	}
	face, err := newFace(e.cfg.Pane.FontSize)
	if err != nil {
		if !e.faceError {
			e.logger.Printf("editor: labels disabled: %v", err)
			e.faceError = true
		}
		return nil
	}
	e.face, e.faceSize = face, e.cfg.Pane.FontSize
	return e.face
}

// Draw paints the viewport overlay, the pane and the palette, in that
// order.
func (e *Editor) Draw(screen *ebiten.Image, images tilemap.ImageLookup) {
	face := e.labelFace()
	e.overlay.Replay(screen, e.textures, images, face)
	if e.pane != nil {
		e.pane.Draw(screen)
	}
	e.paneOps.Replay(screen, e.textures, images, face)
}
