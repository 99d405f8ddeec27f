package editor

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilemapeditor/common"
	"github.com/milk9111/tilemapeditor/config"
	"github.com/milk9111/tilemapeditor/ecs"
)

// Pane is the editor's side panel. It turns clicks into Actions and shows
// whatever the current state hands it.
type Pane interface {
	Update()
	Draw(screen *ebiten.Image)
	// Actions returns and clears the gestures seen since the last call.
	Actions() []Action
	ShowPicking(entries []TilemapEntry)
	ShowEditing(v EditingView)
	// PaletteRect is the screen area reserved for the tile palette.
	PaletteRect() (common.Rect, bool)
	Configure(cfg config.Config)
}

// TilemapEntry is one line of the picking list.
type TilemapEntry struct {
	Tilemap ecs.Entity
	Label   string
}

// EditingView is what the pane shows while a tilemap is edited.
type EditingView struct {
	Tool  Tool
	Brush TileProperties
}
