package editor

import (
	"github.com/milk9111/tilemapeditor/ecs"
	"github.com/milk9111/tilemapeditor/ecs/component"
	"github.com/milk9111/tilemapeditor/tilemap"
)

const unnamedTilemap = "Unnamed tilemap"

// state is one mode of the editor. Each half of a frame may ask for a
// transition.
type state interface {
	ui(e *Editor, f *frame) Message
	viewport(e *Editor, f *frame) Message
}

// pickingState lists the tilemaps in the world and waits for one to be
// picked.
type pickingState struct{}

func tilemapEntries(w *ecs.World) []TilemapEntry {
	var out []TilemapEntry
	ecs.ForEach(w, tilemap.TilemapTextureComponent.Kind(), func(e ecs.Entity, _ *tilemap.TilemapTexture) {
		label := unnamedTilemap
		if n, ok := ecs.Get(w, e, component.NameComponent); ok && n.Value != "" {
			label = n.Value
		}
		out = append(out, TilemapEntry{Tilemap: e, Label: label})
	})
	return out
}

func (pickingState) ui(e *Editor, f *frame) Message {
	if e.pane == nil {
		return nil
	}
	var msg Message
	for _, a := range e.pane.Actions() {
		if p, ok := a.(PickTilemap); ok && msg == nil {
			msg = StartEditing{Tilemap: p.Tilemap}
		}
	}
	e.pane.ShowPicking(tilemapEntries(e.world))
	return msg
}

func (pickingState) viewport(*Editor, *frame) Message {
	return nil
}
