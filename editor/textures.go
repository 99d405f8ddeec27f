package editor

import "github.com/milk9111/tilemapeditor/tilemap"

// TextureID is a handle the overlay uses to refer to a registered atlas.
type TextureID uint32

// TextureTable holds the atlases an editing session may draw with.
type TextureTable struct {
	next TextureID
	byID map[TextureID]tilemap.ImageHandle
}

func NewTextureTable() *TextureTable {
	return &TextureTable{byID: make(map[TextureID]tilemap.ImageHandle)}
}

func (t *TextureTable) Add(h tilemap.ImageHandle) TextureID {
	if t.byID == nil {
		t.byID = make(map[TextureID]tilemap.ImageHandle)
	}
	t.next++
	t.byID[t.next] = h
	return t.next
}

func (t *TextureTable) Remove(id TextureID) {
	delete(t.byID, id)
}

func (t *TextureTable) Handle(id TextureID) (tilemap.ImageHandle, bool) {
	h, ok := t.byID[id]
	return h, ok
}

func (t *TextureTable) Len() int {
	return len(t.byID)
}
