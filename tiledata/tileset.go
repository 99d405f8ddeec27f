package tiledata

import "github.com/milk9111/tilemapeditor/tilemap"

// TilesetID identifies the atlas a tile index refers to. Tilemaps sharing an
// atlas share tile data.
type TilesetID struct {
	image tilemap.ImageHandle
}

func SingleImage(h tilemap.ImageHandle) TilesetID {
	return TilesetID{image: h}
}

// TilesetOf derives the tileset of a tilemap texture. Only single-image
// atlases have one.
func TilesetOf(tex tilemap.TilemapTexture) (TilesetID, error) {
	h, err := tex.Single()
	if err != nil {
		return TilesetID{}, err
	}
	return SingleImage(h), nil
}

func (t TilesetID) Image() tilemap.ImageHandle {
	return t.image
}

func (t TilesetID) String() string {
	return string(t.image)
}
