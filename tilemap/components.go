package tilemap

import (
	"image/color"

	"github.com/milk9111/tilemapeditor/ecs"
	"github.com/milk9111/tilemapeditor/ecs/component"
)

// ImageHandle names an image in the host's asset store.
type ImageHandle string

// TextureKind selects how a tilemap addresses its atlas.
type TextureKind int

const (
	// TextureSingle is one atlas image cut into equal tiles.
	TextureSingle TextureKind = iota
	// TextureVector holds one image per tile index.
	TextureVector
	// TextureContainer is a GPU array texture.
	TextureContainer
)

func (k TextureKind) String() string {
	switch k {
	case TextureSingle:
		return "Single"
	case TextureVector:
		return "Vector"
	case TextureContainer:
		return "TextureContainer"
	default:
		return "Unknown"
	}
}

type TilemapTexture struct {
	Kind   TextureKind
	Images []ImageHandle
}

// SingleTexture builds a single-image atlas texture.
func SingleTexture(h ImageHandle) TilemapTexture {
	return TilemapTexture{Kind: TextureSingle, Images: []ImageHandle{h}}
}

// Single returns the atlas handle of a single-image texture.
func (t TilemapTexture) Single() (ImageHandle, error) {
	if t.Kind != TextureSingle || len(t.Images) != 1 {
		return "", &UnsupportedTextureError{Kind: t.Kind}
	}
	return t.Images[0], nil
}

// TilemapSize is the map size in tiles.
type TilemapSize struct {
	X, Y uint32
}

// Count returns the number of cells.
func (s TilemapSize) Count() int {
	return int(s.X) * int(s.Y)
}

// TilemapTileSize is the size of one tile inside the atlas, in pixels.
type TilemapTileSize struct {
	X, Y float64
}

// TilemapGridSize is the world-space distance between tile origins.
type TilemapGridSize struct {
	X, Y float64
}

type TilemapType int

const (
	Square TilemapType = iota
	Isometric
	Hexagon
)

func (t TilemapType) String() string {
	switch t {
	case Square:
		return "Square"
	case Isometric:
		return "Isometric"
	case Hexagon:
		return "Hexagon"
	default:
		return "Unknown"
	}
}

// TilePos is a cell coordinate; (0,0) is the top-left tile.
type TilePos struct {
	X, Y uint32
}

type TileTextureIndex uint32

// TileColor tints the tile's texture.
type TileColor struct {
	Color color.NRGBA
}

// White is the untinted tile color.
var White = TileColor{Color: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}

// TilemapID links a tile back to the tilemap that owns it.
type TilemapID struct {
	Entity ecs.Entity
}

var (
	TilemapTextureComponent   = component.NewComponent[TilemapTexture]()
	TilemapSizeComponent      = component.NewComponent[TilemapSize]()
	TilemapTileSizeComponent  = component.NewComponent[TilemapTileSize]()
	TilemapGridSizeComponent  = component.NewComponent[TilemapGridSize]()
	TilemapTypeComponent      = component.NewComponent[TilemapType]()
	TileStorageComponent      = component.NewComponent[TileStorage]()
	TilePosComponent          = component.NewComponent[TilePos]()
	TileTextureIndexComponent = component.NewComponent[TileTextureIndex]()
	TileColorComponent        = component.NewComponent[TileColor]()
	TileFlipComponent         = component.NewComponent[TileFlip]()
	TilemapIDComponent        = component.NewComponent[TilemapID]()
)
