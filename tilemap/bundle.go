package tilemap

import (
	"fmt"

	"github.com/milk9111/tilemapeditor/ecs"
	"github.com/milk9111/tilemapeditor/ecs/component"
)

// TilemapBundle is everything a tilemap entity carries.
type TilemapBundle struct {
	Name      string
	Texture   TilemapTexture
	Size      TilemapSize
	TileSize  TilemapTileSize
	GridSize  TilemapGridSize
	Type      TilemapType
	Transform component.Transform
}

// TileBundle is everything a tile entity carries.
type TileBundle struct {
	Tilemap ecs.Entity
	Pos     TilePos
	Texture TileTextureIndex
	Color   TileColor
	Flip    TileFlip
}

// NewTileBundle returns an untinted, unflipped tile using texture index 0.
func NewTileBundle(tilemap ecs.Entity, pos TilePos) TileBundle {
	return TileBundle{Tilemap: tilemap, Pos: pos, Color: White}
}

// SpawnTilemap creates a tilemap entity with an empty TileStorage.
func SpawnTilemap(w *ecs.World, b TilemapBundle) (ecs.Entity, error) {
	e := w.CreateEntity()
	add := func(err error) error {
		if err != nil {
			w.DestroyEntity(e)
			return fmt.Errorf("spawn tilemap: %w", err)
		}
		return nil
	}
	if b.GridSize == (TilemapGridSize{}) {
		b.GridSize = TilemapGridSize{X: b.TileSize.X, Y: b.TileSize.Y}
	}

	if err := add(ecs.Add(w, e, TilemapTextureComponent, b.Texture)); err != nil {
		return 0, err
	}
	if err := add(ecs.Add(w, e, TilemapSizeComponent, b.Size)); err != nil {
		return 0, err
	}
	if err := add(ecs.Add(w, e, TilemapTileSizeComponent, b.TileSize)); err != nil {
		return 0, err
	}
	if err := add(ecs.Add(w, e, TilemapGridSizeComponent, b.GridSize)); err != nil {
		return 0, err
	}
	if err := add(ecs.Add(w, e, TilemapTypeComponent, b.Type)); err != nil {
		return 0, err
	}
	if err := add(ecs.Add(w, e, TileStorageComponent, NewTileStorage(b.Size))); err != nil {
		return 0, err
	}
	if err := add(ecs.Add(w, e, component.TransformComponent, b.Transform)); err != nil {
		return 0, err
	}
	if b.Name != "" {
		if err := add(ecs.Add(w, e, component.NameComponent, component.Name{Value: b.Name})); err != nil {
			return 0, err
		}
	}
	return e, nil
}

// SpawnTile creates a tile entity. It does not touch the tilemap's storage.
func SpawnTile(w *ecs.World, b TileBundle) (ecs.Entity, error) {
	e := w.CreateEntity()
	for _, err := range []error{
		ecs.Add(w, e, TilemapIDComponent, TilemapID{Entity: b.Tilemap}),
		ecs.Add(w, e, TilePosComponent, b.Pos),
		ecs.Add(w, e, TileTextureIndexComponent, b.Texture),
		ecs.Add(w, e, TileColorComponent, b.Color),
		ecs.Add(w, e, TileFlipComponent, b.Flip),
	} {
		if err != nil {
			w.DestroyEntity(e)
			return 0, fmt.Errorf("spawn tile: %w", err)
		}
	}
	return e, nil
}
