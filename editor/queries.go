package editor

import (
	"github.com/milk9111/tilemapeditor/common"
	"github.com/milk9111/tilemapeditor/ecs"
	"github.com/milk9111/tilemapeditor/ecs/component"
	"github.com/milk9111/tilemapeditor/tilemap"
)

// tilemapQuery is the view of a tilemap entity the editor needs. Pointers
// alias the world's storage.
type tilemapQuery struct {
	texture   *tilemap.TilemapTexture
	tileSize  *tilemap.TilemapTileSize
	gridSize  *tilemap.TilemapGridSize
	size      *tilemap.TilemapSize
	storage   *tilemap.TileStorage
	transform *component.Transform
	typ       *tilemap.TilemapType
}

func queryTilemap(w *ecs.World, e ecs.Entity) (tilemapQuery, error) {
	var (
		q   tilemapQuery
		err error
	)
	wrap := func(err error) (tilemapQuery, error) {
		return tilemapQuery{}, &BadTilemapEntityError{Tilemap: e, Err: err}
	}

	if q.texture, err = ecs.Require(w, e, tilemap.TilemapTextureComponent); err != nil {
		return wrap(err)
	}
	if q.tileSize, err = ecs.Require(w, e, tilemap.TilemapTileSizeComponent); err != nil {
		return wrap(err)
	}
	if q.gridSize, err = ecs.Require(w, e, tilemap.TilemapGridSizeComponent); err != nil {
		return wrap(err)
	}
	if q.size, err = ecs.Require(w, e, tilemap.TilemapSizeComponent); err != nil {
		return wrap(err)
	}
	if q.storage, err = ecs.Require(w, e, tilemap.TileStorageComponent); err != nil {
		return wrap(err)
	}
	if q.transform, err = ecs.Require(w, e, component.TransformComponent); err != nil {
		return wrap(err)
	}
	if q.typ, err = ecs.Require(w, e, tilemap.TilemapTypeComponent); err != nil {
		return wrap(err)
	}
	return q, nil
}

func (q tilemapQuery) origin() common.Vec2 {
	return common.Vec2{X: q.transform.X, Y: q.transform.Y}
}

// TilemapPoints are the screen-space corners of a tilemap and of its first
// grid cell.
type TilemapPoints struct {
	Viewport      common.Rect
	MapMin        common.Vec2
	MapMax        common.Vec2
	GridSampleMax common.Vec2
}

func tilemapPoints(proj tilemap.Projection, q tilemapQuery) TilemapPoints {
	origin := q.origin()
	grid := common.Vec2{X: q.gridSize.X, Y: q.gridSize.Y}
	extent := common.Vec2{X: float64(q.size.X) * grid.X, Y: float64(q.size.Y) * grid.Y}
	return TilemapPoints{
		Viewport:      proj.Viewport,
		MapMin:        proj.WorldToScreen(origin),
		MapMax:        proj.WorldToScreen(origin.Add(extent)),
		GridSampleMax: proj.WorldToScreen(origin.Add(grid)),
	}
}

// TilemapRect covers the whole map on screen.
func (p TilemapPoints) TilemapRect() common.Rect {
	return common.Rect{Min: p.MapMin, Max: p.MapMax}
}

// GridSampleRect covers tile (0,0) on screen.
func (p TilemapPoints) GridSampleRect() common.Rect {
	return common.Rect{Min: p.MapMin, Max: p.GridSampleMax}
}

// globalPosToLocal returns pos relative to the map's top-left corner, or
// false when pos is outside the map.
func globalPosToLocal(pos common.Vec2, mapRect common.Rect) (common.Vec2, bool) {
	size := mapRect.Size()
	local := pos.Sub(mapRect.Min)
	if local.X < 0 || local.Y < 0 || local.X >= size.X || local.Y >= size.Y {
		return common.Vec2{}, false
	}
	return local, true
}

// hoveredTile maps a screen position to the tile under it.
func hoveredTile(pos common.Vec2, points TilemapPoints, size tilemap.TilemapSize) (tilemap.TilePos, bool) {
	local, ok := globalPosToLocal(pos, points.TilemapRect())
	if !ok {
		return tilemap.TilePos{}, false
	}
	sample := points.GridSampleRect().Size()
	if sample.X <= 0 || sample.Y <= 0 {
		return tilemap.TilePos{}, false
	}
	cell := common.CellOf(local, sample)
	if cell.X < 0 || cell.Y < 0 || uint32(cell.X) >= size.X || uint32(cell.Y) >= size.Y {
		return tilemap.TilePos{}, false
	}
	return tilemap.TilePos{X: uint32(cell.X), Y: uint32(cell.Y)}, true
}

// tileQuery is the mutable view of a painted tile.
type tileQuery struct {
	color   *tilemap.TileColor
	flip    *tilemap.TileFlip
	texture *tilemap.TileTextureIndex
}

func queryTile(w *ecs.World, e ecs.Entity) (tileQuery, error) {
	var (
		q   tileQuery
		err error
	)
	if q.color, err = ecs.Require(w, e, tilemap.TileColorComponent); err != nil {
		return tileQuery{}, err
	}
	if q.flip, err = ecs.Require(w, e, tilemap.TileFlipComponent); err != nil {
		return tileQuery{}, err
	}
	if q.texture, err = ecs.Require(w, e, tilemap.TileTextureIndexComponent); err != nil {
		return tileQuery{}, err
	}
	return q, nil
}
