package editor

import (
	"github.com/milk9111/tilemapeditor/common"
	"github.com/milk9111/tilemapeditor/ecs"
	"github.com/milk9111/tilemapeditor/tiledata"
	"github.com/milk9111/tilemapeditor/tilemap"
)

// ToolContext is what a tool may touch during one viewport step.
type ToolContext struct {
	world    *ecs.World
	types    *ecs.TypeRegistry
	registry *tiledata.Registry
	points   TilemapPoints

	tilemap   ecs.Entity
	tileset   tiledata.TilesetID
	texture   TextureID
	atlasSize common.Vec2
	tileSize  tilemap.TilemapTileSize

	Brush *TileProperties
}

func (c *ToolContext) storage() (*tilemap.TileStorage, error) {
	q, err := queryTilemap(c.world, c.tilemap)
	if err != nil {
		return nil, err
	}
	return q.storage, nil
}

// Tile returns the entity stored at pos.
func (c *ToolContext) Tile(pos tilemap.TilePos) (ecs.Entity, bool) {
	s, err := c.storage()
	if err != nil {
		return 0, false
	}
	return s.Get(pos)
}

// DespawnTile destroys the tile at pos and clears its cell.
func (c *ToolContext) DespawnTile(pos tilemap.TilePos) {
	s, err := c.storage()
	if err != nil {
		return
	}
	e, ok := s.Remove(pos)
	if !ok {
		return
	}
	c.world.DestroyEntity(e)
}

// SetTileProperties writes props to the tile at pos, spawning it first if
// the cell is empty. When the texture index changes the old index's tile
// data is removed before the new index's is applied.
func (c *ToolContext) SetTileProperties(pos tilemap.TilePos, props TileProperties) error {
	q, err := queryTilemap(c.world, c.tilemap)
	if err != nil {
		return err
	}
	tileset, err := tiledata.TilesetOf(*q.texture)
	if err != nil {
		return &BadTilemapEntityError{Tilemap: c.tilemap, Err: err}
	}

	e, ok := q.storage.Get(pos)
	if !ok {
		e, err = tilemap.SpawnTile(c.world, tilemap.NewTileBundle(c.tilemap, pos))
		if err != nil {
			return &BadTileEntityError{Tilemap: c.tilemap, Pos: pos, Err: err}
		}
		q.storage.Set(pos, e)
	}
	badTile := func(err error) error {
		return &BadTileEntityError{Tilemap: c.tilemap, Tile: e, Pos: pos, Err: err}
	}

	tq, err := queryTile(c.world, e)
	if err != nil {
		return badTile(err)
	}
	old := *tq.texture
	*tq.color = props.Color
	*tq.flip = props.Flip
	*tq.texture = props.Texture

	if old != props.Texture {
		if err := c.registry.RemoveFromEntity(c.world, tileset, old, e); err != nil {
			return badTile(err)
		}
	}
	if err := c.registry.ApplyToEntity(c.world, tileset, props.Texture, e); err != nil {
		return badTile(err)
	}
	return nil
}

// TileProperties reads the tile at pos. It reports false for an empty cell.
func (c *ToolContext) TileProperties(pos tilemap.TilePos) (TileProperties, bool, error) {
	e, ok := c.Tile(pos)
	if !ok {
		return TileProperties{}, false, nil
	}
	tq, err := queryTile(c.world, e)
	if err != nil {
		return TileProperties{}, false, &BadTileEntityError{Tilemap: c.tilemap, Tile: e, Pos: pos, Err: err}
	}
	return TileProperties{Texture: *tq.texture, Color: *tq.color, Flip: *tq.flip}, true, nil
}

// CopyTileProperties loads the tile at pos into the brush and folds its
// live tile data back into the registry template for its index.
func (c *ToolContext) CopyTileProperties(pos tilemap.TilePos) error {
	props, ok, err := c.TileProperties(pos)
	if err != nil || !ok {
		return err
	}
	*c.Brush = props

	e, _ := c.Tile(pos)
	if err := c.registry.CopyFromEntity(c.world, c.tileset, props.Texture, e); err != nil {
		return &BadTileEntityError{Tilemap: c.tilemap, Tile: e, Pos: pos, Err: err}
	}
	return nil
}

// TileRect is the screen rectangle of pos.
func (c *ToolContext) TileRect(pos tilemap.TilePos) common.Rect {
	sample := c.points.GridSampleRect()
	size := sample.Size()
	return sample.Translate(common.Vec2{X: float64(pos.X) * size.X, Y: float64(pos.Y) * size.Y})
}

// PaintBrush records the brush tile filling rect.
func (c *ToolContext) PaintBrush(rect common.Rect, draw *DrawList) {
	src := tilemap.AtlasRect(c.Brush.Texture, c.atlasSize, c.tileSize)
	draw.TexturedQuad(c.texture, tilemap.QuadCorners(rect, c.Brush.Flip), src, c.Brush.Color.Color)
}
