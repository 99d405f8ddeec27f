package tilemap

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilemapeditor/common"
	"github.com/milk9111/tilemapeditor/ecs"
	"github.com/milk9111/tilemapeditor/ecs/component"
)

// ImageLookup resolves atlas handles to GPU images.
type ImageLookup interface {
	Image(h ImageHandle) (*ebiten.Image, bool)
}

var quadIndices = []uint16{0, 1, 2, 0, 2, 3}

// QuadVertices builds the four vertices of a textured quad. corners come
// from QuadCorners; src is the atlas sub-rectangle in pixels.
func QuadVertices(corners [4]common.Vec2, src common.Rect, tint color.NRGBA) []ebiten.Vertex {
	uv := [4]common.Vec2{
		{X: src.Min.X, Y: src.Min.Y},
		{X: src.Max.X, Y: src.Min.Y},
		{X: src.Max.X, Y: src.Max.Y},
		{X: src.Min.X, Y: src.Max.Y},
	}
	r := float32(tint.R) / 0xff
	g := float32(tint.G) / 0xff
	b := float32(tint.B) / 0xff
	a := float32(tint.A) / 0xff

	vs := make([]ebiten.Vertex, 4)
	for i := range vs {
		vs[i] = ebiten.Vertex{
			DstX:   float32(corners[i].X),
			DstY:   float32(corners[i].Y),
			SrcX:   float32(uv[i].X),
			SrcY:   float32(uv[i].Y),
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		}
	}
	return vs
}

// QuadIndices returns the two-triangle index list matching QuadVertices.
func QuadIndices() []uint16 {
	return quadIndices
}

// TileRect is the world-space rectangle of pos on a map placed at origin.
func TileRect(origin common.Vec2, grid TilemapGridSize, pos TilePos) common.Rect {
	min := origin.Add(common.Vec2{X: float64(pos.X) * grid.X, Y: float64(pos.Y) * grid.Y})
	return common.RectFromMinSize(min, common.Vec2{X: grid.X, Y: grid.Y})
}

// AtlasRect is the source rectangle of index inside an atlas of atlasSize.
func AtlasRect(index TileTextureIndex, atlasSize common.Vec2, tile TilemapTileSize) common.Rect {
	size := common.Vec2{X: tile.X, Y: tile.Y}
	return common.RectFromMinSize(common.CellOrigin(uint32(index), atlasSize, size), size)
}

// RenderSystem draws every square single-atlas tilemap through the active
// camera.
type RenderSystem struct {
	Images ImageLookup
}

func NewRenderSystem(images ImageLookup) *RenderSystem {
	return &RenderSystem{Images: images}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image, viewport common.Rect) {
	if r == nil || r.Images == nil || w == nil || screen == nil {
		return
	}
	proj, ok := ActiveProjection(w, viewport)
	if !ok {
		return
	}

	maps := w.Query(
		TilemapTextureComponent.Kind(),
		TileStorageComponent.Kind(),
		TilemapTileSizeComponent.Kind(),
		TilemapGridSizeComponent.Kind(),
		component.TransformComponent.Kind(),
	)
	for _, m := range maps {
		tex, _ := ecs.Get(w, m, TilemapTextureComponent)
		handle, err := tex.Single()
		if err != nil {
			continue
		}
		atlas, ok := r.Images.Image(handle)
		if !ok || atlas == nil {
			continue
		}
		b := atlas.Bounds()
		atlasSize := common.Vec2{X: float64(b.Dx()), Y: float64(b.Dy())}

		storage, _ := ecs.Get(w, m, TileStorageComponent)
		tileSize, _ := ecs.Get(w, m, TilemapTileSizeComponent)
		grid, _ := ecs.Get(w, m, TilemapGridSizeComponent)
		t, _ := ecs.Get(w, m, component.TransformComponent)
		origin := common.Vec2{X: t.X, Y: t.Y}

		storage.Each(func(pos TilePos, tile ecs.Entity) {
			idx, ok := ecs.Get(w, tile, TileTextureIndexComponent)
			if !ok {
				return
			}
			tint := White
			if c, ok := ecs.Get(w, tile, TileColorComponent); ok {
				tint = *c
			}
			var flip TileFlip
			if f, ok := ecs.Get(w, tile, TileFlipComponent); ok {
				flip = *f
			}

			world := TileRect(origin, *grid, pos)
			dst := common.Rect{Min: proj.WorldToScreen(world.Min), Max: proj.WorldToScreen(world.Max)}
			src := AtlasRect(*idx, atlasSize, *tileSize).Translate(common.Vec2{X: float64(b.Min.X), Y: float64(b.Min.Y)})

			screen.DrawTriangles(QuadVertices(QuadCorners(dst, flip), src, tint.Color), quadIndices, atlas, &ebiten.DrawTrianglesOptions{})
		})
	}
}
