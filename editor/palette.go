package editor

import (
	"math"

	"github.com/milk9111/tilemapeditor/common"
	"github.com/milk9111/tilemapeditor/tilemap"
)

// palette is a scrollable 1:1 view of the atlas. Clicking a tile selects
// its index.
type palette struct {
	offset common.Vec2
}

// paletteView is the input of one palette step.
type paletteView struct {
	rect      common.Rect
	atlasSize common.Vec2
	tileSize  tilemap.TilemapTileSize
	texture   TextureID
}

func (p *palette) step(f *frame, v paletteView, selected *tilemap.TileTextureIndex) {
	tile := common.Vec2{X: v.tileSize.X, Y: v.tileSize.Y}
	if tile.X <= 0 || tile.Y <= 0 {
		return
	}
	view := v.rect.Size()
	cursor := f.in.CursorPosition()
	hovering := v.rect.Contains(cursor)

	if hovering {
		wheel := f.in.Wheel()
		speed := f.cfg.Palette.ScrollSpeed
		p.offset = p.offset.Sub(wheel.Scale(speed))
	}
	p.offset.X = clamp(p.offset.X, 0, math.Max(0, v.atlasSize.X-view.X))
	p.offset.Y = clamp(p.offset.Y, 0, math.Max(0, v.atlasSize.Y-view.Y))

	visible := common.Vec2{
		X: math.Min(view.X, v.atlasSize.X-p.offset.X),
		Y: math.Min(view.Y, v.atlasSize.Y-p.offset.Y),
	}
	dst := common.RectFromMinSize(v.rect.Min, visible)
	src := common.RectFromMinSize(p.offset, visible)
	f.draw.TexturedQuad(v.texture, tilemap.QuadCorners(dst, tilemap.TileFlip{}), src, tilemap.White.Color)

	dims := common.GridDims(v.atlasSize, tile)
	if uint32(*selected) >= uint32(dims.X*dims.Y) {
		*selected = 0
	}

	outline := func(index uint32, c common.Vec2) common.Rect {
		local := common.CellOrigin(index, v.atlasSize, tile)
		return common.RectFromMinSize(local.Sub(p.offset).Add(v.rect.Min), c)
	}
	if r := outline(uint32(*selected), tile); overlaps(r, v.rect) {
		f.draw.StrokeRect(r, 1, f.cfg.Colors.PaletteSelected.NRGBA())
	}

	if !hovering {
		return
	}
	local := cursor.Sub(v.rect.Min).Add(p.offset)
	idx, ok := common.LinearIndex(common.CellOf(local, tile), dims)
	if !ok {
		return
	}
	f.draw.StrokeRect(outline(idx, tile), 1, f.cfg.Colors.PaletteHover.NRGBA())
	if f.in.MouseButtonJustPressed(primaryButton) {
		*selected = tilemap.TileTextureIndex(idx)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func overlaps(a, b common.Rect) bool {
	return a.Min.X < b.Max.X && b.Min.X < a.Max.X && a.Min.Y < b.Max.Y && b.Min.Y < a.Max.Y
}
