package editor

import "github.com/milk9111/tilemapeditor/tilemap"

// paint previews the brush over the hovered tile and commits it while the
// primary button is held.
func paint(ctx *ToolContext, pos tilemap.TilePos, f *frame) error {
	rect := ctx.TileRect(pos)
	ctx.PaintBrush(rect, f.draw)
	f.draw.StrokeRect(rect, 1, f.cfg.Colors.TileOutline.NRGBA())

	if f.in.MouseButtonPressed(primaryButton) {
		return ctx.SetTileProperties(pos, *ctx.Brush)
	}
	return nil
}
