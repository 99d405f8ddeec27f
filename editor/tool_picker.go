package editor

import "github.com/milk9111/tilemapeditor/tilemap"

// pick copies the hovered tile into the brush on click. Holding the button
// does not keep folding the tile back into the template.
func pick(ctx *ToolContext, pos tilemap.TilePos, f *frame) error {
	f.draw.StrokeRect(ctx.TileRect(pos), 1, f.cfg.Colors.TileOutline.NRGBA())

	if f.in.MouseButtonJustPressed(primaryButton) {
		return ctx.CopyTileProperties(pos)
	}
	return nil
}
