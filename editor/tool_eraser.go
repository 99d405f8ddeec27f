package editor

import "github.com/milk9111/tilemapeditor/tilemap"

func erase(ctx *ToolContext, pos tilemap.TilePos, f *frame) error {
	f.draw.StrokeRect(ctx.TileRect(pos), 1, f.cfg.Colors.TileOutline.NRGBA())

	if f.in.MouseButtonPressed(primaryButton) {
		ctx.DespawnTile(pos)
	}
	return nil
}
