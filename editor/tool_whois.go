package editor

import (
	"fmt"

	"github.com/milk9111/tilemapeditor/tilemap"
)

// rotationNames is indexed by TileFlip.Code.
var rotationNames = [8]string{
	0b000: "No transform",
	0b001: "Flipped vertically",
	0b010: "Rotated -90°, then flipped horizontally",
	0b011: "Rotated 90°",
	0b100: "Flipped horizontally",
	0b101: "Rotated 180°",
	0b110: "Rotated -90°",
	0b111: "Rotated 90°, then flipped horizontally",
}

// DescribeFlip names the symmetry f applies to a tile.
func DescribeFlip(f tilemap.TileFlip) string {
	return rotationNames[f.Code()]
}

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}

func whois(ctx *ToolContext, pos tilemap.TilePos, f *frame) error {
	f.draw.StrokeRect(ctx.TileRect(pos), 1, f.cfg.Colors.TileOutline.NRGBA())

	e, ok := ctx.Tile(pos)
	if !ok {
		return nil
	}
	props, ok, err := ctx.TileProperties(pos)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	text := f.cfg.Colors.Text.NRGBA()
	desc := DescribeFlip(props.Flip)
	f.draw.Label(fmt.Sprintf("Entity ID: %d", e.Index()), text)
	f.draw.Label(fmt.Sprintf("Diagonal flip: %d", bit(props.Flip.D)), text)
	f.draw.Label(fmt.Sprintf("Horizontal flip: %d", bit(props.Flip.X)), text)
	f.draw.Label(fmt.Sprintf("Vertical flip: %d", bit(props.Flip.Y)), text)
	f.draw.Label(fmt.Sprintf("Transform:\n %s", desc), text)

	if f.clip != nil && f.in.KeyJustPressed(f.cfg.Keys.CopyWhois) {
		if err := f.clip.WriteText(desc); err != nil {
			f.log.Printf("copy tile description: %v", err)
		}
	}
	return nil
}
