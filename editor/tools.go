package editor

import (
	"log"

	"github.com/milk9111/tilemapeditor/config"
	"github.com/milk9111/tilemapeditor/tilemap"
)

// Tool is what the cursor does over the edited tilemap.
type Tool int

const (
	ToolPainter Tool = iota
	ToolEraser
	ToolPicker
	ToolWhois
)

// Tools lists every tool in the order the pane shows them.
var Tools = []Tool{ToolPainter, ToolEraser, ToolPicker, ToolWhois}

func (t Tool) String() string {
	switch t {
	case ToolPainter:
		return "Brush"
	case ToolEraser:
		return "Eraser"
	case ToolPicker:
		return "Picker"
	case ToolWhois:
		return "Whois"
	default:
		return "Unknown"
	}
}

// frame is the per-frame state a tool reads and draws into.
type frame struct {
	in   Input
	draw *DrawList
	cfg  *config.Config
	clip Clipboard
	log  *log.Logger
}

func (t Tool) act(ctx *ToolContext, pos tilemap.TilePos, f *frame) error {
	switch t {
	case ToolPainter:
		return paint(ctx, pos, f)
	case ToolEraser:
		return erase(ctx, pos, f)
	case ToolPicker:
		return pick(ctx, pos, f)
	case ToolWhois:
		return whois(ctx, pos, f)
	default:
		return nil
	}
}

// TileProperties are the parts of a tile the brush writes.
type TileProperties struct {
	Texture tilemap.TileTextureIndex
	Color   tilemap.TileColor
	Flip    tilemap.TileFlip
}

func DefaultTileProperties() TileProperties {
	return TileProperties{Color: tilemap.White}
}
