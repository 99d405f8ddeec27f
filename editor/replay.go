package editor

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/tilemapeditor/common"
	"github.com/milk9111/tilemapeditor/tilemap"
)

// Replay paints the recorded ops onto screen. Quads whose texture is no
// longer registered are skipped.
func (d *DrawList) Replay(screen *ebiten.Image, textures *TextureTable, images tilemap.ImageLookup, face text.Face) {
	for _, op := range d.ops {
		switch op.Kind {
		case OpStrokeRect:
			size := op.Rect.Size()
			vector.StrokeRect(screen, float32(op.Rect.Min.X), float32(op.Rect.Min.Y), float32(size.X), float32(size.Y), op.Width, op.Color, false)

		case OpTexturedQuad:
			if textures == nil || images == nil {
				continue
			}
			h, ok := textures.Handle(op.Texture)
			if !ok {
				continue
			}
			img, ok := images.Image(h)
			if !ok || img == nil {
				continue
			}
			b := img.Bounds()
			src := op.Src.Translate(common.Vec2{X: float64(b.Min.X), Y: float64(b.Min.Y)})
			screen.DrawTriangles(tilemap.QuadVertices(op.Corners, src, op.Color), tilemap.QuadIndices(), img, &ebiten.DrawTrianglesOptions{})

		case OpLabel:
			if face == nil {
				continue
			}
			opts := &text.DrawOptions{}
			opts.GeoM.Translate(op.At.X, op.At.Y)
			opts.ColorScale.ScaleWithColor(op.Color)
			opts.LineSpacing = lineHeight
			text.Draw(screen, op.Text, face, opts)
		}
	}
}
