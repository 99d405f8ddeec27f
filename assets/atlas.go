package assets

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/colornames"
)

var atlasColors = []color.RGBA{
	colornames.Forestgreen,
	colornames.Steelblue,
	colornames.Sienna,
	colornames.Slategray,
	colornames.Darkgoldenrod,
	colornames.Lightskyblue,
	colornames.Olivedrab,
	colornames.Indianred,
}

// GenerateAtlas paints a cols x rows atlas of tile x tile cells, each a
// solid color with a white corner wedge in its top-left so flips and
// rotations are visible.
func GenerateAtlas(cols, rows, tile int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cols*tile, rows*tile))
	for i := 0; i < cols*rows; i++ {
		x0, y0 := (i%cols)*tile, (i/cols)*tile
		cell := image.Rect(x0, y0, x0+tile, y0+tile)
		draw.Draw(img, cell, image.NewUniform(atlasColors[i%len(atlasColors)]), image.Point{}, draw.Src)

		wedge := tile / 2
		for y := 0; y < wedge; y++ {
			for x := 0; x < wedge-y; x++ {
				img.Set(x0+x, y0+y, colornames.White)
			}
		}
		// one dark pixel per index along the bottom edge
		for n := 0; n <= i/len(atlasColors) && n < tile; n++ {
			img.Set(x0+n, y0+tile-1, colornames.Black)
		}
	}
	return img
}
