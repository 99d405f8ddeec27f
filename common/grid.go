package common

import (
	"image"
	"math"
)

// CellOf returns the grid cell containing point. cellSize must be positive
// on both axes.
func CellOf(point, cellSize Vec2) image.Point {
	return image.Point{
		X: int(math.Floor(point.X / cellSize.X)),
		Y: int(math.Floor(point.Y / cellSize.Y)),
	}
}

// LinearIndex flattens cell into a row-major index over a dims-sized grid.
func LinearIndex(cell, dims image.Point) (uint32, bool) {
	if cell.X < 0 || cell.Y < 0 || cell.X >= dims.X || cell.Y >= dims.Y {
		return 0, false
	}
	return uint32(cell.X + cell.Y*dims.X), true
}

// CellOrigin is the top-left pixel of tile index inside an atlas of
// atlasSize cut into cellSize tiles.
func CellOrigin(index uint32, atlasSize, cellSize Vec2) Vec2 {
	columns := uint32(math.Floor(atlasSize.X / cellSize.X))
	if columns == 0 {
		return Vec2{}
	}
	return Vec2{
		X: float64(index%columns) * cellSize.X,
		Y: float64(index/columns) * cellSize.Y,
	}
}

// GridDims is how many whole cells of cellSize fit in size.
func GridDims(size, cellSize Vec2) image.Point {
	return image.Point{
		X: int(math.Floor(size.X / cellSize.X)),
		Y: int(math.Floor(size.Y / cellSize.Y)),
	}
}
