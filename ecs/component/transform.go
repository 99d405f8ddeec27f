package component

// Transform is a world-space placement. For tilemaps X/Y is the top-left
// corner of tile (0,0); for cameras it is the world point shown at the
// top-left of the viewport.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
