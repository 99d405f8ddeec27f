package component

// Camera projects world space onto the viewport together with the entity's
// Transform. A zero Zoom is treated as 1.
type Camera struct {
	Zoom   float64
	Active bool
}

// EffectiveZoom returns Zoom, or 1 when Zoom is not positive.
func (c Camera) EffectiveZoom() float64 {
	if c.Zoom <= 0 {
		return 1
	}
	return c.Zoom
}

var CameraComponent = NewComponent[Camera]()
