package tilemap

import (
	"github.com/milk9111/tilemapeditor/common"
	"github.com/milk9111/tilemapeditor/ecs"
	"github.com/milk9111/tilemapeditor/ecs/component"
)

// Projection maps world space onto a viewport rectangle of the screen:
// screen = viewport.Min + (world - camera) * zoom.
type Projection struct {
	Viewport common.Rect
	Camera   common.Vec2
	Zoom     float64
}

func (p Projection) WorldToScreen(v common.Vec2) common.Vec2 {
	return p.Viewport.Min.Add(v.Sub(p.Camera).Scale(p.Zoom))
}

func (p Projection) ScreenToWorld(v common.Vec2) common.Vec2 {
	return v.Sub(p.Viewport.Min).Scale(1 / p.Zoom).Add(p.Camera)
}

// ActiveProjection picks the active camera, preferring one tagged
// EditorCameraTag, and builds its projection onto viewport.
func ActiveProjection(w *ecs.World, viewport common.Rect) (Projection, bool) {
	var (
		found  ecs.Entity
		tagged bool
	)
	ecs.ForEach2(w, component.CameraComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, cam *component.Camera, _ *component.Transform) {
		if !cam.Active || tagged {
			return
		}
		if ecs.Has(w, e, component.EditorCameraTagComponent) {
			found, tagged = e, true
			return
		}
		if !found.Valid() {
			found = e
		}
	})
	if !found.Valid() {
		return Projection{}, false
	}

	cam, _ := ecs.Get(w, found, component.CameraComponent)
	t, _ := ecs.Get(w, found, component.TransformComponent)
	return Projection{
		Viewport: viewport,
		Camera:   common.Vec2{X: t.X, Y: t.Y},
		Zoom:     cam.EffectiveZoom(),
	}, true
}
