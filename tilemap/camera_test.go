package tilemap

import (
	"testing"

	"github.com/milk9111/tilemapeditor/common"
	"github.com/milk9111/tilemapeditor/ecs"
	"github.com/milk9111/tilemapeditor/ecs/component"
)

func spawnCamera(t *testing.T, w *ecs.World, x, y, zoom float64, active, tagged bool) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.CameraComponent, component.Camera{Zoom: zoom, Active: active}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{X: x, Y: y}); err != nil {
		t.Fatal(err)
	}
	if tagged {
		if err := ecs.Add(w, e, component.EditorCameraTagComponent, component.EditorCameraTag{}); err != nil {
			t.Fatal(err)
		}
	}
	return e
}

func TestActiveProjection(t *testing.T) {
	viewport := common.Rect{Min: common.Vec2{X: 100, Y: 0}, Max: common.Vec2{X: 900, Y: 600}}

	t.Run("no_camera", func(t *testing.T) {
		if _, ok := ActiveProjection(ecs.NewWorld(), viewport); ok {
			t.Fatal("expected no projection")
		}
	})

	t.Run("inactive_ignored", func(t *testing.T) {
		w := ecs.NewWorld()
		spawnCamera(t, w, 0, 0, 1, false, true)
		if _, ok := ActiveProjection(w, viewport); ok {
			t.Fatal("inactive camera should be ignored")
		}
	})

	t.Run("prefers_editor_camera", func(t *testing.T) {
		w := ecs.NewWorld()
		spawnCamera(t, w, 5, 5, 1, true, false)
		spawnCamera(t, w, 10, 20, 2, true, true)
		p, ok := ActiveProjection(w, viewport)
		if !ok {
			t.Fatal("expected projection")
		}
		if p.Camera != (common.Vec2{X: 10, Y: 20}) || p.Zoom != 2 {
			t.Fatalf("picked wrong camera %+v", p)
		}
		got := p.WorldToScreen(common.Vec2{X: 15, Y: 25})
		if got != (common.Vec2{X: 110, Y: 10}) {
			t.Fatalf("WorldToScreen = %v", got)
		}
		if back := p.ScreenToWorld(got); back != (common.Vec2{X: 15, Y: 25}) {
			t.Fatalf("ScreenToWorld = %v", back)
		}
	})

	t.Run("zero_zoom_is_one", func(t *testing.T) {
		w := ecs.NewWorld()
		spawnCamera(t, w, 0, 0, 0, true, false)
		p, _ := ActiveProjection(w, viewport)
		if p.Zoom != 1 {
			t.Fatalf("zoom %v", p.Zoom)
		}
	})
}
