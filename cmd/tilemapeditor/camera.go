package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilemapeditor/common"
	"github.com/milk9111/tilemapeditor/ecs"
	"github.com/milk9111/tilemapeditor/ecs/component"
)

const (
	panSpeed  = 6.0
	zoomStep  = 1.1
	zoomMin   = 0.25
	zoomMax   = 8.0
	zoomEase  = 0.2
	zoomSnapE = 0.001
)

// cameraController pans the editor camera with the arrow keys or a
// middle-mouse drag and zooms it with the wheel around the cursor.
type cameraController struct {
	viewport func() common.Rect

	target   float64
	dragging bool
	lastX    int
	lastY    int
}

func (c *cameraController) Update(w *ecs.World) {
	e, _, ok := ecs.First(w, component.EditorCameraTagComponent)
	if !ok {
		return
	}
	camera, ok := ecs.Get(w, e, component.CameraComponent)
	if !ok {
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return
	}
	zoom := camera.EffectiveZoom()
	if c.target == 0 {
		c.target = zoom
	}

	step := panSpeed / zoom
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		t.X -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		t.X += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		t.Y -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		t.Y += step
	}

	mx, my := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		if c.dragging {
			t.X -= float64(mx-c.lastX) / zoom
			t.Y -= float64(my-c.lastY) / zoom
		}
		c.dragging = true
	} else {
		c.dragging = false
	}
	c.lastX, c.lastY = mx, my

	vp := c.viewport()
	cursor := common.Vec2{X: float64(mx), Y: float64(my)}
	if _, wy := ebiten.Wheel(); wy != 0 && vp.Contains(cursor) {
		c.target = math.Max(zoomMin, math.Min(zoomMax, c.target*math.Pow(zoomStep, wy)))
	}

	next := common.Lerp(zoom, c.target, zoomEase)
	if math.Abs(next-c.target) < zoomSnapE {
		next = c.target
	}
	if next == zoom {
		return
	}
	// keep the world point under the cursor fixed
	if vp.Contains(cursor) {
		local := cursor.Sub(vp.Min)
		t.X += local.X/zoom - local.X/next
		t.Y += local.Y/zoom - local.Y/next
	}
	camera.Zoom = next
}
