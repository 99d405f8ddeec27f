package editor

import (
	"testing"

	"github.com/milk9111/tilemapeditor/common"
	"github.com/milk9111/tilemapeditor/ecs"
	"github.com/milk9111/tilemapeditor/ecs/component"
	"github.com/milk9111/tilemapeditor/tilemap"
)

func TestHoveredTile(t *testing.T) {
	w := ecs.NewWorld()
	tm, err := tilemap.SpawnTilemap(w, tilemap.TilemapBundle{
		Texture:  tilemap.SingleTexture(atlasHandle),
		Size:     tilemap.TilemapSize{X: 3, Y: 2},
		TileSize: tilemap.TilemapTileSize{X: 16, Y: 16},
		GridSize: tilemap.TilemapGridSize{X: 20, Y: 10},
	})
	if err != nil {
		t.Fatal(err)
	}
	tr, _ := ecs.Get(w, tm, component.TransformComponent)
	tr.X, tr.Y = 100, 50
	q, err := queryTilemap(w, tm)
	if err != nil {
		t.Fatal(err)
	}

	// camera at (90, 40), zoom 2, viewport starting at x=240
	proj := tilemap.Projection{
		Viewport: common.Rect{Min: common.Vec2{X: 240}, Max: common.Vec2{X: 800, Y: 600}},
		Camera:   common.Vec2{X: 90, Y: 40},
		Zoom:     2,
	}
	points := tilemapPoints(proj, q)
	if points.MapMin != (common.Vec2{X: 260, Y: 20}) || points.MapMax != (common.Vec2{X: 380, Y: 60}) {
		t.Fatalf("unexpected map corners %+v", points)
	}
	if s := points.GridSampleRect().Size(); s != (common.Vec2{X: 40, Y: 20}) {
		t.Fatalf("unexpected grid sample size %v", s)
	}

	cases := []struct {
		name   string
		cursor common.Vec2
		want   tilemap.TilePos
		ok     bool
	}{
		{"top_left_corner", common.Vec2{X: 260, Y: 20}, tilemap.TilePos{}, true},
		{"middle", common.Vec2{X: 310, Y: 45}, tilemap.TilePos{X: 1, Y: 1}, true},
		{"last_pixel", common.Vec2{X: 379.9, Y: 59.9}, tilemap.TilePos{X: 2, Y: 1}, true},
		{"right_edge", common.Vec2{X: 380, Y: 30}, tilemap.TilePos{}, false},
		{"bottom_edge", common.Vec2{X: 300, Y: 60}, tilemap.TilePos{}, false},
		{"above", common.Vec2{X: 300, Y: 19}, tilemap.TilePos{}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := hoveredTile(c.cursor, points, *q.size)
			if ok != c.ok || (ok && got != c.want) {
				t.Fatalf("hoveredTile(%v) = %v, %v; want %v, %v", c.cursor, got, ok, c.want, c.ok)
			}
		})
	}
}

func TestTileRectFollowsGridSample(t *testing.T) {
	ctx := &ToolContext{points: TilemapPoints{
		MapMin:        common.Vec2{X: 10, Y: 10},
		GridSampleMax: common.Vec2{X: 26, Y: 18},
	}}
	got := ctx.TileRect(tilemap.TilePos{X: 2, Y: 3})
	want := common.Rect{Min: common.Vec2{X: 42, Y: 34}, Max: common.Vec2{X: 58, Y: 42}}
	if got != want {
		t.Fatalf("TileRect = %v, want %v", got, want)
	}
}

func TestTextureTable(t *testing.T) {
	tt := NewTextureTable()
	a := tt.Add("a.png")
	b := tt.Add("a.png")
	if a == b {
		t.Fatal("each registration gets its own id")
	}
	tt.Remove(a)
	if _, ok := tt.Handle(a); ok {
		t.Fatal("removed id should be gone")
	}
	if h, ok := tt.Handle(b); !ok || h != "a.png" || tt.Len() != 1 {
		t.Fatalf("unexpected table state %v %v %d", h, ok, tt.Len())
	}
}

func TestDrawListStacksLabels(t *testing.T) {
	var d DrawList
	d.Reset(common.Vec2{X: 5, Y: 5})
	d.Label("one", tilemap.White.Color)
	d.Label("two\nlines", tilemap.White.Color)
	d.Label("three", tilemap.White.Color)

	var ys []float64
	for _, op := range d.Ops() {
		ys = append(ys, op.At.Y)
	}
	want := []float64{5, 5 + lineHeight, 5 + 3*lineHeight}
	for i := range want {
		if ys[i] != want[i] {
			t.Fatalf("label y positions %v, want %v", ys, want)
		}
	}

	d.Reset(common.Vec2{})
	if len(d.Ops()) != 0 || len(d.Labels()) != 0 {
		t.Fatal("Reset should drop ops")
	}
}
