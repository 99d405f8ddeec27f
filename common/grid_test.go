package common

import (
	"image"
	"testing"
)

func TestCellOf(t *testing.T) {
	cases := []struct {
		name  string
		point Vec2
		size  Vec2
		want  image.Point
	}{
		{"origin", Vec2{0, 0}, Vec2{16, 16}, image.Point{0, 0}},
		{"inside_first", Vec2{15.9, 0.1}, Vec2{16, 16}, image.Point{0, 0}},
		{"boundary", Vec2{16, 32}, Vec2{16, 16}, image.Point{1, 2}},
		{"negative_floors_down", Vec2{-0.5, -16.5}, Vec2{16, 16}, image.Point{-1, -2}},
		{"non_square", Vec2{10, 10}, Vec2{4, 8}, image.Point{2, 1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CellOf(c.point, c.size); got != c.want {
				t.Fatalf("CellOf(%v, %v) = %v, want %v", c.point, c.size, got, c.want)
			}
		})
	}
}

func TestLinearIndex(t *testing.T) {
	for w := 1; w <= 5; w++ {
		for h := 1; h <= 5; h++ {
			dims := image.Point{w, h}
			for y := -1; y <= h; y++ {
				for x := -1; x <= w; x++ {
					got, ok := LinearIndex(image.Point{x, y}, dims)
					inside := x >= 0 && y >= 0 && x < w && y < h
					if ok != inside {
						t.Fatalf("dims %v cell (%d,%d): ok=%v, want %v", dims, x, y, ok, inside)
					}
					if inside && got != uint32(x+y*w) {
						t.Fatalf("dims %v cell (%d,%d): got %d, want %d", dims, x, y, got, x+y*w)
					}
				}
			}
		}
	}
}

func TestIndexRoundTrip(t *testing.T) {
	atlas := Vec2{256, 256}
	cell := Vec2{16, 16}
	dims := GridDims(atlas, cell)
	if dims != (image.Point{16, 16}) {
		t.Fatalf("unexpected grid dims %v", dims)
	}
	for i := uint32(0); i < 256; i++ {
		origin := CellOrigin(i, atlas, cell)
		got, ok := LinearIndex(CellOf(origin, cell), dims)
		if !ok || got != i {
			t.Fatalf("index %d: origin %v round-tripped to %d (ok=%v)", i, origin, got, ok)
		}
	}
}

func TestCellOrigin(t *testing.T) {
	cases := []struct {
		name  string
		index uint32
		atlas Vec2
		cell  Vec2
		want  Vec2
	}{
		{"first", 0, Vec2{64, 32}, Vec2{16, 16}, Vec2{0, 0}},
		{"end_of_row", 3, Vec2{64, 32}, Vec2{16, 16}, Vec2{48, 0}},
		{"wraps", 4, Vec2{64, 32}, Vec2{16, 16}, Vec2{0, 16}},
		{"partial_column_ignored", 2, Vec2{40, 40}, Vec2{16, 16}, Vec2{0, 16}},
		{"atlas_smaller_than_cell", 7, Vec2{8, 8}, Vec2{16, 16}, Vec2{0, 0}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CellOrigin(c.index, c.atlas, c.cell); got != c.want {
				t.Fatalf("CellOrigin = %v, want %v", got, c.want)
			}
		})
	}
}

func TestRect(t *testing.T) {
	r := RectFromMinSize(Vec2{10, 20}, Vec2{30, 40})
	if r.Size() != (Vec2{30, 40}) {
		t.Fatalf("size %v", r.Size())
	}
	if r.Center() != (Vec2{25, 40}) {
		t.Fatalf("center %v", r.Center())
	}
	if !r.Contains(Vec2{10, 20}) || r.Contains(Vec2{40, 20}) {
		t.Fatal("Contains should be min-inclusive and max-exclusive")
	}
	moved := r.Translate(Vec2{-10, -20})
	if moved.Min != (Vec2{}) || moved.Max != (Vec2{30, 40}) {
		t.Fatalf("translate %v", moved)
	}
}
