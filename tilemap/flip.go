package tilemap

import (
	"math/bits"

	"github.com/milk9111/tilemapeditor/common"
)

// TileFlip orients a tile: X mirrors horizontally, Y vertically, and D
// transposes across the main diagonal. Together they name one of the eight
// symmetries of a square.
type TileFlip struct {
	X bool
	Y bool
	D bool
}

// Code packs the flags as x<<2 | d<<1 | y.
//
// Rotating walks one of two 4-cycles over these codes:
//
//	x d y   x d y
//	0 0 0   1 1 1
//	0 1 1   1 0 0
//	1 0 1   0 1 0
//	1 1 0   0 0 1
//
// The left cycle has an even number of set bits and is the complement of
// the right one, so rotation XORs even codes into the right cycle, shifts,
// and XORs back.
func (f TileFlip) Code() uint8 {
	var c uint8
	if f.X {
		c |= 0b100
	}
	if f.D {
		c |= 0b010
	}
	if f.Y {
		c |= 0b001
	}
	return c
}

// FlipFromCode unpacks the low three bits of c.
func FlipFromCode(c uint8) TileFlip {
	return TileFlip{
		X: c&0b100 != 0,
		D: c&0b010 != 0,
		Y: c&0b001 != 0,
	}
}

func cycleMask(c uint8) uint8 {
	if bits.OnesCount8(c)%2 == 0 {
		return 0b111
	}
	return 0
}

// rshift steps 111 -> 100 -> 010 -> 001 -> 111.
func rshift(c uint8) uint8 {
	switch {
	case c == 0b111:
		return 0b100
	case c&0b001 != 0:
		return 0b111
	default:
		return c >> 1
	}
}

// lshift is the inverse of rshift.
func lshift(c uint8) uint8 {
	switch {
	case c == 0b111:
		return 0b001
	case c&0b100 != 0:
		return 0b111
	default:
		return (c << 1) & 0b111
	}
}

// RotatePlus90 returns the orientation after a clockwise quarter turn.
func (f TileFlip) RotatePlus90() TileFlip {
	c := f.Code()
	m := cycleMask(c)
	return FlipFromCode(rshift(c^m) ^ m)
}

// RotateMinus90 returns the orientation after a counter-clockwise quarter
// turn.
func (f TileFlip) RotateMinus90() TileFlip {
	c := f.Code()
	m := cycleMask(c)
	return FlipFromCode(lshift(c^m) ^ m)
}

// QuadCorners returns where the top-left, top-right, bottom-right and
// bottom-left corners of a tile's source image land when the tile fills r
// under flip f.
func QuadCorners(r common.Rect, f TileFlip) [4]common.Vec2 {
	c := r.Center()
	corners := [4]common.Vec2{
		{X: r.Min.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Max.Y},
		{X: r.Min.X, Y: r.Max.Y},
	}

	scale := common.Vec2{X: 1, Y: 1}
	if f.X {
		scale.X = -1
	}
	if f.Y {
		scale.Y = -1
	}
	if f.D {
		scale.X = -scale.X
	}

	for i, p := range corners {
		p = p.Sub(c)
		if f.D {
			// quarter turn, y down
			p = common.Vec2{X: -p.Y, Y: p.X}
		}
		corners[i] = p.Mul(scale).Add(c)
	}
	return corners
}
