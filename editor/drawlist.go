package editor

import (
	"image/color"
	"strings"

	"github.com/milk9111/tilemapeditor/common"
)

type OpKind int

const (
	OpStrokeRect OpKind = iota
	OpTexturedQuad
	OpLabel
)

// DrawOp is one recorded primitive. Which fields matter depends on Kind.
type DrawOp struct {
	Kind OpKind

	// OpStrokeRect
	Rect  common.Rect
	Width float32

	// OpTexturedQuad
	Texture TextureID
	Corners [4]common.Vec2
	Src     common.Rect

	// OpLabel
	Text string
	At   common.Vec2

	Color color.NRGBA
}

const lineHeight = 16

// DrawList records what a frame wants painted so Update can run without a
// GPU; Draw replays it.
type DrawList struct {
	ops         []DrawOp
	labelOrigin common.Vec2
	lines       int
}

// Reset drops all ops and restarts labels at origin.
func (d *DrawList) Reset(origin common.Vec2) {
	d.ops = d.ops[:0]
	d.labelOrigin = origin
	d.lines = 0
}

func (d *DrawList) Ops() []DrawOp {
	return d.ops
}

func (d *DrawList) StrokeRect(r common.Rect, width float32, c color.NRGBA) {
	d.ops = append(d.ops, DrawOp{Kind: OpStrokeRect, Rect: r, Width: width, Color: c})
}

func (d *DrawList) TexturedQuad(tex TextureID, corners [4]common.Vec2, src common.Rect, tint color.NRGBA) {
	d.ops = append(d.ops, DrawOp{Kind: OpTexturedQuad, Texture: tex, Corners: corners, Src: src, Color: tint})
}

// Label stacks text below the previous label.
func (d *DrawList) Label(text string, c color.NRGBA) {
	at := d.labelOrigin.Add(common.Vec2{Y: float64(d.lines * lineHeight)})
	d.ops = append(d.ops, DrawOp{Kind: OpLabel, Text: text, At: at, Color: c})
	d.lines += strings.Count(text, "\n") + 1
}

// Labels returns the label texts in order.
func (d *DrawList) Labels() []string {
	var out []string
	for _, op := range d.ops {
		if op.Kind == OpLabel {
			out = append(out, op.Text)
		}
	}
	return out
}
