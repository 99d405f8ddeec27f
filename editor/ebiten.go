package editor

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/tilemapeditor/common"
	"golang.design/x/clipboard"
)

// EbitenInput reads the live ebiten input state.
type EbitenInput struct{}

func (EbitenInput) CursorPosition() common.Vec2 {
	x, y := ebiten.CursorPosition()
	return common.Vec2{X: float64(x), Y: float64(y)}
}

func (EbitenInput) MouseButtonPressed(b ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(b)
}

func (EbitenInput) MouseButtonJustPressed(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(b)
}

func (EbitenInput) KeyPressed(k ebiten.Key) bool {
	return ebiten.IsKeyPressed(k)
}

func (EbitenInput) KeyJustPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}

func (EbitenInput) Wheel() common.Vec2 {
	x, y := ebiten.Wheel()
	return common.Vec2{X: x, Y: y}
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

// NewSystemClipboard fails when the platform has no clipboard, for example
// on a headless X11 session.
func NewSystemClipboard() (*SystemClipboard, error) {
	if err := clipboard.Init(); err != nil {
		return nil, fmt.Errorf("init clipboard: %w", err)
	}
	return &SystemClipboard{}, nil
}

func (*SystemClipboard) WriteText(s string) error {
	clipboard.Write(clipboard.FmtText, []byte(s))
	return nil
}
