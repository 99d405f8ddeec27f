package editor

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilemapeditor/common"
	"github.com/milk9111/tilemapeditor/tilemap"
)

// Input is the per-frame pointer and keyboard state.
type Input interface {
	CursorPosition() common.Vec2
	MouseButtonPressed(b ebiten.MouseButton) bool
	MouseButtonJustPressed(b ebiten.MouseButton) bool
	KeyPressed(k ebiten.Key) bool
	KeyJustPressed(k ebiten.Key) bool
	Wheel() common.Vec2
}

// ImageSource reports atlas sizes.
type ImageSource interface {
	ImageSize(h tilemap.ImageHandle) (common.Vec2, bool)
}

type Clipboard interface {
	WriteText(s string) error
}

const primaryButton = ebiten.MouseButtonLeft
