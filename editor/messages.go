package editor

import (
	"image/color"

	"github.com/milk9111/tilemapeditor/ecs"
)

// Message is a state transition requested by one half of a frame. A nil
// Message means stay put.
type Message interface {
	message()
}

// StartEditing switches from picking to editing the given tilemap.
type StartEditing struct {
	Tilemap ecs.Entity
}

// StopEditing returns to picking.
type StopEditing struct{}

// ShowErrorAndReturnToPicking aborts the editing session.
type ShowErrorAndReturnToPicking struct {
	Err error
}

func (StartEditing) message()                {}
func (StopEditing) message()                 {}
func (ShowErrorAndReturnToPicking) message() {}

// Action is a user gesture reported by a Pane.
type Action interface {
	action()
}

type PickTilemap struct {
	Tilemap ecs.Entity
}

type ExitEditing struct{}

type SelectTool struct {
	Tool Tool
}

// ToggleFlip flips every axis that is set.
type ToggleFlip struct {
	X, Y, D bool
}

type Rotate struct {
	Clockwise bool
}

type SelectTint struct {
	Color color.NRGBA
}

func (PickTilemap) action() {}
func (ExitEditing) action() {}
func (SelectTool) action()  {}
func (ToggleFlip) action()  {}
func (Rotate) action()      {}
func (SelectTint) action()  {}
