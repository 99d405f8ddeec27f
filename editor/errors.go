package editor

import (
	"errors"
	"fmt"

	"github.com/milk9111/tilemapeditor/ecs"
	"github.com/milk9111/tilemapeditor/tilemap"
)

var (
	ErrInvalidImageHandle       = errors.New("editor: invalid image handle")
	ErrMissingTilemapComponents = errors.New("editor: tilemap entity is missing components")
	ErrMissingTileComponents    = errors.New("editor: tile entity is missing components")
	ErrUnsupportedTilemapType   = errors.New("editor: unsupported tilemap type")
)

// InvalidImageHandleError is returned when a tilemap's atlas is not in the
// image source.
type InvalidImageHandleError struct {
	Handle tilemap.ImageHandle
}

func (e *InvalidImageHandleError) Error() string {
	return fmt.Sprintf("editor: encountered an incorrect image handle: %q", e.Handle)
}

func (e *InvalidImageHandleError) Is(target error) bool {
	return target == ErrInvalidImageHandle
}

// BadTilemapEntityError is returned when the edited tilemap disappeared or
// lost one of the components the editor reads.
type BadTilemapEntityError struct {
	Tilemap ecs.Entity
	Err     error
}

func (e *BadTilemapEntityError) Error() string {
	return fmt.Sprintf("editor: the tilemap entity %v doesn't exist or is missing some important components: %v", e.Tilemap, e.Err)
}

func (e *BadTilemapEntityError) Unwrap() error {
	return e.Err
}

func (e *BadTilemapEntityError) Is(target error) bool {
	return target == ErrMissingTilemapComponents
}

// BadTileEntityError names a tile the storage points at that cannot be read
// or written.
type BadTileEntityError struct {
	Tilemap ecs.Entity
	Tile    ecs.Entity
	Pos     tilemap.TilePos
	Err     error
}

func (e *BadTileEntityError) Error() string {
	return fmt.Sprintf("editor: the tilemap entity %v has tile %v at (%d, %d), but it either doesn't exist or is missing some important components: %v",
		e.Tilemap, e.Tile, e.Pos.X, e.Pos.Y, e.Err)
}

func (e *BadTileEntityError) Unwrap() error {
	return e.Err
}

func (e *BadTileEntityError) Is(target error) bool {
	return target == ErrMissingTileComponents
}

// UnsupportedTilemapTypeError refuses non-square tilemaps.
type UnsupportedTilemapTypeError struct {
	Type tilemap.TilemapType
}

func (e *UnsupportedTilemapTypeError) Error() string {
	return fmt.Sprintf("editor: tilemaps other than square tilemaps aren't supported, got %s", e.Type)
}

func (e *UnsupportedTilemapTypeError) Is(target error) bool {
	return target == ErrUnsupportedTilemapType
}
