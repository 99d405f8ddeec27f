package tilemap

import "github.com/milk9111/tilemapeditor/ecs"

// TileStorage indexes a tilemap's tile entities by position, row-major.
// The zero Entity marks an empty cell.
type TileStorage struct {
	size  TilemapSize
	tiles []ecs.Entity
}

// NewTileStorage returns an empty storage covering size.
func NewTileStorage(size TilemapSize) TileStorage {
	return TileStorage{size: size, tiles: make([]ecs.Entity, size.Count())}
}

func (s *TileStorage) Size() TilemapSize {
	return s.size
}

func (s *TileStorage) index(pos TilePos) (int, bool) {
	if pos.X >= s.size.X || pos.Y >= s.size.Y {
		return 0, false
	}
	return int(pos.X) + int(pos.Y)*int(s.size.X), true
}

// Get returns the tile at pos, if any.
func (s *TileStorage) Get(pos TilePos) (ecs.Entity, bool) {
	i, ok := s.index(pos)
	if !ok || !s.tiles[i].Valid() {
		return 0, false
	}
	return s.tiles[i], true
}

// Set stores e at pos. Positions outside the map are ignored.
func (s *TileStorage) Set(pos TilePos, e ecs.Entity) bool {
	i, ok := s.index(pos)
	if !ok {
		return false
	}
	s.tiles[i] = e
	return true
}

// Remove clears pos and returns the entity that was there.
func (s *TileStorage) Remove(pos TilePos) (ecs.Entity, bool) {
	i, ok := s.index(pos)
	if !ok || !s.tiles[i].Valid() {
		return 0, false
	}
	e := s.tiles[i]
	s.tiles[i] = 0
	return e, true
}

// Len counts occupied cells.
func (s *TileStorage) Len() int {
	n := 0
	for _, e := range s.tiles {
		if e.Valid() {
			n++
		}
	}
	return n
}

// Each calls fn for every occupied cell in row-major order.
func (s *TileStorage) Each(fn func(TilePos, ecs.Entity)) {
	if s.size.X == 0 {
		return
	}
	for i, e := range s.tiles {
		if !e.Valid() {
			continue
		}
		fn(TilePos{X: uint32(i) % s.size.X, Y: uint32(i) / s.size.X}, e)
	}
}
