package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilemapeditor/common"
	"github.com/milk9111/tilemapeditor/tilemap"
)

type entry struct {
	img  *ebiten.Image
	size common.Vec2
}

// Store keeps the images tilemaps refer to by handle.
type Store struct {
	mu     sync.RWMutex
	images map[tilemap.ImageHandle]entry
}

func NewStore() *Store {
	return &Store{images: make(map[tilemap.ImageHandle]entry)}
}

// Add registers img under h, replacing an earlier image.
func (s *Store) Add(h tilemap.ImageHandle, img *ebiten.Image) {
	if img == nil {
		return
	}
	b := img.Bounds()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.images == nil {
		s.images = make(map[tilemap.ImageHandle]entry)
	}
	s.images[h] = entry{img: img, size: common.Vec2{X: float64(b.Dx()), Y: float64(b.Dy())}}
}

func (s *Store) Remove(h tilemap.ImageHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.images, h)
}

func (s *Store) Image(h tilemap.ImageHandle) (*ebiten.Image, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.images[h]
	return e.img, ok
}

// ImageSize returns the pixel size of h.
func (s *Store) ImageSize(h tilemap.ImageHandle) (common.Vec2, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.images[h]
	return e.size, ok
}

// LoadPNG decodes a PNG file from disk.
func LoadPNG(path string) (*ebiten.Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadFile loads path and stores it under h.
func (s *Store) LoadFile(h tilemap.ImageHandle, path string) error {
	img, err := LoadPNG(path)
	if err != nil {
		return err
	}
	s.Add(h, img)
	return nil
}
