package tilemap

import (
	"errors"
	"fmt"
)

var ErrUnsupportedTexture = errors.New("tilemap: unsupported texture kind")

// UnsupportedTextureError reports a texture variant that cannot be
// addressed by a single atlas handle.
type UnsupportedTextureError struct {
	Kind TextureKind
}

func (e *UnsupportedTextureError) Error() string {
	return fmt.Sprintf("tilemap: texture type %q isn't supported yet", e.Kind)
}

func (e *UnsupportedTextureError) Is(target error) bool {
	return target == ErrUnsupportedTexture
}
