package ecs

import (
	"errors"
	"fmt"
)

var (
	ErrMissingComponent      = errors.New("ecs: missing component")
	ErrComponentTypeMismatch = errors.New("ecs: component value has the wrong type")
)

// MissingComponentError reports which component a lookup expected on an
// entity.
type MissingComponentError struct {
	Entity    Entity
	Component string
}

func (e *MissingComponentError) Error() string {
	return fmt.Sprintf("ecs: entity %v has no %s component", e.Entity, e.Component)
}

func (e *MissingComponentError) Is(target error) bool {
	return target == ErrMissingComponent
}
