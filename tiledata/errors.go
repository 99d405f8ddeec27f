package tiledata

import (
	"errors"
	"fmt"
)

var (
	ErrTypeNotRegistered       = errors.New("tiledata: type not registered")
	ErrTypeNotReflectComponent = errors.New("tiledata: type is not a reflect component")
)

// TypeNotRegisteredError is returned when the type registry has never heard
// of a value's type.
type TypeNotRegisteredError struct {
	TypeName string
}

func (e *TypeNotRegisteredError) Error() string {
	return fmt.Sprintf("tiledata: type %s is not registered in the type registry", e.TypeName)
}

func (e *TypeNotRegisteredError) Is(target error) bool {
	return target == ErrTypeNotRegistered
}

// TypeNotReflectComponentError is returned when a type is registered but
// cannot be inserted into an entity.
type TypeNotReflectComponentError struct {
	TypeName string
}

func (e *TypeNotReflectComponentError) Error() string {
	return fmt.Sprintf("tiledata: type %s is registered but has no component descriptor", e.TypeName)
}

func (e *TypeNotReflectComponentError) Is(target error) bool {
	return target == ErrTypeNotReflectComponent
}
