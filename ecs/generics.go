package ecs

import (
	"fmt"

	"github.com/milk9111/tilemapeditor/ecs/component"
)

// Add stores a copy of value on e. An existing value is overwritten in
// place so pointers handed out by Get stay valid.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	if existing, ok := Get(w, e, handle); ok {
		*existing = value
		return nil
	}
	v := value
	return w.AddComponent(e, handle.ID(), &v)
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.RemoveComponent(e, handle.ID())
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.HasComponent(e, handle.ID())
}

func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	value, ok := w.GetComponent(e, handle.ID())
	if !ok {
		return nil, false
	}
	cast, ok := value.(*T)
	if !ok || cast == nil {
		return nil, false
	}
	return cast, true
}

// Require is Get with an error naming the missing piece.
func Require[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, error) {
	if !w.IsAlive(e) {
		return nil, fmt.Errorf("ecs: entity %v: %w", e, component.ErrEntityNotAlive)
	}
	v, ok := Get(w, e, handle)
	if !ok {
		return nil, &MissingComponentError{Entity: e, Component: handle.Name()}
	}
	return v, nil
}

// First returns the first entity carrying the component and its value.
func First[T any](w *World, handle component.ComponentHandle[T]) (Entity, *T, bool) {
	e, ok := w.First(handle.Kind())
	if !ok {
		return 0, nil, false
	}
	v, ok := Get(w, e, handle)
	return e, v, ok
}

func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range w.Query(kind) {
		v, ok := w.GetComponent(e, kind.ID())
		if !ok {
			continue
		}
		if cast, ok := v.(*T); ok {
			fn(e, cast)
		}
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range w.Query(ka, kb) {
		va, _ := w.GetComponent(e, ka.ID())
		vb, _ := w.GetComponent(e, kb.ID())
		a, okA := va.(*A)
		b, okB := vb.(*B)
		if okA && okB {
			fn(e, a, b)
		}
	}
}
