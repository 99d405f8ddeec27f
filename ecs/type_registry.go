package ecs

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/milk9111/tilemapeditor/ecs/component"
)

// ReflectComponent lets callers insert, remove and read a component on an
// entity knowing only its runtime type.
type ReflectComponent struct {
	id       component.ComponentID
	typ      reflect.Type
	insert   func(w *World, e Entity, value any) error
	remove   func(w *World, e Entity) bool
	reflect  func(w *World, e Entity) (any, bool)
	contains func(w *World, e Entity) bool
}

// Type returns the component's value type.
func (rc ReflectComponent) Type() reflect.Type {
	return rc.typ
}

// Insert adds value (which must hold the registered type, not a pointer to
// it) to e, replacing an existing value.
func (rc ReflectComponent) Insert(w *World, e Entity, value any) error {
	if rc.insert == nil {
		return component.ErrInvalidComponentKind
	}
	return rc.insert(w, e, value)
}

// Remove deletes the component from e; false if it was absent.
func (rc ReflectComponent) Remove(w *World, e Entity) bool {
	if rc.remove == nil {
		return false
	}
	return rc.remove(w, e)
}

// Reflect returns a copy of the live value on e.
func (rc ReflectComponent) Reflect(w *World, e Entity) (any, bool) {
	if rc.reflect == nil {
		return nil, false
	}
	return rc.reflect(w, e)
}

// Contains reports whether e carries the component.
func (rc ReflectComponent) Contains(w *World, e Entity) bool {
	if rc.contains == nil {
		return false
	}
	return rc.contains(w, e)
}

// TypeRegistration is what the registry knows about one type.
type TypeRegistration struct {
	typ       reflect.Type
	component *ReflectComponent
}

func (t *TypeRegistration) Type() reflect.Type {
	return t.typ
}

func (t *TypeRegistration) Name() string {
	return t.typ.String()
}

// Component returns the component descriptor, if the type was registered
// as a component.
func (t *TypeRegistration) Component() (ReflectComponent, bool) {
	if t == nil || t.component == nil {
		return ReflectComponent{}, false
	}
	return *t.component, true
}

// TypeRegistry maps runtime types to their registrations. It is safe for
// concurrent use.
type TypeRegistry struct {
	mu    sync.RWMutex
	types map[reflect.Type]*TypeRegistration
}

func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{types: make(map[reflect.Type]*TypeRegistration)}
}

// Get looks a type up.
func (r *TypeRegistry) Get(t reflect.Type) (*TypeRegistration, bool) {
	if r == nil || t == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.types[t]
	return reg, ok
}

// Names lists the registered type names, sorted.
func (r *TypeRegistry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.types))
	for t := range r.types {
		names = append(names, t.String())
	}
	sort.Strings(names)
	return names
}

func (r *TypeRegistry) put(reg *TypeRegistration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.types == nil {
		r.types = make(map[reflect.Type]*TypeRegistration)
	}
	// a plain registration never downgrades a component one
	if prev, ok := r.types[reg.typ]; ok && prev.component != nil && reg.component == nil {
		return
	}
	r.types[reg.typ] = reg
}

// RegisterType records T without component data.
func RegisterType[T any](r *TypeRegistry) {
	r.put(&TypeRegistration{typ: reflect.TypeFor[T]()})
}

// RegisterComponent records T together with a descriptor bound to handle.
func RegisterComponent[T any](r *TypeRegistry, handle component.ComponentHandle[T]) {
	typ := reflect.TypeFor[T]()
	rc := &ReflectComponent{
		id:  handle.ID(),
		typ: typ,
		insert: func(w *World, e Entity, value any) error {
			v, ok := value.(T)
			if !ok {
				return fmt.Errorf("%w: want %s, got %T", ErrComponentTypeMismatch, typ, value)
			}
			return Add(w, e, handle, v)
		},
		remove: func(w *World, e Entity) bool {
			return Remove(w, e, handle)
		},
		reflect: func(w *World, e Entity) (any, bool) {
			v, ok := Get(w, e, handle)
			if !ok {
				return nil, false
			}
			return *v, true
		},
		contains: func(w *World, e Entity) bool {
			return Has(w, e, handle)
		},
	}
	r.put(&TypeRegistration{typ: typ, component: rc})
}
