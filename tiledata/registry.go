package tiledata

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/milk9111/tilemapeditor/ecs"
	"github.com/milk9111/tilemapeditor/ecs/component"
	"github.com/milk9111/tilemapeditor/tilemap"
)

// Registry maps (tileset, tile index) pairs to the data painted tiles
// receive. All access is exclusive.
//
// Never call the Registry's one-shot helpers while holding a Lock from the
// same goroutine; the mutex is not reentrant.
type Registry struct {
	mu   sync.Mutex
	sets map[TilesetID]map[tilemap.TileTextureIndex]*TileData
}

func NewRegistry() *Registry {
	return &Registry{sets: make(map[TilesetID]map[tilemap.TileTextureIndex]*TileData)}
}

func (r *Registry) get(tileset TilesetID, index tilemap.TileTextureIndex) *TileData {
	return r.sets[tileset][index]
}

func (r *Registry) getOrCreate(tileset TilesetID, index tilemap.TileTextureIndex) *TileData {
	if r.sets == nil {
		r.sets = make(map[TilesetID]map[tilemap.TileTextureIndex]*TileData)
	}
	byIndex, ok := r.sets[tileset]
	if !ok {
		byIndex = make(map[tilemap.TileTextureIndex]*TileData)
		r.sets[tileset] = byIndex
	}
	d, ok := byIndex[index]
	if !ok {
		d = &TileData{}
		byIndex[index] = d
	}
	return d
}

func (r *Registry) prune(tileset TilesetID, index tilemap.TileTextureIndex) {
	byIndex := r.sets[tileset]
	if d, ok := byIndex[index]; ok && d.Len() == 0 {
		delete(byIndex, index)
	}
	if len(byIndex) == 0 {
		delete(r.sets, tileset)
	}
}

// snapshot copies the data for a pair so it can be used after unlocking.
func (r *Registry) snapshot(tileset TilesetID, index tilemap.TileTextureIndex) *TileData {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.get(tileset, index).clone()
}

// Lock takes the registry mutex until Unlock is called.
func (r *Registry) Lock() *Lock {
	r.mu.Lock()
	return &Lock{r: r}
}

// Lock is a held registry mutex.
type Lock struct {
	r        *Registry
	released bool
}

func (l *Lock) Unlock() {
	if l == nil || l.released {
		return
	}
	l.released = true
	l.r.mu.Unlock()
}

// TileData returns the data for a pair. The pointer is only valid while the
// lock is held.
func (l *Lock) TileData(tileset TilesetID, index tilemap.TileTextureIndex) (*TileData, bool) {
	d := l.r.get(tileset, index)
	return d, d != nil
}

// EditTileData opens a pair for editing. The pair is only created once a
// value is inserted.
func (l *Lock) EditTileData(types *ecs.TypeRegistry, tileset TilesetID, index tilemap.TileTextureIndex) *Access {
	return &Access{lock: l, types: types, tileset: tileset, index: index}
}

// Access edits the data of one (tileset, index) pair under a Lock.
type Access struct {
	lock    *Lock
	types   *ecs.TypeRegistry
	tileset TilesetID
	index   tilemap.TileTextureIndex
}

func (a *Access) lookup(t reflect.Type) (ecs.ReflectComponent, error) {
	name := "<nil>"
	if t != nil {
		name = t.String()
	}
	reg, ok := a.types.Get(t)
	if !ok {
		return ecs.ReflectComponent{}, &TypeNotRegisteredError{TypeName: name}
	}
	rc, ok := reg.Component()
	if !ok {
		return ecs.ReflectComponent{}, &TypeNotReflectComponentError{TypeName: name}
	}
	return rc, nil
}

// Insert attaches values keyed by their dynamic type, replacing earlier
// values of the same type. Every value is checked first; on error nothing
// is written.
func (a *Access) Insert(values ...any) error {
	entries := make([]entry, 0, len(values))
	for _, v := range values {
		t := reflect.TypeOf(v)
		rc, err := a.lookup(t)
		if err != nil {
			return err
		}
		entries = append(entries, entry{typ: t, component: rc, value: v})
	}
	if len(entries) == 0 {
		return nil
	}
	d := a.lock.r.getOrCreate(a.tileset, a.index)
	for _, e := range entries {
		d.set(e)
	}
	return nil
}

// Remove detaches t. Removing a known type that is not attached is a no-op.
func (a *Access) Remove(t reflect.Type) error {
	if _, err := a.lookup(t); err != nil {
		return err
	}
	if d := a.lock.r.get(a.tileset, a.index); d != nil && d.delete(t) {
		a.lock.r.prune(a.tileset, a.index)
	}
	return nil
}

// Remove detaches T from the pair a edits.
func Remove[T any](a *Access) error {
	return a.Remove(reflect.TypeFor[T]())
}

func (a *Access) Value(t reflect.Type) (any, bool) {
	return a.lock.r.get(a.tileset, a.index).Value(t)
}

func (a *Access) Types() []reflect.Type {
	return a.lock.r.get(a.tileset, a.index).Types()
}

// RegisterValue is Lock, EditTileData, Insert and Unlock in one call.
func (r *Registry) RegisterValue(types *ecs.TypeRegistry, tileset TilesetID, index tilemap.TileTextureIndex, values ...any) error {
	l := r.Lock()
	defer l.Unlock()
	return l.EditTileData(types, tileset, index).Insert(values...)
}

// ApplyToEntity inserts the pair's data into e.
func (r *Registry) ApplyToEntity(w *ecs.World, tileset TilesetID, index tilemap.TileTextureIndex, e ecs.Entity) error {
	d := r.snapshot(tileset, index)
	if d == nil {
		return nil
	}
	return d.insert(w, e)
}

// RemoveFromEntity removes every type attached to the pair from e.
func (r *Registry) RemoveFromEntity(w *ecs.World, tileset TilesetID, index tilemap.TileTextureIndex, e ecs.Entity) error {
	if !w.IsAlive(e) {
		return fmt.Errorf("tiledata: remove from %v: %w", e, component.ErrEntityNotAlive)
	}
	d := r.snapshot(tileset, index)
	if d == nil {
		return nil
	}
	d.remove(w, e)
	return nil
}

// CopyFromEntity folds e's live values of the pair's types back into the
// stored template.
func (r *Registry) CopyFromEntity(w *ecs.World, tileset TilesetID, index tilemap.TileTextureIndex, e ecs.Entity) error {
	if !w.IsAlive(e) {
		return fmt.Errorf("tiledata: copy from %v: %w", e, component.ErrEntityNotAlive)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if d := r.get(tileset, index); d != nil {
		d.copyFrom(w, e)
	}
	return nil
}
