package tiledata

import (
	"fmt"
	"reflect"

	"github.com/milk9111/tilemapeditor/ecs"
)

type entry struct {
	typ       reflect.Type
	component ecs.ReflectComponent
	value     any
}

// TileData is the extra data attached to one tile index: at most one value
// per type, kept in registration order.
type TileData struct {
	entries []entry
}

func (d *TileData) find(t reflect.Type) int {
	for i, e := range d.entries {
		if e.typ == t {
			return i
		}
	}
	return -1
}

func (d *TileData) set(e entry) {
	if i := d.find(e.typ); i >= 0 {
		d.entries[i] = e
		return
	}
	d.entries = append(d.entries, e)
}

func (d *TileData) delete(t reflect.Type) bool {
	i := d.find(t)
	if i < 0 {
		return false
	}
	d.entries = append(d.entries[:i], d.entries[i+1:]...)
	return true
}

func (d *TileData) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Types lists the attached types in registration order.
func (d *TileData) Types() []reflect.Type {
	if d == nil {
		return nil
	}
	out := make([]reflect.Type, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.typ
	}
	return out
}

// Value returns the template value stored for t.
func (d *TileData) Value(t reflect.Type) (any, bool) {
	if d == nil {
		return nil, false
	}
	if i := d.find(t); i >= 0 {
		return d.entries[i].value, true
	}
	return nil, false
}

func (d *TileData) clone() *TileData {
	if d == nil {
		return nil
	}
	return &TileData{entries: append([]entry(nil), d.entries...)}
}

// insert writes every template value onto e.
func (d *TileData) insert(w *ecs.World, e ecs.Entity) error {
	for _, en := range d.entries {
		if err := en.component.Insert(w, e, en.value); err != nil {
			return fmt.Errorf("tiledata: insert %s into %v: %w", en.typ, e, err)
		}
	}
	return nil
}

// remove drops every attached type from e.
func (d *TileData) remove(w *ecs.World, e ecs.Entity) {
	for _, en := range d.entries {
		en.component.Remove(w, e)
	}
}

// copyFrom replaces each template value with e's live value, for the types
// e actually carries.
func (d *TileData) copyFrom(w *ecs.World, e ecs.Entity) {
	for i, en := range d.entries {
		if v, ok := en.component.Reflect(w, e); ok {
			d.entries[i].value = v
		}
	}
}
