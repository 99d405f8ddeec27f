package tiledata

import (
	"errors"
	"reflect"
	"testing"

	"github.com/milk9111/tilemapeditor/ecs"
	"github.com/milk9111/tilemapeditor/ecs/component"
	"github.com/milk9111/tilemapeditor/tilemap"
)

type tagA struct{}
type amountB struct{ N int }
type unrelatedC struct{ S string }
type notComponent struct{}
type unknown struct{}

var (
	tagAComponent       = component.NewComponent[tagA]()
	amountBComponent    = component.NewComponent[amountB]()
	unrelatedCComponent = component.NewComponent[unrelatedC]()
)

func newTypes() *ecs.TypeRegistry {
	r := ecs.NewTypeRegistry()
	ecs.RegisterComponent(r, tagAComponent)
	ecs.RegisterComponent(r, amountBComponent)
	ecs.RegisterComponent(r, unrelatedCComponent)
	ecs.RegisterType[notComponent](r)
	return r
}

var tileset = SingleImage("tiles.png")

func TestApplyAndRemove(t *testing.T) {
	types := newTypes()
	reg := NewRegistry()
	if err := reg.RegisterValue(types, tileset, 3, tagA{}); err != nil {
		t.Fatal(err)
	}
	if err := reg.RegisterValue(types, tileset, 3, amountB{N: 2}); err != nil {
		t.Fatal(err)
	}

	w := ecs.NewWorld()
	e := w.CreateEntity()
	if err := ecs.Add(w, e, unrelatedCComponent, unrelatedC{S: "keep"}); err != nil {
		t.Fatal(err)
	}

	if err := reg.ApplyToEntity(w, tileset, 3, e); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !ecs.Has(w, e, tagAComponent) {
		t.Fatal("expected tagA")
	}
	if b, ok := ecs.Get(w, e, amountBComponent); !ok || b.N != 2 {
		t.Fatalf("expected amountB{2}, got %v", b)
	}

	if err := reg.RemoveFromEntity(w, tileset, 3, e); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if ecs.Has(w, e, tagAComponent) || ecs.Has(w, e, amountBComponent) {
		t.Fatal("attached components survived removal")
	}
	if c, ok := ecs.Get(w, e, unrelatedCComponent); !ok || c.S != "keep" {
		t.Fatal("removal touched a component the tile data does not own")
	}
}

func TestApplyOtherPairIsNoop(t *testing.T) {
	types := newTypes()
	reg := NewRegistry()
	if err := reg.RegisterValue(types, tileset, 1, tagA{}); err != nil {
		t.Fatal(err)
	}
	w := ecs.NewWorld()
	e := w.CreateEntity()

	cases := []struct {
		name    string
		tileset TilesetID
		index   tilemap.TileTextureIndex
	}{
		{"other_index", tileset, 2},
		{"other_tileset", SingleImage("other.png"), 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := reg.ApplyToEntity(w, c.tileset, c.index, e); err != nil {
				t.Fatal(err)
			}
			if ecs.Has(w, e, tagAComponent) {
				t.Fatal("data leaked across pairs")
			}
		})
	}
}

func TestOverwrite(t *testing.T) {
	types := newTypes()
	reg := NewRegistry()
	if err := reg.RegisterValue(types, tileset, 0, amountB{N: 1}); err != nil {
		t.Fatal(err)
	}
	if err := reg.RegisterValue(types, tileset, 0, amountB{N: 9}); err != nil {
		t.Fatal(err)
	}

	l := reg.Lock()
	d, ok := l.TileData(tileset, 0)
	if !ok || d.Len() != 1 {
		l.Unlock()
		t.Fatalf("expected exactly one entry, got %d", d.Len())
	}
	l.Unlock()

	w := ecs.NewWorld()
	e := w.CreateEntity()
	if err := reg.ApplyToEntity(w, tileset, 0, e); err != nil {
		t.Fatal(err)
	}
	if b, _ := ecs.Get(w, e, amountBComponent); b == nil || b.N != 9 {
		t.Fatalf("expected the second value to win, got %v", b)
	}
}

func TestInsertErrors(t *testing.T) {
	types := newTypes()

	cases := []struct {
		name     string
		values   []any
		sentinel error
		typeName string
	}{
		{"not_a_component", []any{notComponent{}}, ErrTypeNotReflectComponent, "tiledata.notComponent"},
		{"not_registered", []any{unknown{}}, ErrTypeNotRegistered, "tiledata.unknown"},
		{"pointer_is_a_different_type", []any{&amountB{}}, ErrTypeNotRegistered, "*tiledata.amountB"},
		{"bad_value_after_good", []any{tagA{}, notComponent{}}, ErrTypeNotReflectComponent, "tiledata.notComponent"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			reg := NewRegistry()
			err := reg.RegisterValue(types, tileset, 7, c.values...)
			if !errors.Is(err, c.sentinel) {
				t.Fatalf("expected %v, got %v", c.sentinel, err)
			}
			switch e := err.(type) {
			case *TypeNotRegisteredError:
				if e.TypeName != c.typeName {
					t.Fatalf("type name %q", e.TypeName)
				}
			case *TypeNotReflectComponentError:
				if e.TypeName != c.typeName {
					t.Fatalf("type name %q", e.TypeName)
				}
			default:
				t.Fatalf("unexpected error type %T", err)
			}

			l := reg.Lock()
			defer l.Unlock()
			if _, ok := l.TileData(tileset, 7); ok {
				t.Fatal("failed insert created the pair")
			}
		})
	}
}

func TestInsertErrorKeepsExistingData(t *testing.T) {
	types := newTypes()
	reg := NewRegistry()
	if err := reg.RegisterValue(types, tileset, 2, amountB{N: 4}); err != nil {
		t.Fatal(err)
	}
	if err := reg.RegisterValue(types, tileset, 2, amountB{N: 5}, notComponent{}); err == nil {
		t.Fatal("expected error")
	}

	l := reg.Lock()
	defer l.Unlock()
	a := l.EditTileData(types, tileset, 2)
	v, ok := a.Value(reflect.TypeFor[amountB]())
	if !ok || v.(amountB).N != 4 {
		t.Fatalf("existing value changed: %v", v)
	}
	if got := a.Types(); len(got) != 1 {
		t.Fatalf("types %v", got)
	}
}

func TestAccessRemove(t *testing.T) {
	types := newTypes()
	reg := NewRegistry()

	l := reg.Lock()
	a := l.EditTileData(types, tileset, 4)
	if err := a.Insert(tagA{}, amountB{N: 1}); err != nil {
		t.Fatal(err)
	}
	if err := Remove[tagA](a); err != nil {
		t.Fatal(err)
	}
	if got := a.Types(); len(got) != 1 || got[0] != reflect.TypeFor[amountB]() {
		t.Fatalf("types after remove: %v", got)
	}
	if err := Remove[tagA](a); err != nil {
		t.Fatalf("removing an absent known type should be a no-op, got %v", err)
	}
	if err := Remove[unknown](a); !errors.Is(err, ErrTypeNotRegistered) {
		t.Fatalf("expected ErrTypeNotRegistered, got %v", err)
	}
	if err := Remove[amountB](a); err != nil {
		t.Fatal(err)
	}
	if _, ok := l.TileData(tileset, 4); ok {
		t.Fatal("empty pair should be dropped")
	}
	l.Unlock()
}

func TestCopyFromEntity(t *testing.T) {
	types := newTypes()
	reg := NewRegistry()
	if err := reg.RegisterValue(types, tileset, 5, tagA{}, amountB{N: 1}); err != nil {
		t.Fatal(err)
	}

	w := ecs.NewWorld()
	src := w.CreateEntity()
	if err := ecs.Add(w, src, amountBComponent, amountB{N: 7}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, src, unrelatedCComponent, unrelatedC{S: "x"}); err != nil {
		t.Fatal(err)
	}

	if err := reg.CopyFromEntity(w, tileset, 5, src); err != nil {
		t.Fatal(err)
	}

	dst := w.CreateEntity()
	if err := reg.ApplyToEntity(w, tileset, 5, dst); err != nil {
		t.Fatal(err)
	}
	if b, _ := ecs.Get(w, dst, amountBComponent); b == nil || b.N != 7 {
		t.Fatalf("expected live value 7, got %v", b)
	}
	if !ecs.Has(w, dst, tagAComponent) {
		t.Fatal("type missing on the source entity must keep its template")
	}
	if ecs.Has(w, dst, unrelatedCComponent) {
		t.Fatal("copy picked up an unregistered type")
	}

	t.Run("unknown_pair_stays_absent", func(t *testing.T) {
		if err := reg.CopyFromEntity(w, tileset, 6, src); err != nil {
			t.Fatal(err)
		}
		l := reg.Lock()
		defer l.Unlock()
		if _, ok := l.TileData(tileset, 6); ok {
			t.Fatal("copy created an empty pair")
		}
	})

	t.Run("dead_entity", func(t *testing.T) {
		w.DestroyEntity(src)
		if err := reg.CopyFromEntity(w, tileset, 5, src); !errors.Is(err, component.ErrEntityNotAlive) {
			t.Fatalf("expected ErrEntityNotAlive, got %v", err)
		}
	})
}

func TestTilesetOf(t *testing.T) {
	id, err := TilesetOf(tilemap.SingleTexture("tiles.png"))
	if err != nil || id != tileset {
		t.Fatalf("got %v, %v", id, err)
	}
	_, err = TilesetOf(tilemap.TilemapTexture{Kind: tilemap.TextureContainer})
	if !errors.Is(err, tilemap.ErrUnsupportedTexture) {
		t.Fatalf("expected ErrUnsupportedTexture, got %v", err)
	}
}
