package main

import (
	"fmt"

	"github.com/milk9111/tilemapeditor/ecs"
	"github.com/milk9111/tilemapeditor/ecs/component"
	"github.com/milk9111/tilemapeditor/tiledata"
	"github.com/milk9111/tilemapeditor/tilemap"
)

type WaterTag struct{}

type GrassHeight struct {
	Value uint32
}

type GroundTag struct{}

type HiddenMinerals int

const (
	Diamonds HiddenMinerals = iota
	Coal
)

type WoodAmount struct {
	Value int
}

var (
	WaterTagComponent       = component.NewComponent[WaterTag]()
	GrassHeightComponent    = component.NewComponent[GrassHeight]()
	GroundTagComponent      = component.NewComponent[GroundTag]()
	HiddenMineralsComponent = component.NewComponent[HiddenMinerals]()
	WoodAmountComponent     = component.NewComponent[WoodAmount]()
)

func registerTypes() *ecs.TypeRegistry {
	r := ecs.NewTypeRegistry()
	ecs.RegisterComponent(r, WaterTagComponent)
	ecs.RegisterComponent(r, GrassHeightComponent)
	ecs.RegisterComponent(r, GroundTagComponent)
	ecs.RegisterComponent(r, HiddenMineralsComponent)
	ecs.RegisterComponent(r, WoodAmountComponent)
	return r
}

// seedTileData gives the first atlas tiles gameplay meaning.
func seedTileData(reg *tiledata.Registry, types *ecs.TypeRegistry, tileset tiledata.TilesetID) error {
	seed := []struct {
		index  tilemap.TileTextureIndex
		values []any
	}{
		{0, []any{GrassHeight{Value: 10}, GroundTag{}}},
		{1, []any{WaterTag{}, GrassHeight{Value: 5}}},
		{2, []any{GroundTag{}, GrassHeight{Value: 0}}},
		{3, []any{GroundTag{}}},
		{4, []any{GroundTag{}, Coal}},
		{5, []any{GroundTag{}, Diamonds}},
		{6, []any{WoodAmount{Value: 20}}},
	}
	for _, s := range seed {
		if err := reg.RegisterValue(types, tileset, s.index, s.values...); err != nil {
			return fmt.Errorf("seed tile %d: %w", s.index, err)
		}
	}
	return nil
}
