package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilemapeditor/assets"
	"github.com/milk9111/tilemapeditor/common"
	"github.com/milk9111/tilemapeditor/config"
	"github.com/milk9111/tilemapeditor/ecs"
	"github.com/milk9111/tilemapeditor/ecs/component"
	"github.com/milk9111/tilemapeditor/editor"
	"github.com/milk9111/tilemapeditor/tiledata"
	"github.com/milk9111/tilemapeditor/tilemap"
)

const atlasHandle tilemap.ImageHandle = "atlas"

func main() {
	cfgPath := flag.String("config", "", "editor config file (yaml); watched for changes")
	atlasPath := flag.String("atlas", "", "tile atlas png; a generated one is used when empty")
	width := flag.Int("width", 1280, "window width")
	height := flag.Int("height", 720, "window height")
	tile := flag.Int("tile", 16, "tile size in pixels")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		c, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = c
	}

	images := assets.NewStore()
	if *atlasPath != "" {
		if err := images.LoadFile(atlasHandle, *atlasPath); err != nil {
			log.Fatal(err)
		}
	} else {
		images.Add(atlasHandle, ebiten.NewImageFromImage(assets.GenerateAtlas(8, 8, *tile)))
	}

	world := ecs.NewWorld()
	if err := spawnScene(world, *tile); err != nil {
		log.Fatal(err)
	}

	types := registerTypes()
	registry := tiledata.NewRegistry()
	if err := seedTileData(registry, types, tiledata.SingleImage(atlasHandle)); err != nil {
		log.Fatal(err)
	}

	pane, err := editor.NewUIPane(cfg)
	if err != nil {
		log.Fatal(err)
	}
	logger := log.New(os.Stderr, "", log.LstdFlags)
	opts := []editor.Option{
		editor.WithConfig(cfg),
		editor.WithLogger(logger),
		editor.WithPane(pane),
		editor.WithRegistry(registry),
	}
	if clip, err := editor.NewSystemClipboard(); err != nil {
		logger.Printf("clipboard disabled: %v", err)
	} else {
		opts = append(opts, editor.WithClipboard(clip))
	}

	game := &Game{
		width:   *width,
		height:  *height,
		world:   world,
		images:  images,
		render:  tilemap.NewRenderSystem(images),
		editor:  editor.New(world, types, images, opts...),
		cfgPath: *cfgPath,
	}
	world.AddSystem(&cameraController{viewport: func() common.Rect { return game.viewport }})

	if *cfgPath != "" {
		w, err := config.NewWatcher(*cfgPath)
		if err != nil {
			logger.Printf("config hot reload disabled: %v", err)
		} else {
			game.watcher = w
			defer w.Close()
		}
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("tilemap editor")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// spawnScene adds the editor camera and two tilemaps to w.
func spawnScene(w *ecs.World, tile int) error {
	cam := w.CreateEntity()
	if err := ecs.Add(w, cam, component.CameraComponent, component.Camera{Zoom: 2, Active: true}); err != nil {
		return err
	}
	if err := ecs.Add(w, cam, component.TransformComponent, component.Transform{X: -32, Y: -32}); err != nil {
		return err
	}
	if err := ecs.Add(w, cam, component.EditorCameraTagComponent, component.EditorCameraTag{}); err != nil {
		return err
	}

	size := tilemap.TilemapTileSize{X: float64(tile), Y: float64(tile)}
	if _, err := tilemap.SpawnTilemap(w, tilemap.TilemapBundle{
		Name:     "ground",
		Texture:  tilemap.SingleTexture(atlasHandle),
		Size:     tilemap.TilemapSize{X: 32, Y: 16},
		TileSize: size,
		Type:     tilemap.Square,
	}); err != nil {
		return err
	}
	_, err := tilemap.SpawnTilemap(w, tilemap.TilemapBundle{
		Texture:   tilemap.SingleTexture(atlasHandle),
		Size:      tilemap.TilemapSize{X: 8, Y: 8},
		TileSize:  size,
		Type:      tilemap.Square,
		Transform: component.Transform{X: 0, Y: float64(18 * tile)},
	})
	return err
}
