package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/tilemapeditor/assets"
	"github.com/milk9111/tilemapeditor/common"
	"github.com/milk9111/tilemapeditor/config"
	"github.com/milk9111/tilemapeditor/ecs"
	"github.com/milk9111/tilemapeditor/editor"
	"github.com/milk9111/tilemapeditor/tilemap"
	"golang.org/x/image/colornames"
)

type Game struct {
	frames int
	width  int
	height int

	world    *ecs.World
	images   *assets.Store
	render   *tilemap.RenderSystem
	editor   *editor.Editor
	input    editor.EbitenInput
	cfgPath  string
	watcher  *config.Watcher
	viewport common.Rect
}

func (g *Game) Update() error {
	g.frames++
	g.reloadConfig()

	g.viewport = g.editor.Viewport(g.width, g.height)
	g.world.Update()
	g.editor.Update(g.input, g.viewport)
	return nil
}

// reloadConfig picks up saved edits to the config file without blocking
// the frame.
func (g *Game) reloadConfig() {
	if g.watcher == nil {
		return
	}
	select {
	case _, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		cfg, err := config.Load(g.cfgPath)
		if err != nil {
			log.Printf("reload config %s: %v", g.cfgPath, err)
			return
		}
		log.Printf("reloaded config %s", g.cfgPath)
		g.editor.SetConfig(cfg)
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("watch config %s: %v", g.cfgPath, err)
		}
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	g.render.Draw(g.world, screen, g.viewport)
	g.editor.Draw(screen, g.images)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f", ebiten.ActualFPS()), g.width-90, g.height-20)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
