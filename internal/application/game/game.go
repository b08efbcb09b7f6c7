// Package game runs the ebiten loop and hands each tick to the current Scene.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/ringfall/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64 // ms per tick
}

// New creates a new Game ticking tps times per second.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH, tps int) *Game {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1000 / float64(tps),
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// Shutdown runs the current scene's OnExit once the loop has ended
func (g *Game) Shutdown() {
	g.current.OnExit()
}
