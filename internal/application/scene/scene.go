// Package scene defines the Scene interface for game screens.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the viewer.
// The game loop delegates Update and Draw to the current scene and switches
// scenes when Update returns a non-nil next scene.
type Scene interface {
	// Update advances the scene by dt milliseconds.
	// Returns the next scene to switch to, or nil to stay.
	// Returns an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	Draw(screen *ebiten.Image)

	// OnEnter is called each time the scene becomes current.
	OnEnter()

	// OnExit is called when leaving the scene and when the game shuts down.
	OnExit()
}
