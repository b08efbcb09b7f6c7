package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/ringfall/internal/application/scene"
)

// mockScene is a test double for Scene interface
type mockScene struct {
	updateCalled  int
	drawCalled    int
	onEnterCalled int
	onExitCalled  int
	lastDT        float64
	nextScene     scene.Scene
	updateErr     error
}

func (m *mockScene) Update(dt float64) (scene.Scene, error) {
	m.updateCalled++
	m.lastDT = dt
	return m.nextScene, m.updateErr
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawCalled++
}

func (m *mockScene) OnEnter() {
	m.onEnterCalled++
}

func (m *mockScene) OnExit() {
	m.onExitCalled++
}

func TestNew(t *testing.T) {
	initial := &mockScene{}
	g := New(initial, 640, 480, 60)

	assert.NotNil(t, g)
	assert.Equal(t, 1, initial.onEnterCalled, "OnEnter should be called on initial scene")
	assert.Same(t, initial, g.Current())
}

func TestGame_TickLength(t *testing.T) {
	tests := []struct {
		tps  int
		want float64
	}{
		{tps: 60, want: 1000.0 / 60},
		{tps: 30, want: 1000.0 / 30},
		{tps: 0, want: 1000.0 / float64(ebiten.DefaultTPS)},
	}

	for _, tt := range tests {
		s := &mockScene{}
		g := New(s, 640, 480, tt.tps)

		assert.NoError(t, g.Update())
		assert.InDelta(t, tt.want, s.lastDT, 1e-12, "tps %d", tt.tps)
	}
}

func TestGame_Layout(t *testing.T) {
	g := New(&mockScene{}, 640, 480, 60)

	w, h := g.Layout(1280, 960)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestGame_SceneTransition(t *testing.T) {
	scene1 := &mockScene{}
	scene2 := &mockScene{}
	scene1.nextScene = scene2

	g := New(scene1, 640, 480, 60)

	assert.NoError(t, g.Update())
	assert.Equal(t, 1, scene1.onExitCalled, "scene1 OnExit called on transition")
	assert.Equal(t, 1, scene2.onEnterCalled, "scene2 OnEnter called on transition")
	assert.Same(t, scene2, g.Current())

	assert.NoError(t, g.Update())
	assert.Equal(t, 1, scene2.updateCalled, "scene2 Update called")
}

func TestGame_NoTransitionWhenNil(t *testing.T) {
	s := &mockScene{}
	g := New(s, 640, 480, 60)

	for i := 0; i < 5; i++ {
		assert.NoError(t, g.Update())
	}

	assert.Equal(t, 5, s.updateCalled)
	assert.Equal(t, 0, s.onExitCalled)
}

func TestGame_UpdateError(t *testing.T) {
	s := &mockScene{updateErr: assert.AnError}
	g := New(s, 640, 480, 60)

	assert.ErrorIs(t, g.Update(), assert.AnError)
}

func TestGame_Shutdown(t *testing.T) {
	s := &mockScene{}
	g := New(s, 640, 480, 60)

	g.Shutdown()

	assert.Equal(t, 1, s.onExitCalled)
}
