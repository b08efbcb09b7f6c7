package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/ringfall/internal/application/state"
	"github.com/younwookim/ringfall/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorFloor    = color.RGBA{120, 120, 150, 255}
	colorCeiling  = color.RGBA{90, 90, 130, 255}
	colorWall     = color.RGBA{80, 80, 100, 255}
	colorMoving   = color.RGBA{110, 160, 200, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorFlash    = color.RGBA{255, 255, 255, 200}
	colorEnemy    = color.RGBA{200, 100, 100, 255}
	colorProbe    = color.RGBA{200, 200, 100, 128}
	colorHealthBG = color.RGBA{60, 60, 60, 255}
	colorHealthFG = color.RGBA{100, 200, 100, 255}
)

const lineWidth = 2

// Draw renders the scene (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	p.drawLevel(screen)
	for _, e := range p.sim.Enemies {
		if !e.IsAlive() {
			continue
		}
		c := colorEnemy
		if e.HitTimer > 0 {
			c = colorFlash
		}
		p.drawWedge(screen, e.Hitbox(), c)
	}
	p.drawPlayer(screen)
	p.drawUI(screen)

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, color.RGBA{0, 0, 0, 128}, p.pauseText())
	case state.StateGameOver:
		p.drawOverlay(screen, color.RGBA{100, 0, 0, 180},
			fmt.Sprintf("GAME OVER\n\nStomps: %d\n\nPress Z to restart", p.stomps))
	}
}

func (p *Playing) drawLevel(screen *ebiten.Image) {
	level := p.sim.Level
	for _, f := range level.Floors {
		p.drawFlat(screen, f, colorFloor)
	}
	for _, f := range level.Ceilings {
		p.drawFlat(screen, f, colorCeiling)
	}
	for _, w := range level.Walls {
		c := colorWall
		if w.Motion != 0 {
			c = colorMoving
		}
		x0, y0 := p.camera.toScreen(w.Angle, w.Bottom)
		x1, y1 := p.camera.toScreen(w.Angle, w.Top)
		vector.StrokeLine(screen, x0, y0, x1, y1, lineWidth, c, true)
	}
}

func (p *Playing) drawFlat(screen *ebiten.Image, f *entity.Flat, c color.Color) {
	if f.Motion != 0 {
		c = colorMoving
	}
	p.drawArc(screen, f.Radius, f.Center, f.HalfWidth, c)
}

// drawArc strokes an arc as a run of straight segments
func (p *Playing) drawArc(screen *ebiten.Image, radius, center, halfWidth float64, c color.Color) {
	n := p.camera.arcSegments(radius, halfWidth)
	start := center - halfWidth
	step := 2 * halfWidth / float64(n)

	x0, y0 := p.camera.toScreen(start, radius)
	for i := 1; i <= n; i++ {
		x1, y1 := p.camera.toScreen(start+step*float64(i), radius)
		vector.StrokeLine(screen, x0, y0, x1, y1, lineWidth, c, true)
		x0, y0 = x1, y1
	}
}

// drawWedge outlines a hitbox: both rings and the two sides joining them
func (p *Playing) drawWedge(screen *ebiten.Image, hb entity.Hitbox, c color.Color) {
	b, t := hb.Bottom, hb.Top
	p.drawArc(screen, b.Radius, b.Angle, b.HalfWidth, c)
	p.drawArc(screen, t.Radius, t.Angle, t.HalfWidth, c)

	for _, side := range []float64{-1, 1} {
		x0, y0 := p.camera.toScreen(b.Angle+side*b.HalfWidth, b.Radius)
		x1, y1 := p.camera.toScreen(t.Angle+side*t.HalfWidth, t.Radius)
		vector.StrokeLine(screen, x0, y0, x1, y1, lineWidth, c, true)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image) {
	player := p.sim.Player

	// Flash while invincible
	c := color.Color(colorPlayer)
	if p.flashTimer > 0 && int(p.flashTimer/100)%2 == 0 {
		c = colorFlash
	}
	p.drawWedge(screen, player.Hitbox(), c)

	// Floor probe ring
	if ebiten.IsKeyPressed(ebiten.KeyTab) {
		probe := player.Hitbox().Probe()
		p.drawArc(screen, probe.Radius, probe.Angle, probe.HalfWidth, colorProbe)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	player := p.sim.Player

	// Health bar
	barX, barY := float32(10), float32(p.screenH-20)
	barW, barH := float32(100), float32(10)
	vector.DrawFilledRect(screen, barX, barY, barW, barH, colorHealthBG, false)

	ratio := float32(player.Health) / float32(max(player.MaxHealth, 1))
	vector.DrawFilledRect(screen, barX, barY, barW*ratio, barH, colorHealthFG, false)

	status := fmt.Sprintf("%s  angle %.2f  radius %.1f  caps %s  frame %d",
		player.Surface.Kind, player.Angle, player.Radius, player.Caps, p.sim.FrameCount())
	ebitenutil.DebugPrintAt(screen, status, 10, p.screenH-38)

	ebitenutil.DebugPrint(screen, "A/D: Move | W/Space: Jump | Tab: Probe | F5: Save replay | ESC: Pause")
}

func (p *Playing) pauseText() string {
	if p.replayDone {
		return fmt.Sprintf("REPLAY FINISHED\n\n%d frames", p.replayer.TotalFrames())
	}
	return "PAUSED\n\nPress ESC to resume"
}

func (p *Playing) drawOverlay(screen *ebiten.Image, c color.Color, text string) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), c, false)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}
