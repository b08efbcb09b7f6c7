package playing

import (
	"math"

	"github.com/younwookim/ringfall/internal/domain/polar"
)

// camera maps disc positions to screen pixels. The view turns with the
// focus angle so the followed actor always stands at the top of the disc,
// with increasing angle to its right.
type camera struct {
	centerX float64
	centerY float64
	zoom    float64
	focus   float64
}

func newCamera(screenW, screenH int, zoom float64) *camera {
	if zoom <= 0 {
		zoom = 1
	}
	return &camera{
		centerX: float64(screenW) / 2,
		centerY: float64(screenH) / 2,
		zoom:    zoom,
	}
}

// follow turns the view toward an angle
func (c *camera) follow(angle float64) {
	c.focus = angle
}

// toScreen returns the screen position of a polar point
func (c *camera) toScreen(angle, radius float64) (float32, float32) {
	rel := polar.AngleDelta(c.focus, angle)
	x, y := polar.ToCartesian(math.Pi/2-rel, radius)
	return float32(c.centerX + x*c.zoom), float32(c.centerY - y*c.zoom)
}

// arcSegments returns how many straight segments approximate an arc on screen
func (c *camera) arcSegments(radius, halfWidth float64) int {
	n := int(2 * halfWidth * radius * c.zoom / 6)
	if n < 4 {
		return 4
	}
	if n > 256 {
		return 256
	}
	return n
}
