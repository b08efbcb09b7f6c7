package telemetry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/ringfall/internal/domain/entity"
)

func TestCollector_Summary(t *testing.T) {
	c := NewCollector()
	floor := entity.NewRing(150, 0)
	wall := entity.NewWall(1, 150, 200, -1, 0)

	for i := 1; i <= 10; i++ {
		contact := entity.Contact{}
		if i <= 6 {
			contact.Floor = floor
		}
		if i == 3 {
			contact.Wall = wall
		}
		// Alternate the sign; the summary uses speed, not velocity
		angular := float64(i)
		if i%2 == 0 {
			angular = -angular
		}
		c.ObserveStep(i, "player", createTestBody(1, 150+float64(i), angular), contact)
	}
	c.ObserveStep(0, "krillna#1", createTestBody(2, 240, 2), entity.Contact{Floor: floor})

	summary := c.Summary()
	require.Len(t, summary, 2)

	assert.Equal(t, "krillna#1", summary[0].Actor)
	assert.Equal(t, 1, summary[0].Steps)
	assert.Equal(t, 2.0, summary[0].MeanSpeed)
	assert.Equal(t, 0.0, summary[0].SpeedStdDev)
	assert.Equal(t, 0.0, summary[0].Airtime())

	p := summary[1]
	assert.Equal(t, "player", p.Actor)
	assert.Equal(t, 10, p.Steps)
	assert.InDelta(t, 5.5, p.MeanSpeed, 1e-12)
	assert.InDelta(t, math.Sqrt(82.5/9), p.SpeedStdDev, 1e-12)
	assert.Equal(t, 9.0, p.P90Speed)
	assert.Equal(t, 151.0, p.MinRadius)
	assert.Equal(t, 160.0, p.MaxRadius)
	assert.Equal(t, 6, p.FloorSteps)
	assert.Equal(t, 1, p.WallHits)
	assert.Equal(t, 0, p.CeilingHits)
	assert.InDelta(t, 0.4, p.Airtime(), 1e-12)
}

func TestCollector_String(t *testing.T) {
	c := NewCollector()
	c.ObserveStep(0, "player", createTestBody(1, 150, 1), entity.Contact{})

	out := c.String()

	assert.Contains(t, out, "player")
	assert.Contains(t, out, "steps=1")
	assert.Contains(t, out, "air=100%")
}

func TestCollector_Empty(t *testing.T) {
	c := NewCollector()

	assert.Empty(t, c.Summary())
	assert.Equal(t, "", c.String())
	assert.Equal(t, 0.0, ActorSummary{}.Airtime())
}

func TestMulti_FansOut(t *testing.T) {
	a, b := NewCollector(), NewCollector()
	m := Multi{a, b}

	m.ObserveStep(0, "player", createTestBody(1, 150, 1), entity.Contact{})

	assert.Len(t, a.Summary(), 1)
	assert.Len(t, b.Summary(), 1)
}
