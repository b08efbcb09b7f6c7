package telemetry

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/younwookim/ringfall/internal/domain/entity"
)

// ActorSummary aggregates every step of one actor
type ActorSummary struct {
	Actor       string
	Steps       int
	MeanSpeed   float64 // mean |angular velocity|
	SpeedStdDev float64
	P90Speed    float64
	MinRadius   float64
	MaxRadius   float64
	FloorSteps  int
	WallHits    int
	CeilingHits int
}

// Airtime returns the fraction of steps without floor contact
func (a ActorSummary) Airtime() float64 {
	if a.Steps == 0 {
		return 0
	}
	return 1 - float64(a.FloorSteps)/float64(a.Steps)
}

type actorSamples struct {
	speeds  []float64
	radii   []float64
	floor   int
	wall    int
	ceiling int
}

// Collector gathers per-actor samples for a run summary
type Collector struct {
	actors map[string]*actorSamples
}

// NewCollector creates an empty collector
func NewCollector() *Collector {
	return &Collector{actors: make(map[string]*actorSamples)}
}

// ObserveStep records one step's sample
func (c *Collector) ObserveStep(_ int, actor string, body *entity.Body, contact entity.Contact) {
	s, ok := c.actors[actor]
	if !ok {
		s = &actorSamples{}
		c.actors[actor] = s
	}

	s.speeds = append(s.speeds, math.Abs(body.Angular))
	s.radii = append(s.radii, body.Radius)
	if contact.Floor != nil {
		s.floor++
	}
	if contact.Wall != nil {
		s.wall++
	}
	if contact.Ceiling != nil {
		s.ceiling++
	}
}

// Summary returns one entry per actor, ordered by actor name
func (c *Collector) Summary() []ActorSummary {
	names := make([]string, 0, len(c.actors))
	for name := range c.actors {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]ActorSummary, 0, len(names))
	for _, name := range names {
		s := c.actors[name]

		sorted := append([]float64(nil), s.speeds...)
		sort.Float64s(sorted)

		sum := ActorSummary{
			Actor:       name,
			Steps:       len(s.speeds),
			MeanSpeed:   stat.Mean(s.speeds, nil),
			P90Speed:    stat.Quantile(0.9, stat.Empirical, sorted, nil),
			MinRadius:   math.Inf(1),
			MaxRadius:   math.Inf(-1),
			FloorSteps:  s.floor,
			WallHits:    s.wall,
			CeilingHits: s.ceiling,
		}
		if len(s.speeds) > 1 {
			sum.SpeedStdDev = stat.StdDev(s.speeds, nil)
		}
		for _, r := range s.radii {
			sum.MinRadius = math.Min(sum.MinRadius, r)
			sum.MaxRadius = math.Max(sum.MaxRadius, r)
		}
		out = append(out, sum)
	}
	return out
}

// String formats the summary as one line per actor
func (c *Collector) String() string {
	var b strings.Builder
	for _, s := range c.Summary() {
		fmt.Fprintf(&b, "%-12s steps=%d speed=%.3f±%.3f p90=%.3f radius=[%.1f, %.1f] air=%.0f%% walls=%d ceilings=%d\n",
			s.Actor, s.Steps, s.MeanSpeed, s.SpeedStdDev, s.P90Speed,
			s.MinRadius, s.MaxRadius, s.Airtime()*100, s.WallHits, s.CeilingHits)
	}
	return b.String()
}

// Observer is anything that wants to see physics steps
type Observer interface {
	ObserveStep(frame int, actor string, body *entity.Body, contact entity.Contact)
}

// Multi fans a step out to several observers in order
type Multi []Observer

// ObserveStep forwards the step to every observer
func (m Multi) ObserveStep(frame int, actor string, body *entity.Body, contact entity.Contact) {
	for _, o := range m {
		o.ObserveStep(frame, actor, body, contact)
	}
}
