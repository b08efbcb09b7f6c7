package main

import (
	"fmt"
	"io"

	"github.com/younwookim/ringfall/internal/application/replay"
	"github.com/younwookim/ringfall/internal/application/system"
	"github.com/younwookim/ringfall/internal/infrastructure/config"
	"github.com/younwookim/ringfall/internal/infrastructure/telemetry"
)

// headlessResult is what a headless replay run produced
type headlessResult struct {
	Frames    int
	Sim       *system.Simulation
	Collector *telemetry.Collector
}

// runHeadless plays a recording without a window. If trace is not nil every
// step is written to it as CSV.
func runHeadless(cfg *config.GameConfig, levelCfg *config.LevelConfig, data *replay.ReplayData, trace io.Writer) (*headlessResult, error) {
	sim, err := system.NewSimulation(cfg, system.LoadLevel(levelCfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create simulation: %w", err)
	}

	collector := telemetry.NewCollector()
	observers := telemetry.Multi{collector}

	var tw *telemetry.Trace
	if trace != nil {
		tw = telemetry.NewTrace(trace)
		observers = append(observers, tw)
	}
	sim.Observer = observers

	frames := replay.NewReplayer(*data).Run(sim)

	if tw != nil && tw.Err() != nil {
		return nil, tw.Err()
	}

	return &headlessResult{
		Frames:    frames,
		Sim:       sim,
		Collector: collector,
	}, nil
}
