package main

import (
	"flag"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/ringfall/internal/application/game"
	"github.com/younwookim/ringfall/internal/application/replay"
	"github.com/younwookim/ringfall/internal/application/scene/playing"
	"github.com/younwookim/ringfall/internal/infrastructure/config"
	"github.com/younwookim/ringfall/internal/infrastructure/telemetry"
)

func main() {
	levelFlag := flag.String("level", "demo", "Level to load from configs/levels")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded replay")
	headlessFlag := flag.Bool("headless", false, "Run the replay without a window and print a summary")
	traceFlag := flag.String("trace", "", "Write every physics step to a CSV file")
	flag.Parse()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys, "configs")
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var data *replay.ReplayData
	levelName := *levelFlag
	if *replayFlag != "" {
		data, err = replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		if data.Level != "" {
			levelName = data.Level
		}
	}

	levelCfg, err := loader.LoadLevel(levelName)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	var traceOut io.Writer
	if *traceFlag != "" {
		f, err := os.Create(*traceFlag)
		if err != nil {
			log.Fatalf("Failed to create trace file: %v", err)
		}
		defer func() { _ = f.Close() }()
		traceOut = f
	}

	if *headlessFlag {
		if data == nil {
			log.Fatalf("-headless needs -replay")
		}
		res, err := runHeadless(cfg, levelCfg, data, traceOut)
		if err != nil {
			log.Fatalf("Headless run failed: %v", err)
		}
		log.Printf("Replayed %d frames of %s (%.0f ms simulated)", res.Frames, levelName, res.Sim.Elapsed())
		log.Printf("Summary:\n%s", res.Collector)
		return
	}

	opts := playing.Options{
		RecordPath: *recordFlag,
		Replay:     data,
	}
	var trace *telemetry.Trace
	if traceOut != nil {
		trace = telemetry.NewTrace(traceOut)
		opts.Observer = trace
	}

	scene, err := playing.New(cfg, levelCfg, opts)
	if err != nil {
		log.Fatalf("Failed to create scene: %v", err)
	}

	display := cfg.Physics.Display
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight, display.Framerate)

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Ringfall - " + levelCfg.Name)
	ebiten.SetTPS(display.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
	g.Shutdown()

	if trace != nil {
		if err := trace.Err(); err != nil {
			log.Printf("Trace incomplete: %v", err)
		} else {
			log.Printf("Trace saved: %s (%d rows)", *traceFlag, trace.Rows())
		}
	}
}
