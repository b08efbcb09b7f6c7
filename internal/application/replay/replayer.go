package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/younwookim/ringfall/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return ReadReplay(file)
}

// ReadReplay decodes replay data from r
func ReadReplay(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("unsupported replay version %q", data.Version)
	}
	return &data, nil
}

// Next returns the input and raw delta for the current frame and advances
func (r *Replayer) Next() (system.InputState, float64, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, 0, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return system.InputState{
		Left:         fi.L,
		Right:        fi.R,
		Jump:         fi.J,
		JumpPressed:  fi.JP,
		JumpReleased: fi.JR,
	}, fi.DT, true
}

// Done reports whether every frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Level returns the level the replay was recorded on
func (r *Replayer) Level() string {
	return r.data.Level
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// Run feeds every recorded frame into sim and returns the number of frames played
func (r *Replayer) Run(sim *system.Simulation) int {
	played := 0
	for {
		input, dt, ok := r.Next()
		if !ok {
			return played
		}
		sim.Frame(dt, input)
		played++
	}
}
