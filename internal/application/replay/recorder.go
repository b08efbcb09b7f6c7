package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/younwookim/ringfall/internal/application/system"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder for a level
func NewRecorder(level string) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Level:     level,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records a single frame's input and raw delta
func (r *Recorder) RecordFrame(input system.InputState, dt float64) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, FrameInput{
		F:  r.frame,
		DT: dt,
		L:  input.Left,
		R:  input.Right,
		J:  input.Jump,
		JP: input.JumpPressed,
		JR: input.JumpReleased,
	})
	r.frame++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return r.Write(file)
}

// Write encodes the replay data as indented JSON
func (r *Recorder) Write(w io.Writer) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded replay data
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
