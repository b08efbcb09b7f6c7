package telemetry

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/younwookim/ringfall/internal/domain/entity"
)

// StepRecord is one row of trace.csv: an actor's state right after a physics step.
type StepRecord struct {
	Frame      int     `csv:"frame"`
	Actor      string  `csv:"actor"`
	Angle      float64 `csv:"angle"`
	Radius     float64 `csv:"radius"`
	Angular    float64 `csv:"angular"`
	Radial     float64 `csv:"radial"`
	FloorDrift float64 `csv:"floor_drift"`
	Floor      bool    `csv:"floor"`
	Ceiling    bool    `csv:"ceiling"`
	Wall       bool    `csv:"wall"`
}

// NewStepRecord captures a body and its contact
func NewStepRecord(frame int, actor string, body *entity.Body, contact entity.Contact) StepRecord {
	return StepRecord{
		Frame:      frame,
		Actor:      actor,
		Angle:      body.Angle,
		Radius:     body.Radius,
		Angular:    body.Angular,
		Radial:     body.Radial,
		FloorDrift: body.FloorDrift,
		Floor:      contact.Floor != nil,
		Ceiling:    contact.Ceiling != nil,
		Wall:       contact.Wall != nil,
	}
}

// Trace writes one CSV row per observed step.
// Write errors are kept and reported by Err; rows after the first error are dropped.
type Trace struct {
	w             io.Writer
	headerWritten bool
	rows          int
	err           error
}

// NewTrace creates a trace writing to w
func NewTrace(w io.Writer) *Trace {
	return &Trace{w: w}
}

// ObserveStep writes a row for the step
func (t *Trace) ObserveStep(frame int, actor string, body *entity.Body, contact entity.Contact) {
	if t.err != nil {
		return
	}
	t.err = t.Write(NewStepRecord(frame, actor, body, contact))
}

// Write appends a record, emitting the header before the first one
func (t *Trace) Write(rec StepRecord) error {
	records := []StepRecord{rec}

	if !t.headerWritten {
		if err := gocsv.Marshal(records, t.w); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
		t.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, t.w); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
	}

	t.rows++
	return nil
}

// Rows returns the number of rows written
func (t *Trace) Rows() int {
	return t.rows
}

// Err returns the first write error, if any
func (t *Trace) Err() error {
	return t.err
}

// ReadTrace parses a trace written by Trace
func ReadTrace(r io.Reader) ([]StepRecord, error) {
	var records []StepRecord
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, fmt.Errorf("reading trace: %w", err)
	}
	return records, nil
}
