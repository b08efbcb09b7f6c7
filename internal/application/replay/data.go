package replay

// FrameInput records input state and the raw delta for a single frame
type FrameInput struct {
	F  int     `json:"f"`            // Frame number
	DT float64 `json:"dt"`           // Raw frame delta, ms
	L  bool    `json:"l,omitempty"`  // Left
	R  bool    `json:"r,omitempty"`  // Right
	J  bool    `json:"j,omitempty"`  // Jump
	JP bool    `json:"jp,omitempty"` // JumpPressed
	JR bool    `json:"jr,omitempty"` // JumpReleased
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Level     string       `json:"level"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// Version is written into every new recording
const Version = "1.0"
