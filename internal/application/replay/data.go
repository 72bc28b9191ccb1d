package replay

// Version is written into every new recording.
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F int     `json:"f"`           // Frame number
	H float64 `json:"h,omitempty"` // Horizontal axis
	V float64 `json:"v,omitempty"` // Vertical (depth) axis
	J bool    `json:"j,omitempty"` // Jump pressed this frame
	T bool    `json:"t,omitempty"` // Throw pressed this frame
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Config    string       `json:"config,omitempty"` // actor.yaml in effect when recording started
	Framerate int          `json:"framerate"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
