// Package replay records and plays back per-tick key snapshots. Only
// inputs and the RNG seed are stored, never world state.
package replay

import "github.com/younwookim/tilequest/internal/domain/entity"

// FormatVersion is written into every recording
const FormatVersion = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	U bool `json:"u,omitempty"` // Up
	D bool `json:"d,omitempty"` // Down
}

// Keys converts the frame back into a key snapshot
func (fi FrameInput) Keys() entity.KeyState {
	return entity.KeyState{Left: fi.L, Right: fi.R, Up: fi.U, Down: fi.D}
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Level     string       `json:"level"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
