package domain

import (
	"time"

	"github.com/google/uuid"
)

// DisplayTimeLayout is the capture-time format shown in the history list:
// locale-ish date plus hour:minute. Assigned once at capture, never recomputed.
const DisplayTimeLayout = "1/2/2006, 15:04"

// Fix is a single raw coordinate reading from a location provider.
type Fix struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	CapturedAt time.Time `json:"captured_at"`
}

// LocationRecord is one resolved position observation. Records are immutable:
// history only ever adds or removes whole records.
type LocationRecord struct {
	ID         uuid.UUID `json:"id"`
	Address    string    `json:"address,omitempty"`
	Resolved   bool      `json:"resolved"`
	Timestamp  string    `json:"timestamp"`
	CapturedAt time.Time `json:"captured_at"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
}

// Snapshot is the read-only current/previous partition of the history,
// recomputed on every read.
type Snapshot struct {
	Current  *LocationRecord  `json:"current,omitempty"`
	Previous []LocationRecord `json:"previous"`
}
