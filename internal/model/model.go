// Package model holds the types shared between the backend client, the
// collector, and the UI.
package model

import "time"

// StarPos is the pixel position of the tracked star on the camera frame.
type StarPos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// CameraStatus reports whether the backend's live stream is running.
type CameraStatus struct {
	Running bool `json:"running"`
}

// FWHMData is the payload of one focus-data poll: the newest
// measurement, the full history for the current run, and the tracked
// star context.
type FWHMData struct {
	Current     float64
	Tracking    bool // false when no star is selected
	History     []float64
	Star        *StarPos
	FrameWidth  int
	FrameHeight int
}

// ConfigOption is one camera setting with its allowed choices, as
// listed by the backend (ISO, shutter speed, ...).
type ConfigOption struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Current string   `json:"current"`
	Choices []string `json:"choices"`
}

// DriftPoint is the star's displacement in frame pixels from the
// position it had when tracking started.
type DriftPoint struct {
	DX float64
	DY float64
}

// Snapshot is one poll cycle's view of the backend, delivered to the UI
// over the collector's channel.
type Snapshot struct {
	Time     time.Time
	Running  bool
	Tracking bool
	Star     StarPos

	Current  float64 // newest FWHM measurement, raw
	Smoothed float64 // EMA-smoothed newest measurement
	History  []float64
	Drift    []DriftPoint

	FrameWidth  int
	FrameHeight int

	// Latency is the round trip of this poll; Latencies holds the
	// recent round trips in milliseconds, oldest first, for the footer
	// sparkline.
	Latency   time.Duration
	Latencies []float64

	// Err is set when the backend was unreachable this cycle. The UI
	// shows offline state; there is no retry strategy beyond the next
	// tick.
	Err string
}
