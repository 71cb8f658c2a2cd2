package stream

import "time"

// Stream is one live location feed, owned by a user and fed by a device.
type Stream struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	DeviceID  string    `json:"device_id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at,omitempty"`
}

type LocationPoint struct {
	ID             int64     `json:"id"`
	StreamID       string    `json:"stream_id"`
	Lat            float64   `json:"lat"`
	Lng            float64   `json:"lng"`
	AltitudeM      float64   `json:"altitude_m"`
	MileMarker     float64   `json:"mile_marker"`
	CumulativeVert float64   `json:"cumulative_vert"`
	RecordedAt     time.Time `json:"recorded_at"`
}
