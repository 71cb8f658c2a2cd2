package activity

import "time"

// Waypoint is a single time-stamped geo sample from a tracking device.
// MileMarker and CumulativeVert are nil when the device did not report them.
type Waypoint struct {
	Lat            float64   `json:"lat"`
	Lng            float64   `json:"lng"`
	Timestamp      time.Time `json:"timestamp"`
	Altitude       *float64  `json:"altitude,omitempty"`
	MileMarker     *float64  `json:"mileMarker,omitempty"`
	CumulativeVert *float64  `json:"cumulativeVert,omitempty"`
}

// DailyData holds waypoints grouped by [day][hour]. Every day slot has exactly
// 24 hour slots; an hour with no samples is an empty slice.
type DailyData [][][]Waypoint

// SegmentActivity is one completed effort on a segment.
type SegmentActivity struct {
	UserID             string    `json:"user_id"`
	SegmentID          string    `json:"segment_id"`
	StartDate          time.Time `json:"start_date"`
	StartDateLocal     time.Time `json:"start_date_local,omitempty"`
	Distance           float64   `json:"distance"`
	ElapsedTime        int64     `json:"elapsed_time"`
	MovingTime         int64     `json:"moving_time"`
	SegmentCompletions *int      `json:"segment_completions,omitempty"`
	ActivityType       string    `json:"activity_type"`
}

// UserStats is the per-user fold of a list of segment activities.
// FastestTime is nil until a positive elapsed time has been seen.
type UserStats struct {
	UserID        string   `json:"user_id"`
	Completions   int      `json:"completions"`
	TotalTime     int64    `json:"total_time"`
	AverageTime   float64  `json:"average_time"`
	FastestTime   *int64   `json:"fastest_time,omitempty"`
	ActivityTypes []string `json:"activity_types"`
}

// Segment carries the metadata needed to resolve titles in per-segment stats.
type Segment struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type SegmentStats struct {
	SegmentID string `json:"segment_id"`
	Title     string `json:"title"`
	Count     int    `json:"count"`
}

type ActivityTypeStats struct {
	ActivityType string  `json:"activity_type"`
	Count        int     `json:"count"`
	Percentage   float64 `json:"percentage"`
}
