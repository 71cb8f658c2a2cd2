package leaderboard

import "time"

// Entry is one user's standing on a segment leaderboard. Rank is always
// recomputed by Rank; incoming values are ignored.
type Entry struct {
	Rank           int       `json:"rank"`
	UserID         string    `json:"user_id"`
	Username       string    `json:"username"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	TimeSec        int64     `json:"time"`
	Date           time.Time `json:"date"`
	Gender         string    `json:"gender,omitempty"`
	AttemptCount   int       `json:"attempt_count,omitempty"`
	LastEffort     time.Time `json:"last_effort,omitempty"`
}

// Board is the presentation form of a ranked leaderboard: the top ten entries
// plus, when the viewer sits below them, the viewer's own row shown after an
// ellipsis separator.
type Board struct {
	Entries  []Entry `json:"entries"`
	Ellipsis bool    `json:"ellipsis"`
	Viewer   *Entry  `json:"viewer,omitempty"`
}

type Membership struct {
	SegmentID string    `json:"segment_id"`
	UserID    string    `json:"user_id"`
	JoinedAt  time.Time `json:"joined_at"`
}
