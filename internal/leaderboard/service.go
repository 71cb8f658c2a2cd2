package leaderboard

import (
	"context"
	"time"

	"backend-corsa/internal/activity"
	"backend-corsa/internal/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

// Join enrolls a user on a segment leaderboard; joining twice is a no-op.
func (s *Service) Join(ctx context.Context, segmentID, userID string) (Membership, error) {
	member := Membership{SegmentID: segmentID, UserID: userID}
	row := s.db.QueryRow(ctx, `
		INSERT INTO leaderboard_members (segment_id, user_id)
		VALUES ($1,$2)
		ON CONFLICT (segment_id, user_id) DO UPDATE SET user_id=EXCLUDED.user_id
		RETURNING joined_at
	`, segmentID, userID)
	if err := row.Scan(&member.JoinedAt); err != nil {
		return Membership{}, err
	}
	return member, nil
}

func (s *Service) RecordEffort(ctx context.Context, segmentID, userID string, timeSec int64, date time.Time) error {
	if date.IsZero() {
		date = time.Now()
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO segment_efforts (id, segment_id, user_id, elapsed_sec, effort_date)
		VALUES ($1,$2,$3,$4,$5)
	`, uuid.NewString(), segmentID, userID, timeSec, date)
	return err
}

// Activities returns every recorded effort on the segment as raw activity
// rows for the stats folds.
func (s *Service) Activities(ctx context.Context, segmentID string) ([]activity.SegmentActivity, error) {
	rows, err := s.db.Query(ctx, `
		SELECT e.user_id, e.segment_id, e.effort_date, e.elapsed_sec,
		       COALESCE(e.distance_m, 0), COALESCE(e.activity_type, 'Run')
		FROM segment_efforts e
		WHERE e.segment_id = $1
		ORDER BY e.effort_date
	`, segmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanActivities(rows)
}

func scanActivities(rows pgx.Rows) ([]activity.SegmentActivity, error) {
	var activities []activity.SegmentActivity
	for rows.Next() {
		var a activity.SegmentActivity
		if err := rows.Scan(&a.UserID, &a.SegmentID, &a.StartDate, &a.ElapsedTime, &a.Distance, &a.ActivityType); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, nil
}

// AllActivities returns every recorded effort across all segments, for the
// global stats view.
func (s *Service) AllActivities(ctx context.Context) ([]activity.SegmentActivity, error) {
	rows, err := s.db.Query(ctx, `
		SELECT e.user_id, e.segment_id, e.effort_date, e.elapsed_sec,
		       COALESCE(e.distance_m, 0), COALESCE(e.activity_type, 'Run')
		FROM segment_efforts e
		ORDER BY e.effort_date
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanActivities(rows)
}

// Segments lists segment metadata for joining titles onto per-segment counts.
func (s *Service) Segments(ctx context.Context) ([]activity.Segment, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, title FROM segments ORDER BY title
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var segments []activity.Segment
	for rows.Next() {
		var seg activity.Segment
		if err := rows.Scan(&seg.ID, &seg.Title); err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

// Efforts returns each member's best effort on the segment, joined with
// profile fields and attempt counts. Output is unranked; callers run it
// through Rank with their filters.
func (s *Service) Efforts(ctx context.Context, segmentID string) ([]Entry, error) {
	rows, err := s.db.Query(ctx, `
		SELECT e.user_id, u.username, COALESCE(u.avatar_url,''), COALESCE(u.gender,''),
		       MIN(e.elapsed_sec), COUNT(*), MIN(e.effort_date), MAX(e.effort_date)
		FROM segment_efforts e
		JOIN users u ON u.id = e.user_id
		WHERE e.segment_id = $1
		GROUP BY e.user_id, u.username, u.avatar_url, u.gender
	`, segmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.UserID, &e.Username, &e.ProfilePicture, &e.Gender,
			&e.TimeSec, &e.AttemptCount, &e.Date, &e.LastEffort); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
