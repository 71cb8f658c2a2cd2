package stream

import (
	"context"
	"encoding/json"
	"time"

	"backend-corsa/internal/activity"
	"backend-corsa/internal/db"
	"backend-corsa/internal/shared/geo"

	"github.com/google/uuid"
)

type Service struct {
	db  db.Querier
	hub *Hub
}

func NewService(db db.Querier, hub *Hub) *Service {
	return &Service{db: db, hub: hub}
}

func (s *Service) Start(ctx context.Context, input Stream) (Stream, error) {
	input.ID = uuid.NewString()
	if input.StartedAt.IsZero() {
		input.StartedAt = time.Now()
	}
	if input.Status == "" {
		input.Status = "active"
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO streams (id, user_id, device_id, title, status, started_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING started_at, status
	`, input.ID, input.UserID, input.DeviceID, input.Title, input.Status, input.StartedAt)
	if err := row.Scan(&input.StartedAt, &input.Status); err != nil {
		return Stream{}, err
	}
	return input, nil
}

// Publish persists a location point and fans it out to live followers. The
// point's mile marker is derived server-side from the previous point.
func (s *Service) Publish(ctx context.Context, streamID string, input LocationPoint) (LocationPoint, error) {
	if input.RecordedAt.IsZero() {
		input.RecordedAt = time.Now()
	}

	var lastLat, lastLng, lastMile, lastVert, lastAlt float64
	_ = s.db.QueryRow(ctx, `
		SELECT lat, lng, mile_marker, cumulative_vert, altitude_m
		FROM stream_points
		WHERE stream_id=$1
		ORDER BY recorded_at DESC
		LIMIT 1
	`, streamID).Scan(&lastLat, &lastLng, &lastMile, &lastVert, &lastAlt)

	if lastLat != 0 || lastLng != 0 {
		deltaMiles := geo.HaversineKm(lastLat, lastLng, input.Lat, input.Lng) * 0.621371
		input.MileMarker = lastMile + deltaMiles
		input.CumulativeVert = lastVert
		if input.AltitudeM > lastAlt {
			input.CumulativeVert += input.AltitudeM - lastAlt
		}
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO stream_points (stream_id, lat, lng, altitude_m, mile_marker, cumulative_vert, recorded_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`, streamID, input.Lat, input.Lng, input.AltitudeM, input.MileMarker, input.CumulativeVert, input.RecordedAt)
	if err := row.Scan(&input.ID); err != nil {
		return LocationPoint{}, err
	}
	input.StreamID = streamID

	if s.hub != nil {
		payload, _ := json.Marshal(input)
		s.hub.Broadcast(streamID, payload)
	}
	return input, nil
}

func (s *Service) End(ctx context.Context, streamID string) error {
	_, err := s.db.Exec(ctx, `
		UPDATE streams SET status='ended', ended_at=NOW() WHERE id=$1
	`, streamID)
	return err
}

// ByEntity lists streams owned by a user or fed by a device.
func (s *Service) ByEntity(ctx context.Context, entityID string) ([]Stream, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, device_id, title, status, started_at, COALESCE(ended_at, 'epoch'::timestamptz)
		FROM streams
		WHERE user_id=$1 OR device_id=$1
		ORDER BY started_at DESC
	`, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var streams []Stream
	for rows.Next() {
		var st Stream
		if err := rows.Scan(&st.ID, &st.UserID, &st.DeviceID, &st.Title, &st.Status, &st.StartedAt, &st.EndedAt); err != nil {
			return nil, err
		}
		streams = append(streams, st)
	}
	return streams, nil
}

// DailySummary is the day/hour breakdown of a stream: the bucketed waypoints,
// miles covered per hour, and a heat color per hour cell.
type DailySummary struct {
	Days        activity.DailyData `json:"days"`
	MilesByHour [][]float64        `json:"miles_by_hour"`
	HeatColors  [][]string         `json:"heat_colors"`
}

// Daily buckets a stream's points by local day and hour-of-day.
func (s *Service) Daily(ctx context.Context, streamID, timezone string) (DailySummary, error) {
	points, err := s.Points(ctx, streamID)
	if err != nil {
		return DailySummary{}, err
	}

	waypoints := make([]activity.Waypoint, len(points))
	for i, p := range points {
		alt, mile, vert := p.AltitudeM, p.MileMarker, p.CumulativeVert
		waypoints[i] = activity.Waypoint{
			Lat:            p.Lat,
			Lng:            p.Lng,
			Timestamp:      p.RecordedAt,
			Altitude:       &alt,
			MileMarker:     &mile,
			CumulativeVert: &vert,
		}
	}

	days, err := activity.PointsPerDay(waypoints, timezone)
	if err != nil {
		return DailySummary{}, err
	}

	miles := activity.MilesByHour(days)
	colors := make([][]string, len(miles))
	for d, hours := range miles {
		colors[d] = make([]string, len(hours))
		for h, mi := range hours {
			colors[d][h] = activity.HeatColor(mi, activity.DefaultHeatMax)
		}
	}
	return DailySummary{Days: days, MilesByHour: miles, HeatColors: colors}, nil
}

func (s *Service) Points(ctx context.Context, streamID string) ([]LocationPoint, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, stream_id, lat, lng, altitude_m, mile_marker, cumulative_vert, recorded_at
		FROM stream_points WHERE stream_id=$1
		ORDER BY recorded_at
	`, streamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []LocationPoint
	for rows.Next() {
		var p LocationPoint
		if err := rows.Scan(&p.ID, &p.StreamID, &p.Lat, &p.Lng, &p.AltitudeM, &p.MileMarker, &p.CumulativeVert, &p.RecordedAt); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}
