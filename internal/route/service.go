package route

import (
	"context"

	"backend-corsa/internal/db"

	"github.com/google/uuid"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

// Upsert creates a route or replaces the caller's existing route of the same
// name, mirroring the upsertRoute behavior devices rely on when re-uploading.
func (s *Service) Upsert(ctx context.Context, input Route) (Route, error) {
	if input.ID == "" {
		input.ID = uuid.NewString()
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO routes (id, user_id, name, description, total_distance_m, total_elevation_gain_m, geojson)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (user_id, name) DO UPDATE
		SET description=EXCLUDED.description,
		    total_distance_m=EXCLUDED.total_distance_m,
		    total_elevation_gain_m=EXCLUDED.total_elevation_gain_m,
		    geojson=EXCLUDED.geojson
		RETURNING id, created_at
	`, input.ID, input.UserID, input.Name, input.Description,
		input.TotalDistanceM, input.TotalElevationGainM, input.GeoJSON)
	if err := row.Scan(&input.ID, &input.CreatedAt); err != nil {
		return Route{}, err
	}
	return input, nil
}

func (s *Service) Get(ctx context.Context, id string) (Route, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, name, description, total_distance_m, total_elevation_gain_m, geojson, created_at
		FROM routes WHERE id=$1
	`, id)
	var r Route
	if err := row.Scan(&r.ID, &r.UserID, &r.Name, &r.Description,
		&r.TotalDistanceM, &r.TotalElevationGainM, &r.GeoJSON, &r.CreatedAt); err != nil {
		return Route{}, err
	}
	return r, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]Route, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, name, description, total_distance_m, total_elevation_gain_m, geojson, created_at
		FROM routes WHERE user_id=$1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var routes []Route
	for rows.Next() {
		var r Route
		if err := rows.Scan(&r.ID, &r.UserID, &r.Name, &r.Description,
			&r.TotalDistanceM, &r.TotalElevationGainM, &r.GeoJSON, &r.CreatedAt); err != nil {
			return nil, err
		}
		routes = append(routes, r)
	}
	return routes, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM routes WHERE id=$1`, id)
	return err
}

// IngestGPX parses GPX bytes and stores the derived route for the user.
func (s *Service) IngestGPX(ctx context.Context, userID, name, description string, gpxData []byte) (Route, error) {
	summary, err := ParseGPX(gpxData)
	if err != nil {
		return Route{}, err
	}
	geojson, err := summary.GeoJSON()
	if err != nil {
		return Route{}, err
	}
	return s.Upsert(ctx, Route{
		UserID:              userID,
		Name:                name,
		Description:         description,
		TotalDistanceM:      summary.TotalDistanceM,
		TotalElevationGainM: summary.TotalElevationGainM,
		GeoJSON:             geojson,
	})
}
