package route

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
)

var errRoute = errors.New("route error")

func TestRouteUpsertGetDelete(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	createdAt := time.Now()
	mock.ExpectQuery(`INSERT INTO routes`).
		WithArgs(pgxmock.AnyArg(), "user-1", "Collegiate Loop", "desc", 1000.0, 50.0, `{"type":"FeatureCollection","features":[]}`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow("route-1", createdAt))

	svc := NewService(mock)
	route, err := svc.Upsert(context.Background(), Route{
		UserID:              "user-1",
		Name:                "Collegiate Loop",
		Description:         "desc",
		TotalDistanceM:      1000,
		TotalElevationGainM: 50,
		GeoJSON:             `{"type":"FeatureCollection","features":[]}`,
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if route.ID != "route-1" {
		t.Fatalf("expected returned id, got %s", route.ID)
	}

	mock.ExpectQuery(`SELECT id, user_id, name, description, total_distance_m`).
		WithArgs("route-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "name", "description", "total_distance_m", "total_elevation_gain_m", "geojson", "created_at"}).
			AddRow("route-1", "user-1", "Collegiate Loop", "desc", 1000.0, 50.0, "{}", createdAt))

	loaded, err := svc.Get(context.Background(), "route-1")
	if err != nil || loaded.Name != "Collegiate Loop" {
		t.Fatalf("get: %v", err)
	}

	mock.ExpectExec(`DELETE FROM routes`).WithArgs("route-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	if err := svc.Delete(context.Background(), "route-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRouteList(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, user_id, name, description, total_distance_m`).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "name", "description", "total_distance_m", "total_elevation_gain_m", "geojson", "created_at"}).
			AddRow("route-1", "user-1", "A", "", 1.0, 2.0, "{}", time.Now()).
			AddRow("route-2", "user-1", "B", "", 3.0, 4.0, "{}", time.Now()))

	svc := NewService(mock)
	routes, err := svc.List(context.Background(), "user-1")
	if err != nil || len(routes) != 2 {
		t.Fatalf("list: %v", err)
	}
}

func TestIngestGPX(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO routes`).
		WithArgs(pgxmock.AnyArg(), "user-1", "Morning Ride", "", pgxmock.AnyArg(), 50.0, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow("route-1", time.Now()))

	svc := NewService(mock)
	route, err := svc.IngestGPX(context.Background(), "user-1", "Morning Ride", "", []byte(sampleGPX))
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if route.TotalElevationGainM != 50 {
		t.Fatalf("expected gain on route record: %+v", route)
	}
}

func TestIngestGPXInvalid(t *testing.T) {
	svc := NewService(nil)
	if _, err := svc.IngestGPX(context.Background(), "user-1", "bad", "", []byte("nope")); err == nil {
		t.Fatalf("expected error")
	}
}

func TestRouteGetError(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, user_id, name, description, total_distance_m`).
		WithArgs("missing").
		WillReturnError(errRoute)

	svc := NewService(mock)
	if _, err := svc.Get(context.Background(), "missing"); err == nil {
		t.Fatalf("expected error")
	}
}
