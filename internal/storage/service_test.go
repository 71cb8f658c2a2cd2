package storage

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
)

var errStore = errors.New("store error")

func TestInitUpload(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO storage_objects`).
		WithArgs(pgxmock.AnyArg(), "user-1", pgxmock.AnyArg(), "gpx").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	svc := NewService(mock, "https://storage.corsa.run/")
	upload, err := svc.InitUpload(context.Background(), "user-1", "ride.gpx", "gpx")
	if err != nil {
		t.Fatalf("init upload: %v", err)
	}
	if upload.ID == "" || upload.ExpiresAt.IsZero() {
		t.Fatalf("expected id and expiry: %+v", upload)
	}
	if !strings.HasPrefix(upload.URL, "https://storage.corsa.run/gpx/") ||
		!strings.HasSuffix(upload.URL, "/ride.gpx") {
		t.Fatalf("unexpected url: %s", upload.URL)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInitUploadDefaultsFileName(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO storage_objects`).
		WithArgs(pgxmock.AnyArg(), "user-1", pgxmock.AnyArg(), "gpx").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	svc := NewService(mock, "https://storage.corsa.run")
	upload, err := svc.InitUpload(context.Background(), "user-1", "", "gpx")
	if err != nil {
		t.Fatalf("init upload: %v", err)
	}
	if !strings.HasSuffix(upload.URL, "/upload") {
		t.Fatalf("expected default file name, got %s", upload.URL)
	}
}

func TestInitUploadError(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO storage_objects`).
		WithArgs(pgxmock.AnyArg(), "user-1", pgxmock.AnyArg(), "gpx").
		WillReturnError(errStore)

	svc := NewService(mock, "https://storage.corsa.run")
	if _, err := svc.InitUpload(context.Background(), "user-1", "ride.gpx", "gpx"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestObject(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT url FROM storage_objects`).
		WithArgs("obj-1").
		WillReturnRows(pgxmock.NewRows([]string{"url"}).AddRow("https://storage.corsa.run/gpx/obj-1/ride.gpx"))

	svc := NewService(mock, "https://storage.corsa.run")
	url, err := svc.Object(context.Background(), "obj-1")
	if err != nil || url == "" {
		t.Fatalf("object: %v", err)
	}
}
