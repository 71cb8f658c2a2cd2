package storage

import (
	"context"
	"strings"
	"time"

	"backend-corsa/internal/db"

	"github.com/google/uuid"
)

const uploadTTL = 15 * time.Minute

type Service struct {
	db      db.Querier
	baseURL string
}

type Upload struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

func NewService(db db.Querier, baseURL string) *Service {
	return &Service{db: db, baseURL: strings.TrimRight(baseURL, "/")}
}

// InitUpload records an object row and hands back a presigned-style URL the
// client uploads to directly.
func (s *Service) InitUpload(ctx context.Context, userID, fileName, kind string) (Upload, error) {
	if fileName == "" {
		fileName = "upload"
	}
	id := uuid.NewString()
	url := s.baseURL + "/" + kind + "/" + id + "/" + fileName

	_, err := s.db.Exec(ctx, `
		INSERT INTO storage_objects (id, user_id, url, kind)
		VALUES ($1,$2,$3,$4)
	`, id, userID, url, kind)
	if err != nil {
		return Upload{}, err
	}
	return Upload{ID: id, URL: url, ExpiresAt: time.Now().Add(uploadTTL)}, nil
}

func (s *Service) Object(ctx context.Context, id string) (string, error) {
	var url string
	err := s.db.QueryRow(ctx, `SELECT url FROM storage_objects WHERE id=$1`, id).Scan(&url)
	return url, err
}
