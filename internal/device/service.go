package device

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

// Upsert registers a device or, when the IMEI is already known, reassigns it
// with the new name and owner.
func (s *Service) Upsert(ctx context.Context, input Device) (Device, error) {
	if input.ID == "" {
		input.ID = uuid.NewString()
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO devices (id, user_id, imei, name, model)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (imei) DO UPDATE
		SET user_id=EXCLUDED.user_id, name=EXCLUDED.name, model=EXCLUDED.model
		RETURNING id, created_at
	`, input.ID, input.UserID, input.IMEI, input.Name, input.Model)
	if err := row.Scan(&input.ID, &input.CreatedAt); err != nil {
		return Device{}, err
	}
	return input, nil
}

func (s *Service) Get(ctx context.Context, id string) (Device, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, imei, name, model, created_at
		FROM devices WHERE id=$1
	`, id)
	var d Device
	if err := row.Scan(&d.ID, &d.UserID, &d.IMEI, &d.Name, &d.Model, &d.CreatedAt); err != nil {
		return Device{}, err
	}
	return d, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]Device, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, imei, name, model, created_at
		FROM devices WHERE user_id=$1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var devices []Device
	for rows.Next() {
		var d Device
		if err := rows.Scan(&d.ID, &d.UserID, &d.IMEI, &d.Name, &d.Model, &d.CreatedAt); err != nil {
			return nil, err
		}
		devices = append(devices, d)
	}
	return devices, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM devices WHERE id=$1`, id)
	return err
}
