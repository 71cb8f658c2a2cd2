package chat

import (
	"context"
	"encoding/json"

	"backend-corsa/internal/db"
	"backend-corsa/internal/stream"

	"github.com/google/uuid"
)

const defaultListLimit = 50

type Service struct {
	db  db.Querier
	hub *stream.Hub
}

func NewService(db db.Querier, hub *stream.Hub) *Service {
	return &Service{db: db, hub: hub}
}

// Publish stores a chat message and fans it out over the stream's live
// channel alongside location updates. Followers tell the payloads apart by
// the "type" field of the envelope.
func (s *Service) Publish(ctx context.Context, input Message) (Message, error) {
	input.ID = uuid.NewString()
	row := s.db.QueryRow(ctx, `
		INSERT INTO chat_messages (id, stream_id, user_id, username, body)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING created_at
	`, input.ID, input.StreamID, input.UserID, input.Username, input.Body)
	if err := row.Scan(&input.CreatedAt); err != nil {
		return Message{}, err
	}

	if s.hub != nil {
		payload, _ := json.Marshal(struct {
			Type string `json:"type"`
			Message
		}{Type: "chat", Message: input})
		s.hub.Broadcast(input.StreamID, payload)
	}
	return input, nil
}

// List returns the most recent messages for a stream, newest first.
func (s *Service) List(ctx context.Context, streamID string, limit int) ([]Message, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	rows, err := s.db.Query(ctx, `
		SELECT id, stream_id, user_id, username, body, created_at
		FROM chat_messages
		WHERE stream_id=$1
		ORDER BY created_at DESC
		LIMIT $2
	`, streamID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.StreamID, &m.UserID, &m.Username, &m.Body, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, nil
}
