package strava

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"backend-corsa/internal/db"
)

const exchangeTimeout = 10 * time.Second

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
	Athlete      struct {
		ID       int64  `json:"id"`
		Username string `json:"username"`
	} `json:"athlete"`
}

type Integration struct {
	UserID      string    `json:"user_id"`
	AthleteID   int64     `json:"athlete_id"`
	Username    string    `json:"username"`
	ExpiresAt   time.Time `json:"expires_at"`
	ConnectedAt time.Time `json:"connected_at"`
}

type Service struct {
	db           db.Querier
	client       *http.Client
	tokenURL     string
	clientID     string
	clientSecret string
}

func NewService(db db.Querier, tokenURL, clientID, clientSecret string) *Service {
	return &Service{
		db:           db,
		client:       &http.Client{Timeout: exchangeTimeout},
		tokenURL:     tokenURL,
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

// Exchange trades an OAuth authorization code for tokens and records the
// linked athlete. Tokens never leave the server.
func (s *Service) Exchange(ctx context.Context, userID, code string) (Integration, error) {
	form := url.Values{}
	form.Set("client_id", s.clientID)
	form.Set("client_secret", s.clientSecret)
	form.Set("code", code)
	form.Set("grant_type", "authorization_code")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return Integration{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return Integration{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Integration{}, fmt.Errorf("token exchange failed: status %d", resp.StatusCode)
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return Integration{}, err
	}

	integration := Integration{
		UserID:    userID,
		AthleteID: token.Athlete.ID,
		Username:  token.Athlete.Username,
		ExpiresAt: time.Unix(token.ExpiresAt, 0),
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO strava_integrations (user_id, athlete_id, username, access_token, refresh_token, expires_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (user_id) DO UPDATE
		SET athlete_id=EXCLUDED.athlete_id, username=EXCLUDED.username,
		    access_token=EXCLUDED.access_token, refresh_token=EXCLUDED.refresh_token,
		    expires_at=EXCLUDED.expires_at
		RETURNING connected_at
	`, integration.UserID, integration.AthleteID, integration.Username,
		token.AccessToken, token.RefreshToken, integration.ExpiresAt)
	if err := row.Scan(&integration.ConnectedAt); err != nil {
		return Integration{}, err
	}
	return integration, nil
}

func (s *Service) Disconnect(ctx context.Context, userID string) error {
	_, err := s.db.Exec(ctx, `
		DELETE FROM strava_integrations WHERE user_id=$1
	`, userID)
	return err
}
