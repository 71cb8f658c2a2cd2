package chat

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend-corsa/internal/stream"

	"github.com/gofiber/fiber/v2"
	"github.com/pashagolub/pgxmock/v3"
)

func fakeAuth(userID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		return c.Next()
	}
}

func newChatApp(t *testing.T) (*fiber.App, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	t.Cleanup(mock.Close)

	app := fiber.New()
	RegisterRoutes(app.Group("/chat"), NewService(mock, stream.NewHub(nil)), fakeAuth("user-1"))
	return app, mock
}

func TestPostMessage(t *testing.T) {
	app, mock := newChatApp(t)

	mock.ExpectQuery(`INSERT INTO chat_messages`).
		WithArgs(pgxmock.AnyArg(), "stream-1", "user-1", "trailmix", "hi").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	body := []byte(`{"username":"trailmix","body":"hi"}`)
	req := httptest.NewRequest(http.MethodPost, "/chat/stream-1/messages", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
}

func TestPostMessageRequiresBody(t *testing.T) {
	app, _ := newChatApp(t)

	req := httptest.NewRequest(http.MethodPost, "/chat/stream-1/messages", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
}

func TestListMessages(t *testing.T) {
	app, mock := newChatApp(t)

	mock.ExpectQuery(`SELECT id, stream_id, user_id, username, body, created_at`).
		WithArgs("stream-1", defaultListLimit).
		WillReturnRows(pgxmock.NewRows([]string{"id", "stream_id", "user_id", "username", "body", "created_at"}).
			AddRow("m1", "stream-1", "user-1", "trailmix", "hi", time.Now()))

	req := httptest.NewRequest(http.MethodGet, "/chat/stream-1/messages", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
}
