package strava

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pashagolub/pgxmock/v3"
)

func fakeAuth(userID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		return c.Next()
	}
}

func TestConnectHandler(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	srv := tokenServer(t, http.StatusOK, `{
		"access_token": "at-1",
		"refresh_token": "rt-1",
		"expires_at": 1735689600,
		"athlete": {"id": 42, "username": "trailmix"}
	}`)

	mock.ExpectQuery(`INSERT INTO strava_integrations`).
		WithArgs("user-1", int64(42), "trailmix", "at-1", "rt-1", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"connected_at"}).AddRow(time.Now()))

	app := fiber.New()
	RegisterRoutes(app.Group("/integrations"), NewService(mock, srv.URL, "id", "secret"), fakeAuth("user-1"))

	req := httptest.NewRequest(http.MethodPost, "/integrations/strava", bytes.NewReader([]byte(`{"code":"auth-code"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
}

func TestConnectHandlerRequiresCode(t *testing.T) {
	app := fiber.New()
	RegisterRoutes(app.Group("/integrations"), NewService(nil, "", "", ""), fakeAuth("user-1"))

	req := httptest.NewRequest(http.MethodPost, "/integrations/strava", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
}

func TestDisconnectHandler(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec(`DELETE FROM strava_integrations`).
		WithArgs("user-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	app := fiber.New()
	RegisterRoutes(app.Group("/integrations"), NewService(mock, "", "", ""), fakeAuth("user-1"))

	req := httptest.NewRequest(http.MethodDelete, "/integrations/strava", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
}
