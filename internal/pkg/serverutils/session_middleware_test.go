package serverutils

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"anon-board-be/internal/repository/memory"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func newSessionApp() (*fiber.App, *memory.SessionRepository) {
	sessions := memory.NewSessionRepository()
	app := fiber.New()
	app.Use(SessionMiddleware(sessions, testSecret))
	app.Get("/whoami", func(ctx *fiber.Ctx) error {
		return ctx.SendString(CurrentOwnerId(ctx))
	})
	return app, sessions
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	return nil
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	return string(body)
}

func TestSessionMintedOnFirstContact(t *testing.T) {
	app, _ := newSessionApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	cookie := sessionCookie(t, resp)
	assert.NotNil(t, cookie, "first contact must set the session cookie")
	assert.True(t, cookie.HttpOnly)

	ownerId := readBody(t, resp)
	assert.Len(t, ownerId, 32, "owner token is 16 bytes of entropy as hex")
}

func TestSessionStableAcrossRequests(t *testing.T) {
	app, _ := newSessionApp()

	first, err := app.Test(httptest.NewRequest("GET", "/whoami", nil), -1)
	assert.NoError(t, err)
	cookie := sessionCookie(t, first)
	ownerId := readBody(t, first)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.AddCookie(cookie)
	second, err := app.Test(req, -1)
	assert.NoError(t, err)

	assert.Equal(t, ownerId, readBody(t, second), "same cookie must map to the same owner token")
	assert.Nil(t, sessionCookie(t, second), "no new cookie while the session is alive")
}

func TestTamperedCookieGetsFreshSession(t *testing.T) {
	app, _ := newSessionApp()

	first, err := app.Test(httptest.NewRequest("GET", "/whoami", nil), -1)
	assert.NoError(t, err)
	ownerId := readBody(t, first)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "not-a-signed-token"})
	second, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, second.StatusCode)

	assert.NotEqual(t, ownerId, readBody(t, second))
	assert.NotNil(t, sessionCookie(t, second), "a tampered cookie is replaced, never trusted")
}

func TestExpiredServerSessionIsReplaced(t *testing.T) {
	app, sessions := newSessionApp()

	first, err := app.Test(httptest.NewRequest("GET", "/whoami", nil), -1)
	assert.NoError(t, err)
	cookie := sessionCookie(t, first)
	ownerId := readBody(t, first)

	// Simulate server-side expiry: the cookie still verifies but the
	// payload is gone.
	sid, ok := parseSessionCookie(cookie.Value, testSecret)
	assert.True(t, ok)
	sessions.Delete(sid)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.AddCookie(cookie)
	second, err := app.Test(req, -1)
	assert.NoError(t, err)

	assert.NotEqual(t, ownerId, readBody(t, second))
}
