package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"sigtransportes/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())

	var seen string
	app.Get("/", func(c *fiber.Ctx) error {
		seen, _ = c.Locals(RequestIDLocalKey).(string)
		return c.SendStatus(fiber.StatusOK)
	})

	t.Run("generates an id when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, resp.Header.Get(RequestIDHeader))
	})

	t.Run("propagates an incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", resp.Header.Get(RequestIDHeader))
	})
}

func TestRequireSession(t *testing.T) {
	store := session.NewStore()

	app := fiber.New()
	app.Post("/entrar", func(c *fiber.Ctx) error {
		return store.Create(c, "admin", "Admin")
	})
	app.Use(RequireSession(store))
	app.Get("/", func(c *fiber.Ctx) error {
		sess, ok := SessionFromCtx(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendString(sess.Username)
	})

	t.Run("no cookie redirects to login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/login", resp.Header.Get("Location"))
	})

	t.Run("stale cookie redirects to login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "gone"})
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	})

	t.Run("live session passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/entrar", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		var cookie *http.Cookie
		for _, ck := range resp.Cookies() {
			if ck.Name == session.CookieName {
				cookie = ck
			}
		}
		require.NotNil(t, cookie)

		req = httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(cookie)
		resp, err = app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
