// Package session holds per-user transient state between requests, backed
// by Fiber's session middleware with its default in-memory storage. State
// never touches the database; restarting the server logs everyone out.
package session

import (
	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
)

// CookieName is the cookie carrying the session identifier.
const CookieName = "sig_session"

const (
	keyUsername = "username"
	keyRole     = "rol"
)

// Session is the per-user state: set on login, destroyed on logout.
// It must never leak between concurrent sessions.
type Session struct {
	Username string
	Role     string
}

// Store wraps the Fiber session store with the two operations the
// application needs. Destroying a session invalidates it server-side
// immediately; the old cookie stops authenticating.
type Store struct {
	sessions *fibersession.Store
}

// NewStore creates a session store with in-memory storage.
func NewStore() *Store {
	return &Store{sessions: fibersession.New(fibersession.Config{
		KeyLookup:      "cookie:" + CookieName,
		KeyGenerator:   uuid.NewString,
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
	})}
}

// Create starts a session for the current request and sets its cookie on
// the response.
func (s *Store) Create(c *fiber.Ctx, username, role string) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return err
	}
	sess.Set(keyUsername, username)
	sess.Set(keyRole, role)
	return sess.Save()
}

// Get returns the live session for the current request, if any. A missing
// or stale cookie yields ok=false.
func (s *Store) Get(c *fiber.Ctx) (Session, bool) {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return Session{}, false
	}
	username, _ := sess.Get(keyUsername).(string)
	if username == "" {
		return Session{}, false
	}
	role, _ := sess.Get(keyRole).(string)
	return Session{Username: username, Role: role}, true
}

// Destroy removes the session for the current request and expires its
// cookie. Destroying an unknown or already-destroyed session is a no-op.
func (s *Store) Destroy(c *fiber.Ctx) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return err
	}
	if sess.Fresh() {
		return nil
	}
	return sess.Destroy()
}
