package session

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	keyUserID = "user_id"
	keyEmail  = "email"
	keyTheme  = "theme"
)

// Flash is a one-shot message carried in the session and shown on the next
// rendered page.
type Flash struct {
	Category string
	Message  string
}

func init() {
	// The cookie store gob-encodes session values.
	gob.Register(Flash{})
}

// Session wraps the cookie session for one request. Handlers receive it as
// an explicit argument instead of reading request-local state.
type Session struct {
	s sessions.Session
}

func FromContext(c *gin.Context) *Session {
	return &Session{s: sessions.Default(c)}
}

func (s *Session) Authenticated() bool {
	return s.UserID() != ""
}

func (s *Session) UserID() string {
	return s.str(keyUserID)
}

func (s *Session) Email() string {
	return s.str(keyEmail)
}

func (s *Session) SetUser(id, email string) {
	s.s.Set(keyUserID, id)
	s.s.Set(keyEmail, email)
}

// Clear resets the session to anonymous. The theme survives the reset, so a
// user who picked light mode is not flipped back to dark by logging out.
func (s *Session) Clear() {
	theme := s.Theme()
	s.s.Clear()
	s.s.Set(keyTheme, theme)
}

// Theme returns "light" or "dark", defaulting to dark when unset.
func (s *Session) Theme() string {
	if s.str(keyTheme) == "light" {
		return "light"
	}
	return "dark"
}

func (s *Session) SetTheme(theme string) {
	s.s.Set(keyTheme, theme)
}

// ToggleTheme flips between light and dark and returns the new value. It
// works the same whether or not anyone is logged in.
func (s *Session) ToggleTheme() string {
	next := "dark"
	if s.Theme() == "dark" {
		next = "light"
	}
	s.s.Set(keyTheme, next)
	return next
}

func (s *Session) Flash(category, message string) {
	s.s.AddFlash(Flash{Category: category, Message: message})
}

// Flashes drains the pending flash messages. The removal only sticks once
// the session is saved.
func (s *Session) Flashes() []Flash {
	raw := s.s.Flashes()
	flashes := make([]Flash, 0, len(raw))
	for _, f := range raw {
		if flash, ok := f.(Flash); ok {
			flashes = append(flashes, flash)
		}
	}
	return flashes
}

func (s *Session) Save() error {
	return s.s.Save()
}

func (s *Session) str(key string) string {
	if v, ok := s.s.Get(key).(string); ok {
		return v
	}
	return ""
}
