package session

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

const flashCookie = "flash"

// Flash levels match the bootstrap alert classes the templates render.
const (
	LevelSuccess = "success"
	LevelInfo    = "info"
	LevelWarning = "warning"
	LevelDanger  = "danger"
)

// Flash is a one-shot message surfaced on the next rendered page.
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Flash queues a message to show after the next redirect. The cookie
// holds one message; queueing another before it is read overwrites it.
func (m *Manager) Flash(w http.ResponseWriter, level, message string) {
	payload, _ := json.Marshal([]Flash{{Level: level, Message: message}})

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    base64.URLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// FlashNow returns the pending flashes with message appended, for
// pages rendered in the same response. The cookie only surfaces on the
// next request, which never comes when a form re-renders directly.
func (m *Manager) FlashNow(w http.ResponseWriter, r *http.Request, level, message string) []Flash {
	return append(m.PopFlashes(w, r), Flash{Level: level, Message: message})
}

// PopFlashes returns the queued messages and expires the cookie so
// each message shows exactly once.
func (m *Manager) PopFlashes(w http.ResponseWriter, r *http.Request) []Flash {
	cookie, err := r.Cookie(flashCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	payload, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}

	var flashes []Flash
	if err := json.Unmarshal(payload, &flashes); err != nil {
		return nil
	}

	return flashes
}
