package server

import (
	"net/http"

	"github.com/smartthings-community/scenes-app/server/sessioncontext"
)

// sessionCookieName is the cookie holding the server-side session id.
// The session context itself (tokens included) never leaves the server.
const sessionCookieName = "smartthings_session"

func (s *Server) SetSessionCookie(w http.ResponseWriter, r *http.Request, sessionID string, maxAge int) {
	isSecure := getScheme(r) == "https"

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   isSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}

func (s *Server) ClearSessionCookie(w http.ResponseWriter, r *http.Request) {
	s.SetSessionCookie(w, r, "", -1)
}

// sessionContext resolves the request's cookie to a stored context.
// The second return is false when the request is unauthenticated, for
// whatever reason (no cookie, unknown session id, cleared session).
func (s *Server) sessionContext(r *http.Request) (sessioncontext.Context, string, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return sessioncontext.Context{}, "", false
	}

	sc, err := s.sessions.Get(cookie.Value)
	if err != nil {
		return sessioncontext.Context{}, cookie.Value, false
	}

	return sc, cookie.Value, true
}
