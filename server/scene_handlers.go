package server

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/smartthings-community/scenes-app/smartthings"
)

// ExecuteSceneHandler runs the scene named in the path and passes the
// platform's result through to the caller.
func (s *Server) ExecuteSceneHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc, _, ok := s.sessionContext(r)
		if !ok {
			writeJSONError(w, http.StatusUnauthorized, "not authenticated")
			return
		}

		sceneID := r.PathValue("sceneId")
		if sceneID == "" {
			writeJSONError(w, http.StatusBadRequest, "missing scene id")
			return
		}

		result, err := s.api.ExecuteScene(r.Context(), sc.AuthToken, sceneID)
		if err != nil {
			log.Err(err).Str("sceneId", sceneID).Msg("Failed to execute scene")
			status := http.StatusBadGateway
			apiErr := &smartthings.APIError{}
			if errors.As(err, &apiErr) {
				status = apiErr.StatusCode
			}
			writeJSONError(w, status, err.Error())
			return
		}

		w.Header().Set("Content-Type", contentTypeJSON)
		w.Write(result)
	}
}

// LogoutHandler uninstalls the app and clears the session. The local
// session is cleared even when the uninstall call fails, so the browser
// never claims an authenticated state the user can no longer exercise.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc, sessionID, ok := s.sessionContext(r)
		if ok {
			if err := s.api.DeleteInstalledApp(r.Context(), sc.AuthToken, sc.InstalledAppID); err != nil {
				log.Err(err).Str("installedAppId", sc.InstalledAppID).Msg("Logout: uninstall failed, clearing local session anyway")
			}
			if err := s.sessions.Delete(sessionID); err != nil {
				log.Err(err).Msg("Logout: failed to delete session context")
			}
		}

		s.ClearSessionCookie(w, r)
		http.Redirect(w, r, RouteIndex, http.StatusFound)
	}
}
