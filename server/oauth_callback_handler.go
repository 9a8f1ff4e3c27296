package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/smartthings-community/scenes-app/server/sessioncontext"
)

// sessionCookieMaxAge keeps the session cookie for a year, matching the
// lifetime the platform grants the refresh token.
const sessionCookieMaxAge = 365 * 24 * 60 * 60

// OAuthCallbackHandler completes the authorization-code flow: exchange
// the code for tokens, look up the location the app was installed into,
// then store the composed context and redirect home. Nothing is written
// until every field is known, so a failure at any step leaves the
// session unauthenticated rather than half-populated.
func (s *Server) OAuthCallbackHandler() http.HandlerFunc {
	indexTmpl, err := ParseTemplate("index.html")
	if err != nil {
		panic("Failed to parse index template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		code := r.FormValue("code")
		errorParam := r.FormValue("error")
		errorDesc := r.FormValue("error_description")

		// Check for authorization errors
		if errorParam != "" {
			s.renderLoginPage(w, indexTmpl, http.StatusBadRequest, fmt.Sprintf("Authorization failed: %s - %s", errorParam, errorDesc))
			return
		}

		if code == "" {
			s.renderLoginPage(w, indexTmpl, http.StatusBadRequest, "Missing code parameter")
			return
		}

		// Exchange the authorization code for tokens
		token, err := s.api.ExchangeCode(r.Context(), code)
		if err != nil {
			log.Err(err).Msg("Token exchange failed")
			s.renderLoginPage(w, indexTmpl, http.StatusBadGateway, "Token exchange failed: "+err.Error())
			return
		}

		// The token response carries no location id, so resolve it from
		// the installed-app record, then fetch the location's name.
		isa, err := s.api.InstalledApp(r.Context(), token.AccessToken, token.InstalledAppID)
		if err != nil {
			log.Err(err).Str("installedAppId", token.InstalledAppID).Msg("Installed app lookup failed")
			s.renderLoginPage(w, indexTmpl, http.StatusBadGateway, "Failed to look up installed app: "+err.Error())
			return
		}

		location, err := s.api.Location(r.Context(), token.AccessToken, isa.LocationID)
		if err != nil {
			log.Err(err).Str("locationId", isa.LocationID).Msg("Location lookup failed")
			s.renderLoginPage(w, indexTmpl, http.StatusBadGateway, "Failed to look up location: "+err.Error())
			return
		}

		sessionID := uuid.NewString()
		sc := sessioncontext.Context{
			InstalledAppID: token.InstalledAppID,
			AuthToken:      token.AccessToken,
			RefreshToken:   token.RefreshToken,
			LocationID:     isa.LocationID,
			LocationName:   location.Name,
		}

		if err := s.sessions.Upsert(sessionID, sc); err != nil {
			log.Err(err).Msg("Failed to store session context")
			s.renderLoginPage(w, indexTmpl, http.StatusInternalServerError, "Failed to create session")
			return
		}

		s.SetSessionCookie(w, r, sessionID, sessionCookieMaxAge)
		http.Redirect(w, r, RouteIndex, http.StatusFound)
	}
}
