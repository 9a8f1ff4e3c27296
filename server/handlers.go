package server

import (
	"encoding/json"
	"html/template"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/smartthings-community/scenes-app/smartthings"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeJSON = "application/json"
)

// LoginPageData contains data for rendering the login page
type LoginPageData struct {
	AppName string
	AuthURL string
	Error   string
}

// ScenesPageData contains data for rendering the authenticated scene list
type ScenesPageData struct {
	AppName        string
	InstalledAppID string
	LocationName   string
	ErrorMessage   string
	Scenes         []smartthings.Scene
}

// IndexHandler renders the scene list for authenticated sessions, or the
// login page with the SmartThings authorization link otherwise.
func (s *Server) IndexHandler() http.HandlerFunc {
	indexTmpl, err := ParseTemplate("index.html")
	if err != nil {
		panic("Failed to parse index template: " + err.Error())
	}
	scenesTmpl, err := ParseTemplate("scenes.html")
	if err != nil {
		panic("Failed to parse scenes template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		sc, _, ok := s.sessionContext(r)
		if !ok {
			s.renderLoginPage(w, indexTmpl, http.StatusOK, "")
			return
		}

		data := ScenesPageData{
			AppName:        s.config.GetAppName(),
			InstalledAppID: sc.InstalledAppID,
			LocationName:   sc.LocationName,
		}

		// A listing failure still renders the page, with the error text
		// and no scenes. The session stays intact.
		page, err := s.api.Scenes(r.Context(), sc.AuthToken)
		if err != nil {
			log.Err(err).Str("installedAppId", sc.InstalledAppID).Msg("Failed to list scenes")
			data.ErrorMessage = err.Error()
		} else {
			data.Scenes = page.Items
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := scenesTmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render scenes template")
		}
	}
}

// AppRegistrationHandler acknowledges the platform's app registration
// confirmation callback. The payload is logged and an empty JSON object
// returned, which is all the platform requires.
func (s *Server) AppRegistrationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}
		log.Info().RawJSON("payload", normalizeJSON(body)).Msg("App registration callback")

		w.Header().Set("Content-Type", contentTypeJSON)
		w.Write([]byte("{}"))
	}
}

// normalizeJSON guards RawJSON logging against non-JSON payloads
func normalizeJSON(body []byte) []byte {
	if json.Valid(body) {
		return body
	}
	quoted, err := json.Marshal(string(body))
	if err != nil {
		return []byte(`""`)
	}
	return quoted
}

func (s *Server) renderLoginPage(w http.ResponseWriter, tmpl *template.Template, statusCode int, errorMsg string) {
	data := LoginPageData{
		AppName: s.config.GetAppName(),
		AuthURL: s.api.AuthorizeURL(),
		Error:   errorMsg,
	}

	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(statusCode)
	if err := tmpl.Execute(w, data); err != nil {
		log.Err(err).Msg("Failed to render login template")
	}
}

func writeJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
