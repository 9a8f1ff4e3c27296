package smartthings_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/smartthings-community/scenes-app/smartthings"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *smartthings.Client {
	return smartthings.New(smartthings.ClientConfig{
		ClientID:     "client-1",
		ClientSecret: "secret-1",
		RedirectURI:  "https://app.example.com/oauth/callback",
		BaseURL:      baseURL,
	})
}

func TestAuthorizeURL(t *testing.T) {
	client := newTestClient("https://api.example.com")

	authURL, err := url.Parse(client.AuthorizeURL())
	require.NoError(t, err)

	require.Equal(t, "/oauth/authorize", authURL.Path)
	query := authURL.Query()
	require.Equal(t, "client-1", query.Get("client_id"))
	require.Equal(t, "code", query.Get("response_type"))
	require.Equal(t, "https://app.example.com/oauth/callback", query.Get("redirect_uri"))
	require.Equal(t, "r:locations:* r:scenes:* x:scenes:*", query.Get("scope"))
}

func TestExchangeCode(t *testing.T) {
	t.Run("sends basic auth and the full form body", func(t *testing.T) {
		var gotForm url.Values
		var gotUser, gotPass string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/oauth/token", r.URL.Path)
			gotUser, gotPass, _ = r.BasicAuth()
			require.NoError(t, r.ParseForm())
			gotForm = r.PostForm
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"installed_app_id":"A1","access_token":"T1","refresh_token":"R1"}`))
		}))
		defer ts.Close()

		token, err := newTestClient(ts.URL).ExchangeCode(context.Background(), "XYZ")
		require.NoError(t, err)

		require.Equal(t, "client-1", gotUser)
		require.Equal(t, "secret-1", gotPass)
		require.Equal(t, "client-1", gotForm.Get("client_id"))
		require.Equal(t, "XYZ", gotForm.Get("code"))
		require.Equal(t, "authorization_code", gotForm.Get("grant_type"))
		require.Equal(t, "https://app.example.com/oauth/callback", gotForm.Get("redirect_uri"))

		require.Equal(t, "A1", token.InstalledAppID)
		require.Equal(t, "T1", token.AccessToken)
		require.Equal(t, "R1", token.RefreshToken)
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"message":"invalid code"}}`))
		}))
		defer ts.Close()

		_, err := newTestClient(ts.URL).ExchangeCode(context.Background(), "bad")
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid code")
	})

	t.Run("incomplete token response is an error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"access_token":"T1"}`))
		}))
		defer ts.Close()

		_, err := newTestClient(ts.URL).ExchangeCode(context.Background(), "XYZ")
		require.Error(t, err)
	})
}

func TestAuthenticatedCalls(t *testing.T) {
	t.Run("sends a bearer token", func(t *testing.T) {
		var gotAuth string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`{"items":[{"sceneId":"S1","sceneName":"Morning"}]}`))
		}))
		defer ts.Close()

		page, err := newTestClient(ts.URL).Scenes(context.Background(), "T1")
		require.NoError(t, err)
		require.Equal(t, "Bearer T1", gotAuth)
		require.Len(t, page.Items, 1)
		require.Equal(t, "Morning", page.Items[0].SceneName)
	})

	t.Run("installed app and location reads", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/v1/installedapps/A1":
				w.Write([]byte(`{"installedAppId":"A1","locationId":"L1"}`))
			case "/v1/locations/L1":
				w.Write([]byte(`{"locationId":"L1","name":"Home"}`))
			default:
				http.NotFound(w, r)
			}
		}))
		defer ts.Close()

		client := newTestClient(ts.URL)
		isa, err := client.InstalledApp(context.Background(), "T1", "A1")
		require.NoError(t, err)
		require.Equal(t, "L1", isa.LocationID)

		loc, err := client.Location(context.Background(), "T1", "L1")
		require.NoError(t, err)
		require.Equal(t, "Home", loc.Name)
	})

	t.Run("execute returns the result verbatim", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/v1/scenes/S1/execute", r.URL.Path)
			w.Write([]byte(`{"status":"success"}`))
		}))
		defer ts.Close()

		result, err := newTestClient(ts.URL).ExecuteScene(context.Background(), "T1", "S1")
		require.NoError(t, err)
		require.JSONEq(t, `{"status":"success"}`, string(result))
	})

	t.Run("platform error message surfaces verbatim", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"message":"rate limited"}}`))
		}))
		defer ts.Close()

		_, err := newTestClient(ts.URL).Scenes(context.Background(), "T1")
		require.Error(t, err)
		require.Equal(t, "rate limited", err.Error())

		apiErr := &smartthings.APIError{}
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	})

	t.Run("delete installed app", func(t *testing.T) {
		var gotMethod, gotPath string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod, gotPath = r.Method, r.URL.Path
			w.WriteHeader(http.StatusNoContent)
		}))
		defer ts.Close()

		err := newTestClient(ts.URL).DeleteInstalledApp(context.Background(), "T1", "A1")
		require.NoError(t, err)
		require.Equal(t, http.MethodDelete, gotMethod)
		require.Equal(t, "/v1/installedapps/A1", gotPath)
	})
}
