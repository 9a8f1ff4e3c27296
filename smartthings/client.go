// Package smartthings is a thin client for the SmartThings REST API,
// covering the OAuth2 authorization-code exchange and the handful of
// resources this app touches (installed apps, locations, scenes).
package smartthings

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

const (
	// DefaultBaseURL is the production SmartThings API host.
	DefaultBaseURL = "https://api.smartthings.com"

	// Scopes requested during authorization. Read locations and scenes,
	// execute scenes.
	ScopeReadLocations = "r:locations:*"
	ScopeReadScenes    = "r:scenes:*"
	ScopeExecuteScenes = "x:scenes:*"

	defaultTimeout = 10 * time.Second
)

// ClientConfig carries the OAuth client registration plus optional
// overrides for tests.
type ClientConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	BaseURL      string       // defaults to DefaultBaseURL
	HTTPClient   *http.Client // defaults to a client with a bounded timeout
}

// Client performs authenticated calls against the SmartThings API.
// It holds no per-user state; tokens are passed per call.
type Client struct {
	oauth      *oauth2.Config
	baseURL    string
	httpClient *http.Client
}

func New(cfg ClientConfig) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       []string{ScopeReadLocations, ScopeReadScenes, ScopeExecuteScenes},
			Endpoint: oauth2.Endpoint{
				AuthURL:   baseURL + "/oauth/authorize",
				TokenURL:  baseURL + "/oauth/token",
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// AuthorizeURL returns the URL a browser is sent to for user consent.
func (c *Client) AuthorizeURL() string {
	return c.oauth.AuthCodeURL("")
}

// Token is the SmartThings token-endpoint response. The installed-app id
// rides along with the OAuth tokens.
type Token struct {
	InstalledAppID string `json:"installed_app_id"`
	AccessToken    string `json:"access_token"`
	RefreshToken   string `json:"refresh_token"`
}

// ExchangeCode trades an authorization code for tokens. The request is
// built by hand rather than through oauth2.Config.Exchange because the
// platform expects both HTTP Basic credentials and client_id in the form
// body, and the oauth2 package only sends one or the other.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*Token, error) {
	form := url.Values{
		"client_id":    {c.oauth.ClientID},
		"code":         {code},
		"grant_type":   {"authorization_code"},
		"redirect_uri": {c.oauth.RedirectURL},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.oauth.Endpoint.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("[smartthings ExchangeCode] failed to create request: %w", err)
	}
	req.SetBasicAuth(c.oauth.ClientID, c.oauth.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("[smartthings ExchangeCode] token request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("[smartthings ExchangeCode] failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		return nil, decodeAPIError(resp.StatusCode, body)
	}

	var token Token
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, fmt.Errorf("[smartthings ExchangeCode] malformed token response: %w", err)
	}
	if token.AccessToken == "" || token.InstalledAppID == "" {
		return nil, fmt.Errorf("[smartthings ExchangeCode] token response missing access_token or installed_app_id")
	}

	return &token, nil
}

// apiClient wraps the base HTTP client with a bearer-token transport.
// The oauth2.HTTPClient context value keeps the base client's timeout in
// effect underneath the oauth2 transport.
func (c *Client) apiClient(ctx context.Context, authToken string) *http.Client {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: authToken}))
}

// do issues an authenticated request and decodes the response into out.
// A *json.RawMessage out receives the body verbatim; a nil out discards it.
func (c *Client) do(ctx context.Context, authToken, method, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("[smartthings do] failed to create request: %w", err)
	}

	resp, err := c.apiClient(ctx, authToken).Do(req)
	if err != nil {
		return fmt.Errorf("[smartthings do] %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("[smartthings do] failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		return decodeAPIError(resp.StatusCode, body)
	}

	switch v := out.(type) {
	case nil:
		return nil
	case *json.RawMessage:
		*v = body
		return nil
	default:
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("[smartthings do] malformed response body: %w", err)
		}
		return nil
	}
}
