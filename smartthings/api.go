// SmartThings resource types based on
// https://developer.smartthings.com/docs/api/public
package smartthings

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// InstalledApp is the platform record of one installation of this app
// into a location.
type InstalledApp struct {
	InstalledAppID string `json:"installedAppId"`
	LocationID     string `json:"locationId"`
	DisplayName    string `json:"displayName"`
}

// Location is a SmartThings location (a home).
type Location struct {
	LocationID string `json:"locationId"`
	Name       string `json:"name"`
}

// Scene is a named automation the user can execute.
type Scene struct {
	SceneID    string `json:"sceneId"`
	SceneName  string `json:"sceneName"`
	SceneIcon  string `json:"sceneIcon"`
	LocationID string `json:"locationId"`
}

// ScenePage is one page of the scenes listing.
type ScenePage struct {
	Items []Scene `json:"items"`
}

// InstalledApp fetches the installed-app record, which carries the
// location id the token-exchange response omits.
func (c *Client) InstalledApp(ctx context.Context, authToken, installedAppID string) (*InstalledApp, error) {
	var isa InstalledApp
	if err := c.do(ctx, authToken, http.MethodGet, "/v1/installedapps/"+installedAppID, &isa); err != nil {
		return nil, err
	}
	return &isa, nil
}

// Location fetches a location record by id.
func (c *Client) Location(ctx context.Context, authToken, locationID string) (*Location, error) {
	var loc Location
	if err := c.do(ctx, authToken, http.MethodGet, "/v1/locations/"+locationID, &loc); err != nil {
		return nil, err
	}
	return &loc, nil
}

// Scenes lists the scenes visible to the installed app's token.
func (c *Client) Scenes(ctx context.Context, authToken string) (*ScenePage, error) {
	var page ScenePage
	if err := c.do(ctx, authToken, http.MethodGet, "/v1/scenes", &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ExecuteScene runs a scene and returns the platform's result verbatim.
func (c *Client) ExecuteScene(ctx context.Context, authToken, sceneID string) (json.RawMessage, error) {
	var result json.RawMessage
	if err := c.do(ctx, authToken, http.MethodPost, "/v1/scenes/"+sceneID+"/execute", &result); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteInstalledApp uninstalls the app from the user's location.
func (c *Client) DeleteInstalledApp(ctx context.Context, authToken, installedAppID string) error {
	return c.do(ctx, authToken, http.MethodDelete, "/v1/installedapps/"+installedAppID, nil)
}

// APIError is a non-2xx platform response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("smartthings: unexpected status %d", e.StatusCode)
}

// decodeAPIError pulls the message out of the platform error envelope
// {"error":{"message":...}} when present.
func decodeAPIError(statusCode int, body []byte) error {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	apiErr := &APIError{StatusCode: statusCode}
	if err := json.Unmarshal(body, &envelope); err == nil {
		apiErr.Message = envelope.Error.Message
	}
	return apiErr
}
