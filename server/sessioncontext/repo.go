package sessioncontext

import "errors"

// ErrNotFound is returned when no context exists for a session id.
var ErrNotFound = errors.New("session context not found")

// Context is everything needed to act on behalf of one installation:
// the tokens from the OAuth exchange plus the identifiers looked up
// afterwards. It is either fully populated or not stored at all.
type Context struct {
	InstalledAppID string
	AuthToken      string
	RefreshToken   string
	LocationID     string
	LocationName   string
}

// Valid reports whether every field is present.
func (c Context) Valid() bool {
	return c.InstalledAppID != "" &&
		c.AuthToken != "" &&
		c.RefreshToken != "" &&
		c.LocationID != "" &&
		c.LocationName != ""
}

type Repo interface {
	Upsert(sessionID string, ctx Context) error
	Get(sessionID string) (Context, error)
	Delete(sessionID string) error
}
