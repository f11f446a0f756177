package store

// Session is the server-side session state. UserID is the opaque owner
// token tagged onto every message the browser session creates; it is
// the only authorization mechanism the board has.
type Session struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
}
