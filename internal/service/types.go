// Package service defines the backend-agnostic interface the export path
// talks to.
package service

import "errors"

// RemoteTask represents a task stored in the remote backend.
type RemoteTask struct {
	ID     string
	Title  string
	Status string // "needsAction" or "completed"
}

// TaskList represents a remote task list.
type TaskList struct {
	ID        string
	Title     string
	IsDefault bool
}

var (
	// ErrNotFound is returned when a list or task does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAmbiguous is returned when a list name matches more than one list.
	ErrAmbiguous = errors.New("ambiguous list name")

	// ErrAuth is returned when the stored credentials were rejected.
	ErrAuth = errors.New("token expired or revoked (run: todo login)")

	// ErrNotLoggedIn is returned when no token is stored.
	ErrNotLoggedIn = errors.New("not logged in (run: todo login)")

	// ErrNoOAuthClient is returned when oauth_client.json is missing.
	ErrNoOAuthClient = errors.New("oauth_client.json not found")
)

// IsAuth reports whether err means the user has to (re)authenticate.
func IsAuth(err error) bool {
	return errors.Is(err, ErrAuth) || errors.Is(err, ErrNotLoggedIn) || errors.Is(err, ErrNoOAuthClient)
}
