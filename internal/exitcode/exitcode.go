// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion, including a shell session
	// ended by EOF or :quit.
	Success = 0

	// UserError indicates a user error (bad args, unknown command, empty task).
	UserError = 1

	// AuthError indicates an auth/config error.
	AuthError = 2

	// BackendError indicates an export backend/API/network error.
	BackendError = 3
)
