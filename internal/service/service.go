package service

import (
	"context"

	"todo/internal/config"
	"todo/internal/logging"
)

// Service defines the interface for task backend operations.
// All Google Tasks API calls go through this interface.
// Nothing outside the backend package imports the Google SDK.
type Service interface {
	// DefaultList returns the user's default task list.
	DefaultList(ctx context.Context) (TaskList, error)

	// ListLists returns all task lists in API order.
	ListLists(ctx context.Context) ([]TaskList, error)

	// ResolveList finds a list by name (case-insensitive, trimmed).
	// Returns an error wrapping ErrNotFound or ErrAmbiguous.
	ResolveList(ctx context.Context, name string) (TaskList, error)

	// CreateList creates a new task list and returns it.
	CreateList(ctx context.Context, name string) (TaskList, error)

	// CreateTask creates a task in the specified list directly after the
	// task previousID, or first in the list when previousID is empty.
	CreateTask(ctx context.Context, listID, title, previousID string) (RemoteTask, error)
}

// Factory creates a Service from config.
// Used to inject the backend during dispatch; log is the dispatcher's
// logger, already leveled by --debug and writing to its stderr.
type Factory func(ctx context.Context, cfg *config.Config, log *logging.Logger) (Service, error)
