// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"todo/internal/config"
	"todo/internal/logging"
	"todo/internal/service"
)

// Env is what the dispatcher hands to a command besides its arguments.
type Env struct {
	// Config is always provided (config dir, paths, settings).
	Config *config.Config

	// Service is the export backend; nil unless NeedsAuth() returns true.
	Service service.Service

	// Connect opens the export backend on demand, for commands that only
	// sometimes need it.
	Connect func(ctx context.Context) (service.Service, error)

	Log *logging.Logger

	// In is the user's input stream.
	In io.Reader
}

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsAuth returns true if the command requires an export backend
	// before it starts.
	NeedsAuth() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int
}
