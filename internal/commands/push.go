package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"todo/internal/exitcode"
	"todo/internal/export"
	"todo/internal/output"
	"todo/internal/service"
	"todo/internal/tasklist"
)

func init() {
	Register(&PushCmd{})
}

// PushCmd implements the push command: each argument becomes a task, and
// the resulting list is copied to Google Tasks.
type PushCmd struct {
	listName string
}

// SetListName sets the list name (for testing).
func (c *PushCmd) SetListName(name string) {
	c.listName = name
}

func (c *PushCmd) Name() string      { return "push" }
func (c *PushCmd) Aliases() []string { return nil }
func (c *PushCmd) Synopsis() string  { return "Copy tasks to Google Tasks" }
func (c *PushCmd) Usage() string     { return "todo push [common flags] [--list <list-name>] <task>..." }
func (c *PushCmd) NeedsAuth() bool   { return true }

func (c *PushCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
}

func (c *PushCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task required")
		return exitcode.UserError
	}

	list := tasklist.New()
	for i, arg := range args {
		if _, err := list.Add(arg); errors.Is(err, tasklist.ErrEmpty) {
			fmt.Fprintf(errOut, "warning: skipped empty task (argument %d)\n", i+1)
		}
	}
	if list.Len() == 0 {
		fmt.Fprintln(errOut, "error: nothing to push")
		return exitcode.UserError
	}

	listName := c.listName
	if listName == "" {
		listName = env.Config.Settings.List
	}

	res, err := export.Push(ctx, env.Service, listName, list.Items())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAmbiguous):
			fmt.Fprintf(errOut, "error: ambiguous list name: %s\n", listName)
			return exitcode.UserError
		case service.IsAuth(err):
			fmt.Fprintf(errOut, "error: auth error: %v\n", err)
			return exitcode.AuthError
		default:
			if res.Pushed > 0 && !env.Config.Quiet {
				output.FormatPartialPush(out, res.Pushed, list.Len(), res.List.Title)
			}
			fmt.Fprintf(errOut, "error: backend error: %v\n", err)
			return exitcode.BackendError
		}
	}

	if !env.Config.Quiet {
		output.FormatPushed(out, res.Pushed, res.List.Title, res.CreatedList)
	}
	return exitcode.Success
}
