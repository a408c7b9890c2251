package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/exitcode"
	"todo/internal/shell"
	"todo/internal/tasklist"
)

func init() {
	Register(&ShellCmd{})
}

// ShellCmd implements the shell command, the interactive to-do screen.
// It is what runs when todo is called without arguments.
type ShellCmd struct{}

func (c *ShellCmd) Name() string      { return "shell" }
func (c *ShellCmd) Aliases() []string { return []string{"run"} }
func (c *ShellCmd) Synopsis() string  { return "Open the to-do screen" }
func (c *ShellCmd) Usage() string     { return "todo [shell] [common flags]" }
func (c *ShellCmd) NeedsAuth() bool   { return false }

func (c *ShellCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ShellCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	if !shell.IsTerminal(env.In) {
		fmt.Fprintln(errOut, "error: the to-do screen needs a terminal (for scripts use: todo push <task>...)")
		return exitcode.UserError
	}

	list := tasklist.New()
	screen := shell.New(list, shell.Options{
		Settings: env.Config.Settings,
		Quiet:    env.Config.Quiet,
		Connect:  env.Connect,
		Log:      env.Log,
	})
	defer screen.Close()

	if err := screen.Run(ctx, env.In, out); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	return exitcode.Success
}
