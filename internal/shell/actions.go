package shell

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"todo/internal/output"
	"todo/internal/printout"
)

// action is a ':' command typed into the text field.
type action struct {
	name     string
	aliases  []string
	usage    string
	synopsis string
	run      func(s *Screen, arg string) (tea.Cmd, error)
}

// actions are listed in help order.
var actions []action

func init() {
	actions = []action{
		{name: "add", usage: ":add <text>", synopsis: "Add text verbatim (may start with ':')", run: runAdd},
		{name: "clear", usage: ":clear", synopsis: "Remove all tasks", run: runClear},
		{name: "list", aliases: []string{"ls"}, usage: ":list", synopsis: "Scroll to the top and count tasks", run: runList},
		{name: "push", usage: ":push [list-name]", synopsis: "Copy all tasks to Google Tasks", run: runPush},
		{name: "print", usage: ":print <file>", synopsis: "Write the list to a PDF file", run: runPrint},
		{name: "help", aliases: []string{"?"}, usage: ":help", synopsis: "Show this help", run: runHelp},
		{name: "quit", aliases: []string{"q", "exit"}, usage: ":quit", synopsis: "Leave", run: runQuit},
	}
}

func findAction(name string) (action, bool) {
	for _, a := range actions {
		if a.name == name {
			return a, true
		}
		for _, alias := range a.aliases {
			if alias == name {
				return a, true
			}
		}
	}
	return action{}, false
}

func runAdd(s *Screen, arg string) (tea.Cmd, error) {
	s.add(arg)
	return nil, nil
}

func runClear(s *Screen, arg string) (tea.Cmd, error) {
	s.list.Clear()
	return nil, nil
}

func runList(s *Screen, arg string) (tea.Cmd, error) {
	s.follow = false
	s.view.GotoTop()
	s.status = output.TaskCount(s.list.Len())
	s.statusErr = false
	return nil, nil
}

func runPush(s *Screen, arg string) (tea.Cmd, error) {
	return s.push(arg)
}

func runPrint(s *Screen, arg string) (tea.Cmd, error) {
	path, err := printout.WriteFile(arg, s.list.Items(), printout.Options{
		Title:  s.settings.Title,
		Bullet: s.settings.Bullet,
		Font:   s.settings.Font,
	})
	if err != nil {
		return nil, err
	}
	s.info("wrote " + path)
	return nil, nil
}

func runHelp(s *Screen, arg string) (tea.Cmd, error) {
	var b strings.Builder
	b.WriteString("Type a task and press Enter to add it.")
	for _, a := range actions {
		fmt.Fprintf(&b, "\n  %-20s %s", a.usage, a.synopsis)
	}
	s.status = b.String()
	s.statusErr = false
	return nil, nil
}

func runQuit(s *Screen, arg string) (tea.Cmd, error) {
	s.quitting = true
	return tea.Quit, nil
}
