// Package output provides formatters for screen and CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todo/internal/tasklist"
)

const (
	// Separator frames the list on the screen.
	Separator = "------------"

	// EmptyList is shown in place of the list when it has no tasks.
	EmptyList = "(no tasks)"
)

// FormatTask writes one task line: "{bullet} {text}\n".
// Newlines in the text are replaced with spaces so each task is one line.
func FormatTask(w io.Writer, bullet string, task tasklist.Task) {
	text := singleLine(task.Text)
	if bullet == "" {
		fmt.Fprintln(w, text)
		return
	}
	fmt.Fprintf(w, "%s %s\n", bullet, text)
}

// FormatList writes every task, or EmptyList when there are none.
func FormatList(w io.Writer, bullet string, items []tasklist.Task) {
	if len(items) == 0 {
		fmt.Fprintln(w, EmptyList)
		return
	}
	for _, task := range items {
		FormatTask(w, bullet, task)
	}
}

// singleLine replaces line breaks with spaces.
func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

// FormatPushed writes the result of a push: "pushed 2 tasks to My Tasks".
func FormatPushed(w io.Writer, pushed int, listTitle string, createdList bool) {
	suffix := ""
	if createdList {
		suffix = " (new list)"
	}
	fmt.Fprintf(w, "pushed %s to %s%s\n", TaskCount(pushed), listTitle, suffix)
}

// FormatPartialPush writes how far a failed push got.
func FormatPartialPush(w io.Writer, pushed, total int, listTitle string) {
	fmt.Fprintf(w, "pushed %d of %s to %s\n", pushed, TaskCount(total), listTitle)
}

// TaskCount returns "1 task" or "N tasks".
func TaskCount(n int) string {
	if n == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", n)
}
