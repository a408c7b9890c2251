// Package tasklist holds the in-memory to-do list: an ordered sequence of
// task descriptions that only grows by Add and only shrinks by Clear.
package tasklist

import "strings"

// Task is a single to-do entry.
type Task struct {
	// Text is the display text, trimmed and never empty.
	Text string
}

// TaskList is an ordered sequence of tasks in insertion order.
// Duplicates are allowed. The zero value is an empty list ready to use.
//
// A TaskList is not safe for concurrent use; it is owned by the
// presentation layer and mutated from its event loop only.
type TaskList struct {
	items     []Task
	observers []*subscription
}

// New creates an empty task list.
func New() *TaskList {
	return &TaskList{}
}

// Add trims rawText and appends it as a new task.
// Returns ErrEmpty if nothing is left after trimming; the list is unchanged.
func (l *TaskList) Add(rawText string) (Task, error) {
	text := strings.TrimSpace(rawText)
	if text == "" {
		return Task{}, &ValidationError{Reason: Empty}
	}

	task := Task{Text: text}
	l.items = append(l.items, task)
	l.notify(Change{Kind: Added, Task: task})
	return task, nil
}

// Clear removes all tasks. It cannot fail and is idempotent.
func (l *TaskList) Clear() {
	l.items = nil
	l.notify(Change{Kind: Cleared})
}

// Items returns a snapshot of the current tasks in order.
func (l *TaskList) Items() []Task {
	out := make([]Task, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of tasks.
func (l *TaskList) Len() int {
	return len(l.items)
}
