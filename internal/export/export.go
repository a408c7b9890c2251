// Package export pushes the current task list to a remote task backend.
// It is one-way: nothing is ever read back into the local list.
package export

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"todo/internal/service"
	"todo/internal/tasklist"
)

// ErrNothingToPush is returned when the list is empty.
var ErrNothingToPush = errors.New("nothing to push")

// Result describes a finished push.
type Result struct {
	List service.TaskList

	// Pushed is the number of tasks created remotely.
	Pushed int

	// CreatedList is true if the named list did not exist and was created.
	CreatedList bool
}

// Push creates one remote task per item, in list order, in the list named
// listName. An empty listName targets the default list; a named list that
// does not exist is created.
//
// If a task fails midway, the returned Result reports how many were pushed
// before the error.
func Push(ctx context.Context, svc service.Service, listName string, items []tasklist.Task) (Result, error) {
	if len(items) == 0 {
		return Result{}, ErrNothingToPush
	}

	var res Result
	var err error
	listName = strings.TrimSpace(listName)
	if listName == "" {
		res.List, err = svc.DefaultList(ctx)
		if err != nil {
			return res, err
		}
	} else {
		res.List, err = svc.ResolveList(ctx, listName)
		if errors.Is(err, service.ErrNotFound) {
			res.List, err = svc.CreateList(ctx, listName)
			res.CreatedList = err == nil
		}
		if err != nil {
			return res, err
		}
	}

	// Chain each task after the previous one so the remote order matches
	var previous string
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		task, err := svc.CreateTask(ctx, res.List.ID, item.Text, previous)
		if err != nil {
			return res, fmt.Errorf("task %d of %d: %w", res.Pushed+1, len(items), err)
		}
		previous = task.ID
		res.Pushed++
	}
	return res, nil
}
