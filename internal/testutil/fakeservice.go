// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"todo/internal/service"
)

// DefaultListID is the ID used for the default list.
const DefaultListID = "@default"

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu    sync.RWMutex
	lists []service.TaskList
	tasks map[string][]service.RemoteTask // listID -> tasks
	seq   int

	// Calls counts every method invocation.
	Calls int

	// Error injection for testing
	DefaultListErr error
	ListListsErr   error
	CreateListErr  error
	CreateTaskErr  error

	// CreateTaskErrAfter makes CreateTask fail once this many tasks were created.
	// Zero disables it.
	CreateTaskErrAfter int
}

// NewFakeService creates a new FakeService with a default list.
func NewFakeService() *FakeService {
	fs := &FakeService{
		tasks: make(map[string][]service.RemoteTask),
	}
	fs.lists = []service.TaskList{
		{ID: DefaultListID, Title: "My Tasks", IsDefault: true},
	}
	fs.tasks[DefaultListID] = nil
	return fs
}

// AddList adds a list to the fake service.
func (f *FakeService) AddList(id, title string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists = append(f.lists, service.TaskList{ID: id, Title: title, IsDefault: false})
	if f.tasks[id] == nil {
		f.tasks[id] = nil
	}
}

// Titles returns the task titles of a list in list order.
func (f *FakeService) Titles(listID string) []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []string
	for _, t := range f.tasks[listID] {
		out = append(out, t.Title)
	}
	return out
}

// Lists returns a copy of all lists.
func (f *FakeService) Lists() []service.TaskList {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]service.TaskList, len(f.lists))
	copy(out, f.lists)
	return out
}

// DefaultList implements service.Service.
func (f *FakeService) DefaultList(ctx context.Context) (service.TaskList, error) {
	f.mu.Lock()
	f.Calls++
	f.mu.Unlock()

	if f.DefaultListErr != nil {
		return service.TaskList{}, f.DefaultListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, l := range f.lists {
		if l.IsDefault {
			return l, nil
		}
	}
	return service.TaskList{}, errors.New("no default list")
}

// ListLists implements service.Service.
func (f *FakeService) ListLists(ctx context.Context) ([]service.TaskList, error) {
	f.mu.Lock()
	f.Calls++
	f.mu.Unlock()

	if f.ListListsErr != nil {
		return nil, f.ListListsErr
	}
	return f.Lists(), nil
}

// ResolveList implements service.Service.
func (f *FakeService) ResolveList(ctx context.Context, name string) (service.TaskList, error) {
	lists, err := f.ListLists(ctx)
	if err != nil {
		return service.TaskList{}, err
	}
	return service.MatchList(lists, name)
}

// CreateList implements service.Service.
func (f *FakeService) CreateList(ctx context.Context, name string) (service.TaskList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++

	if f.CreateListErr != nil {
		return service.TaskList{}, f.CreateListErr
	}

	// Generate a simple ID
	id := strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	list := service.TaskList{ID: id, Title: name}
	f.lists = append(f.lists, list)
	f.tasks[id] = nil
	return list, nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, listID, title, previousID string) (service.RemoteTask, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++

	if f.CreateTaskErr != nil {
		return service.RemoteTask{}, f.CreateTaskErr
	}
	if f.CreateTaskErrAfter > 0 && f.seq >= f.CreateTaskErrAfter {
		return service.RemoteTask{}, errors.New("quota exceeded")
	}

	tasks, ok := f.tasks[listID]
	if !ok {
		return service.RemoteTask{}, fmt.Errorf("list %s: %w", listID, service.ErrNotFound)
	}

	f.seq++
	task := service.RemoteTask{
		ID:     fmt.Sprintf("task-%d", f.seq),
		Title:  title,
		Status: "needsAction",
	}

	// Insert after previousID, or first when empty
	pos := 0
	if previousID != "" {
		pos = -1
		for i, t := range tasks {
			if t.ID == previousID {
				pos = i + 1
				break
			}
		}
		if pos < 0 {
			return service.RemoteTask{}, fmt.Errorf("task %s: %w", previousID, service.ErrNotFound)
		}
	}
	tasks = append(tasks, service.RemoteTask{})
	copy(tasks[pos+1:], tasks[pos:])
	tasks[pos] = task
	f.tasks[listID] = tasks
	return task, nil
}
