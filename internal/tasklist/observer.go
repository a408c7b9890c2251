package tasklist

// ChangeKind says which mutation produced a Change.
type ChangeKind int

const (
	// Added means one task was appended.
	Added ChangeKind = iota + 1
	// Cleared means the list was emptied.
	Cleared
)

func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Cleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Change describes a completed mutation.
type Change struct {
	Kind ChangeKind

	// Task is the appended task; zero for Cleared.
	Task Task

	// Items is a snapshot of the list after the mutation.
	Items []Task
}

// Observer is notified synchronously after every successful mutation.
type Observer interface {
	ListChanged(c Change)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(c Change)

// ListChanged calls f(c).
func (f ObserverFunc) ListChanged(c Change) { f(c) }

type subscription struct {
	o Observer
}

// Subscribe registers o and returns a function that removes it.
// Observers are called in subscription order.
func (l *TaskList) Subscribe(o Observer) (unsubscribe func()) {
	sub := &subscription{o: o}
	l.observers = append(l.observers, sub)
	return func() {
		for i, s := range l.observers {
			if s == sub {
				l.observers = append(l.observers[:i], l.observers[i+1:]...)
				return
			}
		}
	}
}

func (l *TaskList) notify(c Change) {
	if len(l.observers) == 0 {
		return
	}
	c.Items = l.Items()

	// Copy so an observer may unsubscribe while being notified.
	subs := make([]*subscription, len(l.observers))
	copy(subs, l.observers)
	for _, s := range subs {
		s.o.ListChanged(c)
	}
}
