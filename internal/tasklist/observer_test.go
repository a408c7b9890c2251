package tasklist_test

import (
	"testing"

	"todo/internal/tasklist"
)

func TestSubscribe_ReceivesChanges(t *testing.T) {
	l := tasklist.New()

	var got []tasklist.Change
	l.Subscribe(tasklist.ObserverFunc(func(c tasklist.Change) {
		got = append(got, c)
	}))

	l.Add("A")
	l.Add("   ") // rejected, no notification
	l.Add("B")
	l.Clear()

	if len(got) != 3 {
		t.Fatalf("expected 3 changes, got %d: %+v", len(got), got)
	}

	if got[0].Kind != tasklist.Added || got[0].Task.Text != "A" || len(got[0].Items) != 1 {
		t.Errorf("unexpected first change: %+v", got[0])
	}
	if got[1].Kind != tasklist.Added || got[1].Task.Text != "B" || len(got[1].Items) != 2 {
		t.Errorf("unexpected second change: %+v", got[1])
	}
	if got[2].Kind != tasklist.Cleared || len(got[2].Items) != 0 {
		t.Errorf("unexpected third change: %+v", got[2])
	}
}

func TestSubscribe_ClearOnEmptyStillNotifies(t *testing.T) {
	l := tasklist.New()

	calls := 0
	l.Subscribe(tasklist.ObserverFunc(func(c tasklist.Change) { calls++ }))

	l.Clear()
	l.Clear()

	if calls != 2 {
		t.Errorf("expected 2 notifications, got %d", calls)
	}
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	l := tasklist.New()

	var first, second int
	unsub := l.Subscribe(tasklist.ObserverFunc(func(c tasklist.Change) { first++ }))
	l.Subscribe(tasklist.ObserverFunc(func(c tasklist.Change) { second++ }))

	l.Add("A")
	unsub()
	l.Add("B")
	unsub() // no-op

	if first != 1 {
		t.Errorf("expected first observer called once, got %d", first)
	}
	if second != 2 {
		t.Errorf("expected second observer called twice, got %d", second)
	}
}

func TestSubscribe_UnsubscribeDuringNotify(t *testing.T) {
	l := tasklist.New()

	var unsub func()
	calls := 0
	unsub = l.Subscribe(tasklist.ObserverFunc(func(c tasklist.Change) {
		calls++
		unsub()
	}))

	l.Add("A")
	l.Add("B")

	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestChangeKind_String(t *testing.T) {
	if tasklist.Added.String() != "added" {
		t.Errorf("unexpected %q", tasklist.Added.String())
	}
	if tasklist.Cleared.String() != "cleared" {
		t.Errorf("unexpected %q", tasklist.Cleared.String())
	}
}
