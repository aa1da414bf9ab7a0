package core

import "testing"

func TestEventQueueDrain(t *testing.T) {
	var q EventQueue
	if got := q.Drain(); got != nil {
		t.Errorf("Drain() on empty queue = %v, expected nil", got)
	}

	q.Push(KeyDown(KeyLeft))
	q.Push(MouseDown(10, 20))
	q.Push(Quit())
	if q.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", q.Len())
	}

	events := q.Drain()
	want := []Event{
		{Kind: EventKeyDown, Key: KeyLeft},
		{Kind: EventMouseDown, X: 10, Y: 20},
		{Kind: EventQuit},
	}
	if len(events) != len(want) {
		t.Fatalf("Drain() returned %d events, expected %d", len(events), len(want))
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %+v, expected %+v", i, events[i], want[i])
		}
	}
	if q.Len() != 0 {
		t.Errorf("Len() = %d after Drain(), expected 0", q.Len())
	}

	// Drained slice must not be overwritten by later pushes.
	q.Push(KeyUp(KeyRight))
	if events[0].Key != KeyLeft {
		t.Errorf("drained events were modified: %+v", events[0])
	}
}

func TestKeyAndKindNames(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{KeyFire.String(), "Fire"},
		{KeyPlay.String(), "Play"},
		{Key(99).String(), "Unknown"},
		{EventKeyUp.String(), "KeyUp"},
		{EventKind(42).String(), "Unknown"},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("got %q, expected %q", tc.got, tc.want)
		}
	}
}

func TestTickSeconds(t *testing.T) {
	if got := (RuntimeConfig{TickRate: 30}).TickSeconds(); got != 1.0/30 {
		t.Errorf("TickSeconds() = %v, expected 1/30", got)
	}
	if got := (RuntimeConfig{}).TickSeconds(); got != 1.0/60 {
		t.Errorf("TickSeconds() with zero rate = %v, expected 1/60", got)
	}
}
