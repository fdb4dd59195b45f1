package engine

import "testing"

func TestEventLog_Drain(t *testing.T) {
	var l EventLog
	l.Emit(CountdownChanged{N: 3})
	l.Emit(TimerChanged{SecondsLeft: 60})

	got := l.Drain()
	if len(got) != 2 {
		t.Fatalf("Drain returned %d events, want 2", len(got))
	}
	if _, ok := got[0].(CountdownChanged); !ok {
		t.Errorf("first event = %T", got[0])
	}
	if l.Len() != 0 || len(l.Drain()) != 0 {
		t.Error("Drain did not clear the log")
	}
}
