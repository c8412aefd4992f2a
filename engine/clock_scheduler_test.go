package engine

import (
	"testing"
	"time"
)

func waitTick(t *testing.T, cs *ClockScheduler, within time.Duration) {
	t.Helper()
	select {
	case <-cs.C():
	case <-time.After(within):
		t.Fatalf("Expected a tick within %v", within)
	}
}

func TestClockSchedulerEmitsTicks(t *testing.T) {
	cs := NewClockScheduler(5 * time.Millisecond)
	cs.Start()
	defer cs.Stop()

	for i := 0; i < 3; i++ {
		waitTick(t, cs, time.Second)
	}
	if cs.TickCount() < 3 {
		t.Errorf("Expected at least 3 ticks counted, got %d", cs.TickCount())
	}
}

func TestClockSchedulerStopIsQuiet(t *testing.T) {
	cs := NewClockScheduler(5 * time.Millisecond)
	cs.Start()
	waitTick(t, cs, time.Second)
	cs.Stop()

	if cs.Running() {
		t.Error("Expected scheduler to report stopped")
	}

	select {
	case <-cs.C():
		t.Error("Expected no tick after Stop")
	case <-time.After(30 * time.Millisecond):
	}

	// Second stop is a no-op
	cs.Stop()
}

func TestClockSchedulerRestart(t *testing.T) {
	cs := NewClockScheduler(5 * time.Millisecond)

	for round := 0; round < 3; round++ {
		cs.Start()
		cs.Start()
		waitTick(t, cs, time.Second)
		cs.Stop()
	}
}

func TestClockSchedulerDropsWhenLagging(t *testing.T) {
	cs := NewClockScheduler(2 * time.Millisecond)
	cs.Start()
	time.Sleep(40 * time.Millisecond)
	cs.Stop()

	// Only the one-slot buffer could have been filled and Stop drains it
	select {
	case <-cs.C():
		t.Error("Expected stale tick to be drained by Stop")
	default:
	}
	if cs.TickCount() != 1 {
		t.Errorf("Expected exactly one delivered tick without a consumer, got %d", cs.TickCount())
	}
}

func TestClockSchedulerSetInterval(t *testing.T) {
	cs := NewClockScheduler(time.Hour)
	cs.SetInterval(0)
	if cs.Interval() != time.Hour {
		t.Errorf("Expected non-positive interval to be ignored, got %v", cs.Interval())
	}

	cs.Start()
	defer cs.Stop()

	cs.SetInterval(5 * time.Millisecond)
	if cs.Interval() != 5*time.Millisecond {
		t.Errorf("Expected 5ms interval, got %v", cs.Interval())
	}
	waitTick(t, cs, time.Second)
}

func TestClockSchedulerIsTickSource(t *testing.T) {
	var _ TickSource = NewClockScheduler(time.Second)
}
