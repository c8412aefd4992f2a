package engine

import (
	"testing"
	"time"
)

func TestPausableClock(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	clock := NewPausableClock(mock)

	mock.Advance(time.Second)
	if want := start.Add(time.Second); !clock.Now().Equal(want) {
		t.Errorf("Expected %v, got %v", want, clock.Now())
	}

	clock.Pause()
	if !clock.IsPaused() {
		t.Fatal("Expected clock to be paused")
	}
	frozen := clock.Now()
	mock.Advance(3 * time.Second)
	if !clock.Now().Equal(frozen) {
		t.Errorf("Expected frozen time %v while paused, got %v", frozen, clock.Now())
	}
	if got := clock.TotalPauseDuration(); got != 3*time.Second {
		t.Errorf("Expected 3s pause in progress, got %v", got)
	}

	clock.Resume()
	if !clock.Now().Equal(frozen) {
		t.Errorf("Expected resume to continue from %v, got %v", frozen, clock.Now())
	}

	mock.Advance(time.Second)
	if want := frozen.Add(time.Second); !clock.Now().Equal(want) {
		t.Errorf("Expected %v after resume, got %v", want, clock.Now())
	}
}

func TestPausableClockIdempotent(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewPausableClock(mock)

	clock.Resume()
	if clock.TotalPauseDuration() != 0 {
		t.Error("Expected resume without pause to be a no-op")
	}

	clock.Pause()
	mock.Advance(time.Second)
	clock.Pause()
	mock.Advance(time.Second)
	clock.Resume()

	if got := clock.TotalPauseDuration(); got != 2*time.Second {
		t.Errorf("Expected second Pause to be ignored, total %v", got)
	}
}
