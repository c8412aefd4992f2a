package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/snake/core"
)

// TickSource drives the game loop, the game starts, stops and retimes it
type TickSource interface {
	Start()
	Stop()
	SetInterval(d time.Duration)
}

// ClockScheduler emits game ticks on a fixed, adjustable interval
// Ticks are delivered on a one-slot channel; a tick the consumer has not taken yet is not duplicated
type ClockScheduler struct {
	mu       sync.Mutex
	interval time.Duration

	ticks     chan time.Time
	resetChan chan time.Duration
	stopChan  chan struct{}
	wg        sync.WaitGroup
	running   atomic.Bool

	// Tick counter for debugging
	tickCount atomic.Uint64
}

// NewClockScheduler creates a stopped scheduler with the given tick interval
func NewClockScheduler(interval time.Duration) *ClockScheduler {
	return &ClockScheduler{
		interval:  interval,
		ticks:     make(chan time.Time, 1),
		resetChan: make(chan time.Duration, 1),
	}
}

// C returns the tick channel, stable across restarts
func (cs *ClockScheduler) C() <-chan time.Time {
	return cs.ticks
}

// Start begins emitting ticks, no-op when already running
func (cs *ClockScheduler) Start() {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if !cs.running.CompareAndSwap(false, true) {
		return
	}

	cs.stopChan = make(chan struct{})
	stop := cs.stopChan
	interval := cs.interval

	cs.wg.Add(1)
	core.Go(func() { cs.schedulerLoop(stop, interval) })
}

// Stop halts tick emission and discards a tick not yet consumed
func (cs *ClockScheduler) Stop() {
	cs.mu.Lock()
	if !cs.running.CompareAndSwap(true, false) {
		cs.mu.Unlock()
		return
	}
	close(cs.stopChan)
	cs.mu.Unlock()

	cs.wg.Wait()

	// Stale tick from before the stop must not reach a reset game
	select {
	case <-cs.ticks:
	default:
	}
	select {
	case <-cs.resetChan:
	default:
	}
}

// SetInterval changes the tick interval, applied from the next tick on
func (cs *ClockScheduler) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.interval == d {
		return
	}
	cs.interval = d

	if !cs.running.Load() {
		return
	}

	// Replace any pending, unapplied interval
	select {
	case <-cs.resetChan:
	default:
	}
	cs.resetChan <- d
}

// Interval returns the configured tick interval
func (cs *ClockScheduler) Interval() time.Duration {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.interval
}

// Running reports whether ticks are being emitted
func (cs *ClockScheduler) Running() bool {
	return cs.running.Load()
}

// TickCount returns the number of ticks delivered since creation
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// schedulerLoop runs until stop is closed
func (cs *ClockScheduler) schedulerLoop(stop <-chan struct{}, interval time.Duration) {
	defer cs.wg.Done()

	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		select {
		case <-stop:
			return

		case d := <-cs.resetChan:
			interval = d
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(interval)

		case now := <-timer.C:
			select {
			case cs.ticks <- now:
				cs.tickCount.Add(1)
			default:
				// Consumer is behind, drop this tick
			}
			timer.Reset(interval)
		}
	}
}
