package engine

import (
	"slices"
	"time"

	"github.com/lixenwraith/snake/components"
)

// Deferred is a pending effect reset
type Deferred struct {
	Name     string
	Kind     components.EffectKind
	Deadline time.Time
}

// DeferredQueue holds cancellable deferred actions keyed by name
// At most one action per name is pending; scheduling a name again replaces the previous one
type DeferredQueue struct {
	entries map[string]Deferred
}

// NewDeferredQueue creates an empty queue
func NewDeferredQueue() *DeferredQueue {
	return &DeferredQueue{entries: make(map[string]Deferred)}
}

// Schedule registers d, returns true when it replaced a pending action of the same name
func (q *DeferredQueue) Schedule(d Deferred) bool {
	_, replaced := q.entries[d.Name]
	q.entries[d.Name] = d
	return replaced
}

// Cancel drops the pending action for name
func (q *DeferredQueue) Cancel(name string) bool {
	if _, ok := q.entries[name]; !ok {
		return false
	}
	delete(q.entries, name)
	return true
}

// CancelAll drops every pending action and returns how many were dropped
func (q *DeferredQueue) CancelAll() int {
	n := len(q.entries)
	clear(q.entries)
	return n
}

// Due removes and returns the actions whose deadline is not after now, earliest first
func (q *DeferredQueue) Due(now time.Time) []Deferred {
	var due []Deferred
	for name, d := range q.entries {
		if !d.Deadline.After(now) {
			due = append(due, d)
			delete(q.entries, name)
		}
	}

	slices.SortFunc(due, func(a, b Deferred) int {
		if c := a.Deadline.Compare(b.Deadline); c != 0 {
			return c
		}
		return int(a.Kind) - int(b.Kind)
	})
	return due
}

// Pending returns the action registered for name
func (q *DeferredQueue) Pending(name string) (Deferred, bool) {
	d, ok := q.entries[name]
	return d, ok
}

// Len returns the number of pending actions
func (q *DeferredQueue) Len() int {
	return len(q.entries)
}
