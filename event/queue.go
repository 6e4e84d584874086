package event

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-runner/parameter"
)

// EventQueue is a bounded lock-free MPSC ring of events
//
// Producers (the key poller, script replay, the controller's presentation sink)
// push from any goroutine; the tick loop is the only consumer. A slot becomes
// visible to Consume only after its ready flag is set, so a half-written event
// is left for the next tick instead of being read torn.
//
// When the ring is full the oldest unread event is overwritten. Once closed,
// Push drops events and counts them; a run's command inbox is closed at game over
type EventQueue struct {
	slots [parameter.EventQueueSize]GameEvent
	ready [parameter.EventQueueSize]atomic.Bool

	read  atomic.Uint64
	write atomic.Uint64

	closed  atomic.Bool
	dropped atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push reserves the next slot, writes it and marks it ready
func (q *EventQueue) Push(ev GameEvent) {
	if q.closed.Load() {
		q.dropped.Add(1)
		return
	}

	var slot uint64
	for {
		slot = q.write.Load()
		if q.write.CompareAndSwap(slot, slot+1) {
			break
		}
	}

	i := slot & parameter.EventBufferMask
	q.slots[i] = ev
	q.ready[i].Store(true)

	// Lapped the reader: skip it past the overwritten slot
	if read := q.read.Load(); slot+1-read > parameter.EventQueueSize {
		if q.read.CompareAndSwap(read, slot+1-parameter.EventQueueSize) {
			q.dropped.Add(1)
		}
	}
}

// Consume returns every ready event in push order
func (q *EventQueue) Consume() []GameEvent {
	for {
		read := q.read.Load()
		write := q.write.Load()
		if write == read {
			return nil
		}

		n := write - read
		if n > parameter.EventQueueSize {
			read = write - parameter.EventQueueSize
			n = parameter.EventQueueSize
		}

		out := make([]GameEvent, 0, n)
		for k := uint64(0); k < n; k++ {
			i := (read + k) & parameter.EventBufferMask
			if !q.ready[i].Load() {
				break
			}
			out = append(out, q.slots[i])
			q.ready[i].Store(false)
		}

		if q.read.CompareAndSwap(read, read+uint64(len(out))) {
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}

// Drain discards all pending events, returns how many were dropped
func (q *EventQueue) Drain() int {
	return len(q.Consume())
}

// Close stops accepting events and discards what is pending
// Returns the number of pending events discarded
func (q *EventQueue) Close() int {
	if !q.closed.CompareAndSwap(false, true) {
		return 0
	}
	return q.Drain()
}

// Closed reports whether Close has been called
func (q *EventQueue) Closed() bool {
	return q.closed.Load()
}

// Dropped counts events lost to overflow or pushed after Close
func (q *EventQueue) Dropped() uint64 {
	return q.dropped.Load()
}

// Len returns approximate pending event count
func (q *EventQueue) Len() int {
	read, write := q.read.Load(), q.write.Load()
	if write <= read {
		return 0
	}
	if n := write - read; n < parameter.EventQueueSize {
		return int(n)
	}
	return parameter.EventQueueSize
}
