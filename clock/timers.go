package clock

import "sort"

// TimerID identifies a scheduled callback
type TimerID uint64

type timer struct {
	id  TimerID
	due float64
	fn  func()
}

// Timers fires callbacks once their delay has elapsed in tick time
// Not safe for concurrent use; owned by the tick loop
type Timers struct {
	now     float64
	nextID  TimerID
	pending []timer // sorted by due, then id
}

// After schedules fn to run once delay seconds of tick time have passed
func (t *Timers) After(delay float64, fn func()) TimerID {
	t.nextID++
	tm := timer{id: t.nextID, due: t.now + delay, fn: fn}
	i := sort.Search(len(t.pending), func(i int) bool {
		return t.pending[i].due > tm.due
	})
	t.pending = append(t.pending, timer{})
	copy(t.pending[i+1:], t.pending[i:])
	t.pending[i] = tm
	return tm.id
}

// Advance moves tick time forward and runs every callback that became due, in due order
// Callbacks may schedule new timers; those fire in this call only if already due
func (t *Timers) Advance(dt float64) {
	t.now += dt
	for len(t.pending) > 0 && t.pending[0].due <= t.now {
		tm := t.pending[0]
		t.pending = t.pending[1:]
		tm.fn()
	}
}

// Cancel removes a pending timer, returns false if it already fired or never existed
func (t *Timers) Cancel(id TimerID) bool {
	for i, tm := range t.pending {
		if tm.id == id {
			t.pending = append(t.pending[:i], t.pending[i+1:]...)
			return true
		}
	}
	return false
}

// Clear drops every pending timer without running it
func (t *Timers) Clear() {
	t.pending = nil
}

// Pending returns the number of scheduled timers
func (t *Timers) Pending() int {
	return len(t.pending)
}

// Remaining returns seconds until id fires
func (t *Timers) Remaining(id TimerID) (float64, bool) {
	for _, tm := range t.pending {
		if tm.id == id {
			return tm.due - t.now, true
		}
	}
	return 0, false
}
