// Package timer provides the game clock: a queue of one-shot and periodic
// callbacks that fire cooperatively, in due-time order, as the clock is
// advanced. Nothing runs concurrently; the owner decides when time passes.
//
// A Queue is not safe for concurrent use. The session serializes access.
package timer

import (
	"container/heap"
	"time"
)

// Timer is a handle to a scheduled callback.
type Timer struct {
	due     time.Duration
	period  time.Duration
	seq     uint64
	fn      func()
	stopped bool
	index   int
}

// Stop cancels the timer. It is safe to call more than once and from
// inside any callback, including the timer's own.
func (t *Timer) Stop() {
	if t != nil {
		t.stopped = true
	}
}

// Queue holds pending timers ordered by due time.
type Queue struct {
	now   time.Duration
	seq   uint64
	items timerHeap
}

// NewQueue creates an empty queue at time zero.
func NewQueue() *Queue {
	return &Queue{}
}

// Now returns the current clock time since the queue was created.
func (q *Queue) Now() time.Duration {
	return q.now
}

// Len returns the number of live timers.
func (q *Queue) Len() int {
	n := 0
	for _, t := range q.items {
		if !t.stopped {
			n++
		}
	}
	return n
}

// After schedules fn to run once, d from now.
func (q *Queue) After(d time.Duration, fn func()) *Timer {
	return q.push(d, 0, fn)
}

// Every schedules fn to run every period, first one period from now.
// Non-positive periods are treated as one nanosecond.
func (q *Queue) Every(period time.Duration, fn func()) *Timer {
	if period <= 0 {
		period = time.Nanosecond
	}
	return q.push(period, period, fn)
}

func (q *Queue) push(d, period time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	q.seq++
	t := &Timer{due: q.now + d, period: period, seq: q.seq, fn: fn}
	heap.Push(&q.items, t)
	return t
}

// Advance moves the clock forward by dt and fires every timer that comes
// due, each at its own due time. Callbacks may schedule or stop timers;
// timers scheduled during Advance fire in the same call if they come due
// before the target time.
func (q *Queue) Advance(dt time.Duration) {
	if dt < 0 {
		return
	}
	target := q.now + dt
	for len(q.items) > 0 {
		t := q.items[0]
		if t.stopped {
			heap.Pop(&q.items)
			continue
		}
		if t.due > target {
			break
		}
		q.now = t.due
		if t.period > 0 {
			q.seq++
			t.due += t.period
			t.seq = q.seq
			heap.Fix(&q.items, 0)
		} else {
			heap.Pop(&q.items)
			t.stopped = true
		}
		t.fn()
	}
	q.now = target
}

// StopAll cancels every pending timer.
func (q *Queue) StopAll() {
	for _, t := range q.items {
		t.stopped = true
	}
	q.items = q.items[:0]
}

type timerHeap []*Timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].due != h[j].due {
		return h[i].due < h[j].due
	}
	return h[i].seq < h[j].seq
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*Timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	t.index = -1
	return t
}
