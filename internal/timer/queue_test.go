package timer

import (
	"reflect"
	"testing"
	"time"
)

func TestAfterFiresOnce(t *testing.T) {
	q := NewQueue()
	calls := 0
	tm := q.After(100*time.Millisecond, func() { calls++ })

	q.Advance(99 * time.Millisecond)
	if calls != 0 {
		t.Fatalf("fired early")
	}
	q.Advance(time.Millisecond)
	if calls != 1 {
		t.Fatalf("calls = %d, expected 1", calls)
	}
	q.Advance(time.Second)
	if calls != 1 {
		t.Errorf("one-shot fired %d times", calls)
	}
	if !tm.stopped {
		t.Error("fired one-shot should report Stopped")
	}
}

func TestEveryCatchesUp(t *testing.T) {
	q := NewQueue()
	var at []time.Duration
	q.Every(250*time.Millisecond, func() { at = append(at, q.Now()) })

	q.Advance(time.Second)
	want := []time.Duration{250 * time.Millisecond, 500 * time.Millisecond, 750 * time.Millisecond, time.Second}
	if !reflect.DeepEqual(at, want) {
		t.Errorf("fired at %v, expected %v", at, want)
	}
	if q.Now() != time.Second {
		t.Errorf("Now() = %v, expected 1s", q.Now())
	}
}

func TestDueOrderAndTies(t *testing.T) {
	q := NewQueue()
	var order []string
	q.After(20*time.Millisecond, func() { order = append(order, "b") })
	q.After(10*time.Millisecond, func() { order = append(order, "a") })
	q.After(20*time.Millisecond, func() { order = append(order, "c") })

	q.Advance(50 * time.Millisecond)
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, expected %v", order, want)
	}
}

func TestStopFromCallback(t *testing.T) {
	q := NewQueue()
	calls := 0
	var tm *Timer
	tm = q.Every(10*time.Millisecond, func() {
		calls++
		if calls == 3 {
			tm.Stop()
		}
	})

	q.Advance(time.Second)
	if calls != 3 {
		t.Errorf("calls = %d, expected 3", calls)
	}
	if q.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", q.Len())
	}
}

func TestStopOtherTimerBeforeItFires(t *testing.T) {
	q := NewQueue()
	fired := false
	victim := q.After(20*time.Millisecond, func() { fired = true })
	q.After(10*time.Millisecond, func() { victim.Stop() })

	q.Advance(time.Second)
	if fired {
		t.Error("stopped timer fired")
	}
}

func TestScheduleDuringAdvance(t *testing.T) {
	q := NewQueue()
	var at []time.Duration
	q.After(10*time.Millisecond, func() {
		q.After(15*time.Millisecond, func() { at = append(at, q.Now()) })
	})

	q.Advance(100 * time.Millisecond)
	if want := []time.Duration{25 * time.Millisecond}; !reflect.DeepEqual(at, want) {
		t.Errorf("nested timer fired at %v, expected %v", at, want)
	}
}

func TestStopAll(t *testing.T) {
	q := NewQueue()
	calls := 0
	q.Every(time.Millisecond, func() { calls++ })
	q.After(time.Millisecond, func() { calls++ })
	q.StopAll()

	q.Advance(time.Second)
	if calls != 0 {
		t.Errorf("calls = %d after StopAll", calls)
	}
}
