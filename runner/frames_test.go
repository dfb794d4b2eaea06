package runner

import (
	"testing"
	"time"
)

func TestFrameQueue(t *testing.T) {
	start := time.Unix(100, 0)
	q := NewFrameQueue(start)

	var order []string
	var got []time.Duration
	q.Post(func() { order = append(order, "posted") })
	q.RequestFrame(func(ts time.Duration) {
		order = append(order, "frame")
		got = append(got, ts)
		q.RequestFrame(func(ts time.Duration) { got = append(got, ts) })
	})
	cancelled := q.RequestFrame(func(time.Duration) { t.Fatal("cancelled frame ran") })
	q.CancelFrame(cancelled)

	q.Tick(start.Add(16 * time.Millisecond))
	if len(order) != 2 || order[0] != "posted" || order[1] != "frame" {
		t.Fatalf("order = %q", order)
	}
	if q.Pending() != 1 {
		t.Fatalf("frame requested during tick ran early; pending = %d", q.Pending())
	}

	q.Tick(start.Add(32 * time.Millisecond))
	want := []time.Duration{16 * time.Millisecond, 32 * time.Millisecond}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("timestamps = %v, want %v", got, want)
	}
	if q.Pending() != 0 {
		t.Fatalf("pending = %d after all frames ran", q.Pending())
	}
}
