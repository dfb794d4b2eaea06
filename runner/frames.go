package runner

import (
	"sync"
	"time"
)

// FrameQueue is a Loop driven by an external ticker. Hosts call Tick once per
// display frame: posted funcs run first, then every frame requested before
// the tick, each with the time since the queue started.
type FrameQueue struct {
	mu     sync.Mutex
	start  time.Time
	next   FrameID
	frames map[FrameID]func(time.Duration)
	posted []func()
}

func NewFrameQueue(start time.Time) *FrameQueue {
	return &FrameQueue{
		start:  start,
		frames: make(map[FrameID]func(time.Duration)),
	}
}

func (q *FrameQueue) RequestFrame(fn func(time.Duration)) FrameID {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.next++
	q.frames[q.next] = fn
	return q.next
}

func (q *FrameQueue) CancelFrame(id FrameID) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.frames, id)
}

func (q *FrameQueue) Post(fn func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.posted = append(q.posted, fn)
}

// Pending reports how many frames are waiting for the next tick.
func (q *FrameQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.frames)
}

// Tick must be called from the goroutine that owns the games using q.
func (q *FrameQueue) Tick(now time.Time) {
	q.mu.Lock()
	posted := q.posted
	q.posted = nil
	q.mu.Unlock()
	for _, fn := range posted {
		fn()
	}

	q.mu.Lock()
	frames := q.frames
	q.frames = make(map[FrameID]func(time.Duration))
	q.mu.Unlock()

	ts := now.Sub(q.start)
	for _, fn := range frames {
		fn(ts)
	}
}
