// Package schedule provides a cooperative, tick-driven scheduler for timed
// activities. Time is virtual: it only moves when the host calls Advance
// once per frame, so delayed and repeating callbacks run on the update
// goroutine with no locking.
package schedule

import (
	"container/heap"
	"time"
)

// Token identifies a scheduled activity. The zero Token is never issued.
type Token uint64

type task struct {
	id     Token
	due    time.Duration
	period time.Duration // 0 for one-shot
	seq    uint64
	fn     func()
	index  int
}

// Scheduler runs delayed and repeating callbacks against a virtual clock.
type Scheduler struct {
	now    time.Duration
	dt     time.Duration
	nextID Token
	seq    uint64
	queue  taskQueue
	tasks  map[Token]*task
}

// New creates a scheduler at time zero.
func New() *Scheduler {
	return &Scheduler{
		nextID: 1,
		tasks:  make(map[Token]*task),
	}
}

// Now returns the virtual time elapsed since creation.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// DeltaTime returns the length of the last Advance in seconds.
func (s *Scheduler) DeltaTime() float64 {
	return s.dt.Seconds()
}

// Pending returns the number of scheduled activities.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Active reports whether tok is still scheduled.
func (s *Scheduler) Active(tok Token) bool {
	_, ok := s.tasks[tok]
	return ok
}

// After runs fn once, d after the current time.
func (s *Scheduler) After(d time.Duration, fn func()) Token {
	if d < 0 {
		d = 0
	}
	return s.add(d, 0, fn)
}

// Every runs fn every d, first at now+d. It panics if d is not positive.
func (s *Scheduler) Every(d time.Duration, fn func()) Token {
	if d <= 0 {
		panic("schedule: non-positive interval for Every")
	}
	return s.add(d, d, fn)
}

func (s *Scheduler) add(delay, period time.Duration, fn func()) Token {
	t := &task{
		id:     s.nextID,
		due:    s.now + delay,
		period: period,
		fn:     fn,
	}
	s.nextID++
	s.push(t)
	s.tasks[t.id] = t
	return t.id
}

func (s *Scheduler) push(t *task) {
	t.seq = s.seq
	s.seq++
	heap.Push(&s.queue, t)
}

// Cancel removes tok immediately. Unknown, finished and already cancelled
// tokens are ignored. It is safe to call from inside a callback.
func (s *Scheduler) Cancel(tok Token) {
	t, ok := s.tasks[tok]
	if !ok {
		return
	}
	delete(s.tasks, tok)
	if t.index >= 0 {
		heap.Remove(&s.queue, t.index)
	}
}

// Advance moves the clock forward by dt and runs every callback that falls
// due, in due-time order. A repeating activity that fell behind runs once
// per missed period.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	s.dt = dt
	target := s.now + dt
	for s.queue.Len() > 0 {
		t := s.queue[0]
		if t.due > target {
			break
		}
		heap.Pop(&s.queue)
		s.now = t.due
		if t.period > 0 {
			t.due += t.period
			s.push(t)
		} else {
			delete(s.tasks, t.id)
		}
		t.fn()
	}
	s.now = target
}

// Reset cancels everything and rewinds the clock.
func (s *Scheduler) Reset() {
	s.now = 0
	s.dt = 0
	s.queue = nil
	s.tasks = make(map[Token]*task)
}

type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
