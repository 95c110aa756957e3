// internal/system/scheduler.go
package system

import (
	"container/heap"
	"time"
)

// Scheduler — очередь отложенных задач на логических часах симуляции.
// Задачи не отменяются: при смене поколения (новый раунд) устаревшие просто не выполняются.
type Scheduler struct {
	now        time.Duration
	generation uint64
	seq        uint64
	queue      taskQueue
}

type scheduledTask struct {
	due        time.Duration
	seq        uint64
	generation uint64
	fn         func()
}

type taskQueue []*scheduledTask

func (q taskQueue) Len() int { return len(q) }
func (q taskQueue) Less(i, j int) bool {
	if q[i].due == q[j].due {
		return q[i].seq < q[j].seq
	}
	return q[i].due < q[j].due
}
func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *taskQueue) Push(x any)   { *q = append(*q, x.(*scheduledTask)) }
func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After ставит задачу через d от текущего момента в текущем поколении
func (s *Scheduler) After(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	s.seq++
	heap.Push(&s.queue, &scheduledTask{
		due:        s.now + d,
		seq:        s.seq,
		generation: s.generation,
		fn:         fn,
	})
}

// Advance двигает часы и выполняет созревшие задачи по порядку.
// Задачи, поставленные во время выполнения и уже созревшие, выполняются в этом же вызове.
func (s *Scheduler) Advance(dt time.Duration) {
	s.now += dt
	for s.queue.Len() > 0 && s.queue[0].due <= s.now {
		t := heap.Pop(&s.queue).(*scheduledTask)
		if t.generation != s.generation {
			continue
		}
		t.fn()
	}
}

// NextGeneration делает все поставленные задачи устаревшими
func (s *Scheduler) NextGeneration() {
	s.generation++
}

// Pending — число задач в очереди, включая устаревшие
func (s *Scheduler) Pending() int { return s.queue.Len() }
