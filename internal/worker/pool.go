package worker

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hostelhub/hostel-backend/internal/metrics"
)

// Job is one unit of background work. Retries is the number of additional
// attempts after the first; Backoff is the fixed delay between attempts.
// The retry state (attempt counter, reschedule timer) lives in the pool,
// not in the job function.
type Job struct {
	Name    string
	Retries int
	Backoff time.Duration
	Run     func() error
	OnDrop  func(err error)

	attempt int
}

type Pool struct {
	jobs   chan Job
	quit   chan struct{}
	wg     sync.WaitGroup
	log    *slog.Logger
	closed atomic.Bool
}

func NewPool(n int, log *slog.Logger) *Pool {
	if n < 1 {
		n = 1
	}
	p := &Pool{
		jobs: make(chan Job, 1024),
		quit: make(chan struct{}),
		log:  log,
	}
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-p.quit:
					return
				case j := <-p.jobs:
					metrics.WorkerQueueDepth.Set(float64(len(p.jobs)))
					p.runJob(j)
				}
			}
		}()
	}
	return p
}

// Submit enqueues fire-and-forget work with no retry.
func (p *Pool) Submit(f func()) bool {
	return p.Enqueue(Job{Name: "task", Run: func() error { f(); return nil }})
}

// Enqueue adds a job without blocking. It returns false when the pool is
// stopped or the queue is full; the caller decides whether that is a drop.
func (p *Pool) Enqueue(j Job) bool {
	if p.closed.Load() {
		return false
	}
	select {
	case p.jobs <- j:
		metrics.WorkerQueueDepth.Set(float64(len(p.jobs)))
		return true
	default:
		return false
	}
}

func (p *Pool) runJob(j Job) {
	defer func() {
		if rec := recover(); rec != nil {
			p.log.Error("worker job panic", "job", j.Name, "panic", rec)
		}
	}()

	err := j.Run()
	if err == nil {
		return
	}

	if j.attempt < j.Retries {
		next := j
		next.attempt++
		metrics.WorkerRetriesTotal.Inc()
		p.log.Warn("worker job failed, retrying",
			"job", j.Name, "attempt", next.attempt, "max", j.Retries, "backoff", j.Backoff, "err", err)
		time.AfterFunc(j.Backoff, func() {
			if !p.Enqueue(next) {
				p.drop(next, err)
			}
		})
		return
	}
	p.drop(j, err)
}

func (p *Pool) drop(j Job, err error) {
	p.log.Error("worker job dropped", "job", j.Name, "attempts", j.attempt+1, "err", err)
	if j.OnDrop != nil {
		j.OnDrop(err)
	}
}

// Stop rejects new work and waits for the workers to exit. Jobs still queued
// or waiting on a retry timer are abandoned.
func (p *Pool) Stop() {
	if p.closed.Swap(true) {
		return
	}
	close(p.quit)
	p.wg.Wait()
}

// QueueDepth reports the number of jobs waiting to be picked up.
func (p *Pool) QueueDepth() int { return len(p.jobs) }
