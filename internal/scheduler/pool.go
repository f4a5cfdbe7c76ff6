package scheduler

import (
	"context"
	"sync"
)

// Pool is a fixed-size set of long-lived workers shared by every cycle.
// Spawning workers once and reusing them keeps short check intervals
// from paying goroutine churn every few seconds.
type Pool struct {
	jobs      chan func()
	workers   sync.WaitGroup
	closeOnce sync.Once
}

func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}
	p := &Pool{jobs: make(chan func())}
	p.workers.Add(size)
	for i := 0; i < size; i++ {
		go func() {
			defer p.workers.Done()
			for job := range p.jobs {
				job()
			}
		}()
	}
	return p
}

// RunBatch submits every job and blocks until the whole batch finishes
// or ctx is cancelled, whichever comes first. On cancellation the
// remaining jobs are never submitted and the wait returns immediately;
// jobs already picked up by a worker run to completion on their own.
//
// RunBatch must not race with Close; the monitor serializes them.
func (p *Pool) RunBatch(ctx context.Context, jobs []func()) error {
	var batch sync.WaitGroup

	for _, job := range jobs {
		job := job
		batch.Add(1)
		wrapped := func() {
			defer batch.Done()
			job()
		}
		select {
		case p.jobs <- wrapped:
		case <-ctx.Done():
			batch.Done() // this job was never handed to a worker
			return ctx.Err()
		}
	}

	done := make(chan struct{})
	go func() {
		batch.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops the workers once the jobs already in flight finish. Those
// jobs are bounded by the per-request timeout, so Close does not hang on
// timed-out work. Safe to call more than once.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.jobs)
	})
	p.workers.Wait()
}
