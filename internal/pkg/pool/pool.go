// Package pool is a fixed-size worker pool for the agent's background
// work: panel refresh cascades and offline-queue replays.
package pool

import "sync"

type Pool struct {
	jobs chan func()
	wg   sync.WaitGroup
}

func New(n int) *Pool {
	if n < 1 {
		n = 1
	}
	p := &Pool{
		jobs: make(chan func(), n*2),
	}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for f := range p.jobs {
				if f != nil {
					f()
				}
			}
		}()
	}
	return p
}

// Submit queues f without waiting for it.
func (p *Pool) Submit(f func()) {
	p.jobs <- f
}

// Do queues f and waits for its result. Used where completion order
// matters, e.g. the queue flusher acking spool entries oldest-first.
func (p *Pool) Do(f func() error) error {
	done := make(chan error, 1)
	p.jobs <- func() { done <- f() }
	return <-done
}

func (p *Pool) Close() {
	close(p.jobs)
}

func (p *Pool) Wait() {
	p.wg.Wait()
}
