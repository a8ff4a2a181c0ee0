package job

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

// ErrSkipped is returned by a job run that decided not to do anything this tick.
var ErrSkipped = errors.New("job skipped")

type job struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
}

// Scheduler runs registered jobs immediately and then on their interval until ctx is done.
type Scheduler struct {
	jobs []job
	wg   *sync.WaitGroup
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		wg: &sync.WaitGroup{},
	}
}

func (s *Scheduler) RegisterJob(name string, interval time.Duration, fn func(ctx context.Context) error) *Scheduler {
	return s.TryRegisterJob(true, name, interval, fn)
}

func (s *Scheduler) TryRegisterJob(isEnabled bool, name string, interval time.Duration, fn func(ctx context.Context) error) *Scheduler {
	if !isEnabled {
		slog.Info("job disabled", "job", name)
		return s
	}

	s.jobs = append(s.jobs, job{
		name:     name,
		interval: interval,
		fn:       fn,
	})

	return s
}

func (s *Scheduler) Start(ctx context.Context) {
	for _, v := range s.jobs {
		s.wg.Add(1)

		go s.startJob(ctx, v)
	}
}

func (s *Scheduler) startJob(ctx context.Context, j job) {
	defer s.wg.Done()

	l := slog.Default().With("job", j.name)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		l.Debug("job started")

		err := s.withRecover(ctx, j)

		switch {
		case errors.Is(err, ErrSkipped):
			l.Info("job skipped", "reason", err)
		case err != nil:
			l.Error("job failed", "error", err)
		default:
			l.Debug("job done")
		}

		select {
		case <-ctx.Done():
			l.Debug("context done")
			return

		case <-ticker.C:
		}
	}
}

func (s *Scheduler) withRecover(ctx context.Context, j job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job panic: %v\n%s", r, debug.Stack())
		}
	}()

	return j.fn(ctx)
}

// Wait blocks until every job loop has returned.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}
