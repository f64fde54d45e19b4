// Package supervisor runs the balance sampler and the status bar renderer as
// two periodic tasks sharing one stop signal.
package supervisor

import (
	"context"
	"errors"
	"time"

	"wallet-monitor/services/balance"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Sampler interface {
	Baseline(ctx context.Context)
	RunCycle(ctx context.Context) []balance.BalanceChanged
}

type Renderer interface {
	Tick(ctx context.Context) string
}

type Supervisor struct {
	sampler         Sampler
	renderer        Renderer
	pollInterval    time.Duration
	refreshInterval time.Duration
	logger          *zap.SugaredLogger
}

// NewSupervisor builds a supervisor. A nil renderer disables the status bar
// loop.
func NewSupervisor(sampler Sampler, renderer Renderer, pollInterval, refreshInterval time.Duration, logger *zap.SugaredLogger) (*Supervisor, error) {
	if sampler == nil {
		return nil, errors.New("[supervisor] invalid sampler")
	}
	if pollInterval <= 0 {
		return nil, errors.New("[supervisor] invalid poll interval")
	}
	if renderer != nil && refreshInterval <= 0 {
		return nil, errors.New("[supervisor] invalid refresh interval")
	}
	if logger == nil {
		return nil, errors.New("[supervisor] invalid logger")
	}

	return &Supervisor{
		sampler:         sampler,
		renderer:        renderer,
		pollInterval:    pollInterval,
		refreshInterval: refreshInterval,
		logger:          logger,
	}, nil
}

// Run establishes the baseline and then runs both loops until ctx is
// cancelled. Cancellation is observed between iterations only: an iteration
// in progress runs to completion. Run returns once both loops have exited.
func (s *Supervisor) Run(ctx context.Context) error {
	if ctx.Err() != nil {
		return nil
	}

	s.sampler.Baseline(context.WithoutCancel(ctx))
	s.logger.Info("baseline established")

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		// the baseline already counts as the first cycle
		if !sleep(ctx, s.pollInterval) {
			return nil
		}
		s.loop(ctx, "balance sampler", s.pollInterval, func(ctx context.Context) {
			changes := s.sampler.RunCycle(ctx)
			s.logger.Debugf("balance cycle finished with %d changes", len(changes))
		})
		return nil
	})

	if s.renderer != nil {
		g.Go(func() error {
			s.loop(ctx, "status bar", s.refreshInterval, func(ctx context.Context) {
				s.renderer.Tick(ctx)
			})
			return nil
		})
	}

	return g.Wait()
}

func (s *Supervisor) loop(ctx context.Context, name string, interval time.Duration, work func(ctx context.Context)) {
	s.logger.Infof("%s started, interval %s", name, interval)
	defer s.logger.Infof("%s stopped", name)

	for {
		if ctx.Err() != nil {
			return
		}

		work(context.WithoutCancel(ctx))

		if !sleep(ctx, interval) {
			return
		}
	}
}

// sleep waits for d and reports false if ctx was cancelled first.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
