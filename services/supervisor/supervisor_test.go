package supervisor_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"wallet-monitor/services/balance"
	"wallet-monitor/services/supervisor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recorder struct {
	mx     sync.Mutex
	events []string
}

func (r *recorder) add(e string) {
	r.mx.Lock()
	defer r.mx.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) snapshot() []string {
	r.mx.Lock()
	defer r.mx.Unlock()
	return append([]string(nil), r.events...)
}

type fakeSampler struct {
	rec       *recorder
	cycles    atomic.Int32
	cycleTime time.Duration
	ctxErr    atomic.Value
}

func (s *fakeSampler) Baseline(ctx context.Context) {
	s.rec.add("baseline")
}

func (s *fakeSampler) RunCycle(ctx context.Context) []balance.BalanceChanged {
	s.rec.add("cycle")
	time.Sleep(s.cycleTime)
	if ctx.Err() != nil {
		s.ctxErr.Store(ctx.Err())
	}
	s.cycles.Add(1)
	return nil
}

type fakeRenderer struct {
	rec   *recorder
	ticks atomic.Int32
}

func (r *fakeRenderer) Tick(context.Context) string {
	r.rec.add("tick")
	r.ticks.Add(1)
	return ""
}

func TestNewSupervisor(t *testing.T) {
	logger := zap.NewNop().Sugar()
	sampler := &fakeSampler{rec: &recorder{}}
	renderer := &fakeRenderer{rec: &recorder{}}

	tests := []struct {
		name     string
		sampler  supervisor.Sampler
		renderer supervisor.Renderer
		poll     time.Duration
		refresh  time.Duration
		logger   *zap.SugaredLogger
		err      string
	}{
		{name: "should return supervisor", sampler: sampler, renderer: renderer, poll: time.Second, refresh: time.Second, logger: logger},
		{name: "should allow missing renderer", sampler: sampler, poll: time.Second, logger: logger},
		{name: "invalid sampler", renderer: renderer, poll: time.Second, refresh: time.Second, logger: logger, err: "[supervisor] invalid sampler"},
		{name: "invalid poll interval", sampler: sampler, renderer: renderer, refresh: time.Second, logger: logger, err: "[supervisor] invalid poll interval"},
		{name: "invalid refresh interval", sampler: sampler, renderer: renderer, poll: time.Second, logger: logger, err: "[supervisor] invalid refresh interval"},
		{name: "invalid logger", sampler: sampler, renderer: renderer, poll: time.Second, refresh: time.Second, err: "[supervisor] invalid logger"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := supervisor.NewSupervisor(tc.sampler, tc.renderer, tc.poll, tc.refresh, tc.logger)
			if tc.err != "" {
				assert.Nil(t, s)
				assert.EqualError(t, err, tc.err)
				return
			}
			assert.NotNil(t, s)
			assert.NoError(t, err)
		})
	}
}

func TestSupervisor_Run(t *testing.T) {
	rec := &recorder{}
	sampler := &fakeSampler{rec: rec}
	renderer := &fakeRenderer{rec: rec}

	s, err := supervisor.NewSupervisor(sampler, renderer, 20*time.Millisecond, 10*time.Millisecond, zap.NewNop().Sugar())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- s.Run(ctx) }()

	assert.Eventually(t, func() bool {
		return sampler.cycles.Load() >= 2 && renderer.ticks.Load() >= 2
	}, 2*time.Second, 5*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("supervisor did not stop")
	}

	events := rec.snapshot()
	require.NotEmpty(t, events)
	assert.Equal(t, "baseline", events[0])
	// the renderer starts immediately, the sampler waits one interval
	assert.Equal(t, "tick", events[1])

	// no work after Run returned
	cycles, ticks := sampler.cycles.Load(), renderer.ticks.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, cycles, sampler.cycles.Load())
	assert.Equal(t, ticks, renderer.ticks.Load())
}

func TestSupervisor_CurrentIterationFinishes(t *testing.T) {
	rec := &recorder{}
	sampler := &fakeSampler{rec: rec, cycleTime: 100 * time.Millisecond}

	s, err := supervisor.NewSupervisor(sampler, nil, 10*time.Millisecond, 0, zap.NewNop().Sugar())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- s.Run(ctx) }()

	// wait until a cycle is in progress, then stop
	assert.Eventually(t, func() bool {
		events := rec.snapshot()
		return len(events) >= 2 && events[len(events)-1] == "cycle"
	}, time.Second, time.Millisecond)
	cancel()

	require.NoError(t, <-done)

	starts := 0
	for _, e := range rec.snapshot() {
		if e == "cycle" {
			starts++
		}
	}
	assert.EqualValues(t, starts, sampler.cycles.Load())
	assert.Nil(t, sampler.ctxErr.Load())
}

func TestSupervisor_CancelledBeforeStart(t *testing.T) {
	rec := &recorder{}
	sampler := &fakeSampler{rec: rec}

	s, err := supervisor.NewSupervisor(sampler, &fakeRenderer{rec: rec}, time.Second, time.Second, zap.NewNop().Sugar())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, s.Run(ctx))
	assert.Empty(t, rec.snapshot())
}
