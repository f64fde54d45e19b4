package statusbar

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"wallet-monitor/pkg/telemetry"
	"wallet-monitor/pkg/terminal"
	"wallet-monitor/services/balance"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	separator  = " | "
	notAvail   = "N/A"
	noGPUData  = "No GPU Data"
	gpuTimeout = 5 * time.Second

	narrowGPUCount = 2
	wideGPUCount   = 3
)

// Fetcher fills a balance that the sampler has not observed yet.
type Fetcher interface {
	FetchOne(ctx context.Context, address string) (decimal.Decimal, error)
}

type Options struct {
	GPUEnabled        bool
	GPUWidthThreshold int
	// TerminalWidth overrides detection when positive.
	TerminalWidth int
}

// Renderer builds the status line. Each tick shows one wallet, in
// round-robin order, and alternates between CPU and memory usage.
type Renderer struct {
	store   *balance.Store
	fetcher Fetcher
	system  telemetry.SystemStatsProvider
	gpu     telemetry.GPUStatsProvider
	sink    Sink
	opts    Options
	logger  *zap.SugaredLogger

	// tick state, owned by the render loop
	cursor int
	ticks  int

	mx   sync.RWMutex
	line string
}

func NewRenderer(
	store *balance.Store,
	fetcher Fetcher,
	system telemetry.SystemStatsProvider,
	gpu telemetry.GPUStatsProvider,
	sink Sink,
	opts Options,
	logger *zap.SugaredLogger,
) (*Renderer, error) {
	if store == nil {
		return nil, errors.New("[statusbar_renderer] invalid store")
	}
	if fetcher == nil {
		return nil, errors.New("[statusbar_renderer] invalid fetcher")
	}
	if system == nil {
		return nil, errors.New("[statusbar_renderer] invalid system stats provider")
	}
	if opts.GPUEnabled && gpu == nil {
		return nil, errors.New("[statusbar_renderer] invalid gpu stats provider")
	}
	if sink == nil {
		return nil, errors.New("[statusbar_renderer] invalid sink")
	}
	if logger == nil {
		return nil, errors.New("[statusbar_renderer] invalid logger")
	}

	return &Renderer{
		store:   store,
		fetcher: fetcher,
		system:  system,
		gpu:     gpu,
		sink:    sink,
		opts:    opts,
		logger:  logger,
	}, nil
}

// Tick renders one line, writes it to the sink and returns it.
func (r *Renderer) Tick(ctx context.Context) string {
	width := terminal.Width(r.opts.TerminalWidth)

	var segments []string
	if wallet, ok := r.walletSegment(ctx); ok {
		segments = append(segments, wallet)
	}
	segments = append(segments, r.systemSegment(ctx))
	if r.opts.GPUEnabled {
		segments = append(segments, r.gpuSegments(ctx, width)...)
	}
	r.ticks++

	line := terminal.Truncate(strings.Join(segments, separator), width)

	if err := r.sink.Write(line); err != nil {
		r.logger.Warnf("failed to write status line: %v", err)
	}

	r.mx.Lock()
	r.line = line
	r.mx.Unlock()

	return line
}

// Line returns the most recently rendered line.
func (r *Renderer) Line() string {
	r.mx.RLock()
	defer r.mx.RUnlock()
	return r.line
}

func (r *Renderer) walletSegment(ctx context.Context) (string, bool) {
	addresses := r.store.Addresses()
	if len(addresses) == 0 {
		return "", false
	}

	address := addresses[r.cursor%len(addresses)]
	r.cursor = (r.cursor + 1) % len(addresses)

	value := notAvail
	if v, ok := r.store.Get(address); ok {
		value = balance.FormatStatus(v)
	} else if v, err := r.fetcher.FetchOne(ctx, address); err != nil {
		r.logger.Warnf("failed to fetch balance for %s: %v", balance.TruncateAddress(address), err)
	} else {
		value = balance.FormatStatus(v)
	}

	return fmt.Sprintf("%s: %s", balance.TruncateAddress(address), value), true
}

func (r *Renderer) systemSegment(ctx context.Context) string {
	stats := r.system.Sample(ctx)
	showCPU := r.ticks%2 == 0

	switch {
	case showCPU && !stats.Available:
		return "CPU: " + notAvail
	case showCPU:
		return fmt.Sprintf("CPU: %.1f%%", stats.CPUPercent)
	case !stats.Available:
		return "MEM: " + notAvail
	default:
		return fmt.Sprintf("MEM: %dMB/%dMB", stats.UsedMemoryBytes/1024/1024, stats.TotalMemoryBytes/1024/1024)
	}
}

func (r *Renderer) gpuSegments(ctx context.Context, width int) []string {
	count := wideGPUCount
	if width < r.opts.GPUWidthThreshold {
		count = narrowGPUCount
	}

	ctx, cancel := context.WithTimeout(ctx, gpuTimeout)
	defer cancel()

	gpus, err := r.gpu.Sample(ctx, count)
	if err != nil {
		r.logger.Debugf("failed to sample gpu stats: %v", err)
		return []string{noGPUData}
	}
	if len(gpus) == 0 {
		return []string{noGPUData}
	}

	segments := make([]string, 0, len(gpus))
	for _, g := range gpus {
		segments = append(segments, fmt.Sprintf("GPU%d: %.0f%% %.2f/%.2fGiB %dC",
			g.Index, g.UtilizationPercent, g.UsedMemGB, g.TotalMemGB, g.TempC))
	}
	return segments
}
