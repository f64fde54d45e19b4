// Package telemetry samples host CPU, memory and GPU usage for the status bar.
package telemetry

import (
	"context"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// SystemStats is a point-in-time host sample. Available is false when the
// host could not be read; the other fields are zero in that case.
type SystemStats struct {
	CPUPercent       float64
	UsedMemoryBytes  uint64
	TotalMemoryBytes uint64
	Available        bool
}

//go:generate mockgen -source=system.go -destination=mocks/system_mock.go
type SystemStatsProvider interface {
	Sample(ctx context.Context) SystemStats
}

type systemStatsProvider struct{}

func NewSystemStatsProvider() SystemStatsProvider {
	return &systemStatsProvider{}
}

// Sample never fails. CPU usage is measured since the previous call, so the
// first sample after start reflects the average since boot.
func (p *systemStatsProvider) Sample(ctx context.Context) SystemStats {
	percents, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil || len(percents) == 0 {
		return SystemStats{}
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return SystemStats{}
	}

	return SystemStats{
		CPUPercent:       percents[0],
		UsedMemoryBytes:  vm.Used,
		TotalMemoryBytes: vm.Total,
		Available:        true,
	}
}
