package telemetry

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

const bytesPerGiB = 1024 * 1024 * 1024

// GPUStats describes one device as reported by nvidia-smi.
type GPUStats struct {
	Index              int
	Name               string
	UsedMemGB          float64
	TotalMemGB         float64
	TempC              int
	UtilizationPercent float64
}

//go:generate mockgen -source=gpu.go -destination=mocks/gpu_mock.go
type GPUStatsProvider interface {
	Sample(ctx context.Context, maxCount int) ([]GPUStats, error)
}

// CommandRunner executes a command and returns its standard output.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

type nvidiaSMIProvider struct {
	run CommandRunner
}

func NewGPUStatsProvider() GPUStatsProvider {
	return &nvidiaSMIProvider{run: execRunner}
}

func NewGPUStatsProviderWithRunner(run CommandRunner) GPUStatsProvider {
	return &nvidiaSMIProvider{run: run}
}

var nvidiaSMIArgs = []string{
	"--query-gpu=index,name,utilization.gpu,memory.used,memory.total,temperature.gpu",
	"--format=csv,noheader,nounits",
}

// Sample returns at most maxCount GPUs. A host without nvidia-smi yields an
// empty slice and no error.
func (p *nvidiaSMIProvider) Sample(ctx context.Context, maxCount int) ([]GPUStats, error) {
	out, err := p.run(ctx, "nvidia-smi", nvidiaSMIArgs...)
	if err != nil {
		if isMissingCommand(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("nvidia-smi failed: %w", err)
	}

	return ParseNvidiaSMI(string(out), maxCount)
}

func isMissingCommand(err error) bool {
	if _, ok := err.(*exec.Error); ok {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "executable file not found")
}

// ParseNvidiaSMI parses CSV lines of
// index, name, utilization.gpu, memory.used (MiB), memory.total (MiB), temperature.gpu.
// Fields reported as [N/A] are left at zero.
func ParseNvidiaSMI(output string, maxCount int) ([]GPUStats, error) {
	output = strings.TrimSpace(output)
	if output == "" {
		return nil, nil
	}

	lower := strings.ToLower(output)
	if strings.Contains(lower, "no devices") ||
		strings.Contains(lower, "has failed") ||
		strings.Contains(lower, "not found") {
		return nil, nil
	}

	var gpus []GPUStats
	for _, line := range strings.Split(output, "\n") {
		if maxCount > 0 && len(gpus) >= maxCount {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) < 6 {
			return nil, fmt.Errorf("nvidia-smi output has insufficient fields: expected 6, got %d", len(fields))
		}
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}

		gpu := GPUStats{Name: fields[1]}

		index, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("failed to parse GPU index '%s': %w", fields[0], err)
		}
		gpu.Index = index

		if util, ok, err := parseOptionalFloat(fields[2]); err != nil {
			return nil, fmt.Errorf("failed to parse GPU utilization '%s': %w", fields[2], err)
		} else if ok {
			gpu.UtilizationPercent = util
		}

		if used, ok, err := parseOptionalFloat(fields[3]); err != nil {
			return nil, fmt.Errorf("failed to parse GPU memory used '%s': %w", fields[3], err)
		} else if ok {
			gpu.UsedMemGB = used * 1024 * 1024 / bytesPerGiB
		}

		if total, ok, err := parseOptionalFloat(fields[4]); err != nil {
			return nil, fmt.Errorf("failed to parse GPU memory total '%s': %w", fields[4], err)
		} else if ok {
			gpu.TotalMemGB = total * 1024 * 1024 / bytesPerGiB
		}

		if temp, ok, err := parseOptionalFloat(fields[5]); err != nil {
			return nil, fmt.Errorf("failed to parse GPU temperature '%s': %w", fields[5], err)
		} else if ok {
			gpu.TempC = int(temp)
		}

		gpus = append(gpus, gpu)
	}

	return gpus, nil
}

func parseOptionalFloat(s string) (float64, bool, error) {
	if s == "" || s == "[N/A]" || s == "N/A" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}
