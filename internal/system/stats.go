package system

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Stats is a point-in-time view of the host.
type Stats struct {
	CPUPercent    float64       `json:"cpu_percent"`
	MemUsedPct    float64       `json:"mem_used_percent"`
	MemFreeMB     uint64        `json:"mem_free_mb"`
	Uptime        time.Duration `json:"-"`
	UptimeSeconds uint64        `json:"uptime_seconds"`
}

// FreeMemoryMB reports memory available for new processes.
func FreeMemoryMB(ctx context.Context) (uint64, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("virtual memory: %w", err)
	}
	return vm.Available / 1024 / 1024, nil
}

// Collect samples CPU, memory and uptime. CPU is measured since the previous call.
func Collect(ctx context.Context) (Stats, error) {
	var s Stats

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return s, fmt.Errorf("virtual memory: %w", err)
	}
	s.MemUsedPct = vm.UsedPercent
	s.MemFreeMB = vm.Available / 1024 / 1024

	if pct, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(pct) > 0 {
		s.CPUPercent = pct[0]
	}

	if up, err := host.UptimeWithContext(ctx); err == nil {
		s.UptimeSeconds = up
		s.Uptime = time.Duration(up) * time.Second
	}
	return s, nil
}
