package health

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
)

// memoryDegradedPercent is the used-memory share above which the host is
// reported as degraded.
const memoryDegradedPercent = 90.0

type systemProbe struct {
	getLoadAvg  func(context.Context) (*load.AvgStat, error)
	getMemStats func(context.Context) (*mem.VirtualMemoryStat, error)
}

func newSystemProbe() systemProbe {
	return systemProbe{
		getLoadAvg:  load.AvgWithContext,
		getMemStats: mem.VirtualMemoryWithContext,
	}
}

func (p systemProbe) check(ctx context.Context) Check {
	vm, err := p.getMemStats(ctx)
	if err != nil {
		return Check{Status: "unknown", Message: err.Error()}
	}

	msg := fmt.Sprintf("memory %.1f%% used", vm.UsedPercent)
	// Load average is not available on every platform.
	if avg, err := p.getLoadAvg(ctx); err == nil {
		msg += fmt.Sprintf(", load1 %.2f", avg.Load1)
	}

	if vm.UsedPercent >= memoryDegradedPercent {
		return Check{Status: "degraded", Message: msg}
	}
	return Check{Status: "healthy", Message: msg}
}
