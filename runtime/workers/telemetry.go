package workers

import (
	"context"
	"forum-lab/contract"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// TelemetryWorker periodically logs the live connection load of the node
// next to its own memory and cpu usage.
type TelemetryWorker struct {
	log            *slog.Logger
	metricInterval time.Duration
	registry       contract.ISessionRegistry
}

func NewTelemetryWorker(log *slog.Logger, metricInterval time.Duration,
	registry contract.ISessionRegistry) *TelemetryWorker {
	return &TelemetryWorker{log: log, metricInterval: metricInterval, registry: registry}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping telemetry")
			return nil
		case <-ticker.C:
			w.report(p)
		}
	}
}

func (w *TelemetryWorker) report(p *process.Process) {
	stats := w.registry.Stats()
	attrs := []any{"connections", stats.Connections, "rooms", stats.Rooms}

	if memInfo, err := p.MemoryInfo(); err != nil {
		w.log.Debug("Error while finding process ram usage", "err", err)
	} else {
		attrs = append(attrs, "rss_bytes", memInfo.RSS)
	}
	if cpu, err := p.CPUPercent(); err != nil {
		w.log.Debug("Error while finding process cpu usage", "err", err)
	} else {
		attrs = append(attrs, "cpu_percent", cpu)
	}
	w.log.Info("Node telemetry", attrs...)
}
