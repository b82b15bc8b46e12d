// File: monitor/metrics.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Introspection hooks. The monitor keeps its own atomic counters so
// the posting path stays lock-free and handler-safe; registries only
// ever see snapshots taken on demand.

package monitor

import (
	"sync/atomic"

	"github.com/momentics/hioload-topics/control"
)

// monitorStats counts monitor activity. Atomic so Post may bump it
// from signal handler context.
type monitorStats struct {
	posts      atomic.Uint64
	folds      atomic.Uint64
	broadcasts atomic.Uint64
}

// PublishMetrics snapshots the monitor's counters into a registry.
func (m *TopicMonitor) PublishMetrics(mr *control.MetricsRegistry) {
	mr.Set("topics.posts", m.stats.posts.Load())
	mr.Set("topics.folds", m.stats.folds.Load())
	mr.Set("topics.broadcasts", m.stats.broadcasts.Load())
}

// RegisterProbes registers debug probes exposing the monitor's state.
// The generations probe applies pending updates opportunistically,
// like any other query.
func (m *TopicMonitor) RegisterProbes(dp *control.DebugProbes) {
	dp.RegisterProbe("topics.generations", func() any {
		return m.CurrentGenerations().Describe()
	})
	dp.RegisterProbe("topics.pending", func() any {
		return m.pending.Load()
	})
	dp.RegisterProbe("topics.posts", func() any {
		return m.stats.posts.Load()
	})
}
