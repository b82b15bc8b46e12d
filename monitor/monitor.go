// File: monitor/monitor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The topic monitor: current generation values per topic, plus a
// blocking wait for any topic in a set to advance. The posting path is
// lock-free and allocation-free so it stays usable from signal handler
// context; the waiting path elects a single reader to drain the wakeup
// pipe and fold pending posts into the authoritative generations.

package monitor

import (
	"sync"
	"sync/atomic"

	"github.com/momentics/hioload-topics/api"
	"github.com/momentics/hioload-topics/internal/wakeup"
)

// drainStatus records who owns the wakeup pipe's read end.
type drainStatus uint8

const (
	drainIdle drainStatus = iota
	drainActive
)

// monitorData is the state guarded by TopicMonitor.mu.
type monitorData struct {
	// current is the authoritative generation list.
	current api.GenList

	// status is drainActive while some thread is the reader.
	status drainStatus
}

// TopicMonitor permits querying the current generation values for
// topics, optionally blocking until they increase.
//
// A TopicMonitor must not be copied after first use. Close may only be
// called once all posts and checks have quiesced; the principal
// instance is never closed.
type TopicMonitor struct {
	mu   sync.Mutex
	data monitorData

	// dataNotifier broadcasts changes to data. Associated with mu.
	dataNotifier sync.Cond

	// pending is the set of topics with unapplied increments, one bit
	// per topic. Managed via atomics only: the writer may be a signal
	// handler, which must never touch mu. It is evidence, not truth,
	// until folded into data.current under mu.
	pending atomic.Uint32

	// pipe wakes the elected reader. Any poster may write; only the
	// thread holding drainActive may read.
	pipe *wakeup.Pipe

	closed bool

	stats monitorStats
}

// New creates a monitor with all generations at zero.
func New() (*TopicMonitor, error) {
	p, err := wakeup.NewPipe()
	if err != nil {
		return nil, err
	}
	m := &TopicMonitor{pipe: p}
	m.dataNotifier.L = &m.mu
	return m, nil
}

// Close releases the wakeup pipe. No Post or Check may be in flight.
func (m *TopicMonitor) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return api.ErrMonitorClosed
	}
	m.closed = true
	m.mu.Unlock()
	return m.pipe.Close()
}

// topicBit converts a topic to a bitmask containing just that topic.
func topicBit(t api.Topic) uint32 { return 1 << uint32(t) }

// Post records that a topic happened. Callable from any thread and
// from signal handler context: no locks, no allocation, at most one
// non-blocking pipe write. Posts with no intervening drain coalesce
// into a single generation bump.
func (m *TopicMonitor) Post(t api.Topic) {
	// atomic Or via CAS loop: Uint32.Or requires Go 1.23+.
	for {
		old := m.pending.Load()
		if m.pending.CompareAndSwap(old, old|topicBit(t)) {
			break
		}
	}
	m.stats.posts.Add(1)
	m.pipe.Nudge()
}

// applyPendingLocked folds the pending bitmask into the authoritative
// generations and returns the updated list. Caller must hold mu: the
// fold must not become visible except under the lock.
func (m *TopicMonitor) applyPendingLocked() api.GenList {
	bits := m.pending.Swap(0)
	if bits != 0 {
		for _, t := range api.AllTopics() {
			if bits&topicBit(t) != 0 {
				m.data.current.SetAt(t, m.data.current.At(t)+1)
			}
		}
		m.stats.folds.Add(1)
	}
	return m.data.current
}

// updatedGens returns the current generation list, opportunistically
// applying any pending updates.
func (m *TopicMonitor) updatedGens() api.GenList {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.applyPendingLocked()
}

// CurrentGenerations returns the current generations. Repeated calls
// yield non-decreasing values per topic.
func (m *TopicMonitor) CurrentGenerations() api.GenList {
	return m.updatedGens()
}

// GenerationForTopic returns the current generation for one topic.
func (m *TopicMonitor) GenerationForTopic(t api.Topic) api.Generation {
	return m.updatedGens().At(t)
}

// tryUpdateGensMaybeBecomingReader attempts to update gens to
// something newer.
//
// If gens is older than the authoritative list, overwrite it with the
// current values and return false: an update is already available, no
// reader needed. If gens is current and there is no reader, claim
// reader status and return true; it is now the caller's job to read
// from the pipe and notify on a change. If gens is current and a
// reader is already active, wait for its broadcast and try again.
func (m *TopicMonitor) tryUpdateGensMaybeBecomingReader(gens *api.GenList) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for {
		newer := false
		for _, t := range api.AllTopics() {
			if gens.IsValid(t) && m.data.current.At(t) > gens.At(t) {
				newer = true
				break
			}
		}
		if newer {
			*gens = m.data.current
			return false
		}
		if m.data.status == drainIdle {
			m.data.status = drainActive
			return true
		}
		m.dataNotifier.Wait()
	}
}

// awaitGens blocks until some topic advances past input and returns
// the new list.
func (m *TopicMonitor) awaitGens(input api.GenList) api.GenList {
	gens := input
	for gens == input {
		if !m.tryUpdateGensMaybeBecomingReader(&gens) {
			continue
		}
		// We are the reader. Block on the pipe outside the lock; the
		// byte count carries no meaning. Residual bytes from earlier
		// opportunistic folds only cause a spurious wakeup here, which
		// the enclosing loop absorbs.
		m.pipe.Await()

		m.mu.Lock()
		gens = m.applyPendingLocked()
		m.data.status = drainIdle
		// Wake every waiter, not just one: a single drain may satisfy
		// several distinct topic sets.
		m.dataNotifier.Broadcast()
		m.mu.Unlock()
		m.stats.broadcasts.Add(1)
	}
	return gens
}

// Check reports whether the current generation of any valid topic in
// gens is larger than the recorded value, updating gens in place when
// so. With wait set it blocks until some topic of interest advances;
// otherwise it returns immediately and never blocks. A gens with no
// valid topics always reports false, even with wait set.
func (m *TopicMonitor) Check(gens *api.GenList, wait bool) bool {
	if !gens.AnyValid() {
		return false
	}
	current := m.updatedGens()
	changed := false
	for {
		for _, t := range api.AllTopics() {
			if !gens.IsValid(t) {
				continue
			}
			if gens.At(t) < current.At(t) {
				changed = true
				gens.SetAt(t, current.At(t))
			}
		}
		if !wait || changed {
			return changed
		}
		current = m.awaitGens(current)
	}
}
