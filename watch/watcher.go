// File: watch/watcher.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Channel delivery on top of the pull-model monitor. A Watcher runs a
// checker goroutine that blocks in TopicMonitor.Check on an interest
// set and converts each observed advance into a Notice. Notices pass
// through an unbounded FIFO before delivery, so a slow channel
// consumer never stalls the checker or holds up the monitor's
// reader-election loop.

package watch

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-topics/api"
	"github.com/momentics/hioload-topics/monitor"
)

// Notice reports that a topic advanced to a new generation.
type Notice struct {
	Topic api.Topic
	Gen   api.Generation
}

// Watcher follows a monitor and delivers per-topic change notices on
// a channel.
type Watcher struct {
	mon    *monitor.TopicMonitor
	topics []api.Topic

	mu     sync.Mutex
	cond   sync.Cond
	fifo   *queue.Queue
	closed bool

	ch   chan Notice
	done chan struct{}
}

// New starts watching the given topics on mon. Changes that happen
// after New returns are guaranteed to produce a notice; the baseline
// generations are recorded before New returns.
func New(mon *monitor.TopicMonitor, topics ...api.Topic) (*Watcher, error) {
	if len(topics) == 0 {
		return nil, api.ErrNoTopics
	}
	w := &Watcher{
		mon:    mon,
		topics: topics,
		fifo:   queue.New(),
		ch:     make(chan Notice),
		done:   make(chan struct{}),
	}
	w.cond.L = &w.mu

	gens := api.Invalids()
	cur := mon.CurrentGenerations()
	for _, t := range topics {
		gens.SetAt(t, cur.At(t))
	}
	go w.checkLoop(gens)
	go w.deliverLoop()
	return w, nil
}

// C returns the delivery channel. It is closed once the watcher is
// closed.
func (w *Watcher) C() <-chan Notice { return w.ch }

// Close stops the watcher. The checker may be blocked inside Check,
// which supports no cancellation; Close forces it awake by posting to
// the first watched topic. Other waiters on that topic observe an
// ordinary spurious advance and keep waiting. Undelivered notices are
// discarded.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return api.ErrWatcherClosed
	}
	w.closed = true
	close(w.done)
	w.cond.Signal()
	w.mu.Unlock()

	w.mon.Post(w.topics[0])
	return nil
}

func (w *Watcher) checkLoop(gens api.GenList) {
	for {
		last := gens
		w.mon.Check(&gens, true)

		w.mu.Lock()
		if w.closed {
			w.mu.Unlock()
			return
		}
		for _, t := range w.topics {
			if gens.At(t) > last.At(t) {
				w.fifo.Add(Notice{Topic: t, Gen: gens.At(t)})
			}
		}
		w.cond.Signal()
		w.mu.Unlock()
	}
}

func (w *Watcher) deliverLoop() {
	defer close(w.ch)
	for {
		w.mu.Lock()
		for w.fifo.Length() == 0 && !w.closed {
			w.cond.Wait()
		}
		if w.closed {
			w.mu.Unlock()
			return
		}
		n := w.fifo.Remove().(Notice)
		w.mu.Unlock()

		select {
		case w.ch <- n:
		case <-w.done:
			return
		}
	}
}
