//go:build windows

// File: internal/wakeup/pipe_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Windows emulation of the wakeup channel. Anonymous pipes on Windows
// have no non-blocking write mode, so a bounded Go channel stands in
// for the byte buffer: non-blocking send is the non-blocking write,
// blocking receive is the blocking read.

package wakeup

// Pipe emulates the self-pipe with a bounded channel.
type Pipe struct {
	ch chan struct{}
}

// NewPipe creates the emulated pipe.
func NewPipe() (*Pipe, error) {
	return &Pipe{ch: make(chan struct{}, 64)}, nil
}

// Nudge queues one wakeup token, best effort. A full channel is fine:
// enough tokens are already queued to wake any Await.
func (p *Pipe) Nudge() {
	select {
	case p.ch <- struct{}{}:
	default:
	}
}

// Await blocks until at least one token is queued and returns how many
// were consumed. The count carries no meaning. Receiving on a closed
// channel means the pipe state is unknowable, so it is fatal.
func (p *Pipe) Await() int {
	if _, ok := <-p.ch; !ok {
		panic("wakeup: read from closed channel")
	}
	n := 1
	for {
		select {
		case _, ok := <-p.ch:
			if !ok {
				return n
			}
			n++
		default:
			return n
		}
	}
}

// Close releases the channel. No Nudge or Await may be in flight.
func (p *Pipe) Close() error {
	close(p.ch)
	return nil
}
