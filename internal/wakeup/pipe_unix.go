//go:build !windows

// File: internal/wakeup/pipe_unix.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// OS pipe implementation of the wakeup channel.

package wakeup

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Pipe is a self-pipe. Nudge writes to it, Await blocks reading from
// it. Both descriptors are close-on-exec; the write end is
// non-blocking so a poster can never stall on a full buffer.
type Pipe struct {
	r int
	w int
}

// NewPipe opens the pipe pair.
func NewPipe() (*Pipe, error) {
	var fds [2]int
	if err := unix.Pipe2(fds[:], unix.O_CLOEXEC); err != nil {
		return nil, fmt.Errorf("wakeup: pipe2: %w", err)
	}
	if err := unix.SetNonblock(fds[1], true); err != nil {
		unix.Close(fds[0])
		unix.Close(fds[1])
		return nil, fmt.Errorf("wakeup: set nonblock: %w", err)
	}
	return &Pipe{r: fds[0], w: fds[1]}, nil
}

// nudgeByte is preallocated: Nudge may run in signal handler context
// and must not allocate.
var nudgeByte = [1]byte{0}

// Nudge writes a single byte, best effort. A full buffer (EAGAIN) is
// fine: enough bytes are already queued to wake any Await. Errors are
// deliberately not surfaced; the pipe is only a nudge, never the
// source of truth.
func (p *Pipe) Nudge() {
	for {
		_, err := unix.Write(p.w, nudgeByte[:])
		if err == unix.EINTR {
			continue
		}
		return
	}
}

// Await blocks until at least one byte is readable and returns how
// many were consumed. The count carries no meaning. An unexpected read
// error leaves the channel state unknowable, so it is fatal.
func (p *Pipe) Await() int {
	var buf [64]byte
	for {
		n, err := unix.Read(p.r, buf[:])
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			panic(fmt.Sprintf("wakeup: read self-pipe: %v", err))
		}
		return n
	}
}

// Close releases both descriptors. No Nudge or Await may be in flight.
func (p *Pipe) Close() error {
	rerr := unix.Close(p.r)
	werr := unix.Close(p.w)
	if rerr != nil {
		return fmt.Errorf("wakeup: close read end: %w", rerr)
	}
	if werr != nil {
		return fmt.Errorf("wakeup: close write end: %w", werr)
	}
	return nil
}
