// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error values for the topic monitoring library.

package api

import "errors"

// Errors returned by the library surface. The monitor itself has no
// recoverable-error taxonomy: it either makes progress or blocks.
var (
	// ErrMonitorClosed is returned when a monitor is closed twice.
	ErrMonitorClosed = errors.New("topic monitor is closed")

	// ErrWatcherClosed is returned when a watcher is closed twice.
	ErrWatcherClosed = errors.New("watcher is closed")

	// ErrNoTopics is returned when a watcher is created with an empty
	// topic set.
	ErrNoTopics = errors.New("no topics of interest")
)
