// File: monitor/principal.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package monitor

import (
	"fmt"
	"sync"
)

var (
	principalOnce sync.Once
	principalMon  *TopicMonitor
)

// Principal returns the process-wide monitor, constructing it on the
// first call. The returned reference is valid for the remainder of the
// process; the principal is never closed.
//
// Ordinary code must call Principal before installing any signal
// handler that posts to it. First access from handler context is not
// supported.
func Principal() *TopicMonitor {
	principalOnce.Do(func() {
		m, err := New()
		if err != nil {
			panic(fmt.Sprintf("monitor: create principal: %v", err))
		}
		principalMon = m
	})
	return principalMon
}
