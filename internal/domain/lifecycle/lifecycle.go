// Package lifecycle holds limits shared by fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds each OnStart/OnStop hook and graceful server shutdown.
const DefaultTimeout = 10 * time.Second
