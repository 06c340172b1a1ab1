// Package lifecycle holds shared constants for process startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful start/stop operations registered as fx hooks.
const DefaultTimeout = 10 * time.Second
