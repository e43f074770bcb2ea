// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup and graceful-shutdown work for every component.
const DefaultTimeout = 15 * time.Second
