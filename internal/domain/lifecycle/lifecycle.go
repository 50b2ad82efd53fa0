// Package lifecycle holds timing defaults for process start and stop.
package lifecycle

import "time"

// DefaultTimeout bounds graceful-shutdown work such as draining HTTP
// servers and closing publishers. Kept below typical orchestrator kill
// timeouts so shutdown finishes before SIGKILL.
const DefaultTimeout = 10 * time.Second
