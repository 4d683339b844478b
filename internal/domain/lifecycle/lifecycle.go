// Package lifecycle holds shared timing constants for application start and
// shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds how long a single lifecycle hook (DB ping, HTTP
// shutdown) may take before it is abandoned.
const DefaultTimeout = 15 * time.Second
