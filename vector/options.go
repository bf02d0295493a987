// SPDX-License-Identifier: MIT

package vector

import (
	"io"
	"log/slog"
	"math"
)

// DefaultMaxCapacity is the slot limit applied when WithMaxCapacity is not given.
// It is the platform's largest int, so it fits 32-bit targets.
const DefaultMaxCapacity = math.MaxInt

// discardLogger is the default sink; reallocation logging is opt-in.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Option configures a Vector at construction time.
type Option func(*config)

// config holds construction-time settings shared by every constructor.
type config struct {
	maxCap int
	logger *slog.Logger
}

// WithMaxCapacity caps the number of slots a vector may allocate.
// Growth or construction beyond the cap fails with ErrCapacityExceeded.
// Non-positive values are ignored.
func WithMaxCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxCap = n
		}
	}
}

// WithLogger routes reallocation events (grow, shrink, release) to l at Debug level.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// newConfig applies opts over the defaults.
func newConfig(opts []Option) config {
	cfg := config{maxCap: DefaultMaxCapacity, logger: discardLogger}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
