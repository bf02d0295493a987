// SPDX-License-Identifier: MIT

package graph

import (
	"io"
	"log/slog"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Option configures a Graph at construction time.
type Option func(*config)

type config struct {
	defaultWeight float64
	logger        *slog.Logger
}

// WithDefaultWeight sets the weight Connect gives to new edges.
// NaN and ±Inf are ignored.
func WithDefaultWeight(w float64) Option {
	return func(c *config) {
		if validWeight(w) {
			c.defaultWeight = w
		}
	}
}

// WithLogger routes structural debug events (vertex removal, Clear) to l.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts []Option) config {
	c := config{defaultWeight: DefaultWeight, logger: discardLogger}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
