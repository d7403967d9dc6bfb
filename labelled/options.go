// SPDX-License-Identifier: MIT

package labelled

import "github.com/sirupsen/logrus"

// Option configures a Graph at construction time.
type Option func(*config)

// config holds resolved construction options.
type config struct {
	log logrus.FieldLogger
}

// WithLogger routes the graph's debug events (vertex/edge insertions,
// subgraph extraction) to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// newConfig applies opts over the defaults (logrus.StandardLogger()).
func newConfig(opts ...Option) config {
	c := config{log: logrus.StandardLogger()}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}
