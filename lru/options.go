package lru

import "github.com/rs/zerolog"

/*
Option configures a Cache at construction time.

This follows the functional options pattern: New takes the required,
precondition-checked parameter (max_size) positionally, and everything
optional goes through an Option. Adding a new optional knob later never
breaks New's signature or existing call sites.
*/
type Option func(*Cache)

// WithLogger attaches a structured logger used for eviction diagnostics.
// The zero value of Cache logs nothing — passing the zero-value
// zerolog.Logger is equivalent to omitting the option.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Cache) {
		c.log = logger
	}
}
