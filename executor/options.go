package executor

import "github.com/rs/zerolog"

// Option configures a Pool at construction time, generalizing the same
// functional-options pattern the lru package uses for its own Option
// type: New's positional parameters are the preconditions spec.md §4.1
// requires (watermarks, queue size, idle time); everything else is an
// Option.
type Option func(*Pool)

// WithLogger attaches a structured logger used for worker lifecycle
// diagnostics (spawn, retire, stop-begin, stop-complete). The default
// is a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Pool) {
		p.log = logger
	}
}
