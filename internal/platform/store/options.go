package store

import (
	"marketwatch/internal/platform/logger"
)

// Option runs before any backend is dialed, an error aborts Open
type Option func(*Store) error

// WithLogger tags log with component=store and hands it to the pg and ch openers
// retry warnings and sql tracing land there
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log.With().Str("component", "store").Logger()
		return nil
	}
}
