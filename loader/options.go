package loader

import "github.com/rs/zerolog"

// Option is a configuration function for a Loader.
type Option func(*Loader)

// WithLogger sets the logger that receives link events. The default
// discards them.
func WithLogger(logger zerolog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger.With().Str("component", "loader").Logger()
	}
}

// WithStrict makes Load reject streams with an unterminated routine, a
// nested or unnamed routine, or a routine name defined more than once. All
// problems found in one stream are reported together.
func WithStrict(strict bool) Option {
	return func(l *Loader) {
		l.strict = strict
	}
}
