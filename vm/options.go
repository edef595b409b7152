package vm

import "github.com/rs/zerolog"

// DiscoverOption is a configuration function for a Discover.
type DiscoverOption func(*Discover)

// WithDiscoverLogger sets the logger that receives a debug event for every
// discovery query.
func WithDiscoverLogger(logger zerolog.Logger) DiscoverOption {
	return func(d *Discover) {
		d.logger = logger.With().Str("component", "discover").Logger()
	}
}
