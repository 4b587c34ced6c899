package nxcube

import "go.uber.org/zap"

// Option configures Engine behavior.
type Option func(*config)

type config struct {
	rand        Rand
	logger      *zap.Logger
	moveHistory bool
}

func defaultConfig() *config {
	return &config{
		rand:        systemRand{},
		logger:      zap.NewNop(),
		moveHistory: true,
	}
}

// WithRand sets the random source used by Scramble. A seeded
// *math/rand/v2.Rand makes scrambles reproducible.
func WithRand(r Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rand = r
		}
	}
}

// WithLogger sets the logger. Every applied move is logged at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), all moves are stored and accessible via History().
// Disable this for long sessions to reduce memory usage.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}
