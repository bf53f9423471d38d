package fieldformula

import (
	"github.com/clovenbradshaw-ctrl/fieldformula/coerce"
	"github.com/clovenbradshaw-ctrl/fieldformula/logger"
)

// Option configures an Engine at construction time.
type Option func(e *Engine, cacheCapacity *int)

// WithNullMode selects the NULL regime explicitly.
func WithNullMode(mode coerce.Mode) Option {
	return func(e *Engine, _ *int) {
		e.mode = mode
	}
}

// WithLegacyNulls opts into the backward-compatibility regime where absent
// operands coerce to zero values instead of propagating.
func WithLegacyNulls() Option {
	return WithNullMode(coerce.ModeLegacy)
}

// WithCacheCapacity bounds the parse cache. Values below 1 keep the default.
func WithCacheCapacity(capacity int) Option {
	return func(_ *Engine, c *int) {
		if capacity >= 1 {
			*c = capacity
		}
	}
}

// WithLogger routes engine logs to a custom logger.
func WithLogger(log logger.Logger) Option {
	return func(e *Engine, _ *int) {
		if log != nil {
			e.log = log
		}
	}
}

// WithDiscardLogger silences engine logging.
func WithDiscardLogger() Option {
	return WithLogger(logger.NewDiscardLogger())
}
