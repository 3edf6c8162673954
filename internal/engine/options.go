package engine

import (
	"github.com/go-logr/logr"
	"github.com/google/uuid"
)

// Default configuration values.
const (
	DefaultMaxUndoEntries = 100
)

// config holds field options.
type config struct {
	logger         logr.Logger
	maxUndoEntries int
	session        uuid.UUID
}

// Option configures a Field during creation.
type Option func(*config)

// WithLogger sets the logger that receives field telemetry.
func WithLogger(logger logr.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMaxUndoEntries sets the maximum number of undo history entries.
func WithMaxUndoEntries(max int) Option {
	return func(c *config) {
		if max > 0 {
			c.maxUndoEntries = max
		}
	}
}

// WithSessionID sets the id attached to every log line of the field.
// A random id is used by default.
func WithSessionID(id uuid.UUID) Option {
	return func(c *config) {
		c.session = id
	}
}
