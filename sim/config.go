package sim

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// DefaultClerks is the size of the clerk pool when none is configured.
const DefaultClerks = 5

// Config groups simulator parameters.
type Config struct {
	Clerks int    // number of clerks (must be > 0)
	RunID  string // tags every log line of one run; generated when empty
}

// DefaultConfig returns a Config with the default clerk count and a fresh run ID.
func DefaultConfig() Config {
	return Config{Clerks: DefaultClerks, RunID: uuid.NewString()}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Clerks < 1 {
		return errors.Errorf("clerks must be at least 1, got %d", c.Clerks)
	}
	return nil
}
