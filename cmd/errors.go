package cmd

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/checkin-sim/checkin-sim/sim/workload"
)

// Process exit codes.
const (
	ExitOK         = 0
	ExitUsage      = 1
	ExitInputOpen  = 2
	ExitMalformed  = 3
	ExitConfig     = 4
	ExitRunFailure = 5
)

// UsageError reports a command line with the wrong arguments.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// ConfigError reports an unreadable or invalid configuration file or flag.
type ConfigError struct {
	Source string
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Source, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// exitCode maps an error returned by a command to the process exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var (
		usage     *UsageError
		open      *workload.InputOpenError
		malformed *workload.MalformedRecordError
		config    *ConfigError
	)
	switch {
	case errors.As(err, &usage):
		return ExitUsage
	case errors.As(err, &open):
		return ExitInputOpen
	case errors.As(err, &malformed):
		return ExitMalformed
	case errors.As(err, &config):
		return ExitConfig
	default:
		return ExitRunFailure
	}
}
