package cascade

import (
	"errors"
	"fmt"
)

// ErrConfiguration is matched by every *ConfigError through errors.Is.
var ErrConfiguration = errors.New("invalid table configuration")

// ErrNoPrime is returned by LargestPrimeAtMost if there is no prime >= 2
// below its argument.
var ErrNoPrime = errors.New("no prime found")

// ConfigError reports an invalid construction parameter of a Table.
type ConfigError struct {
	Param  string // name of the offending parameter
	Value  any    // value as given by the caller
	Reason string
	Err    error // underlying cause, may be nil
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cascade: %s=%v: %s: %v", e.Param, e.Value, e.Reason, e.Err)
	}
	return fmt.Sprintf("cascade: %s=%v: %s", e.Param, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is makes every ConfigError match ErrConfiguration.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

func configError(param string, value any, reason string, err error) *ConfigError {
	return &ConfigError{Param: param, Value: value, Reason: reason, Err: err}
}
