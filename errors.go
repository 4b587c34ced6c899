package nxcube

import (
	"errors"
	"fmt"
)

// Sentinel errors for the nxcube package.
var (
	// Parsing errors
	ErrInvalidMove = errors.New("nxcube: invalid move")

	// Construction errors
	ErrConfiguration = errors.New("nxcube: invalid configuration")
)

// InvalidMoveError reports a move token that does not follow the
// `Face [' | 2]` grammar. It matches ErrInvalidMove with errors.Is.
type InvalidMoveError struct {
	Token  string
	Reason string
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("nxcube: invalid move %q: %s", e.Token, e.Reason)
}

func (e *InvalidMoveError) Is(target error) bool {
	return target == ErrInvalidMove
}

// ConfigurationError reports an engine that cannot be constructed.
// It matches ErrConfiguration with errors.Is.
type ConfigurationError struct {
	Field  string
	Value  int
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("nxcube: invalid %s %d: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}
