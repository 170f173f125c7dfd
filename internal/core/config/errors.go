package config

import (
	"errors"
	"fmt"
)

var (
	ErrInvalid      = errors.New("invalid config")
	ErrUnknownShape = errors.New("unknown shape")
	ErrInvalidShape = errors.New("invalid shape")
)

func errorf(err error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...))
}
