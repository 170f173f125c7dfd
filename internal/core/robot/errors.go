package robot

import "errors"

var (
	// ErrUnknown is wrapped by registry lookups: "unknown sensor: NAME".
	ErrUnknown = errors.New("unknown")
	// ErrUnsupportedMovement is returned for wheel inputs that map to no movement.
	ErrUnsupportedMovement = errors.New("robot: unsupported movement")
	ErrInvalidSpec         = errors.New("robot: invalid component spec")
)
