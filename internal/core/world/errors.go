package world

import "errors"

var (
	ErrObjectAfterAgent = errors.New("world: static objects must be added before agents")
	ErrNilBody          = errors.New("world: nil body")
	ErrUnknownAgent     = errors.New("world: unknown agent")
	ErrNegativeLength   = errors.New("world: negative beam length")
	ErrInvalidShape     = errors.New("world: invalid shape")
)
