package level

import "errors"

var (
	ErrInvalidDimension = errors.New("level: invalid dimension")
	ErrOutOfBounds      = errors.New("level: coordinate out of bounds")
	ErrSlotOutOfRange   = errors.New("level: palette slot out of range")
	ErrUnnamedTile      = errors.New("level: tile has no id")
	ErrUnknownTile      = errors.New("level: unknown tile")
	ErrMalformed        = errors.New("level: malformed level data")
)
