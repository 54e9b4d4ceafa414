package game

import "errors"

var (
	ErrUnknownEntity = errors.New("unknown entity")
)
