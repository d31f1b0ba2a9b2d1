package countservice

import (
	"errors"
)

// ErrNotADirectory is returned when the requested root path does not exist
// or is not a directory
var ErrNotADirectory = errors.New("not a directory")
