package codec

import "errors"

var (
	// ErrInsufficientBytes is returned when the buffer is shorter than the
	// field being decoded requires.
	ErrInsufficientBytes = errors.New("codec: insufficient bytes")

	// ErrInvalidFormat is returned when decoded content cannot represent the
	// target type.
	ErrInvalidFormat = errors.New("codec: invalid format")
)
