package codec

import "errors"

var (
	// ErrNilElement indicates that a nil element was passed to Add, Set or Insert.
	// Nothing is written when this error is returned.
	ErrNilElement = errors.New("codec: element must not be nil")

	// ErrIndexOutOfRange indicates an index outside the live elements [0, Len()) of a list.
	ErrIndexOutOfRange = errors.New("codec: index out of range")

	// ErrCapacityExhausted indicates that doubling the backing storage would exceed the
	// maximum capacity. The current unit of work cannot continue.
	ErrCapacityExhausted = errors.New("codec: list capacity exhausted")

	// ErrInvalidCapacity indicates a non-positive or inconsistent capacity passed to a constructor.
	ErrInvalidCapacity = errors.New("codec: invalid capacity")

	// ErrDecodeNoProgress indicates a Decoder produced messages without consuming any input,
	// which would otherwise loop forever.
	ErrDecodeNoProgress = errors.New("codec: decoder produced output without reading input")

	// ErrTruncatedData indicates that a read operation could not complete because the
	// underlying buffer ended before all expected bytes were read.
	ErrTruncatedData = errors.New("codec: truncated data")
)
