package codec

import "fmt"

// Defaults used for zero fields of PoolOptions.
const (
	DefaultDequeWarmUp      = 8
	DefaultRingSize         = 16
	DefaultListCapacity     = 16
	DefaultFallbackCapacity = 4

	maxRingSize = 1 << 30
)

// PoolOptions configures the pools of a worker. A nil *PoolOptions or a zero
// field selects the default.
type PoolOptions struct {
	// DequeWarmUp is the number of idle lists a DequePool starts with.
	DequeWarmUp int
	// RingSize is the capacity of a RingPool, rounded up to a power of two.
	// The ring starts full.
	RingSize int
	// ListCapacity is the initial capacity of pooled lists. 16 is enough for
	// nearly every decoder.
	ListCapacity int
	// FallbackCapacity is the initial capacity of lists fabricated when a pool
	// is empty. They are dropped on recycle, so they start small.
	FallbackCapacity int
	// MaxListCapacity bounds the growth of every list.
	MaxListCapacity int
}

func (o *PoolOptions) normalize() (PoolOptions, error) {
	var n PoolOptions
	if o != nil {
		n = *o
	}
	if n.DequeWarmUp < 0 || n.RingSize < 0 || n.ListCapacity < 0 || n.FallbackCapacity < 0 || n.MaxListCapacity < 0 {
		return n, fmt.Errorf("%w: negative pool option", ErrInvalidCapacity)
	}
	if n.DequeWarmUp == 0 {
		n.DequeWarmUp = DefaultDequeWarmUp
	}
	if n.RingSize == 0 {
		n.RingSize = DefaultRingSize
	}
	if n.ListCapacity == 0 {
		n.ListCapacity = DefaultListCapacity
	}
	if n.FallbackCapacity == 0 {
		n.FallbackCapacity = DefaultFallbackCapacity
	}
	if n.MaxListCapacity == 0 {
		n.MaxListCapacity = DefaultMaxCapacity
	}
	if n.RingSize > maxRingSize {
		return n, fmt.Errorf("%w: ring size %d exceeds %d", ErrInvalidCapacity, n.RingSize, maxRingSize)
	}
	if n.MaxListCapacity < n.ListCapacity || n.MaxListCapacity < n.FallbackCapacity {
		return n, fmt.Errorf("%w: max list capacity %d below initial capacity", ErrInvalidCapacity, n.MaxListCapacity)
	}
	n.RingSize = NextPowerOfTwo(n.RingSize)
	return n, nil
}
