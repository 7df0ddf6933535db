package codec

import (
	"fmt"
	"math"

	"github.com/jackhman/netty/codec/metrics"
)

// DefaultMaxCapacity is the largest backing array a Buffer will grow to.
const DefaultMaxCapacity = math.MaxInt32

// Buffer is a growable, index-checked sequence of non-nil elements backed by a
// single slice. It doubles its storage when full and never shrinks.
//
// A Buffer is not safe for concurrent use.
type Buffer struct {
	items  []any // len(items) is the capacity
	size   int
	hwm    int // largest size since the last purge
	maxCap int
}

// NewBuffer creates a Buffer with the given initial capacity and DefaultMaxCapacity.
func NewBuffer(capacity int) (*Buffer, error) {
	return NewBufferSize(capacity, DefaultMaxCapacity)
}

// NewBufferSize creates a Buffer with the given initial capacity that refuses to
// grow beyond maxCapacity.
func NewBufferSize(capacity, maxCapacity int) (*Buffer, error) {
	if capacity < 1 || maxCapacity < capacity {
		return nil, fmt.Errorf("%w: capacity %d, max %d", ErrInvalidCapacity, capacity, maxCapacity)
	}
	return &Buffer{items: make([]any, capacity), maxCap: maxCapacity}, nil
}

// Len returns the number of live elements.
func (b *Buffer) Len() int { return b.size }

// Cap returns the length of the backing storage.
func (b *Buffer) Cap() int { return len(b.items) }

// Get returns the element at index i.
func (b *Buffer) Get(i int) (any, error) {
	if !checkIndex(i, b.size) {
		return nil, b.rangeErr(i)
	}
	return b.items[i], nil
}

// Add appends v, growing the backing storage first if it is full.
func (b *Buffer) Add(v any) error {
	if v == nil {
		return ErrNilElement
	}
	if b.size == len(b.items) {
		if err := b.grow(); err != nil {
			return err
		}
	}
	b.items[b.size] = v
	b.size++
	b.mark()
	return nil
}

// Set replaces the element at index i and returns the previous one.
func (b *Buffer) Set(i int, v any) (any, error) {
	if v == nil {
		return nil, ErrNilElement
	}
	if !checkIndex(i, b.size) {
		return nil, b.rangeErr(i)
	}
	old := b.items[i]
	b.items[i] = v
	return old, nil
}

// Insert places v at index i, shifting the elements at and after i one slot
// toward the end. i must address a live element: inserting at Len() is
// rejected, use Add to extend the tail.
func (b *Buffer) Insert(i int, v any) error {
	if v == nil {
		return ErrNilElement
	}
	if !checkIndex(i, b.size) {
		return b.rangeErr(i)
	}
	if b.size == len(b.items) {
		if err := b.grow(); err != nil {
			return err
		}
	}
	copy(b.items[i+1:b.size+1], b.items[i:b.size])
	b.items[i] = v
	b.size++
	b.mark()
	return nil
}

// Remove deletes the element at index i, shifting later elements toward the
// front, and returns it. The vacated tail slot is cleared.
func (b *Buffer) Remove(i int) (any, error) {
	if !checkIndex(i, b.size) {
		return nil, b.rangeErr(i)
	}
	old := b.items[i]
	copy(b.items[i:b.size-1], b.items[i+1:b.size])
	b.size--
	b.items[b.size] = nil
	return old, nil
}

// Clear drops all elements by resetting the size. Storage is left as is; call
// purge to release references.
func (b *Buffer) Clear() { b.size = 0 }

// UnsafeGet returns the backing slot at index i without checking it against
// Len. Indexes outside [0, Cap()) still panic.
func (b *Buffer) UnsafeGet(i int) any { return b.items[i] }

// Items returns the live elements. The slice aliases the backing storage and
// is only valid until the next mutation.
func (b *Buffer) Items() []any { return b.items[:b.size:b.size] }

// purge clears every slot that held an element since the last purge and empties the buffer.
func (b *Buffer) purge() {
	n := max(b.size, b.hwm)
	clear(b.items[:n])
	b.size = 0
	b.hwm = 0
}

func (b *Buffer) mark() {
	if b.size > b.hwm {
		b.hwm = b.size
	}
}

func (b *Buffer) grow() error {
	newCap := len(b.items) << 1
	if newCap <= 0 || newCap > b.maxCap {
		return fmt.Errorf("%w: cannot grow %d beyond %d", ErrCapacityExhausted, len(b.items), b.maxCap)
	}
	items := make([]any, newCap)
	copy(items, b.items)
	b.items = items
	metrics.RecordGrowth()
	return nil
}

func (b *Buffer) rangeErr(i int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, b.size)
}
