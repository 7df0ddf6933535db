package codec

type releaseKind uint8

const (
	releaseDiscard releaseKind = iota
	releaseDeque
	releaseRing
	releaseShared
)

// releaseTarget is where an OutputList goes when it is recycled. Only the
// field matching kind is set; the zero value discards.
type releaseTarget struct {
	kind   releaseKind
	deque  *DequePool
	ring   *RingPool
	shared *SyncPool
}

func (t releaseTarget) release(l *OutputList) {
	switch t.kind {
	case releaseDeque:
		t.deque.release(l)
	case releaseRing:
		t.ring.release(l)
	case releaseShared:
		t.shared.release(l)
	}
}

// OutputList collects the messages a decoder produces for one unit of input.
// Lists are borrowed from a pool, filled, drained and then recycled, which
// clears them and hands them back to the pool they came from.
//
// An OutputList is owned by exactly one caller between Acquire and Recycle
// and is not safe for concurrent use.
type OutputList struct {
	buf    Buffer
	dirty  bool
	target releaseTarget
}

// NewOutputList creates a list that belongs to no pool; recycling it only
// clears it.
func NewOutputList(capacity int) (*OutputList, error) {
	buf, err := NewBuffer(capacity)
	if err != nil {
		return nil, err
	}
	return &OutputList{buf: *buf}, nil
}

// newOutputList builds a list bound to target. Capacities are validated by the pool options.
func newOutputList(target releaseTarget, capacity, maxCapacity int) *OutputList {
	return &OutputList{
		buf:    Buffer{items: make([]any, capacity), maxCap: maxCapacity},
		target: target,
	}
}

func (l *OutputList) Len() int { return l.buf.Len() }

func (l *OutputList) Cap() int { return l.buf.Cap() }

func (l *OutputList) Get(i int) (any, error) { return l.buf.Get(i) }

// UnsafeGet returns the slot at index i without a size check. The caller must
// have validated i.
func (l *OutputList) UnsafeGet(i int) any { return l.buf.UnsafeGet(i) }

// Items returns a view of the live elements, valid until the next mutation.
func (l *OutputList) Items() []any { return l.buf.Items() }

// Add appends a decoded message.
func (l *OutputList) Add(v any) error {
	if err := l.buf.Add(v); err != nil {
		return err
	}
	l.dirty = true
	return nil
}

func (l *OutputList) Set(i int, v any) (any, error) {
	old, err := l.buf.Set(i, v)
	if err != nil {
		return nil, err
	}
	l.dirty = true
	return old, nil
}

// Insert places v at index i, which must be < Len().
func (l *OutputList) Insert(i int, v any) error {
	if err := l.buf.Insert(i, v); err != nil {
		return err
	}
	l.dirty = true
	return nil
}

func (l *OutputList) Remove(i int) (any, error) { return l.buf.Remove(i) }

// Clear empties the list without releasing references and without resetting
// InsertedSinceRecycle.
func (l *OutputList) Clear() { l.buf.Clear() }

// InsertedSinceRecycle reports whether anything was added or set since the
// list was created or last recycled. Unlike Len it survives Clear and Drain.
func (l *OutputList) InsertedSinceRecycle() bool { return l.dirty }

// Drain passes every element to fn in order and then clears the list. If fn
// fails, draining stops, the list is left as is and the error is returned.
func (l *OutputList) Drain(fn func(any) error) error {
	for i, n := 0, l.buf.Len(); i < n; i++ {
		if err := fn(l.buf.UnsafeGet(i)); err != nil {
			return err
		}
	}
	l.buf.Clear()
	return nil
}

// Recycle releases every element reference, resets the list and returns it
// to its pool. It must be called exactly once per borrow, after which the
// caller must not touch the list again.
func (l *OutputList) Recycle() {
	l.buf.purge()
	l.dirty = false
	l.target.release(l)
}
