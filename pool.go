package codec

import (
	"sync"

	"github.com/gammazero/deque"
	logging "github.com/ipfs/go-log/v2"

	"github.com/jackhman/netty/codec/metrics"
)

var log = logging.Logger("codec/outlist")

// fabricate creates a list for a caller that found its pool empty. The list is
// bound to no pool and is dropped on recycle.
func fabricate(kind string, o *PoolOptions) *OutputList {
	log.Debugw("Pool empty, creating unpooled output list", "pool", kind)
	metrics.RecordFabricated(kind)
	return newOutputList(releaseTarget{}, o.FallbackCapacity, o.MaxListCapacity)
}

// DequePool is an unbounded LIFO pool of output lists. It grows with every
// release and is meant to be owned by a single worker.
type DequePool struct {
	idle deque.Deque[*OutputList]
	opts PoolOptions
}

// NewDequePool creates a DequePool holding opts.DequeWarmUp idle lists.
func NewDequePool(opts *PoolOptions) (*DequePool, error) {
	o, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	return newDequePool(o), nil
}

func newDequePool(o PoolOptions) *DequePool {
	p := &DequePool{opts: o}
	target := releaseTarget{kind: releaseDeque, deque: p}
	for i := 0; i < o.DequeWarmUp; i++ {
		p.idle.PushBack(newOutputList(target, o.ListCapacity, o.MaxListCapacity))
	}
	return p
}

// Acquire returns the most recently released list, or a fresh unpooled one
// when the pool is empty.
func (p *DequePool) Acquire() *OutputList {
	if p.idle.Len() == 0 {
		return fabricate(metrics.PoolDeque, &p.opts)
	}
	return p.idle.PopBack()
}

// Idle returns the number of lists held by the pool.
func (p *DequePool) Idle() int { return p.idle.Len() }

func (p *DequePool) release(l *OutputList) { p.idle.PushBack(l) }

// RingPool is a fixed-size pool of output lists kept in a power-of-two ring.
// Lists are handed out most recently released first. The ring never holds
// more than its capacity; callers size it to their maximum borrow depth.
type RingPool struct {
	elements []*OutputList
	mask     int
	cursor   int // next slot to release into
	count    int // idle lists
	opts     PoolOptions
}

// NewRingPool creates a full RingPool of NextPowerOfTwo(opts.RingSize) lists.
func NewRingPool(opts *PoolOptions) (*RingPool, error) {
	o, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	return newRingPool(o), nil
}

func newRingPool(o PoolOptions) *RingPool {
	p := &RingPool{
		elements: make([]*OutputList, o.RingSize),
		mask:     o.RingSize - 1,
		opts:     o,
	}
	target := releaseTarget{kind: releaseRing, ring: p}
	for i := range p.elements {
		p.elements[i] = newOutputList(target, o.ListCapacity, o.MaxListCapacity)
	}
	p.count = len(p.elements)
	p.cursor = len(p.elements) & p.mask
	return p
}

// Acquire takes the list at the top of the ring, or a fresh unpooled one when
// the ring is empty.
func (p *RingPool) Acquire() *OutputList {
	if p.count == 0 {
		return fabricate(metrics.PoolRing, &p.opts)
	}
	p.count--
	idx := (p.cursor - 1) & p.mask
	l := p.elements[idx]
	p.elements[idx] = nil
	p.cursor = idx
	return l
}

// Idle returns the number of lists held by the ring.
func (p *RingPool) Idle() int { return p.count }

// Cap returns the ring size.
func (p *RingPool) Cap() int { return len(p.elements) }

func (p *RingPool) release(l *OutputList) {
	if p.count == len(p.elements) {
		// Only reachable by recycling a list twice.
		log.Warnw("Ring pool full, dropping output list", "capacity", len(p.elements))
		metrics.RecordOverflow(metrics.PoolRing)
		return
	}
	idx := p.cursor
	p.elements[idx] = l
	p.cursor = (idx + 1) & p.mask
	p.count++
}

// SyncPool shares output lists between goroutines through a sync.Pool. It
// trades the locality of the per-worker pools for safe concurrent use.
type SyncPool struct {
	pool sync.Pool
}

// NewSyncPool creates a SyncPool whose lists start with opts.ListCapacity.
func NewSyncPool(opts *PoolOptions) (*SyncPool, error) {
	o, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	p := &SyncPool{}
	target := releaseTarget{kind: releaseShared, shared: p}
	p.pool.New = func() any {
		metrics.RecordFabricated(metrics.PoolShared)
		return newOutputList(target, o.ListCapacity, o.MaxListCapacity)
	}
	return p, nil
}

// Acquire returns an idle list. It is safe for concurrent use.
func (p *SyncPool) Acquire() *OutputList {
	return p.pool.Get().(*OutputList)
}

func (p *SyncPool) release(l *OutputList) { p.pool.Put(l) }
