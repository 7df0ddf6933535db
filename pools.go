package codec

// Pools is the set of output list pools owned by one worker. Create one per
// worker when the worker starts and drop it with the worker; it is not safe
// for concurrent use.
type Pools struct {
	Ring  *RingPool
	Deque *DequePool
}

// NewPools creates and warms up the pools of a worker.
func NewPools(opts *PoolOptions) (*Pools, error) {
	o, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	return newPools(o), nil
}

func newPools(o PoolOptions) *Pools {
	return &Pools{
		Ring:  newRingPool(o),
		Deque: newDequePool(o),
	}
}

// Acquire borrows a list from the ring pool. Use it when the number of lists
// held at once is small and predictable.
func (p *Pools) Acquire() *OutputList { return p.Ring.Acquire() }

// AcquireUnbounded borrows a list from the deque pool, which keeps every list
// returned to it.
func (p *Pools) AcquireUnbounded() *OutputList { return p.Deque.Acquire() }
