package codec

import "github.com/puzpuzpuz/xsync/v4"

// Registry hands out one Pools per worker key, for frameworks that identify
// their workers (event loops, shards) by key instead of passing a handle
// along. The registry itself is safe for concurrent use; each Pools it
// returns must still only be used by the worker owning the key.
type Registry[K comparable] struct {
	opts  PoolOptions
	pools *xsync.Map[K, *Pools]
}

// NewRegistry creates a Registry that builds every Pools with opts.
func NewRegistry[K comparable](opts *PoolOptions) (*Registry[K], error) {
	o, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	return &Registry[K]{opts: o, pools: xsync.NewMap[K, *Pools]()}, nil
}

// Pools returns the pools of worker key, creating them on first use.
func (r *Registry[K]) Pools(key K) *Pools {
	if p, ok := r.pools.Load(key); ok {
		return p
	}
	p, _ := r.pools.LoadOrStore(key, newPools(r.opts))
	return p
}

// Close forgets the pools of worker key. Lists still borrowed from them are
// unaffected and return to the orphaned pools when recycled.
func (r *Registry[K]) Close(key K) {
	r.pools.Delete(key)
}

// Len returns the number of workers with pools.
func (r *Registry[K]) Len() int {
	return r.pools.Size()
}
