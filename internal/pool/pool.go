// Package pool provides small object pools for go-spar's formatting paths,
// keeping repeated log writes off the allocator.
package pool

import "sync"

// Pool is a generic, type-safe wrapper around sync.Pool with an optional
// reset function applied before reuse.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T)
}

// NewPool creates a pool backed by the given factory function.
func NewPool[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any { return factory() },
		},
	}
}

// NewPoolWithReset creates a pool whose objects are reset before each reuse.
func NewPoolWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := NewPool(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool, creating one if necessary.
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns an object to the pool for reuse.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	p.pool.Put(obj)
}

// bufferPool recycles the byte buffers the logger formats messages into.
// One size class is enough: log lines are short and the buffers keep
// whatever capacity they grow to.
var bufferPool = NewPoolWithReset(
	func() *[]byte {
		buf := make([]byte, 0, 256)
		return &buf
	},
	func(buf *[]byte) {
		*buf = (*buf)[:0]
	},
)

// GetBuffer retrieves an empty byte buffer from the shared pool.
func GetBuffer() *[]byte {
	return bufferPool.Get()
}

// PutBuffer returns a buffer to the shared pool.
func PutBuffer(buf *[]byte) {
	bufferPool.Put(buf)
}
