package limiter

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Registry hands out one weighted semaphore per origin, created lazily on
// first sight of that origin. The registry only grows during a run; the key
// set is bounded by the number of distinct origins the crawl encounters.
//
// The internal mutex is held only across map lookup and insertion, never
// across a blocking Acquire, so a saturated origin cannot stall discovery of
// other origins.
type Registry struct {
	mu       sync.Mutex
	limiters map[string]*semaphore.Weighted
	capacity int64
}

// NewRegistry returns a registry whose per-origin gates admit capacity
// concurrent holders each.
func NewRegistry(capacity int64) *Registry {
	return &Registry{
		limiters: make(map[string]*semaphore.Weighted),
		capacity: capacity,
	}
}

// Handle represents one reserved slot against a single origin. The goroutine
// that ends up owning the handle must call Release on every exit path;
// Release is idempotent so deferred and explicit releases can coexist.
type Handle struct {
	sem  *semaphore.Weighted
	once sync.Once
}

// Release returns the slot to the origin's gate. Safe to call more than once.
func (h *Handle) Release() {
	h.once.Do(func() {
		h.sem.Release(1)
	})
}

// Acquire blocks until a slot is free on origin's gate and returns a handle
// for it. The handle is typically acquired by a feed worker and transferred
// to the article worker it launches; from that moment the child owns the
// slot. Acquire returns an error only when ctx is cancelled while waiting.
func (r *Registry) Acquire(ctx context.Context, origin string) (*Handle, error) {
	sem := r.limiter(origin)
	if err := sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	return &Handle{sem: sem}, nil
}

// limiter returns the gate for origin, creating it atomically on first use.
func (r *Registry) limiter(origin string) *semaphore.Weighted {
	r.mu.Lock()
	defer r.mu.Unlock()

	sem, ok := r.limiters[origin]
	if !ok {
		sem = semaphore.NewWeighted(r.capacity)
		r.limiters[origin] = sem
	}
	return sem
}

// Size reports how many distinct origins have been seen so far.
func (r *Registry) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.limiters)
}
