package catalog

import "sync"

// Feed is a push-based view of a remotely owned collection. Each
// publication is a full, consistent snapshot, never a diff. New
// subscribers immediately receive the latest snapshot when one exists;
// until then consumers stay in a loading state.
type Feed[T any] struct {
	mu     sync.Mutex
	latest []T
	ready  bool
	subs   map[int]func([]T)
	nextID int
}

func NewFeed[T any]() *Feed[T] {
	return &Feed[T]{subs: make(map[int]func([]T))}
}

// Publish replaces the current snapshot and fans it out to every
// subscriber.
func (f *Feed[T]) Publish(snapshot []T) {
	f.mu.Lock()
	f.latest = snapshot
	f.ready = true
	fns := make([]func([]T), 0, len(f.subs))
	for _, fn := range f.subs {
		fns = append(fns, fn)
	}
	f.mu.Unlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}

// Subscribe registers fn and returns its unsubscribe function. The
// latest snapshot, if any, is replayed before Subscribe returns.
func (f *Feed[T]) Subscribe(fn func([]T)) func() {
	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.subs[id] = fn
	replay := f.ready
	snapshot := f.latest
	f.mu.Unlock()

	if replay {
		fn(snapshot)
	}

	return func() {
		f.mu.Lock()
		delete(f.subs, id)
		f.mu.Unlock()
	}
}

// Latest returns the current snapshot and whether one has arrived yet.
func (f *Feed[T]) Latest() ([]T, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.latest, f.ready
}
