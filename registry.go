package jsonmap

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/tomruk/jsonmap-go/internal/sync"
)

// delegateEntry holds one delegate and its builder. The delegate is built
// lazily on first resolution and reused afterwards.
type delegateEntry[D any] struct {
	mu    sync.Mutex
	build func() D
	d     D
	built bool
}

func (e *delegateEntry[D]) get() D {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.built {
		e.d = e.build()
		e.build = nil
		e.built = true
	}
	return e.d
}

// registry maps nested Types to their delegates. It is populated once at
// construction and never mutated afterwards, so plain map reads and a
// thread-unsafe set are safe for concurrent use.
type registry[D any] struct {
	types   mapset.Set[Type]
	entries map[Type]*delegateEntry[D]
}

func newRegistry[D any](builders map[Type]func() D) (*registry[D], error) {
	r := &registry[D]{
		types:   mapset.NewThreadUnsafeSet[Type](),
		entries: make(map[Type]*delegateEntry[D], len(builders)),
	}
	for t, build := range builders {
		if build == nil {
			return nil, errNilDelegateBuilder
		}
		r.types.Add(t)
		r.entries[t] = &delegateEntry[D]{build: build}
	}
	return r, nil
}

func (r *registry[D]) resolve(t Type) (D, error) {
	e, ok := r.entries[t]
	if !ok {
		var zero D
		return zero, &UnresolvedTypeError{Type: t}
	}
	return e.get(), nil
}

func (r *registry[D]) contains(t Type) bool {
	return r.types.Contains(t)
}

func (r *registry[D]) registered() []Type {
	return r.types.ToSlice()
}
