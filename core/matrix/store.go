// core/matrix/store.go
package matrix

import "sync"

// Store memoizes matrix loads per identity. The first Get for an identity
// builds the matrix through the store's source; later Gets return the same
// immutable value. Failed loads are not cached, so a transient source error
// does not poison the identity.
type Store struct {
	src Source

	mu    sync.Mutex
	cache map[Identity]*Matrix
}

// NewStore returns a store backed by src. A nil src means the bundled data.
func NewStore(src Source) *Store {
	if src == nil {
		src = EmbeddedSource
	}
	return &Store{src: src, cache: make(map[Identity]*Matrix)}
}

// DefaultStore serves the bundled matrices with process-wide memoization.
var DefaultStore = NewStore(nil)

// Get returns the matrix for id, loading it on first use.
func (s *Store) Get(id Identity) (*Matrix, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.cache[id]; ok {
		return m, nil
	}
	m, err := LoadFrom(s.src, id)
	if err != nil {
		return nil, err
	}
	s.cache[id] = m
	return m, nil
}
