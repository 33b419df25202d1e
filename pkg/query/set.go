package query

import (
	"sort"
	"sync"

	"github.com/btcsuite/btcd/chaincfg"

	"github.com/Amr-9/VanityQuery/pkg/keys"
)

// Set is the scheduler-side collection of queries. It keeps queries in
// priority order so evaluation tries the cheapest ones first, and it is
// the place where the advisory find-unlimited flag takes effect: a
// matched query not marked find-unlimited is retired from the set.
//
// A Set is safe for concurrent use. Matching holds a read lock only, so
// worker goroutines can evaluate candidates in parallel.
type Set struct {
	mu      sync.RWMutex
	queries []*Query
}

// NewSet creates a Set holding the given queries.
func NewSet(queries ...*Query) *Set {
	s := &Set{}
	for _, q := range queries {
		s.Add(q)
	}
	return s
}

// Add inserts a query, keeping the set in priority order. Duplicates
// (per Equal) are ignored.
func (s *Set) Add(q *Query) {
	if q == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, have := range s.queries {
		if have.Equal(q) {
			return
		}
	}
	i := sort.Search(len(s.queries), func(i int) bool {
		return s.queries[i].Compare(q) >= 0
	})
	s.queries = append(s.queries, nil)
	copy(s.queries[i+1:], s.queries[i:])
	s.queries[i] = q
}

// Remove deletes the first query equal to q and reports whether one was
// found.
func (s *Set) Remove(q *Query) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(q)
}

func (s *Set) removeLocked(q *Query) bool {
	for i, have := range s.queries {
		if have.Equal(q) {
			s.queries = append(s.queries[:i], s.queries[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether the set holds a query equal to q.
func (s *Set) Contains(q *Query) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, have := range s.queries {
		if have.Equal(q) {
			return true
		}
	}
	return false
}

// Len returns the number of queries in the set.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.queries)
}

// Queries returns the queries in priority order. The slice is a copy,
// sorted against the queries' current configuration (the internal order
// is fixed at insertion and can go stale if compression flags are
// toggled afterwards); mutating it does not affect the set.
func (s *Set) Queries() []*Query {
	s.mu.RLock()
	out := make([]*Query, len(s.queries))
	copy(out, s.queries)
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		return out[i].Compare(out[j]) < 0
	})
	return out
}

// Match evaluates the queries in priority order against the key and
// returns the first one that matches. A matched query whose
// find-unlimited flag is unset is retired from the set before returning,
// so the next candidate key will not be tested against it again.
func (s *Set) Match(key keys.Key, params *chaincfg.Params) (*Query, bool) {
	s.mu.RLock()
	var matched *Query
	for _, q := range s.queries {
		if q.Matches(key, params) {
			matched = q
			break
		}
	}
	s.mu.RUnlock()

	if matched == nil {
		return nil, false
	}
	if !matched.IsFindUnlimited() {
		s.mu.Lock()
		s.removeLocked(matched)
		s.mu.Unlock()
	}
	return matched, true
}
