package record

import "reflect"

// Store is the per-type cache owned by a client session. It holds the
// most recently fetched record for each id, in server-provided order.
//
// The store is deliberately simple: a full refresh replaces the whole
// contents, there is no partial eviction or TTL, and nothing here is
// safe for concurrent use. Queries against the store are only as fresh
// as the last refresh.
type Store[T Model] struct {
	items map[string]T
	order []string
}

func NewStore[T Model]() *Store[T] {
	return &Store[T]{items: map[string]T{}}
}

// Replace clears the store and repopulates it from the batch, keeping
// the batch order. When the batch repeats an id the first occurrence
// wins.
func (s *Store[T]) Replace(batch []T) {
	s.Clear()
	for _, rec := range batch {
		s.Put(rec)
	}
}

// Put inserts or overwrites a single record.
func (s *Store[T]) Put(rec T) {
	id := rec.RecordID()
	if _, ok := s.items[id]; !ok {
		s.order = append(s.order, id)
	}
	s.items[id] = rec
}

// Get returns the cached record for id, if any.
func (s *Store[T]) Get(id string) (T, bool) {
	rec, ok := s.items[id]
	return rec, ok
}

// All returns the cached records in insertion order.
func (s *Store[T]) All() []T {
	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out
}

// Where scans the cache and returns the records whose declared-field
// values exactly match every supplied key/value pair. An empty store or
// no match yields an empty slice, never an error. Results are only
// guaranteed fresh immediately after a full refresh.
func (s *Store[T]) Where(fields map[string]any) []T {
	want := make(map[string]any, len(fields))
	for k, v := range fields {
		want[k] = normalize(v)
	}

	found := []T{}
	for _, id := range s.order {
		rec := s.items[id]
		values, err := Serialize(rec)
		if err != nil {
			continue
		}
		match := true
		for k, v := range want {
			if !reflect.DeepEqual(values[k], v) {
				match = false
				break
			}
		}
		if match {
			found = append(found, rec)
		}
	}
	return found
}

// Len returns the number of cached records.
func (s *Store[T]) Len() int {
	return len(s.items)
}

// Clear empties the store.
func (s *Store[T]) Clear() {
	s.items = map[string]T{}
	s.order = nil
}
