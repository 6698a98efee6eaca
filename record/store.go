package record

import "iter"

// Store is an immutable, ordered collection of records.
type Store struct {
	records []Record
}

// NewStore builds a Store from records. The slice and each record are
// copied, so later changes by the caller do not reach the Store.
func NewStore(records []Record) *Store {
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return &Store{records: out}
}

// Len returns the number of records.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// At returns the i-th record in load order.
func (s *Store) At(i int) Record {
	return s.records[i]
}

// All yields every record in load order.
func (s *Store) All() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		if s == nil {
			return
		}
		for _, r := range s.records {
			if !yield(r) {
				return
			}
		}
	}
}
