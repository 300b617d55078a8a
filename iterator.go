package memhashmap

import (
	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/storage"
)

// EntryIterator - Is used to iterate over records one by one.
type EntryIterator[V any] struct {
	entries  []storage.Entry[V]
	position int
}

// newEntryIterator - Returns a pointer to a new EntryIterator struct
func newEntryIterator[V any](entries []storage.Entry[V]) *EntryIterator[V] {
	return &EntryIterator[V]{
		entries: entries,
	}
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (E *EntryIterator[V]) HasNext() bool {
	return E.position < len(E.entries)
}

// Next - Returns the next record.
// It returns:
//   - key is the key of the next record.
//   - value is the value of the next record.
//   - err is of type crt.NoRecordFound if there are no more records when calling this function.
func (E *EntryIterator[V]) Next() (key string, value V, err error) {
	if E.position >= len(E.entries) {
		err = crt.NoRecordFound{}
		return
	}

	key = E.entries[E.position].Key
	value = E.entries[E.position].Value
	E.position++

	return
}
