package separatechaining

import (
	"fmt"

	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/hashfunc"
	"github.com/gostonefire/memhashmap/internal/conf"
	"github.com/gostonefire/memhashmap/storage"
)

// SeparateChaining - Represents an implementation of storage for the Separate Chaining Collision Resolution Technique.
// Each slot is a bucket holding an unordered list of entries, so buckets never fill up and the number of entries
// is not bounded by the capacity.
type SeparateChaining[V any] struct {
	capacity int64
	buckets  [][]storage.Entry[V]
	nEntries int64
}

// NewSeparateChaining - Returns a pointer to a new instance of Separate Chaining storage.
//   - capacity is the fixed number of buckets, it has to be between 1 and conf.MaxCapacity
//
// It returns:
//   - chaining which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewSeparateChaining[V any](capacity int64) (chaining *SeparateChaining[V], err error) {
	if capacity <= 0 || capacity > conf.MaxCapacity {
		err = fmt.Errorf("capacity must be a value between 1 and %d", conf.MaxCapacity)
		return
	}

	chaining = &SeparateChaining[V]{
		capacity: capacity,
		buckets:  make([][]storage.Entry[V], capacity),
	}

	return
}

// FindSlot - Hashes the key once with HashKey (no probing) and looks for the key in that bucket.
//
// It returns:
//   - index is the bucket the key belongs to
//   - entry is a copy of the matching entry, or nil if no match
//   - err is of type crt.SlotOutOfRange if compress gave an index outside the storage
func (S *SeparateChaining[V]) FindSlot(
	key string,
	hashFunction hashfunc.HashFunction,
	compress storage.CompressFunc,
	forInsertion bool,
) (
	index int64,
	entry *storage.Entry[V],
	err error,
) {
	index = compress(hashFunction.HashKey(key))
	if !S.inRange(index) {
		err = crt.SlotOutOfRange{}
		return
	}

	entry = S.Get(index, key)

	return
}

// Get - Scans bucket index for the key and returns a copy of the entry, or nil if not found
func (S *SeparateChaining[V]) Get(index int64, key string) (entry *storage.Entry[V]) {
	if !S.inRange(index) {
		return
	}

	for _, e := range S.buckets[index] {
		if e.Matches(key) {
			entry = &e
			return
		}
	}

	return
}

// Put - Replaces the entry with the same key in bucket index, or appends it if there is none.
//
// It returns:
//   - isNew is true if the entry was appended
//   - err is of type crt.SlotOutOfRange if index is outside the storage
func (S *SeparateChaining[V]) Put(index int64, entry storage.Entry[V]) (isNew bool, err error) {
	if !S.inRange(index) {
		err = crt.SlotOutOfRange{}
		return
	}

	bucket := S.buckets[index]
	for i := range bucket {
		if bucket[i].Matches(entry.Key) {
			bucket[i] = entry
			return
		}
	}

	S.buckets[index] = append(bucket, entry)
	S.nEntries++

	isNew = true
	return
}

// Remove - Removes the first entry with the key from bucket index, keeping the order of the others
func (S *SeparateChaining[V]) Remove(index int64, key string) (removed bool) {
	if !S.inRange(index) {
		return
	}

	bucket := S.buckets[index]
	for i := range bucket {
		if bucket[i].Matches(key) {
			S.buckets[index] = append(bucket[:i], bucket[i+1:]...)
			S.nEntries--
			removed = true
			return
		}
	}

	return
}

// GetAllValues - Returns all values in bucket order, and within a bucket in insertion order
func (S *SeparateChaining[V]) GetAllValues() (values []V) {
	values = make([]V, 0, S.nEntries)
	for _, bucket := range S.buckets {
		for _, e := range bucket {
			values = append(values, e.Value)
		}
	}

	return
}

// GetAllEntries - Returns all entries in bucket order, and within a bucket in insertion order
func (S *SeparateChaining[V]) GetAllEntries() (entries []storage.Entry[V]) {
	entries = make([]storage.Entry[V], 0, S.nEntries)
	for _, bucket := range S.buckets {
		entries = append(entries, bucket...)
	}

	return
}

// IsSlotAvailable - Buckets never fill up, so any bucket within the storage is available
func (S *SeparateChaining[V]) IsSlotAvailable(index int64) bool {
	return S.inRange(index)
}

// GetCapacity - Returns the number of buckets
func (S *SeparateChaining[V]) GetCapacity() int64 {
	return S.capacity
}

// GetSlotDistribution - Returns the number of entries in each bucket
func (S *SeparateChaining[V]) GetSlotDistribution() (distribution []int64) {
	distribution = make([]int64, S.capacity)
	for i, bucket := range S.buckets {
		distribution[i] = int64(len(bucket))
	}

	return
}

// inRange - Returns true if index addresses a bucket in the storage
func (S *SeparateChaining[V]) inRange(index int64) bool {
	return index >= 0 && index < S.capacity
}
