package storage

import "github.com/gostonefire/memhashmap/hashfunc"

// CompressFunc - Maps a hash code to a slot index between 0 and capacity - 1
type CompressFunc func(hashCode int64) int64

// Entry - Represents one key/value pair stored in the hash map
type Entry[V any] struct {
	Key   string
	Value V
}

// Matches - Returns true if the entry has exactly the given key
func (E Entry[V]) Matches(key string) bool {
	return E.Key == key
}

// Strategy - Interface for any storage implementation of a Collision Resolution Technique.
// A Strategy is created with a fixed capacity (number of slots) that never changes.
type Strategy[V any] interface {
	// FindSlot - Locates the slot for the key. If an entry with the key exists it is returned together with its slot
	// index, otherwise entry is nil and index is where the key would be inserted if forInsertion is true.
	FindSlot(key string, hashFunction hashfunc.HashFunction, compress CompressFunc, forInsertion bool) (index int64, entry *Entry[V], err error)
	// Get - Returns the entry with the key stored in slot index, or nil if there is none
	Get(index int64, key string) (entry *Entry[V])
	// Put - Stores entry in slot index. isNew is true if the key was not already stored there.
	Put(index int64, entry Entry[V]) (isNew bool, err error)
	// Remove - Removes the entry with the key from slot index, removed is true if an entry was removed
	Remove(index int64, key string) (removed bool)
	// GetAllValues - Returns the values of all stored entries
	GetAllValues() (values []V)
	// GetAllEntries - Returns copies of all stored entries, in the same order as GetAllValues
	GetAllEntries() (entries []Entry[V])
	// IsSlotAvailable - Returns true if a new entry can be stored in slot index
	IsSlotAvailable(index int64) bool
	// GetCapacity - Returns the number of slots
	GetCapacity() int64
	// GetSlotDistribution - Returns the number of entries stored in each slot
	GetSlotDistribution() (distribution []int64)
}
