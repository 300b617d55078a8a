package memhashmap

import (
	"errors"
	"fmt"

	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/internal/utils"
	"github.com/gostonefire/memhashmap/storage"
	"go.uber.org/zap"
)

// Get - Gets the value stored for the given key.
//   - key is the identifier of a record, any string including the empty string is allowed
//
// It returns:
//   - value is the value of the matching record if found, otherwise the zero value of V
//   - found is true if a record with the key exists
func (H *HashMap[V]) Get(key string) (value V, found bool) {
	_, entry := H.lookup(key)
	if entry == nil {
		return
	}

	value = entry.Value
	found = true

	return
}

// Set - Updates an existing record with new value or adds it if no existing is found with same key.
//   - key is the identifier of a record
//   - value is the value to store along with the key
//
// It returns:
//   - err is of type crt.CapacityExhausted (wrapped) if no slot could be found for a new key, or a standard error
func (H *HashMap[V]) Set(key string, value V) (err error) {
	index, _, err := H.storage.FindSlot(key, H.hashFunction, H.compress, true)
	if err != nil {
		if errors.Is(err, crt.CapacityExhausted{}) {
			H.logger.Warn("no slot available for key",
				zap.String("key", key),
				zap.Int64("size", H.size),
				zap.Int64("capacity", H.capacity),
			)
		}
		err = fmt.Errorf("error while finding slot for key %q: %w", key, err)
		return
	}

	isNew, err := H.storage.Put(index, storage.Entry[V]{Key: key, Value: value})
	if err != nil {
		err = fmt.Errorf("error while storing record in slot %d: %w", index, err)
		return
	}

	if isNew {
		H.size++
	}

	return
}

// Delete - Removes the record with the given key, deleting an absent key is a no-op.
//   - key is the identifier of a record
//
// It returns:
//   - removed is true if a record was removed
func (H *HashMap[V]) Delete(key string) (removed bool) {
	_, removed = H.Pop(key)

	return
}

// Pop - Returns the value corresponding to key and removes the record from the hash map.
//   - key is the identifier of a record
//
// It returns:
//   - value is the value of the removed record, otherwise the zero value of V
//   - found is true if a record was removed
func (H *HashMap[V]) Pop(key string) (value V, found bool) {
	index, entry := H.lookup(key)
	if entry == nil {
		return
	}

	if !H.storage.Remove(index, key) {
		return
	}

	H.size--
	value = entry.Value
	found = true

	return
}

// Contains - Returns true if a record with the given key exists
func (H *HashMap[V]) Contains(key string) bool {
	_, entry := H.lookup(key)

	return entry != nil
}

// Values - Returns the values of all records, the order is defined by the storage strategy
func (H *HashMap[V]) Values() []V {
	return H.storage.GetAllValues()
}

// Keys - Returns the keys of all records, in the same order as Values
func (H *HashMap[V]) Keys() (keys []string) {
	entries := H.storage.GetAllEntries()
	keys = make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}

	return
}

// Size - Returns the number of records
func (H *HashMap[V]) Size() int64 {
	return H.size
}

// Capacity - Returns the fixed number of slots (buckets)
func (H *HashMap[V]) Capacity() int64 {
	return H.capacity
}

// Iterator - Returns an iterator over a snapshot of all records, changes to the hash map made after the call
// are not seen by the iterator.
func (H *HashMap[V]) Iterator() *EntryIterator[V] {
	return newEntryIterator(H.storage.GetAllEntries())
}

// Stat - Walks through the slot distribution and produces a HashMapStat struct with information.
//   - includeDistribution set to true will include a slice of length Capacity with number of records per slot, false will set HashMapStat.SlotDistribution to nil.
func (H *HashMap[V]) Stat(includeDistribution bool) (hashMapStat *HashMapStat) {
	var hms HashMapStat

	distribution := H.storage.GetSlotDistribution()
	for _, n := range distribution {
		if n == 0 {
			continue
		}
		hms.UsedSlots++
		if n > hms.MaxSlotLength {
			hms.MaxSlotLength = n
		}
	}

	if u, ok := H.storage.(utilizer); ok {
		_, _, hms.DeletedSlots = u.GetUtilization()
	}

	hms.Records = H.size
	hms.Capacity = H.capacity
	hms.LoadFactor = float64(H.size) / float64(H.capacity)
	if hms.UsedSlots > 0 {
		hms.AverageSlotLength = float64(H.size) / float64(hms.UsedSlots)
	}
	if includeDistribution {
		hms.SlotDistribution = distribution
	}

	hashMapStat = &hms
	return
}

// lookup - Finds the slot index and entry for key, entry is nil if the key is not stored.
// A probe sequence that runs out of attempts means the key is not stored.
func (H *HashMap[V]) lookup(key string) (index int64, entry *storage.Entry[V]) {
	index, entry, err := H.storage.FindSlot(key, H.hashFunction, H.compress, false)
	if err != nil {
		H.logger.Debug("lookup ended without match", zap.String("key", key), zap.Error(err))
		entry = nil
	}

	return
}

// compress - Maps a hash code to a slot index using a non-negative modulo of the capacity
func (H *HashMap[V]) compress(hashCode int64) int64 {
	return utils.Mod(hashCode, H.capacity)
}
