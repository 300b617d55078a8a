package openaddressing

import (
	"fmt"

	"github.com/RoaringBitmap/roaring"
	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/hashfunc"
	"github.com/gostonefire/memhashmap/internal/conf"
	"github.com/gostonefire/memhashmap/internal/model"
	"github.com/gostonefire/memhashmap/storage"
)

// ArrayBasedStorage - Represents an implementation of storage for the Open Addressing Collision Resolution Technique.
// It uses one fixed size array of slots where each slot holds at most one entry. In case of a collision, it probes
// through the array using the collision sequence of the hash function, looking for an empty slot.
// Once all slots are occupied the storage will accept no more entries.
//
// Removed entries leave a deleted marker (tombstone) in their slot so that probe sequences passing through the slot
// still reach entries stored further along. Tombstones are reused when inserting new keys.
type ArrayBasedStorage[V any] struct {
	capacity  int64
	slots     []model.Slot[V]
	occupied  *roaring.Bitmap
	nOccupied int64
	nDeleted  int64
}

// NewArrayBasedStorage - Returns a pointer to a new instance of Array Based storage.
//   - capacity is the fixed number of slots, it has to be between 1 and conf.MaxCapacity
//
// It returns:
//   - arrayStorage which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewArrayBasedStorage[V any](capacity int64) (arrayStorage *ArrayBasedStorage[V], err error) {
	if capacity <= 0 || capacity > conf.MaxCapacity {
		err = fmt.Errorf("capacity must be a value between 1 and %d", conf.MaxCapacity)
		return
	}

	arrayStorage = &ArrayBasedStorage[V]{
		capacity: capacity,
		slots:    make([]model.Slot[V], capacity),
		occupied: roaring.New(),
	}

	return
}

// FindSlot - Is the Probing Collision Resolution Technique algorithm for finding the slot of a key.
// It iterates attempts from 0 up to conf.MaxCollisionAttempts, asking the hash function for the hash code of each
// attempt and compressing it to a slot index.
//   - key is the key to find a slot for
//   - hashFunction is the hash function providing the probe sequence through HandleCollision
//   - compress maps a hash code to a slot index
//   - forInsertion set to true returns the first reusable (deleted) slot if the key is not found
//
// It returns:
//   - index is the slot index of the matching entry, or of the slot to insert in if no match
//   - entry is a copy of the matching entry, or nil if no match
//   - err is of type crt.CapacityExhausted if no empty or matching slot was found within the maximum attempts
func (A *ArrayBasedStorage[V]) FindSlot(
	key string,
	hashFunction hashfunc.HashFunction,
	compress storage.CompressFunc,
	forInsertion bool,
) (
	index int64,
	entry *storage.Entry[V],
	err error,
) {
	var deletedIndex int64
	var hasDeleted bool

	for attempt := int64(0); attempt < conf.MaxCollisionAttempts; attempt++ {
		index = compress(hashFunction.HandleCollision(key, attempt))
		if !A.inRange(index) {
			err = crt.SlotOutOfRange{}
			return
		}

		slot := A.slots[index]
		switch slot.State {
		case model.SlotEmpty:
			if forInsertion && hasDeleted {
				index = deletedIndex
			}
			return

		case model.SlotOccupied:
			if slot.Entry.Matches(key) {
				e := slot.Entry
				entry = &e
				return
			}

		case model.SlotDeleted:
			if forInsertion && !hasDeleted {
				deletedIndex = index
				hasDeleted = true
			}
		}
	}

	// The table is full, or the hash function never reached an empty slot within the attempts
	if forInsertion && hasDeleted {
		index = deletedIndex
		return
	}

	index = 0
	err = crt.CapacityExhausted{}
	return
}

// Get - Returns a copy of the entry in slot index if the slot is occupied by key, otherwise nil
func (A *ArrayBasedStorage[V]) Get(index int64, key string) (entry *storage.Entry[V]) {
	if !A.inRange(index) {
		return
	}

	slot := A.slots[index]
	if slot.State == model.SlotOccupied && slot.Entry.Matches(key) {
		e := slot.Entry
		entry = &e
	}

	return
}

// Put - Stores entry in slot index regardless of what the slot held before.
//
// It returns:
//   - isNew is true if the slot was not occupied before (empty or deleted)
//   - err is of type crt.SlotOutOfRange if index is outside the storage
func (A *ArrayBasedStorage[V]) Put(index int64, entry storage.Entry[V]) (isNew bool, err error) {
	if !A.inRange(index) {
		err = crt.SlotOutOfRange{}
		return
	}

	fromState := A.slots[index].State
	A.slots[index] = model.Slot[V]{State: model.SlotOccupied, Entry: entry}
	A.updateUtilizationInfo(index, fromState, model.SlotOccupied)

	isNew = fromState != model.SlotOccupied

	return
}

// Remove - Marks slot index as deleted if it is occupied by key
func (A *ArrayBasedStorage[V]) Remove(index int64, key string) (removed bool) {
	if !A.inRange(index) {
		return
	}

	slot := A.slots[index]
	if slot.State != model.SlotOccupied || !slot.Entry.Matches(key) {
		return
	}

	A.slots[index] = model.Slot[V]{State: model.SlotDeleted}
	A.updateUtilizationInfo(index, model.SlotOccupied, model.SlotDeleted)

	removed = true
	return
}

// GetAllValues - Returns the values of all occupied slots in slot index order
func (A *ArrayBasedStorage[V]) GetAllValues() (values []V) {
	values = make([]V, 0, A.nOccupied)
	A.forEachOccupied(func(slot model.Slot[V]) {
		values = append(values, slot.Entry.Value)
	})

	return
}

// GetAllEntries - Returns the entries of all occupied slots in slot index order
func (A *ArrayBasedStorage[V]) GetAllEntries() (entries []storage.Entry[V]) {
	entries = make([]storage.Entry[V], 0, A.nOccupied)
	A.forEachOccupied(func(slot model.Slot[V]) {
		entries = append(entries, slot.Entry)
	})

	return
}

// IsSlotAvailable - Returns true if slot index is empty or deleted
func (A *ArrayBasedStorage[V]) IsSlotAvailable(index int64) bool {
	return A.inRange(index) && A.slots[index].State != model.SlotOccupied
}

// GetCapacity - Returns the number of slots
func (A *ArrayBasedStorage[V]) GetCapacity() int64 {
	return A.capacity
}

// GetSlotDistribution - Returns 1 for every occupied slot and 0 for every empty or deleted slot
func (A *ArrayBasedStorage[V]) GetSlotDistribution() (distribution []int64) {
	distribution = make([]int64, A.capacity)
	it := A.occupied.Iterator()
	for it.HasNext() {
		distribution[it.Next()] = 1
	}

	return
}

// GetUtilization - Returns the number of empty, occupied and deleted slots
func (A *ArrayBasedStorage[V]) GetUtilization() (nEmpty, nOccupied, nDeleted int64) {
	nOccupied = A.nOccupied
	nDeleted = A.nDeleted
	nEmpty = A.capacity - nOccupied - nDeleted

	return
}
