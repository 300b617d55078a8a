package openaddressing

import "github.com/gostonefire/memhashmap/internal/model"

// inRange - Returns true if index addresses a slot in the storage
func (A *ArrayBasedStorage[V]) inRange(index int64) bool {
	return index >= 0 && index < A.capacity
}

// forEachOccupied - Calls fn for every occupied slot in slot index order
func (A *ArrayBasedStorage[V]) forEachOccupied(fn func(slot model.Slot[V])) {
	it := A.occupied.Iterator()
	for it.HasNext() {
		fn(A.slots[it.Next()])
	}
}

// updateUtilizationInfo - Updates the occupancy bitmap and counters given a slot state transition
func (A *ArrayBasedStorage[V]) updateUtilizationInfo(index int64, fromState, toState uint8) {
	switch fromState {
	case model.SlotOccupied:
		A.nOccupied--
		A.occupied.Remove(uint32(index))
	case model.SlotDeleted:
		A.nDeleted--
	}

	switch toState {
	case model.SlotOccupied:
		A.nOccupied++
		A.occupied.Add(uint32(index))
	case model.SlotDeleted:
		A.nDeleted++
	}
}
