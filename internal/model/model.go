package model

import "github.com/gostonefire/memhashmap/storage"

// SlotEmpty - State indicating a slot that is or has never been in use
const SlotEmpty uint8 = 0

// SlotOccupied - State indicating a slot that is in use
const SlotOccupied uint8 = 1

// SlotDeleted - State indicating a slot that has been in use but was deleted
const SlotDeleted uint8 = 2

// Slot - Represents one slot in an open addressing table
type Slot[V any] struct {
	State uint8
	Entry storage.Entry[V]
}
