package hash

import (
	"math"

	"github.com/cespare/xxhash/v2"
)

// DoubleHash - Hash function using xxhash to create a hash value over the key and then applying HashFunc1 and
// HashFunc2 as primary respective probing functions.
// The probe sequence visits every slot exactly once when the table size (the capacity of the hash map) is a prime number.
type DoubleHash struct {
	tableSize int64
}

// NewDoubleHash - Returns a pointer to a new DoubleHash instance
func NewDoubleHash(tableSize int64) *DoubleHash {
	dh := &DoubleHash{}
	dh.SetTableSize(tableSize)
	return dh
}

// SetTableSize - Sets the table size for the hash function.
//   - tableSize is the number of slots of the hash map
func (D *DoubleHash) SetTableSize(tableSize int64) {
	if tableSize < 1 {
		tableSize = 1
	}
	D.tableSize = tableSize
}

// GetTableSize - Returns the table size the probe step is calculated for
func (D *DoubleHash) GetTableSize() int64 {
	return D.tableSize
}

// HashKey - Returns the xxhash of key, masked to a non-negative value
func (D *DoubleHash) HashKey(key string) int64 {
	return int64(xxhash.Sum64String(key) & math.MaxInt64)
}

// HashFunc1 - Given key it generates an index between 0 and table size - 1
func (D *DoubleHash) HashFunc1(key string) int64 {
	return D.HashKey(key) % D.tableSize
}

// HashFunc2 - Given key it generates the probe step, a value between 1 and table size - 1
func (D *DoubleHash) HashFunc2(key string) int64 {
	if D.tableSize < 3 {
		return 1
	}

	return 1 + ((D.HashKey(key) / D.tableSize) % (D.tableSize - 1))
}

// HandleCollision - Implements Double Hashing
func (D *DoubleHash) HandleCollision(key string, attempt int64) int64 {
	return D.HashFunc1(key) + attempt*D.HashFunc2(key)
}
