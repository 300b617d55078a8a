package hash

import "hash/crc32"

// QuadraticHash - Hash function using crc32.ChecksumIEEE to create a hash value over the key, and handling collisions
// by adding triangular numbers ((attempt^2 + attempt) / 2) to it.
// The probe sequence visits every slot exactly once when the capacity of the hash map is an exponent of 2.
type QuadraticHash struct{}

// NewQuadraticHash - Returns a pointer to a new QuadraticHash instance
func NewQuadraticHash() *QuadraticHash {
	return &QuadraticHash{}
}

// HashKey - Returns the crc32 checksum of key
func (Q *QuadraticHash) HashKey(key string) int64 {
	return int64(crc32.ChecksumIEEE([]byte(key)))
}

// HandleCollision - Implements Quadratic Probing
func (Q *QuadraticHash) HandleCollision(key string, attempt int64) int64 {
	return Q.HashKey(key) + (attempt*attempt+attempt)/2
}
