package hashfunc

// SimpleAddition - Built in hash function summing the bytes of the key, probing linearly on collisions
const SimpleAddition int = 0

// Quadratic - Built in crc32 based hash function probing with triangular numbers on collisions
const Quadratic int = 1

// Double - Built in xxhash based hash function using double hashing on collisions
const Double int = 2

// HashFunction - Interface that permits an implementation using the HashMap to supply a custom hash function
// suited for its particular distribution of keys.
type HashFunction interface {
	// HashKey - Given key it generates a hash code. The hash code is compressed to a slot index by the hash map
	// using modulo capacity, so any int64 (including negative numbers) is accepted.
	// It must be deterministic and must not panic for any key, including the empty string.
	HashKey(key string) int64

	// HandleCollision - Given key and attempt it generates the hash code to try in that attempt of an open addressing
	// probe sequence. Attempt 0 is the first probe. Increasing attempts should produce different slot indexes after
	// compression, otherwise the probing will end in a crt.CapacityExhausted error.
	// The function is not used for the Separate Chaining Collision Resolution Technique.
	HandleCollision(key string, attempt int64) int64
}

// TableSizer - Optional interface for hash functions that need to know the number of slots they address,
// for instance Double Hashing where the probe step depends on the table size.
// If a HashFunction implements it, SetTableSize is called once when the hash map is created.
type TableSizer interface {
	SetTableSize(tableSize int64)
}
