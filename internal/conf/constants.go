package conf

import "math"

// MaxCollisionAttempts - Maximum number of probes an open addressing search does before giving up,
// it bounds the probing when the table is full or the hash function degenerates
const MaxCollisionAttempts int64 = 1000

// MaxCapacity - Highest capacity a hash map can be created with, slot indexes are tracked in 32-bit bitmaps
const MaxCapacity int64 = math.MaxUint32
