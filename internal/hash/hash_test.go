//go:build unit

package hash

import (
	"fmt"
	"math"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/gostonefire/memhashmap/internal/utils"
	"github.com/stretchr/testify/assert"
)

// visits - Compresses the first tableSize probes of key and counts the visits per slot
func visits(handleCollision func(key string, attempt int64) int64, key string, tableSize int64) []int {
	visit := make([]int, tableSize)
	for i := int64(0); i < tableSize; i++ {
		visit[utils.Mod(handleCollision(key, i), tableSize)]++
	}

	return visit
}

func TestSimpleAdditionHash_HashKey(t *testing.T) {
	t.Run("sums the bytes of the key", func(t *testing.T) {
		// Prepare
		h := NewSimpleAdditionHash()

		// Execute and Check
		assert.Equal(t, int64(97), h.HashKey("a"), "hash of a")
		assert.Equal(t, int64(100), h.HashKey("d"), "hash of d")
		assert.Equal(t, int64(103), h.HashKey("g"), "hash of g")
		assert.Equal(t, int64(448), h.HashKey("test"), "hash of test")
		assert.Equal(t, h.HashKey("ab"), h.HashKey("ba"), "anagrams collide")
	})

	t.Run("hashes the empty key to zero", func(t *testing.T) {
		// Prepare
		h := NewSimpleAdditionHash()

		// Execute
		hashCode := h.HashKey("")

		// Check
		assert.Equal(t, int64(0), hashCode, "empty key")
	})

	t.Run("sums utf-8 bytes and not runes", func(t *testing.T) {
		// Prepare
		h := NewSimpleAdditionHash()

		// Execute
		hashCode := h.HashKey("é")

		// Check
		assert.Equal(t, int64(0xc3+0xa9), hashCode, "two byte rune")
	})
}

func TestSimpleAdditionHash_HandleCollision(t *testing.T) {
	t.Run("adds attempt to the hash code", func(t *testing.T) {
		// Prepare
		h := NewSimpleAdditionHash()

		// Execute and Check
		for attempt := int64(0); attempt < 5; attempt++ {
			assert.Equal(t, 448+attempt, h.HandleCollision("test", attempt), "linear probing")
		}
	})

	t.Run("iterates through table", func(t *testing.T) {
		// Prepare
		h := NewSimpleAdditionHash()

		// Execute
		visit := visits(h.HandleCollision, "some key", 10)

		// Check
		for i, v := range visit {
			assert.Equalf(t, 1, v, "exactly one visit in slot #%d", i)
		}
	})
}

func TestQuadraticHash_HashKey(t *testing.T) {
	t.Run("creates crc32 checksum", func(t *testing.T) {
		// Prepare
		h := NewQuadraticHash()

		// Execute and Check
		assert.Equal(t, int64(0xCBF43926), h.HashKey("123456789"), "crc32 check value")
		assert.Equal(t, int64(0), h.HashKey(""), "empty key")
	})
}

func TestQuadraticHash_HandleCollision(t *testing.T) {
	t.Run("adds triangular numbers", func(t *testing.T) {
		// Prepare
		h := NewQuadraticHash()
		base := h.HashKey("key")

		// Execute and Check
		for i, triangular := range []int64{0, 1, 3, 6, 10, 15} {
			assert.Equal(t, base+triangular, h.HandleCollision("key", int64(i)), "quadratic probing")
		}
	})

	t.Run("iterates through table of size exponent of 2", func(t *testing.T) {
		// Prepare
		h := NewQuadraticHash()

		for _, tableSize := range []int64{1, 2, 16, 64} {
			// Execute
			visit := visits(h.HandleCollision, "some key", tableSize)

			// Check
			for i, v := range visit {
				assert.Equalf(t, 1, v, "exactly one visit in slot #%d of %d", i, tableSize)
			}
		}
	})
}

func TestDoubleHash_SetTableSize(t *testing.T) {
	t.Run("sets table size", func(t *testing.T) {
		// Prepare
		h := NewDoubleHash(10)
		assert.Equal(t, int64(10), h.GetTableSize(), "correct tableSize value")

		// Execute
		h.SetTableSize(13)

		// Check
		assert.Equal(t, int64(13), h.GetTableSize(), "correct tableSize value")
	})

	t.Run("guards against non positive table size", func(t *testing.T) {
		// Execute
		h := NewDoubleHash(0)

		// Check
		assert.Equal(t, int64(1), h.GetTableSize(), "table size raised to 1")
		assert.Equal(t, int64(0), h.HashFunc1("key"), "single slot")
		assert.Equal(t, int64(1), h.HashFunc2("key"), "step of 1")
	})
}

func TestDoubleHash_HashKey(t *testing.T) {
	t.Run("creates non negative xxhash", func(t *testing.T) {
		// Prepare
		h := NewDoubleHash(13)

		for _, key := range []string{"", "a", "key", "another key"} {
			// Execute
			hashCode := h.HashKey(key)

			// Check
			assert.GreaterOrEqual(t, hashCode, int64(0), "non negative hash code")
			assert.Equal(t, int64(xxhash.Sum64String(key)&math.MaxInt64), hashCode, "masked xxhash")
		}
	})
}

func TestDoubleHash_HandleCollision(t *testing.T) {
	t.Run("step is within table", func(t *testing.T) {
		// Prepare
		h := NewDoubleHash(13)

		for i := 0; i < 100; i++ {
			key := fmt.Sprintf("key-%d", i)

			// Execute
			hf1 := h.HashFunc1(key)
			hf2 := h.HashFunc2(key)

			// Check
			assert.GreaterOrEqual(t, hf1, int64(0), "index not negative")
			assert.Less(t, hf1, int64(13), "index within table")
			assert.GreaterOrEqual(t, hf2, int64(1), "step at least 1")
			assert.Less(t, hf2, int64(13), "step less than table size")
			assert.Equal(t, hf1+3*hf2, h.HandleCollision(key, 3), "double hashing")
		}
	})

	t.Run("iterates through table of prime size", func(t *testing.T) {
		for _, tableSize := range []int64{2, 3, 13, 101} {
			// Prepare
			h := NewDoubleHash(tableSize)

			for i := 0; i < 20; i++ {
				// Execute
				visit := visits(h.HandleCollision, fmt.Sprintf("key-%d", i), tableSize)

				// Check
				for j, v := range visit {
					assert.Equalf(t, 1, v, "exactly one visit in slot #%d of %d", j, tableSize)
				}
			}
		}
	})
}
