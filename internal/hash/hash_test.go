//go:build unit

package hash

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCRC32Algorithm_HashFunc1(t *testing.T) {
	t.Run("creates a valid bucket number", func(t *testing.T) {
		// Prepare
		a := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

		h := NewCRC32Algorithm(10)

		// Execute
		bucketNo := h.HashFunc1(a)

		// Check
		assert.Equal(t, int64(2), bucketNo, "create a valid bucket number")
	})

	t.Run("keeps the requested table size", func(t *testing.T) {
		// Prepare
		h := NewCRC32Algorithm(10)

		// Execute
		tableSize := h.GetTableSize()

		// Check
		assert.Equal(t, int64(10), tableSize, "no rounding to power of two")
	})
}

func TestAlgorithms_HashFunc1(t *testing.T) {
	for _, name := range Names() {
		t.Run(fmt.Sprintf("buckets within range and deterministic for %s", name), func(t *testing.T) {
			// Prepare
			h, err := New(name, 7)
			assert.NoError(t, err, "creates algorithm")

			// Execute & Check
			for i := 0; i < 1000; i++ {
				key := []byte(fmt.Sprintf("(555) %03d-%04d", i%1000, i))
				b := h.HashFunc1(key)
				assert.GreaterOrEqual(t, b, int64(0), "bucket not negative")
				assert.Less(t, b, int64(7), "bucket below table size")
				assert.Equal(t, b, h.HashFunc1(key), "same key same bucket")
			}
		})

		t.Run(fmt.Sprintf("returns out of range bucket without table size for %s", name), func(t *testing.T) {
			// Prepare
			h, err := New(name, 0)
			assert.NoError(t, err, "creates algorithm")

			// Execute
			b := h.HashFunc1([]byte("Adam Carl"))

			// Check
			assert.Equal(t, int64(-1), b, "no bucket available")
		})
	}
}

func TestAlgorithms_SetTableSize(t *testing.T) {
	t.Run("sets table size", func(t *testing.T) {
		// Prepare
		h := NewXXHashAlgorithm(10)
		assert.Equal(t, int64(10), h.GetTableSize(), "correct tableSize value")

		// Execute
		h.SetTableSize(23)

		// Check
		assert.Equal(t, int64(23), h.GetTableSize(), "correct tableSize value")
	})
}

func TestNew(t *testing.T) {
	t.Run("defaults to xxhash", func(t *testing.T) {
		// Execute
		h, err := New("", 10)

		// Check
		assert.NoError(t, err)
		assert.IsType(t, &XXHashAlgorithm{}, h, "default algorithm")
	})

	t.Run("error on unknown algorithm", func(t *testing.T) {
		// Execute
		_, err := New("sha1", 10)

		// Check
		assert.Error(t, err)
	})

	t.Run("lists names sorted", func(t *testing.T) {
		assert.Equal(t, []string{CRC32, Murmur3, XXH3, XXHash}, Names())
	})
}
