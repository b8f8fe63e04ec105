package hash

import (
	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// XXHashAlgorithm - The default bucket selection, 64 bit xxHash of the key modulo table size
type XXHashAlgorithm struct {
	buckets
}

// NewXXHashAlgorithm - Returns a pointer to a new XXHashAlgorithm instance
func NewXXHashAlgorithm(tableSize int64) *XXHashAlgorithm {
	ha := &XXHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (X *XXHashAlgorithm) HashFunc1(key []byte) int64 {
	return X.bucket(xxhash.Sum64(key))
}

// XXH3Algorithm - Bucket selection using the 64 bit XXH3 variant
type XXH3Algorithm struct {
	buckets
}

// NewXXH3Algorithm - Returns a pointer to a new XXH3Algorithm instance
func NewXXH3Algorithm(tableSize int64) *XXH3Algorithm {
	ha := &XXH3Algorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (X *XXH3Algorithm) HashFunc1(key []byte) int64 {
	return X.bucket(xxh3.Hash(key))
}

// Murmur3Algorithm - Bucket selection using the 64 bit half of MurmurHash3 x64_128
type Murmur3Algorithm struct {
	buckets
}

// NewMurmur3Algorithm - Returns a pointer to a new Murmur3Algorithm instance
func NewMurmur3Algorithm(tableSize int64) *Murmur3Algorithm {
	ha := &Murmur3Algorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (M *Murmur3Algorithm) HashFunc1(key []byte) int64 {
	return M.bucket(murmur3.Sum64(key))
}
