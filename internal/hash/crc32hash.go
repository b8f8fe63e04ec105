package hash

import "hash/crc32"

// CRC32Algorithm - Bucket selection implemented using crc32.ChecksumIEEE to create a hash value over
// the key and then applying bucket = hash mod tableSize. Unlike a power of two mask the modulo keeps
// the table size exactly as requested.
type CRC32Algorithm struct {
	buckets
}

// NewCRC32Algorithm - Returns a pointer to a new CRC32Algorithm instance
func NewCRC32Algorithm(tableSize int64) *CRC32Algorithm {
	ha := &CRC32Algorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (C *CRC32Algorithm) HashFunc1(key []byte) int64 {
	return C.bucket(uint64(crc32.ChecksumIEEE(key)))
}
