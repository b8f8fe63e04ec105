package hashfunc

// HashAlgorithm - Interface that permits a directory to be given a custom bucket selection algorithm
// suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called once when a hash table is created. If a custom hash algorithm instance already has a
	// table size, it will be overwritten by the number of buckets the table was created with.
	//   - tableSize is the number of buckets the table will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
	// The function must be deterministic for the life of the process. Any number returned outside the
	// table size (0 -> table size - 1) will result in an error down stream.
	HashFunc1(key []byte) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting
	GetTableSize() int64
}
