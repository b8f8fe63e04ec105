package hash

import (
	"fmt"
	"sort"

	"github.com/gostonefire/bottin/hashfunc"
)

// Names of the internally available bucket selection algorithms
const (
	XXHash  = "xxhash"
	XXH3    = "xxh3"
	Murmur3 = "murmur3"
	CRC32   = "crc32"
)

// Default - Name of the algorithm used when none is given
const Default = XXHash

var constructors = map[string]func(tableSize int64) hashfunc.HashAlgorithm{
	XXHash:  func(n int64) hashfunc.HashAlgorithm { return NewXXHashAlgorithm(n) },
	XXH3:    func(n int64) hashfunc.HashAlgorithm { return NewXXH3Algorithm(n) },
	Murmur3: func(n int64) hashfunc.HashAlgorithm { return NewMurmur3Algorithm(n) },
	CRC32:   func(n int64) hashfunc.HashAlgorithm { return NewCRC32Algorithm(n) },
}

// New - Returns a new instance of the named bucket selection algorithm, set up for tableSize buckets.
// An empty name gives the Default algorithm.
func New(name string, tableSize int64) (hashAlgorithm hashfunc.HashAlgorithm, err error) {
	if name == "" {
		name = Default
	}

	constructor, ok := constructors[name]
	if !ok {
		err = fmt.Errorf("unknown hash algorithm %q, available are %v", name, Names())
		return
	}

	hashAlgorithm = constructor(tableSize)

	return
}

// Names - Returns the names of all available algorithms in sorted order
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// buckets holds the bucket count shared by all algorithms in this package
type buckets struct {
	size int64
}

// SetTableSize - Sets the number of buckets to distribute keys over
func (T *buckets) SetTableSize(size int64) {
	T.size = size
}

// GetTableSize - Returns the number of buckets keys are distributed over
func (T *buckets) GetTableSize() int64 {
	return T.size
}

// bucket reduces a hash value to a bucket number, -1 if no table size is set
func (T *buckets) bucket(h uint64) int64 {
	if T.size <= 0 {
		return -1
	}
	return int64(h % uint64(T.size))
}
