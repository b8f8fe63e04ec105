package hashtable

import (
	"fmt"

	"github.com/gostonefire/bottin/errs"
	"github.com/gostonefire/bottin/hashfunc"
	"github.com/gostonefire/bottin/internal/conf"
	"github.com/gostonefire/bottin/internal/hash"
	"github.com/gostonefire/bottin/internal/model"
)

// entry - One key/value pair in a bucket
type entry[V any] struct {
	key   string
	value V
}

// Table - Fixed size hash table over string keys using separate chaining.
// Each bucket keeps its entries in insertion order. The table never grows, and it keeps running collision
// counters from the time it was created.
type Table[V any] struct {
	buckets                      [][]entry[V]
	hashAlgorithm                hashfunc.HashAlgorithm
	insertions                   int64
	collisions                   int64
	maxCollisionsSingleInsertion int64
}

// New - Returns a pointer to a new Table with tableSize buckets.
//   - tableSize is the fixed number of buckets, must be higher than 0 (zero) and at most conf.MaxCapacity
//   - hashAlgorithm is an optional custom bucket selection algorithm, nil gives the internal default
//
// It returns:
//   - table is a pointer to the created Table
//   - err is a standard error if the arguments are invalid
func New[V any](tableSize int64, hashAlgorithm hashfunc.HashAlgorithm) (table *Table[V], err error) {
	if tableSize <= 0 {
		err = fmt.Errorf("table size must be a positive value higher than 0 (zero)")
		return
	}
	if tableSize > conf.MaxCapacity {
		err = fmt.Errorf("table size must not be higher than %d", conf.MaxCapacity)
		return
	}

	if hashAlgorithm == nil {
		hashAlgorithm, err = hash.New(hash.Default, tableSize)
		if err != nil {
			return
		}
	} else {
		hashAlgorithm.SetTableSize(tableSize)
	}

	if hashAlgorithm.GetTableSize() != tableSize {
		err = fmt.Errorf("hash algorithm reports table size %d, expected %d", hashAlgorithm.GetTableSize(), tableSize)
		return
	}

	table = &Table[V]{
		buckets:       make([][]entry[V], tableSize),
		hashAlgorithm: hashAlgorithm,
	}

	return
}

// Contains - Returns true if an entry with key exists
func (T *Table[V]) Contains(key string) bool {
	bucketNo, err := T.bucketNo(key)
	if err != nil {
		return false
	}

	_, found := T.find(bucketNo, key)
	return found
}

// Check - Verifies that key can be inserted without changing the table.
//
// It returns:
//   - err is either of type errs.DuplicateKey if key is in the table or a standard error if the bucket
//     selection failed, nil means a following Insert of key will succeed
func (T *Table[V]) Check(key string) (err error) {
	bucketNo, err := T.bucketNo(key)
	if err != nil {
		return
	}

	if _, found := T.find(bucketNo, key); found {
		err = errs.DuplicateKey{Key: key}
	}

	return
}

// Insert - Adds key with value to the table.
// The length of the selected bucket before the insert is counted as this insert's collisions.
//   - key must not already be in the table, if it is an error of type errs.DuplicateKey is returned
//
// It returns:
//   - err is either of type errs.DuplicateKey or a standard error if the bucket selection failed
func (T *Table[V]) Insert(key string, value V) (err error) {
	bucketNo, err := T.bucketNo(key)
	if err != nil {
		return
	}

	if _, found := T.find(bucketNo, key); found {
		err = errs.DuplicateKey{Key: key}
		return
	}

	collisions := int64(len(T.buckets[bucketNo]))
	T.collisions += collisions
	T.maxCollisionsSingleInsertion = max(T.maxCollisionsSingleInsertion, collisions)
	T.insertions++

	T.buckets[bucketNo] = append(T.buckets[bucketNo], entry[V]{key: key, value: value})

	return
}

// Get - Returns the value stored for key.
//
// It returns:
//   - value is the stored value, if not found an error of type errs.KeyNotFound is returned.
//   - err is either of type errs.KeyNotFound or a standard error if the bucket selection failed
func (T *Table[V]) Get(key string) (value V, err error) {
	bucketNo, err := T.bucketNo(key)
	if err != nil {
		return
	}

	i, found := T.find(bucketNo, key)
	if !found {
		err = errs.KeyNotFound{Key: key}
		return
	}

	value = T.buckets[bucketNo][i].value

	return
}

// Statistics - Returns the collision ratio (collisions per insertion, 0 if nothing inserted), the total number
// of collisions and the highest number of collisions seen in a single insert.
func (T *Table[V]) Statistics() (ratio float64, collisions, maxCollisionsSingleInsertion int64) {
	if T.insertions > 0 {
		ratio = float64(T.collisions) / float64(T.insertions)
	}

	return ratio, T.collisions, T.maxCollisionsSingleInsertion
}

// Stat - Returns the collision statistics as a model.TableStat.
//   - includeDistribution set to true includes a slice with the length of every bucket, false leaves it nil.
func (T *Table[V]) Stat(includeDistribution bool) (tableStat model.TableStat) {
	tableStat.Ratio, tableStat.Collisions, tableStat.MaxCollisionsSingleInsertion = T.Statistics()
	tableStat.Insertions = T.insertions

	if includeDistribution {
		tableStat.BucketDistribution = make([]int64, len(T.buckets))
		for i, bucket := range T.buckets {
			tableStat.BucketDistribution[i] = int64(len(bucket))
		}
	}

	return
}

// Len - Returns the number of entries in the table
func (T *Table[V]) Len() int64 {
	return T.insertions
}

// TableSize - Returns the fixed number of buckets
func (T *Table[V]) TableSize() int64 {
	return int64(len(T.buckets))
}

// bucketNo - Selects the bucket for key and makes sure it is within the table
func (T *Table[V]) bucketNo(key string) (bucketNo int64, err error) {
	bucketNo = T.hashAlgorithm.HashFunc1([]byte(key))
	if bucketNo < 0 || bucketNo >= int64(len(T.buckets)) {
		err = fmt.Errorf("hash algorithm returned bucket %d outside of table size %d", bucketNo, len(T.buckets))
	}

	return
}

// find - Scans a bucket for key
func (T *Table[V]) find(bucketNo int64, key string) (index int, found bool) {
	for i, e := range T.buckets[bucketNo] {
		if e.key == key {
			return i, true
		}
	}

	return 0, false
}
