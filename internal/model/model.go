package model

import "github.com/gostonefire/bottin/hashfunc"

// Record - Represents one person in a directory. Records are values and are never modified once stored.
type Record struct {
	Surname     string
	GivenName   string
	FixedPhone  string
	MobilePhone string
	Email       string
}

// Row - Represents a raw five field tuple delivered by a row source
//   - Line is the 1-based line in the source the row was read from, 0 if not read from a file
type Row struct {
	Surname     string
	GivenName   string
	FixedPhone  string
	MobilePhone string
	Email       string
	Line        int
}

// DirectoryConf - Is a struct to be passed in the call to create a directory and contains configuration
// that affects its hash tables.
//   - Capacity is the fixed number of buckets in each of the two hash tables, 0 gives the default
//   - HashAlgorithm is the name of the bucket selection algorithm, empty gives the default
//   - CustomHashAlgorithm is an optional factory for a custom algorithm, it overrides HashAlgorithm and is
//     called once per index since every index sets its own table size on the algorithm
type DirectoryConf struct {
	Capacity            int64
	HashAlgorithm       string
	CustomHashAlgorithm func() hashfunc.HashAlgorithm
}

// TableStat - Collision statistics of a hash table
//   - Insertions is the number of successful inserts
//   - Collisions is the sum over all inserts of the bucket length found just before the insert
//   - MaxCollisionsSingleInsertion is the longest bucket any single insert landed in
//   - Ratio is Collisions / Insertions, 0 when nothing is inserted
//   - BucketDistribution is the number of entries in each bucket, nil unless asked for
type TableStat struct {
	Insertions                   int64   `json:"insertions"`
	Collisions                   int64   `json:"collisions"`
	MaxCollisionsSingleInsertion int64   `json:"maxCollisionsSingleInsertion"`
	Ratio                        float64 `json:"ratio"`
	BucketDistribution           []int64 `json:"bucketDistribution,omitempty"`
}
