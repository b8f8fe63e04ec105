package bottin

import (
	"fmt"
	"os"

	"github.com/gostonefire/bottin/hashfunc"
	"github.com/gostonefire/bottin/internal/conf"
	"github.com/gostonefire/bottin/internal/hash"
	"github.com/gostonefire/bottin/internal/hashtable"
	"github.com/gostonefire/bottin/internal/model"
	"github.com/gostonefire/bottin/internal/source"
)

// Record - A person in the directory
type Record = model.Record

// Row - A raw five field tuple as delivered by a RowSource
type Row = model.Row

// DirectoryConf - Configuration given once when creating a directory
type DirectoryConf = model.DirectoryConf

// TableStat - Collision statistics of one of the directory indices
type TableStat = model.TableStat

// RowSource - Interface for anything delivering rows to bulk load, see Directory.Load
type RowSource = source.RowSource

// Directory - Phone directory where every record can be found both by surname and given name and by fixed
// phone number. Records are kept in an append only store and the two hash tables map their keys to the
// store index.
//
// A Directory is not safe for concurrent use.
type Directory struct {
	records     []model.Record
	byNameGiven *hashtable.Table[int]
	byPhone     *hashtable.Table[int]
}

// NewDirectory - Returns a new empty directory.
//   - directoryConf.Capacity is the fixed number of buckets in each index, 0 (zero) gives conf.DefaultCapacity
//   - directoryConf.HashAlgorithm is the name of the bucket selection algorithm, empty gives the default
//
// It returns:
//   - directory is a pointer to a Directory struct
//   - err is a normal go Error which should be nil if everything went ok
func NewDirectory(directoryConf DirectoryConf) (directory *Directory, err error) {
	capacity := directoryConf.Capacity
	if capacity == 0 {
		capacity = conf.DefaultCapacity
	}
	if capacity < 0 {
		err = fmt.Errorf("capacity must be a positive value higher than 0 (zero)")
		return
	}
	if capacity > conf.MaxCapacity {
		err = fmt.Errorf("capacity must not be higher than %d", conf.MaxCapacity)
		return
	}

	// Each index gets its own algorithm instance since the table sets its size on it
	nameAlg, err := newHashAlgorithm(directoryConf, capacity)
	if err != nil {
		return
	}
	phoneAlg, err := newHashAlgorithm(directoryConf, capacity)
	if err != nil {
		return
	}

	byNameGiven, err := hashtable.New[int](capacity, nameAlg)
	if err != nil {
		return
	}
	byPhone, err := hashtable.New[int](capacity, phoneAlg)
	if err != nil {
		return
	}

	directory = &Directory{
		byNameGiven: byNameGiven,
		byPhone:     byPhone,
	}

	return
}

// newHashAlgorithm - Returns a new bucket selection algorithm instance as given by directoryConf
func newHashAlgorithm(directoryConf DirectoryConf, capacity int64) (hashfunc.HashAlgorithm, error) {
	if directoryConf.CustomHashAlgorithm != nil {
		hashAlgorithm := directoryConf.CustomHashAlgorithm()
		if hashAlgorithm == nil {
			return nil, fmt.Errorf("custom hash algorithm factory returned nil")
		}
		return hashAlgorithm, nil
	}

	return hash.New(directoryConf.HashAlgorithm, capacity)
}

// NewFromSource - Returns a new directory filled with every row from src.
// Loading is all or nothing, if any row fails no directory is returned.
func NewFromSource(directoryConf DirectoryConf, src RowSource) (directory *Directory, err error) {
	d, err := NewDirectory(directoryConf)
	if err != nil {
		return
	}

	err = d.Load(src)
	if err != nil {
		return
	}

	directory = d

	return
}

// NewFromFile - Returns a new directory filled from a tab separated file with a header line.
//   - fileName is the file to read
//   - charset is the file encoding, see source.NewReader
func NewFromFile(directoryConf DirectoryConf, fileName, charset string) (directory *Directory, err error) {
	file, err := os.Open(fileName)
	if err != nil {
		return
	}
	defer func(file *os.File) { _ = file.Close() }(file)

	reader, err := source.NewReader(file, charset)
	if err != nil {
		err = fmt.Errorf("error while reading %s: %w", fileName, err)
		return
	}

	directory, err = NewFromSource(directoryConf, reader)
	if err != nil {
		err = fmt.Errorf("error while loading %s: %w", fileName, err)
	}

	return
}

// Load - Inserts every row from src in order. The first failing row stops the load and its error is
// returned wrapped with the row's line, rows before it stay inserted.
func (D *Directory) Load(src RowSource) (err error) {
	var row model.Row
	for n := 1; src.HasNext(); n++ {
		row, err = src.Next()
		if err != nil {
			err = fmt.Errorf("error while reading row %d: %w", n, err)
			return
		}

		err = D.Insert(row.Surname, row.GivenName, row.FixedPhone, row.MobilePhone, row.Email)
		if err != nil {
			if row.Line > 0 {
				err = fmt.Errorf("line %d: %w", row.Line, err)
			} else {
				err = fmt.Errorf("row %d: %w", n, err)
			}
			return
		}
	}

	return
}
