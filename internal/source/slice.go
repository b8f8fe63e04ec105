package source

import (
	"github.com/gostonefire/bottin/errs"
	"github.com/gostonefire/bottin/internal/model"
)

// RowSource - Is used to iterate over rows one by one
type RowSource interface {
	HasNext() bool
	Next() (model.Row, error)
}

// Slice - Serves rows held in memory
type Slice struct {
	rows []model.Row
	next int
}

// NewSlice - Returns a pointer to a new Slice serving rows in order
func NewSlice(rows []model.Row) *Slice {
	return &Slice{rows: rows}
}

// HasNext - Returns true if there are more rows to be fetched from a call to Next.
func (S *Slice) HasNext() bool {
	return S.next < len(S.rows)
}

// Next - Returns the next row, or an error of type errs.KeyNotFound when there are no more rows
func (S *Slice) Next() (row model.Row, err error) {
	if !S.HasNext() {
		err = errs.KeyNotFound{}
		return
	}

	row = S.rows[S.next]
	S.next++

	return
}

// ReadAll - Drains a row source into a slice. The first error stops the reading.
func ReadAll(src RowSource) (rows []model.Row, err error) {
	var row model.Row
	for src.HasNext() {
		row, err = src.Next()
		if err != nil {
			return
		}
		rows = append(rows, row)
	}

	return
}
