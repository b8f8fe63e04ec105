package bottin

import (
	"github.com/gostonefire/bottin/errs"
	"github.com/gostonefire/bottin/internal/model"
)

// RecordIterator - Is used to iterate over directory records one by one in the order they were inserted.
// Records inserted after the iterator was created are not visited.
type RecordIterator struct {
	records []model.Record
	next    int
}

// Records - Returns a pointer to a new RecordIterator positioned at the first record
func (D *Directory) Records() *RecordIterator {
	return &RecordIterator{records: D.records[:len(D.records):len(D.records)]}
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (R *RecordIterator) HasNext() bool {
	return R.next < len(R.records)
}

// Next - Returns record.
// It returns:
//   - record is the next record in store order.
//   - err is of type errs.KeyNotFound if there are no more records when calling this function.
func (R *RecordIterator) Next() (record model.Record, err error) {
	if !R.HasNext() {
		err = errs.KeyNotFound{}
		return
	}

	record = R.records[R.next]
	R.next++

	return
}
