package bottin

import (
	"fmt"
	"io"
	"strings"

	"github.com/gostonefire/bottin/internal/model"
)

// FormatRecord - Returns the record as one line of comma separated fields:
// surname, given name, fixed phone, mobile phone, email
func FormatRecord(record model.Record) string {
	return strings.Join([]string{
		record.Surname,
		record.GivenName,
		record.FixedPhone,
		record.MobilePhone,
		record.Email,
	}, ", ")
}

// Print - Writes every record to w, one formatted line per record in insertion order
func (D *Directory) Print(w io.Writer) (err error) {
	var record model.Record
	iter := D.Records()
	for iter.HasNext() {
		record, err = iter.Next()
		if err != nil {
			return
		}
		_, err = fmt.Fprintln(w, FormatRecord(record))
		if err != nil {
			return
		}
	}

	return
}
