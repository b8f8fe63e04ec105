package bottin

import (
	"errors"
	"fmt"

	"github.com/gostonefire/bottin/errs"
	"github.com/gostonefire/bottin/internal/conf"
	"github.com/gostonefire/bottin/internal/model"
	"github.com/gostonefire/bottin/internal/utils"
)

// Insert - Adds a new record to the directory.
// All fields must be non-empty, both phone numbers must follow the (ddd) ddd-dddd format and neither the
// surname/given name pair nor the fixed phone may already be in the directory. All checks are done before
// anything is changed, so on error the directory is left as it was.
//
// It returns:
//   - err is either of type errs.ValidationError, errs.DuplicateKey or a standard error if an index failed
func (D *Directory) Insert(surname, givenName, fixedPhone, mobilePhone, email string) (err error) {
	record := model.Record{
		Surname:     surname,
		GivenName:   givenName,
		FixedPhone:  fixedPhone,
		MobilePhone: mobilePhone,
		Email:       email,
	}

	err = validate(record)
	if err != nil {
		return
	}

	nameKey := utils.CompositeKey(surname, givenName)
	err = checkIndex(conf.NameIndex, D.byNameGiven.Check(nameKey))
	if err != nil {
		return
	}
	err = checkIndex(conf.PhoneIndex, D.byPhone.Check(fixedPhone))
	if err != nil {
		return
	}

	index := len(D.records)
	D.records = append(D.records, record)

	err = D.byNameGiven.Insert(nameKey, index)
	if err != nil {
		err = fmt.Errorf("error while adding to %s index: %w", conf.NameIndex, err)
		return
	}
	err = D.byPhone.Insert(fixedPhone, index)
	if err != nil {
		err = fmt.Errorf("error while adding to %s index: %w", conf.PhoneIndex, err)
		return
	}

	return
}

// checkIndex - Names the index in an error returned from a table check
func checkIndex(index string, err error) error {
	if err == nil {
		return nil
	}

	var duplicateKey errs.DuplicateKey
	if errors.As(err, &duplicateKey) {
		duplicateKey.Index = index
		return duplicateKey
	}

	return fmt.Errorf("error while checking %s index: %w", index, err)
}

// LookupByNameGiven - Returns the record with the given surname and given name.
//
// It returns:
//   - record is the matching record if found, if not found an error of type errs.KeyNotFound is returned.
//   - err is either of type errs.KeyNotFound or a standard error
func (D *Directory) LookupByNameGiven(surname, givenName string) (record model.Record, err error) {
	return D.lookup(D.byNameGiven.Get(utils.CompositeKey(surname, givenName)))
}

// LookupByPhone - Returns the record with the given fixed phone number.
//
// It returns:
//   - record is the matching record if found, if not found an error of type errs.KeyNotFound is returned.
//   - err is either of type errs.KeyNotFound or a standard error
func (D *Directory) LookupByPhone(fixedPhone string) (record model.Record, err error) {
	return D.lookup(D.byPhone.Get(fixedPhone))
}

// lookup - Resolves an index result to the stored record
func (D *Directory) lookup(index int, err error) (model.Record, error) {
	if err != nil {
		return model.Record{}, err
	}
	if index < 0 || index >= len(D.records) {
		return model.Record{}, fmt.Errorf("index %d is outside of the record store (%d records)", index, len(D.records))
	}

	return D.records[index], nil
}

// Count - Returns the number of records in the directory
func (D *Directory) Count() int {
	return len(D.records)
}

// NameStatistics - Returns collision ratio, total collisions and max collisions in a single insertion for
// the surname/given name index.
func (D *Directory) NameStatistics() (ratio float64, collisions, maxCollisionsSingleInsertion int64) {
	return D.byNameGiven.Statistics()
}

// PhoneStatistics - Returns collision ratio, total collisions and max collisions in a single insertion for
// the fixed phone index.
func (D *Directory) PhoneStatistics() (ratio float64, collisions, maxCollisionsSingleInsertion int64) {
	return D.byPhone.Statistics()
}

// NameStat - Returns the statistics of the surname/given name index.
//   - includeDistribution set to true includes the number of entries in each bucket.
func (D *Directory) NameStat(includeDistribution bool) TableStat {
	return D.byNameGiven.Stat(includeDistribution)
}

// PhoneStat - Returns the statistics of the fixed phone index.
//   - includeDistribution set to true includes the number of entries in each bucket.
func (D *Directory) PhoneStat(includeDistribution bool) TableStat {
	return D.byPhone.Stat(includeDistribution)
}

// Capacity - Returns the fixed number of buckets in each index
func (D *Directory) Capacity() int64 {
	return D.byNameGiven.TableSize()
}
