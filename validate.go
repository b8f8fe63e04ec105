package bottin

import (
	"regexp"

	"github.com/gostonefire/bottin/errs"
	"github.com/gostonefire/bottin/internal/conf"
	"github.com/gostonefire/bottin/internal/model"
)

var phoneFormat = regexp.MustCompile(conf.PhonePattern)

// validate - Checks that no field is empty and that both phone numbers are well formed
func validate(record model.Record) error {
	fields := []struct {
		name  string
		value string
	}{
		{"surname", record.Surname},
		{"given name", record.GivenName},
		{"fixed phone", record.FixedPhone},
		{"mobile phone", record.MobilePhone},
		{"email", record.Email},
	}
	for _, f := range fields {
		if f.value == "" {
			return errs.ValidationError{Field: f.name, Reason: "can not be empty"}
		}
	}

	if !phoneFormat.MatchString(record.FixedPhone) {
		return errs.ValidationError{Field: "fixed phone", Value: record.FixedPhone, Reason: "expected format (ddd) ddd-dddd"}
	}
	if !phoneFormat.MatchString(record.MobilePhone) {
		return errs.ValidationError{Field: "mobile phone", Value: record.MobilePhone, Reason: "expected format (ddd) ddd-dddd"}
	}

	return nil
}
