package utils

import (
	"strings"

	"github.com/gostonefire/bottin/internal/conf"
)

// CompositeKey - Returns the key a record is indexed by in the name table
func CompositeKey(surname, givenName string) string {
	return surname + conf.KeySeparator + givenName
}

// SplitName - Splits a combined "Surname, GivenName" token on the first comma followed by a separator.
// If there is no such comma the whole token becomes the surname and the given name is empty.
func SplitName(token string) (surname, givenName string) {
	pos := strings.Index(token, conf.NameSeparator)
	if pos < 0 {
		surname = token
		return
	}

	surname = token[:pos]
	givenName = token[pos+len(conf.NameSeparator):]

	return
}
