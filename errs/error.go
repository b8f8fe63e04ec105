package errs

import "fmt"

// ValidationError - Custom error to inform that a field given for a record is empty or malformed.
// Nothing is changed in a directory when this error is returned.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

// Error - Used to notify that a record field did not pass validation
func (V ValidationError) Error() string {
	if V.Field == "" {
		return "validation failed"
	}
	if V.Reason == "" {
		return fmt.Sprintf("invalid %s: %q", V.Field, V.Value)
	}
	return fmt.Sprintf("invalid %s %q: %s", V.Field, V.Value, V.Reason)
}

// Is - Makes errors.Is match any ValidationError regardless of its contents
func (V ValidationError) Is(target error) bool {
	_, ok := target.(ValidationError)
	return ok
}

// DuplicateKey - Custom error to inform that a key already exists in an index
//   - Index is the name of the index holding the key ("name" or "phone" for a directory)
//   - Key is the offending key
type DuplicateKey struct {
	Index string
	Key   string
}

// Error - Used to notify that a key is already present
func (D DuplicateKey) Error() string {
	if D.Key == "" {
		return "duplicate key"
	}
	if D.Index == "" {
		return fmt.Sprintf("duplicate key %q", D.Key)
	}
	return fmt.Sprintf("duplicate key %q in %s index", D.Key, D.Index)
}

// Is - Makes errors.Is match any DuplicateKey regardless of its contents
func (D DuplicateKey) Is(target error) bool {
	_, ok := target.(DuplicateKey)
	return ok
}

// KeyNotFound - Custom error to inform that no entry was found for a key
type KeyNotFound struct {
	Key string
}

// Error - Used to notify that no entry was found
func (K KeyNotFound) Error() string {
	if K.Key == "" {
		return "key not found"
	}
	return fmt.Sprintf("key not found: %q", K.Key)
}

// Is - Makes errors.Is match any KeyNotFound regardless of its contents
func (K KeyNotFound) Is(target error) bool {
	_, ok := target.(KeyNotFound)
	return ok
}

// SourceFormat - Custom error to inform that a row source is malformed (missing header, wrong column count)
type SourceFormat struct {
	Line   int
	Reason string
}

// Error - Used to notify that the source could not be parsed
func (S SourceFormat) Error() string {
	reason := S.Reason
	if reason == "" {
		reason = "malformed source"
	}
	if S.Line <= 0 {
		return reason
	}
	return fmt.Sprintf("line %d: %s", S.Line, reason)
}

// Is - Makes errors.Is match any SourceFormat regardless of its contents
func (S SourceFormat) Is(target error) bool {
	_, ok := target.(SourceFormat)
	return ok
}
