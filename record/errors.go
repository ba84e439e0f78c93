package record

import "fmt"

// MalformedRecordError is returned when a line cannot be decoded into a
// record: it has the wrong number of fields or a numeric field does not
// parse.
type MalformedRecordError struct {
	Table      string // table the line belongs to ("accounts", "transactions", "admins")
	Line       string // the offending line, verbatim
	Reason     string
	Underlying error
}

func (e *MalformedRecordError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("malformed %s record: %s: %v", e.Table, e.Reason, e.Underlying)
	}
	return fmt.Sprintf("malformed %s record: %s", e.Table, e.Reason)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Underlying
}

// NewMalformedRecordError creates a decode failure for the given table line.
func NewMalformedRecordError(table, line, reason string, underlying error) *MalformedRecordError {
	return &MalformedRecordError{Table: table, Line: line, Reason: reason, Underlying: underlying}
}

// InvalidFieldError is returned when a text field contains a character the
// line format cannot carry (the delimiter or a newline).
type InvalidFieldError struct {
	Field string
	Value string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("field %s must not contain %q or line breaks", e.Field, Delimiter)
}
