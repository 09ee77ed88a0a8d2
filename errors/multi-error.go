package errors

import (
	"strings"
)

// MultiError is the slice of errors parsable into a single error.
type MultiError []error

// Error implements error interface.
func (m MultiError) Error() string {
	sb := &strings.Builder{}

	for i, e := range m {
		sb.WriteString(e.Error())
		if i != len(m)-1 {
			sb.WriteString(",")
		}
	}
	return sb.String()
}

// Unwrap gets the joined errors.
func (m MultiError) Unwrap() []error {
	return m
}

// ErrorOrNil returns nil if the multi error is empty, the single error if it
// contains only one and the MultiError otherwise.
func (m MultiError) ErrorOrNil() error {
	switch len(m) {
	case 0:
		return nil
	case 1:
		return m[0]
	default:
		return m
	}
}
