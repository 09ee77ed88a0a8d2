package errors

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/google/uuid"

	"github.com/neuronlabs/jsonapi/errors/class"
)

// compile time check for DetailedError interfaces.
var (
	_ ClassError = &DetailedError{}
)

// DetailedError is the class based error definition.
// Each instance has its own trackable ID and the operation where it was created.
type DetailedError struct {
	// ID is a unique error instance identification number.
	ID uuid.UUID
	// Classification defines the error classification.
	Classification class.Class
	// Details contains the detailed information.
	Details string
	// Message is a message used as a string for the
	// golang error interface implementation.
	Message string
	// Operation is the operation name when the error occurred.
	Operation string
}

// NewDet creates DetailedError with given 'class' and message 'message'.
func NewDet(c class.Class, message string) *DetailedError {
	err := newDetailed(c)
	err.Message = message
	return err
}

// NewDetf creates DetailedError instance with provided 'class' with formatted message.
func NewDetf(c class.Class, format string, args ...interface{}) *DetailedError {
	err := newDetailed(c)
	err.Message = fmt.Sprintf(format, args...)
	return err
}

// Class implements ClassError.
func (e *DetailedError) Class() class.Class {
	return e.Classification
}

// Error implements error interface.
func (e *DetailedError) Error() string {
	return e.Message
}

// WithDetail sets the error 'detail' and returns itself.
func (e *DetailedError) WithDetail(detail string) *DetailedError {
	e.Details = detail
	return e
}

// WithDetailf sets the error's formatted detail with provided and returns itself.
func (e *DetailedError) WithDetailf(format string, args ...interface{}) *DetailedError {
	e.Details = fmt.Sprintf(format, args...)
	return e
}

// WrapDetail wraps the 'detail' for given error. Wrapping appends the new detail
// to the front of error detail message.
func (e *DetailedError) WrapDetail(detail string) *DetailedError {
	if e.Details == "" {
		e.Details = detail
	} else {
		e.Details = detail + " " + e.Details
	}
	return e
}

// WrapDetailf wraps the detail with provided formatting for given error.
func (e *DetailedError) WrapDetailf(format string, args ...interface{}) *DetailedError {
	return e.WrapDetail(fmt.Sprintf(format, args...))
}

func newDetailed(c class.Class) *DetailedError {
	err := &DetailedError{
		ID:             uuid.New(),
		Classification: c,
	}
	pc, _, _, ok := runtime.Caller(2)
	details := runtime.FuncForPC(pc)
	if ok && details != nil {
		file, line := details.FileLine(pc)
		_, singleFile := filepath.Split(file)
		err.Operation = details.Name() + "#" + singleFile + ":" + strconv.Itoa(line)
	}
	return err
}
