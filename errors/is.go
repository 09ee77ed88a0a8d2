package errors

import (
	"errors"

	"github.com/neuronlabs/jsonapi/errors/class"
)

// IsClass checks if given error or any error it wraps is of given 'class'.
func IsClass(err error, c class.Class) bool {
	var classError ClassError
	if !errors.As(err, &classError) {
		return false
	}
	return classError.Class() == c
}

// IsMajor checks if given error is classified within the major 'm'.
func IsMajor(err error, m class.Major) bool {
	var classError ClassError
	if !errors.As(err, &classError) {
		return false
	}
	return classError.Class().IsMajor(m)
}
