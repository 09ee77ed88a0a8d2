package common

import (
	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
)

// Bracket annotations used in the query parameter names.
const (
	AnnotationOpenedBracket = '['
	AnnotationClosedBracket = ']'
)

// SplitBracketParameter splits the parameters within the '[' and ']' brackets.
// I.e. '[collection][field]' results in 'collection', 'field'.
func SplitBracketParameter(bracketed string) (values []string, err error) {
	doubleOpen := func() error {
		return errors.NewDet(class.CommonParseBrackets, "double open square brackets").
			WithDetailf("open square bracket '[' found, without closing ']' in: '%s'", bracketed)
	}

	// set initial indexes
	startIndex := -1
	endIndex := -1

	for i := 0; i < len(bracketed); i++ {
		switch bracketed[i] {
		case AnnotationOpenedBracket:
			if startIndex > endIndex {
				return nil, doubleOpen()
			}
			startIndex = i
		case AnnotationClosedBracket:
			// no opening bracket set or it was already closed
			if startIndex == -1 || startIndex < endIndex {
				return nil, errors.NewDet(class.CommonParseBrackets, "no opening bracket found").
					WithDetailf("close square bracket ']' found, without opening '[' in '%s'", bracketed)
			}
			endIndex = i
			values = append(values, bracketed[startIndex+1:endIndex])
		default:
			if startIndex <= endIndex {
				return nil, errors.NewDet(class.CommonParseBrackets, "value outside the brackets").
					WithDetailf("character '%c' found outside the brackets in '%s'", bracketed[i], bracketed)
			}
		}
	}
	if (startIndex != -1 && endIndex == -1) || startIndex > endIndex {
		return nil, doubleOpen()
	}
	return values, nil
}
