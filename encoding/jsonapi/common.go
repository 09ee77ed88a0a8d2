package jsonapi

import (
	"github.com/neuronlabs/jsonapi/log"
)

const (
	// MediaType is the identifier for the JSON API media type
	// see http://jsonapi.org/format/#document-structure
	MediaType = "application/vnd.api+json"

	// AvailableAttributesMetaKey is the resource meta key listing the declared attributes.
	AvailableAttributesMetaKey = "availableAttributes"
)

var logger = log.NewModuleLogger("jsonapi")
