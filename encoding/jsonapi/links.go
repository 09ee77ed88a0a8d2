package jsonapi

import (
	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
)

// Links is used to represent a `links` object.
// http://jsonapi.org/format/#document-links
type Links map[string]interface{}

// Validate checks if the links members are either strings or link objects.
func (l Links) Validate() error {
	for k, v := range l {
		switch v.(type) {
		case string, Link, *Link, nil:
		default:
			return errors.NewDetf(class.EncodingLinksInvalid, "the %s member of the links object was not a string or link object", k)
		}
	}
	return nil
}

// Link is used to represent a member of the `links` object.
type Link struct {
	Href string `json:"href"`
	Meta Meta   `json:"meta,omitempty"`
}

// Meta is used to represent a `meta` object.
// http://jsonapi.org/format/#document-meta
type Meta map[string]interface{}

// Linkable is used to include document links in response data
// e.g. {"self": "http://example.com/posts/1"}
type Linkable interface {
	JSONAPILinks(req *Request) Links
}

// Metable is used to include resource meta in response data
// e.g. {"foo": "bar"}
type Metable interface {
	JSONAPIMeta(req *Request) Meta
}

// mergeLinks creates the union of the links, where the members of the
// 'overrides' take precedence. The result is never nil.
func mergeLinks(declared, overrides Links) Links {
	merged := make(Links, len(declared)+len(overrides))
	for k, v := range declared {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// mergeMeta creates the union of the meta objects, where the members of the
// 'overrides' take precedence. The result is never nil.
func mergeMeta(declared, overrides Meta) Meta {
	merged := make(Meta, len(declared)+len(overrides))
	for k, v := range declared {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}
