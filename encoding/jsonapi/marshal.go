package jsonapi

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
)

// Marshal writes the JSON encoded document 'doc' into the writer 'w'.
func (e *Encoder) Marshal(w io.Writer, doc *Document) error {
	return e.marshal(w, doc, "")
}

// MarshalIndent writes the indented JSON encoded document 'doc' into the writer 'w'.
func (e *Encoder) MarshalIndent(w io.Writer, doc *Document, indent string) error {
	return e.marshal(w, doc, indent)
}

// WriteResponse writes the document as the http response with given 'status'
// and the JSON API media type.
func (e *Encoder) WriteResponse(rw http.ResponseWriter, status int, doc *Document) error {
	rw.Header().Set("Content-Type", MediaType)
	rw.WriteHeader(status)
	return e.Marshal(rw, doc)
}

func (e *Encoder) marshal(w io.Writer, doc *Document, indent string) error {
	if doc == nil {
		return errors.NewDet(class.EncodingMarshalInput, "nil document")
	}
	out := *doc
	if out.Included == nil {
		out.Included = []*ResourceObject{}
	}
	if out.Links == nil {
		out.Links = Links{}
	}
	if out.Meta == nil {
		out.Meta = Meta{}
	}
	if out.JSONAPI.Meta == nil {
		out.JSONAPI.Meta = Meta{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(e.cfg.EscapeHTML)
	if indent != "" {
		encoder.SetIndent("", indent)
	}
	if err := encoder.Encode(&out); err != nil {
		switch err.(type) {
		case *json.MarshalerError, *json.UnsupportedTypeError, *json.UnsupportedValueError:
			return errors.NewDetf(class.EncodingMarshalInput, "marshaling document failed: %v", err)
		default:
			return errors.NewDetf(class.EncodingMarshalOutput, "writing document failed: %v", err)
		}
	}
	return nil
}
