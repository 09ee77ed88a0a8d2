package jsonapi

import (
	"github.com/iancoleman/orderedmap"
)

// Attribute is a single named attribute of the resource. The Value might be
// a Lazy or LazyRequest function, which is evaluated only if the attribute is
// selected.
type Attribute struct {
	Name  string
	Value interface{}
}

// Lazy is the deferred attribute value. Its error stops the document assembly.
type Lazy func() (interface{}, error)

// LazyRequest is the deferred attribute value evaluated with the request.
type LazyRequest func(req *Request) (interface{}, error)

// Attributer is the interface implemented by the resources having attributes.
// The attributes are rendered in the declared order.
type Attributer interface {
	JSONAPIAttributes(req *Request) []Attribute
}

// AttributesOf gets the attributes of the 'resource' selected for the request.
func (e *Encoder) AttributesOf(resource interface{}, req *Request) (*orderedmap.OrderedMap, error) {
	req = requestOrDefault(req)
	typ, err := e.ResolveType(resource, req)
	if err != nil {
		return nil, err
	}
	fields, err := e.FieldsFor(typ, req)
	if err != nil {
		return nil, err
	}
	attributes, _, err := e.attributes(resource, fields, req)
	return attributes, err
}

// attributes evaluates the attributes selected by the 'fields'. It returns
// the names of all declared attributes as well.
func (e *Encoder) attributes(resource interface{}, fields FieldSelection, req *Request) (*orderedmap.OrderedMap, []string, error) {
	attributes := orderedmap.New()
	attributes.SetEscapeHTML(e.cfg.EscapeHTML)

	inner, _ := unwrap(resource)
	attributer, ok := inner.(Attributer)
	if !ok {
		return attributes, []string{}, nil
	}

	declared := attributer.JSONAPIAttributes(req)
	names := make([]string, 0, len(declared))
	for _, attr := range declared {
		names = append(names, attr.Name)
		if !fields.Allows(attr.Name) {
			continue
		}
		value, err := evaluate(attr.Value, req)
		if err != nil {
			return nil, nil, err
		}
		attributes.Set(attr.Name, value)
	}
	return attributes, names, nil
}

func evaluate(value interface{}, req *Request) (interface{}, error) {
	switch v := value.(type) {
	case Lazy:
		return v()
	case LazyRequest:
		return v(req)
	case func(*Request) (interface{}, error):
		return v(req)
	case func() (interface{}, error):
		return v()
	case func() interface{}:
		return v(), nil
	default:
		return value, nil
	}
}
