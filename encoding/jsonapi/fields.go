package jsonapi

import (
	"golang.org/x/exp/slices"
)

// FieldSelection is the set of attribute names rendered for a resource type.
type FieldSelection struct {
	all    bool
	fields []string
}

// AllFields selects every declared attribute.
func AllFields() FieldSelection {
	return FieldSelection{all: true}
}

// Fields selects only the attributes with given 'names'. No names select none.
func Fields(names ...string) FieldSelection {
	return FieldSelection{fields: names}
}

// All checks if the selection contains every attribute.
func (f FieldSelection) All() bool {
	return f.all
}

// Names gets the explicitly selected names.
func (f FieldSelection) Names() []string {
	return f.fields
}

// Allows checks if the attribute 'name' is selected.
func (f FieldSelection) Allows(name string) bool {
	return f.all || slices.Contains(f.fields, name)
}

// FieldsFor gets the attribute selection for the resource type 'typ'. The
// 'fields[typ]' query parameter takes precedence. Otherwise all attributes are
// selected, unless the encoder renders minimal attributes.
func (e *Encoder) FieldsFor(typ string, req *Request) (FieldSelection, error) {
	fieldsets, err := requestOrDefault(req).Fieldsets()
	if err != nil {
		return FieldSelection{}, err
	}
	if fields, ok := fieldsets.Fields(typ); ok {
		return Fields(fields...), nil
	}
	if e.cfg.MinimalAttributes {
		return Fields(), nil
	}
	return AllFields(), nil
}
