package jsonapi

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/google/uuid"

	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
	"github.com/neuronlabs/jsonapi/namer"
)

// Struct field tag marking the primary field of a model.
const (
	annotationJSONAPI = "jsonapi"
	annotationPrimary = "primary"
)

// Identifiable is the interface used by the resources that resolve their own id.
type Identifiable interface {
	JSONAPIID(req *Request) string
}

// Typed is the interface used by the resources that resolve their own type.
type Typed interface {
	JSONAPIType(req *Request) string
}

// ModelWrapper is the interface implemented by the resources that wrap an
// underlying model. The model is used by the id and type resolvers and
// identifies the resource within the request cache.
type ModelWrapper interface {
	JSONAPIModel() interface{}
}

// IDResolver resolves the id of the provided model.
type IDResolver func(model interface{}, req *Request) (string, error)

// TypeResolver resolves the type of the provided model.
type TypeResolver func(model interface{}, req *Request) (string, error)

// ResourceIdentifier is the JSON API resource identifier object.
type ResourceIdentifier struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Meta Meta   `json:"meta,omitempty"`
}

// Equal checks if the identifiers point to the same resource.
func (r ResourceIdentifier) Equal(other ResourceIdentifier) bool {
	return r.ID == other.ID && r.Type == other.Type
}

// String implements fmt.Stringer interface.
func (r ResourceIdentifier) String() string {
	return r.Type + "/" + r.ID
}

func (r ResourceIdentifier) key() identifierKey {
	return identifierKey{typ: r.Type, id: r.ID}
}

type identifierKey struct {
	typ, id string
}

// ResolveID resolves the id of the 'resource'. The resource's own JSONAPIID
// method takes precedence over the encoder IDResolver, which takes precedence
// over the default primary field convention.
func (e *Encoder) ResolveID(resource interface{}, req *Request) (string, error) {
	inner, _ := unwrap(resource)
	if isNil(inner) {
		return "", errors.NewDet(class.ResourceNil, "resolving id of nil resource")
	}
	if identifiable, ok := inner.(Identifiable); ok {
		return identifiable.JSONAPIID(req), nil
	}
	model := modelOf(inner)
	if e.idResolver != nil {
		return e.idResolver(model, req)
	}
	return DefaultID(model)
}

// ResolveType resolves the type of the 'resource'. The resource's own JSONAPIType
// method takes precedence over the encoder TypeResolver, which takes precedence
// over the collection name derived from the model's type name.
func (e *Encoder) ResolveType(resource interface{}, req *Request) (string, error) {
	inner, _ := unwrap(resource)
	if isNil(inner) {
		return "", errors.NewDet(class.ResourceNil, "resolving type of nil resource")
	}
	if typed, ok := inner.(Typed); ok {
		return typed.JSONAPIType(req), nil
	}
	model := modelOf(inner)
	if e.typeResolver != nil {
		return e.typeResolver(model, req)
	}
	return DefaultType(model, e.naming)
}

// DefaultID gets the id of the 'model' from its primary field. The primary field
// is the one tagged with `jsonapi:"primary"` or the field named 'ID'.
func DefaultID(model interface{}) (string, error) {
	v := reflect.ValueOf(model)
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return "", errors.NewDet(class.ResourceNil, "resolving id of nil model")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return "", errors.NewDetf(class.ResourceIdentityID, "unable to resolve id of model: '%T'", model).
			WithDetail("Provide the IDResolver or implement the Identifiable interface.")
	}
	field, ok := primaryField(v)
	if !ok {
		return "", errors.NewDetf(class.ResourceIdentityID, "model: '%T' has no primary field", model).
			WithDetail("Tag the primary field with `jsonapi:\"primary\"` or name it 'ID'.")
	}
	id, err := formatPrimary(field)
	if err != nil {
		return "", err
	}
	return id, nil
}

// DefaultType gets the collection name for the 'model' type. The name is the
// plural form of the type's name formatted with the naming 'convention'.
func DefaultType(model interface{}, convention namer.NamingConvention) (string, error) {
	t := reflect.TypeOf(model)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Name() == "" {
		return "", errors.NewDetf(class.ResourceIdentityType, "unable to resolve type of model: '%T'", model).
			WithDetail("Provide the TypeResolver or implement the Typed interface.")
	}
	return convention.Collection(t.Name()), nil
}

func primaryField(v reflect.Value) (reflect.Value, bool) {
	t := v.Type()
	idIndex := -1
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue
		}
		if field.Tag.Get(annotationJSONAPI) == annotationPrimary {
			return v.Field(i), true
		}
		if idIndex == -1 && (field.Name == "ID" || field.Name == "Id") {
			idIndex = i
		}
	}
	if idIndex == -1 {
		return reflect.Value{}, false
	}
	return v.Field(idIndex), true
}

func formatPrimary(primary reflect.Value) (string, error) {
	for primary.Kind() == reflect.Ptr {
		if primary.IsNil() {
			return "", errors.NewDet(class.ResourceIdentityID, "primary field value is nil")
		}
		primary = primary.Elem()
	}
	switch pv := primary.Interface().(type) {
	case uuid.UUID:
		return pv.String(), nil
	case fmt.Stringer:
		return pv.String(), nil
	}
	switch primary.Kind() {
	case reflect.String:
		return primary.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(primary.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(primary.Uint(), 10), nil
	default:
		return "", errors.NewDetf(class.ResourceIdentityID, "unsupported primary field type: '%s'", primary.Type())
	}
}

// modelOf gets the model wrapped by the resource.
func modelOf(resource interface{}) interface{} {
	if wrapper, ok := resource.(ModelWrapper); ok {
		if model := wrapper.JSONAPIModel(); model != nil {
			return model
		}
	}
	return resource
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
