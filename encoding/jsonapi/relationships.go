package jsonapi

import (
	"encoding/json"

	"github.com/iancoleman/orderedmap"

	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
)

// Related is the resolved value of a relationship. It is either a single
// resource, an absent resource or a collection of resources.
type Related struct {
	many      bool
	resources []interface{}
}

// ToOne creates the to-one related value. A nil 'resource' is rendered as null.
func ToOne(resource interface{}) Related {
	if isNil(resource) {
		return Related{}
	}
	return Related{resources: []interface{}{resource}}
}

// ToMany creates the to-many related value. Nil resources are skipped.
func ToMany(resources ...interface{}) Related {
	related := Related{many: true, resources: make([]interface{}, 0, len(resources))}
	for _, resource := range resources {
		if isNil(resource) {
			continue
		}
		related.resources = append(related.resources, resource)
	}
	return related
}

// Resources converts the typed slice into the resources slice.
func Resources[T any](items []T) []interface{} {
	resources := make([]interface{}, len(items))
	for i, item := range items {
		resources[i] = item
	}
	return resources
}

// IsMany checks if the related value is a collection.
func (r Related) IsMany() bool {
	return r.many
}

// IsNull checks if the related value is an absent to-one resource.
func (r Related) IsNull() bool {
	return !r.many && len(r.resources) == 0
}

// Resources gets the related resources.
func (r Related) Resources() []interface{} {
	return r.resources
}

// Relationship is the declared relationship of a resource. The Resolve function
// is called only while rendering the resource.
type Relationship struct {
	Name    string
	Resolve func() (Related, error)
	Links   Links
	Meta    Meta
	// Hooks adjust the rendered relationship object after the encoder hooks.
	Hooks []RelationshipHook
}

// Relationer is the interface implemented by the resources having relationships.
// Every declared relationship is rendered, whether included or not.
type Relationer interface {
	JSONAPIRelationships(req *Request) []Relationship
}

// IdentifierHook adjusts the resource identifier rendered in a relationship linkage.
type IdentifierHook func(req *Request, identifier ResourceIdentifier) ResourceIdentifier

// RelationshipHook adjusts the rendered relationship object with given 'name'.
// The links and meta of the object passed to the hook are never nil.
type RelationshipHook func(req *Request, name string, relationship RelationshipObject) RelationshipObject

// IdentifierHooker is the interface implemented by the resources adjusting
// their own identifiers whenever they are referenced in a linkage.
type IdentifierHooker interface {
	JSONAPIIdentifierHooks() []IdentifierHook
}

// RelationshipHooker is the interface implemented by the resources adjusting
// the relationship objects referencing them as the to-one target.
type RelationshipHooker interface {
	JSONAPIRelationshipHooks() []RelationshipHook
}

// Linkage is the resource linkage of the relationship object. It is marshaled
// as null, a single identifier object or an array of identifiers.
type Linkage struct {
	many        bool
	identifiers []ResourceIdentifier
}

// IsMany checks if the linkage is a to-many linkage.
func (l Linkage) IsMany() bool {
	return l.many
}

// IsNull checks if the linkage is an empty to-one linkage.
func (l Linkage) IsNull() bool {
	return !l.many && len(l.identifiers) == 0
}

// Identifiers gets the linkage identifiers.
func (l Linkage) Identifiers() []ResourceIdentifier {
	return l.identifiers
}

// MarshalJSON implements json.Marshaler interface.
func (l Linkage) MarshalJSON() ([]byte, error) {
	if l.many {
		identifiers := l.identifiers
		if identifiers == nil {
			identifiers = []ResourceIdentifier{}
		}
		return json.Marshal(identifiers)
	}
	if len(l.identifiers) == 0 {
		return []byte("null"), nil
	}
	return json.Marshal(l.identifiers[0])
}

// RelationshipObject is the JSON API relationship object.
type RelationshipObject struct {
	Data  Linkage `json:"data"`
	Links Links   `json:"links,omitempty"`
	Meta  Meta    `json:"meta,omitempty"`
}

// RelationshipsOf gets the rendered relationship objects of the 'resource'.
func (e *Encoder) RelationshipsOf(resource interface{}, req *Request) (*orderedmap.OrderedMap, error) {
	a := newAssembly(e, req)
	defer a.cache.flush()

	inner, _ := unwrap(resource)
	relationships, _, err := a.relationships(inner)
	return relationships, err
}

// relationships resolves and renders the relationships declared by the 'resource'.
// It returns the resolved related values as well.
func (a *assembly) relationships(resource interface{}) (*orderedmap.OrderedMap, map[string]Related, error) {
	relationships := orderedmap.New()
	relationships.SetEscapeHTML(a.enc.cfg.EscapeHTML)

	relationer, ok := resource.(Relationer)
	if !ok {
		return relationships, map[string]Related{}, nil
	}

	declared := relationer.JSONAPIRelationships(a.req)
	resolved := make(map[string]Related, len(declared))
	for _, relationship := range declared {
		if relationship.Resolve == nil {
			return nil, nil, errors.NewDetf(class.ResourceRelationshipInvalid, "relationship: '%s' of resource: '%T' has no resolve function", relationship.Name, resource)
		}
		related, err := relationship.Resolve()
		if err != nil {
			return nil, nil, err
		}
		object, err := a.relationshipObject(relationship, related)
		if err != nil {
			return nil, nil, err
		}
		relationships.Set(relationship.Name, object)
		resolved[relationship.Name] = related
	}
	return relationships, resolved, nil
}

func (a *assembly) relationshipObject(relationship Relationship, related Related) (RelationshipObject, error) {
	linkage, err := a.linkage(related)
	if err != nil {
		return RelationshipObject{}, err
	}
	if err = relationship.Links.Validate(); err != nil {
		return RelationshipObject{}, err
	}
	object := RelationshipObject{
		Data:  linkage,
		Links: mergeLinks(relationship.Links, nil),
		Meta:  mergeMeta(relationship.Meta, nil),
	}

	hooks := append([]RelationshipHook{}, a.enc.relationshipHooks...)
	hooks = append(hooks, relationship.Hooks...)
	if !related.many && len(related.resources) == 1 {
		hooks = append(hooks, relationshipHooksOf(related.resources[0])...)
	}
	for _, hook := range hooks {
		object = hook(a.req, relationship.Name, object)
	}
	return object, nil
}

func (a *assembly) linkage(related Related) (Linkage, error) {
	linkage := Linkage{many: related.many, identifiers: make([]ResourceIdentifier, 0, len(related.resources))}
	for _, resource := range related.resources {
		identifier, err := a.identify(resource)
		if err != nil {
			return Linkage{}, err
		}
		identifier.Meta = Meta{}
		for _, hook := range a.enc.identifierHooks {
			identifier = hook(a.req, identifier)
		}
		for _, hook := range identifierHooksOf(resource) {
			identifier = hook(a.req, identifier)
		}
		linkage.identifiers = append(linkage.identifiers, identifier)
	}
	return linkage, nil
}

func identifierHooksOf(resource interface{}) []IdentifierHook {
	if hooker, ok := resource.(IdentifierHooker); ok {
		return hooker.JSONAPIIdentifierHooks()
	}
	return nil
}

func relationshipHooksOf(resource interface{}) []RelationshipHook {
	if hooker, ok := resource.(RelationshipHooker); ok {
		return hooker.JSONAPIRelationshipHooks()
	}
	return nil
}
