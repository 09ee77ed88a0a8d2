package jsonapi

import (
	"github.com/iancoleman/orderedmap"

	"github.com/neuronlabs/jsonapi/log"
)

// ResourceObject is the rendered JSON API resource object. The attributes,
// relationships, links and meta are always marshaled as objects.
type ResourceObject struct {
	ID            string                 `json:"id"`
	Type          string                 `json:"type"`
	Attributes    *orderedmap.OrderedMap `json:"attributes"`
	Relationships *orderedmap.OrderedMap `json:"relationships"`
	Meta          Meta                   `json:"meta"`
	Links         Links                  `json:"links"`
}

// Identifier gets the resource identifier of the object.
func (r *ResourceObject) Identifier() ResourceIdentifier {
	return ResourceIdentifier{ID: r.ID, Type: r.Type}
}

// Attribute gets the rendered attribute value.
func (r *ResourceObject) Attribute(name string) (interface{}, bool) {
	if r.Attributes == nil {
		return nil, false
	}
	return r.Attributes.Get(name)
}

// Relationship gets the rendered relationship object.
func (r *ResourceObject) Relationship(name string) (RelationshipObject, bool) {
	if r.Relationships == nil {
		return RelationshipObject{}, false
	}
	v, ok := r.Relationships.Get(name)
	if !ok {
		return RelationshipObject{}, false
	}
	relationship, ok := v.(RelationshipObject)
	return relationship, ok
}

// identify gets the resource identifier without the hooks applied. The
// instance wrapper shares the identifier of the wrapped resource.
func (a *assembly) identify(resource interface{}) (ResourceIdentifier, error) {
	inner, _ := unwrap(resource)
	return a.cache.identifier(inner, a.req, func() (ResourceIdentifier, error) {
		id, err := a.enc.ResolveID(inner, a.req)
		if err != nil {
			return ResourceIdentifier{}, err
		}
		typ, err := a.enc.ResolveType(inner, a.req)
		if err != nil {
			return ResourceIdentifier{}, err
		}
		return ResourceIdentifier{ID: id, Type: typ}, nil
	})
}

// render renders the resource object at most once per assembly. The attributes
// and relationships of a wrapped resource are computed once for the resource
// itself, the wrapper only decorates the rendered object.
func (a *assembly) render(resource interface{}) (*node, error) {
	inner, wrapper := unwrap(resource)
	base, err := a.cache.node(inner, a.req, func() (*node, error) {
		return a.renderResource(inner)
	})
	if err != nil || wrapper == nil {
		return base, err
	}
	return a.cache.node(wrapper, a.req, func() (*node, error) {
		return a.decorate(base, wrapper)
	})
}

func (a *assembly) renderResource(resource interface{}) (*node, error) {
	identifier, err := a.identify(resource)
	if err != nil {
		return nil, err
	}
	fields, err := a.enc.FieldsFor(identifier.Type, a.req)
	if err != nil {
		return nil, err
	}
	attributes, available, err := a.enc.attributes(resource, fields, a.req)
	if err != nil {
		return nil, err
	}
	relationships, related, err := a.relationships(resource)
	if err != nil {
		return nil, err
	}

	var links Links
	var meta Meta
	if linkable, ok := resource.(Linkable); ok {
		links = linkable.JSONAPILinks(a.req)
	}
	if metable, ok := resource.(Metable); ok {
		meta = metable.JSONAPIMeta(a.req)
	}

	object := &ResourceObject{
		ID:            identifier.ID,
		Type:          identifier.Type,
		Attributes:    attributes,
		Relationships: relationships,
		Meta:          mergeMeta(meta, nil),
		Links:         mergeLinks(links, nil),
	}
	if err = object.Links.Validate(); err != nil {
		return nil, err
	}
	if a.enc.cfg.AvailableAttributesMeta {
		object.Meta[AvailableAttributesMetaKey] = available
	}
	if logger.IsLevelEnabled(log.LDEBUG3) {
		logger.Debug3f("Rendered resource: %s", identifier)
	}
	return &node{resource: resource, identifier: identifier, object: object, related: related}, nil
}

// decorate copies the rendered 'base' object with the instance links and meta
// of the 'wrapper' overriding the declared ones.
func (a *assembly) decorate(base *node, wrapper *Wrapper) (*node, error) {
	object := *base.object
	object.Links = mergeLinks(base.object.Links, wrapper.links)
	object.Meta = mergeMeta(base.object.Meta, wrapper.meta)
	if err := object.Links.Validate(); err != nil {
		return nil, err
	}
	if available, ok := base.object.Meta[AvailableAttributesMetaKey]; ok {
		object.Meta[AvailableAttributesMetaKey] = available
	}
	return &node{resource: wrapper, identifier: base.identifier, object: &object, related: base.related}, nil
}
