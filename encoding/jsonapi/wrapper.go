package jsonapi

// compile time check for Wrapper interfaces.
var (
	_ IdentifierHooker   = &Wrapper{}
	_ RelationshipHooker = &Wrapper{}
)

// Wrapper decorates a single resource instance with its own links, meta and
// hooks. The instance links and meta override the members declared by the
// resource.
type Wrapper struct {
	resource          interface{}
	links             Links
	meta              Meta
	identifierHooks   []IdentifierHook
	relationshipHooks []RelationshipHook
}

// Wrap creates the instance wrapper for the 'resource'. Wrapping the Wrapper
// returns it unchanged.
func Wrap(resource interface{}) *Wrapper {
	if w, ok := resource.(*Wrapper); ok {
		return w
	}
	return &Wrapper{resource: resource}
}

// Resource gets the wrapped resource.
func (w *Wrapper) Resource() interface{} {
	return w.resource
}

// WithLinks adds the instance 'links'.
func (w *Wrapper) WithLinks(links Links) *Wrapper {
	w.links = mergeLinks(w.links, links)
	return w
}

// WithMeta adds the instance 'meta'.
func (w *Wrapper) WithMeta(meta Meta) *Wrapper {
	w.meta = mergeMeta(w.meta, meta)
	return w
}

// WithIdentifierHook adds the hook adjusting the identifiers of the resource
// whenever it is referenced in a relationship linkage.
func (w *Wrapper) WithIdentifierHook(hook IdentifierHook) *Wrapper {
	w.identifierHooks = append(w.identifierHooks, hook)
	return w
}

// WithRelationshipHook adds the hook adjusting the to-one relationship objects
// referencing the resource.
func (w *Wrapper) WithRelationshipHook(hook RelationshipHook) *Wrapper {
	w.relationshipHooks = append(w.relationshipHooks, hook)
	return w
}

// JSONAPIIdentifierHooks implements IdentifierHooker interface.
func (w *Wrapper) JSONAPIIdentifierHooks() []IdentifierHook {
	hooks := append([]IdentifierHook{}, identifierHooksOf(w.resource)...)
	return append(hooks, w.identifierHooks...)
}

// JSONAPIRelationshipHooks implements RelationshipHooker interface.
func (w *Wrapper) JSONAPIRelationshipHooks() []RelationshipHook {
	hooks := append([]RelationshipHook{}, relationshipHooksOf(w.resource)...)
	return append(hooks, w.relationshipHooks...)
}

// unwrap gets the resource wrapped by the Wrapper.
func unwrap(resource interface{}) (interface{}, *Wrapper) {
	if w, ok := resource.(*Wrapper); ok && w != nil {
		return w.resource, w
	}
	return resource, nil
}
