package jsonapi

import (
	"reflect"
)

// cacheKey identifies a resource instance within a single request.
type cacheKey struct {
	req *Request
	typ reflect.Type
	ptr uintptr
}

// node is the rendered resource with its resolved relationships.
type node struct {
	resource   interface{}
	identifier ResourceIdentifier
	object     *ResourceObject
	related    map[string]Related
}

// requestCache memoizes the resource identifiers and rendered nodes for the
// duration of a single document assembly. Only the resources with pointer
// identity are cached.
type requestCache struct {
	identifiers map[cacheKey]ResourceIdentifier
	nodes       map[cacheKey]*node

	hits, misses int
}

func newRequestCache() *requestCache {
	return &requestCache{
		identifiers: map[cacheKey]ResourceIdentifier{},
		nodes:       map[cacheKey]*node{},
	}
}

// identifier gets the cached identifier of the 'resource' or computes it.
func (c *requestCache) identifier(resource interface{}, req *Request, compute func() (ResourceIdentifier, error)) (ResourceIdentifier, error) {
	key, ok := identityKey(resource, req)
	if !ok {
		return compute()
	}
	if identifier, ok := c.identifiers[key]; ok {
		c.hits++
		return identifier, nil
	}
	c.misses++
	identifier, err := compute()
	if err != nil {
		return identifier, err
	}
	c.identifiers[key] = identifier
	return identifier, nil
}

// node gets the cached rendered node of the 'resource' or computes it.
func (c *requestCache) node(resource interface{}, req *Request, compute func() (*node, error)) (*node, error) {
	key, ok := identityKey(resource, req)
	if !ok {
		return compute()
	}
	if n, ok := c.nodes[key]; ok {
		c.hits++
		return n, nil
	}
	c.misses++
	n, err := compute()
	if err != nil {
		return nil, err
	}
	c.nodes[key] = n
	return n, nil
}

// flush clears the cache entries.
func (c *requestCache) flush() {
	logger.Debug3f("Flushing request cache. Hits: %d, misses: %d", c.hits, c.misses)
	c.identifiers = map[cacheKey]ResourceIdentifier{}
	c.nodes = map[cacheKey]*node{}
}

// identityKey gets the cache key of the 'resource'. The *Wrapper is identified by
// its own pointer, the ModelWrapper by the pointer of its model. The wrapped
// resource is cached separately under its own key.
func identityKey(resource interface{}, req *Request) (cacheKey, bool) {
	if _, ok := resource.(*Wrapper); !ok {
		if wrapper, ok := resource.(ModelWrapper); ok {
			if key, ok := pointerKey(wrapper.JSONAPIModel(), req); ok {
				key.typ = reflect.TypeOf(resource)
				return key, true
			}
		}
	}
	return pointerKey(resource, req)
}

func pointerKey(value interface{}, req *Request) (cacheKey, bool) {
	if value == nil {
		return cacheKey{}, false
	}
	v := reflect.ValueOf(value)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return cacheKey{}, false
	}
	return cacheKey{req: req, typ: v.Type(), ptr: v.Pointer()}, true
}
