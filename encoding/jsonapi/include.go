package jsonapi

import (
	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
	"github.com/neuronlabs/jsonapi/query"
)

// assembly is the state of a single document assembly.
type assembly struct {
	enc   *Encoder
	req   *Request
	cache *requestCache

	visited  map[identifierKey]struct{}
	walked   map[walkKey]struct{}
	included []*ResourceObject
}

// walkKey marks the include subtree already walked from the resource.
type walkKey struct {
	identifier identifierKey
	include    *query.IncludeNode
}

func newAssembly(e *Encoder, req *Request) *assembly {
	return &assembly{
		enc:     e,
		req:     requestOrDefault(req),
		cache:   newRequestCache(),
		visited: map[identifierKey]struct{}{},
		walked:  map[walkKey]struct{}{},
	}
}

// CollectIncluded renders the resources reachable from the top level 'resources'
// through the 'includes' tree. Each resource is returned once, in the order of
// its first discovery. The top level resources are never returned.
func (e *Encoder) CollectIncluded(req *Request, includes *query.IncludeNode, resources ...interface{}) ([]*ResourceObject, error) {
	a := newAssembly(e, req)
	defer a.cache.flush()

	nodes, err := a.renderTopLevel(resources)
	if err != nil {
		return nil, err
	}
	if err = a.collectAll(nodes, includes); err != nil {
		return nil, err
	}
	return a.included, nil
}

// renderTopLevel renders the top level resources and marks them visited.
func (a *assembly) renderTopLevel(resources []interface{}) ([]*node, error) {
	nodes := make([]*node, 0, len(resources))
	for _, resource := range resources {
		if isNil(resource) {
			continue
		}
		n, err := a.render(resource)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
		a.visited[n.identifier.key()] = struct{}{}
	}
	return nodes, nil
}

func (a *assembly) collectAll(nodes []*node, includes *query.IncludeNode) error {
	if a.included == nil {
		a.included = []*ResourceObject{}
	}
	for _, n := range nodes {
		if err := a.collect(n, includes); err != nil {
			return err
		}
	}
	return nil
}

// collect walks the 'include' subtree from the node depth first. The resource
// reached through the same subtree twice is not descended again, which bounds
// the walk for cyclic graphs.
func (a *assembly) collect(n *node, include *query.IncludeNode) error {
	if include.IsEmpty() {
		return nil
	}
	key := walkKey{identifier: n.identifier.key(), include: include}
	if _, ok := a.walked[key]; ok {
		return nil
	}
	a.walked[key] = struct{}{}

	for _, child := range include.Children {
		related, ok := n.related[child.Name]
		if !ok {
			if a.enc.cfg.StrictIncludes {
				return errors.NewDetf(class.QueryIncludeUnknownRelation, "included relationship: '%s' is not declared by the resource: '%s'", child.Name, n.identifier.Type).
					WithDetail("Remove the relationship from the include parameter.")
			}
			logger.Debugf("Included relationship: '%s' not declared by the resource: '%s'. Ignoring.", child.Name, n.identifier.Type)
			continue
		}
		for _, resource := range related.resources {
			rn, err := a.render(resource)
			if err != nil {
				return err
			}
			if _, ok := a.visited[rn.identifier.key()]; !ok {
				a.visited[rn.identifier.key()] = struct{}{}
				a.included = append(a.included, rn.object)
			}
			if err = a.collect(rn, child); err != nil {
				return err
			}
		}
	}
	return nil
}
