package graph

import (
	"strings"

	"github.com/neuronlabs/jsonapi/encoding/jsonapi"
	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
)

// compile time check for the Node capabilities.
var (
	_ jsonapi.Identifiable = &Node{}
	_ jsonapi.Typed        = &Node{}
	_ jsonapi.Attributer   = &Node{}
	_ jsonapi.Relationer   = &Node{}
	_ jsonapi.Linkable     = &Node{}
	_ jsonapi.Metable      = &Node{}
)

// RefSeparator separates the type and id in the resource reference.
const RefSeparator = "/"

// Graph is the set of resources loaded from the fixture.
type Graph struct {
	many    bool
	primary []string
	links   jsonapi.Links
	meta    jsonapi.Meta
	nodes   map[string]*Node
	order   []*Node
}

// Ref creates the resource reference for given 'typ' and 'id'.
func Ref(typ, id string) string {
	return typ + RefSeparator + id
}

// Resource gets the node with given 'ref' reference.
func (g *Graph) Resource(ref string) (*Node, bool) {
	n, ok := g.nodes[ref]
	return n, ok
}

// Nodes gets all the graph nodes in the fixture order.
func (g *Graph) Nodes() []*Node {
	return g.order
}

// IsMany checks if the primary data is a collection.
func (g *Graph) IsMany() bool {
	return g.many
}

// Primary gets the primary data resources.
func (g *Graph) Primary() []interface{} {
	resources := make([]interface{}, 0, len(g.primary))
	for _, ref := range g.primary {
		resources = append(resources, g.nodes[ref])
	}
	return resources
}

// Assemble assembles the document with the graph primary data. The fixture
// document links and meta are overridden by the 'options'.
func (g *Graph) Assemble(e *jsonapi.Encoder, req *jsonapi.Request, options ...jsonapi.DocumentOption) (*jsonapi.Document, error) {
	options = append([]jsonapi.DocumentOption{jsonapi.DocumentLinks(g.links), jsonapi.DocumentMeta(g.meta)}, options...)
	if g.many {
		return e.AssembleMany(req, g.Primary(), options...)
	}
	var primary interface{}
	if len(g.primary) == 1 {
		primary = g.nodes[g.primary[0]]
	}
	return e.AssembleOne(req, primary, options...)
}

func (g *Graph) resolve(ref string) (*Node, error) {
	n, ok := g.nodes[ref]
	if !ok {
		return nil, errors.NewDetf(class.GraphReferenceNotFound, "resource: '%s' not found in the graph", ref)
	}
	return n, nil
}

// Node is a single graph resource.
type Node struct {
	graph *Graph

	ID   string
	Type string

	attributes    []jsonapi.Attribute
	relationships []relation
	links         jsonapi.Links
	meta          jsonapi.Meta
}

type relation struct {
	name string
	many bool
	refs []string
}

// Ref gets the node reference.
func (n *Node) Ref() string {
	return Ref(n.Type, n.ID)
}

// JSONAPIID implements jsonapi.Identifiable interface.
func (n *Node) JSONAPIID(*jsonapi.Request) string {
	return n.ID
}

// JSONAPIType implements jsonapi.Typed interface.
func (n *Node) JSONAPIType(*jsonapi.Request) string {
	return n.Type
}

// JSONAPIAttributes implements jsonapi.Attributer interface.
func (n *Node) JSONAPIAttributes(*jsonapi.Request) []jsonapi.Attribute {
	return n.attributes
}

// JSONAPIRelationships implements jsonapi.Relationer interface. The references
// are resolved lazily, so that a dangling reference fails only when rendered.
func (n *Node) JSONAPIRelationships(*jsonapi.Request) []jsonapi.Relationship {
	relationships := make([]jsonapi.Relationship, len(n.relationships))
	for i, rel := range n.relationships {
		rel := rel
		relationships[i] = jsonapi.Relationship{
			Name: rel.name,
			Resolve: func() (jsonapi.Related, error) {
				resources := make([]interface{}, 0, len(rel.refs))
				for _, ref := range rel.refs {
					related, err := n.graph.resolve(ref)
					if err != nil {
						return jsonapi.Related{}, err
					}
					resources = append(resources, related)
				}
				if rel.many {
					return jsonapi.ToMany(resources...), nil
				}
				if len(resources) == 0 {
					return jsonapi.ToOne(nil), nil
				}
				return jsonapi.ToOne(resources[0]), nil
			},
		}
	}
	return relationships
}

// JSONAPILinks implements jsonapi.Linkable interface.
func (n *Node) JSONAPILinks(*jsonapi.Request) jsonapi.Links {
	return n.links
}

// JSONAPIMeta implements jsonapi.Metable interface.
func (n *Node) JSONAPIMeta(*jsonapi.Request) jsonapi.Meta {
	return n.meta
}

func splitRef(ref string) (typ, id string, ok bool) {
	i := strings.Index(ref, RefSeparator)
	if i <= 0 || i == len(ref)-1 {
		return "", "", false
	}
	return ref[:i], ref[i+1:], true
}
