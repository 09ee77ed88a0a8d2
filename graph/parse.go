package graph

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/neuronlabs/jsonapi/encoding/jsonapi"
	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
	"github.com/neuronlabs/jsonapi/log"
)

const (
	keyData          = "data"
	keyResources     = "resources"
	keyType          = "type"
	keyID            = "id"
	keyAttributes    = "attributes"
	keyRelationships = "relationships"
	keyLinks         = "links"
	keyMeta          = "meta"
	keyHref          = "href"
)

// Load reads and parses the fixture file at 'path'.
func Load(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewDetf(class.GraphFixtureInvalid, "reading fixture: '%s' failed: %v", path, err)
	}
	g, err := Parse(data)
	if err != nil {
		return nil, err
	}
	log.Debugf("Loaded fixture: '%s' with %d resources", path, len(g.order))
	return g, nil
}

// Parse parses the YAML fixture 'data'.
func Parse(data []byte) (*Graph, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.NewDetf(class.GraphFixtureInvalid, "invalid fixture: %v", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) != 1 || root.Content[0].Kind != yaml.MappingNode {
		return nil, errors.NewDet(class.GraphFixtureInvalid, "fixture is not a mapping")
	}

	g := &Graph{nodes: map[string]*Node{}}
	var primary *yaml.Node
	err := forEachPair(root.Content[0], func(key string, value *yaml.Node) error {
		switch key {
		case keyData:
			primary = value
		case keyResources:
			return g.parseResources(value)
		case keyLinks:
			links, err := parseLinks(value)
			g.links = links
			return err
		case keyMeta:
			return value.Decode(&g.meta)
		default:
			return errors.NewDetf(class.GraphFixtureInvalid, "unknown fixture key: '%s'", key)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if primary != nil {
		if err = g.parsePrimary(primary); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *Graph) parsePrimary(value *yaml.Node) error {
	refs, many, err := parseRefs(value)
	if err != nil {
		return err
	}
	for _, ref := range refs {
		if _, err = g.resolve(ref); err != nil {
			return err
		}
	}
	g.primary, g.many = refs, many
	return nil
}

func (g *Graph) parseResources(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return invalidNode(value, "'resources' must be a sequence")
	}
	for _, item := range value.Content {
		n, err := g.parseNode(item)
		if err != nil {
			return err
		}
		if _, ok := g.nodes[n.Ref()]; ok {
			return invalidNode(item, "duplicated resource: '"+n.Ref()+"'")
		}
		g.nodes[n.Ref()] = n
		g.order = append(g.order, n)
	}
	return nil
}

func (g *Graph) parseNode(value *yaml.Node) (*Node, error) {
	if value.Kind != yaml.MappingNode {
		return nil, invalidNode(value, "resource must be a mapping")
	}
	n := &Node{graph: g, attributes: []jsonapi.Attribute{}}
	err := forEachPair(value, func(key string, v *yaml.Node) error {
		switch key {
		case keyType:
			typ, err := scalar(v)
			n.Type = typ
			return err
		case keyID:
			id, err := scalar(v)
			n.ID = id
			return err
		case keyAttributes:
			return n.parseAttributes(v)
		case keyRelationships:
			return n.parseRelationships(v)
		case keyLinks:
			links, err := parseLinks(v)
			n.links = links
			return err
		case keyMeta:
			return v.Decode(&n.meta)
		default:
			return invalidNode(v, "unknown resource key: '"+key+"'")
		}
	})
	if err != nil {
		return nil, err
	}
	if n.Type == "" || n.ID == "" {
		return nil, invalidNode(value, "resource requires both 'type' and 'id'")
	}
	return n, nil
}

func (n *Node) parseAttributes(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return invalidNode(value, "'attributes' must be a mapping")
	}
	return forEachPair(value, func(key string, v *yaml.Node) error {
		var attr interface{}
		if err := v.Decode(&attr); err != nil {
			return err
		}
		n.attributes = append(n.attributes, jsonapi.Attribute{Name: key, Value: attr})
		return nil
	})
}

func (n *Node) parseRelationships(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return invalidNode(value, "'relationships' must be a mapping")
	}
	return forEachPair(value, func(key string, v *yaml.Node) error {
		refs, many, err := parseRefs(v)
		if err != nil {
			return err
		}
		n.relationships = append(n.relationships, relation{name: key, many: many, refs: refs})
		return nil
	})
}

// parseRefs parses the single reference, null or the sequence of references.
func parseRefs(value *yaml.Node) ([]string, bool, error) {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			return []string{}, false, nil
		}
		if _, _, ok := splitRef(value.Value); !ok {
			return nil, false, invalidNode(value, "invalid reference: '"+value.Value+"'")
		}
		return []string{value.Value}, false, nil
	case yaml.SequenceNode:
		refs := make([]string, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode {
				return nil, false, invalidNode(item, "reference must be a scalar")
			}
			if _, _, ok := splitRef(item.Value); !ok {
				return nil, false, invalidNode(item, "invalid reference: '"+item.Value+"'")
			}
			refs = append(refs, item.Value)
		}
		return refs, true, nil
	default:
		return nil, false, invalidNode(value, "reference must be a scalar or a sequence")
	}
}

func parseLinks(value *yaml.Node) (jsonapi.Links, error) {
	if value.Kind != yaml.MappingNode {
		return nil, invalidNode(value, "'links' must be a mapping")
	}
	links := jsonapi.Links{}
	err := forEachPair(value, func(key string, v *yaml.Node) error {
		switch v.Kind {
		case yaml.ScalarNode:
			links[key] = v.Value
			return nil
		case yaml.MappingNode:
			link := jsonapi.Link{}
			err := forEachPair(v, func(linkKey string, lv *yaml.Node) error {
				switch linkKey {
				case keyHref:
					return lv.Decode(&link.Href)
				case keyMeta:
					return lv.Decode(&link.Meta)
				default:
					return invalidNode(lv, "unknown link key: '"+linkKey+"'")
				}
			})
			links[key] = link
			return err
		default:
			return invalidNode(v, "link must be a string or a mapping")
		}
	})
	if err != nil {
		return nil, err
	}
	return links, nil
}

func forEachPair(mapping *yaml.Node, fn func(key string, value *yaml.Node) error) error {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if err := fn(mapping.Content[i].Value, mapping.Content[i+1]); err != nil {
			if _, ok := err.(*errors.DetailedError); ok {
				return err
			}
			return invalidNode(mapping.Content[i+1], err.Error())
		}
	}
	return nil
}

func scalar(node *yaml.Node) (string, error) {
	if node.Kind != yaml.ScalarNode {
		return "", invalidNode(node, "value must be a scalar")
	}
	return node.Value, nil
}

func invalidNode(node *yaml.Node, message string) error {
	return errors.NewDetf(class.GraphFixtureInvalid, "line %d: %s", node.Line, message)
}
