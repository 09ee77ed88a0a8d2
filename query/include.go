package query

import (
	"net/url"
	"strings"

	"github.com/neuronlabs/jsonapi/common"
	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
)

// IncludeNode is a node of the include tree. The root node has an empty name
// and its children are the first segments of the include paths. Children are
// kept in the order of their first occurrence.
type IncludeNode struct {
	Name     string
	Children []*IncludeNode
}

// Child gets the child node with given relationship 'name'.
func (n *IncludeNode) Child(name string) (*IncludeNode, bool) {
	if n == nil {
		return nil, false
	}
	for _, child := range n.Children {
		if child.Name == name {
			return child, true
		}
	}
	return nil, false
}

// IsEmpty checks if the node has no children.
func (n *IncludeNode) IsEmpty() bool {
	return n == nil || len(n.Children) == 0
}

// Depth gets the longest include path length below the node.
func (n *IncludeNode) Depth() int {
	if n == nil {
		return 0
	}
	var depth int
	for _, child := range n.Children {
		if d := child.Depth() + 1; d > depth {
			depth = d
		}
	}
	return depth
}

// Paths gets the dotted leaf paths of the tree, i.e. 'posts.author'.
func (n *IncludeNode) Paths() []string {
	var paths []string
	var walk func(prefix string, node *IncludeNode)
	walk = func(prefix string, node *IncludeNode) {
		for _, child := range node.Children {
			path := child.Name
			if prefix != "" {
				path = prefix + common.NestedSeparator + child.Name
			}
			if child.IsEmpty() {
				paths = append(paths, path)
				continue
			}
			walk(path, child)
		}
	}
	if n != nil {
		walk("", n)
	}
	return paths
}

func (n *IncludeNode) add(segments []string) {
	current := n
	for _, segment := range segments {
		child, ok := current.Child(segment)
		if !ok {
			child = &IncludeNode{Name: segment}
			current.Children = append(current.Children, child)
		}
		current = child
	}
}

// NewIncludeTree creates the include tree for the dotted 'paths'.
// A positive 'limit' restricts the number of segments of a single path.
func NewIncludeTree(limit int, paths ...string) (*IncludeNode, error) {
	root := &IncludeNode{}
	for _, path := range paths {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		segments := strings.Split(path, common.NestedSeparator)
		for i, segment := range segments {
			segment = strings.TrimSpace(segment)
			if segment == "" {
				return nil, errors.NewDetf(class.QueryIncludeInvalid, "invalid include path: '%s'", path).
					WithDetail("include path contains an empty relationship name")
			}
			segments[i] = segment
		}
		if limit > 0 && len(segments) > limit {
			return nil, errors.NewDetf(class.QueryIncludeTooDeep, "include path: '%s' is too deep", path).
				WithDetailf("maximum nested include limit is: %d", limit)
		}
		root.add(segments)
	}
	return root, nil
}

// ParseIncludes parses the 'include' query parameter into the include tree.
func ParseIncludes(values url.Values, limit int) (*IncludeNode, error) {
	var paths []string
	for _, value := range values[common.QueryParamInclude] {
		paths = append(paths, strings.Split(value, common.ValueSeparator)...)
	}
	return NewIncludeTree(limit, paths...)
}
