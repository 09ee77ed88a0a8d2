// Package graph loads the resource graphs from the YAML fixtures.
//
// The fixture lists the resources with their attributes, relationships,
// links and meta. The relationships reference other resources by the
// 'type/id' reference:
//
//	data: [authors/alice]
//	links:
//	  self: /authors
//	resources:
//	  - type: authors
//	    id: alice
//	    attributes:
//	      name: Alice
//	    relationships:
//	      posts: [posts/1]
//	  - type: posts
//	    id: "1"
//	    attributes:
//	      title: First
//	    relationships:
//	      author: authors/alice
//
// The attributes keep the order of the fixture. Graph nodes implement the
// jsonapi capability interfaces, thus the graph might be assembled directly
// into a document.
package graph
