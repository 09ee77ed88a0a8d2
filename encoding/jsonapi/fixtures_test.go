package jsonapi

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

// BasicModel is the model without relationships.
type BasicModel struct {
	ID   int
	Name string
}

func (b *BasicModel) JSONAPIAttributes(*Request) []Attribute {
	return []Attribute{{Name: "name", Value: b.Name}}
}

// Author is the model with the posts relationship.
type Author struct {
	ID    string `jsonapi:"primary"`
	Name  string
	Age   int
	Posts []*Post

	attributeCalls    int
	relationshipCalls int
}

func (a *Author) JSONAPIAttributes(*Request) []Attribute {
	return []Attribute{
		{Name: "name", Value: a.Name},
		{Name: "age", Value: Lazy(func() (interface{}, error) {
			a.attributeCalls++
			return a.Age, nil
		})},
	}
}

func (a *Author) JSONAPIRelationships(*Request) []Relationship {
	return []Relationship{
		{Name: "posts", Resolve: func() (Related, error) {
			a.relationshipCalls++
			return ToMany(Resources(a.Posts)...), nil
		}},
	}
}

// Post is the model with the author and comments relationships.
type Post struct {
	ID       uint64
	Title    string
	Author   *Author
	Comments []*Comment
}

func (p *Post) JSONAPIAttributes(*Request) []Attribute {
	return []Attribute{{Name: "title", Value: p.Title}}
}

func (p *Post) JSONAPIRelationships(*Request) []Relationship {
	return []Relationship{
		{Name: "author", Resolve: func() (Related, error) { return ToOne(p.Author), nil }},
		{Name: "comments", Resolve: func() (Related, error) { return ToMany(Resources(p.Comments)...), nil }},
	}
}

func (p *Post) JSONAPILinks(*Request) Links {
	return Links{"self": "/posts/" + p.idString()}
}

func (p *Post) idString() string {
	id, _ := DefaultID(p)
	return id
}

// Comment is the model with the author relationship.
type Comment struct {
	ID     string
	Body   string
	Author *Author
}

func (c *Comment) JSONAPIAttributes(*Request) []Attribute {
	return []Attribute{{Name: "body", Value: func() interface{} { return c.Body }}}
}

func (c *Comment) JSONAPIRelationships(*Request) []Relationship {
	return []Relationship{
		{Name: "author", Resolve: func() (Related, error) { return ToOne(c.Author), nil }},
	}
}

func (c *Comment) JSONAPIMeta(*Request) Meta {
	return Meta{"length": len(c.Body)}
}

// blog creates the cyclic graph: each author writes the posts, each post is
// commented by the other author.
func blog() (*Author, *Author) {
	alice := &Author{ID: "alice", Name: "Alice", Age: 30}
	bob := &Author{ID: "bob", Name: "Bob", Age: 40}

	p1 := &Post{ID: 1, Title: "First", Author: alice}
	p2 := &Post{ID: 2, Title: "Second", Author: alice}
	p3 := &Post{ID: 3, Title: "Third", Author: bob}

	p1.Comments = []*Comment{{ID: "c1", Body: "nice", Author: bob}}
	p2.Comments = []*Comment{{ID: "c2", Body: "great", Author: bob}}
	p3.Comments = []*Comment{{ID: "c3", Body: "ok", Author: alice}}

	alice.Posts = []*Post{p1, p2}
	bob.Posts = []*Post{p3}
	return alice, bob
}

func request(t *testing.T, rawQuery string) *Request {
	t.Helper()
	values, err := url.ParseQuery(rawQuery)
	require.NoError(t, err)
	return NewRequest(context.Background(), values)
}

func identifiers(objects []*ResourceObject) []string {
	ids := make([]string, len(objects))
	for i, object := range objects {
		ids[i] = object.Identifier().String()
	}
	return ids
}
