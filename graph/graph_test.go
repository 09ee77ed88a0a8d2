package graph

import (
	"bytes"
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/jsonapi/encoding/jsonapi"
	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
)

// TestLoad tests loading the fixture file.
func TestLoad(t *testing.T) {
	g, err := Load("testdata/blog.yaml")
	require.NoError(t, err)

	assert.True(t, g.IsMany())
	assert.Len(t, g.Nodes(), 6)
	require.Len(t, g.Primary(), 1)
	assert.Equal(t, "authors/alice", g.Primary()[0].(*Node).Ref())

	post, ok := g.Resource("posts/1")
	require.True(t, ok)
	assert.Equal(t, "1", post.ID)
	assert.Equal(t, jsonapi.Link{Href: "/posts/1", Meta: jsonapi.Meta{"version": 2}}, post.links["self"])

	attributes := post.JSONAPIAttributes(nil)
	require.Len(t, attributes, 2)
	assert.Equal(t, "title", attributes[0].Name)
	assert.Equal(t, "tags", attributes[1].Name)
	assert.Equal(t, []interface{}{"go", "jsonapi"}, attributes[1].Value)

	_, err = Load("testdata/missing.yaml")
	require.Error(t, err)
	assert.True(t, errors.IsClass(err, class.GraphFixtureInvalid))
}

// TestAssemble tests assembling the document from the graph.
func TestAssemble(t *testing.T) {
	g, err := Load("testdata/blog.yaml")
	require.NoError(t, err)

	e := jsonapi.MustNew(nil)
	values, err := url.ParseQuery("include=posts.comments.author.mentor&fields[posts]=title")
	require.NoError(t, err)

	doc, err := g.Assemble(e, jsonapi.NewRequest(context.Background(), values))
	require.NoError(t, err)

	assert.Equal(t, jsonapi.Links{"self": "/authors"}, doc.Links)
	assert.Equal(t, jsonapi.Meta{"total": 2}, doc.Meta)

	data, ok := doc.Many()
	require.True(t, ok)
	require.Len(t, data, 1)

	var included []string
	for _, object := range doc.Included {
		included = append(included, object.Identifier().String())
	}
	assert.Equal(t, []string{"posts/1", "comments/c1", "authors/bob", "posts/2", "comments/c2"}, included)
	assert.Equal(t, []string{"title"}, doc.Included[0].Attributes.Keys())

	buf := &bytes.Buffer{}
	require.NoError(t, e.Marshal(buf, doc))
	assert.Contains(t, buf.String(), `"mentor":{"data":null}`)
	assert.Contains(t, buf.String(), `"attributes":{"name":"Alice","age":30}`)
	assert.Contains(t, buf.String(), `"links":{"self":{"href":"/posts/1","meta":{"version":2}}}`)
}

// TestParse tests the fixture parsing errors.
func TestParse(t *testing.T) {
	t.Run("Single", func(t *testing.T) {
		g, err := Parse([]byte("data: things/1\nresources:\n  - {type: things, id: 1}\n"))
		require.NoError(t, err)
		assert.False(t, g.IsMany())

		doc, err := g.Assemble(jsonapi.MustNew(nil), nil)
		require.NoError(t, err)
		object, ok := doc.One()
		require.True(t, ok)
		assert.Equal(t, "things/1", object.Identifier().String())
	})

	t.Run("NullPrimary", func(t *testing.T) {
		g, err := Parse([]byte("data: null\nresources: []\n"))
		require.NoError(t, err)

		doc, err := g.Assemble(jsonapi.MustNew(nil), nil)
		require.NoError(t, err)
		_, ok := doc.One()
		assert.False(t, ok)
	})

	failures := map[string]struct {
		fixture string
		class   class.Class
	}{
		"NotMapping":         {fixture: "- a\n- b\n", class: class.GraphFixtureInvalid},
		"Syntax":             {fixture: "data: [\n", class: class.GraphFixtureInvalid},
		"UnknownKey":         {fixture: "other: 1\n", class: class.GraphFixtureInvalid},
		"MissingID":          {fixture: "resources:\n  - {type: things}\n", class: class.GraphFixtureInvalid},
		"Duplicated":         {fixture: "resources:\n  - {type: things, id: 1}\n  - {type: things, id: 1}\n", class: class.GraphFixtureInvalid},
		"InvalidRef":         {fixture: "resources:\n  - {type: things, id: 1, relationships: {other: nothing}}\n", class: class.GraphFixtureInvalid},
		"InvalidLink":        {fixture: "resources:\n  - {type: things, id: 1, links: {self: [a]}}\n", class: class.GraphFixtureInvalid},
		"UnknownPrimary":     {fixture: "data: things/2\nresources:\n  - {type: things, id: 1}\n", class: class.GraphReferenceNotFound},
		"AttributesSequence": {fixture: "resources:\n  - {type: things, id: 1, attributes: [a]}\n", class: class.GraphFixtureInvalid},
	}
	for name, tc := range failures {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tc.fixture))
			require.Error(t, err)
			assert.True(t, errors.IsClass(err, tc.class), "%v", err)
		})
	}

	t.Run("DanglingRelationship", func(t *testing.T) {
		g, err := Parse([]byte("data: things/1\nresources:\n  - {type: things, id: 1, relationships: {other: things/2}}\n"))
		require.NoError(t, err)

		_, err = g.Assemble(jsonapi.MustNew(nil), nil)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.GraphReferenceNotFound))
	})
}
