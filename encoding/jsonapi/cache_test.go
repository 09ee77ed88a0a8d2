package jsonapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRequestCacheKeys tests the resource identity used by the cache.
func TestRequestCacheKeys(t *testing.T) {
	req := request(t, "")
	model := &BasicModel{ID: 1}

	t.Run("Pointer", func(t *testing.T) {
		first, ok := identityKey(model, req)
		require.True(t, ok)
		second, ok := identityKey(model, req)
		require.True(t, ok)
		assert.Equal(t, first, second)

		other, ok := identityKey(&BasicModel{ID: 1}, req)
		require.True(t, ok)
		assert.NotEqual(t, first, other)
	})

	t.Run("Request", func(t *testing.T) {
		first, _ := identityKey(model, req)
		second, _ := identityKey(model, request(t, ""))
		assert.NotEqual(t, first, second)
	})

	t.Run("Value", func(t *testing.T) {
		_, ok := identityKey(BasicModel{ID: 1}, req)
		assert.False(t, ok)

		_, ok = identityKey(nil, req)
		assert.False(t, ok)

		_, ok = identityKey((*BasicModel)(nil), req)
		assert.False(t, ok)
	})

	t.Run("ModelWrapper", func(t *testing.T) {
		first, ok := identityKey(basicResource{BasicModel: model}, req)
		require.True(t, ok)
		second, ok := identityKey(basicResource{BasicModel: model}, req)
		require.True(t, ok)
		assert.Equal(t, first, second)

		raw, _ := identityKey(model, req)
		assert.NotEqual(t, raw, first)
	})

	t.Run("Wrapper", func(t *testing.T) {
		wrapper := Wrap(model)
		first, ok := identityKey(wrapper, req)
		require.True(t, ok)
		second, _ := identityKey(Wrap(model), req)
		assert.NotEqual(t, first, second)
	})
}

// TestRequestCacheCompute tests that the computation runs once per resource.
func TestRequestCacheCompute(t *testing.T) {
	cache := newRequestCache()
	req := request(t, "")
	model := &BasicModel{ID: 1}

	var calls int
	compute := func() (*node, error) {
		calls++
		return &node{resource: model}, nil
	}

	first, err := cache.node(model, req, compute)
	require.NoError(t, err)
	second, err := cache.node(model, req, compute)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, cache.hits)
	assert.Equal(t, 1, cache.misses)

	_, err = cache.node(BasicModel{ID: 1}, req, compute)
	require.NoError(t, err)
	_, err = cache.node(BasicModel{ID: 1}, req, compute)
	require.NoError(t, err)
	assert.Equal(t, 3, calls)

	cache.flush()
	_, err = cache.node(model, req, compute)
	require.NoError(t, err)
	assert.Equal(t, 4, calls)

	t.Run("Identifier", func(t *testing.T) {
		var identifierCalls int
		for i := 0; i < 3; i++ {
			identifier, err := cache.identifier(model, req, func() (ResourceIdentifier, error) {
				identifierCalls++
				return ResourceIdentifier{ID: "1", Type: "basicModels"}, nil
			})
			require.NoError(t, err)
			assert.Equal(t, "basicModels/1", identifier.String())
		}
		assert.Equal(t, 1, identifierCalls)
	})
}
