package namer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
)

// TestNamingConvention tests parsing and formatting of the naming conventions.
func TestNamingConvention(t *testing.T) {
	tests := map[string]struct {
		convention NamingConvention
		collection string
	}{
		"snake":       {SnakeCase, "basic_models"},
		"kebab":       {KebabCase, "basic-models"},
		"camel":       {CamelCase, "BasicModels"},
		"lower_camel": {LowerCamelCase, "basicModels"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			n, err := ParseNamingConvention(name)
			require.NoError(t, err)
			assert.Equal(t, tc.convention, n)
			assert.Equal(t, name, n.String())
			assert.Equal(t, tc.collection, n.Collection("BasicModel"))
		})
	}

	t.Run("Unknown", func(t *testing.T) {
		_, err := ParseNamingConvention("pascal")
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ConfigValueNaming))
	})

	t.Run("IrregularPlural", func(t *testing.T) {
		assert.Equal(t, "people", LowerCamelCase.Collection("Person"))
		assert.Equal(t, "categories", SnakeCase.Collection("Category"))
	})
}
