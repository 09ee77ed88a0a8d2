package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
)

// TestSplitBracketParameter tests the SplitBracketParameter function.
func TestSplitBracketParameter(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		splitted, err := SplitBracketParameter("[collection][field][$operator]")
		require.NoError(t, err)

		assert.Equal(t, []string{"collection", "field", "$operator"}, splitted)
	})

	t.Run("Single", func(t *testing.T) {
		splitted, err := SplitBracketParameter("[users]")
		require.NoError(t, err)
		assert.Equal(t, []string{"users"}, splitted)
	})

	invalid := map[string]string{
		"DoubleOpen":  "[[collection][field][$operator]",
		"DoubleClose": "[collection]][field][$operator]",
		"NoClose":     "[collection",
		"Outside":     "[users]x",
		"NoBrackets":  "users",
	}
	for name, testCase := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := SplitBracketParameter(testCase)
			require.Error(t, err)
			assert.True(t, errors.IsClass(err, class.CommonParseBrackets))
		})
	}
}
