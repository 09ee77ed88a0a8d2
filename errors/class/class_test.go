package class

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withCleanRegistry(t *testing.T) {
	t.Helper()
	previous := registry
	registry = newClassRegistry()
	t.Cleanup(func() { registry = previous })
}

// TestClass tests the error classification system.
func TestClass(t *testing.T) {
	t.Run("RegisterMajor", func(t *testing.T) {
		withCleanRegistry(t)

		m, err := RegisterMajor("TestingMajor")
		require.NoError(t, err)
		assert.Equal(t, uint8(1), uint8(m))

		m, err = RegisterMajor("TestingMajor2", "second")
		require.NoError(t, err)
		assert.Equal(t, uint8(2), uint8(m))
		assert.Equal(t, "second", m.Description())
	})

	t.Run("DuplicatedMajor", func(t *testing.T) {
		withCleanRegistry(t)

		_, err := RegisterMajor("TestingMajor")
		require.NoError(t, err)

		_, err = RegisterMajor("TestingMajor")
		require.Error(t, err)
	})

	t.Run("RegisterMinor", func(t *testing.T) {
		withCleanRegistry(t)

		m, err := RegisterMajor("TestingMajor")
		require.NoError(t, err)

		minor, err := m.RegisterMinor("TestingMinor")
		require.NoError(t, err)
		assert.Equal(t, "TestingMinor", minor.Name())
		assert.Equal(t, m, minor.Major())

		_, err = m.RegisterMinor("TestingMinor")
		require.Error(t, err)

		t.Run("RegisterIndex", func(t *testing.T) {
			index, err := minor.RegisterIndex("TestingIndex")
			require.NoError(t, err)
			assert.Equal(t, "TestingIndex", index.Name())

			_, err = minor.RegisterIndex("TestingIndex")
			require.Error(t, err)
		})
	})

	t.Run("UnregisteredMajor", func(t *testing.T) {
		withCleanRegistry(t)

		_, err := Major(5).RegisterMinor("Minor")
		require.Error(t, err)
	})

	t.Run("Class", func(t *testing.T) {
		withCleanRegistry(t)

		major, err := RegisterMajor("TestingMajor")
		require.NoError(t, err)

		minor, err := major.RegisterMinor("TestingMinor")
		require.NoError(t, err)

		index, err := minor.RegisterIndex("TestingIndex")
		require.NoError(t, err)

		c := index.Class()
		assert.Equal(t, Class(1<<(32-majorBitSize)|1<<(32-minorBitSize-majorBitSize)|1), c)
		assert.Equal(t, "00000010000000001000000000000001", fmt.Sprintf("%032b", c))

		assert.Equal(t, index.Value(), c.Index().Value())
		assert.Equal(t, minor.Value(), c.Minor().Value())
		assert.Equal(t, major, c.Major())
		assert.True(t, c.IsMajor(major))
	})

	t.Run("String", func(t *testing.T) {
		withCleanRegistry(t)

		major, err := RegisterMajor("Major")
		require.NoError(t, err)

		minor, err := major.RegisterMinor("Minor")
		require.NoError(t, err)

		index, err := minor.RegisterIndex("Index Name")
		require.NoError(t, err)

		assert.Equal(t, "MajorMinorIndexName", index.Class().String())
	})
}

// TestRegisteredClasses checks the package level classes are distinct.
func TestRegisteredClasses(t *testing.T) {
	classes := []Class{
		CommonParseBrackets, CommonLoggerNotImplement, CommonLoggerUnknownLevel,
		ConfigReadNotFound, ConfigReadFormat, ConfigValueInvalid, ConfigValueNaming, ConfigValueNil,
		ResourceIdentityID, ResourceIdentityType, ResourceNil, ResourceRelationshipInvalid,
		QueryParametersInvalid, QueryFieldsetInvalid, QueryIncludeInvalid, QueryIncludeTooDeep, QueryIncludeUnknownRelation,
		EncodingMarshalOutput, EncodingMarshalInput, EncodingLinksInvalid,
		GraphFixtureInvalid, GraphReferenceNotFound,
	}
	seen := map[Class]struct{}{}
	for _, c := range classes {
		_, ok := seen[c]
		assert.False(t, ok, "duplicated class: %s", c)
		seen[c] = struct{}{}
	}
	assert.Equal(t, "QueryIncludeTooDeep", QueryIncludeTooDeep.String())
	assert.True(t, ResourceIdentityID.IsMajor(MjrResource))
}
