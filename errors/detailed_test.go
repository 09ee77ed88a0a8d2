package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neuronlabs/jsonapi/errors/class"
)

// TestDetailedError tests detailed error functions.
func TestDetailedError(t *testing.T) {
	message := "some testing message"
	first := NewDet(class.QueryIncludeInvalid, message)
	second := NewDetf(class.QueryIncludeInvalid, "formatted: '%d'", 2)

	assert.Equal(t, "some testing message", first.Error())
	assert.Equal(t, "formatted: '2'", second.Error())

	assert.Contains(t, first.Operation, "errors.TestDetailedError#detailed_test.go:")
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, class.QueryIncludeInvalid, first.Class())

	first.WithDetail("This is detail.")
	assert.Equal(t, "This is detail.", first.Details)

	second.WithDetailf("This is %dnd detail.", 2)
	assert.Equal(t, "This is 2nd detail.", second.Details)

	second.WrapDetail("Prefix.")
	assert.Equal(t, "Prefix. This is 2nd detail.", second.Details)
}

// TestIsClass tests the classification checks.
func TestIsClass(t *testing.T) {
	err := NewDet(class.ResourceIdentityID, "no id")
	assert.True(t, IsClass(err, class.ResourceIdentityID))
	assert.False(t, IsClass(err, class.ResourceIdentityType))
	assert.True(t, IsMajor(err, class.MjrResource))

	wrapped := fmt.Errorf("assembling: %w", err)
	assert.True(t, IsClass(wrapped, class.ResourceIdentityID))

	assert.False(t, IsClass(fmt.Errorf("plain"), class.ResourceIdentityID))
}

// TestMultiError tests the MultiError joining.
func TestMultiError(t *testing.T) {
	var m MultiError
	assert.Nil(t, m.ErrorOrNil())

	m = append(m, fmt.Errorf("first"))
	assert.Equal(t, "first", m.ErrorOrNil().Error())

	m = append(m, fmt.Errorf("second"))
	assert.Equal(t, "first,second", m.Error())

	m = append(m, NewDet(class.QueryIncludeTooDeep, "third"))
	assert.True(t, IsClass(m, class.QueryIncludeTooDeep))
	assert.False(t, IsClass(m, class.QueryIncludeInvalid))
}
