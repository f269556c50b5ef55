package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestWithHint(t *testing.T) {
	err := New("error")
	withHint := WithHint(err, "try this fix")

	hints := GetAllHints(withHint)
	require.Len(t, hints, 1)
	assert.Equal(t, "try this fix", hints[0])
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithHint(nil, "hint"))
}

func TestJoin(t *testing.T) {
	err := Join(ErrInvalidID, ErrDuplicateID)
	require.Error(t, err)
	assert.True(t, Is(err, ErrInvalidID))
	assert.True(t, Is(err, ErrDuplicateID))
	assert.Nil(t, Join(nil, nil))
}

func TestSentinelConstructors(t *testing.T) {
	err := NewInvalidIDError("suffix %q is not a number", "x")
	assert.True(t, Is(err, ErrInvalidID))
	assert.Contains(t, err.Error(), `suffix "x" is not a number`)

	err = NewInvalidNameError("name is blank")
	assert.True(t, Is(err, ErrInvalidName))
	assert.False(t, Is(err, ErrInvalidID))
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(Wrap(ErrDuplicateID, "child1")))
	assert.True(t, IsValidationError(Wrap(ErrTextTooLong, "description")))
	assert.False(t, IsValidationError(Wrap(ErrDrift, "id.min")))
	assert.False(t, IsValidationError(nil))
}

func TestAssertionFailure(t *testing.T) {
	err := AssertionFailedf("separator %q is in the alphabet", "-")
	assert.True(t, IsAssertionFailure(err))
	assert.True(t, HasAssertionFailure(Wrap(err, "registry")))
}

func ExampleWrap() {
	baseErr := New("missing separator")
	err := Wrap(baseErr, "failed to parse node id")
	fmt.Println(err)
	// Output: failed to parse node id: missing separator
}
