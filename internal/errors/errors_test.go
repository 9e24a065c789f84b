package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthforge/pf2-builder/internal/errors"
)

func TestWrap_PreservesCode(t *testing.T) {
	inner := errors.NotFound("feat 'fleet' not found")
	wrapped := errors.Wrap(inner, "failed to resolve feat")

	assert.True(t, errors.IsNotFound(wrapped))
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(wrapped))
	assert.Contains(t, wrapped.Error(), "failed to resolve feat")
}

func TestWrap_UnknownForForeignErrors(t *testing.T) {
	wrapped := errors.Wrap(fmt.Errorf("boom"), "context")
	assert.Equal(t, errors.CodeUnknown, errors.GetCode(wrapped))
}

func TestWrap_NilReturnsNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "context"))
}

func TestUnwrapChain(t *testing.T) {
	inner := errors.InvalidArgument("bad level")
	wrapped := errors.Wrapf(inner, "set level failed")

	var appErr *errors.Error
	require.True(t, stderrors.As(wrapped, &appErr))
	assert.True(t, stderrors.Is(wrapped, inner))
}

func TestWithMeta(t *testing.T) {
	err := errors.Validation("bad input").WithMeta("field", "level")
	assert.Equal(t, "level", err.Meta["field"])
}
