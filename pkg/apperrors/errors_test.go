package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMatchesOnCode(t *testing.T) {
	wrapped := Wrap(errors.New("connection refused"), ErrStoreUnavailable)
	assert.True(t, errors.Is(wrapped, ErrStoreUnavailable))
	assert.False(t, errors.Is(wrapped, ErrOfferNotFound))

	cloned := Clone(ErrMalformedTime, `invalid time "25:00"`)
	assert.True(t, errors.Is(cloned, ErrMalformedTime))
	assert.Equal(t, `invalid time "25:00"`, cloned.Error())

	outer := fmt.Errorf("report 42: %w", cloned)
	assert.True(t, errors.Is(outer, ErrMalformedTime))
}

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil))

	plain := FromError(errors.New("boom"))
	require.NotNil(t, plain)
	assert.Equal(t, ErrInternal.Code, plain.Code)
	assert.Equal(t, http.StatusInternalServerError, plain.Status)

	typed := FromError(fmt.Errorf("ctx: %w", ErrConcurrentModification))
	assert.Equal(t, http.StatusConflict, typed.Status)
}

func TestErrorMessageIncludesCause(t *testing.T) {
	err := Wrap(errors.New("timeout"), ErrStoreUnavailable)
	assert.Equal(t, "document store unavailable: timeout", err.Error())
	assert.Equal(t, "timeout", errors.Unwrap(err).Error())
}
