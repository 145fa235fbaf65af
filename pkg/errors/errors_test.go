package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundMessage(t *testing.T) {
	err := NotFound("Evaluation plan", "plan9")
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Equal(t, "Evaluation plan plan9 not found", err.Message)
	assert.True(t, Is(err, ErrNotFound))
	assert.Equal(t, "resource not found", ErrNotFound.Message)
}

func TestFromErrorWrapsUnknown(t *testing.T) {
	raw := errors.New("connection reset")
	appErr := FromError(raw)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.ErrorIs(t, appErr, raw)
	assert.False(t, Is(raw, ErrInternal))
}

func TestInternalKeepsCause(t *testing.T) {
	raw := errors.New("timeout")
	err := Internal(raw, "failed to list courses")
	assert.Equal(t, "failed to list courses: timeout", err.Error())
	assert.Same(t, err, FromError(err))
}
