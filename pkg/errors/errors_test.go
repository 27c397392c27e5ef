package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusOK, StatusCode(nil))
	assert.Equal(t, http.StatusNotFound, StatusCode(NewNotFoundError("x")))
	assert.Equal(t, http.StatusBadRequest, StatusCode(fmt.Errorf("wrap: %w", NewBadRequestError("x"))))
	assert.Equal(t, http.StatusNotModified, StatusCode(ErrNotModified))
	assert.Equal(t, http.StatusUnauthorized, StatusCode(ErrCompanyIDNotFoundInContext))
	assert.Equal(t, http.StatusForbidden, StatusCode(ErrForbidden))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("boom")))
}

func TestHttpErrorUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewInternalError("Failed to return data.", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "Failed to return data.")
	assert.ErrorIs(t, NewNotFoundError("Check not found."), ErrNotFound)
	assert.ErrorIs(t, NewInternalError("x", nil), ErrInternalServer)
}
