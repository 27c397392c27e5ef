package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "inspection-system/pkg/errors"
)

func respond(t *testing.T, err error) (*httptest.ResponseRecorder, HTTPResponse) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, ErrorResponse(c, err, zap.NewNop()))

	var body HTTPResponse
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestErrorResponse(t *testing.T) {
	t.Run("http error keeps code and message", func(t *testing.T) {
		rec, body := respond(t, apperrors.NewNotFoundError("Object not found."))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.False(t, body.Status)
		assert.Equal(t, "Object not found.", body.Message)
	})

	t.Run("not modified has no body", func(t *testing.T) {
		rec, _ := respond(t, fmt.Errorf("patch: %w", apperrors.ErrNotModified))
		assert.Equal(t, http.StatusNotModified, rec.Code)
		assert.Zero(t, rec.Body.Len())
	})

	t.Run("auth sentinel", func(t *testing.T) {
		rec, _ := respond(t, apperrors.ErrTokenExpired)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown error hides details", func(t *testing.T) {
		rec, body := respond(t, errors.New("pq: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error", body.Message)
	})

	t.Run("validation errors", func(t *testing.T) {
		type payload struct {
			TemplateID int64 `validate:"required"`
		}
		err := validator.New().Struct(payload{})
		rec, body := respond(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, body.Message, "Field 'TemplateID' failed on the 'required' rule")
	})
}
