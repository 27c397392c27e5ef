package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	apperrors "inspection-system/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HTTPResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HTTPResponse{
		Status:  true,
		Body:    body,
		Message: message,
	})
}

func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	if errors.Is(err, apperrors.ErrNotModified) {
		return c.NoContent(http.StatusNotModified)
	}

	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Code >= http.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		} else {
			logger.Warn("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Any("context", httpErr.Context),
			)
		}

		response := &HTTPResponse{Status: false, Message: httpErr.Message}
		if httpErr.Details != nil {
			response.Body = httpErr.Details
		}
		return c.JSON(httpErr.Code, response)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("Field '%s' failed on the '%s' rule", e.Field(), e.Tag()))
		}
		return c.JSON(http.StatusBadRequest, &HTTPResponse{
			Status:  false,
			Message: "Validation failed: " + strings.Join(msgs, "; "),
		})
	}

	code := apperrors.StatusCode(err)
	if code >= http.StatusInternalServerError {
		logger.Error("Unexpected Error", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, &HTTPResponse{
			Status:  false,
			Message: "Internal server error",
		})
	}
	return c.JSON(code, &HTTPResponse{Status: false, Message: err.Error()})
}
