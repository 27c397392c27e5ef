package utils

import (
	"net/http"
	"strconv"

	apperrors "inspection-system/pkg/errors"

	"github.com/labstack/echo/v4"
)

// ParseIDParam читает положительный числовой path-параметр.
func ParseIDParam(ctx echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewHttpError(http.StatusBadRequest, "Invalid "+name+" format", err, nil)
	}
	return id, nil
}
