package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inspection-system/pkg/utils"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	db     Pinger
	logger *zap.Logger
}

func NewHealthController(db Pinger, logger *zap.Logger) *HealthController {
	return &HealthController{db: db, logger: logger}
}

func (c *HealthController) Health(ctx echo.Context) error {
	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), 2*time.Second)
	defer cancel()

	if err := c.db.Ping(reqCtx); err != nil {
		c.logger.Error("База данных недоступна", zap.Error(err))
		return ctx.JSON(http.StatusServiceUnavailable, &utils.HTTPResponse{Status: false, Message: "database unavailable"})
	}
	return utils.SuccessResponse(ctx, nil, "ok", http.StatusOK)
}
