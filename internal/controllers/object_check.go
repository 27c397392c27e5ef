package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inspection-system/internal/dto"
	"inspection-system/internal/services"
	apperrors "inspection-system/pkg/errors"
	"inspection-system/pkg/utils"
)

type ObjectCheckController struct {
	checkService services.ObjectCheckServiceInterface
	timeout      time.Duration
	logger       *zap.Logger
}

func NewObjectCheckController(
	checkService services.ObjectCheckServiceInterface,
	timeout time.Duration,
	logger *zap.Logger,
) *ObjectCheckController {
	return &ObjectCheckController{
		checkService: checkService,
		timeout:      timeout,
		logger:       logger,
	}
}

func (c *ObjectCheckController) CreateCheck(ctx echo.Context) error {
	reqCtx, cancel := utils.ContextWithTimeout(ctx, c.timeout)
	defer cancel()

	objectID, err := utils.ParseIDParam(ctx, "object_id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var body dto.CreateObjectCheckDTO
	if err := ctx.Bind(&body); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid request body"), c.logger)
	}
	if err := ctx.Validate(&body); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.checkService.Create(reqCtx, objectID, body)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	ctx.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/objects/%d/checks/%d", objectID, res.ID))
	return utils.SuccessResponse(ctx, res, "Check created", http.StatusCreated)
}

func (c *ObjectCheckController) GetChecks(ctx echo.Context) error {
	reqCtx, cancel := utils.ContextWithTimeout(ctx, c.timeout)
	defer cancel()

	objectID, err := utils.ParseIDParam(ctx, "object_id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var query dto.ListObjectChecksQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(ctx, &query); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid query parameters"), c.logger)
	}
	if err := ctx.Validate(&query); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.checkService.FindByPage(reqCtx, objectID, query)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Checks found", http.StatusOK)
}

func (c *ObjectCheckController) FindCheck(ctx echo.Context) error {
	reqCtx, cancel := utils.ContextWithTimeout(ctx, c.timeout)
	defer cancel()

	objectID, id, err := parseCheckPath(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.checkService.Find(reqCtx, objectID, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Check found", http.StatusOK)
}

func (c *ObjectCheckController) UpdateCheck(ctx echo.Context) error {
	reqCtx, cancel := utils.ContextWithTimeout(ctx, c.timeout)
	defer cancel()

	objectID, id, err := parseCheckPath(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var body dto.UpdateObjectCheckDTO
	if err := (&echo.DefaultBinder{}).BindBody(ctx, &body); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid request body"), c.logger)
	}
	if err := ctx.Validate(&body); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.checkService.Update(reqCtx, objectID, id, body)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Check updated", http.StatusOK)
}

func (c *ObjectCheckController) DeleteCheck(ctx echo.Context) error {
	reqCtx, cancel := utils.ContextWithTimeout(ctx, c.timeout)
	defer cancel()

	objectID, id, err := parseCheckPath(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.checkService.Delete(reqCtx, objectID, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func parseCheckPath(ctx echo.Context) (objectID, id int64, err error) {
	objectID, err = utils.ParseIDParam(ctx, "object_id")
	if err != nil {
		return 0, 0, err
	}
	id, err = utils.ParseIDParam(ctx, "check_id")
	if err != nil {
		return 0, 0, err
	}
	return objectID, id, nil
}
