package routes

import (
	"github.com/labstack/echo/v4"

	"inspection-system/internal/controllers"
	"inspection-system/pkg/middleware"
)

func RunObjectCheckRouter(api *echo.Group, ctrl *controllers.ObjectCheckController, authMW *middleware.AuthMiddleware) {
	checks := api.Group("/objects/:object_id/checks", authMW.Auth)

	checks.POST("", ctrl.CreateCheck)
	checks.GET("", ctrl.GetChecks)
	checks.GET("/export", ctrl.ExportChecks)
	checks.GET("/:check_id", ctrl.FindCheck)
	checks.PATCH("/:check_id", ctrl.UpdateCheck)
	checks.DELETE("/:check_id", ctrl.DeleteCheck)
}
