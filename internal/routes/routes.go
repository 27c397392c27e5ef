package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inspection-system/internal/controllers"
	"inspection-system/internal/repositories"
	"inspection-system/internal/services"
	"inspection-system/pkg/config"
	"inspection-system/pkg/eventbus"
	"inspection-system/pkg/middleware"
	"inspection-system/pkg/service"
)

type Dependencies struct {
	DB     *pgxpool.Pool
	Cache  repositories.CacheRepositoryInterface
	Bus    *eventbus.Bus
	JWT    service.JWTService
	Config *config.Config
	Logger *zap.Logger
}

func InitRouter(e *echo.Echo, deps Dependencies) {
	deps.Logger.Info("InitRouter: Начало создания маршрутов")

	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(deps.JWT, deps.Logger.Named("auth"))
	txManager := repositories.NewTxManager(deps.DB)

	checkRepo := repositories.NewObjectCheckRepository(deps.DB)
	objectRepo := repositories.NewObjectRepository(deps.DB)
	checkTypeRepo := repositories.NewCheckTypeRepository(deps.DB)
	templateRepo := repositories.NewTemplateRepository(deps.DB)
	inspectorRepo := repositories.NewInspectorRepository(deps.DB)

	checkService := services.NewObjectCheckService(
		txManager, checkRepo, objectRepo, checkTypeRepo, templateRepo, inspectorRepo,
		deps.Cache, deps.Bus,
		services.ObjectCheckSettings{
			LinkBaseURL:    deps.Config.Checks.LinkBaseURL,
			CacheTTL:       deps.Config.Redis.CheckViewTTL,
			DefaultPerPage: deps.Config.Pagination.DefaultPerPage,
			MaxPerPage:     deps.Config.Pagination.MaxPerPage,
		},
		deps.Logger.Named("object_check"),
	)

	checkCtrl := controllers.NewObjectCheckController(checkService, deps.Config.Server.RequestTimeout, deps.Logger)
	healthCtrl := controllers.NewHealthController(deps.DB, deps.Logger)

	e.GET("/health", healthCtrl.Health)
	RunObjectCheckRouter(api, checkCtrl, authMW)

	deps.Logger.Info("InitRouter: Создание маршрутов завершено")
}
