package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"inspection-system/internal/listeners"
	"inspection-system/internal/repositories"
	"inspection-system/internal/routes"
	"inspection-system/migrations"
	"inspection-system/pkg/config"
	"inspection-system/pkg/database/postgresql"
	apperrors "inspection-system/pkg/errors"
	"inspection-system/pkg/eventbus"
	applogger "inspection-system/pkg/logger"
	appmiddleware "inspection-system/pkg/middleware"
	"inspection-system/pkg/service"
	"inspection-system/pkg/utils"
	"inspection-system/pkg/validation"
)

func main() {
	cfg := config.New()

	logger := applogger.NewLogger(cfg.Log.Level, cfg.Log.File)
	defer func() { _ = logger.Sync() }()

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("!!! ОБНАРУЖЕНА ПАНИКА (PANIC) !!!",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewInternalError("Internal server error", err)
				_ = utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))
	e.Use(middleware.RequestID())
	e.Use(appmiddleware.RequestLogger(logger))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		ExposeHeaders: []string{echo.HeaderLocation, echo.HeaderContentDisposition},
	}))

	e.Validator = validation.New()

	ctx := context.Background()

	dbConn, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN, cfg.Postgres.ConnectAttempts, logger)
	if err != nil {
		logger.Fatal("не удалось подключиться к базе данных", zap.Error(err))
	}
	defer dbConn.Close()

	if cfg.Postgres.MigrateOnStart {
		if err := postgresql.Migrate(ctx, dbConn, migrations.FS, logger); err != nil {
			logger.Fatal("ошибка миграций", zap.Error(err))
		}
	}

	cacheRepo := repositories.NewNoopCacheRepository()
	if cfg.Redis.Address != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if _, err := redisClient.Ping(ctx).Result(); err != nil {
			logger.Warn("Redis недоступен, кэш проверок работает вхолостую", zap.Error(err), zap.String("address", cfg.Redis.Address))
		}
		cacheRepo = repositories.NewRedisCacheRepository(redisClient)
	}

	bus := eventbus.New(logger)
	listeners.NewAuditListener(logger).Register(bus)

	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, logger)

	routes.InitRouter(e, routes.Dependencies{
		DB:     dbConn,
		Cache:  cacheRepo,
		Bus:    bus,
		JWT:    jwtSvc,
		Config: cfg,
		Logger: logger,
	})

	go func() {
		logger.Info("Сервер запущен", zap.String("port", cfg.Server.Port))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Ошибка запуска сервера", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка остановки сервера", zap.Error(err))
	}
	bus.Wait()
	logger.Info("Сервер остановлен")
}
