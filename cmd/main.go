package main

import (
	"time"

	"restaurant-service/internal/handler"
	"restaurant-service/internal/middleware"
	"restaurant-service/internal/store"
	"restaurant-service/pkg/config"
	"restaurant-service/pkg/database"
	"restaurant-service/pkg/jwtutil"
	"restaurant-service/pkg/logger"
	"restaurant-service/prometheus"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer log.Sync()
	log.Info("Starting restaurant service...", zap.String("environment", cfg.Server.Env))

	if cfg.UsingDefaultJWTSecret() {
		log.Warn("JWT_SIGNING_KEY is not set, using the insecure built-in default; set it in .env for production")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	jwt := jwtutil.New(cfg.JWT.SigningKey, time.Duration(cfg.JWT.ExpirationHours)*time.Hour)

	h := handler.New(store.NewGormStore(db), jwt)

	e := echo.New()

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware)
	e.Use(logger.Middleware(log))
	e.Use(prometheus.MetricsMiddleware())

	h.RegisterRoutes(e)

	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
