package main

import (
	"log"
	"net/http"

	_ "tasklist/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"tasklist/internal/auth"
	"tasklist/internal/cache"
	"tasklist/internal/config"
	"tasklist/internal/db"
	"tasklist/internal/handler"
	"tasklist/internal/model"
	"tasklist/internal/repository"
	"tasklist/internal/router"
	"tasklist/internal/service"
)

// @title Task List API
// @version 1.0
// @description Bearer-token gated task-list store with JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations; the unique index on users.name backs duplicate
	// registration detection.
	if err := gormDB.AutoMigrate(&model.User{}, &model.Item{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	itemRepo := repository.NewItemRepository(gormDB)

	// The signing key and claim configuration are loaded once here and never
	// rotated at runtime.
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.TokenTTL)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	itemService := service.NewItemService(itemRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	itemHandler := handler.NewItemHandler(itemService)

	// Register routes
	router.Register(e, cfg, jwtService, authHandler, itemHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
