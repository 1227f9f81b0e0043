package main

import (
	"context"
	"log"
	"net/http"

	_ "blogapi/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"blogapi/internal/auth"
	"blogapi/internal/config"
	"blogapi/internal/db"
	"blogapi/internal/handler"
	"blogapi/internal/logger"
	"blogapi/internal/model"
	"blogapi/internal/repository"
	"blogapi/internal/router"
	"blogapi/internal/service"
)

// @title Blog API
// @version 1.0
// @description Minimal blog publishing backend with JWT authentication and post CRUD.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	appLog := logger.New(cfg.LogLevel)

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		appLog.Fatal("database init", "error", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Post{}); err != nil {
		appLog.Fatal("auto-migrate", "error", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)

	// Seed the default login if configured and missing.
	if cfg.CreateDefaultLogin {
		userService := service.NewUserService(userRepo)
		created, err := userService.EnsureDefaultUser(context.Background(), cfg.DefaultUsername, cfg.DefaultPassword)
		if err != nil {
			appLog.Fatal("seed default user", "error", err)
		}
		if created {
			appLog.Info("default user created", "username", cfg.DefaultUsername)
		}
	}

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.SecretKey)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	postService := service.NewPostService(postRepo, appLog)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)

	// Register routes
	router.Register(e, cfg, authHandler, postHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		appLog.Fatal("server start", "error", err)
	}
}
