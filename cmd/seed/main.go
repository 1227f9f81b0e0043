package main

import (
	"context"
	"log"

	"blogapi/internal/config"
	"blogapi/internal/db"
	"blogapi/internal/model"
	"blogapi/internal/repository"
	"blogapi/internal/service"
)

// Seeds the default login from configuration. Safe to run repeatedly: an
// existing user is left untouched.
func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	userService := service.NewUserService(userRepo)

	created, err := userService.EnsureDefaultUser(context.Background(), cfg.DefaultUsername, cfg.DefaultPassword)
	if err != nil {
		log.Fatalf("Failed to seed default user: %v", err)
	}

	if created {
		log.Printf("Seed completed: user %q created", cfg.DefaultUsername)
	} else {
		log.Printf("Seed completed: user %q already exists, nothing to do", cfg.DefaultUsername)
	}
}
