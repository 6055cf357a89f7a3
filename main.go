package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"teamup-api/config"
	"teamup-api/internal/app"
	"teamup-api/internal/database"
	"teamup-api/internal/server"

	_ "teamup-api/docs" // Generated swagger docs

	"github.com/go-playground/validator/v10"
)

// @title           TeamUp API
// @version         1.0
// @description     Team recruitment backend: posts, applies with AI scoring, selection and reviews.

// @contact.name   API Support
// @contact.email  support@example.com

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	dbPool, err := database.NewConnectionPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	validate := validator.New()

	application := &app.Application{
		Config:      cfg,
		DBPool:      dbPool,
		RedisClient: redisClient,
		Validator:   validate,
	}

	srv := server.NewServer(application)

	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	log.Println("Application gracefully stopped.")
}
