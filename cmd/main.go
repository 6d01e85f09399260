package main

import (
	"context"
	"database/sql"
	"log"

	"github.com/Norahnjesh/Transport-Solution/internal/command"
	"github.com/Norahnjesh/Transport-Solution/internal/config"
	"github.com/Norahnjesh/Transport-Solution/internal/handler"
	"github.com/Norahnjesh/Transport-Solution/internal/middleware"
	authqry "github.com/Norahnjesh/Transport-Solution/internal/query"
	"github.com/Norahnjesh/Transport-Solution/internal/repository"
	"github.com/Norahnjesh/Transport-Solution/internal/token"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// .env is optional; deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Database connection
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	if err := userRepo.EnsureSchema(context.Background()); err != nil {
		log.Fatalf("Failed to initialise schema: %v", err)
	}

	// CQRS wiring: register and social-login mutate state, login is read-only
	issuer := token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	commandSvc := command.NewAuthCommandService(userRepo, issuer)
	querySvc := authqry.NewAuthQueryService(userRepo, issuer)
	authHandler := handler.NewAuthHandler(commandSvc, querySvc)

	// Setup router
	router := gin.Default()
	router.Use(cors.Default())

	// Auth routes
	api := router.Group("/api/auth")
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/social-login", authHandler.SocialLogin)
		api.GET("/me", middleware.AuthMiddleware(issuer), authHandler.Me)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	log.Printf("Auth service starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
