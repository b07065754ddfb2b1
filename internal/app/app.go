package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"reviewboard/internal/config"
	"reviewboard/internal/db"
	"reviewboard/internal/handlers"
	"reviewboard/internal/logger"
	"reviewboard/internal/middleware"
	"reviewboard/internal/repositories"
	"reviewboard/internal/routes"
	"reviewboard/internal/services"
	"reviewboard/internal/utils"
	"reviewboard/internal/validator"
	"reviewboard/pkg/apperrors"
)

// Run wires the whole application and starts the HTTP server.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := db.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to open database", "error", err)
	}
	if err := db.WaitForDB(gormDB, 10, time.Second); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := db.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the gin engine with all middleware and routes. Tests
// call this directly against their own database handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices()
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices() *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	tokenRepo := repositories.NewTokenRepository()
	reviewRepo := repositories.NewReviewRepository()

	accountService := services.NewAccountService(userRepo)
	authService := services.NewAuthService(userRepo, tokenRepo)
	reviewService := services.NewReviewService(reviewRepo)

	return &services.ServiceContainer{
		AccountService: accountService,
		AuthService:    authService,
		ReviewService:  reviewService,
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		UserHandler:   handlers.NewUserHandler(baseHandler, container.AccountService, container.AuthService),
		ReviewHandler: handlers.NewReviewHandler(baseHandler, container.ReviewService, container.AuthService),
	}
}

func initializeGinRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.DBMiddleware(gormDB))

	// Unsupported verbs on known paths answer 405 instead of 404.
	ginRouter.HandleMethodNotAllowed = true
	ginRouter.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, apperrors.ErrorResponse{
			Error: apperrors.New(apperrors.CodeMethodNotAllowed, "request", "Method not allowed", http.StatusMethodNotAllowed),
		})
	})

	return ginRouter
}

// seedFirstAdmin creates the configured superuser on first boot. An existing
// account with the same email means seeding already happened.
func seedFirstAdmin(gormDB *gorm.DB, cfg *config.Config) error {
	if cfg.Admin.Email == "" {
		return nil
	}

	// The stored email is normalized, so the lookup must use the same form
	// or seeding would be retried on every boot.
	email, err := utils.NormalizeEmail(cfg.Admin.Email)
	if err != nil {
		return err
	}

	userRepo := repositories.NewUserRepository()
	if _, err := userRepo.FindByEmail(gormDB, email); err == nil {
		logger.Info("Admin user already present", "email", email)
		return nil
	}

	accountService := services.NewAccountService(userRepo)
	admin, err := accountService.CreateSuperuser(gormDB, email, cfg.Admin.Password)
	if err != nil {
		return err
	}
	logger.Info("Seeded first admin user", "id", admin.ID, "email", admin.Email)
	return nil
}
