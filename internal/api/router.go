package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/masul-kr/artifact-keeper/internal/api/handler"
	"github.com/masul-kr/artifact-keeper/internal/api/middleware"
	"github.com/masul-kr/artifact-keeper/internal/core/domain"
	"github.com/masul-kr/artifact-keeper/internal/core/ports"
	"github.com/masul-kr/artifact-keeper/internal/core/service"
	mongodb "github.com/masul-kr/artifact-keeper/internal/infrastructure/db/mongo"
	redisdb "github.com/masul-kr/artifact-keeper/internal/infrastructure/db/redis"
	"github.com/masul-kr/artifact-keeper/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, chatClient ports.ChatClient, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("artifact_keeper"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	wizardRepo := mongodb.NewWizardRepository(db)
	artifactRepo := mongodb.NewArtifactRepository(db)
	tokenCache := redisdb.NewTokenCache(rdb)

	authService := service.NewAuthService(userRepo, tokenCache, cfg.JWTSecret, cfg.TokenTTL, log)
	userService := service.NewUserService(userRepo, tokenCache, log)
	wizardService := service.NewWizardService(wizardRepo, artifactRepo, log)
	artifactService := service.NewArtifactService(artifactRepo, wizardRepo, chatClient, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	wizardHandler := handler.NewWizardHandler(wizardService)
	artifactHandler := handler.NewArtifactHandler(artifactService)

	authenticated := middleware.Auth(cfg.JWTSecret, tokenCache)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	selfOrAdmin := middleware.SelfOrAdmin("id")

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	v1 := e.Group("/api/v1")

	// --- Public routes ---
	v1.POST("/login", authHandler.Login)
	v1.GET("/artifacts", artifactHandler.List)
	v1.GET("/artifacts/summary", artifactHandler.Summarize)
	v1.GET("/artifacts/:id", artifactHandler.FindByID)

	// --- Artifact mutations (any authenticated user) ---
	v1.POST("/artifacts", artifactHandler.Create, authenticated)
	v1.POST("/artifacts/search", artifactHandler.Search, authenticated)
	v1.PUT("/artifacts/:id", artifactHandler.Update, authenticated)
	v1.DELETE("/artifacts/:id", artifactHandler.Delete, authenticated)

	// --- Wizards (any authenticated user) ---
	v1.GET("/wizards", wizardHandler.List, authenticated)
	v1.GET("/wizards/:id", wizardHandler.FindByID, authenticated)
	v1.POST("/wizards", wizardHandler.Create, authenticated)
	v1.PUT("/wizards/:id", wizardHandler.Update, authenticated)
	v1.DELETE("/wizards/:id", wizardHandler.Delete, authenticated)
	v1.PUT("/wizards/:wizardId/artifacts/:artifactId", wizardHandler.AssignArtifact, authenticated)

	// --- Users: collection routes are admin only ---
	v1.GET("/users", userHandler.List, authenticated, adminOnly)
	v1.POST("/users", userHandler.Create, authenticated, adminOnly)
	v1.DELETE("/users/:id", userHandler.Delete, authenticated, adminOnly)

	// --- Users: item routes are admin or the user itself ---
	v1.GET("/users/:id", userHandler.FindByID, authenticated, selfOrAdmin)
	v1.PUT("/users/:id", userHandler.Update, authenticated, selfOrAdmin)
	v1.PATCH("/users/:id/password", userHandler.ChangePassword, authenticated, selfOrAdmin)

	return e
}
