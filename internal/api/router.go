package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Cybrite/primetrade/internal/api/handler"
	"github.com/Cybrite/primetrade/internal/api/middleware"
	"github.com/Cybrite/primetrade/internal/core/domain"
	"github.com/Cybrite/primetrade/internal/core/service"
	mongodb "github.com/Cybrite/primetrade/internal/infrastructure/db/mongo"
	redisdb "github.com/Cybrite/primetrade/internal/infrastructure/db/redis"
	"github.com/Cybrite/primetrade/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("primetrade"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokens)
	taskService := service.NewTaskService(taskRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	taskHandler := handler.NewTaskHandler(taskService)
	healthHandler := handler.NewHealthHandler(db)

	authMW := middleware.Auth(tokens, userRepo)
	limiter := redisdb.NewFixedWindowLimiter(rdb, cfg.RateLimit.Window, cfg.RateLimit.Max)

	// --- Probes and metrics (no auth, no rate limit) ---
	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Health)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- API v1 ---
	v1 := e.Group("/api/v1", middleware.RateLimit(limiter, log))

	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, authMW)
	auth.PUT("/profile", authHandler.UpdateProfile, authMW)

	tasks := v1.Group("/tasks", authMW)
	tasks.GET("", taskHandler.List)
	tasks.GET("/stats", taskHandler.Stats, middleware.RBAC(domain.RoleAdmin))
	tasks.GET("/:id", taskHandler.Get)
	tasks.POST("", taskHandler.Create)
	tasks.PUT("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)

	return e
}
