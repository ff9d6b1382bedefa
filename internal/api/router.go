package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	"github.com/peoplehub/hr-experience-api/internal/api/handler"
	"github.com/peoplehub/hr-experience-api/internal/api/middleware"
	"github.com/peoplehub/hr-experience-api/internal/core/domain"
	"github.com/peoplehub/hr-experience-api/internal/core/service"
	"github.com/peoplehub/hr-experience-api/internal/infrastructure/db/mysql"
	redisdb "github.com/peoplehub/hr-experience-api/internal/infrastructure/db/redis"
	"github.com/peoplehub/hr-experience-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("hr"))

	// --- Dependencies ---
	userRepo := mysql.NewUserRepository(db)
	configRepo := mysql.NewDashboardConfigRepository(db)
	leaveRepo := mysql.NewLeaveRepository(db)
	learningRepo := mysql.NewLearningProgressRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour)
	dashboardService := service.NewDashboardService(configRepo, leaveRepo, userRepo, log)
	wellnessService := service.NewWellnessService(
		leaveRepo,
		learningRepo,
		service.WellnessURLs{
			Counselling: cfg.Wellness.CounsellingURL,
			Yoga:        cfg.Wellness.YogaURL,
			Exercises:   cfg.Wellness.ExercisesURL,
		},
		redisdb.NewNudgeCache(rdb),
		log,
	)

	authHandler := handler.NewAuthHandler(authService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	wellnessHandler := handler.NewWellnessHandler(wellnessService)
	adminHandler := handler.NewAdminHandler(userRepo)

	auth := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Health probes (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewHealthDependenciesHandler(db, rdb).Readiness)

	// --- Observability / docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Dashboard routes ---
	dashboard := e.Group("/dashboard", auth)
	dashboard.GET("", dashboardHandler.Get)
	dashboard.POST("/config", dashboardHandler.UpdateConfig)

	// --- Wellness routes ---
	wellness := e.Group("/wellness", auth)
	wellness.GET("/links", wellnessHandler.Links)
	wellness.GET("/resources", wellnessHandler.Resources)
	wellness.GET("/mental-health-tips", wellnessHandler.MentalHealthTips)
	wellness.GET("/work-life", wellnessHandler.WorkLife)
	wellness.GET("/surveys", wellnessHandler.ListSurveys)
	wellness.GET("/surveys/:id", wellnessHandler.GetSurvey)
	wellness.POST("/surveys/:id/submit", wellnessHandler.SubmitSurvey)
	wellness.GET("/nudges", wellnessHandler.Nudges)

	// --- Admin routes ---
	admin := e.Group("/admin", auth, middleware.RBAC(domain.RoleHRAdmin))
	admin.GET("/users", adminHandler.ListUsers)

	return e
}
