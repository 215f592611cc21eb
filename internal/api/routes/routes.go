package routes

import (
	"fmt"

	"github.com/Dolapo001/SPAS/internal/allocation"
	"github.com/Dolapo001/SPAS/internal/api/handlers"
	"github.com/Dolapo001/SPAS/internal/api/middleware"
	"github.com/Dolapo001/SPAS/internal/auth"
	"github.com/Dolapo001/SPAS/internal/config"
	"github.com/Dolapo001/SPAS/internal/logger"
	"github.com/Dolapo001/SPAS/internal/mail"
	"github.com/Dolapo001/SPAS/internal/metrics"
	"github.com/Dolapo001/SPAS/internal/repository"
	"github.com/Dolapo001/SPAS/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// NewDialer selects the SMTP transport, or the logging transport when no
// SMTP host is configured
func NewDialer(cfg *config.Config) mail.Dialer {
	if cfg.SMTPHost == "" {
		return mail.LogDialer{}
	}
	return mail.NewSMTPDialer(mail.SMTPConfig{
		Host:          cfg.SMTPHost,
		Port:          cfg.SMTPPort,
		Username:      cfg.SMTPUsername,
		Password:      cfg.SMTPPassword,
		From:          cfg.SMTPFrom,
		TLS:           cfg.SMTPTLS,
		Timeout:       cfg.SMTPTimeout(),
		RatePerSecond: cfg.SMTPRatePerSecond,
	})
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, dialer mail.Dialer) (*gin.Engine, error) {
	router := gin.New()
	// Handlers pass the gin context to services; this lets it carry the
	// request's deadline and cancellation.
	router.ContextWithFallback = true

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics())

	validate := validator.New()

	renderer, err := mail.NewRenderer(cfg.NotifyTemplatesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load notification templates: %w", err)
	}

	// Initialize repositories
	departmentRepo := repository.NewDepartmentRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	supervisorRepo := repository.NewSupervisorRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	allocationRepo := repository.NewAllocationRepository(db)

	// Initialize services
	notificationService := service.NewNotificationService(groupRepo, dialer, renderer, service.NotificationOptions{
		Concurrency: cfg.NotifyConcurrency,
		SendTimeout: cfg.NotifySendTimeout(),
	})
	allocationService := service.NewAllocationService(
		departmentRepo,
		studentRepo,
		supervisorRepo,
		groupRepo,
		allocationRepo,
		notificationService,
		allocation.NewAllocator(),
		validate,
	)
	exportService := service.NewExportService(allocationRepo)
	supervisorService := service.NewSupervisorService(supervisorRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	allocationHandler := handlers.NewAllocationHandler(allocationService, exportService)
	groupHandler := handlers.NewGroupHandler(allocationService, notificationService)
	supervisorHandler := handlers.NewSupervisorHandler(supervisorService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/metrics", metrics.PrometheusHandler())

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	if cfg.AuthEnabled() {
		tokens, err := auth.NewTokenService(cfg.JWTSecret)
		if err != nil {
			return nil, err
		}
		v1.Use(auth.RequireAuth(tokens))
	} else {
		logger.New().Warn("JWT_SECRET is empty, API routes are unauthenticated and scoped by department_id")
	}

	{
		allocations := v1.Group("/allocations")
		{
			allocations.POST("", allocationHandler.RunAllocation)
			allocations.GET("", allocationHandler.ListAllocations)
			allocations.GET("/overview", allocationHandler.GetOverview)
			allocations.GET("/latest/export", allocationHandler.ExportLatest)
			allocations.GET("/:id", allocationHandler.GetAllocation)
			allocations.GET("/:id/export", allocationHandler.ExportAllocation)
		}

		groups := v1.Group("/groups")
		{
			groups.GET("", groupHandler.ListGroups)
			groups.POST("/notify", groupHandler.NotifyGroup)
		}

		v1.GET("/supervisors", supervisorHandler.ListSupervisors)
	}

	return router, nil
}
