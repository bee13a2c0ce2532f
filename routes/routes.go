package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/ulule/limiter/v3"
	"gorm.io/gorm"

	"github.com/sharath018/venue-booking-backend/config"
	"github.com/sharath018/venue-booking-backend/database"
	"github.com/sharath018/venue-booking-backend/internal/auditlog"
	"github.com/sharath018/venue-booking-backend/internal/reports"
	"github.com/sharath018/venue-booking-backend/middleware"

	_ "github.com/sharath018/venue-booking-backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Deps are the process-wide resources the routes are built on.
type Deps struct {
	DB             *gorm.DB
	Logger         zerolog.Logger
	AuditPublisher auditlog.Publisher // nil disables streaming
	RateLimitStore limiter.Store
}

func Setup(r *gin.Engine, cfg *config.Config, deps Deps) {
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := database.Ping(ctx, deps.DB); err != nil {
			zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("health check: database unreachable")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "DOWN", "database": "unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	if deps.RateLimitStore != nil {
		api.Use(middleware.RateLimiter(deps.RateLimitStore, cfg.RateLimitPerMinute))
	}
	api.Use(middleware.AuthMiddleware(cfg))

	authEnabled := cfg.JWTAccessSecret != ""
	reportAccess := middleware.RBACMiddleware(authEnabled, middleware.ReportRoles(cfg.ReportAllowedRoles)...)

	// ========== Audit Log Module ==========
	auditRepo := auditlog.NewRepository(deps.DB)
	auditSvc := auditlog.NewService(auditRepo, deps.AuditPublisher)
	auditHandler := auditlog.NewHandler(auditSvc)

	auditGroup := api.Group("/audit-logs", reportAccess)
	{
		auditGroup.GET("", auditHandler.GetAuditLogs)
		auditGroup.GET("/:id", auditHandler.GetAuditLogByID)
	}

	// ========== Reports ==========
	loc := cfg.Location()
	reportsRepo := reports.NewRepository(deps.DB)
	reportsSvc := reports.NewReportService(reportsRepo, reports.NewReportExporter(), auditSvc, loc)
	reportsHandler := reports.NewHandler(reportsSvc, loc, !cfg.IsProduction())

	reportGroup := api.Group("/reports", reportAccess)
	{
		reportGroup.POST("/data", reportsHandler.GetReportData)
		reportGroup.POST("/download", reportsHandler.DownloadReport)
		reportGroup.GET("/download", reportsHandler.DownloadReportQuery)
	}
}
