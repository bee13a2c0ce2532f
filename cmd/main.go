package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/sharath018/venue-booking-backend/config"
	"github.com/sharath018/venue-booking-backend/database"
	"github.com/sharath018/venue-booking-backend/internal/auditlog"
	"github.com/sharath018/venue-booking-backend/internal/booking"
	"github.com/sharath018/venue-booking-backend/routes"
	"github.com/sharath018/venue-booking-backend/utils"
)

// @title           Venue Booking Reports API
// @version         1.0
// @description     Date-filtered booking reports with PDF and Excel export.
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	logger := utils.NewLogger(cfg)
	zerolog.DefaultContextLogger = &logger

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connect failed")
	}

	if cfg.DBAutoMigrate {
		if err := migrate(db); err != nil {
			logger.Fatal().Err(err).Msg("database migration failed")
		}
		logger.Info().Msg("database migrations completed")
	}

	// Init Redis
	if err := utils.InitRedis(context.Background(), cfg); err != nil {
		logger.Warn().Err(err).Msg("redis unavailable, rate limiting falls back to memory store")
	}
	defer utils.CloseRedis()

	store, err := utils.RateLimitStore()
	if err != nil {
		logger.Fatal().Err(err).Msg("rate limit store init failed")
	}

	// Init Kafka
	var publisher auditlog.Publisher
	if p := utils.NewAuditPublisher(cfg); p != nil {
		publisher = p
		defer p.Close()
		logger.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaAuditTopic).Msg("audit streaming enabled")
	}

	if cfg.JWTAccessSecret == "" {
		logger.Warn().Msg("JWT_ACCESS_SECRET not set, report endpoints are unauthenticated")
	}

	router := gin.New()
	routes.Setup(router, cfg, routes.Deps{
		DB:             db,
		Logger:         logger,
		AuditPublisher: publisher,
		RateLimitStore: store,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Str("timezone", cfg.Location().String()).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&booking.Event{},
		&auditlog.AuditLog{},
	)
}
