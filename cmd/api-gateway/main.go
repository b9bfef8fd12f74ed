package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/tutor-dashboard-api/api/swagger"
	"github.com/noah-isme/tutor-dashboard-api/internal/availability"
	"github.com/noah-isme/tutor-dashboard-api/internal/handler"
	"github.com/noah-isme/tutor-dashboard-api/internal/middleware"
	"github.com/noah-isme/tutor-dashboard-api/internal/models"
	"github.com/noah-isme/tutor-dashboard-api/internal/repository"
	"github.com/noah-isme/tutor-dashboard-api/internal/service"
	"github.com/noah-isme/tutor-dashboard-api/internal/upstream"
	"github.com/noah-isme/tutor-dashboard-api/pkg/cache"
	"github.com/noah-isme/tutor-dashboard-api/pkg/config"
	"github.com/noah-isme/tutor-dashboard-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/tutor-dashboard-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/tutor-dashboard-api/pkg/middleware/requestid"
	"github.com/noah-isme/tutor-dashboard-api/pkg/session"
	"github.com/noah-isme/tutor-dashboard-api/pkg/tracing"
)

// @title Tutor Dashboard API
// @version 1.0.0
// @description Backend-for-frontend serving the tutor, student and admin dashboards of the tutoring marketplace.
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, cfg.Tracing)
	if err != nil {
		logr.Fatal("failed to init tracing", zap.Error(err))
	}

	occupancy := availability.OccupancyPolicy{
		CancelledOccupies: cfg.Calendar.CancelledOccupies,
		TutorLocalDates:   cfg.Calendar.TutorLocalBookingDates,
	}
	policy, err := availability.PolicyFromNames(cfg.Calendar.NonWorkingDays)
	if err != nil {
		logr.Fatal("invalid CALENDAR_NON_WORKING_DAYS", zap.Error(err))
	}
	defaultLoc, err := time.LoadLocation(cfg.Calendar.DefaultTimezone)
	if err != nil {
		logr.Warn("unknown CALENDAR_DEFAULT_TIMEZONE, using UTC", zap.String("timezone", cfg.Calendar.DefaultTimezone))
		defaultLoc = time.UTC
	}

	var redisClient *redis.Client
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, drafts kept in memory and reads uncached", zap.Error(err))
			redisClient = nil
		}
	}

	metrics := service.NewMetricsService()
	market, err := upstream.New(cfg.Upstream, upstream.WithObserver(metrics), upstream.WithLogger(logr.Named("upstream")))
	if err != nil {
		logr.Fatal("invalid upstream configuration", zap.Error(err))
	}
	bind := func(sess *session.Session) service.MarketplaceAPI { return market.Session(sess) }

	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Cache.TTL, logr, redisClient != nil)
	drafts := repository.NewDraftRepository(cacheRepo, cfg.Drafts.TTL, logr)
	validate := validator.New()
	defaultSlot := models.TimeSlot{StartTime: cfg.Calendar.DefaultSlotStart, EndTime: cfg.Calendar.DefaultSlotEnd}

	calendarSvc := service.NewCalendarService(bind, cacheSvc, service.CalendarOptions{
		Policy:          policy,
		Occupancy:       occupancy,
		DefaultLocation: defaultLoc,
		CacheTTL:        cfg.Cache.TTL,
	}, logr)
	scheduleSvc := service.NewScheduleService(bind, drafts, cacheSvc, validate, defaultSlot, logr)
	blockSvc := service.NewBlockService(bind, cacheSvc, logr)
	bookingSvc := service.NewBookingService(bind, cacheSvc, cfg.Cache.TTL, metrics, validate, defaultLoc, logr).WithOccupancy(occupancy)
	earningsSvc := service.NewEarningsService(bind, validate, logr)
	adminSvc := service.NewAdminService(bind, metrics, validate, logr)
	identitySvc := service.NewIdentityService(bind, cacheSvc, cfg.Cache.TTL, logr)

	notices := handler.Notices{DismissAfter: cfg.Notifications.DismissAfter, ConfirmedBooking: cfg.Notifications.ConfirmedBooking}
	metricsHandler := handler.NewMetricsHandler(metrics, map[string]handler.ReadinessCheck{
		"upstream": market.Ping,
		"redis":    func(ctx context.Context) error { return cache.Ping(ctx, redisClient) },
	})

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics, "/metrics", "/health"))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.Handlers{
		Calendar:     handler.NewCalendarHandler(calendarSvc),
		Schedule:     handler.NewScheduleHandler(scheduleSvc, notices),
		BlockedDates: handler.NewBlockedDateHandler(blockSvc, notices),
		Bookings:     handler.NewBookingHandler(bookingSvc, notices),
		Earnings:     handler.NewEarningsHandler(earningsSvc, notices),
		Admin:        handler.NewAdminHandler(adminSvc, notices),
	}.Register(r.Group(cfg.APIPrefix), middleware.Authenticate(cfg.JWT.Secret, identitySvc))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "upstream", cfg.Upstream.BaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logr.Warn("tracing shutdown failed", zap.Error(err))
	}
	if err := cacheRepo.Close(); err != nil {
		logr.Warn("redis close failed", zap.Error(err))
	}
}
