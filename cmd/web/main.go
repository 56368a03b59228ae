package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/tailoring-webclient/internal/api/http"
	"github.com/spec-kit/tailoring-webclient/internal/api/http/handlers"
	"github.com/spec-kit/tailoring-webclient/internal/auth"
	"github.com/spec-kit/tailoring-webclient/internal/booking"
	"github.com/spec-kit/tailoring-webclient/internal/config"
	"github.com/spec-kit/tailoring-webclient/internal/events"
	"github.com/spec-kit/tailoring-webclient/internal/guard"
	"github.com/spec-kit/tailoring-webclient/internal/observability"
	"github.com/spec-kit/tailoring-webclient/internal/service"
	"github.com/spec-kit/tailoring-webclient/internal/session"
	"github.com/spec-kit/tailoring-webclient/internal/upstream"
	"github.com/spec-kit/tailoring-webclient/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := observability.NewMetrics()

	sessions := session.NewRedisStore(cfg.Redis, cfg.Session.TTL(), logger)
	defer sessions.Close()

	dispatcher := events.NewInMemoryDispatcher()
	inspector := auth.NewTokenInspector()
	platform := upstream.NewClient(cfg.Upstream, logger, metrics)

	wizards := booking.NewManager(platform, platform, booking.Options{
		Horizon:      time.Duration(cfg.Booking.HorizonDays) * 24 * time.Hour,
		BranchID:     cfg.Session.DefaultBranch,
		FetchTimeout: cfg.Upstream.Timeout(),
		IdleTTL:      cfg.Session.TTL(),
	}, logger)
	wizards.RegisterHandlers(dispatcher)

	authService := service.NewAuthService(platform, sessions, dispatcher, wizards, logger)
	appointmentService := service.NewAppointmentService(platform, wizards, dispatcher)
	notificationService := service.NewNotificationService(platform, sessions, dispatcher, logger)
	measurementService := service.NewMeasurementService(platform)
	catalogService := service.NewCatalogService(platform)

	worker.StartNotificationWorker(notificationService)

	shell := guard.NewShell(sessions, inspector, dispatcher, logger, cfg.Session.CookieName)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, shell, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:        handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, sessions, metrics),
		Auth:          handlers.NewAuthHandler(authService, cfg.Session),
		Dashboard:     handlers.NewDashboardHandler(),
		Booking:       handlers.NewBookingHandler(appointmentService),
		Appointments:  handlers.NewAppointmentsHandler(appointmentService),
		Notifications: handlers.NewNotificationsHandler(notificationService),
		Measurements:  handlers.NewMeasurementsHandler(measurementService),
		Catalog:       handlers.NewCatalogHandler(catalogService),
		Guard:         shell,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
