package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"conferenceagenda/config"
	_ "conferenceagenda/docs"
	"conferenceagenda/internal/adapters/auth"
	"conferenceagenda/internal/adapters/calendar"
	"conferenceagenda/internal/adapters/feed"
	deliveryhttp "conferenceagenda/internal/delivery/http"
	"conferenceagenda/internal/delivery/http/controllers"
	"conferenceagenda/internal/delivery/http/middleware"
	"conferenceagenda/internal/repository/postgres"
	"conferenceagenda/internal/services"

	_ "github.com/lib/pq"
)

// @title Conference Agenda API
// @version 1.0
// @description Conference schedule, personal agendas, attendee messaging, networking and speaker voting.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	err = db.PingContext(pingCtx)
	cancelPing()
	if err != nil {
		logger.Error("failed to connect to database", "err", err)
		os.Exit(1)
	}

	loc, err := time.LoadLocation(cfg.EventTimezone)
	if err != nil {
		logger.Error("invalid event time zone", "tz", cfg.EventTimezone, "err", err)
		os.Exit(1)
	}

	sessionRepo := postgres.NewSessionRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)
	threadRepo := postgres.NewThreadRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	connectionRepo := postgres.NewConnectionRepository(db)
	voteRepo := postgres.NewVoteRepository(db)

	scheduleService := services.NewScheduleService(logger, sessionRepo, cfg.RequestTimeout)
	attendeeService := services.NewAttendeeService(sessionRepo, registrationRepo, cfg.RequestTimeout)
	messagingService := services.NewMessagingService(threadRepo, cfg.RequestTimeout)
	networkingService := services.NewNetworkingService(profileRepo, connectionRepo, cfg.RequestTimeout)
	speakerService := services.NewSpeakerService(sessionRepo, voteRepo, cfg.RequestTimeout)

	sessionFeed := feed.NewPoller(logger, sessionRepo, cfg.FeedCron, cfg.RequestTimeout)
	exporter := calendar.NewICSExporter(loc)
	verifier := auth.NewJWTVerifier(cfg.JWTSecret)

	router := deliveryhttp.NewRouter(
		controllers.NewScheduleController(logger, scheduleService, sessionFeed),
		controllers.NewAttendeeController(logger, attendeeService, exporter, cfg.CalendarName),
		controllers.NewMessagingController(logger, messagingService),
		controllers.NewNetworkingController(logger, networkingService),
		controllers.NewSpeakerController(logger, speakerService),
		verifier,
		logger,
	)
	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.AllowedOrigins, router))

	// No write timeout: /sessions/stream holds the response open.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment, "tz", cfg.EventTimezone)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}
