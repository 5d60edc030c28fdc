package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventhub/internal/config"
	"eventhub/internal/http-server/handlers/auth/login"
	"eventhub/internal/http-server/handlers/auth/register"
	"eventhub/internal/http-server/handlers/event/createEvent"
	"eventhub/internal/http-server/handlers/event/deleteEvent"
	"eventhub/internal/http-server/handlers/event/getAllEvents"
	"eventhub/internal/http-server/handlers/event/getEventInfo"
	"eventhub/internal/http-server/handlers/event/setCoverImage"
	"eventhub/internal/http-server/handlers/event/updateEvent"
	"eventhub/internal/http-server/handlers/eventtype"
	"eventhub/internal/http-server/handlers/location"
	"eventhub/internal/http-server/handlers/reservation/cancelReservation"
	"eventhub/internal/http-server/handlers/reservation/checkReservation"
	"eventhub/internal/http-server/handlers/reservation/createReservation"
	"eventhub/internal/http-server/handlers/reservation/getMyReservations"
	"eventhub/internal/http-server/handlers/reservation/listEventReservations"
	"eventhub/internal/http-server/handlers/reservation/updateReservation"
	mwauth "eventhub/internal/http-server/middleware/auth"
	mwcache "eventhub/internal/http-server/middleware/cache"
	"eventhub/internal/http-server/middleware/mwlogger"
	"eventhub/internal/http-server/middleware/ratelimit"
	"eventhub/internal/lib/logger/handlers/slogpretty"
	"eventhub/internal/lib/logger/sl"
	authservice "eventhub/internal/service/auth"
	eventservice "eventhub/internal/service/event"
	reservationservice "eventhub/internal/service/reservation"
	"eventhub/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting eventhub", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Address})
	if err = rdb.Ping(context.Background()).Err(); err != nil {
		log.Error("failed to connect to redis", sl.Err(err))
		os.Exit(1)
	}

	authSvc := authservice.New(storage, cfg.Auth.Secret, cfg.Auth.TokenTTL)
	eventSvc := eventservice.New(storage, time.Now)
	reservationSvc := reservationservice.New(storage, time.Now)

	limiter := ratelimit.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(limiter.Middleware)

	router.Post("/register", register.New(log, authSvc))
	router.Post("/login", login.New(log, authSvc))

	router.Get("/locations", location.NewList(log, storage))
	router.Get("/locations/{id}", location.NewGet(log, storage))
	router.Get("/event-types", eventtype.NewList(log, storage))
	router.Get("/event-types/{id}", eventtype.NewGet(log, storage))

	router.Group(func(r chi.Router) {
		r.Use(mwauth.New(log, cfg.Auth.Secret))

		r.Group(func(r chi.Router) {
			r.Use(mwcache.Responses(rdb, cfg.Redis.CacheTTL))

			r.Get("/events", getAllEvents.New(log, eventSvc))
			r.Get("/events/{id}", getEventInfo.New(log, eventSvc))
		})

		r.Group(func(r chi.Router) {
			r.Use(mwcache.Invalidate(rdb))

			r.Post("/events", createEvent.New(log, eventSvc))
			r.Put("/events/{id}", updateEvent.New(log, eventSvc))
			r.Delete("/events/{id}", deleteEvent.New(log, eventSvc))
			r.Post("/events/{id}/cover", setCoverImage.New(log, eventSvc))
		})

		r.Get("/events/{id}/reservations", listEventReservations.New(log, reservationSvc))
		r.Get("/events/{id}/reservation-status", checkReservation.New(log, reservationSvc))

		r.Post("/reservations", createReservation.New(log, reservationSvc))
		r.Get("/reservations", getMyReservations.New(log, reservationSvc))
		r.Put("/reservations/{id}", updateReservation.New(log, reservationSvc))
		r.Delete("/reservations/{id}", cancelReservation.New(log, reservationSvc))

		r.Post("/locations", location.NewCreate(log, storage))
		r.Post("/event-types", eventtype.NewCreate(log, storage))
	})

	log.Info("starting server", slog.String("address", cfg.Address))

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("failed to start server", sl.Err(err))
		}
	}()

	log.Info("server started")

	<-done
	log.Info("stopping server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("failed to stop server", sl.Err(err))
		return
	}

	if err := rdb.Close(); err != nil {
		log.Error("failed to close redis client", sl.Err(err))
	}

	log.Info("server stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewPrettyHandler(os.Stdout)

	return slog.New(handler)
}
