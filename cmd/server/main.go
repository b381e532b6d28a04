package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/edusync/edusync-backend/internal/config"
	"github.com/edusync/edusync-backend/internal/database"
	"github.com/edusync/edusync-backend/internal/handler"
	"github.com/edusync/edusync-backend/internal/logger"
	"github.com/edusync/edusync-backend/internal/repository"
	"github.com/edusync/edusync-backend/internal/router"
	"github.com/edusync/edusync-backend/internal/service"
	"github.com/edusync/edusync-backend/internal/validator"
	"github.com/edusync/edusync-backend/internal/worker"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting EduSync Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	userRepo := repository.NewUserRepository(pool)
	leaveRepo := repository.NewLeaveRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)
	announcementRepo := repository.NewAnnouncementRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	scheduleRepo := repository.NewExamScheduleRepository(pool)
	timetableRepo := repository.NewTimetableRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg)
	directoryService := service.NewDirectoryService(userRepo, authService, log)
	notificationService := service.NewNotificationService(notificationRepo, userRepo, rdb, log)
	leaveService := service.NewLeaveService(leaveRepo, userRepo, notificationService, log)
	announcementService := service.NewAnnouncementService(announcementRepo)
	eventService := service.NewEventService(eventRepo)
	scheduleService := service.NewExamScheduleService(scheduleRepo)
	timetableService := service.NewTimetableService(timetableRepo)
	mediaService := service.NewMediaService(cfg)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:         handler.NewAuthHandler(authService, directoryService),
		Directory:    handler.NewDirectoryHandler(directoryService),
		Leave:        handler.NewLeaveHandler(leaveService),
		Notification: handler.NewNotificationHandler(notificationService, rdb, log, cfg.AllowedOrigins),
		Announcement: handler.NewAnnouncementHandler(announcementService),
		Event:        handler.NewEventHandler(eventService),
		ExamSchedule: handler.NewExamScheduleHandler(scheduleService),
		Timetable:    handler.NewTimetableHandler(timetableService),
		Media:        handler.NewMediaHandler(mediaService),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	fanoutWorker := worker.NewFanoutWorker(notificationService, rdb, log)
	go fanoutWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop the fanout worker and let the queue drain.
	workerCancel()
	time.Sleep(2 * time.Second)

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
