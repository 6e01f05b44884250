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

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"seminarmanager/config"
	_ "seminarmanager/docs"
	"seminarmanager/internal/adapters/auth"
	"seminarmanager/internal/adapters/email"
	delivery "seminarmanager/internal/delivery/http"
	"seminarmanager/internal/delivery/http/controllers"
	"seminarmanager/internal/delivery/http/middleware"
	"seminarmanager/internal/repository/postgres"
	"seminarmanager/internal/services"
	"seminarmanager/internal/usecase"
)

// @title Seminar Manager API
// @version 1.0
// @description Event registration, waiting queues, and pricing for seminars.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	eventRepo := postgres.NewEventRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)
	userRepo := postgres.NewUserRepository(db)
	timeSlotRepo := postgres.NewTimeSlotRepository(db)
	speakerRepo := postgres.NewSpeakerRepository(db)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.MailProvider,
		FromAddress: cfg.MailFromAddress,
		FromName:    cfg.MailFromName,
		SES: email.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	tokenIssuer := auth.NewJWTIssuer(cfg.JWTSecret)
	tokenVerifier := auth.NewJWTVerifier(cfg.JWTSecret)

	notifier := services.NewNotificationService(mailer, logger)
	userService := services.NewUserService(userRepo, hasher, tokenIssuer, cfg.JWTExpiry)
	eventService := services.NewEventService(eventRepo, timeSlotRepo, speakerRepo, nil)
	registrationService := services.NewRegistrationService(
		eventRepo, registrationRepo, userRepo, notifier, cfg.Registration, nil,
	)
	programImporter := usecase.NewProgramImportUseCase(
		usecase.NewHTTPFetcher(nil), eventRepo, timeSlotRepo, 30*time.Second,
	)

	authController := controllers.NewAuthController(logger, userService)
	eventController := controllers.NewEventController(logger, eventService)
	registrationController := controllers.NewRegistrationController(logger, registrationService)
	programController := controllers.NewProgramController(logger, programImporter)

	requireAuth := middleware.RequireAuth(tokenVerifier, logger)
	mux := delivery.NewRouter(authController, eventController, registrationController, programController, requireAuth)

	handler := middleware.CORS(cfg.CORSOrigins, middleware.LoggingMiddleware(logger, mux))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}
