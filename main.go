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
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"site-mailer/pkg/api"
	"site-mailer/pkg/clients/mailer"
	"site-mailer/pkg/config"
	"site-mailer/pkg/logging"
	"site-mailer/pkg/middleware"
	"site-mailer/pkg/services"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, using process environment")
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	// Initialize the mail transport once; it is shared by every request
	mailClient, err := newMailClient(cfg, logger)
	if err != nil {
		return err
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	submissionService := services.NewSubmissionService(mailClient, services.SubmissionConfig{
		AdminEmail: cfg.AdminEmail,
		Brand:      cfg.MailFromName,
		Location:   loc,
	}, logger)

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.AllowedOrigins),
	)

	handlers := api.NewHandlers(submissionService, logger)
	handlers.RegisterRoutes(router)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server starting",
			zap.String("port", cfg.Port),
			zap.String("mail_provider", cfg.MailProvider),
			zap.Strings("allowed_origins", cfg.AllowedOrigins))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func newMailClient(cfg *config.Config, logger *zap.Logger) (mailer.Client, error) {
	if cfg.MailProvider == "log" {
		logger.Warn("MAIL_PROVIDER=log, emails will be logged and not delivered")
		return mailer.NewLogClient(logger), nil
	}

	provider, err := mailer.ResolveProvider(cfg.MailProvider, cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPSecure)
	if err != nil {
		return nil, err
	}
	return mailer.NewSMTPClient(mailer.SMTPConfig{
		Provider: provider,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.Sender(),
		FromName: cfg.MailFromName,
		Timeout:  cfg.SendTimeout,
	}, logger)
}
