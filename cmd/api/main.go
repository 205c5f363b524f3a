package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"galaticketing/config"
	_ "galaticketing/docs"
	"galaticketing/internal/adapters/auth"
	"galaticketing/internal/adapters/email"
	"galaticketing/internal/adapters/qrcode"
	"galaticketing/internal/adapters/redsys"
	httpdelivery "galaticketing/internal/delivery/http"
	"galaticketing/internal/delivery/http/controllers"
	"galaticketing/internal/delivery/http/middleware"
	"galaticketing/internal/repository/postgres"
	"galaticketing/internal/services"
)

const shutdownTimeout = 10 * time.Second

// @title Graduation Gala Ticketing API
// @version 1.0
// @description Ticket sales, payment settlement and checkpoint redemption for a graduation gala.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Staff token from POST /api/staff/login, sent as "Bearer <token>".
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger()
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = db.PingContext(pingCtx)
	cancel()
	if err != nil {
		return err
	}

	// Repositories
	graduateRepo := postgres.NewGraduateRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	ticketRepo := postgres.NewTicketRepository(db)
	statsRepo := postgres.NewStatsRepository(db)

	// Adapters
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SMTP: email.SMTPConfig{
			Host:     cfg.Email.SMTPHost,
			Port:     cfg.Email.SMTPPort,
			User:     cfg.Email.SMTPUser,
			Password: cfg.Email.SMTPPass,
		},
		SES: email.SESConfig{
			Region:          cfg.Email.AWSRegion,
			AccessKeyID:     cfg.Email.AWSAccessKeyID,
			SecretAccessKey: cfg.Email.AWSSecretAccessKey,
		},
	})
	if err != nil {
		return err
	}
	gateway, err := redsys.NewGateway(redsys.Config{
		MerchantCode: cfg.Redsys.MerchantCode,
		Terminal:     cfg.Redsys.Terminal,
		Secret:       cfg.Redsys.Secret,
		URL:          cfg.Redsys.URL,
		Currency:     cfg.Redsys.Currency,
		PublicURL:    cfg.PublicURL,
	})
	if err != nil {
		return err
	}
	if cfg.Redsys.Secret == "" {
		logger.Warn("REDSYS_SECRET not set, checkout is disabled")
	}
	proxies, err := middleware.NewProxyTrust(cfg.TrustedProxies)
	if err != nil {
		return err
	}
	tokens := auth.NewJWTAuthority(cfg.JWTSecret)
	hasher := auth.NewBcryptHasher(0)
	secrets := auth.NewSecretGenerator()

	// Services
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())
	graduateService := services.NewGraduateService(graduateRepo, ticketRepo, hasher, secrets, emailService, cfg.PublicURL)
	paymentService := services.NewPaymentService(orderRepo, ticketRepo, graduateRepo, gateway, redsys.NewOrderIDGenerator(), secrets, emailService, logger, services.PaymentConfig{
		ManagementFeeCents: cfg.ManagementFeeCents,
		PublicURL:          cfg.PublicURL,
	})
	ticketService := services.NewTicketService(ticketRepo, qrcode.NewEncoder())
	staffService := services.NewStaffService(services.StaffCredentials{
		AdminPassword:    cfg.AdminPassword,
		DelegatePassword: cfg.DelegatePassword,
	}, tokens, cfg.JWTExpiry)

	router := httpdelivery.NewRouter(httpdelivery.Controllers{
		Graduate: controllers.NewGraduateController(logger, graduateService),
		Payment:  controllers.NewPaymentController(logger, paymentService),
		Ticket:   controllers.NewTicketController(logger, ticketService),
		Staff:    controllers.NewStaffController(logger, staffService, services.NewStatsService(statsRepo)),
		Scan:     controllers.NewScanController(logger, services.NewRedemptionService(ticketRepo)),
		Debug:    controllers.NewDebugController(logger, paymentService, emailService),
	}, httpdelivery.RouterConfig{
		Logger:             logger,
		Verifier:           tokens,
		Health:             db,
		DebugEndpoints:     cfg.DebugEndpoints,
		LoginRatePerMinute: cfg.LoginRatePerMinute,
		Proxies:            proxies,
	})
	if cfg.DebugEndpoints {
		logger.Warn("debug endpoints enabled")
	}

	var handler http.Handler = router
	handler = middleware.LoggingMiddleware(logger, proxies, handler)
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
