package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"afyajirani-backend/internal/analytics"
	"afyajirani-backend/internal/config"
	"afyajirani-backend/internal/dashboard"
	"afyajirani-backend/internal/handlers"
	"afyajirani-backend/internal/middleware"
	"afyajirani-backend/internal/notify"
	"afyajirani-backend/internal/payments"
	"afyajirani-backend/internal/routes"
	"afyajirani-backend/internal/services"
	"afyajirani-backend/internal/session"
	"afyajirani-backend/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 1. Load env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Connect DB
	db, err := config.ConnectDB(cfg, logger)
	if err != nil {
		return err
	}
	stores := store.New(db)

	// 3. Session revocations: redis when configured
	var revoker session.Revoker = session.NewMemoryRevoker()
	rdb, err := config.ConnectRedis(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
		revoker = session.NewRedisRevoker(rdb)
	}
	tokens := session.NewManager(cfg.JWTSecret, cfg.JWTTTL)

	// 4. Outbound clients
	insights := analytics.New(cfg.AnalyticsBaseURL, cfg.AnalyticsAPIKey, cfg.AnalyticsTimeout, logger)
	provider, err := payments.FromConfig(cfg, insights, logger)
	if err != nil {
		return err
	}
	pusher, err := notify.NewFCM(ctx, cfg.FirebaseCredentials, logger)
	if err != nil {
		return err
	}

	// 5. Services
	accounts := services.NewAccounts(stores.Users, stores.Hospitals, stores.Audit, tokens, revoker, logger)
	reports := services.NewReports(stores.Cases, insights, cfg.Timezone, logger)
	alerts := services.NewAlerts(stores.Patients, insights, pusher, stores.Audit, logger)

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if _, err := accounts.SeedAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			return err
		}
	}

	composer := dashboard.New(dashboard.Sources{
		Insights:  insights,
		Cases:     reports,
		Patients:  alerts,
		Content:   stores.Content,
		Hospitals: stores.Hospitals,
		Users:     stores.Users,
		CaseStats: stores.Cases,
		Audit:     stores.Audit,
	}, logger)

	h := &handlers.Handler{
		Accounts:   accounts,
		Onboarding: services.NewOnboarding(stores.Hospitals, stores.Payments, stores.Audit, provider, cfg.OnboardingFee, logger),
		Reports:    reports,
		Alerts:     alerts,
		Payments:   services.NewPayments(provider, stores.Payments, stores.Hospitals, stores.Audit, logger),
		Dashboards: composer,
		Insights:   insights,
		Content:    stores.Content,
		Audit:      stores.Audit,
		Logger:     logger.Named("handlers"),

		MidtransServerKey: cfg.MidtransServerKey,
	}

	// 6. Init router with global middleware
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	limiter := middleware.NewIPRateLimiter(middleware.DefaultRate, middleware.DefaultBurst)
	go limiter.Run(time.Minute, ctx.Done())

	r := gin.New()
	r.Use(
		middleware.Recovery(logger),
		middleware.RequestLogger(logger),
		middleware.CORS(cfg.CORSOrigins),
		middleware.RateLimit(limiter),
	)
	routes.SetupRoutes(r, h, middleware.NewAuth(tokens, revoker, logger))

	// 7. Run server until SIGINT/SIGTERM
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("port", cfg.Port), zap.String("payment_provider", provider.Name()))
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
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
