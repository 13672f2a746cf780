package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/clinicbook/api/internal/config"
	v1 "github.com/clinicbook/api/internal/handler/v1"
	"github.com/clinicbook/api/internal/repository"
	"github.com/clinicbook/api/internal/service"
	"github.com/clinicbook/api/pkg/auth"
	"github.com/clinicbook/api/pkg/database"
	"github.com/clinicbook/api/pkg/logger"
	"github.com/clinicbook/api/pkg/metrics"
	"github.com/clinicbook/api/pkg/payments"
	"github.com/clinicbook/api/pkg/tracer"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	tp, err := tracer.Init(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("initializing tracer: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		_ = tp.Shutdown(ctx)
	}()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return err
	}
	if err := database.Migrate(db, log); err != nil {
		return err
	}

	collector := metrics.NewCollector("clinicbook")
	jwtManager := auth.NewJWTManager(cfg.JWT)
	gateway := payments.NewStripeGateway(cfg.Stripe)

	userRepo := repository.NewUserRepo(db)
	treatmentRepo := repository.NewTreatmentRepo(db)
	bookingRepo := repository.NewBookingRepo(db)
	paymentRepo := repository.NewPaymentRepo(db)
	doctorRepo := repository.NewDoctorRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	auditSvc := service.NewAuditService(auditRepo, log)
	defer auditSvc.Shutdown()

	authorizer := service.NewAuthorizer(userRepo, log)
	accountSvc := service.NewAccountService(userRepo, jwtManager, auditSvc, log)
	catalogSvc := service.NewCatalogService(treatmentRepo, log)
	availabilitySvc := service.NewAvailabilityService(treatmentRepo, bookingRepo, log)
	bookingSvc := service.NewBookingService(bookingRepo, treatmentRepo, auditSvc, log)
	paymentSvc := service.NewPaymentService(paymentRepo, bookingRepo, treatmentRepo, gateway, auditSvc, cfg.Stripe.Currency, log)
	doctorSvc := service.NewDoctorService(doctorRepo, auditSvc, log)

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": cfg.App.Version})
	})
	engine.GET("/metrics", gin.WrapH(metrics.MetricsHandler()))

	v1.Register(engine, cfg, jwtManager, authorizer, collector, v1.Handlers{
		Accounts: v1.NewAccountHandler(accountSvc, authorizer),
		Catalog:  v1.NewCatalogHandler(catalogSvc, availabilitySvc, collector),
		Bookings: v1.NewBookingHandler(bookingSvc, authorizer, collector),
		Payments: v1.NewPaymentHandler(paymentSvc, authorizer, collector),
		Doctors:  v1.NewDoctorHandler(doctorSvc),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}
