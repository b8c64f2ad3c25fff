package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"rental-management-backend/internal/api/routes"
	"rental-management-backend/internal/mailer"
	"rental-management-backend/internal/repository"
	"rental-management-backend/internal/service"
	"rental-management-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const (
	shutdownTimeout   = 15 * time.Second
	overdueJobTimeout = 5 * time.Minute
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

// buildServices wires repositories, storage, mail and the domain services
func buildServices(ctx context.Context, db *gorm.DB) (*repository.Repositories, *service.Services, storage.Storage, error) {
	store, err := storage.New(ctx, cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	repos := repository.NewRepositories(db)
	svc := service.NewServices(cfg, repos, repository.NewTransactor(db), mailer.New(cfg), store, service.NewValidator())
	return repos, svc, store, nil
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := openDatabase(false)
	if err != nil {
		return err
	}
	defer closeDatabase(db)

	repos, svc, store, err := buildServices(ctx, db)
	if err != nil {
		return err
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router, err := routes.SetupRoutes(&routes.Dependencies{
		Config:   cfg,
		DB:       db,
		Repos:    repos,
		Services: svc,
		Storage:  store,
	})
	if err != nil {
		return err
	}

	if cfg.SchedulerEnabled {
		scheduler, err := startScheduler(svc.Invoices)
		if err != nil {
			return err
		}
		defer scheduler.Stop()
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	logrus.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// startScheduler runs the overdue invoice check on the configured cron spec
func startScheduler(invoices service.InvoiceServiceInterface) (*cron.Cron, error) {
	c := cron.New(cron.WithLocation(time.UTC))
	_, err := c.AddFunc(cfg.OverdueCronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), overdueJobTimeout)
		defer cancel()
		logrus.Info("Starting overdue invoice check")
		result, err := invoices.CheckOverdue(ctx, false)
		if err != nil {
			logrus.WithError(err).Error("Overdue invoice check failed")
			return
		}
		logrus.WithFields(logrus.Fields{
			"checked":  result.Checked,
			"notified": result.Notified,
			"errors":   result.Errors,
		}).Info("Overdue invoice check finished")
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule overdue check %q: %w", cfg.OverdueCronSpec, err)
	}
	c.Start()
	logrus.Infof("Scheduled overdue invoice check (%s)", cfg.OverdueCronSpec)
	return c, nil
}
