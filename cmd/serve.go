package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"rent-reminder-backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.migrate(); err != nil {
		return err
	}

	if a.cfg.Scheduler.Enabled {
		loc, _ := a.cfg.Location()
		if err := a.reminders.StartScheduler(a.cfg.Scheduler.Cron, loc); err != nil {
			return err
		}
		defer a.reminders.StopScheduler()
		a.log.WithField("cron", a.cfg.Scheduler.Cron).Info("Reminder scheduler started")
	}

	gin.SetMode(a.cfg.Service.Mode)
	r := routes.SetupRouter(routes.Deps{
		DB:          a.db,
		Log:         a.log,
		JWTSecret:   a.cfg.Auth.JWTSecret,
		CORSOrigins: a.cfg.Service.CORSOrigins,
		Auth:        a.auth,
		Tenants:     a.tenants,
		Reminders:   a.reminders,
		Configs:     a.configs,
	})
	printRoutes(r, a.log)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", a.cfg.Service.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errC := make(chan error, 1)
	go func() {
		a.log.WithField("port", a.cfg.Service.Port).Info("Starting server")
		// ListenAndServe returns ErrServerClosed after Shutdown
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()

	select {
	case err := <-errC:
		return err
	case <-ctx.Done():
	}

	a.log.Info("Received shutdown signal, shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func printRoutes(r *gin.Engine, log *logrus.Logger) {
	for _, route := range r.Routes() {
		log.Debugf("%-6s %s", route.Method, route.Path)
	}
}
