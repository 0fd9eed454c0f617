package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"slot-booking/cmd/bootstrap"
	"slot-booking/internal/pkg/config"
	"slot-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

const (
	appName         = "slot-booking"
	shutdownTimeout = 15 * time.Second
)

func init() {
	// Fail safe: never expose debug output because of a missing setting
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           slot-booking
// @version         1.0
// @description     Private theatre slot booking: orders, payments and the slot ledger.

// @BasePath  /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Slot booking API server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API with the reconciliation and notification jobs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve()
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "reconcile",
		Short: "Run one slot ledger reconciliation pass and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return reconcileOnce(cmd.Context())
		},
	})

	return cmd
}

func serve() error {
	app := fx.New(
		bootstrap.Module,
		fx.Provide(
			func() *gin.Engine {
				return gin.New()
			},
		),
		fx.Invoke(
			startServer,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		return fmt.Errorf("start application: %w", err)
	}

	<-app.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		slog.Error("application did not stop cleanly", "error", err)
	}

	slog.Info("application stopped")
	return nil
}

func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			logger.Info("starting server", "address", srv.Addr, "mode", gin.Mode())
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping server")
			return srv.Shutdown(ctx)
		},
	})
}

func reconcileOnce(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var report *commands.ReconcileReport
	app := fx.New(
		bootstrap.CoreModule,
		fx.NopLogger,
		fx.Invoke(func(lc fx.Lifecycle, rc commands.ReconcileCommands) {
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					var err error
					report, err = rc.ReconcileLedger(ctx)
					return err
				},
			})
		}),
	)

	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("reconcile: %w", err)
	}
	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		return fmt.Errorf("stop: %w", err)
	}

	fmt.Printf("ledger reconciled from %s: reserved=%d released=%d failed=%d\n",
		report.From, report.Reserved, report.Released, report.Failed)
	return nil
}
