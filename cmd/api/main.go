// @title Vet Clinic Records API
// @version 1.0
// @description Registros de la clínica veterinaria: customers, pacientes, tratamientos, medicamentos y prescripciones.
// @BasePath /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vet-clinic-records/internal/adapters/blobstore"
	"vet-clinic-records/internal/adapters/messaging/rabbitmq"
	pg "vet-clinic-records/internal/adapters/storage/postgres"
	"vet-clinic-records/internal/config"
	"vet-clinic-records/internal/platform/logger"
	"vet-clinic-records/internal/platform/telemetry"
	"vet-clinic-records/internal/router"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "vetclinic",
		Short:         "Vet clinic records API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(purgeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return runServer(cfg)
		},
	}
}

func runServer(cfg *config.Config) error {
	log := logger.New(cfg.LoggerOptions())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	otel, err := telemetry.InitProvider(ctx, telemetry.Config{
		Enabled:         cfg.OTelEnabled,
		ServiceName:     cfg.OTelServiceName,
		ServiceVersion:  version,
		Environment:     cfg.Env,
		OTLPEndpoint:    cfg.OTelEndpoint,
		MetricsInterval: cfg.OTelMetricsInterval,
	}, log)
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = otel.Shutdown(sctx)
	}()

	metrics, err := telemetry.InitMetrics()
	if err != nil {
		log.Warn("metrics not initialized", map[string]any{"error": err})
	}

	opts := router.Options{
		Logger:        log,
		Metrics:       metrics,
		Photos:        blobstore.NewFileStore(cfg.UploadDir, cfg.UploadBaseURL),
		UploadDir:     cfg.UploadDir,
		UploadBaseURL: cfg.UploadBaseURL,
		CORSOrigins:   cfg.CORSOrigins,
	}

	if cfg.UseMemoryStore() {
		log.Warn("DB_DSN not set, using in-memory store", nil)
	} else {
		db, err := pg.Open(ctx, pg.Config{
			DSN:          cfg.DBDSN,
			MaxOpenConns: cfg.DBMaxOpenConns,
			MaxIdleConns: cfg.DBMaxIdleConns,
		}, log)
		if err != nil {
			return err
		}
		defer db.Close()
		opts.DB = db
	}

	if cfg.RabbitMQURL != "" {
		pub, err := rabbitmq.Dial(cfg.RabbitMQURL, log)
		if err != nil {
			log.Warn("rabbitmq unavailable, lifecycle events will only be logged", map[string]any{"error": err})
		} else {
			defer pub.Close()
			opts.Publisher = pub
		}
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.NewRouter(opts),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "env": cfg.Env})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}

func openPool(ctx context.Context) (*pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.UseMemoryStore() {
		return nil, errors.New("DB_DSN is required")
	}
	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return pool, nil
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	// migrate up
	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pool, err := openPool(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			count, err := pg.NewMigrator(pool).Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migration(s) successfully.\n", count)
			return nil
		},
	})

	// migrate status
	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pool, err := openPool(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			statuses, err := pg.NewMigrator(pool).Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			for _, s := range statuses {
				state, at := "pending", ""
				if s.Applied {
					state = "applied"
					if s.AppliedAt != nil {
						at = s.AppliedAt.Format(time.RFC3339)
					}
				}
				fmt.Fprintf(out, "%-10d %-40s %-10s %s\n", s.Version, s.Name, state, at)
			}
			return nil
		},
	})

	return cmd
}

func purgeCmd() *cobra.Command {
	var olderThan time.Duration
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Hard-delete records soft-deleted before the retention window",
		RunE: func(cmd *cobra.Command, args []string) error {
			if olderThan <= 0 {
				return errors.New("--older-than must be positive")
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.UseMemoryStore() {
				return errors.New("DB_DSN is required")
			}
			log := logger.New(cfg.LoggerOptions())

			ctx := cmd.Context()
			db, err := pg.Open(ctx, pg.Config{DSN: cfg.DBDSN, MaxOpenConns: 1, MaxIdleConns: 1}, log)
			if err != nil {
				return err
			}
			defer db.Close()

			cutoff := time.Now().UTC().Add(-olderThan)
			res, err := pg.NewPurger(db).Purge(ctx, cutoff)
			if err != nil {
				return err
			}

			fields := map[string]any{"cutoff": cutoff.Format(time.RFC3339), "total": res.Total()}
			for table, n := range res {
				fields[table] = n
			}
			log.Info("purge finished", fields)
			return nil
		},
	}
	cmd.Flags().DurationVar(&olderThan, "older-than", 90*24*time.Hour, "Retention window, e.g. 2160h")
	return cmd
}
