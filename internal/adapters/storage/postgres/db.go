package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"vet-clinic-records/internal/platform/logger"

	"github.com/XSAM/otelsql"
	_ "github.com/jackc/pgx/v5/stdlib"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

type Config struct {
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
}

// Open abre el pool database/sql sobre pgx, instrumentado con otelsql.
func Open(ctx context.Context, cfg Config, log logger.Logger) (*sql.DB, error) {
	attrs := otelsql.WithAttributes(semconv.DBSystemPostgreSQL)

	db, err := otelsql.Open("pgx", cfg.DSN, attrs)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := otelsql.RegisterDBStatsMetrics(db, attrs); err != nil {
		log.Warn("db stats metrics not registered", map[string]any{"error": err})
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}
