package db

import (
	"context"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kirankarlapati/fruitanalyser/internal/logger"
)

func ConnectPostgres(ctx context.Context, log *logger.Logger) *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatalw("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatalw("invalid DATABASE_URL", "error", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		log.Fatalw("postgres pool init failed", "error", err)
	}

	if err := pool.Ping(ctx); err != nil {
		log.Fatalw("postgres connection failed", "error", err)
	}

	if err := initSchema(ctx, pool); err != nil {
		log.Fatalw("schema init failed", "error", err)
	}

	log.Infow("connected to postgres")

	return pool
}

// initSchema creates the predictions table and its indexes.
func initSchema(ctx context.Context, pool *pgxpool.Pool) error {
	tableSQL := `
		CREATE TABLE IF NOT EXISTS predictions (
			id UUID PRIMARY KEY,
			image_url VARCHAR(500) NOT NULL,
			label VARCHAR(50) NOT NULL,
			confidence NUMERIC NOT NULL,
			all_predictions JSONB NOT NULL DEFAULT '{}',
			timestamp TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := pool.Exec(ctx, tableSQL); err != nil {
		return err
	}

	indexSQL := `
		CREATE INDEX IF NOT EXISTS idx_predictions_label
			ON predictions (label);

		CREATE INDEX IF NOT EXISTS idx_predictions_timestamp
			ON predictions (timestamp DESC);
	`
	if _, err := pool.Exec(ctx, indexSQL); err != nil {
		return err
	}

	return nil
}
