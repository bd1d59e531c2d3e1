// Package postgres implements the domain repositories on GORM over
// PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"kix/config"
	"kix/internal/domain/lifecycle"
	"kix/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const poolStatsInterval = 30 * time.Second

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the PostgreSQL connection and ties it to the Fx lifecycle. The
// connection is pinged on start and closed on stop.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	// Writes that span repositories go through txManager.Execute; GORM's
	// implicit per-statement transaction only adds round trips on top of that.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	statsCtx, cancelStats := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go reportPoolStats(statsCtx, params.Logger, sqlDB)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelStats()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// reportPoolStats periodically logs connection pool pressure. A growing wait
// count means the pool is undersized for the current load.
func reportPoolStats(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(poolStatsInterval)
	defer ticker.Stop()

	var lastWaitCount int64
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats := sqlDB.Stats()
			if stats.WaitCount == lastWaitCount {
				continue
			}

			logger.LogAttrs(ctx, slog.LevelWarn, "Postgres pool under pressure",
				slog.Int64("newWaits", stats.WaitCount-lastWaitCount),
				slog.Int("openConns", stats.OpenConnections),
				slog.Int("inUseConns", stats.InUse),
				slog.Int("idleConns", stats.Idle),
				slog.Int("maxOpenConns", stats.MaxOpenConnections),
				slog.Duration("totalWait", stats.WaitDuration),
			)

			lastWaitCount = stats.WaitCount
		}
	}
}
