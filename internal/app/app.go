package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/big5-league-stats/internal/config"
	"github.com/riskibarqy/big5-league-stats/internal/domain/season"
	"github.com/riskibarqy/big5-league-stats/internal/infrastructure/repository/csvfile"
	"github.com/riskibarqy/big5-league-stats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/big5-league-stats/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/big5-league-stats/internal/interfaces/httpapi"
	"github.com/riskibarqy/big5-league-stats/internal/platform/logging"
	"github.com/riskibarqy/big5-league-stats/internal/usecase"
)

type CloseFunc func() error

func noopClose() error { return nil }

// OpenDB opens a traced Postgres pool and verifies it with a ping.
func OpenDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	db, err := otelsqlx.Open("postgres", normalizeDBURL(cfg.DBURL, cfg.DBApplicationName),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}

// NewSeasonLoader builds the loader selected by SEASON_SOURCE.
func NewSeasonLoader(ctx context.Context, cfg config.Config, logger *logging.Logger) (season.Loader, CloseFunc, error) {
	switch cfg.SeasonSource {
	case config.SourceCSV:
		logger.Info("season source", "source", cfg.SeasonSource, "dir", cfg.SeasonDataDir, "pattern", cfg.SeasonFilePattern)
		return csvfile.NewLoader(cfg.SeasonDataDir, cfg.SeasonFilePattern), noopClose, nil
	case config.SourcePostgres:
		db, err := OpenDB(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("season source", "source", cfg.SeasonSource, "db_name", dbNameFromURL(cfg.DBURL))
		return postgres.NewSeasonRepository(db), db.Close, nil
	case config.SourceMemory:
		logger.Info("season source", "source", cfg.SeasonSource)
		return memory.NewSeasonRepository(memory.SeedSeasons()...), noopClose, nil
	default:
		return nil, nil, fmt.Errorf("unsupported season source %q", cfg.SeasonSource)
	}
}

func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, CloseFunc, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	loader, closeLoader, err := NewSeasonLoader(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	stats := usecase.NewSeasonStatsService(loader, cfg.HistoryMaxConcurrency, logger)
	handler := httpapi.NewHandler(stats, logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterOptions{
		ServiceName:        cfg.ServiceName,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, closeLoader, nil
}
