package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/big5-league-stats/internal/app"
	"github.com/riskibarqy/big5-league-stats/internal/config"
	"github.com/riskibarqy/big5-league-stats/internal/domain/season"
	"github.com/riskibarqy/big5-league-stats/internal/infrastructure/repository/csvfile"
	"github.com/riskibarqy/big5-league-stats/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/big5-league-stats/internal/platform/logging"
	"github.com/riskibarqy/big5-league-stats/internal/usecase"
)

func main() {
	seasonsFlag := flag.String("seasons", "", "comma-separated season ids to import (default: whole catalog)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.NewJSON(cfg.LogLevel).With("component", "importer")
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	seasons, err := parseSeasons(*seasonsFlag)
	if err != nil {
		logger.Error("parse seasons flag", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := app.OpenDB(ctx, cfg)
	if err != nil {
		logger.Error("open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	svc := usecase.NewImportService(
		csvfile.NewLoader(cfg.SeasonDataDir, cfg.SeasonFilePattern),
		postgres.NewSeasonRepository(db),
		cfg.ImportWorkers,
		logger,
	)

	result, err := svc.Import(ctx, usecase.ImportInput{Seasons: seasons})
	if err != nil {
		logger.Error("import failed", "error", err)
		os.Exit(1)
	}

	out, err := sonic.ConfigDefault.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Error("encode import result", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))

	if result.FailedCount > 0 {
		os.Exit(1)
	}
}

func parseSeasons(raw string) ([]season.SeasonID, error) {
	var out []season.SeasonID
	for _, part := range strings.Split(raw, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		id, err := season.ParseSeasonID(part)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
