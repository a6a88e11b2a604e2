package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/big5-league-stats/internal/domain/season"
	"github.com/riskibarqy/big5-league-stats/internal/platform/logging"
)

const (
	importStatusSuccess = "success"
	importStatusFailed  = "failed"
	importStatusSkipped = "skipped"
)

type ImportInput struct {
	// Seasons to import; empty means the whole catalog.
	Seasons []season.SeasonID
}

type ImportResult struct {
	TaskCount    int                `json:"task_count"`
	SuccessCount int                `json:"success_count"`
	FailedCount  int                `json:"failed_count"`
	SkippedCount int                `json:"skipped_count"`
	Tasks        []ImportTaskResult `json:"tasks"`
}

type ImportTaskResult struct {
	SeasonID   season.SeasonID `json:"season_id"`
	Season     string          `json:"season"`
	Status     string          `json:"status"`
	Rows       int             `json:"rows"`
	Error      string          `json:"error,omitempty"`
	DurationMS int64           `json:"duration_ms"`
}

// ImportService copies season record sets from a source loader into a
// writer, one worker per season.
type ImportService struct {
	source  season.Loader
	target  season.Writer
	workers int
	logger  *logging.Logger
}

func NewImportService(source season.Loader, target season.Writer, workers int, logger *logging.Logger) *ImportService {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &ImportService{
		source:  source,
		target:  target,
		workers: workers,
		logger:  logger,
	}
}

// Import never fails on a single season; per-season failures are reported in
// the result. Seasons without source data are skipped.
func (s *ImportService) Import(ctx context.Context, input ImportInput) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.Import")
	defer span.End()

	ids := input.Seasons
	if len(ids) == 0 {
		for _, item := range season.Seasons() {
			ids = append(ids, item.ID)
		}
	}
	ids = uniqueSeasonIDs(ids)
	span.SetAttributes(attribute.Int("import.task_count", len(ids)))

	workerCount := s.workers
	if workerCount > len(ids) {
		workerCount = len(ids)
	}
	if workerCount < 1 {
		return ImportResult{Tasks: []ImportTaskResult{}}, nil
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return ImportResult{}, fmt.Errorf("%w: create import worker pool: %v", ErrDependencyUnavailable, err)
	}
	defer pool.Release()

	var (
		workers      sync.WaitGroup
		successCount atomic.Int64
		failedCount  atomic.Int64
		skippedCount atomic.Int64
	)
	results := make(chan ImportTaskResult, len(ids))

	for _, id := range ids {
		workers.Add(1)
		submitErr := pool.Submit(func() {
			defer workers.Done()

			task := s.importSeason(ctx, id)
			switch task.Status {
			case importStatusSuccess:
				successCount.Add(1)
			case importStatusSkipped:
				skippedCount.Add(1)
			default:
				failedCount.Add(1)
			}
			results <- task
		})
		if submitErr != nil {
			workers.Done()
			failedCount.Add(1)
			results <- ImportTaskResult{
				SeasonID: id,
				Season:   id.Label(),
				Status:   importStatusFailed,
				Error:    submitErr.Error(),
			}
		}
	}

	workers.Wait()
	close(results)

	tasks := make([]ImportTaskResult, 0, len(ids))
	for task := range results {
		tasks = append(tasks, task)
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].SeasonID < tasks[j].SeasonID
	})

	out := ImportResult{
		TaskCount:    len(ids),
		SuccessCount: int(successCount.Load()),
		FailedCount:  int(failedCount.Load()),
		SkippedCount: int(skippedCount.Load()),
		Tasks:        tasks,
	}
	s.logger.InfoContext(ctx, "season import finished",
		"task_count", out.TaskCount,
		"success_count", out.SuccessCount,
		"failed_count", out.FailedCount,
		"skipped_count", out.SkippedCount,
	)

	return out, nil
}

func (s *ImportService) importSeason(ctx context.Context, id season.SeasonID) ImportTaskResult {
	startedAt := time.Now()
	task := ImportTaskResult{
		SeasonID: id,
		Season:   id.Label(),
	}

	set, err := s.source.LoadSeason(ctx, id)
	switch {
	case errors.Is(err, season.ErrDataUnavailable):
		task.Status = importStatusSkipped
		task.Error = err.Error()
		task.DurationMS = time.Since(startedAt).Milliseconds()
		return task
	case err != nil:
		s.logger.WarnContext(ctx, "load season for import failed", "season_id", int(id), "error", err)
		task.Status = importStatusFailed
		task.Error = err.Error()
		task.DurationMS = time.Since(startedAt).Milliseconds()
		return task
	}

	set.SeasonID = id
	if err := s.target.ReplaceSeason(ctx, set); err != nil {
		s.logger.WarnContext(ctx, "replace season failed", "season_id", int(id), "error", err)
		task.Status = importStatusFailed
		task.Error = err.Error()
		task.DurationMS = time.Since(startedAt).Milliseconds()
		return task
	}

	task.Status = importStatusSuccess
	task.Rows = set.Len()
	task.DurationMS = time.Since(startedAt).Milliseconds()
	return task
}

func uniqueSeasonIDs(ids []season.SeasonID) []season.SeasonID {
	seen := make(map[season.SeasonID]struct{}, len(ids))
	out := make([]season.SeasonID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
