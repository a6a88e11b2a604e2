package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/big5-league-stats/internal/domain/season"
	"github.com/riskibarqy/big5-league-stats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/big5-league-stats/internal/platform/logging"
)

type failingSeasonWriter struct {
	failOn season.SeasonID
	inner  season.Writer
}

func (w failingSeasonWriter) ReplaceSeason(ctx context.Context, set season.RecordSet) error {
	if set.SeasonID == w.failOn {
		return errors.New("copy rejected")
	}
	return w.inner.ReplaceSeason(ctx, set)
}

func TestImportService_Import(t *testing.T) {
	t.Parallel()

	source := memory.NewSeasonRepository(statsFixture(season.Season2015), statsFixture(season.Season2016))
	target := memory.NewSeasonRepository()
	svc := NewImportService(source, target, 4, logging.NewNop())

	result, err := svc.Import(context.Background(), ImportInput{})
	require.NoError(t, err)

	assert.Equal(t, len(season.Seasons()), result.TaskCount)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 0, result.FailedCount)
	assert.Equal(t, len(season.Seasons())-2, result.SkippedCount)
	require.Len(t, result.Tasks, result.TaskCount)
	for i, task := range result.Tasks {
		assert.Equal(t, season.SeasonID(i), task.SeasonID)
	}
	assert.Equal(t, importStatusSuccess, result.Tasks[0].Status)
	assert.Equal(t, 5, result.Tasks[0].Rows)
	assert.Equal(t, importStatusSkipped, result.Tasks[2].Status)

	imported, err := target.LoadSeason(context.Background(), season.Season2016)
	require.NoError(t, err)
	assert.Equal(t, 5, imported.Len())
}

func TestImportService_Import_Failures(t *testing.T) {
	t.Parallel()

	loader := &mockSeasonLoader{}
	loader.On("LoadSeason", mock.Anything, season.Season2015).
		Return(statsFixture(season.Season2015), nil).Once()
	loader.On("LoadSeason", mock.Anything, season.Season2016).
		Return(statsFixture(season.Season2016), nil).Once()
	loader.On("LoadSeason", mock.Anything, season.Season2017).
		Return(season.RecordSet{}, errors.New("malformed row")).Once()

	target := memory.NewSeasonRepository()
	svc := NewImportService(loader, failingSeasonWriter{failOn: season.Season2016, inner: target}, 2, logging.NewNop())

	result, err := svc.Import(context.Background(), ImportInput{
		Seasons: []season.SeasonID{season.Season2017, season.Season2015, season.Season2016, season.Season2015},
	})
	require.NoError(t, err)
	loader.AssertExpectations(t)

	assert.Equal(t, 3, result.TaskCount)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 2, result.FailedCount)
	assert.Equal(t, 0, result.SkippedCount)
	require.Len(t, result.Tasks, 3)
	assert.Equal(t, importStatusSuccess, result.Tasks[0].Status)
	assert.Equal(t, importStatusFailed, result.Tasks[1].Status)
	assert.Contains(t, result.Tasks[1].Error, "copy rejected")
	assert.Equal(t, importStatusFailed, result.Tasks[2].Status)
	assert.Contains(t, result.Tasks[2].Error, "malformed row")
}
