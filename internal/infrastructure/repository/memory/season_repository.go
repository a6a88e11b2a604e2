package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/big5-league-stats/internal/domain/season"
)

type SeasonRepository struct {
	mu      sync.RWMutex
	seasons map[season.SeasonID][]season.TeamRecord
}

func NewSeasonRepository(sets ...season.RecordSet) *SeasonRepository {
	seasons := make(map[season.SeasonID][]season.TeamRecord, len(sets))
	for _, set := range sets {
		seasons[set.SeasonID] = slices.Clone(set.Records)
	}

	return &SeasonRepository{seasons: seasons}
}

func (r *SeasonRepository) LoadSeason(_ context.Context, id season.SeasonID) (season.RecordSet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records, ok := r.seasons[id]
	if !ok {
		return season.RecordSet{}, errors.Wrapf(season.ErrDataUnavailable, "season=%d", int(id))
	}

	return season.RecordSet{SeasonID: id, Records: slices.Clone(records)}, nil
}

func (r *SeasonRepository) ReplaceSeason(_ context.Context, set season.RecordSet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seasons[set.SeasonID] = slices.Clone(set.Records)
	return nil
}
