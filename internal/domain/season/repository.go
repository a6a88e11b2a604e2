package season

import (
	"context"

	"github.com/cockroachdb/errors"
)

// ErrDataUnavailable means no backing data exists for the requested season.
var ErrDataUnavailable = errors.New("season data unavailable")

// Loader returns the complete record set of one season.
type Loader interface {
	LoadSeason(ctx context.Context, id SeasonID) (RecordSet, error)
}

// Writer replaces the stored records of one season.
type Writer interface {
	ReplaceSeason(ctx context.Context, set RecordSet) error
}
