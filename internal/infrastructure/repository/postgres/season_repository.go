package postgres

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/riskibarqy/big5-league-stats/internal/domain/season"
)

const listSeasonRecordsQuery = `SELECT * FROM ` + teamSeasonRecordsTable + `
WHERE season_id = $1
ORDER BY row_order, id`

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

// LoadSeason returns rows in file order so equal-points ties stay stable.
func (r *SeasonRepository) LoadSeason(ctx context.Context, id season.SeasonID) (season.RecordSet, error) {
	if !id.Known() {
		return season.RecordSet{}, errors.Wrapf(season.ErrDataUnavailable, "season=%d", int(id))
	}

	var rows []teamSeasonRecordTableModel
	if err := r.db.SelectContext(ctx, &rows, listSeasonRecordsQuery, int(id)); err != nil {
		return season.RecordSet{}, fmt.Errorf("list team season records season=%d: %w", int(id), err)
	}
	if len(rows) == 0 {
		return season.RecordSet{}, errors.Wrapf(season.ErrDataUnavailable, "season=%d has no rows", int(id))
	}

	out := make([]season.TeamRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return season.RecordSet{SeasonID: id, Records: out}, nil
}

// ReplaceSeason swaps every row of the season inside one transaction.
func (r *SeasonRepository) ReplaceSeason(ctx context.Context, set season.RecordSet) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace season: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM `+teamSeasonRecordsTable+` WHERE season_id = $1`, int(set.SeasonID)); err != nil {
		return fmt.Errorf("clear season=%d: %w", int(set.SeasonID), err)
	}

	stmt, err := tx.PreparexContext(ctx, pq.CopyIn(teamSeasonRecordsTable, insertColumns...))
	if err != nil {
		return fmt.Errorf("prepare copy season=%d: %w", int(set.SeasonID), err)
	}
	for i, record := range set.Records {
		if _, err := stmt.ExecContext(ctx, insertValues(set.SeasonID, i, record)...); err != nil {
			_ = stmt.Close()
			return fmt.Errorf("copy record squad=%s: %w", record.Squad, err)
		}
	}
	if _, err := stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		return fmt.Errorf("flush copy season=%d: %w", int(set.SeasonID), err)
	}
	if err := stmt.Close(); err != nil {
		return fmt.Errorf("close copy season=%d: %w", int(set.SeasonID), err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace season tx: %w", err)
	}
	return nil
}
