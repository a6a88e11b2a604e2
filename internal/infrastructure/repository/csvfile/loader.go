// Package csvfile loads season record sets from one delimited file per
// season, the format of the published FBref "Big 5" squad tables.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/big5-league-stats/internal/domain/season"
)

const (
	colRank          = "Rk"
	colSquad         = "Squad"
	colCountry       = "Country"
	colLeagueRank    = "LgRk"
	colMatches       = "MP"
	colWins          = "W"
	colDraws         = "D"
	colLosses        = "L"
	colGoalsFor      = "GF"
	colGoalsAgainst  = "GA"
	colGoalDiff      = "GD"
	colPoints        = "Pts"
	colPointsPerGame = "Pts/G"
	colPointsPerMP   = "Pts/MP"
	colAttendance    = "Attendance"
	colTopScorer     = "Top Team Scorer"
	colGoalkeeper    = "Goalkeeper"
	colLeagueStatus  = "League_Status"
)

var requiredColumns = []string{
	colSquad, colCountry, colLeagueRank, colMatches, colWins, colDraws, colLosses,
	colGoalsFor, colGoalsAgainst, colGoalDiff, colPoints,
}

type Loader struct {
	dir     string
	pattern string
}

// NewLoader reads files named fmt.Sprintf(pattern, seasonID) under dir.
func NewLoader(dir, pattern string) *Loader {
	return &Loader{dir: dir, pattern: pattern}
}

func (l *Loader) Path(id season.SeasonID) string {
	return filepath.Join(l.dir, fmt.Sprintf(l.pattern, int(id)))
}

func (l *Loader) LoadSeason(ctx context.Context, id season.SeasonID) (season.RecordSet, error) {
	if !id.Known() {
		return season.RecordSet{}, errors.Wrapf(season.ErrDataUnavailable, "season=%d", int(id))
	}
	if err := ctx.Err(); err != nil {
		return season.RecordSet{}, err
	}

	path := l.Path(id)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return season.RecordSet{}, errors.Wrapf(season.ErrDataUnavailable, "season=%d file=%s", int(id), path)
		}
		return season.RecordSet{}, errors.Wrapf(err, "open season file %s", path)
	}
	defer f.Close()

	records, err := Parse(f)
	if err != nil {
		return season.RecordSet{}, errors.Wrapf(err, "parse season file %s", path)
	}

	return season.RecordSet{SeasonID: id, Records: records}, nil
}

// Parse reads a header row followed by one row per team. Columns are
// matched by header name, so extra columns are ignored.
func Parse(r io.Reader) ([]season.TeamRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("missing header row")
		}
		return nil, errors.Wrap(err, "read header")
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, errors.Newf("missing column %q", name)
		}
	}

	out := make([]season.TeamRecord, 0, 100)
	line := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, errors.Wrapf(err, "read line %d", line)
		}
		if isBlank(row) {
			continue
		}

		rec, err := parseRow(rowReader{row: row, index: index})
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		out = append(out, rec)
	}

	return out, nil
}

type rowReader struct {
	row   []string
	index map[string]int
}

func (r rowReader) text(col string) string {
	i, ok := r.index[col]
	if !ok || i >= len(r.row) {
		return ""
	}
	return strings.TrimSpace(r.row[i])
}

func (r rowReader) intValue(col string) (int, error) {
	raw := strings.ReplaceAll(r.text(col), ",", "")
	if raw == "" {
		return 0, nil
	}
	if v, err := strconv.Atoi(raw); err == nil {
		return v, nil
	}
	// Some exports write integral columns as floats ("38.0").
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Newf("column %s: invalid integer %q", col, raw)
	}
	return int(f), nil
}

func (r rowReader) floatValue(col string) (float64, error) {
	raw := strings.ReplaceAll(r.text(col), ",", "")
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Newf("column %s: invalid number %q", col, raw)
	}
	return v, nil
}

func parseRow(r rowReader) (season.TeamRecord, error) {
	rec := season.TeamRecord{
		Squad:        r.text(colSquad),
		Country:      r.text(colCountry),
		TopScorer:    r.text(colTopScorer),
		Goalkeeper:   r.text(colGoalkeeper),
		LeagueStatus: season.ParseLeagueStatus(r.text(colLeagueStatus)),
	}
	if rec.Squad == "" {
		return season.TeamRecord{}, errors.New("empty squad")
	}

	ints := []struct {
		col string
		dst *int
	}{
		{colRank, &rec.BigFiveRank},
		{colLeagueRank, &rec.LeagueRank},
		{colMatches, &rec.MatchesPlayed},
		{colWins, &rec.Wins},
		{colDraws, &rec.Draws},
		{colLosses, &rec.Losses},
		{colGoalsFor, &rec.GoalsFor},
		{colGoalsAgainst, &rec.GoalsAgainst},
		{colGoalDiff, &rec.GoalDifference},
		{colPoints, &rec.Points},
		{colAttendance, &rec.Attendance},
	}
	for _, field := range ints {
		v, err := r.intValue(field.col)
		if err != nil {
			return season.TeamRecord{}, err
		}
		*field.dst = v
	}

	ppgCol := colPointsPerGame
	if _, ok := r.index[ppgCol]; !ok {
		ppgCol = colPointsPerMP
	}
	ppg, err := r.floatValue(ppgCol)
	if err != nil {
		return season.TeamRecord{}, err
	}
	rec.PointsPerGame = ppg

	return rec, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
