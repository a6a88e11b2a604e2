package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/big5-league-stats/internal/analytics"
	"github.com/riskibarqy/big5-league-stats/internal/domain/season"
	"github.com/riskibarqy/big5-league-stats/internal/platform/logging"
)

// SeasonSummary is the season overview: team catalog plus both outcome sets.
type SeasonSummary struct {
	Season    season.Season
	Teams     []string
	Champions analytics.OutcomeSet
	Relegated analytics.OutcomeSet
}

// SeasonChampions is one row of the champions history.
type SeasonChampions struct {
	Season    season.Season
	Champions analytics.OutcomeSet
}

type ChampionsHistory struct {
	Seasons []SeasonChampions
	// Missing lists catalog seasons that have no backing data.
	Missing []season.Season
}

// SeasonStatsService loads a season on every call and derives the requested
// view from it. Nothing derived is kept between calls.
type SeasonStatsService struct {
	loader             season.Loader
	historyConcurrency int
	logger             *logging.Logger
}

func NewSeasonStatsService(loader season.Loader, historyConcurrency int, logger *logging.Logger) *SeasonStatsService {
	if historyConcurrency < 1 {
		historyConcurrency = 1
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &SeasonStatsService{
		loader:             loader,
		historyConcurrency: historyConcurrency,
		logger:             logger,
	}
}

func (s *SeasonStatsService) ListSeasons(ctx context.Context) []season.Season {
	_, span := startUsecaseSpan(ctx, "usecase.SeasonStatsService.ListSeasons")
	defer span.End()

	return season.Seasons()
}

func (s *SeasonStatsService) ListLeagues(ctx context.Context) []season.League {
	_, span := startUsecaseSpan(ctx, "usecase.SeasonStatsService.ListLeagues")
	defer span.End()

	return season.Leagues()
}

func (s *SeasonStatsService) ListTeams(ctx context.Context, id season.SeasonID) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonStatsService.ListTeams", attribute.Int("season.id", int(id)))
	defer span.End()

	set, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	return analytics.ListTeams(set), nil
}

// LeagueTable validates leagueCode before touching the data; an empty code
// selects the default league.
func (s *SeasonStatsService) LeagueTable(ctx context.Context, id season.SeasonID, leagueCode string) (analytics.LeagueTable, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonStatsService.LeagueTable", attribute.Int("season.id", int(id)))
	defer span.End()

	league := season.DefaultLeague
	if strings.TrimSpace(leagueCode) != "" {
		parsed, err := season.ParseLeague(leagueCode)
		if err != nil {
			return analytics.LeagueTable{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		league = parsed
	}

	set, err := s.load(ctx, id)
	if err != nil {
		return analytics.LeagueTable{}, err
	}

	return analytics.BuildLeagueTable(set, league.Country()), nil
}

func (s *SeasonStatsService) Champions(ctx context.Context, id season.SeasonID) (analytics.OutcomeSet, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonStatsService.Champions", attribute.Int("season.id", int(id)))
	defer span.End()

	set, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	return analytics.Champions(set), nil
}

func (s *SeasonStatsService) Relegated(ctx context.Context, id season.SeasonID) (analytics.OutcomeSet, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonStatsService.Relegated", attribute.Int("season.id", int(id)))
	defer span.End()

	set, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	return analytics.Relegated(set), nil
}

func (s *SeasonStatsService) Summary(ctx context.Context, id season.SeasonID) (SeasonSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonStatsService.Summary", attribute.Int("season.id", int(id)))
	defer span.End()

	set, err := s.load(ctx, id)
	if err != nil {
		return SeasonSummary{}, err
	}

	return SeasonSummary{
		Season:    describeSeason(id),
		Teams:     analytics.ListTeams(set),
		Champions: analytics.Champions(set),
		Relegated: analytics.Relegated(set),
	}, nil
}

// Compare trims the requested names and drops blanks before handing them to
// the comparison builder. A *analytics.MembershipError is returned as is.
func (s *SeasonStatsService) Compare(ctx context.Context, id season.SeasonID, teams []string) (analytics.ComparisonSet, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonStatsService.Compare",
		attribute.Int("season.id", int(id)),
		attribute.Int("teams.count", len(teams)),
	)
	defer span.End()

	requested := make([]string, 0, len(teams))
	for _, name := range teams {
		name = strings.TrimSpace(name)
		if name != "" {
			requested = append(requested, name)
		}
	}

	set, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	out, err := analytics.BuildComparison(set, requested)
	if err != nil {
		var membershipErr *analytics.MembershipError
		if errors.As(err, &membershipErr) {
			s.logger.InfoContext(ctx, "comparison rejected", "season_id", int(id), "missing", membershipErr.Missing)
		}
		return nil, err
	}

	return out, nil
}

// ChampionsHistory loads every catalog season concurrently. Seasons without
// data are reported in Missing; any other failure aborts the call.
func (s *SeasonStatsService) ChampionsHistory(ctx context.Context) (ChampionsHistory, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonStatsService.ChampionsHistory")
	defer span.End()

	type outcome struct {
		season    season.Season
		champions analytics.OutcomeSet
		missing   bool
	}

	p := pool.NewWithResults[outcome]().
		WithContext(ctx).
		WithCancelOnError().
		WithMaxGoroutines(s.historyConcurrency)
	for _, item := range season.Seasons() {
		p.Go(func(ctx context.Context) (outcome, error) {
			set, err := s.load(ctx, item.ID)
			if errors.Is(err, season.ErrDataUnavailable) {
				return outcome{season: item, missing: true}, nil
			}
			if err != nil {
				return outcome{}, err
			}
			return outcome{season: item, champions: analytics.Champions(set)}, nil
		})
	}

	results, err := p.Wait()
	if err != nil {
		return ChampionsHistory{}, err
	}

	slices.SortFunc(results, func(a, b outcome) int {
		return int(a.season.ID) - int(b.season.ID)
	})

	history := ChampionsHistory{
		Seasons: make([]SeasonChampions, 0, len(results)),
	}
	for _, row := range results {
		if row.missing {
			history.Missing = append(history.Missing, row.season)
			continue
		}
		history.Seasons = append(history.Seasons, SeasonChampions{Season: row.season, Champions: row.champions})
	}

	return history, nil
}

// load returns DataUnavailable unchanged so callers can match it; other
// loader failures are marked as a dependency problem.
func (s *SeasonStatsService) load(ctx context.Context, id season.SeasonID) (season.RecordSet, error) {
	set, err := s.loader.LoadSeason(ctx, id)
	if err == nil {
		return set, nil
	}
	if errors.Is(err, season.ErrDataUnavailable) {
		return season.RecordSet{}, err
	}

	s.logger.ErrorContext(ctx, "load season failed", "season_id", int(id), "error", err)
	return season.RecordSet{}, fmt.Errorf("%w: load season=%d: %w", ErrDependencyUnavailable, int(id), err)
}

func describeSeason(id season.SeasonID) season.Season {
	for _, item := range season.Seasons() {
		if item.ID == id {
			return item
		}
	}
	return season.Season{ID: id, Label: id.Label()}
}
