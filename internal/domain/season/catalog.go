package season

import (
	"fmt"
	"strconv"
	"strings"
)

// SeasonID is the ordinal of a season in the catalog (0 is 2015/16).
type SeasonID int

const (
	Season2015 SeasonID = iota
	Season2016
	Season2017
	Season2018
	Season2019
	Season2020
)

// Season describes one catalog entry.
type Season struct {
	ID        SeasonID
	StartYear int
	Label     string
}

var seasonCatalog = []Season{
	{ID: Season2015, StartYear: 2015, Label: "2015/16"},
	{ID: Season2016, StartYear: 2016, Label: "2016/17"},
	{ID: Season2017, StartYear: 2017, Label: "2017/18"},
	{ID: Season2018, StartYear: 2018, Label: "2018/19"},
	{ID: Season2019, StartYear: 2019, Label: "2019/20"},
	{ID: Season2020, StartYear: 2020, Label: "2020/21"},
}

// Seasons returns the season catalog ordered by id.
func Seasons() []Season {
	out := make([]Season, len(seasonCatalog))
	copy(out, seasonCatalog)
	return out
}

func (id SeasonID) Known() bool {
	return id >= 0 && int(id) < len(seasonCatalog)
}

func (id SeasonID) Label() string {
	if !id.Known() {
		return fmt.Sprintf("season-%d", int(id))
	}
	return seasonCatalog[id].Label
}

func (id SeasonID) String() string {
	return id.Label()
}

// ParseSeasonID accepts any integer. Whether the season has data is the
// loader's call.
func ParseSeasonID(raw string) (SeasonID, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid season id %q", raw)
	}
	return SeasonID(value), nil
}

// League is one of the five modelled competitions, keyed by the record's
// country code.
type League string

const (
	LeagueEngland League = "ENG"
	LeagueGermany League = "GER"
	LeagueSpain   League = "ESP"
	LeagueItaly   League = "ITA"
	LeagueFrance  League = "FRA"
)

// DefaultLeague is used when a table request names no league.
const DefaultLeague = LeagueEngland

var leagueNames = map[League]string{
	LeagueEngland: "Premier League",
	LeagueGermany: "Bundesliga",
	LeagueSpain:   "La Liga",
	LeagueItaly:   "Serie A",
	LeagueFrance:  "Ligue 1",
}

// Leagues returns the five leagues in display order.
func Leagues() []League {
	return []League{LeagueEngland, LeagueGermany, LeagueFrance, LeagueSpain, LeagueItaly}
}

func ParseLeague(raw string) (League, error) {
	value := League(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := leagueNames[value]; !ok {
		return "", fmt.Errorf("unknown league %q", raw)
	}
	return value, nil
}

func (l League) Name() string {
	return leagueNames[l]
}

// Country is the value of TeamRecord.Country for this league.
func (l League) Country() string {
	return string(l)
}
