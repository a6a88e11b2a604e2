package analytics

import (
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/big5-league-stats/internal/domain/season"
)

// MembershipMessage is the advisory text returned when a selected team has
// no record in the season.
const MembershipMessage = "one or more selected teams are absent from this season's record set"

// ErrMembership matches any *MembershipError through errors.Is.
var ErrMembership = errors.New("team membership")

// MembershipError reports the requested names that the season does not
// contain. No vectors are produced alongside it.
type MembershipError struct {
	Missing []string
}

func (e *MembershipError) Error() string {
	return MembershipMessage
}

func (e *MembershipError) Is(target error) bool {
	return target == ErrMembership
}

// AxisLabels names the ComparisonVector components, in order.
var AxisLabels = [VectorLen]string{
	"Matches Played",
	"Wins",
	"Draws",
	"Losses",
	"Goals For",
	"Goals Against",
	"Goal Difference",
	"Points",
}

const VectorLen = 8

// ComparisonVector holds MP, W, D, L, GF, GA, GD and Pts for one team.
type ComparisonVector struct {
	Team   string
	Values [VectorLen]int
}

// ComparisonSet is ordered by team name ascending.
type ComparisonSet []ComparisonVector

func vectorOf(r season.TeamRecord) ComparisonVector {
	return ComparisonVector{
		Team: r.Squad,
		Values: [VectorLen]int{
			r.MatchesPlayed,
			r.Wins,
			r.Draws,
			r.Losses,
			r.GoalsFor,
			r.GoalsAgainst,
			r.GoalDifference,
			r.Points,
		},
	}
}

// Ring returns the vector as a closed polygon: the first point is repeated
// at the end together with its axis label.
func (v ComparisonVector) Ring() ([]int, []string) {
	values := make([]int, 0, VectorLen+1)
	labels := make([]string, 0, VectorLen+1)
	values = append(values, v.Values[:]...)
	labels = append(labels, AxisLabels[:]...)
	values = append(values, v.Values[0])
	labels = append(labels, AxisLabels[0])
	return values, labels
}

// BuildComparison returns one vector per requested team, or a
// *MembershipError when any requested team is missing from the season.
// The result is never partial.
func BuildComparison(set season.RecordSet, requested []string) (ComparisonSet, error) {
	names := slices.Clone(requested)
	slices.Sort(names)
	names = slices.Compact(names)

	catalog := ListTeams(set)
	var missing []string
	for _, name := range names {
		if _, found := slices.BinarySearch(catalog, name); !found {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &MembershipError{Missing: missing}
	}

	bySquad := make(map[string]season.TeamRecord, len(set.Records))
	for _, record := range set.Records {
		if _, seen := bySquad[record.Squad]; !seen {
			bySquad[record.Squad] = record
		}
	}

	out := make(ComparisonSet, 0, len(names))
	for _, name := range names {
		out = append(out, vectorOf(bySquad[name]))
	}
	return out, nil
}
