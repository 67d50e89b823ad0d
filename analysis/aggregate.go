package analysis

import (
	"fmt"
	"sort"
)

// TeamAggregate is one row of a ranked aggregate table.
type TeamAggregate struct {
	TeamName string
	Value    float64
}

// aggregators covers the functions the reporting stage offers.
var aggregators = map[string]func([]float64) float64{
	"sum":  sum,
	"mean": mean,
	"max":  maxOf,
	"min":  minOf,
}

// TopN ranks teams by aggregating a numeric column across their seasons and
// returns the n largest.
func TopN(seasons []TeamSeason, column, aggFunc string, n int) ([]TeamAggregate, error) {
	return rankTeams(seasons, column, aggFunc, n, true)
}

// BottomN returns the n smallest team aggregates.
func BottomN(seasons []TeamSeason, column, aggFunc string, n int) ([]TeamAggregate, error) {
	return rankTeams(seasons, column, aggFunc, n, false)
}

func rankTeams(seasons []TeamSeason, column, aggFunc string, n int, largest bool) ([]TeamAggregate, error) {
	selector, err := columnSelector(column)
	if err != nil {
		return nil, err
	}
	agg, ok := aggregators[aggFunc]
	if !ok {
		return nil, fmt.Errorf("unknown aggregation %q (want sum, mean, max, or min)", aggFunc)
	}
	if n <= 0 {
		return nil, fmt.Errorf("n must be positive")
	}

	grouped := make(map[string][]float64)
	for _, s := range seasons {
		grouped[s.TeamName] = append(grouped[s.TeamName], selector(s))
	}

	ranked := make([]TeamAggregate, 0, len(grouped))
	for team, values := range grouped {
		ranked = append(ranked, TeamAggregate{TeamName: team, Value: agg(values)})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Value != ranked[j].Value {
			if largest {
				return ranked[i].Value > ranked[j].Value
			}
			return ranked[i].Value < ranked[j].Value
		}
		return ranked[i].TeamName < ranked[j].TeamName
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n], nil
}

func columnSelector(column string) (func(TeamSeason) float64, error) {
	switch column {
	case "wins":
		return func(s TeamSeason) float64 { return float64(s.Wins) }, nil
	case "losses":
		return func(s TeamSeason) float64 { return float64(s.Losses) }, nil
	case "ot_losses":
		return func(s TeamSeason) float64 { return float64(s.OTLosses) }, nil
	case "win_pct":
		return func(s TeamSeason) float64 { return s.WinPct }, nil
	case "goals_for":
		return func(s TeamSeason) float64 { return float64(s.GoalsFor) }, nil
	case "goals_against":
		return func(s TeamSeason) float64 { return float64(s.GoalsAgainst) }, nil
	default:
		return nil, fmt.Errorf("unknown aggregate column %q", column)
	}
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return sum(values) / float64(len(values))
}

func maxOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func minOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
