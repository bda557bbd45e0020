// Package ranking converts match results into points: 3 for a win, 1 each
// for a draw, nothing for a loss.
package ranking

import (
	"cmp"
	"slices"
)

const (
	WinPoints  = 3
	DrawPoints = 1
)

// Award returns the points each player earns from a single result.
func Award(r MatchResult) (p1, p2 int) {
	switch {
	case r.ScoreA > r.ScoreB:
		return WinPoints, 0
	case r.ScoreB > r.ScoreA:
		return 0, WinPoints
	default:
		return DrawPoints, DrawPoints
	}
}

// Calculate sums the awards of all results. A nil or empty slice yields zero totals.
func Calculate(results []MatchResult) Totals {
	var t Totals
	for _, r := range results {
		p1, p2 := Award(r)
		t.Player1 += p1
		t.Player2 += p2
	}
	return t
}

// Standings applies Award to every participant of every fixture and returns the
// table ordered by points, then wins, then ID.
func Standings(fixtures []Fixture) []Standing {
	index := make(map[string]*Standing)
	entry := func(id string) *Standing {
		s, ok := index[id]
		if !ok {
			s = &Standing{ID: id}
			index[id] = s
		}
		return s
	}

	apply := func(side []string, points int) {
		for _, id := range side {
			s := entry(id)
			s.Played++
			s.Points += points
			switch points {
			case WinPoints:
				s.Won++
			case DrawPoints:
				s.Drawn++
			default:
				s.Lost++
			}
		}
	}

	for _, f := range fixtures {
		a, b := Award(f.Result)
		apply(f.SideA, a)
		apply(f.SideB, b)
	}

	table := make([]Standing, 0, len(index))
	for _, s := range index {
		table = append(table, *s)
	}
	slices.SortFunc(table, func(x, y Standing) int {
		if c := cmp.Compare(y.Points, x.Points); c != 0 {
			return c
		}
		if c := cmp.Compare(y.Won, x.Won); c != 0 {
			return c
		}
		return cmp.Compare(x.ID, y.ID)
	})
	return table
}
