package ranking

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name     string
		results  []MatchResult
		expected Totals
	}{
		{name: "nil input", results: nil, expected: Totals{}},
		{name: "empty input", results: []MatchResult{}, expected: Totals{}},
		{name: "player 1 wins", results: []MatchResult{{ScoreA: 3, ScoreB: 1}}, expected: Totals{Player1: 3, Player2: 0}},
		{name: "player 2 wins", results: []MatchResult{{ScoreA: 1, ScoreB: 3}}, expected: Totals{Player1: 0, Player2: 3}},
		{name: "draw", results: []MatchResult{{ScoreA: 2, ScoreB: 2}}, expected: Totals{Player1: 1, Player2: 1}},
		{
			name:     "mixed sequence",
			results:  []MatchResult{{ScoreA: 3, ScoreB: 1}, {ScoreA: 0, ScoreB: 2}, {ScoreA: 5, ScoreB: 5}},
			expected: Totals{Player1: 4, Player2: 4},
		},
		{name: "scores are not range checked", results: []MatchResult{{ScoreA: -4, ScoreB: -7}}, expected: Totals{Player1: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Calculate(tt.results))
		})
	}
}

func TestAward_OnlyLegalSplits(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		r := MatchResult{ScoreA: rng.Intn(8), ScoreB: rng.Intn(8)}
		p1, p2 := Award(r)
		split := [2]int{p1, p2}
		assert.Contains(t, [][2]int{{3, 0}, {0, 3}, {1, 1}}, split, "result %+v", r)
	}
}

func TestCalculate_IdempotentAndDoesNotMutateInput(t *testing.T) {
	results := []MatchResult{{ScoreA: 6, ScoreB: 4}, {ScoreA: 3, ScoreB: 6}, {ScoreA: 7, ScoreB: 7}, {ScoreA: 6, ScoreB: 0}}
	snapshot := append([]MatchResult(nil), results...)

	first := Calculate(results)
	second := Calculate(results)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, results)
}

func TestCalculate_OrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	results := make([]MatchResult, 40)
	for i := range results {
		results[i] = MatchResult{ScoreA: rng.Intn(7), ScoreB: rng.Intn(7)}
	}
	expected := Calculate(results)

	for i := 0; i < 20; i++ {
		shuffled := append([]MatchResult(nil), results...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		got := Calculate(shuffled)
		require.Equal(t, expected, got)
		assert.GreaterOrEqual(t, got.Player1, 0)
		assert.GreaterOrEqual(t, got.Player2, 0)
	}
}

func TestStandings(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, Standings(nil))
	})

	t.Run("singles table is sorted by points then wins then id", func(t *testing.T) {
		fixtures := []Fixture{
			{SideA: []string{"ana"}, SideB: []string{"bea"}, Result: MatchResult{ScoreA: 2, ScoreB: 0}},
			{SideA: []string{"bea"}, SideB: []string{"carla"}, Result: MatchResult{ScoreA: 1, ScoreB: 1}},
			{SideA: []string{"carla"}, SideB: []string{"ana"}, Result: MatchResult{ScoreA: 2, ScoreB: 1}},
			{SideA: []string{"dani"}, SideB: []string{"bea"}, Result: MatchResult{ScoreA: 0, ScoreB: 2}},
		}

		table := Standings(fixtures)
		require.Len(t, table, 4)

		assert.Equal(t, Standing{ID: "bea", Points: 4, Played: 3, Won: 1, Drawn: 1, Lost: 1}, table[0])
		assert.Equal(t, Standing{ID: "carla", Points: 4, Played: 2, Won: 1, Drawn: 1, Lost: 0}, table[1])
		assert.Equal(t, Standing{ID: "ana", Points: 3, Played: 2, Won: 1, Drawn: 0, Lost: 1}, table[2])
		assert.Equal(t, Standing{ID: "dani", Points: 0, Played: 1, Won: 0, Drawn: 0, Lost: 1}, table[3])
	})

	t.Run("doubles award every player on the side", func(t *testing.T) {
		fixtures := []Fixture{
			{SideA: []string{"a1", "a2"}, SideB: []string{"b1", "b2"}, Result: MatchResult{ScoreA: 2, ScoreB: 1}},
		}
		table := Standings(fixtures)
		require.Len(t, table, 4)
		assert.Equal(t, "a1", table[0].ID)
		assert.Equal(t, "a2", table[1].ID)
		assert.Equal(t, 3, table[0].Points)
		assert.Equal(t, 3, table[1].Points)
		assert.Equal(t, 0, table[2].Points)
		assert.Equal(t, 0, table[3].Points)
	})

	t.Run("head to head standings agree with Calculate", func(t *testing.T) {
		results := []MatchResult{{ScoreA: 3, ScoreB: 1}, {ScoreA: 0, ScoreB: 2}, {ScoreA: 5, ScoreB: 5}, {ScoreA: 1, ScoreB: 0}}
		var fixtures []Fixture
		for _, r := range results {
			fixtures = append(fixtures, Fixture{SideA: []string{"p1"}, SideB: []string{"p2"}, Result: r})
		}
		totals := Calculate(results)
		points := map[string]int{}
		for _, s := range Standings(fixtures) {
			points[s.ID] = s.Points
		}
		assert.Equal(t, totals.Player1, points["p1"])
		assert.Equal(t, totals.Player2, points["p2"])
	})
}
