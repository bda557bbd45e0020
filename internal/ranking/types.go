package ranking

// MatchResult is the outcome of one match between player 1 and player 2.
type MatchResult struct {
	ScoreA int `json:"player1" msgpack:"player1"`
	ScoreB int `json:"player2" msgpack:"player2"`
}

// Totals holds the accumulated points per player slot.
type Totals struct {
	Player1 int `json:"player1"`
	Player2 int `json:"player2"`
}

// Fixture is a match between two sides. A side holds one participant for
// singles and two for doubles.
type Fixture struct {
	SideA  []string
	SideB  []string
	Result MatchResult
}

// Standing is one row of a leaderboard.
type Standing struct {
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	Points int    `json:"points"`
	Played int    `json:"played"`
	Won    int    `json:"won"`
	Drawn  int    `json:"drawn"`
	Lost   int    `json:"lost"`
}
