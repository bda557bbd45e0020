package playtomic

import (
	"github.com/mauv0809/padel-ranking/internal/ranking"
)

// ToFixture converts a played match with confirmed results into a ranking
// fixture. Each side scores the number of sets it won. Matches that were not
// played, have unconfirmed results, no sets or not exactly two teams are
// reported as not rankable.
func ToFixture(match PadelMatch) (ranking.Fixture, bool) {
	if match.GameStatus != GameStatusPlayed || match.ResultsStatus != ResultsStatusConfirmed {
		return ranking.Fixture{}, false
	}
	if len(match.Teams) != 2 || len(match.Results) == 0 {
		return ranking.Fixture{}, false
	}
	teamA, teamB := match.Teams[0], match.Teams[1]
	if len(teamA.Players) == 0 || len(teamB.Players) == 0 {
		return ranking.Fixture{}, false
	}

	var setsA, setsB int
	for _, set := range match.Results {
		a, b := set.Scores[teamA.ID], set.Scores[teamB.ID]
		switch {
		case a > b:
			setsA++
		case b > a:
			setsB++
		}
	}

	return ranking.Fixture{
		SideA:  playerIDs(teamA),
		SideB:  playerIDs(teamB),
		Result: ranking.MatchResult{ScoreA: setsA, ScoreB: setsB},
	}, true
}

// PlayerNames maps every player ID in the matches to their display name.
func PlayerNames(matches []PadelMatch) map[string]string {
	names := make(map[string]string)
	for _, match := range matches {
		for _, team := range match.Teams {
			for _, player := range team.Players {
				if player.Name != "" {
					names[player.UserID] = player.Name
				}
			}
		}
	}
	return names
}

func playerIDs(team Team) []string {
	ids := make([]string, 0, len(team.Players))
	for _, p := range team.Players {
		ids = append(ids, p.UserID)
	}
	return ids
}
