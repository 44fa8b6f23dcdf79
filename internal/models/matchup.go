package models

// ByeOpponent marks a scheduled week with no game.
const ByeOpponent = "BYE"

// Team is static NFL team reference data.
type Team struct {
	Name string
	Abbr string
}

// ScheduledGame is one entry in a team's season schedule. Opponent is a
// team abbreviation, or ByeOpponent for a bye week (Home is meaningless
// then).
type ScheduledGame struct {
	Week     int
	Opponent string
	Home     bool
}

func (g ScheduledGame) IsBye() bool {
	return g.Opponent == ByeOpponent
}

// Matchup is one predicted game. Probabilities are rounded percentages
// that sum to 100; Spread is the derived point spread, always
// non-negative and attributed to the favorite.
type Matchup struct {
	Week         int
	HomeTeam     string
	AwayTeam     string
	HomeWinProb  int
	AwayWinProb  int
	Favorite     string
	FavoriteProb int
	Spread       int
}

// TeamProjection is one row of the season win-projection table.
type TeamProjection struct {
	Rank           int
	Team           string
	Rating         int
	ProjectedWins  float64
	GamesScheduled int
}
