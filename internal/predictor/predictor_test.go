package predictor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sutariaa/fantsay-football-predictor/internal/models"
	"github.com/sutariaa/fantsay-football-predictor/internal/refdata"
)

func testPredictor() *Predictor {
	ratings := map[string]int{
		"AAA": 90,
		"BBB": 80,
		"CCC": 70,
		"DDD": 10,
	}
	schedule := map[string][]models.ScheduledGame{
		"AAA": {
			{Week: 1, Opponent: "BBB", Home: true},
			{Week: 2, Opponent: models.ByeOpponent},
			{Week: 3, Opponent: "CCC", Home: false},
		},
		"BBB": {
			{Week: 1, Opponent: "AAA", Home: false},
			{Week: 2, Opponent: "CCC", Home: true},
			{Week: 3, Opponent: "DDD", Home: true},
		},
		"CCC": {
			{Week: 1, Opponent: "DDD", Home: true},
			{Week: 2, Opponent: "BBB", Home: false},
			{Week: 3, Opponent: "AAA", Home: true},
		},
		"DDD": {
			{Week: 1, Opponent: "CCC", Home: false},
			{Week: 2, Opponent: models.ByeOpponent},
			{Week: 3, Opponent: "BBB", Home: false},
		},
	}
	return New(ratings, schedule, refdata.DefaultRating)
}

func TestHomeFieldBreaksEvenMatchups(t *testing.T) {
	p := New(map[string]int{"AAA": 80, "BBB": 80}, nil, refdata.DefaultRating)

	prob := p.WinProbability("AAA", "BBB")
	// Equal ratings, so the home side wins only the home-field edge.
	assert.InDelta(t, 50+HomeFieldAdvantage*PointsToProbability, prob, 1e-9)
}

func TestProbabilitiesAreComplementary(t *testing.T) {
	p := testPredictor()

	home := p.WinProbabilityFor("BBB", "CCC", true)
	away := p.WinProbabilityFor("CCC", "BBB", false)
	assert.InDelta(t, 100, home+away, 1e-9)
}

func TestProbabilityClamp(t *testing.T) {
	p := testPredictor()

	// A 80-point rating gap blows past the raw formula's range.
	assert.InDelta(t, 95, p.WinProbability("AAA", "DDD"), 1e-9)
	assert.InDelta(t, 5, p.WinProbability("DDD", "AAA"), 1e-9)
}

func TestUnknownTeamGetsDefaultRating(t *testing.T) {
	p := testPredictor()

	// ZZZ is unrated, so it plays as a 70 and mirrors CCC exactly.
	assert.InDelta(t, p.WinProbability("CCC", "AAA"), p.WinProbability("ZZZ", "AAA"), 1e-9)
}

func TestPredictGameSpreadAndFavorite(t *testing.T) {
	p := testPredictor()

	m := p.PredictGame(1, "AAA", "BBB")
	assert.Equal(t, "AAA", m.Favorite)
	assert.Equal(t, m.HomeWinProb, m.FavoriteProb)
	assert.Equal(t, 100, m.HomeWinProb+m.AwayWinProb)
	// prob 59.1 -> spread round((59.1-50)/3.5) = 3
	assert.Equal(t, 3, m.Spread)
}

func TestWeekMatchupsDeduplicatesAndSkipsByes(t *testing.T) {
	p := testPredictor()

	week1 := p.WeekMatchups(1)
	require.Len(t, week1, 2)

	week2 := p.WeekMatchups(2)
	require.Len(t, week2, 1)
	assert.Equal(t, "BBB", week2[0].HomeTeam)
	assert.Equal(t, "CCC", week2[0].AwayTeam)
}

func TestWeekMatchupsOrderedMostLopsidedFirst(t *testing.T) {
	p := testPredictor()

	matchups := p.WeekMatchups(1)
	require.Len(t, matchups, 2)
	for i := 1; i < len(matchups); i++ {
		assert.GreaterOrEqual(t, matchups[i-1].FavoriteProb, matchups[i].FavoriteProb)
	}
	// CCC over DDD is the blowout of the week.
	assert.Equal(t, "CCC", matchups[0].HomeTeam)
}

func TestSeasonProjectionRanksByExpectedWins(t *testing.T) {
	p := testPredictor()

	projections := p.SeasonProjection()
	require.Len(t, projections, 4)

	for i, proj := range projections {
		assert.Equal(t, i+1, proj.Rank)
		if i > 0 {
			assert.GreaterOrEqual(t, projections[i-1].ProjectedWins, proj.ProjectedWins)
		}
	}

	// Byes don't count as scheduled games.
	for _, proj := range projections {
		if proj.Team == "AAA" {
			assert.Equal(t, 2, proj.GamesScheduled)
		}
	}
	assert.Equal(t, "DDD", projections[3].Team)
}

func TestFullSeasonScheduleIsConsistent(t *testing.T) {
	p := New(refdata.Ratings, refdata.Schedule2025, refdata.DefaultRating)

	for week := 1; week <= 18; week++ {
		matchups := p.WeekMatchups(week)
		seen := make(map[string]bool)
		for _, m := range matchups {
			assert.False(t, seen[m.HomeTeam], "week %d: %s listed twice", week, m.HomeTeam)
			assert.False(t, seen[m.AwayTeam], "week %d: %s listed twice", week, m.AwayTeam)
			seen[m.HomeTeam] = true
			seen[m.AwayTeam] = true
			assert.GreaterOrEqual(t, m.FavoriteProb, 50)
			assert.LessOrEqual(t, m.FavoriteProb, 95)
		}
	}
}
