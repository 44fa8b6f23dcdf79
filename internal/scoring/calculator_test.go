package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sutariaa/fantsay-football-predictor/internal/models"
)

func TestEmptyStatlineScoresZero(t *testing.T) {
	calc := NewCalculator(DefaultConfig())

	total, err := calc.TotalScore(models.PlayerStats{})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestQuarterbackSeasonScore(t *testing.T) {
	calc := NewCalculator(DefaultConfig())

	stats := models.PlayerStats{
		Passing: &models.PassingStats{Yards: 4000, Touchdowns: 30, Interceptions: 10},
	}

	total, err := calc.TotalScore(stats)
	require.NoError(t, err)
	// 4000*0.04 + 30*4 + 10*(-2)
	assert.InDelta(t, 260, total, 1e-9)
}

func TestBreakdownSumsToTotal(t *testing.T) {
	calc := NewCalculator(DefaultConfig())

	stats := models.PlayerStats{
		Passing:   &models.PassingStats{Yards: 250, Touchdowns: 2},
		Rushing:   &models.RushingStats{Yards: 35, Touchdowns: 1},
		Receiving: &models.ReceivingStats{Receptions: 4, Yards: 28},
		Misc:      &models.MiscStats{FumblesLost: 1},
	}

	b, err := calc.ScoreBreakdown(stats)
	require.NoError(t, err)

	sum := b.Passing + b.Rushing + b.Receiving + b.Kicking + b.Defense + b.SpecialTeams + b.Misc
	assert.InDelta(t, sum, b.Total, 1e-9)
	assert.InDelta(t, -1, b.Misc, 1e-9)
	assert.Zero(t, b.Kicking)
}

func TestKickingMissesAreAdditivePenalties(t *testing.T) {
	calc := NewCalculator(DefaultConfig())

	stats := models.PlayerStats{
		Kicking: &models.KickingStats{
			FieldGoalsMade:   map[string]float64{"30-39": 2, "50+": 1},
			PATMade:          3,
			FieldGoalsMissed: 1,
			PATMissed:        1,
		},
	}

	total, err := calc.TotalScore(stats)
	require.NoError(t, err)
	// 2*3 + 1*5 + 3*1 + 1*(-1) + 1*(-1)
	assert.InDelta(t, 12, total, 1e-9)
}

func TestPointsAllowedBuckets(t *testing.T) {
	calc := NewCalculator(DefaultConfig())

	cases := []struct {
		allowed int
		want    float64
	}{
		{0, 10},
		{1, 7},
		{6, 7},
		{7, 4},
		{13, 4},
		{14, 2},
		{20, 2},
		{21, 1},
		{27, 1},
		{28, -1},
		{34, -1},
		{35, -4},
		{52, -4},
	}

	for _, tc := range cases {
		score, err := calc.DefenseScore(&models.DefenseStats{PointsAllowed: tc.allowed})
		require.NoError(t, err)
		assert.InDelta(t, tc.want, score, 1e-9, "points allowed %d", tc.allowed)
	}
}

func TestNegativePointsAllowedIsAnError(t *testing.T) {
	calc := NewCalculator(DefaultConfig())

	_, err := calc.DefenseScore(&models.DefenseStats{PointsAllowed: -3})
	assert.ErrorIs(t, err, ErrNegativePointsAllowed)

	_, err = calc.TotalScore(models.PlayerStats{Defense: &models.DefenseStats{PointsAllowed: -3}})
	assert.ErrorIs(t, err, ErrNegativePointsAllowed)
}

func TestSpecialTeamsUnitAndPlayerEventsBothCount(t *testing.T) {
	calc := NewCalculator(DefaultConfig())

	score := calc.SpecialTeamsScore(&models.SpecialTeamsStats{
		UnitTouchdowns:   1,
		PlayerTouchdowns: 1,
	})
	assert.InDelta(t, 12, score, 1e-9)
}

func TestScoringFollowsConfigEdits(t *testing.T) {
	cfg := DefaultConfig()
	calc := NewCalculator(cfg)

	stats := models.PlayerStats{Receiving: &models.ReceivingStats{Receptions: 10}}

	total, err := calc.TotalScore(stats)
	require.NoError(t, err)
	assert.InDelta(t, 10, total, 1e-9)

	require.NoError(t, cfg.Update(CategoryReceiving, "receptions", 0.5))

	total, err = calc.TotalScore(stats)
	require.NoError(t, err)
	assert.InDelta(t, 5, total, 1e-9)
}

func TestFieldGoalRange(t *testing.T) {
	assert.Equal(t, "0-19", FieldGoalRange(12))
	assert.Equal(t, "20-29", FieldGoalRange(20))
	assert.Equal(t, "30-39", FieldGoalRange(39))
	assert.Equal(t, "40-49", FieldGoalRange(45))
	assert.Equal(t, "50+", FieldGoalRange(61))
}
