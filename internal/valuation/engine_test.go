package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sutariaa/fantsay-football-predictor/internal/models"
	"github.com/sutariaa/fantsay-football-predictor/internal/scoring"
)

func testSettings(leagueType models.LeagueType) models.LeagueSettings {
	return models.LeagueSettings{
		Type:        leagueType,
		TeamCount:   12,
		Roster:      models.DefaultRosterRequirements(),
		CurrentWeek: 1,
		SeasonYear:  2025,
	}
}

func testEngine() *Engine {
	calc := scoring.NewCalculator(scoring.DefaultConfig())
	return NewEngine(calc, DefaultTables())
}

func runningBack(age int, status models.InjuryStatus) models.PlayerProjection {
	return models.PlayerProjection{
		Name:         "Test Back",
		Position:     models.PositionRB,
		Age:          age,
		InjuryStatus: status,
		ProjectedStats: models.PlayerStats{
			Rushing: &models.RushingStats{Yards: 1200, Touchdowns: 10},
		},
	}
}

func TestYoungBackOutvaluesOldBackInDynasty(t *testing.T) {
	e := testEngine()
	settings := testSettings(models.LeagueDynasty)

	young, err := e.PlayerValue(runningBack(23, models.InjuryHealthy), settings)
	require.NoError(t, err)
	old, err := e.PlayerValue(runningBack(31, models.InjuryHealthy), settings)
	require.NoError(t, err)

	assert.Greater(t, young, old)
}

func TestAgeBarelyMattersInRedraft(t *testing.T) {
	e := testEngine()
	settings := testSettings(models.LeagueRedraft)

	young, err := e.PlayerValue(runningBack(23, models.InjuryHealthy), settings)
	require.NoError(t, err)
	old, err := e.PlayerValue(runningBack(29, models.InjuryHealthy), settings)
	require.NoError(t, err)

	assert.Equal(t, young, old)
}

func TestUnknownAgeIsNeutral(t *testing.T) {
	e := testEngine()
	settings := testSettings(models.LeagueDynasty)

	unknown, err := e.PlayerValue(runningBack(0, models.InjuryHealthy), settings)
	require.NoError(t, err)
	// Ages 26-28 sit on the curve's neutral band.
	neutral, err := e.PlayerValue(runningBack(27, models.InjuryHealthy), settings)
	require.NoError(t, err)

	assert.Equal(t, neutral, unknown)
}

func TestInjuryDiscountDeepensLateInSeason(t *testing.T) {
	e := testEngine()

	early := testSettings(models.LeagueRedraft)
	early.CurrentWeek = 2
	mid := testSettings(models.LeagueRedraft)
	mid.CurrentWeek = 8
	late := testSettings(models.LeagueRedraft)
	late.CurrentWeek = 14

	player := runningBack(25, models.InjuryOut)

	earlyValue, err := e.PlayerValue(player, early)
	require.NoError(t, err)
	midValue, err := e.PlayerValue(player, mid)
	require.NoError(t, err)
	lateValue, err := e.PlayerValue(player, late)
	require.NoError(t, err)

	assert.Greater(t, earlyValue, midValue)
	assert.Greater(t, midValue, lateValue)
}

func TestHealthyPlayerIgnoresSeasonTiming(t *testing.T) {
	e := testEngine()

	early := testSettings(models.LeagueRedraft)
	early.CurrentWeek = 1
	late := testSettings(models.LeagueRedraft)
	late.CurrentWeek = 16

	player := runningBack(25, models.InjuryHealthy)

	earlyValue, err := e.PlayerValue(player, early)
	require.NoError(t, err)
	lateValue, err := e.PlayerValue(player, late)
	require.NoError(t, err)

	assert.Equal(t, earlyValue, lateValue)
}

func TestInjuryHurtsLessInDynasty(t *testing.T) {
	e := testEngine()
	player := runningBack(27, models.InjuryIR)

	redraft, err := e.PlayerValue(player, testSettings(models.LeagueRedraft))
	require.NoError(t, err)
	dynasty, err := e.PlayerValue(player, testSettings(models.LeagueDynasty))
	require.NoError(t, err)

	assert.Greater(t, dynasty, redraft)
}

func TestKeeperBonusIsCapped(t *testing.T) {
	e := testEngine()

	noKeepers := testSettings(models.LeagueKeeper)
	withKeepers := testSettings(models.LeagueKeeper)
	withKeepers.KeeperCount = 3

	// Age 28 is the keeper curve's neutral band, so the keeper count
	// only moves the value through the likelihood bonus.
	player := runningBack(28, models.InjuryHealthy)

	base, err := e.PlayerValue(player, noKeepers)
	require.NoError(t, err)
	boosted, err := e.PlayerValue(player, withKeepers)
	require.NoError(t, err)

	assert.Greater(t, boosted, base)
	assert.LessOrEqual(t, float64(boosted), float64(base)*1.15+1)
}

func TestLargerLeaguesInflateValue(t *testing.T) {
	e := testEngine()

	twelve := testSettings(models.LeagueRedraft)
	eighteen := testSettings(models.LeagueRedraft)
	eighteen.TeamCount = 18

	player := runningBack(25, models.InjuryHealthy)

	smallLeague, err := e.PlayerValue(player, twelve)
	require.NoError(t, err)
	bigLeague, err := e.PlayerValue(player, eighteen)
	require.NoError(t, err)

	assert.Greater(t, bigLeague, smallLeague)
}

func TestUnlistedLeagueSizeIsNeutral(t *testing.T) {
	e := testEngine()
	assert.Equal(t, 1.0, e.scarcityMultiplier(11, models.PositionRB))
	assert.Equal(t, 1.0, e.scarcityMultiplier(12, models.PositionRB))
	assert.Equal(t, 1.24, e.scarcityMultiplier(18, models.PositionRB))
}

func TestFlexNeverCountsForQuarterbacks(t *testing.T) {
	e := testEngine()

	noFlex := testSettings(models.LeagueRedraft)
	noFlex.Roster.Flex = 0
	threeFlex := testSettings(models.LeagueRedraft)
	threeFlex.Roster.Flex = 3

	assert.Equal(t, e.demandMultiplier(models.PositionQB, noFlex), e.demandMultiplier(models.PositionQB, threeFlex))
	assert.Greater(t, e.demandMultiplier(models.PositionRB, threeFlex), e.demandMultiplier(models.PositionRB, noFlex))
}

func TestValueNeverNegative(t *testing.T) {
	e := testEngine()
	settings := testSettings(models.LeagueRedraft)

	player := models.PlayerProjection{
		Name:     "Fumble Machine",
		Position: models.PositionRB,
		Age:      25,
		ProjectedStats: models.PlayerStats{
			Misc: &models.MiscStats{FumblesLost: 20},
		},
	}

	value, err := e.PlayerValue(player, settings)
	require.NoError(t, err)
	assert.Zero(t, value)
}

func TestNegativePointsAllowedPropagates(t *testing.T) {
	e := testEngine()
	settings := testSettings(models.LeagueRedraft)

	player := models.PlayerProjection{
		Name:     "Bad Data D",
		Position: models.PositionDST,
		ProjectedStats: models.PlayerStats{
			Defense: &models.DefenseStats{PointsAllowed: -1},
		},
	}

	_, err := e.PlayerValue(player, settings)
	assert.ErrorIs(t, err, scoring.ErrNegativePointsAllowed)
}
