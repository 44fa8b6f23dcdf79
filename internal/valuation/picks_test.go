package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sutariaa/fantsay-football-predictor/internal/models"
)

func TestPickCurveIsNonIncreasing(t *testing.T) {
	e := testEngine()

	prev := e.pickBaseValue(1)
	for overall := 2; overall <= 200; overall++ {
		value := e.pickBaseValue(overall)
		assert.LessOrEqual(t, value, prev, "overall %d", overall)
		prev = value
	}
}

func TestLatePicksFloorAtOne(t *testing.T) {
	e := testEngine()
	assert.Equal(t, 1.0, e.pickBaseValue(150))
}

func TestFirstOverallIsTheMostValuable(t *testing.T) {
	e := testEngine()
	settings := testSettings(models.LeagueRedraft)
	settings.CurrentWeek = 0 // preseason

	first := e.PickValue(models.DraftPick{Year: 2025, Round: 1, Slot: 1}, settings)
	for round := 1; round <= 15; round++ {
		for slot := 1; slot <= settings.TeamCount; slot++ {
			value := e.PickValue(models.DraftPick{Year: 2025, Round: round, Slot: slot}, settings)
			assert.LessOrEqual(t, value, first)
		}
	}
	assert.Equal(t, 110, first)
}

func TestDynastyPremiumOnPicks(t *testing.T) {
	e := testEngine()
	pick := models.DraftPick{Year: 2025, Round: 1, Slot: 1}

	redraft := e.PickValue(pick, testSettings(models.LeagueRedraft))
	keeper := e.PickValue(pick, testSettings(models.LeagueKeeper))
	dynasty := e.PickValue(pick, testSettings(models.LeagueDynasty))

	assert.Greater(t, keeper, redraft)
	assert.Greater(t, dynasty, keeper)
}

func TestFuturePicksDepreciate(t *testing.T) {
	e := testEngine()
	settings := testSettings(models.LeagueDynasty)

	current := e.PickValue(models.DraftPick{Year: 2025, Round: 1, Slot: 1}, settings)
	next := e.PickValue(models.DraftPick{Year: 2026, Round: 1, Slot: 1}, settings)
	later := e.PickValue(models.DraftPick{Year: 2027, Round: 1, Slot: 1}, settings)

	assert.Greater(t, current, next)
	assert.Greater(t, next, later)
}

func TestRedraftPicksDecayDuringSeason(t *testing.T) {
	e := testEngine()
	pick := models.DraftPick{Year: 2025, Round: 1, Slot: 1}

	week1 := testSettings(models.LeagueRedraft)
	week10 := testSettings(models.LeagueRedraft)
	week10.CurrentWeek = 10
	week18 := testSettings(models.LeagueRedraft)
	week18.CurrentWeek = 18

	assert.Greater(t, e.PickValue(pick, week1), e.PickValue(pick, week10))
	// Decay floors at 40% of the original value.
	assert.Equal(t, 44, e.PickValue(pick, week18))
}

func TestDeepFuturePickRetainsTokenValue(t *testing.T) {
	e := testEngine()
	settings := testSettings(models.LeagueDynasty)

	value := e.PickValue(models.DraftPick{Year: 2029, Round: 10, Slot: 12}, settings)
	assert.GreaterOrEqual(t, value, 1)
	assert.LessOrEqual(t, value, 3)
}

func TestInvalidPickIsWorthless(t *testing.T) {
	e := testEngine()
	settings := testSettings(models.LeagueRedraft)

	assert.Zero(t, e.PickValue(models.DraftPick{Year: 2025, Round: 0, Slot: 0}, settings))
}

func TestParsePickDescriptorForms(t *testing.T) {
	cases := []struct {
		input string
		want  models.DraftPick
	}{
		{"Round 1 Pick 3", models.DraftPick{Year: 2025, Round: 1, Slot: 3}},
		{"2026 Round 2 Pick 5", models.DraftPick{Year: 2026, Round: 2, Slot: 5}},
		{"round 12 pick 1", models.DraftPick{Year: 2025, Round: 12, Slot: 1}},
		{"2.05", models.DraftPick{Year: 2025, Round: 2, Slot: 5}},
		{"2027 3.11", models.DraftPick{Year: 2027, Round: 3, Slot: 11}},
		{"  1.01  ", models.DraftPick{Year: 2025, Round: 1, Slot: 1}},
	}

	for _, tc := range cases {
		pick, err := ParsePickDescriptor(tc.input, 2025)
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, pick, "input %q", tc.input)
	}
}

func TestParsePickDescriptorRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "first rounder", "round pick", "1..2", "round 1", "pick 4"} {
		_, err := ParsePickDescriptor(input, 2025)
		assert.ErrorIs(t, err, ErrInvalidPickDescriptor, "input %q", input)
	}
}

func TestPickTiming(t *testing.T) {
	pick := models.DraftPick{Year: 2025, Round: 1, Slot: 1}
	assert.Equal(t, models.PickCurrent, pick.Timing(2025))

	pick.Year = 2026
	assert.Equal(t, models.PickNext, pick.Timing(2025))

	pick.Year = 2028
	assert.Equal(t, models.PickFuture, pick.Timing(2025))
}
