package trade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sutariaa/fantsay-football-predictor/internal/models"
	"github.com/sutariaa/fantsay-football-predictor/internal/scoring"
	"github.com/sutariaa/fantsay-football-predictor/internal/valuation"
)

// fakeSource resolves players from a fixed roster map.
type fakeSource struct {
	players map[string]models.PlayerProjection
}

func (f *fakeSource) ResolvePlayer(name string) (models.PlayerProjection, bool) {
	p, ok := f.players[name]
	return p, ok
}

func rusher(name string, yards float64) models.PlayerProjection {
	return models.PlayerProjection{
		Name:     name,
		Position: models.PositionRB,
		Age:      25,
		ProjectedStats: models.PlayerStats{
			Rushing: &models.RushingStats{Yards: yards},
		},
	}
}

func testEvaluator() (*Evaluator, models.LeagueSettings) {
	source := &fakeSource{players: map[string]models.PlayerProjection{
		"Star Back":   rusher("Star Back", 1500),
		"Solid Back":  rusher("Solid Back", 1200),
		"Backup Back": rusher("Backup Back", 400),
	}}

	calc := scoring.NewCalculator(scoring.DefaultConfig())
	engine := valuation.NewEngine(calc, valuation.DefaultTables())

	settings := models.LeagueSettings{
		Type:        models.LeagueRedraft,
		TeamCount:   12,
		Roster:      models.DefaultRosterRequirements(),
		CurrentWeek: 1,
		SeasonYear:  2025,
	}
	return NewEvaluator(engine, source), settings
}

func TestEmptySideIsRejected(t *testing.T) {
	e, settings := testEvaluator()

	_, err := e.Evaluate(Side{}, Side{Players: []string{"Star Back"}}, settings)
	assert.ErrorIs(t, err, ErrEmptyTradeSide)

	_, err = e.Evaluate(Side{Players: []string{"Star Back"}}, Side{}, settings)
	assert.ErrorIs(t, err, ErrEmptyTradeSide)

	_, err = e.Evaluate(Side{}, Side{}, settings)
	assert.ErrorIs(t, err, ErrEmptyTradeSide)
}

func TestIdenticalSidesAreBalanced(t *testing.T) {
	e, settings := testEvaluator()

	result, err := e.Evaluate(
		Side{Players: []string{"Star Back"}},
		Side{Players: []string{"Star Back"}},
		settings,
	)
	require.NoError(t, err)

	assert.Equal(t, VerdictBalanced, result.Verdict)
	assert.Equal(t, FavoredNone, result.Favored)
	assert.Zero(t, result.Diff)
	assert.Zero(t, result.PercentDiff)
}

func TestLopsidedTradeNamesTheFavoredSide(t *testing.T) {
	e, settings := testEvaluator()

	result, err := e.Evaluate(
		Side{Players: []string{"Star Back"}},
		Side{Players: []string{"Backup Back"}},
		settings,
	)
	require.NoError(t, err)

	assert.Equal(t, VerdictSignificantFavorite, result.Verdict)
	assert.Equal(t, FavoredGiving, result.Favored)
	assert.Greater(t, result.TotalGiving, result.TotalGetting)
}

func TestSwappingSidesFlipsFavoredOnly(t *testing.T) {
	e, settings := testEvaluator()

	giving := Side{Players: []string{"Star Back"}}
	getting := Side{Players: []string{"Backup Back"}, Picks: []models.DraftPick{{Year: 2025, Round: 3, Slot: 4}}}

	forward, err := e.Evaluate(giving, getting, settings)
	require.NoError(t, err)
	reversed, err := e.Evaluate(getting, giving, settings)
	require.NoError(t, err)

	assert.Equal(t, forward.Diff, reversed.Diff)
	assert.Equal(t, forward.PercentDiff, reversed.PercentDiff)
	assert.Equal(t, forward.Verdict, reversed.Verdict)
	assert.Equal(t, forward.TotalGiving, reversed.TotalGetting)
	assert.Equal(t, forward.TotalGetting, reversed.TotalGiving)
	if forward.Favored == FavoredGiving {
		assert.Equal(t, FavoredGetting, reversed.Favored)
	}
}

func TestUnknownPlayerCountsAsZero(t *testing.T) {
	e, settings := testEvaluator()

	result, err := e.Evaluate(
		Side{Players: []string{"Star Back", "Mystery Man"}},
		Side{Players: []string{"Star Back"}},
		settings,
	)
	require.NoError(t, err)

	assert.Contains(t, result.Unresolved, "Mystery Man")
	assert.Equal(t, result.TotalGiving, result.TotalGetting)
	assert.Equal(t, VerdictBalanced, result.Verdict)
}

func TestLineItemsSumToSideTotals(t *testing.T) {
	e, settings := testEvaluator()

	result, err := e.Evaluate(
		Side{Players: []string{"Star Back", "Backup Back"}},
		Side{Players: []string{"Solid Back"}, Picks: []models.DraftPick{{Year: 2026, Round: 1, Slot: 2}}},
		settings,
	)
	require.NoError(t, err)

	var giving, getting int
	for _, item := range result.LineItems {
		if item.Giving {
			giving += item.Value
		} else {
			getting += item.Value
		}
	}
	assert.Equal(t, result.TotalGiving, giving)
	assert.Equal(t, result.TotalGetting, getting)
	require.Len(t, result.LineItems, 4)
	assert.Equal(t, AssetPick, result.LineItems[3].Kind)
	assert.Equal(t, "2026 Round 1 Pick 2", result.LineItems[3].Description)
}

func TestClassificationBands(t *testing.T) {
	cases := []struct {
		diff    int
		giving  int
		getting int
		verdict Classification
		favored FavoredSide
	}{
		{3, 103, 100, VerdictBalanced, FavoredNone},
		{8, 100, 108, VerdictFair, FavoredNone},
		{20, 120, 100, VerdictSlightFavorite, FavoredGiving},
		{40, 100, 140, VerdictSignificantFavorite, FavoredGetting},
	}

	for _, tc := range cases {
		verdict, favored := classify(tc.diff, tc.giving, tc.getting)
		assert.Equal(t, tc.verdict, verdict, "diff %d", tc.diff)
		assert.Equal(t, tc.favored, favored, "diff %d", tc.diff)
	}
}
