package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sutariaa/fantsay-football-predictor/internal/models"
	"github.com/sutariaa/fantsay-football-predictor/internal/predictor"
	"github.com/sutariaa/fantsay-football-predictor/internal/refdata"
	"github.com/sutariaa/fantsay-football-predictor/internal/repository/memory"
	"github.com/sutariaa/fantsay-football-predictor/internal/scoring"
)

// stubAPI serves a fixed directory without touching the network.
type stubAPI struct {
	players []models.PlayerProjection
}

func (s *stubAPI) GetPlayerDirectory() ([]models.PlayerProjection, error) {
	return s.players, nil
}

func testService() *CompanionService {
	api := &stubAPI{players: []models.PlayerProjection{
		{Name: "Patrick Mahomes", Position: models.PositionQB, Team: "KC", Age: 30},
		{Name: "Bijan Robinson", Position: models.PositionRB, Team: "ATL", Age: 23},
		{Name: "Justin Jefferson", Position: models.PositionWR, Team: "MIN", Age: 26},
	}}

	repo := memory.NewRepository(models.LeagueSettings{
		Type:        models.LeagueRedraft,
		TeamCount:   12,
		Roster:      models.DefaultRosterRequirements(),
		CurrentWeek: 1,
		SeasonYear:  2025,
	})
	pred := predictor.New(refdata.Ratings, refdata.Schedule2025, refdata.DefaultRating)
	return NewCompanionService(api, repo, pred, scoring.DefaultConfig())
}

func TestResolvePlayerToleratesTypos(t *testing.T) {
	s := testService()

	p, ok := s.ResolvePlayer("patrick mahomes")
	require.True(t, ok)
	assert.Equal(t, "Patrick Mahomes", p.Name)

	p, ok = s.ResolvePlayer("Patrik Mahomes")
	require.True(t, ok)
	assert.Equal(t, "Patrick Mahomes", p.Name)

	_, ok = s.ResolvePlayer("Zebulon Quicksilver")
	assert.False(t, ok)
}

func TestDirectoryAttachesBaselineProjections(t *testing.T) {
	s := testService()

	p, ok := s.ResolvePlayer("Bijan Robinson")
	require.True(t, ok)
	require.NotNil(t, p.ProjectedStats.Rushing)
	assert.Positive(t, p.ProjectedStats.Rushing.Yards)
}

func TestAnalyzeTradeParsesPlayersAndPicks(t *testing.T) {
	s := testService()

	report, err := s.AnalyzeTrade("Bijan Robinson for Justin Jefferson, 2026 Round 1 Pick 5")
	require.NoError(t, err)

	assert.Contains(t, report, "Bijan Robinson")
	assert.Contains(t, report, "2026 Round 1 Pick 5")
	assert.Contains(t, report, "Trade Verdict")
}

func TestAnalyzeTradeRequiresTheForKeyword(t *testing.T) {
	s := testService()

	_, err := s.AnalyzeTrade("Bijan Robinson and Justin Jefferson")
	assert.Error(t, err)
}

func TestAnalyzeTradeRecordsHistory(t *testing.T) {
	s := testService()

	history, err := s.TradeHistory()
	require.NoError(t, err)
	assert.Contains(t, history, "No trades analyzed yet")

	_, err = s.AnalyzeTrade("Bijan Robinson for Justin Jefferson, 2026 Round 1 Pick 5")
	require.NoError(t, err)

	history, err = s.TradeHistory()
	require.NoError(t, err)
	assert.Contains(t, history, "Bijan Robinson")
	assert.Contains(t, history, "Justin Jefferson")
	assert.Contains(t, history, "2026 Round 1 Pick 5")
}

func TestSelectTeamByNameAndAbbreviation(t *testing.T) {
	s := testService()

	reply, err := s.SelectTeam("kc")
	require.NoError(t, err)
	assert.Contains(t, reply, "Kansas City Chiefs")

	reply, err = s.SelectTeam("Kansas City Chiefs")
	require.NoError(t, err)
	assert.Contains(t, reply, "KC")

	_, err = s.SelectTeam("Moonbase Marauders")
	assert.Error(t, err)
}

func TestUpdateLeagueSettingValidation(t *testing.T) {
	s := testService()

	_, err := s.UpdateLeagueSetting("week", "25")
	assert.Error(t, err)

	_, err = s.UpdateLeagueSetting("type", "superduper")
	assert.Error(t, err)

	_, err = s.UpdateLeagueSetting("week", "9")
	require.NoError(t, err)
	assert.Equal(t, 9, s.CurrentWeek())
}
