package predictor

import (
	"math"
	"sort"

	"github.com/sutariaa/fantsay-football-predictor/internal/models"
)

const (
	// HomeFieldAdvantage is the rating bonus granted to the home side.
	HomeFieldAdvantage = 3.0
	// PointsToProbability converts one rating point of edge into win
	// probability percent.
	PointsToProbability = 0.7
	// SpreadDivisor converts favorite probability above 50 into a point
	// spread.
	SpreadDivisor = 3.5

	minProbability = 5
	maxProbability = 95
)

// Predictor derives win probabilities, weekly matchups and season win
// projections from a static team rating table and a season schedule.
// Both tables are injected so tests can substitute alternates.
type Predictor struct {
	ratings       map[string]int
	schedule      map[string][]models.ScheduledGame
	defaultRating int
}

func New(ratings map[string]int, schedule map[string][]models.ScheduledGame, defaultRating int) *Predictor {
	return &Predictor{
		ratings:       ratings,
		schedule:      schedule,
		defaultRating: defaultRating,
	}
}

func (p *Predictor) rating(team string) float64 {
	if r, ok := p.ratings[team]; ok {
		return float64(r)
	}
	return float64(p.defaultRating)
}

// WinProbability returns the home side's win probability in percent,
// clamped to [5, 95] so no matchup is ever treated as certain.
func (p *Predictor) WinProbability(home, away string) float64 {
	diff := (p.rating(home) + HomeFieldAdvantage) - p.rating(away)
	prob := 50 + diff*PointsToProbability
	return math.Max(minProbability, math.Min(maxProbability, prob))
}

// WinProbabilityFor returns the probability that team beats opponent
// given where the game is played.
func (p *Predictor) WinProbabilityFor(team, opponent string, home bool) float64 {
	if home {
		return p.WinProbability(team, opponent)
	}
	return 100 - p.WinProbability(opponent, team)
}

// PredictGame builds the full matchup prediction for one game.
func (p *Predictor) PredictGame(week int, home, away string) models.Matchup {
	homeProb := p.WinProbability(home, away)

	favorite := away
	if homeProb > 50 {
		favorite = home
	}
	favoriteProb := math.Max(homeProb, 100-homeProb)

	return models.Matchup{
		Week:         week,
		HomeTeam:     home,
		AwayTeam:     away,
		HomeWinProb:  int(math.Round(homeProb)),
		AwayWinProb:  int(math.Round(100 - homeProb)),
		Favorite:     favorite,
		FavoriteProb: int(math.Round(favoriteProb)),
		Spread:       int(math.Round((favoriteProb - 50) / SpreadDivisor)),
	}
}

// WeekMatchups produces one matchup per unique team pair scheduled for
// the week, bye weeks skipped, ordered most lopsided first.
func (p *Predictor) WeekMatchups(week int) []models.Matchup {
	teams := make([]string, 0, len(p.schedule))
	for team := range p.schedule {
		teams = append(teams, team)
	}
	sort.Strings(teams)

	processed := make(map[string]bool, len(teams))
	var matchups []models.Matchup

	for _, team := range teams {
		if processed[team] {
			continue
		}
		game, ok := gameForWeek(p.schedule[team], week)
		if !ok || game.IsBye() || processed[game.Opponent] {
			continue
		}

		home, away := team, game.Opponent
		if !game.Home {
			home, away = game.Opponent, team
		}
		matchups = append(matchups, p.PredictGame(week, home, away))

		processed[team] = true
		processed[game.Opponent] = true
	}

	sort.SliceStable(matchups, func(i, j int) bool {
		if matchups[i].FavoriteProb != matchups[j].FavoriteProb {
			return matchups[i].FavoriteProb > matchups[j].FavoriteProb
		}
		return matchups[i].HomeTeam < matchups[j].HomeTeam
	})
	return matchups
}

func gameForWeek(schedule []models.ScheduledGame, week int) (models.ScheduledGame, bool) {
	for _, g := range schedule {
		if g.Week == week {
			return g, true
		}
	}
	return models.ScheduledGame{}, false
}

// SeasonProjection sums per-game win probabilities into an expected win
// total for every rated team and ranks the table by expected wins.
func (p *Predictor) SeasonProjection() []models.TeamProjection {
	teams := make([]string, 0, len(p.ratings))
	for team := range p.ratings {
		teams = append(teams, team)
	}
	sort.Strings(teams)

	projections := make([]models.TeamProjection, 0, len(teams))
	for _, team := range teams {
		var wins float64
		var games int
		for _, g := range p.schedule[team] {
			if g.IsBye() {
				continue
			}
			wins += p.WinProbabilityFor(team, g.Opponent, g.Home) / 100
			games++
		}
		projections = append(projections, models.TeamProjection{
			Team:           team,
			Rating:         int(p.rating(team)),
			ProjectedWins:  math.Round(wins*10) / 10,
			GamesScheduled: games,
		})
	}

	sort.SliceStable(projections, func(i, j int) bool {
		if projections[i].ProjectedWins != projections[j].ProjectedWins {
			return projections[i].ProjectedWins > projections[j].ProjectedWins
		}
		return projections[i].Team < projections[j].Team
	})
	for i := range projections {
		projections[i].Rank = i + 1
	}
	return projections
}
