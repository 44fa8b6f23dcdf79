package service

import (
	"fmt"
	"strings"

	"github.com/sutariaa/fantsay-football-predictor/internal/refdata"
)

const weeksPerSeason = 18

// Predictions renders the predicted matchups for one week, most
// lopsided games first. The favorite team's game, if any, is flagged.
func (s *CompanionService) Predictions(week int) (string, error) {
	if week < 1 || week > weeksPerSeason {
		return "", fmt.Errorf("week must be between 1 and %d", weeksPerSeason)
	}

	matchups := s.predictor.WeekMatchups(week)
	favorite := s.repo.Favorite()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🔮 *Week %d Predictions*\n\n", week))

	if len(matchups) == 0 {
		sb.WriteString("No games scheduled for this week.")
		return sb.String(), nil
	}

	for i, m := range matchups {
		sb.WriteString(fmt.Sprintf("*%s* @ *%s* — %d%% - %d%%\n", m.AwayTeam, m.HomeTeam, m.AwayWinProb, m.HomeWinProb))
		sb.WriteString(fmt.Sprintf("%s by %d • %d%% favorite • %s\n", m.Favorite, m.Spread, m.FavoriteProb, confidenceLabel(m.FavoriteProb)))
		if favorite != "" && (m.HomeTeam == favorite || m.AwayTeam == favorite) {
			if m.HomeTeam == favorite {
				sb.WriteString(fmt.Sprintf("🏟 Your team: %d%% chance to win at home\n", m.HomeWinProb))
			} else {
				sb.WriteString(fmt.Sprintf("🛫 Your team: %d%% chance to win on the road\n", m.AwayWinProb))
			}
		}
		if i < len(matchups)-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String(), nil
}

// SeasonOutlook renders the ranked expected-win projection table.
func (s *CompanionService) SeasonOutlook() (string, error) {
	projections := s.predictor.SeasonProjection()
	favorite := s.repo.Favorite()

	var sb strings.Builder
	sb.WriteString("📈 *Season Projections*\n\n")

	for _, p := range projections {
		marker := ""
		if p.Team == favorite {
			marker = " ⭐"
		}
		losses := float64(p.GamesScheduled) - p.ProjectedWins
		sb.WriteString(fmt.Sprintf("%d. *%s* %.1f-%.1f (rating %d)%s\n", p.Rank, p.Team, p.ProjectedWins, losses, p.Rating, marker))
	}

	return sb.String(), nil
}

// TeamSchedule renders the favorite team's schedule with a win
// probability per game. An explicit abbreviation overrides the
// favorite.
func (s *CompanionService) TeamSchedule(abbr string) (string, error) {
	team := strings.ToUpper(strings.TrimSpace(abbr))
	if team == "" {
		team = s.repo.Favorite()
	}
	if team == "" {
		return "", fmt.Errorf("no team selected; use /team first")
	}

	schedule, ok := refdata.Schedule2025[team]
	if !ok {
		return "", fmt.Errorf("no schedule for team %q", team)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📅 *%s Schedule*\n\n", team))

	for _, g := range schedule {
		if g.IsBye() {
			sb.WriteString(fmt.Sprintf("Week %d: BYE\n", g.Week))
			continue
		}
		prob := s.predictor.WinProbabilityFor(team, g.Opponent, g.Home)
		venue := "vs"
		if !g.Home {
			venue = "@"
		}
		sb.WriteString(fmt.Sprintf("Week %d: %s %s — %.0f%% to win\n", g.Week, venue, g.Opponent, prob))
	}

	return sb.String(), nil
}

func confidenceLabel(favoriteProb int) string {
	switch {
	case favoriteProb >= 80:
		return "High Confidence"
	case favoriteProb >= 65:
		return "Moderate Confidence"
	case favoriteProb >= 55:
		return "Low Confidence"
	default:
		return "Toss-up"
	}
}
