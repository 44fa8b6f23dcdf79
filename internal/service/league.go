package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sutariaa/fantsay-football-predictor/internal/models"
	"github.com/sutariaa/fantsay-football-predictor/internal/scoring"
)

// ScoringSummary renders the active scoring coefficients per category.
func (s *CompanionService) ScoringSummary() (string, error) {
	var sb strings.Builder
	sb.WriteString("🧮 *Scoring Settings*\n\n")

	if s.scoring.Passing != nil {
		p := s.scoring.Passing
		sb.WriteString(fmt.Sprintf("*Passing:* %.2f/yd, %g/TD, %g/2pt, %g/INT\n", p.Yards, p.Touchdowns, p.TwoPointConversions, p.Interceptions))
	}
	if s.scoring.Rushing != nil {
		r := s.scoring.Rushing
		sb.WriteString(fmt.Sprintf("*Rushing:* %.2f/yd, %g/TD, %g/2pt\n", r.Yards, r.Touchdowns, r.TwoPointConversions))
	}
	if s.scoring.Receiving != nil {
		r := s.scoring.Receiving
		sb.WriteString(fmt.Sprintf("*Receiving:* %g/rec, %.2f/yd, %g/TD\n", r.Receptions, r.Yards, r.Touchdowns))
	}
	if s.scoring.Kicking != nil {
		k := s.scoring.Kicking
		sb.WriteString(fmt.Sprintf("*Kicking:* PAT %g, miss %g/%g, FG ", k.PATMade, k.FieldGoalMissed, k.PATMissed))
		for i, rng := range scoring.FieldGoalRanges {
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprintf("%s:%g", rng, k.FieldGoals[rng]))
		}
		sb.WriteString("\n")
	}
	if s.scoring.Defense != nil {
		d := s.scoring.Defense
		sb.WriteString(fmt.Sprintf("*Defense:* %g/TD, %g/sack, %g/INT, PA ", d.Touchdowns, d.Sacks, d.Interceptions))
		for i, rng := range scoring.PointsAllowedRanges {
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprintf("%s:%g", rng, d.PointsAllowed[rng]))
		}
		sb.WriteString("\n")
	}
	if !s.scoring.Valid() {
		sb.WriteString("\n⚠️ Configuration is missing required categories.")
	}
	return sb.String(), nil
}

// UpdateScoringRule edits a single coefficient, leaving the rest of
// the category untouched.
func (s *CompanionService) UpdateScoringRule(category, rule string, value float64) (string, error) {
	if err := s.scoring.Update(scoring.Category(strings.ToLower(category)), rule, value); err != nil {
		return "", fmt.Errorf("could not update scoring: %w", err)
	}
	return fmt.Sprintf("Set %s %s to %g.", strings.ToLower(category), rule, value), nil
}

// ApplyPreset replaces the scoring config with a named preset.
func (s *CompanionService) ApplyPreset(key string) (string, error) {
	preset, ok := scoring.PresetByKey(strings.TrimSpace(key))
	if !ok {
		keys := make([]string, 0, len(scoring.Presets()))
		for _, p := range scoring.Presets() {
			keys = append(keys, p.Key)
		}
		return "", fmt.Errorf("unknown preset %q; available: %s", key, strings.Join(keys, ", "))
	}
	*s.scoring = *preset.Config.Clone()
	return fmt.Sprintf("Scoring set to *%s*.", preset.Name), nil
}

// ExportScoring serializes the active scoring config for download or
// copying into another league.
func (s *CompanionService) ExportScoring() (string, error) {
	text, err := s.scoring.Export()
	if err != nil {
		return "", fmt.Errorf("error exporting scoring config: %w", err)
	}
	return text, nil
}

// ImportScoring replaces the scoring config from serialized text,
// keeping the current config on a parse failure.
func (s *CompanionService) ImportScoring(text string) (string, error) {
	if err := s.scoring.Import(text); err != nil {
		return "", fmt.Errorf("could not import scoring config: %w", err)
	}
	return "Scoring configuration imported.", nil
}

func (s *CompanionService) ResetScoring() string {
	s.scoring.Reset()
	return "Scoring restored to defaults."
}

// LeagueSummary renders the active league settings snapshot.
func (s *CompanionService) LeagueSummary() (string, error) {
	settings := s.repo.Settings()

	var sb strings.Builder
	sb.WriteString("🏟 *League Settings*\n\n")
	sb.WriteString(fmt.Sprintf("Type: %s\n", settings.Type))
	sb.WriteString(fmt.Sprintf("Teams: %d\n", settings.TeamCount))
	if settings.Type == models.LeagueKeeper {
		sb.WriteString(fmt.Sprintf("Keepers: %d\n", settings.KeeperCount))
	}
	sb.WriteString(fmt.Sprintf("Week: %d (season %d)\n", settings.CurrentWeek, settings.SeasonYear))
	r := settings.Roster
	sb.WriteString(fmt.Sprintf("Roster: %d QB, %d RB, %d WR, %d TE, %d FLEX, %d bench\n", r.QB, r.RB, r.WR, r.TE, r.Flex, r.Bench))
	return sb.String(), nil
}

// UpdateLeagueSetting edits one league setting by key. Recognized keys:
// type, teams, keepers, week.
func (s *CompanionService) UpdateLeagueSetting(key, value string) (string, error) {
	settings := s.repo.Settings()

	switch strings.ToLower(key) {
	case "type":
		lt := models.LeagueType(strings.ToLower(value))
		switch lt {
		case models.LeagueRedraft, models.LeagueKeeper, models.LeagueDynasty:
			settings.Type = lt
		default:
			return "", fmt.Errorf("league type must be redraft, keeper or dynasty")
		}
	case "teams":
		n, err := strconv.Atoi(value)
		if err != nil || n < 2 {
			return "", fmt.Errorf("team count must be a number of teams")
		}
		settings.TeamCount = n
	case "keepers":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 || n > settings.TeamCount {
			return "", fmt.Errorf("keeper count must be between 0 and the league size")
		}
		settings.KeeperCount = n
	case "week":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 || n > weeksPerSeason {
			return "", fmt.Errorf("week must be between 1 and %d", weeksPerSeason)
		}
		settings.CurrentWeek = n
	default:
		return "", fmt.Errorf("unknown setting %q; try type, teams, keepers or week", key)
	}

	s.repo.SaveSettings(settings)
	return fmt.Sprintf("Updated %s to %s.", strings.ToLower(key), value), nil
}
