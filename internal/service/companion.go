package service

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sutariaa/fantsay-football-predictor/internal/models"
	"github.com/sutariaa/fantsay-football-predictor/internal/predictor"
	"github.com/sutariaa/fantsay-football-predictor/internal/projections"
	"github.com/sutariaa/fantsay-football-predictor/internal/refdata"
	"github.com/sutariaa/fantsay-football-predictor/internal/repository/memory"
	"github.com/sutariaa/fantsay-football-predictor/internal/scoring"
	"github.com/sutariaa/fantsay-football-predictor/internal/trade"
	"github.com/sutariaa/fantsay-football-predictor/internal/valuation"
)

// directoryTTL controls how long the cached player directory is served
// before a refresh.
const directoryTTL = 24 * time.Hour

// playerMatchThreshold is the minimum Levenshtein similarity for a
// fuzzy player-name match.
const playerMatchThreshold = 0.7

// DirectoryAPI provides the external player directory.
type DirectoryAPI interface {
	GetPlayerDirectory() ([]models.PlayerProjection, error)
}

// CompanionService composes the scoring, prediction, valuation and
// trade components into user-facing reports.
type CompanionService struct {
	api       DirectoryAPI
	repo      *memory.Repository
	predictor *predictor.Predictor
	scoring   *scoring.Config
	calc      *scoring.Calculator
	engine    *valuation.Engine
	evaluator *trade.Evaluator
}

func NewCompanionService(api DirectoryAPI, repo *memory.Repository, pred *predictor.Predictor, cfg *scoring.Config) *CompanionService {
	calc := scoring.NewCalculator(cfg)
	engine := valuation.NewEngine(calc, valuation.DefaultTables())

	s := &CompanionService{
		api:       api,
		repo:      repo,
		predictor: pred,
		scoring:   cfg,
		calc:      calc,
		engine:    engine,
	}
	s.evaluator = trade.NewEvaluator(engine, s)
	return s
}

// directory returns the cached player directory, refreshing it from
// the API when missing or stale. Baseline projections are attached at
// refresh time so each session works a fixed snapshot.
func (s *CompanionService) directory() ([]models.PlayerProjection, error) {
	players, updated := s.repo.Directory()
	if len(players) > 0 && time.Since(updated) < directoryTTL {
		return players, nil
	}

	fresh, err := s.api.GetPlayerDirectory()
	if err != nil {
		if len(players) > 0 {
			slog.Error("Directory refresh failed, serving stale copy", "error", err)
			return players, nil
		}
		return nil, fmt.Errorf("error fetching player directory: %w", err)
	}

	for i := range fresh {
		fresh[i].ProjectedStats = projections.BaselineFor(fresh[i].Position)
	}
	s.repo.SaveDirectory(fresh)
	slog.Info("Player directory refreshed", "players", len(fresh))
	return fresh, nil
}

// ResolvePlayer finds a directory entry for a user-entered name: exact
// case-insensitive match first, then best fuzzy match above the
// similarity threshold.
func (s *CompanionService) ResolvePlayer(name string) (models.PlayerProjection, bool) {
	players, err := s.directory()
	if err != nil {
		slog.Error("Error loading player directory", "error", err)
		return models.PlayerProjection{}, false
	}

	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return models.PlayerProjection{}, false
	}

	var best *models.PlayerProjection
	bestScore := playerMatchThreshold

	for i, p := range players {
		candidate := strings.ToLower(p.Name)
		if candidate == needle {
			return players[i], true
		}

		distance := fuzzy.LevenshteinDistance(needle, candidate)
		maxLen := float64(max(len(needle), len(candidate)))
		similarity := 1 - float64(distance)/maxLen
		if similarity > bestScore {
			bestScore = similarity
			best = &players[i]
		}
	}

	if best == nil {
		return models.PlayerProjection{}, false
	}
	return *best, true
}

// SelectTeam sets the favorite team from an abbreviation or a fuzzy
// team-name match.
func (s *CompanionService) SelectTeam(query string) (string, error) {
	team, ok := matchTeam(query)
	if !ok {
		return "", fmt.Errorf("no team matching %q", query)
	}
	s.repo.SetFavorite(team.Abbr)
	return fmt.Sprintf("⭐ Favorite team set to *%s* (%s)", team.Name, team.Abbr), nil
}

// CurrentWeek reports the league's current week from settings.
func (s *CompanionService) CurrentWeek() int {
	return s.repo.Settings().CurrentWeek
}

func (s *CompanionService) ClearTeam() string {
	s.repo.ClearFavorite()
	return "Favorite team cleared."
}

func matchTeam(query string) (models.Team, bool) {
	q := strings.TrimSpace(query)
	if t, ok := refdata.TeamByAbbr(strings.ToUpper(q)); ok {
		return t, true
	}
	for _, t := range refdata.Teams {
		if fuzzy.MatchNormalizedFold(q, t.Name) {
			return t, true
		}
	}
	return models.Team{}, false
}
