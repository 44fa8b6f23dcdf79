package sleeper

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sutariaa/fantsay-football-predictor/internal/models"
)

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

// playerRecord is the subset of the Sleeper player payload the
// companion consumes. The directory call returns a map keyed by player
// ID.
type playerRecord struct {
	FullName     string `json:"full_name"`
	Position     string `json:"position"`
	Team         string `json:"team"`
	Age          int    `json:"age"`
	InjuryStatus string `json:"injury_status"`
	Active       bool   `json:"active"`
}

// GetPlayerDirectory fetches the NFL player directory and maps it to
// the companion's shape: active fantasy-relevant players only, sorted
// by name for determinism. Projected statlines are attached by the
// caller; this layer only validates shape, not freshness.
func (a *API) GetPlayerDirectory() ([]models.PlayerProjection, error) {
	var records map[string]playerRecord
	if err := a.client.Get("/players/nfl", &records); err != nil {
		return nil, fmt.Errorf("fetching player directory: %w", err)
	}

	players := make([]models.PlayerProjection, 0, len(records))
	for _, rec := range records {
		if !rec.Active || rec.FullName == "" {
			continue
		}
		pos, ok := parsePosition(rec.Position)
		if !ok {
			continue
		}
		players = append(players, models.PlayerProjection{
			Name:         rec.FullName,
			Position:     pos,
			Team:         rec.Team,
			Age:          rec.Age,
			InjuryStatus: parseInjuryStatus(rec.InjuryStatus),
		})
	}

	sort.Slice(players, func(i, j int) bool {
		return players[i].Name < players[j].Name
	})
	return players, nil
}

func parsePosition(raw string) (models.Position, bool) {
	switch raw {
	case "QB":
		return models.PositionQB, true
	case "RB":
		return models.PositionRB, true
	case "WR":
		return models.PositionWR, true
	case "TE":
		return models.PositionTE, true
	case "K":
		return models.PositionK, true
	case "DEF":
		return models.PositionDST, true
	default:
		return "", false
	}
}

func parseInjuryStatus(raw string) models.InjuryStatus {
	switch strings.ToLower(raw) {
	case "questionable":
		return models.InjuryQuestionable
	case "doubtful":
		return models.InjuryDoubtful
	case "out":
		return models.InjuryOut
	case "ir":
		return models.InjuryIR
	case "pup":
		return models.InjuryPUP
	default:
		return models.InjuryHealthy
	}
}
