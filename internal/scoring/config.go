package scoring

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Category is the closed set of scoring category names. The names double
// as the top-level keys of the serialized configuration.
type Category string

const (
	CategoryPassing      Category = "passing"
	CategoryRushing      Category = "rushing"
	CategoryReceiving    Category = "receiving"
	CategoryKicking      Category = "kicking"
	CategoryDefense      Category = "defense"
	CategorySpecialTeams Category = "specialTeams"
	CategoryMisc         Category = "misc"
)

// Categories returns every category in serialization order.
func Categories() []Category {
	return []Category{
		CategoryPassing, CategoryRushing, CategoryReceiving,
		CategoryKicking, CategoryDefense, CategorySpecialTeams, CategoryMisc,
	}
}

// RequiredCategories must all be present for a configuration to be valid.
var RequiredCategories = []Category{
	CategoryPassing, CategoryRushing, CategoryReceiving, CategoryKicking, CategoryDefense,
}

// FieldGoalRanges is the fixed ordered set of field-goal distance buckets.
var FieldGoalRanges = []string{"0-19", "20-29", "30-39", "40-49", "50+"}

// PointsAllowedRanges is the closed, ordered, non-overlapping set of
// defensive points-allowed buckets.
var PointsAllowedRanges = []string{"0", "1-6", "7-13", "14-20", "21-27", "28-34", "35+"}

var (
	ErrMalformedConfig = errors.New("malformed scoring configuration")
	ErrUnknownCategory = errors.New("unknown scoring category")
	ErrUnknownRule     = errors.New("unknown scoring rule")
	ErrBadRuleValue    = errors.New("bad scoring rule value")
)

type PassingRules struct {
	Yards               float64 `json:"yards"`
	Touchdowns          float64 `json:"touchdowns"`
	TwoPointConversions float64 `json:"twoPointConversions"`
	Interceptions       float64 `json:"interceptions"`
}

type RushingRules struct {
	Yards               float64 `json:"yards"`
	Touchdowns          float64 `json:"touchdowns"`
	TwoPointConversions float64 `json:"twoPointConversions"`
}

type ReceivingRules struct {
	Receptions          float64 `json:"receptions"`
	Yards               float64 `json:"yards"`
	Touchdowns          float64 `json:"touchdowns"`
	TwoPointConversions float64 `json:"twoPointConversions"`
}

type KickingRules struct {
	FieldGoals      map[string]float64 `json:"fieldGoals"`
	PATMade         float64            `json:"patMade"`
	FieldGoalMissed float64            `json:"fieldGoalMissed"`
	PATMissed       float64            `json:"patMissed"`
}

type DefenseRules struct {
	Touchdowns       float64            `json:"touchdowns"`
	PointsAllowed    map[string]float64 `json:"pointsAllowed"`
	Sacks            float64            `json:"sacks"`
	Interceptions    float64            `json:"interceptions"`
	FumbleRecoveries float64            `json:"fumbleRecoveries"`
	Safeties         float64            `json:"safeties"`
	ForcedFumbles    float64            `json:"forcedFumbles"`
	BlockedKicks     float64            `json:"blockedKicks"`
}

type SpecialTeamsUnitRules struct {
	Touchdowns       float64 `json:"touchdowns"`
	ForcedFumbles    float64 `json:"forcedFumbles"`
	FumbleRecoveries float64 `json:"fumbleRecoveries"`
}

type SpecialTeamsRules struct {
	Defense SpecialTeamsUnitRules `json:"defense"`
	Player  SpecialTeamsUnitRules `json:"player"`
}

type MiscRules struct {
	Fumbles                  float64 `json:"fumbles"`
	FumblesLost              float64 `json:"fumblesLost"`
	FumbleRecoveryTouchdowns float64 `json:"fumbleRecoveryTouchdowns"`
}

// Config is one league's scoring-rule coefficients. Category fields are
// pointers so an absent or null category stays distinguishable from a
// zero-valued one; Valid reports whether the required set is present.
type Config struct {
	Passing      *PassingRules      `json:"passing"`
	Rushing      *RushingRules      `json:"rushing"`
	Receiving    *ReceivingRules    `json:"receiving"`
	Kicking      *KickingRules      `json:"kicking"`
	Defense      *DefenseRules      `json:"defense"`
	SpecialTeams *SpecialTeamsRules `json:"specialTeams"`
	Misc         *MiscRules         `json:"misc"`
}

// DefaultConfig returns a fresh copy of the compiled-in default scoring
// rules (standard league scoring).
func DefaultConfig() *Config {
	return &Config{
		Passing: &PassingRules{
			Yards:               0.04,
			Touchdowns:          4,
			TwoPointConversions: 2,
			Interceptions:       -2,
		},
		Rushing: &RushingRules{
			Yards:               0.1,
			Touchdowns:          6,
			TwoPointConversions: 2,
		},
		Receiving: &ReceivingRules{
			Receptions:          1,
			Yards:               0.1,
			Touchdowns:          6,
			TwoPointConversions: 2,
		},
		Kicking: &KickingRules{
			FieldGoals: map[string]float64{
				"0-19":  1,
				"20-29": 2,
				"30-39": 3,
				"40-49": 4,
				"50+":   5,
			},
			PATMade:         1,
			FieldGoalMissed: -1,
			PATMissed:       -1,
		},
		Defense: &DefenseRules{
			Touchdowns: 6,
			PointsAllowed: map[string]float64{
				"0":     10,
				"1-6":   7,
				"7-13":  4,
				"14-20": 2,
				"21-27": 1,
				"28-34": -1,
				"35+":   -4,
			},
			Sacks:            1,
			Interceptions:    2,
			FumbleRecoveries: 1,
			Safeties:         2,
			ForcedFumbles:    1,
			BlockedKicks:     2,
		},
		SpecialTeams: &SpecialTeamsRules{
			Defense: SpecialTeamsUnitRules{Touchdowns: 6, ForcedFumbles: 1, FumbleRecoveries: 1},
			Player:  SpecialTeamsUnitRules{Touchdowns: 6, ForcedFumbles: 1, FumbleRecoveries: 1},
		},
		Misc: &MiscRules{
			Fumbles:                  -1,
			FumblesLost:              -1,
			FumbleRecoveryTouchdowns: 6,
		},
	}
}

// Clone deep-copies the configuration, including the ranged maps.
func (c *Config) Clone() *Config {
	out := &Config{}
	if c.Passing != nil {
		v := *c.Passing
		out.Passing = &v
	}
	if c.Rushing != nil {
		v := *c.Rushing
		out.Rushing = &v
	}
	if c.Receiving != nil {
		v := *c.Receiving
		out.Receiving = &v
	}
	if c.Kicking != nil {
		v := *c.Kicking
		v.FieldGoals = cloneRangeMap(c.Kicking.FieldGoals)
		out.Kicking = &v
	}
	if c.Defense != nil {
		v := *c.Defense
		v.PointsAllowed = cloneRangeMap(c.Defense.PointsAllowed)
		out.Defense = &v
	}
	if c.SpecialTeams != nil {
		v := *c.SpecialTeams
		out.SpecialTeams = &v
	}
	if c.Misc != nil {
		v := *c.Misc
		out.Misc = &v
	}
	return out
}

func cloneRangeMap(m map[string]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Valid reports whether every required category is present.
func (c *Config) Valid() bool {
	for _, cat := range RequiredCategories {
		switch cat {
		case CategoryPassing:
			if c.Passing == nil {
				return false
			}
		case CategoryRushing:
			if c.Rushing == nil {
				return false
			}
		case CategoryReceiving:
			if c.Receiving == nil {
				return false
			}
		case CategoryKicking:
			if c.Kicking == nil {
				return false
			}
		case CategoryDefense:
			if c.Defense == nil {
				return false
			}
		}
	}
	return true
}

// Export serializes the configuration deterministically (struct fields
// in declaration order, map keys sorted by encoding/json).
func (c *Config) Export() (string, error) {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", fmt.Errorf("exporting scoring config: %w", err)
	}
	return string(b), nil
}

// Import parses a serialized configuration and replaces the in-memory
// one. Parsed values are merged over the compiled-in defaults: present
// keys win, missing keys keep their default, unknown keys are ignored.
// On a parse failure the receiver is left untouched and
// ErrMalformedConfig is returned so callers can surface a recoverable
// message.
func (c *Config) Import(text string) error {
	merged := DefaultConfig()
	if err := json.Unmarshal([]byte(text), merged); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedConfig, err)
	}
	*c = *merged
	return nil
}

// Reset restores the compiled-in defaults, discarding all edits.
func (c *Config) Reset() {
	*c = *DefaultConfig()
}
