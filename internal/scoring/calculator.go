package scoring

import (
	"errors"
	"fmt"

	"github.com/sutariaa/fantsay-football-predictor/internal/models"
)

// ErrNegativePointsAllowed is returned for a defensive statline with a
// negative points-allowed value, which has no bucket.
var ErrNegativePointsAllowed = errors.New("points allowed cannot be negative")

// Calculator converts statlines into fantasy points under one scoring
// configuration. It is stateless apart from the config reference, so a
// single instance tracks in-place config edits.
type Calculator struct {
	config *Config
}

func NewCalculator(config *Config) *Calculator {
	return &Calculator{config: config}
}

// Breakdown is the per-category subtotal view of a statline's score.
type Breakdown struct {
	Passing      float64
	Rushing      float64
	Receiving    float64
	Kicking      float64
	Defense      float64
	SpecialTeams float64
	Misc         float64
	Total        float64
}

// PassingScore scores a passing statline. A nil statline contributes
// nothing, as with every category method.
func (c *Calculator) PassingScore(stats *models.PassingStats) float64 {
	if stats == nil || c.config.Passing == nil {
		return 0
	}
	cfg := c.config.Passing
	return stats.Yards*cfg.Yards +
		stats.Touchdowns*cfg.Touchdowns +
		stats.TwoPointConversions*cfg.TwoPointConversions +
		stats.Interceptions*cfg.Interceptions
}

func (c *Calculator) RushingScore(stats *models.RushingStats) float64 {
	if stats == nil || c.config.Rushing == nil {
		return 0
	}
	cfg := c.config.Rushing
	return stats.Yards*cfg.Yards +
		stats.Touchdowns*cfg.Touchdowns +
		stats.TwoPointConversions*cfg.TwoPointConversions
}

func (c *Calculator) ReceivingScore(stats *models.ReceivingStats) float64 {
	if stats == nil || c.config.Receiving == nil {
		return 0
	}
	cfg := c.config.Receiving
	return stats.Receptions*cfg.Receptions +
		stats.Yards*cfg.Yards +
		stats.Touchdowns*cfg.Touchdowns +
		stats.TwoPointConversions*cfg.TwoPointConversions
}

// KickingScore scores made field goals per distance bucket plus PATs.
// Miss coefficients are negative in the config, so the miss terms stay
// additive. Distance buckets missing from the config are skipped.
func (c *Calculator) KickingScore(stats *models.KickingStats) float64 {
	if stats == nil || c.config.Kicking == nil {
		return 0
	}
	cfg := c.config.Kicking

	var score float64
	for rng, count := range stats.FieldGoalsMade {
		if coeff, ok := cfg.FieldGoals[rng]; ok {
			score += count * coeff
		}
	}
	score += stats.PATMade * cfg.PATMade
	score += stats.FieldGoalsMissed * cfg.FieldGoalMissed
	score += stats.PATMissed * cfg.PATMissed
	return score
}

func (c *Calculator) DefenseScore(stats *models.DefenseStats) (float64, error) {
	if stats == nil || c.config.Defense == nil {
		return 0, nil
	}
	cfg := c.config.Defense

	score := stats.Touchdowns*cfg.Touchdowns +
		stats.Sacks*cfg.Sacks +
		stats.Interceptions*cfg.Interceptions +
		stats.FumbleRecoveries*cfg.FumbleRecoveries +
		stats.Safeties*cfg.Safeties +
		stats.ForcedFumbles*cfg.ForcedFumbles +
		stats.BlockedKicks*cfg.BlockedKicks

	pa, err := c.pointsAllowedScore(stats.PointsAllowed)
	if err != nil {
		return 0, err
	}
	return score + pa, nil
}

// pointsAllowedScore maps a non-negative points-allowed total to exactly
// one bucket coefficient. A bucket missing from the config contributes
// zero rather than failing.
func (c *Calculator) pointsAllowedScore(pointsAllowed int) (float64, error) {
	if pointsAllowed < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativePointsAllowed, pointsAllowed)
	}

	var bucket string
	switch {
	case pointsAllowed == 0:
		bucket = "0"
	case pointsAllowed <= 6:
		bucket = "1-6"
	case pointsAllowed <= 13:
		bucket = "7-13"
	case pointsAllowed <= 20:
		bucket = "14-20"
	case pointsAllowed <= 27:
		bucket = "21-27"
	case pointsAllowed <= 34:
		bucket = "28-34"
	default:
		bucket = "35+"
	}
	return c.config.Defense.PointsAllowed[bucket], nil
}

func (c *Calculator) SpecialTeamsScore(stats *models.SpecialTeamsStats) float64 {
	if stats == nil || c.config.SpecialTeams == nil {
		return 0
	}
	cfg := c.config.SpecialTeams

	return stats.UnitTouchdowns*cfg.Defense.Touchdowns +
		stats.UnitForcedFumbles*cfg.Defense.ForcedFumbles +
		stats.UnitFumbleRecoveries*cfg.Defense.FumbleRecoveries +
		stats.PlayerTouchdowns*cfg.Player.Touchdowns +
		stats.PlayerForcedFumbles*cfg.Player.ForcedFumbles +
		stats.PlayerFumbleRecoveries*cfg.Player.FumbleRecoveries
}

func (c *Calculator) MiscScore(stats *models.MiscStats) float64 {
	if stats == nil || c.config.Misc == nil {
		return 0
	}
	cfg := c.config.Misc
	return stats.Fumbles*cfg.Fumbles +
		stats.FumblesLost*cfg.FumblesLost +
		stats.FumbleRecoveryTouchdowns*cfg.FumbleRecoveryTouchdowns
}

// TotalScore sums all seven category scores. No rounding is applied;
// display formatting is the caller's concern.
func (c *Calculator) TotalScore(stats models.PlayerStats) (float64, error) {
	b, err := c.ScoreBreakdown(stats)
	if err != nil {
		return 0, err
	}
	return b.Total, nil
}

// ScoreBreakdown returns every category subtotal plus the total.
func (c *Calculator) ScoreBreakdown(stats models.PlayerStats) (Breakdown, error) {
	defense, err := c.DefenseScore(stats.Defense)
	if err != nil {
		return Breakdown{}, err
	}

	b := Breakdown{
		Passing:      c.PassingScore(stats.Passing),
		Rushing:      c.RushingScore(stats.Rushing),
		Receiving:    c.ReceivingScore(stats.Receiving),
		Kicking:      c.KickingScore(stats.Kicking),
		Defense:      defense,
		SpecialTeams: c.SpecialTeamsScore(stats.SpecialTeams),
		Misc:         c.MiscScore(stats.Misc),
	}
	b.Total = b.Passing + b.Rushing + b.Receiving + b.Kicking + b.Defense + b.SpecialTeams + b.Misc
	return b, nil
}

// FieldGoalRange buckets a kick distance into its scoring range label.
func FieldGoalRange(distance int) string {
	switch {
	case distance <= 19:
		return "0-19"
	case distance <= 29:
		return "20-29"
	case distance <= 39:
		return "30-39"
	case distance <= 49:
		return "40-49"
	default:
		return "50+"
	}
}
