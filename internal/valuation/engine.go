package valuation

import (
	"fmt"
	"math"

	"github.com/sutariaa/fantsay-football-predictor/internal/models"
	"github.com/sutariaa/fantsay-football-predictor/internal/scoring"
)

// Engine converts projections into a single tradeable value per player
// and prices draft picks. It composes the scoring calculator's output
// with league-format context from its lookup tables; every computation
// is deterministic over its arguments plus the injected config.
type Engine struct {
	calc   *scoring.Calculator
	tables Tables
}

func NewEngine(calc *scoring.Calculator, tables Tables) *Engine {
	return &Engine{calc: calc, tables: tables}
}

// PlayerValue runs the full valuation pipeline: projected fantasy
// points, league-size scarcity, positional demand, age curve, keeper
// likelihood, then injury status scaled by season timing. The result
// is rounded to the nearest integer and never negative.
func (e *Engine) PlayerValue(p models.PlayerProjection, settings models.LeagueSettings) (int, error) {
	base, err := e.calc.TotalScore(p.ProjectedStats)
	if err != nil {
		return 0, fmt.Errorf("scoring %s: %w", p.Name, err)
	}

	value := base
	value *= e.scarcityMultiplier(settings.TeamCount, p.Position)
	value *= e.demandMultiplier(p.Position, settings)
	value *= e.ageMultiplier(p.Age, settings)
	if settings.Type == models.LeagueKeeper && settings.KeeperCount > 0 {
		value *= e.keeperLikelihoodBonus(p, base)
	}
	value *= e.injuryMultiplier(p.InjuryStatus, settings)

	rounded := int(math.Round(value))
	if rounded < 0 {
		return 0, nil
	}
	return rounded, nil
}

func (e *Engine) scarcityMultiplier(leagueSize int, pos models.Position) float64 {
	byPos, ok := e.tables.LeagueSizeScarcity[leagueSize]
	if !ok {
		return neutralMultiplier
	}
	m, ok := byPos[pos]
	if !ok {
		return neutralMultiplier
	}
	return m
}

// demandMultiplier grows with how many roster slots league-wide compete
// for the position. Flex slots count fractionally and never for QB.
func (e *Engine) demandMultiplier(pos models.Position, settings models.LeagueSettings) float64 {
	base, ok := e.tables.DemandBase[pos]
	if !ok {
		return neutralMultiplier
	}
	divisor := e.tables.DemandDivisor[pos]
	if divisor == 0 {
		return base
	}

	starters := float64(starterSlots(pos, settings.Roster))
	if flexEligible(pos) {
		starters += e.tables.FlexShare * float64(settings.Roster.Flex)
	}
	return base + starters*float64(settings.TeamCount)/divisor
}

func starterSlots(pos models.Position, roster models.RosterRequirements) int {
	switch pos {
	case models.PositionQB:
		return roster.QB
	case models.PositionRB:
		return roster.RB
	case models.PositionWR:
		return roster.WR
	case models.PositionTE:
		return roster.TE
	default:
		return 0
	}
}

func flexEligible(pos models.Position) bool {
	return pos == models.PositionRB || pos == models.PositionWR || pos == models.PositionTE
}

// ageMultiplier applies the league-type age curve. An unknown age is a
// neutral 1.0 rather than a failure. Keeper leagues scale the curve's
// distance from 1.0 by how many keeper slots the league carries.
func (e *Engine) ageMultiplier(age int, settings models.LeagueSettings) float64 {
	if age <= 0 {
		return neutralMultiplier
	}
	bands, ok := e.tables.AgeCurves[settings.Type]
	if !ok {
		return neutralMultiplier
	}
	m := lookupAgeBand(bands, age)

	if settings.Type == models.LeagueKeeper && settings.TeamCount > 0 {
		scale := 0.5 + float64(settings.KeeperCount)/float64(2*settings.TeamCount)
		if scale > 1 {
			scale = 1
		}
		m = 1 + (m-1)*scale
	}
	return m
}

func lookupAgeBand(bands []AgeBand, age int) float64 {
	for _, b := range bands {
		if age <= b.MaxAge {
			return b.Multiplier
		}
	}
	return neutralMultiplier
}

// keeperLikelihoodBonus rewards players likely to be kept: a weighted
// sum of age bucket, normalized projected value and a small positional
// retention adjustment, worth up to KeeperBonusMax.
func (e *Engine) keeperLikelihoodBonus(p models.PlayerProjection, basePoints float64) float64 {
	ageScore := 0.5
	if p.Age > 0 {
		ageScore = lookupAgeBand(e.tables.KeeperAgeScores, p.Age)
	}

	valueScore := 0.0
	if e.tables.KeeperValueNorm > 0 {
		valueScore = math.Min(1, basePoints/e.tables.KeeperValueNorm)
	}

	likelihood := e.tables.KeeperAgeWeight*ageScore +
		e.tables.KeeperValueWeight*valueScore +
		e.tables.KeeperPositionAdj[p.Position]
	likelihood = math.Max(0, math.Min(1, likelihood))

	return 1 + e.tables.KeeperBonusMax*likelihood
}

// injuryMultiplier discounts injured players per league type, with the
// discount deepening as the season runs out of recovery runway.
func (e *Engine) injuryMultiplier(status models.InjuryStatus, settings models.LeagueSettings) float64 {
	byStatus, ok := e.tables.InjuryMultipliers[settings.Type]
	if !ok {
		return neutralMultiplier
	}
	m, ok := byStatus[status]
	if !ok {
		return neutralMultiplier
	}
	if m >= 1 {
		return m
	}

	switch {
	case settings.CurrentWeek >= e.tables.LateSeasonStartWeek:
		m *= e.tables.LateSeasonFactor
	case settings.CurrentWeek >= e.tables.MidSeasonStartWeek:
		m *= e.tables.MidSeasonFactor
	}
	return m
}
