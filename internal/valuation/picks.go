package valuation

import (
	"math"

	"github.com/sutariaa/fantsay-football-predictor/internal/models"
)

// PickValue prices a draft pick: a tiered base curve over the overall
// pick number, a league-type multiplier, compounding depreciation for
// future years, and within-season decay for current-year redraft picks.
// Rounded to the nearest integer, never negative.
func (e *Engine) PickValue(pick models.DraftPick, settings models.LeagueSettings) int {
	overall := pick.Overall(settings.TeamCount)
	if overall < 1 {
		return 0
	}

	value := e.pickBaseValue(overall)

	if m, ok := e.tables.PickTypeMultiplier[settings.Type]; ok {
		value *= m
	}

	yearsOut := pick.Year - settings.SeasonYear
	if yearsOut > 0 {
		rate := e.tables.PickYearDepreciation[settings.Type]
		value *= math.Pow(1-rate, float64(yearsOut))
	}

	if settings.Type == models.LeagueRedraft && pick.Timing(settings.SeasonYear) == models.PickCurrent {
		decay := 1 - float64(settings.CurrentWeek)*e.tables.RedraftWeekDecay
		value *= math.Max(e.tables.RedraftWeekDecayFloor, decay)
	}

	rounded := int(math.Round(value))
	if rounded < 0 {
		return 0
	}
	return rounded
}

// pickBaseValue walks the tier table; past the last tier the value
// decays exponentially ("flyer" picks), floored at FlyerFloor. The
// flyer curve is capped at the last tier's final value so the curve
// stays non-increasing across the tier boundary.
func (e *Engine) pickBaseValue(overall int) float64 {
	firstPick := 1
	for _, tier := range e.tables.PickTiers {
		if overall <= tier.LastPick {
			return tier.Start - tier.Step*float64(overall-firstPick)
		}
		firstPick = tier.LastPick + 1
	}

	tiers := e.tables.PickTiers
	last := tiers[len(tiers)-1]
	lastValue := last.Start - last.Step*float64(last.LastPick-pickTierFirst(tiers, len(tiers)-1))

	flyer := e.tables.FlyerBase * math.Pow(e.tables.FlyerDecay, float64(overall-last.LastPick))
	flyer = math.Min(flyer, lastValue)
	return math.Max(e.tables.FlyerFloor, flyer)
}

func pickTierFirst(tiers []PickTier, i int) int {
	if i == 0 {
		return 1
	}
	return tiers[i-1].LastPick + 1
}
