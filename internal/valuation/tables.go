package valuation

import (
	"math"

	"github.com/sutariaa/fantsay-football-predictor/internal/models"
)

// AgeBand maps ages up to and including MaxAge to a multiplier. Bands
// are ordered; the first band the age fits wins.
type AgeBand struct {
	MaxAge     int
	Multiplier float64
}

// PickTier is one contiguous band of the draft-pick valuation curve:
// the tier covers overall picks up to LastPick, starting at Start and
// stepping down Step per pick.
type PickTier struct {
	Name     string
	LastPick int
	Start    float64
	Step     float64
}

// Tables bundles every lookup table the valuation engine consults. The
// engine receives a Tables value at construction instead of reading
// package globals, so tests can substitute alternates.
type Tables struct {
	// LeagueSizeScarcity adjusts value per (league size, position).
	LeagueSizeScarcity map[int]map[models.Position]float64

	// Positional demand: demand = base + starters*leagueSize/divisor,
	// flex-eligible positions counting FlexShare of each flex slot. A
	// zero divisor keeps the position flat at its base.
	DemandBase    map[models.Position]float64
	DemandDivisor map[models.Position]float64
	FlexShare     float64

	AgeCurves map[models.LeagueType][]AgeBand

	// Keeper-likelihood inputs (keeper leagues only).
	KeeperAgeScores   []AgeBand
	KeeperValueNorm   float64
	KeeperPositionAdj map[models.Position]float64
	KeeperAgeWeight   float64
	KeeperValueWeight float64
	KeeperBonusMax    float64

	InjuryMultipliers map[models.LeagueType]map[models.InjuryStatus]float64

	// Season-timing scaling of the injury discount: injuries later in
	// the season have less recovery runway.
	MidSeasonStartWeek  int
	MidSeasonFactor     float64
	LateSeasonStartWeek int
	LateSeasonFactor    float64

	// Draft-pick curve.
	PickTiers            []PickTier
	FlyerBase            float64
	FlyerDecay           float64
	FlyerFloor           float64
	PickTypeMultiplier   map[models.LeagueType]float64
	PickYearDepreciation map[models.LeagueType]float64

	// Within-season decay of current-year redraft picks.
	RedraftWeekDecay      float64
	RedraftWeekDecayFloor float64
}

// neutralMultiplier backstops every table lookup: out-of-range inputs
// degrade to no adjustment instead of failing.
const neutralMultiplier = 1.0

// DefaultTables returns the stock valuation tables.
func DefaultTables() Tables {
	return Tables{
		LeagueSizeScarcity: map[int]map[models.Position]float64{
			8: {
				models.PositionQB: 0.90, models.PositionRB: 0.92, models.PositionWR: 0.95,
				models.PositionTE: 0.95, models.PositionK: 0.95, models.PositionDST: 0.95,
			},
			10: {
				models.PositionQB: 0.95, models.PositionRB: 0.96, models.PositionWR: 0.98,
				models.PositionTE: 0.98, models.PositionK: 0.98, models.PositionDST: 0.98,
			},
			12: {
				models.PositionQB: 1.0, models.PositionRB: 1.0, models.PositionWR: 1.0,
				models.PositionTE: 1.0, models.PositionK: 1.0, models.PositionDST: 1.0,
			},
			14: {
				models.PositionQB: 1.06, models.PositionRB: 1.08, models.PositionWR: 1.04,
				models.PositionTE: 1.03, models.PositionK: 1.0, models.PositionDST: 1.0,
			},
			16: {
				models.PositionQB: 1.12, models.PositionRB: 1.16, models.PositionWR: 1.08,
				models.PositionTE: 1.06, models.PositionK: 1.0, models.PositionDST: 1.0,
			},
			18: {
				models.PositionQB: 1.18, models.PositionRB: 1.24, models.PositionWR: 1.12,
				models.PositionTE: 1.09, models.PositionK: 1.0, models.PositionDST: 1.0,
			},
		},

		DemandBase: map[models.Position]float64{
			models.PositionQB:  1.0,
			models.PositionRB:  0.95,
			models.PositionWR:  0.95,
			models.PositionTE:  0.90,
			models.PositionK:   0.80,
			models.PositionDST: 0.85,
		},
		DemandDivisor: map[models.Position]float64{
			models.PositionRB: 80,
			models.PositionWR: 110,
			models.PositionTE: 130,
		},
		FlexShare: 1.0 / 3.0,

		AgeCurves: map[models.LeagueType][]AgeBand{
			models.LeagueDynasty: {
				{MaxAge: 22, Multiplier: 1.30},
				{MaxAge: 25, Multiplier: 1.15},
				{MaxAge: 28, Multiplier: 1.00},
				{MaxAge: 30, Multiplier: 0.80},
				{MaxAge: 32, Multiplier: 0.60},
				{MaxAge: math.MaxInt32, Multiplier: 0.40},
			},
			models.LeagueKeeper: {
				{MaxAge: 22, Multiplier: 1.15},
				{MaxAge: 25, Multiplier: 1.08},
				{MaxAge: 28, Multiplier: 1.00},
				{MaxAge: 30, Multiplier: 0.90},
				{MaxAge: 32, Multiplier: 0.80},
				{MaxAge: math.MaxInt32, Multiplier: 0.70},
			},
			models.LeagueRedraft: {
				{MaxAge: 30, Multiplier: 1.00},
				{MaxAge: math.MaxInt32, Multiplier: 0.95},
			},
		},

		KeeperAgeScores: []AgeBand{
			{MaxAge: 22, Multiplier: 1.0},
			{MaxAge: 25, Multiplier: 0.8},
			{MaxAge: 28, Multiplier: 0.6},
			{MaxAge: 30, Multiplier: 0.4},
			{MaxAge: math.MaxInt32, Multiplier: 0.2},
		},
		KeeperValueNorm: 300,
		KeeperPositionAdj: map[models.Position]float64{
			models.PositionQB:  0.10,
			models.PositionWR:  0.10,
			models.PositionTE:  0.05,
			models.PositionRB:  0.00,
			models.PositionK:   0.05,
			models.PositionDST: 0.05,
		},
		KeeperAgeWeight:   0.5,
		KeeperValueWeight: 0.4,
		KeeperBonusMax:    0.15,

		InjuryMultipliers: map[models.LeagueType]map[models.InjuryStatus]float64{
			models.LeagueRedraft: {
				models.InjuryHealthy:      1.00,
				models.InjuryQuestionable: 0.90,
				models.InjuryDoubtful:     0.75,
				models.InjuryOut:          0.60,
				models.InjuryIR:           0.30,
				models.InjuryPUP:          0.40,
			},
			models.LeagueKeeper: {
				models.InjuryHealthy:      1.00,
				models.InjuryQuestionable: 0.92,
				models.InjuryDoubtful:     0.80,
				models.InjuryOut:          0.70,
				models.InjuryIR:           0.50,
				models.InjuryPUP:          0.55,
			},
			models.LeagueDynasty: {
				models.InjuryHealthy:      1.00,
				models.InjuryQuestionable: 0.95,
				models.InjuryDoubtful:     0.88,
				models.InjuryOut:          0.85,
				models.InjuryIR:           0.75,
				models.InjuryPUP:          0.78,
			},
		},

		MidSeasonStartWeek:  7,
		MidSeasonFactor:     0.9,
		LateSeasonStartWeek: 13,
		LateSeasonFactor:    0.7,

		PickTiers: []PickTier{
			{Name: "elite", LastPick: 12, Start: 110, Step: 2},
			{Name: "high", LastPick: 24, Start: 85, Step: 1.9},
			{Name: "mid", LastPick: 36, Start: 62, Step: 1.8},
			{Name: "depth", LastPick: 60, Start: 40, Step: 0.8},
			{Name: "late", LastPick: 84, Start: 21, Step: 0.45},
		},
		FlyerBase:  12,
		FlyerDecay: 0.92,
		FlyerFloor: 1,
		PickTypeMultiplier: map[models.LeagueType]float64{
			models.LeagueRedraft: 1.00,
			models.LeagueKeeper:  1.15,
			models.LeagueDynasty: 1.30,
		},
		PickYearDepreciation: map[models.LeagueType]float64{
			models.LeagueRedraft: 0.15,
			models.LeagueKeeper:  0.10,
			models.LeagueDynasty: 0.05,
		},

		RedraftWeekDecay:      0.04,
		RedraftWeekDecayFloor: 0.4,
	}
}
