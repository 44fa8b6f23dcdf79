package projections

import "github.com/sutariaa/fantsay-football-predictor/internal/models"

// Baseline season statlines per position. The companion deliberately
// ships flat positional templates instead of a statistical model; the
// valuation engine's contextual multipliers do the differentiating.
// Template values approximate a startable season at each position.

func baselineQB() models.PlayerStats {
	return models.PlayerStats{
		Passing: &models.PassingStats{
			Yards:               4000,
			Touchdowns:          28,
			TwoPointConversions: 2,
			Interceptions:       12,
		},
		Rushing: &models.RushingStats{Yards: 250, Touchdowns: 2},
		Misc:    &models.MiscStats{Fumbles: 4, FumblesLost: 2},
	}
}

func baselineRB() models.PlayerStats {
	return models.PlayerStats{
		Rushing:   &models.RushingStats{Yards: 1100, Touchdowns: 8, TwoPointConversions: 1},
		Receiving: &models.ReceivingStats{Receptions: 45, Yards: 350, Touchdowns: 1},
		Misc:      &models.MiscStats{Fumbles: 2, FumblesLost: 1},
	}
}

func baselineWR() models.PlayerStats {
	return models.PlayerStats{
		Receiving: &models.ReceivingStats{Receptions: 85, Yards: 1150, Touchdowns: 8},
		Rushing:   &models.RushingStats{Yards: 60},
		Misc:      &models.MiscStats{Fumbles: 1},
	}
}

func baselineTE() models.PlayerStats {
	return models.PlayerStats{
		Receiving: &models.ReceivingStats{Receptions: 65, Yards: 700, Touchdowns: 5},
		Misc:      &models.MiscStats{Fumbles: 1},
	}
}

func baselineK() models.PlayerStats {
	return models.PlayerStats{
		Kicking: &models.KickingStats{
			FieldGoalsMade: map[string]float64{
				"0-19":  1,
				"20-29": 6,
				"30-39": 9,
				"40-49": 7,
				"50+":   3,
			},
			PATMade:          35,
			FieldGoalsMissed: 4,
			PATMissed:        1,
		},
	}
}

func baselineDST() models.PlayerStats {
	return models.PlayerStats{
		Defense: &models.DefenseStats{
			Touchdowns:       3,
			PointsAllowed:    20,
			Sacks:            40,
			Interceptions:    14,
			FumbleRecoveries: 10,
			Safeties:         1,
			ForcedFumbles:    12,
			BlockedKicks:     2,
		},
		SpecialTeams: &models.SpecialTeamsStats{
			UnitTouchdowns:       1,
			UnitForcedFumbles:    2,
			UnitFumbleRecoveries: 1,
		},
	}
}

// BaselineFor returns the template statline for a position. Unknown
// positions get an empty statline, which scores zero.
func BaselineFor(pos models.Position) models.PlayerStats {
	switch pos {
	case models.PositionQB:
		return baselineQB()
	case models.PositionRB:
		return baselineRB()
	case models.PositionWR:
		return baselineWR()
	case models.PositionTE:
		return baselineTE()
	case models.PositionK:
		return baselineK()
	case models.PositionDST:
		return baselineDST()
	default:
		return models.PlayerStats{}
	}
}
