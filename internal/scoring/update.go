package scoring

import "fmt"

// Update edits the configuration in place.
//
// With an empty subcategory the whole category is replaced and value
// must be the category's rules type. With a subcategory, a
// map[string]float64 value is shallow-merged into that subcategory
// (existing keys overwritten, new keys added, unmentioned keys kept)
// and a numeric value sets the subcategory coefficient directly.
func (c *Config) Update(category Category, subcategory string, value any) error {
	switch category {
	case CategoryPassing:
		return c.updatePassing(subcategory, value)
	case CategoryRushing:
		return c.updateRushing(subcategory, value)
	case CategoryReceiving:
		return c.updateReceiving(subcategory, value)
	case CategoryKicking:
		return c.updateKicking(subcategory, value)
	case CategoryDefense:
		return c.updateDefense(subcategory, value)
	case CategorySpecialTeams:
		return c.updateSpecialTeams(subcategory, value)
	case CategoryMisc:
		return c.updateMisc(subcategory, value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
}

func coefficient(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

func badValue(category Category, subcategory string) error {
	return fmt.Errorf("%w: %s.%s", ErrBadRuleValue, category, subcategory)
}

func unknownRule(category Category, subcategory string) error {
	return fmt.Errorf("%w: %s.%s", ErrUnknownRule, category, subcategory)
}

func (c *Config) updatePassing(sub string, value any) error {
	if sub == "" {
		switch v := value.(type) {
		case PassingRules:
			c.Passing = &v
		case *PassingRules:
			c.Passing = v
		default:
			return badValue(CategoryPassing, sub)
		}
		return nil
	}
	if c.Passing == nil {
		c.Passing = &PassingRules{}
	}
	n, ok := coefficient(value)
	if !ok {
		return badValue(CategoryPassing, sub)
	}
	switch sub {
	case "yards":
		c.Passing.Yards = n
	case "touchdowns":
		c.Passing.Touchdowns = n
	case "twoPointConversions":
		c.Passing.TwoPointConversions = n
	case "interceptions":
		c.Passing.Interceptions = n
	default:
		return unknownRule(CategoryPassing, sub)
	}
	return nil
}

func (c *Config) updateRushing(sub string, value any) error {
	if sub == "" {
		switch v := value.(type) {
		case RushingRules:
			c.Rushing = &v
		case *RushingRules:
			c.Rushing = v
		default:
			return badValue(CategoryRushing, sub)
		}
		return nil
	}
	if c.Rushing == nil {
		c.Rushing = &RushingRules{}
	}
	n, ok := coefficient(value)
	if !ok {
		return badValue(CategoryRushing, sub)
	}
	switch sub {
	case "yards":
		c.Rushing.Yards = n
	case "touchdowns":
		c.Rushing.Touchdowns = n
	case "twoPointConversions":
		c.Rushing.TwoPointConversions = n
	default:
		return unknownRule(CategoryRushing, sub)
	}
	return nil
}

func (c *Config) updateReceiving(sub string, value any) error {
	if sub == "" {
		switch v := value.(type) {
		case ReceivingRules:
			c.Receiving = &v
		case *ReceivingRules:
			c.Receiving = v
		default:
			return badValue(CategoryReceiving, sub)
		}
		return nil
	}
	if c.Receiving == nil {
		c.Receiving = &ReceivingRules{}
	}
	n, ok := coefficient(value)
	if !ok {
		return badValue(CategoryReceiving, sub)
	}
	switch sub {
	case "receptions":
		c.Receiving.Receptions = n
	case "yards":
		c.Receiving.Yards = n
	case "touchdowns":
		c.Receiving.Touchdowns = n
	case "twoPointConversions":
		c.Receiving.TwoPointConversions = n
	default:
		return unknownRule(CategoryReceiving, sub)
	}
	return nil
}

func (c *Config) updateKicking(sub string, value any) error {
	if sub == "" {
		switch v := value.(type) {
		case KickingRules:
			c.Kicking = &v
		case *KickingRules:
			c.Kicking = v
		default:
			return badValue(CategoryKicking, sub)
		}
		return nil
	}
	if c.Kicking == nil {
		c.Kicking = &KickingRules{}
	}
	if sub == "fieldGoals" {
		m, ok := value.(map[string]float64)
		if !ok {
			return badValue(CategoryKicking, sub)
		}
		if c.Kicking.FieldGoals == nil {
			c.Kicking.FieldGoals = make(map[string]float64, len(FieldGoalRanges))
		}
		for k, v := range m {
			c.Kicking.FieldGoals[k] = v
		}
		return nil
	}
	n, ok := coefficient(value)
	if !ok {
		return badValue(CategoryKicking, sub)
	}
	switch sub {
	case "patMade":
		c.Kicking.PATMade = n
	case "fieldGoalMissed":
		c.Kicking.FieldGoalMissed = n
	case "patMissed":
		c.Kicking.PATMissed = n
	default:
		return unknownRule(CategoryKicking, sub)
	}
	return nil
}

func (c *Config) updateDefense(sub string, value any) error {
	if sub == "" {
		switch v := value.(type) {
		case DefenseRules:
			c.Defense = &v
		case *DefenseRules:
			c.Defense = v
		default:
			return badValue(CategoryDefense, sub)
		}
		return nil
	}
	if c.Defense == nil {
		c.Defense = &DefenseRules{}
	}
	if sub == "pointsAllowed" {
		m, ok := value.(map[string]float64)
		if !ok {
			return badValue(CategoryDefense, sub)
		}
		if c.Defense.PointsAllowed == nil {
			c.Defense.PointsAllowed = make(map[string]float64, len(PointsAllowedRanges))
		}
		for k, v := range m {
			c.Defense.PointsAllowed[k] = v
		}
		return nil
	}
	n, ok := coefficient(value)
	if !ok {
		return badValue(CategoryDefense, sub)
	}
	switch sub {
	case "touchdowns":
		c.Defense.Touchdowns = n
	case "sacks":
		c.Defense.Sacks = n
	case "interceptions":
		c.Defense.Interceptions = n
	case "fumbleRecoveries":
		c.Defense.FumbleRecoveries = n
	case "safeties":
		c.Defense.Safeties = n
	case "forcedFumbles":
		c.Defense.ForcedFumbles = n
	case "blockedKicks":
		c.Defense.BlockedKicks = n
	default:
		return unknownRule(CategoryDefense, sub)
	}
	return nil
}

func (c *Config) updateSpecialTeams(sub string, value any) error {
	if sub == "" {
		switch v := value.(type) {
		case SpecialTeamsRules:
			c.SpecialTeams = &v
		case *SpecialTeamsRules:
			c.SpecialTeams = v
		default:
			return badValue(CategorySpecialTeams, sub)
		}
		return nil
	}
	if c.SpecialTeams == nil {
		c.SpecialTeams = &SpecialTeamsRules{}
	}
	var unit *SpecialTeamsUnitRules
	switch sub {
	case "defense":
		unit = &c.SpecialTeams.Defense
	case "player":
		unit = &c.SpecialTeams.Player
	default:
		return unknownRule(CategorySpecialTeams, sub)
	}
	m, ok := value.(map[string]float64)
	if !ok {
		return badValue(CategorySpecialTeams, sub)
	}
	for k, v := range m {
		switch k {
		case "touchdowns":
			unit.Touchdowns = v
		case "forcedFumbles":
			unit.ForcedFumbles = v
		case "fumbleRecoveries":
			unit.FumbleRecoveries = v
		default:
			return unknownRule(CategorySpecialTeams, sub+"."+k)
		}
	}
	return nil
}

func (c *Config) updateMisc(sub string, value any) error {
	if sub == "" {
		switch v := value.(type) {
		case MiscRules:
			c.Misc = &v
		case *MiscRules:
			c.Misc = v
		default:
			return badValue(CategoryMisc, sub)
		}
		return nil
	}
	if c.Misc == nil {
		c.Misc = &MiscRules{}
	}
	n, ok := coefficient(value)
	if !ok {
		return badValue(CategoryMisc, sub)
	}
	switch sub {
	case "fumbles":
		c.Misc.Fumbles = n
	case "fumblesLost":
		c.Misc.FumblesLost = n
	case "fumbleRecoveryTouchdowns":
		c.Misc.FumbleRecoveryTouchdowns = n
	default:
		return unknownRule(CategoryMisc, sub)
	}
	return nil
}
