package models

type LeagueType string

const (
	LeagueRedraft LeagueType = "redraft"
	LeagueKeeper  LeagueType = "keeper"
	LeagueDynasty LeagueType = "dynasty"
)

// RosterRequirements holds starting-slot counts per position plus flex
// and bench slots.
type RosterRequirements struct {
	QB    int
	RB    int
	WR    int
	TE    int
	Flex  int
	Bench int
}

func DefaultRosterRequirements() RosterRequirements {
	return RosterRequirements{QB: 1, RB: 2, WR: 2, TE: 1, Flex: 1, Bench: 6}
}

// LeagueSettings is the snapshot the valuation engine reads per
// computation. Edited by the surrounding settings surface.
type LeagueSettings struct {
	Type        LeagueType
	TeamCount   int
	KeeperCount int
	Roster      RosterRequirements
	CurrentWeek int
	SeasonYear  int
}
