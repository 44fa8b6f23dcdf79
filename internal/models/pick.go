package models

import "fmt"

type PickTiming string

const (
	PickCurrent PickTiming = "current"
	PickNext    PickTiming = "next"
	PickFuture  PickTiming = "future"
)

// DraftPick is a current-year or future draft selection. Slot is the
// position within the round, bounded by league size; the overall pick
// number is (Round-1)*leagueSize + Slot.
type DraftPick struct {
	Year  int
	Round int
	Slot  int
}

func (p DraftPick) Overall(leagueSize int) int {
	return (p.Round-1)*leagueSize + p.Slot
}

// Timing classifies the pick relative to the given season year.
func (p DraftPick) Timing(seasonYear int) PickTiming {
	switch {
	case p.Year <= seasonYear:
		return PickCurrent
	case p.Year == seasonYear+1:
		return PickNext
	default:
		return PickFuture
	}
}

func (p DraftPick) String() string {
	return fmt.Sprintf("%d Round %d Pick %d", p.Year, p.Round, p.Slot)
}
