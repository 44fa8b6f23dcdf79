package valuation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/sutariaa/fantsay-football-predictor/internal/models"
)

// ErrInvalidPickDescriptor marks a pick description missing a round or
// slot. Valuation of an unparseable descriptor is 0, never a failure.
var ErrInvalidPickDescriptor = errors.New("invalid pick descriptor")

var (
	// "2026 Round 2 Pick 5", "Round 2 Pick 5"
	longPickForm = regexp.MustCompile(`(?i)^\s*(?:(\d{4})\s+)?round\s+(\d+)\s+pick\s+(\d+)\s*$`)
	// "2026 2.05", "2.05"
	shortPickForm = regexp.MustCompile(`^\s*(?:(\d{4})\s+)?(\d{1,2})\.(\d{1,2})\s*$`)
)

// ParsePickDescriptor parses a human pick description. A missing year
// defaults to the given season year.
func ParsePickDescriptor(text string, seasonYear int) (models.DraftPick, error) {
	m := longPickForm.FindStringSubmatch(text)
	if m == nil {
		m = shortPickForm.FindStringSubmatch(text)
	}
	if m == nil {
		return models.DraftPick{}, fmt.Errorf("%w: %q", ErrInvalidPickDescriptor, text)
	}

	year := seasonYear
	if m[1] != "" {
		year, _ = strconv.Atoi(m[1])
	}
	round, _ := strconv.Atoi(m[2])
	slot, _ := strconv.Atoi(m[3])
	if round < 1 || slot < 1 {
		return models.DraftPick{}, fmt.Errorf("%w: %q", ErrInvalidPickDescriptor, text)
	}

	return models.DraftPick{Year: year, Round: round, Slot: slot}, nil
}

// LooksLikePick reports whether a trade asset string should be treated
// as a pick descriptor rather than a player name.
func LooksLikePick(text string) bool {
	return longPickForm.MatchString(text) || shortPickForm.MatchString(text)
}
