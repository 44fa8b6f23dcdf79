package trade

import (
	"errors"
	"fmt"
	"time"

	"github.com/sutariaa/fantsay-football-predictor/internal/models"
	"github.com/sutariaa/fantsay-football-predictor/internal/valuation"
)

// ErrEmptyTradeSide is returned when a proposal has a side with no
// players and no picks; a trade needs content on both sides.
var ErrEmptyTradeSide = errors.New("trade side has no assets")

// PlayerSource resolves a user-entered player name to a projection.
// Unresolved names degrade to value 0 rather than failing the trade,
// since partial entry during editing is expected.
type PlayerSource interface {
	ResolvePlayer(name string) (models.PlayerProjection, bool)
}

// Side is one bundle of trade assets.
type Side struct {
	Players []string
	Picks   []models.DraftPick
}

func (s Side) Empty() bool {
	return len(s.Players) == 0 && len(s.Picks) == 0
}

type AssetKind string

const (
	AssetPlayer AssetKind = "player"
	AssetPick   AssetKind = "pick"
)

// LineItem is one valued asset in the evaluation output; the per-side
// line items always sum back to that side's total.
type LineItem struct {
	Giving      bool
	Kind        AssetKind
	Description string
	Value       int
}

type Classification string

const (
	VerdictBalanced            Classification = "balanced"
	VerdictFair                Classification = "fair"
	VerdictSlightFavorite      Classification = "slight favorite"
	VerdictSignificantFavorite Classification = "significant favorite"
)

// Fixed boundaries on the absolute value difference between sides.
const (
	balancedThreshold = 5
	fairThreshold     = 15
	slightThreshold   = 25
)

type FavoredSide string

const (
	FavoredNone    FavoredSide = "none"
	FavoredGiving  FavoredSide = "giving"
	FavoredGetting FavoredSide = "getting"
)

type Result struct {
	TotalGiving  int
	TotalGetting int
	Diff         int
	PercentDiff  float64
	Verdict      Classification
	Favored      FavoredSide
	LineItems    []LineItem
	// Unresolved lists player names that matched nothing in the
	// directory; they contributed 0 without blocking the evaluation.
	Unresolved []string
}

// Record is one retained past evaluation, display-only.
type Record struct {
	At      time.Time
	Giving  Side
	Getting Side
	Result  *Result
}

// Evaluator values both sides of a proposed trade and classifies its
// fairness.
type Evaluator struct {
	engine  *valuation.Engine
	players PlayerSource
}

func NewEvaluator(engine *valuation.Engine, players PlayerSource) *Evaluator {
	return &Evaluator{engine: engine, players: players}
}

// Evaluate totals each side's players and picks, then classifies the
// difference. Swapping the sides flips the favored side and leaves
// Diff and PercentDiff unchanged.
func (e *Evaluator) Evaluate(giving, getting Side, settings models.LeagueSettings) (*Result, error) {
	if giving.Empty() || getting.Empty() {
		return nil, ErrEmptyTradeSide
	}

	result := &Result{}

	totalGiving, err := e.valueSide(giving, true, settings, result)
	if err != nil {
		return nil, err
	}
	totalGetting, err := e.valueSide(getting, false, settings, result)
	if err != nil {
		return nil, err
	}

	result.TotalGiving = totalGiving
	result.TotalGetting = totalGetting

	diff := totalGiving - totalGetting
	if diff < 0 {
		diff = -diff
	}
	result.Diff = diff

	if larger := max(totalGiving, totalGetting); larger > 0 {
		result.PercentDiff = float64(diff) / float64(larger) * 100
	}

	result.Verdict, result.Favored = classify(diff, totalGiving, totalGetting)
	return result, nil
}

func (e *Evaluator) valueSide(side Side, giving bool, settings models.LeagueSettings, result *Result) (int, error) {
	total := 0

	for _, name := range side.Players {
		value := 0
		if p, ok := e.players.ResolvePlayer(name); ok {
			v, err := e.engine.PlayerValue(p, settings)
			if err != nil {
				return 0, fmt.Errorf("valuing %s: %w", name, err)
			}
			value = v
		} else {
			result.Unresolved = append(result.Unresolved, name)
		}
		total += value
		result.LineItems = append(result.LineItems, LineItem{
			Giving: giving, Kind: AssetPlayer, Description: name, Value: value,
		})
	}

	for _, pick := range side.Picks {
		value := e.engine.PickValue(pick, settings)
		total += value
		result.LineItems = append(result.LineItems, LineItem{
			Giving: giving, Kind: AssetPick, Description: pick.String(), Value: value,
		})
	}

	return total, nil
}

func classify(diff, totalGiving, totalGetting int) (Classification, FavoredSide) {
	favored := FavoredNone
	if totalGiving > totalGetting {
		favored = FavoredGiving
	} else if totalGetting > totalGiving {
		favored = FavoredGetting
	}

	switch {
	case diff < balancedThreshold:
		return VerdictBalanced, FavoredNone
	case diff < fairThreshold:
		return VerdictFair, FavoredNone
	case diff < slightThreshold:
		return VerdictSlightFavorite, favored
	default:
		return VerdictSignificantFavorite, favored
	}
}
