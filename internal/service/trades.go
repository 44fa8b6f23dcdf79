package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/sutariaa/fantsay-football-predictor/internal/models"
	"github.com/sutariaa/fantsay-football-predictor/internal/trade"
	"github.com/sutariaa/fantsay-football-predictor/internal/valuation"
)

// PlayerValue renders a player's tradeable value with the scoring
// breakdown behind it.
func (s *CompanionService) PlayerValue(name string) (string, error) {
	p, ok := s.ResolvePlayer(name)
	if !ok {
		return fmt.Sprintf("🔍 No player found matching '%s'.", name), nil
	}

	settings := s.repo.Settings()
	value, err := s.engine.PlayerValue(p, settings)
	if err != nil {
		return "", fmt.Errorf("error valuing player: %w", err)
	}
	breakdown, err := s.calc.ScoreBreakdown(p.ProjectedStats)
	if err != nil {
		return "", fmt.Errorf("error scoring player: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*%s* (%s - %s)\n", p.Name, p.Position, p.Team))
	sb.WriteString("━━━━━━━━━━━━━━━━\n")
	sb.WriteString(fmt.Sprintf("Trade value: *%d*\n", value))
	sb.WriteString(fmt.Sprintf("Projected points: %.1f\n", breakdown.Total))
	if p.Age > 0 {
		sb.WriteString(fmt.Sprintf("Age: %d\n", p.Age))
	}
	if p.InjuryStatus != models.InjuryHealthy {
		sb.WriteString(fmt.Sprintf("Status: %s\n", p.InjuryStatus))
	}
	return sb.String(), nil
}

// PickValue renders the value of a draft pick described in text, e.g.
// "2026 Round 1 Pick 5" or "2026 1.05".
func (s *CompanionService) PickValue(descriptor string) (string, error) {
	settings := s.repo.Settings()
	pick, err := valuation.ParsePickDescriptor(descriptor, settings.SeasonYear)
	if err != nil {
		return fmt.Sprintf("Could not read %q as a pick. Try \"2026 Round 1 Pick 5\".", descriptor), nil
	}

	value := s.engine.PickValue(pick, settings)
	return fmt.Sprintf("🎟 *%s*\nOverall pick %d • %s • value *%d*",
		pick, pick.Overall(settings.TeamCount), pick.Timing(settings.SeasonYear), value), nil
}

// AnalyzeTrade evaluates a proposal written as
// "<assets you give> for <assets you get>", assets comma-separated,
// picks in descriptor form.
func (s *CompanionService) AnalyzeTrade(input string) (string, error) {
	givingRaw, gettingRaw, found := strings.Cut(input, " for ")
	if !found {
		return "", fmt.Errorf("write the trade as: <giving> for <getting>")
	}

	settings := s.repo.Settings()
	giving := parseSide(givingRaw, settings.SeasonYear)
	getting := parseSide(gettingRaw, settings.SeasonYear)

	result, err := s.evaluator.Evaluate(giving, getting, settings)
	if err != nil {
		return "", fmt.Errorf("error evaluating trade: %w", err)
	}

	s.repo.AddTradeRecord(trade.Record{
		At:      time.Now(),
		Giving:  giving,
		Getting: getting,
		Result:  result,
	})

	return formatTradeResult(result), nil
}

func parseSide(raw string, seasonYear int) trade.Side {
	var side trade.Side
	for _, part := range strings.Split(raw, ",") {
		asset := strings.TrimSpace(part)
		if asset == "" {
			continue
		}
		if valuation.LooksLikePick(asset) {
			if pick, err := valuation.ParsePickDescriptor(asset, seasonYear); err == nil {
				side.Picks = append(side.Picks, pick)
				continue
			}
		}
		side.Players = append(side.Players, asset)
	}
	return side
}

func formatTradeResult(r *trade.Result) string {
	var sb strings.Builder
	sb.WriteString("🔄 *Trade Verdict*\n\n")

	sb.WriteString("*Giving:*\n")
	writeLineItems(&sb, r.LineItems, true)
	sb.WriteString(fmt.Sprintf("Total: *%d*\n\n", r.TotalGiving))

	sb.WriteString("*Getting:*\n")
	writeLineItems(&sb, r.LineItems, false)
	sb.WriteString(fmt.Sprintf("Total: *%d*\n\n", r.TotalGetting))

	sb.WriteString(fmt.Sprintf("Difference: %d (%.1f%%)\n", r.Diff, r.PercentDiff))
	sb.WriteString(verdictText(r))

	if len(r.Unresolved) > 0 {
		sb.WriteString(fmt.Sprintf("\n\n⚠️ Not found (counted as 0): %s", strings.Join(r.Unresolved, ", ")))
	}
	return sb.String()
}

func writeLineItems(sb *strings.Builder, items []trade.LineItem, giving bool) {
	for _, item := range items {
		if item.Giving != giving {
			continue
		}
		icon := "▫️"
		if item.Kind == trade.AssetPick {
			icon = "🎟"
		}
		sb.WriteString(fmt.Sprintf("%s %s — %d\n", icon, item.Description, item.Value))
	}
}

func verdictText(r *trade.Result) string {
	switch r.Verdict {
	case trade.VerdictBalanced:
		return "✅ Excellent trade — balanced for both sides."
	case trade.VerdictFair:
		return "👍 Fair trade."
	case trade.VerdictSlightFavorite:
		return fmt.Sprintf("⚖️ Slightly favors the *%s* side.", r.Favored)
	default:
		return fmt.Sprintf("🚨 Significantly favors the *%s* side.", r.Favored)
	}
}

// TradeHistory renders the retained past evaluations, most recent
// first.
func (s *CompanionService) TradeHistory() (string, error) {
	records := s.repo.TradeHistory()
	if len(records) == 0 {
		return "No trades analyzed yet.", nil
	}

	var sb strings.Builder
	sb.WriteString("🗂 *Recent Trade Analyses*\n\n")
	for i, rec := range records {
		sb.WriteString(fmt.Sprintf("%d. %s — %s ⇄ %s\n   %d vs %d (%s)\n",
			i+1, rec.At.Format("Jan 2 15:04"), sideSummary(rec.Giving), sideSummary(rec.Getting),
			rec.Result.TotalGiving, rec.Result.TotalGetting, rec.Result.Verdict))
	}
	return sb.String(), nil
}

func sideSummary(side trade.Side) string {
	assets := make([]string, 0, len(side.Players)+len(side.Picks))
	assets = append(assets, side.Players...)
	for _, pick := range side.Picks {
		assets = append(assets, pick.String())
	}
	return strings.Join(assets, ", ")
}
