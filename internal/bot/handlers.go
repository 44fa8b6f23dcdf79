package bot

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sutariaa/fantsay-football-predictor/internal/service"
)

type Handler struct {
	companion *service.CompanionService
}

func NewHandler(companion *service.CompanionService) *Handler {
	return &Handler{companion: companion}
}

func (h *Handler) HandleCommand(update tgbotapi.Update) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	command := strings.ToLower(update.Message.Command())
	args := update.Message.CommandArguments()
	msg.ParseMode = "Markdown"

	switch command {
	case "start":
		msg.Text = "Welcome to GridironBot! Use /help to see available commands."
	case "help":
		msg.Text = helpText
	case "team":
		h.handleTeam(&msg, args)
	case "clearteam":
		msg.Text = h.companion.ClearTeam()
	case "schedule":
		h.handleSchedule(&msg, args)
	case "predictions":
		h.handlePredictions(&msg, args)
	case "season":
		h.handleSeason(&msg)
	case "value":
		h.handleValue(&msg, args)
	case "pick":
		h.handlePick(&msg, args)
	case "trade":
		h.handleTrade(&msg, args)
	case "history":
		h.handleHistory(&msg)
	case "scoring":
		h.handleScoring(&msg)
	case "setscoring":
		h.handleSetScoring(&msg, args)
	case "preset":
		h.handlePreset(&msg, args)
	case "export":
		h.handleExport(&msg)
	case "import":
		h.handleImport(&msg, args)
	case "resetscoring":
		msg.Text = h.companion.ResetScoring()
	case "settings":
		h.handleSettings(&msg)
	case "set":
		h.handleSet(&msg, args)
	default:
		msg.Text = "Unknown command. Use /help to see available commands."
	}

	return msg
}

const helpText = "Available commands:\n" +
	"/team <team> - Follow a team\n" +
	"/clearteam - Stop following a team\n" +
	"/schedule [team] - Schedule with win odds\n" +
	"/predictions [week] - Game predictions for a week\n" +
	"/season - Projected season standings\n" +
	"/value <player> - Player trade value\n" +
	"/pick <round.slot or Round N Pick M> - Draft pick value\n" +
	"/trade <give> for <get> - Evaluate a trade\n" +
	"/history - Recent trade evaluations\n" +
	"/scoring - Current scoring settings\n" +
	"/setscoring <category> <rule> <value> - Edit a scoring rule\n" +
	"/preset <standard|ppr|halfPpr|superFlex> - Apply a scoring preset\n" +
	"/export - Export scoring settings\n" +
	"/import <json> - Import scoring settings\n" +
	"/resetscoring - Restore default scoring\n" +
	"/settings - League settings\n" +
	"/set <key> <value> - Edit a league setting"

func (h *Handler) handleTeam(msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide a team. Usage: /team <team name or abbreviation>"
		return
	}
	result, err := h.companion.SelectTeam(args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error selecting team: %v", err)
	} else {
		msg.Text = result
	}
}

func (h *Handler) handleSchedule(msg *tgbotapi.MessageConfig, args string) {
	report, err := h.companion.TeamSchedule(args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching schedule: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handlePredictions(msg *tgbotapi.MessageConfig, args string) {
	week := h.companion.CurrentWeek()
	if args != "" {
		n, err := strconv.Atoi(strings.TrimSpace(args))
		if err != nil {
			msg.Text = "Week must be a number. Usage: /predictions [week]"
			return
		}
		week = n
	}
	report, err := h.companion.Predictions(week)
	if err != nil {
		msg.Text = fmt.Sprintf("Error generating predictions: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleSeason(msg *tgbotapi.MessageConfig) {
	report, err := h.companion.SeasonOutlook()
	if err != nil {
		msg.Text = fmt.Sprintf("Error generating season outlook: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleValue(msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide a player name. Usage: /value <player name>"
		return
	}
	result, err := h.companion.PlayerValue(args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error valuing player: %v", err)
	} else {
		msg.Text = result
	}
}

func (h *Handler) handlePick(msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide a pick. Usage: /pick 2.05 or /pick 2026 Round 1 Pick 3"
		return
	}
	result, err := h.companion.PickValue(args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error valuing pick: %v", err)
	} else {
		msg.Text = result
	}
}

func (h *Handler) handleTrade(msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Usage: /trade <players/picks you give> for <players/picks you get>"
		return
	}
	report, err := h.companion.AnalyzeTrade(args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error evaluating trade: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleHistory(msg *tgbotapi.MessageConfig) {
	report, err := h.companion.TradeHistory()
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching trade history: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleScoring(msg *tgbotapi.MessageConfig) {
	report, err := h.companion.ScoringSummary()
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching scoring settings: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleSetScoring(msg *tgbotapi.MessageConfig, args string) {
	fields := strings.Fields(args)
	if len(fields) != 3 {
		msg.Text = "Usage: /setscoring <category> <rule> <value>, e.g. /setscoring receiving receptions 0.5"
		return
	}
	value, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		msg.Text = "Value must be a number."
		return
	}
	result, err := h.companion.UpdateScoringRule(fields[0], fields[1], value)
	if err != nil {
		msg.Text = fmt.Sprintf("Error updating scoring: %v", err)
	} else {
		msg.Text = result
	}
}

func (h *Handler) handlePreset(msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide a preset. Usage: /preset <standard|ppr|halfPpr|superFlex>"
		return
	}
	result, err := h.companion.ApplyPreset(args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error applying preset: %v", err)
	} else {
		msg.Text = result
	}
}

func (h *Handler) handleExport(msg *tgbotapi.MessageConfig) {
	text, err := h.companion.ExportScoring()
	if err != nil {
		msg.Text = fmt.Sprintf("Error exporting scoring: %v", err)
		return
	}
	msg.ParseMode = ""
	msg.Text = text
}

func (h *Handler) handleImport(msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please paste the exported JSON. Usage: /import <json>"
		return
	}
	result, err := h.companion.ImportScoring(args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error importing scoring: %v", err)
	} else {
		msg.Text = result
	}
}

func (h *Handler) handleSettings(msg *tgbotapi.MessageConfig) {
	report, err := h.companion.LeagueSummary()
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching league settings: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleSet(msg *tgbotapi.MessageConfig, args string) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		msg.Text = "Usage: /set <type|teams|keepers|week> <value>"
		return
	}
	result, err := h.companion.UpdateLeagueSetting(fields[0], fields[1])
	if err != nil {
		msg.Text = fmt.Sprintf("Error updating setting: %v", err)
	} else {
		msg.Text = result
	}
}
