package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sutariaa/fantsay-football-predictor/internal/api/sleeper"
	"github.com/sutariaa/fantsay-football-predictor/internal/bot"
	"github.com/sutariaa/fantsay-football-predictor/internal/config"
	"github.com/sutariaa/fantsay-football-predictor/internal/models"
	"github.com/sutariaa/fantsay-football-predictor/internal/predictor"
	"github.com/sutariaa/fantsay-football-predictor/internal/refdata"
	"github.com/sutariaa/fantsay-football-predictor/internal/repository/memory"
	"github.com/sutariaa/fantsay-football-predictor/internal/scheduler"
	"github.com/sutariaa/fantsay-football-predictor/internal/scoring"
	"github.com/sutariaa/fantsay-football-predictor/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Error("Error loading .env file", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	sleeperClient := sleeper.NewClient(cfg.SleeperAPI)
	sleeperAPI := sleeper.NewAPI(sleeperClient)

	repo := memory.NewRepository(leagueSettings(cfg.League))
	if cfg.League.FavoriteTeam != "" {
		repo.SetFavorite(strings.ToUpper(cfg.League.FavoriteTeam))
	}

	pred := predictor.New(refdata.Ratings, refdata.Schedule2025, refdata.DefaultRating)
	scoringConfig := scoring.DefaultConfig()

	companion := service.NewCompanionService(sleeperAPI, repo, pred, scoringConfig)

	telegramBot, err := bot.NewTelegramBot(cfg.TelegramBot.Token, cfg.TelegramBot.ChatID, companion)
	if err != nil {
		return err
	}

	sched, err := scheduler.NewScheduler(companion, telegramBot.SendMessage)
	if err != nil {
		return err
	}

	if err := sched.Start(); err != nil {
		return err
	}
	defer func() {
		err := sched.Stop()
		if err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	http.HandleFunc("/", healthCheckHandler)

	go func() {
		if err := http.ListenAndServe(":80", nil); err != nil {
			slog.Error("Error starting HTTP server", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := telegramBot.Start(ctx); err != nil {
			slog.Error("Error running telegram bot", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	return nil
}

func leagueSettings(l config.League) models.LeagueSettings {
	leagueType := models.LeagueType(strings.ToLower(l.Type))
	switch leagueType {
	case models.LeagueRedraft, models.LeagueKeeper, models.LeagueDynasty:
	default:
		slog.Error("Unknown league type, defaulting to redraft", "type", l.Type)
		leagueType = models.LeagueRedraft
	}

	return models.LeagueSettings{
		Type:        leagueType,
		TeamCount:   l.TeamCount,
		KeeperCount: l.KeeperCount,
		Roster:      models.DefaultRosterRequirements(),
		CurrentWeek: l.CurrentWeek,
		SeasonYear:  l.SeasonYear,
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
