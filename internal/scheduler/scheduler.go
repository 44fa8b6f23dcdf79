package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/sutariaa/fantsay-football-predictor/internal/service"
)

type Scheduler struct {
	s           gocron.Scheduler
	companion   *service.CompanionService
	sendMessage func(string) error
}

func NewScheduler(companion *service.CompanionService, sendMessage func(string) error) (*Scheduler, error) {
	location, err := time.LoadLocation("America/Chicago") // CDT
	if err != nil {
		slog.Error("Failed to load location", "error", err)
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:           s,
		companion:   companion,
		sendMessage: sendMessage,
	}, nil
}

func (s *Scheduler) Start() error {
	var err error

	// Weekly predictions digest - Thursday 18:30 CDT, before kickoff
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Thursday), gocron.NewAtTimes(gocron.NewAtTime(18, 30, 0))),
		gocron.NewTask(s.sendPredictions),
	)
	if err != nil {
		return fmt.Errorf("failed to create predictions job: %w", err)
	}

	// Season outlook - Tuesday 7:30 CDT, after the week wraps
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Tuesday), gocron.NewAtTimes(gocron.NewAtTime(7, 30, 0))),
		gocron.NewTask(s.sendSeasonOutlook),
	)
	if err != nil {
		return fmt.Errorf("failed to create season outlook job: %w", err)
	}

	// Favorite-team schedule refresher - Wednesday 7:30 CDT
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Wednesday), gocron.NewAtTimes(gocron.NewAtTime(7, 30, 0))),
		gocron.NewTask(s.sendTeamSchedule),
	)
	if err != nil {
		return fmt.Errorf("failed to create team schedule job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) sendPredictions() {
	report, err := s.companion.Predictions(s.companion.CurrentWeek())
	if err != nil {
		slog.Error("Failed to generate predictions", "error", err)
		return
	}
	s.sendMessage(report)
}

func (s *Scheduler) sendSeasonOutlook() {
	report, err := s.companion.SeasonOutlook()
	if err != nil {
		slog.Error("Failed to generate season outlook", "error", err)
		return
	}
	s.sendMessage(report)
}

func (s *Scheduler) sendTeamSchedule() {
	report, err := s.companion.TeamSchedule("")
	if err != nil {
		// No favorite selected is routine; skip quietly.
		slog.Info("Skipping team schedule digest", "reason", err)
		return
	}
	s.sendMessage(report)
}
