package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/Dan9191/realty-service/internal/config"
	"github.com/Dan9191/realty-service/internal/models"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// jobTimeout bounds a single run of any job
const jobTimeout = 2 * time.Minute

// Jobs is the work the scheduler triggers
type Jobs interface {
	RefreshRates(ctx context.Context) (models.MarketRates, error)
	SendDigest(ctx context.Context) error
}

// Scheduler runs periodic rate refreshes and the daily lead digest
type Scheduler struct {
	cron   *cron.Cron
	jobs   Jobs
	logger *logrus.Logger
}

// NewScheduler registers both jobs using the configured cron expressions
func NewScheduler(cfg *config.Config, jobs Jobs, logger *logrus.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:   cron.New(),
		jobs:   jobs,
		logger: logger,
	}

	if _, err := s.cron.AddFunc(cfg.RateRefreshSchedule, s.refreshRates); err != nil {
		return nil, fmt.Errorf("invalid rate refresh schedule %q: %w", cfg.RateRefreshSchedule, err)
	}
	if _, err := s.cron.AddFunc(cfg.DigestSchedule, s.sendDigest); err != nil {
		return nil, fmt.Errorf("invalid digest schedule %q: %w", cfg.DigestSchedule, err)
	}
	return s, nil
}

// Start starts the scheduler in its own goroutine
func (s *Scheduler) Start() {
	s.logger.Infof("Starting scheduler with %d jobs", len(s.cron.Entries()))
	s.cron.Start()
}

// Stop stops the scheduler and waits for running jobs to finish
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) refreshRates() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	rates, err := s.jobs.RefreshRates(ctx)
	if err != nil {
		s.logger.Errorf("Scheduled rate refresh failed: %v", err)
		return
	}
	s.logger.Infof("Scheduled rate refresh: 30yr %.2f%%, 15yr %.2f%%", rates.ThirtyYear, rates.FifteenYear)
}

func (s *Scheduler) sendDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if err := s.jobs.SendDigest(ctx); err != nil {
		s.logger.Errorf("Scheduled lead digest failed: %v", err)
	}
}
