package service

import (
	"context"
	"time"

	"github.com/Dan9191/realty-service/internal/cache"
	"github.com/Dan9191/realty-service/internal/config"
	"github.com/Dan9191/realty-service/internal/metrics"
	"github.com/Dan9191/realty-service/internal/models"
	"github.com/sirupsen/logrus"
)

// Store is the persistence the service needs
type Store interface {
	CreateLead(ctx context.Context, lead *models.Lead) error
	LeadExists(ctx context.Context, fingerprint string) (bool, error)
	ListLeads(ctx context.Context, since time.Time, limit int) ([]models.Lead, error)
	CreateAgent(ctx context.Context, agent *models.Agent) error
	FindAgentByEmail(ctx context.Context, email string) (*models.Agent, error)
}

// RateSource provides current market mortgage rates
type RateSource interface {
	LatestRates(ctx context.Context) (models.MarketRates, error)
}

// Notifier delivers lead emails to the broker
type Notifier interface {
	SendLeadNotification(lead *models.Lead) error
	SendLeadDigest(since time.Time, leads []models.Lead) error
}

// Service handles business logic
type Service struct {
	repo     Store
	rates    RateSource
	cache    cache.Cache
	notifier Notifier
	metrics  *metrics.Collector
	log      *logrus.Logger
	config   *config.Config
	now      func() time.Time
}

// NewService initializes a new service
func NewService(repo Store, rates RateSource, c cache.Cache, notifier Notifier, m *metrics.Collector, log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{
		repo:     repo,
		rates:    rates,
		cache:    c,
		notifier: notifier,
		metrics:  m,
		log:      log,
		config:   cfg,
		now:      time.Now,
	}
}
