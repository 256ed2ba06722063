package scheduler

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/realty-service/internal/config"
	"github.com/Dan9191/realty-service/internal/models"
)

type mockJobs struct{ mock.Mock }

func (m *mockJobs) RefreshRates(ctx context.Context) (models.MarketRates, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.MarketRates), args.Error(1)
}

func (m *mockJobs) SendDigest(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestNewScheduler(t *testing.T) {
	cfg := &config.Config{RateRefreshSchedule: "@every 1h", DigestSchedule: "0 8 * * *"}

	s, err := NewScheduler(cfg, &mockJobs{}, quietLogger())
	require.NoError(t, err)
	assert.Len(t, s.cron.Entries(), 2)
}

func TestNewScheduler_InvalidSchedule(t *testing.T) {
	tests := []config.Config{
		{RateRefreshSchedule: "hourly", DigestSchedule: "0 8 * * *"},
		{RateRefreshSchedule: "@every 1h", DigestSchedule: "8am"},
	}

	for _, cfg := range tests {
		_, err := NewScheduler(&cfg, &mockJobs{}, quietLogger())
		assert.Error(t, err)
	}
}

func TestJobsCallThrough(t *testing.T) {
	jobs := &mockJobs{}
	jobs.On("RefreshRates", mock.Anything).Return(models.MarketRates{ThirtyYear: 6.1, FifteenYear: 5.3}, nil).Once()
	jobs.On("RefreshRates", mock.Anything).Return(models.MarketRates{}, errors.New("feed down")).Once()
	jobs.On("SendDigest", mock.Anything).Return(nil).Once()

	s, err := NewScheduler(&config.Config{RateRefreshSchedule: "@every 1h", DigestSchedule: "0 8 * * *"}, jobs, quietLogger())
	require.NoError(t, err)

	s.refreshRates()
	s.refreshRates()
	s.sendDigest()
	jobs.AssertExpectations(t)
}

func TestStartStop(t *testing.T) {
	s, err := NewScheduler(&config.Config{RateRefreshSchedule: "@every 1h", DigestSchedule: "0 8 * * *"}, &mockJobs{}, quietLogger())
	require.NoError(t, err)

	s.Start()
	s.Stop()
}
