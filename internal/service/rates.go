package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Dan9191/realty-service/internal/models"
)

const (
	ratesCacheKey  = "realty:rates:current"
	sourceFallback = "fallback"
)

// CurrentRates returns cached market rates, fetching the feed on a miss.
// When the feed is unavailable the configured fallback rates are returned and
// cached for RateFallbackTTL, so an outage costs one feed call per window.
func (s *Service) CurrentRates(ctx context.Context) models.MarketRates {
	if raw, ok := s.cache.Get(ctx, ratesCacheKey); ok {
		var rates models.MarketRates
		if err := json.Unmarshal([]byte(raw), &rates); err == nil {
			if rates.Source != sourceFallback {
				rates.Source = "cache"
			}
			return rates
		}
		s.log.Warn("Discarding unreadable cached rates")
	}

	rates, err := s.RefreshRates(ctx)
	if err != nil {
		s.log.Warnf("Using fallback rates: %v", err)
		fallback := models.MarketRates{
			Date:        s.now().Format("2006-01-02"),
			ThirtyYear:  s.config.FallbackRate30,
			FifteenYear: s.config.FallbackRate15,
			Source:      sourceFallback,
		}
		s.cacheRates(ctx, fallback, s.config.RateFallbackTTL)
		return fallback
	}
	return rates
}

// RefreshRates fetches the feed and stores the result in the cache
func (s *Service) RefreshRates(ctx context.Context) (models.MarketRates, error) {
	rates, err := s.rates.LatestRates(ctx)
	s.metrics.RecordRateFetch(err, rates.ThirtyYear, rates.FifteenYear)
	if err != nil {
		return models.MarketRates{}, fmt.Errorf("failed to fetch market rates: %w", err)
	}

	// the fetched rates are still good for this request if caching fails
	s.cacheRates(ctx, rates, s.config.RateCacheTTL)
	return rates, nil
}

func (s *Service) cacheRates(ctx context.Context, rates models.MarketRates, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	raw, err := json.Marshal(rates)
	if err != nil {
		s.log.Errorf("Failed to encode market rates: %v", err)
		return
	}
	if err := s.cache.Set(ctx, ratesCacheKey, string(raw), ttl); err != nil {
		s.log.Errorf("Failed to cache market rates: %v", err)
	}
}
