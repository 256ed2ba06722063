package rates

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Dan9191/realty-service/internal/config"
	"github.com/Dan9191/realty-service/internal/models"
	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"
)

// Client reads the weekly Primary Mortgage Market Survey feed
type Client struct {
	url    string
	client *http.Client
	log    *logrus.Logger
}

// NewClient initializes a new rate feed client
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		url: cfg.RateFeedURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// fetch downloads the raw XML feed
func (c *Client) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/xml")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.log.Debugf("Rate feed XML response: %d bytes", len(body))
	return body, nil
}

// parseXMLResponse extracts the most recent week from the feed.
// Weeks are listed newest first.
func parseXMLResponse(rawBody []byte) (models.MarketRates, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawBody); err != nil {
		return models.MarketRates{}, fmt.Errorf("failed to parse XML: %w", err)
	}

	weeks := doc.FindElements("//week")
	if len(weeks) == 0 {
		return models.MarketRates{}, fmt.Errorf("no weekly rate data found in XML")
	}
	latest := weeks[0]

	thirty, err := rateValue(latest, "frm30")
	if err != nil {
		return models.MarketRates{}, err
	}
	fifteen, err := rateValue(latest, "frm15")
	if err != nil {
		return models.MarketRates{}, err
	}

	return models.MarketRates{
		Date:        latest.SelectAttrValue("date", ""),
		ThirtyYear:  thirty,
		FifteenYear: fifteen,
		Source:      "feed",
	}, nil
}

func rateValue(week *etree.Element, tag string) (float64, error) {
	el := week.FindElement("./" + tag)
	if el == nil {
		return 0, fmt.Errorf("%s element not found in XML", tag)
	}
	rate, err := strconv.ParseFloat(strings.TrimSpace(el.Text()), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", tag, err)
	}
	if rate <= 0 || rate > 25 {
		return 0, fmt.Errorf("%s rate %.2f out of range", tag, rate)
	}
	return rate, nil
}

// LatestRates retrieves the current average 30 and 15 year fixed rates
func (c *Client) LatestRates(ctx context.Context) (models.MarketRates, error) {
	body, err := c.fetch(ctx)
	if err != nil {
		return models.MarketRates{}, err
	}

	rates, err := parseXMLResponse(body)
	if err != nil {
		return models.MarketRates{}, err
	}

	c.log.Infof("Retrieved market rates for %s: 30yr %.2f%%, 15yr %.2f%%", rates.Date, rates.ThirtyYear, rates.FifteenYear)
	return rates, nil
}
