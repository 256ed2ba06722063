package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Dan9191/realty-service/internal/cache"
	"github.com/Dan9191/realty-service/internal/config"
	"github.com/Dan9191/realty-service/internal/metrics"
	"github.com/Dan9191/realty-service/internal/models"
	"github.com/Dan9191/realty-service/internal/repository"
	"github.com/Dan9191/realty-service/internal/service"
)

type memoryStore struct {
	mu     sync.Mutex
	leads  []models.Lead
	agents map[string]*models.Agent
}

func (s *memoryStore) CreateLead(_ context.Context, lead *models.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	lead.CreatedAt = time.Now()
	s.leads = append(s.leads, *lead)
	return nil
}

func (s *memoryStore) LeadExists(_ context.Context, fingerprint string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.leads {
		if l.EmailFingerprint == fingerprint {
			return true, nil
		}
	}
	return false, nil
}

func (s *memoryStore) ListLeads(_ context.Context, since time.Time, limit int) ([]models.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Lead{}
	for _, l := range s.leads {
		if !l.CreatedAt.Before(since) && len(out) < limit {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *memoryStore) CreateAgent(_ context.Context, agent *models.Agent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	agent.ID = int64(len(s.agents) + 1)
	s.agents[agent.Email] = agent
	return nil
}

func (s *memoryStore) FindAgentByEmail(_ context.Context, email string) (*models.Agent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.agents[email]; ok {
		return a, nil
	}
	return nil, repository.ErrNotFound
}

type staticRates struct{ err error }

func (r staticRates) LatestRates(context.Context) (models.MarketRates, error) {
	if r.err != nil {
		return models.MarketRates{}, r.err
	}
	return models.MarketRates{Date: "2026-10-08", ThirtyYear: 6.12, FifteenYear: 5.34, Source: "feed"}, nil
}

type nopNotifier struct{}

func (nopNotifier) SendLeadNotification(*models.Lead) error { return nil }
func (nopNotifier) SendLeadDigest(time.Time, []models.Lead) error { return nil }

func newServer(t *testing.T, rates service.RateSource) (*httptest.Server, *memoryStore) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := &config.Config{
		JWTSecret:      "test-secret",
		HMACSecret:     "test-hmac",
		EncryptionKey:  "0123456789abcdef",
		RateCacheTTL:   time.Hour,
		FallbackRate30: 6.5,
		FallbackRate15: 5.75,
	}
	store := &memoryStore{agents: map[string]*models.Agent{}}
	m := metrics.NewCollector()
	svc := service.NewService(store, rates, cache.NewMemoryCache(), nopNotifier{}, m, logger, cfg)

	srv := httptest.NewServer(NewHandler(svc, logger).Router(cfg, m))
	t.Cleanup(srv.Close)
	return srv, store
}

func post(t *testing.T, url, body string) (*http.Response, map[string]any) {
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp, out
}

func TestMortgage(t *testing.T) {
	srv, _ := newServer(t, staticRates{})

	resp, out := post(t, srv.URL+"/api/v1/calculators/mortgage", `{
		"home_price": 300000, "down_payment": 20, "down_payment_type": "percent",
		"interest_rate": 6.5, "loan_term_years": 30,
		"property_taxes_annual": 7200, "home_insurance_annual": 2400, "hoa_fees_monthly": 50
	}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1516.96, out["principal_and_interest"])
	assert.Equal(t, 2366.96, out["total_monthly"])
	assert.Len(t, out["schedule"], 31) // month 1 plus one row per year
}

func TestMortgage_ValidationFields(t *testing.T) {
	srv, _ := newServer(t, staticRates{})

	resp, out := post(t, srv.URL+"/api/v1/calculators/mortgage",
		`{"home_price": 0, "down_payment": 20, "down_payment_type": "percent", "interest_rate": 6.5, "loan_term_years": 30}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "validation failed", out["error"])
	assert.Contains(t, out["fields"], "home_price")
}

func TestMalformedJSON(t *testing.T) {
	srv, _ := newServer(t, staticRates{})

	for _, path := range []string{"mortgage", "affordability", "net-proceeds", "home-value", "repairs", "offer-score"} {
		resp, out := post(t, srv.URL+"/api/v1/calculators/"+path, `{"home_price":`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
		assert.Equal(t, "invalid request body", out["error"], path)
	}
}

func TestOtherCalculators(t *testing.T) {
	srv, _ := newServer(t, staticRates{})

	tests := []struct {
		path string
		body string
		key  string
	}{
		{"net-proceeds", `{"sale_price": 350000, "mortgage_balance": 200000}`, "net_proceeds"},
		{"home-value", `{"square_feet": 2000, "neighborhood": "Kingwood", "condition": "good", "timeline": "exploring"}`, "mid_estimate"},
		{"repairs", `{"roof": "repair", "hvac": "good"}`, "items"},
		{"offer-score", `{"offer_price": 300000, "list_price": 300000, "financing_type": "cash", "down_payment_percent": 100, "closing_days": 14}`, "total_score"},
		{"affordability", `{"home_price": 250000, "down_payment": 10, "down_payment_type": "percent", "loan_term_years": 15}`, "cash_to_close"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, out := post(t, srv.URL+"/api/v1/calculators/"+tt.path, tt.body)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Contains(t, out, tt.key)
		})
	}
}

func TestCurrentRates_Fallback(t *testing.T) {
	srv, _ := newServer(t, staticRates{err: errors.New("feed down")})

	resp, err := http.Get(srv.URL + "/api/v1/rates/current")
	require.NoError(t, err)
	defer resp.Body.Close()

	var rates models.MarketRates
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rates))
	assert.Equal(t, "fallback", rates.Source)
	assert.Equal(t, 6.5, rates.ThirtyYear)
}

func TestNeighborhoods(t *testing.T) {
	srv, _ := newServer(t, staticRates{})

	resp, err := http.Get(srv.URL + "/api/v1/neighborhoods")
	require.NoError(t, err)
	defer resp.Body.Close()

	var list []models.Neighborhood
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.NotEmpty(t, list)
}

func TestLeadFlow(t *testing.T) {
	srv, store := newServer(t, staticRates{})
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)
	store.agents["broker@example.com"] = &models.Agent{ID: 1, Email: "broker@example.com", PasswordHash: string(hash)}

	resp, out := post(t, srv.URL+"/api/v1/leads",
		`{"name": "Jordan Lee", "email": "jordan@example.com", "zip": "77339", "source": "mortgage"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "77339-kingwood-mortgage", out["tag"])

	resp, out = post(t, srv.URL+"/api/v1/leads", `{"name": "J", "email": "nope", "source": "contact"}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, out["fields"], "email")

	// leads are not public
	resp, err = http.Get(srv.URL + "/api/v1/leads")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, out = post(t, srv.URL+"/api/v1/auth/login", `{"email": "broker@example.com", "password": "wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, out = post(t, srv.URL+"/api/v1/auth/login", `{"email": "broker@example.com", "password": "hunter22"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := out["token"].(string)
	require.NotEmpty(t, token)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/leads?limit=10", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []models.Lead
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, "jordan@example.com", list[0].Email)
}

func TestListLeads_BadQuery(t *testing.T) {
	srv, store := newServer(t, staticRates{})
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)
	store.agents["a@example.com"] = &models.Agent{ID: 1, Email: "a@example.com", PasswordHash: string(hash)}

	_, out := post(t, srv.URL+"/api/v1/auth/login", `{"email": "a@example.com", "password": "pw"}`)
	token := out["token"].(string)

	for _, q := range []string{"since=yesterday", "limit=-1"} {
		req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/leads?"+q, nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	srv, _ := newServer(t, staticRates{})
	post(t, srv.URL+"/api/v1/calculators/net-proceeds", `{"sale_price": 350000}`)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.Contains(body, []byte(`realty_calculations_total{calculator="net-proceeds"} 1`)))
}

func TestWriteJSON_LogsEncodeFailure(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	h := NewHandler(nil, logger)

	rec := httptest.NewRecorder()
	h.writeJSON(rec, http.StatusOK, map[string]float64{"rate": math.NaN()})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Contains(t, hook.LastEntry().Message, "Failed to encode response")
}
