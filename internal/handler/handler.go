package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Dan9191/realty-service/internal/calculator"
	"github.com/Dan9191/realty-service/internal/config"
	"github.com/Dan9191/realty-service/internal/metrics"
	"github.com/Dan9191/realty-service/internal/middleware"
	"github.com/Dan9191/realty-service/internal/models"
	"github.com/Dan9191/realty-service/internal/neighborhoods"
	"github.com/Dan9191/realty-service/internal/service"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const maxBodyBytes = 1 << 20

// defaultLeadWindow is how far back GET /leads looks without ?since
const defaultLeadWindow = 7 * 24 * time.Hour

type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Router builds the HTTP routes
func (h *Handler) Router(cfg *config.Config, m *metrics.Collector) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Logger(h.log, m))

	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)
	r.Handle("/metrics", m.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	// Public routes
	api.HandleFunc("/calculators/mortgage", h.Mortgage).Methods(http.MethodPost)
	api.HandleFunc("/calculators/affordability", h.Affordability).Methods(http.MethodPost)
	api.HandleFunc("/calculators/net-proceeds", h.NetProceeds).Methods(http.MethodPost)
	api.HandleFunc("/calculators/home-value", h.HomeValue).Methods(http.MethodPost)
	api.HandleFunc("/calculators/repairs", h.Repairs).Methods(http.MethodPost)
	api.HandleFunc("/calculators/offer-score", h.OfferScore).Methods(http.MethodPost)
	api.HandleFunc("/rates/current", h.CurrentRates).Methods(http.MethodGet)
	api.HandleFunc("/neighborhoods", h.Neighborhoods).Methods(http.MethodGet)
	api.HandleFunc("/leads", h.CaptureLead).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)

	// Protected routes
	agents := api.NewRoute().Subrouter()
	agents.Use(middleware.AuthMiddleware(cfg))
	agents.HandleFunc("/leads", h.ListLeads).Methods(http.MethodGet)

	return r
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Mortgage handles the buyer mortgage calculator
func (h *Handler) Mortgage(w http.ResponseWriter, r *http.Request) {
	var req models.MortgageRequest
	if !h.decode(w, r, &req) {
		return
	}
	out, err := h.svc.Mortgage(r.Context(), req)
	h.respond(w, out, err)
}

// Affordability handles the cash-to-close calculator
func (h *Handler) Affordability(w http.ResponseWriter, r *http.Request) {
	var req models.AffordabilityRequest
	if !h.decode(w, r, &req) {
		return
	}
	out, err := h.svc.Affordability(r.Context(), req)
	h.respond(w, out, err)
}

// NetProceeds handles the seller net proceeds calculator
func (h *Handler) NetProceeds(w http.ResponseWriter, r *http.Request) {
	var in models.NetProceedsInput
	if !h.decode(w, r, &in) {
		return
	}
	out, err := h.svc.NetProceeds(in)
	h.respond(w, out, err)
}

// HomeValue handles the home value estimator
func (h *Handler) HomeValue(w http.ResponseWriter, r *http.Request) {
	var in models.HomeValueInput
	if !h.decode(w, r, &in) {
		return
	}
	out, err := h.svc.EstimateValue(in)
	h.respond(w, out, err)
}

// Repairs handles the repair cost estimator
func (h *Handler) Repairs(w http.ResponseWriter, r *http.Request) {
	var in models.RepairInput
	if !h.decode(w, r, &in) {
		return
	}
	out, err := h.svc.EstimateRepairs(in)
	h.respond(w, out, err)
}

// OfferScore handles the offer strength scorer
func (h *Handler) OfferScore(w http.ResponseWriter, r *http.Request) {
	var in models.OfferInput
	if !h.decode(w, r, &in) {
		return
	}
	out, err := h.svc.ScoreOffer(in)
	h.respond(w, out, err)
}

func (h *Handler) CurrentRates(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.CurrentRates(r.Context()))
}

func (h *Handler) Neighborhoods(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, neighborhoods.All())
}

// CaptureLead stores a contact form or calculator lead
func (h *Handler) CaptureLead(w http.ResponseWriter, r *http.Request) {
	var in models.LeadInput
	if !h.decode(w, r, &in) {
		return
	}
	lead, err := h.svc.CaptureLead(r.Context(), in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, lead)
}

// Login handles agent authentication
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !h.decode(w, r, &req) {
		return
	}
	resp, err := h.svc.Login(r.Context(), req.Email, req.Password)
	h.respond(w, resp, err)
}

// ListLeads returns recent leads to an authenticated agent.
// Accepts ?since=RFC3339 and ?limit=N.
func (h *Handler) ListLeads(w http.ResponseWriter, r *http.Request) {
	since := time.Now().Add(-defaultLeadWindow)
	if raw := r.URL.Query().Get("since"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "since must be an RFC3339 timestamp"})
			return
		}
		since = t
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	agentID, _ := middleware.AgentID(r.Context())
	list, err := h.svc.ListLeads(r.Context(), since, limit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.log.Debugf("Agent %s listed %d leads", agentID, len(list))
	h.writeJSON(w, http.StatusOK, list)
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

func (h *Handler) respond(w http.ResponseWriter, v any, err error) {
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, v)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var verrs calculator.ValidationErrors
	var verr *calculator.ValidationError
	switch {
	case errors.As(err, &verrs):
		h.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "validation failed", Fields: verrs.Fields()})
	case errors.As(err, &verr):
		h.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:  "validation failed",
			Fields: map[string]string{verr.Field: verr.Message},
		})
	case errors.Is(err, service.ErrInvalidCredentials):
		h.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	default:
		h.log.Errorf("Request failed: %v", err)
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Errorf("Failed to encode response: %v", err)
	}
}
