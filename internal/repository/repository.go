package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Dan9191/realty-service/internal/models"
)

// ErrNotFound is returned when a lookup matches no row
var ErrNotFound = errors.New("not found")

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateLead stores a captured lead. Email and Phone are written as given,
// callers encrypt them first.
func (r *Repository) CreateLead(ctx context.Context, lead *models.Lead) error {
	query := `
		INSERT INTO realty.leads (id, name, email_enc, phone_enc, email_fingerprint, zip, neighborhood,
			source, tag, message, result, returning_lead, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, CURRENT_TIMESTAMP)
		RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query,
		lead.ID, lead.Name, lead.Email, lead.Phone, lead.EmailFingerprint, lead.Zip, lead.Neighborhood,
		lead.Source, lead.Tag, lead.Message, nullableJSON(lead.Result), lead.Returning,
	).Scan(&lead.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}
	return nil
}

// LeadExists reports whether a lead with this email fingerprint was captured before
func (r *Repository) LeadExists(ctx context.Context, fingerprint string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM realty.leads WHERE email_fingerprint = $1)`
	if err := r.db.QueryRowContext(ctx, query, fingerprint).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check lead: %w", err)
	}
	return exists, nil
}

// ListLeads returns leads captured since the given time, newest first
func (r *Repository) ListLeads(ctx context.Context, since time.Time, limit int) ([]models.Lead, error) {
	query := `
		SELECT id, name, email_enc, phone_enc, email_fingerprint, zip, neighborhood,
			source, tag, message, result, returning_lead, created_at
		FROM realty.leads
		WHERE created_at >= $1
		ORDER BY created_at DESC
		LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	leads := []models.Lead{}
	for rows.Next() {
		var lead models.Lead
		var result []byte
		if err := rows.Scan(&lead.ID, &lead.Name, &lead.Email, &lead.Phone, &lead.EmailFingerprint,
			&lead.Zip, &lead.Neighborhood, &lead.Source, &lead.Tag, &lead.Message, &result,
			&lead.Returning, &lead.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		if len(result) > 0 {
			lead.Result = json.RawMessage(result)
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return leads, nil
}

// CreateAgent creates a new agent in the database
func (r *Repository) CreateAgent(ctx context.Context, agent *models.Agent) error {
	query := `
		INSERT INTO realty.agents (email, name, password_hash, created_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query, agent.Email, agent.Name, agent.PasswordHash).
		Scan(&agent.ID, &agent.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create agent: %w", err)
	}
	return nil
}

// FindAgentByEmail retrieves an agent by email
func (r *Repository) FindAgentByEmail(ctx context.Context, email string) (*models.Agent, error) {
	agent := &models.Agent{}
	query := `
		SELECT id, email, name, password_hash, created_at
		FROM realty.agents
		WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&agent.ID, &agent.Email, &agent.Name, &agent.PasswordHash, &agent.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find agent: %w", err)
	}
	return agent, nil
}

// jsonb columns need text, lib/pq would send []byte as bytea
func nullableJSON(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}
