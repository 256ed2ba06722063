package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// LeadInput represents contact details submitted through a site form
type LeadInput struct {
	Name         string          `json:"name" validate:"required,min=2"`
	Email        string          `json:"email" validate:"required,email"`
	Phone        string          `json:"phone,omitempty" validate:"omitempty,phone"`
	Zip          string          `json:"zip,omitempty"`
	Neighborhood string          `json:"neighborhood,omitempty"`
	Source       string          `json:"source" validate:"required"` // form or calculator that produced the lead
	Message      string          `json:"message,omitempty"`
	Result       json.RawMessage `json:"result,omitempty"` // computed calculator result, passed through as-is
}

// Lead represents a captured prospective client
type Lead struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	Email            string          `json:"email"`
	Phone            string          `json:"phone,omitempty"`
	EmailFingerprint string          `json:"-"`
	Zip              string          `json:"zip,omitempty"`
	Neighborhood     string          `json:"neighborhood,omitempty"`
	Source           string          `json:"source"`
	Tag              string          `json:"tag"`
	Message          string          `json:"message,omitempty"`
	Result           json.RawMessage `json:"result,omitempty"`
	Returning        bool            `json:"returning"` // same email seen before
	CreatedAt        time.Time       `json:"created_at"`
}
