package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Dan9191/realty-service/internal/models"
	"github.com/Dan9191/realty-service/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is how long an agent token stays valid
const TokenTTL = 24 * time.Hour

// ErrInvalidCredentials is returned for an unknown email or wrong password
var ErrInvalidCredentials = errors.New("invalid credentials")

// CreateAgent creates an agent with a hashed password
func (s *Service) CreateAgent(ctx context.Context, email, name, password string) (*models.Agent, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	agent := &models.Agent{
		Email:        email,
		Name:         name,
		PasswordHash: string(hashedPassword),
	}
	if err := s.repo.CreateAgent(ctx, agent); err != nil {
		return nil, err
	}

	s.log.Infof("Agent created: %s", agent.Email)
	return agent, nil
}

// Login authenticates an agent and returns a JWT token
func (s *Service) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	agent, err := s.repo.FindAgentByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(agent.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Generate JWT
	expiresAt := s.now().Add(TokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", agent.ID),
		IssuedAt:  jwt.NewNumericDate(s.now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Infof("Agent logged in: %s", agent.Email)
	return &models.LoginResponse{Token: tokenString, ExpiresAt: expiresAt}, nil
}
