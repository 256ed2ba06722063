package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode"

	"github.com/Dan9191/realty-service/internal/calculator"
	"github.com/Dan9191/realty-service/internal/leads"
	"github.com/Dan9191/realty-service/internal/models"
	"github.com/Dan9191/realty-service/internal/neighborhoods"
	"github.com/Dan9191/realty-service/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	// DefaultLeadLimit caps ListLeads when no limit is given
	DefaultLeadLimit = 100
	minPhoneDigits   = 10
)

var leadValidator = newLeadValidator()

func newLeadValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return countDigits(fl.Field().String()) >= minPhoneDigits
	})
	return v
}

// validateLead reports every failing contact field in the same shape the calculators use
func validateLead(in models.LeadInput) error {
	err := leadValidator.Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate lead: %w", err)
	}

	errs := make(calculator.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, &calculator.ValidationError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return errs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	case "phone":
		return fmt.Sprintf("must have at least %d digits", minPhoneDigits)
	default:
		return "is invalid"
	}
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

// CaptureLead validates, tags and stores a lead, then notifies the broker.
// The returned lead carries plaintext contact fields.
func (s *Service) CaptureLead(ctx context.Context, in models.LeadInput) (*models.Lead, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Source = strings.TrimSpace(in.Source)
	if err := validateLead(in); err != nil {
		return nil, err
	}

	lead := &models.Lead{
		ID:               uuid.New(),
		Name:             in.Name,
		Email:            in.Email,
		Phone:            in.Phone,
		EmailFingerprint: utils.Fingerprint(in.Email, s.config.HMACSecret),
		Zip:              strings.TrimSpace(in.Zip),
		Neighborhood:     strings.TrimSpace(in.Neighborhood),
		Source:           in.Source,
		Message:          strings.TrimSpace(in.Message),
		Result:           in.Result,
	}
	if lead.Neighborhood == "" && lead.Zip != "" {
		if n, ok := neighborhoods.ByZip(lead.Zip); ok {
			lead.Neighborhood = n.Name
		}
	}
	lead.Tag = leads.BuildTag(lead.Zip, lead.Neighborhood, lead.Source)

	returning, err := s.repo.LeadExists(ctx, lead.EmailFingerprint)
	if err != nil {
		return nil, err
	}
	lead.Returning = returning

	stored := *lead
	key := []byte(s.config.EncryptionKey)
	if stored.Email, err = utils.EncryptField(lead.Email, key); err != nil {
		return nil, fmt.Errorf("failed to encrypt email: %w", err)
	}
	if lead.Phone != "" {
		if stored.Phone, err = utils.EncryptField(lead.Phone, key); err != nil {
			return nil, fmt.Errorf("failed to encrypt phone: %w", err)
		}
	}
	if err := s.repo.CreateLead(ctx, &stored); err != nil {
		return nil, err
	}
	lead.CreatedAt = stored.CreatedAt

	s.metrics.RecordLead(lead.Source)
	s.log.WithField("tag", lead.Tag).Infof("Lead captured: %s", lead.ID)

	if err := s.notifier.SendLeadNotification(lead); err != nil {
		s.log.Errorf("Lead %s stored but broker was not notified: %v", lead.ID, err)
	}
	return lead, nil
}

// ListLeads returns leads captured since the given time with contact fields decrypted
func (s *Service) ListLeads(ctx context.Context, since time.Time, limit int) ([]models.Lead, error) {
	if limit <= 0 {
		limit = DefaultLeadLimit
	}
	list, err := s.repo.ListLeads(ctx, since, limit)
	if err != nil {
		return nil, err
	}

	key := []byte(s.config.EncryptionKey)
	for i := range list {
		if list[i].Email, err = utils.DecryptField(list[i].Email, key); err != nil {
			return nil, fmt.Errorf("failed to decrypt email for lead %s: %w", list[i].ID, err)
		}
		if list[i].Phone != "" {
			if list[i].Phone, err = utils.DecryptField(list[i].Phone, key); err != nil {
				return nil, fmt.Errorf("failed to decrypt phone for lead %s: %w", list[i].ID, err)
			}
		}
	}
	return list, nil
}

// SendDigest emails the broker every lead captured in the last 24 hours
func (s *Service) SendDigest(ctx context.Context) error {
	since := s.now().Add(-24 * time.Hour)
	list, err := s.ListLeads(ctx, since, DefaultLeadLimit)
	if err != nil {
		return err
	}
	if err := s.notifier.SendLeadDigest(since, list); err != nil {
		return err
	}
	s.log.Infof("Lead digest sent with %d leads", len(list))
	return nil
}
