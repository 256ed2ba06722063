package calculator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValidationError reports a single rejected input field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every field failure found in one input record,
// so callers can re-prompt only the fields that failed.
type ValidationErrors []*ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return "invalid input: " + strings.Join(msgs, "; ")
}

// Unwrap exposes the individual field errors to errors.As / errors.Is.
func (v ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(v))
	for _, e := range v {
		errs = append(errs, e)
	}
	return errs
}

// Fields returns field -> message, the shape the HTTP layer renders.
func (v ValidationErrors) Fields() map[string]string {
	out := make(map[string]string, len(v))
	for _, e := range v {
		if _, ok := out[e.Field]; !ok {
			out[e.Field] = e.Message
		}
	}
	return out
}

type validator struct {
	errs ValidationErrors
}

func (v *validator) add(field, format string, args ...any) {
	v.errs = append(v.errs, &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (v *validator) finite(field string, value float64) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		v.add(field, "must be a finite number")
		return false
	}
	return true
}

func (v *validator) positive(field string, value float64) {
	if v.finite(field, value) && value <= 0 {
		v.add(field, "must be greater than 0")
	}
}

func (v *validator) nonNegative(field string, value float64) {
	if v.finite(field, value) && value < 0 {
		v.add(field, "must not be negative")
	}
}

func (v *validator) atMost(field string, value, max float64) {
	if !math.IsInf(value, 1) && value > max {
		v.add(field, "must not exceed %s", formatLimit(max))
	}
}

func (v *validator) termYears(field string, years int) {
	switch {
	case years <= 0:
		v.add(field, "must be greater than 0")
	case years > MaxTermYears:
		v.add(field, "must not exceed %d years", MaxTermYears)
	}
}

// amount accepts a non-negative dollar figure up to MaxAmount.
func (v *validator) amount(field string, value float64) {
	v.nonNegative(field, value)
	v.atMost(field, value, MaxAmount)
}

// positiveAmount accepts a dollar figure in (0, MaxAmount].
func (v *validator) positiveAmount(field string, value float64) {
	v.positive(field, value)
	v.atMost(field, value, MaxAmount)
}

func (v *validator) percent(field string, value float64) {
	if !v.finite(field, value) {
		return
	}
	if value < 0 || value > 100 {
		v.add(field, "must be between 0 and 100")
	}
}

// checkFinite guards computed values; inputs inside their limits should never
// trip it, but a non-finite number must not reach rounding or JSON encoding.
func checkFinite(field string, values ...float64) error {
	for _, f := range values {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return &ValidationError{Field: field, Message: "produces a result too large to compute"}
		}
	}
	return nil
}

func formatLimit(max float64) string {
	return strconv.FormatFloat(max, 'f', -1, 64)
}

func (v *validator) err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return v.errs
}
