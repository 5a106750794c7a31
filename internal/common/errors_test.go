package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTransient(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"transient sentinel", ErrTransient, true},
		{"wrapped transient", fmt.Errorf("send request: %w", ErrTransient), true},
		{"extraction", fmt.Errorf("schema: %w", ErrExtraction), false},
		{"validation", fmt.Errorf("rules: %w", ErrValidation), false},
		{"illegal transition", ErrIllegalTransition, false},
		{"not found", ErrNotFound, false},
		{"invalid input", ErrInvalidInput, false},
		{"already processing", ErrAlreadyProcessing, false},
		{"unclassified defaults to transient", errors.New("connection reset"), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsTransient(tc.err))
		})
	}
}

func TestValidationError(t *testing.T) {
	soft := &ValidationError{Violations: []RuleViolation{
		{Field: "currency", Rule: "iso4217", Message: "currency is not a 3-letter code"},
		{Field: "due_date", Rule: "ordering", Message: "issue date is after due date"},
	}}
	assert.False(t, soft.Fatal())
	assert.Contains(t, soft.Error(), "currency")
	assert.Contains(t, soft.Error(), "due_date")
	assert.ErrorIs(t, soft, ErrValidation)
	assert.False(t, IsTransient(soft))

	fatal := &ValidationError{Violations: []RuleViolation{
		{Field: "currency", Rule: "iso4217", Message: "currency is not a 3-letter code"},
		{Field: "total_amount", Rule: "required", Message: "total amount is missing", Fatal: true},
	}}
	assert.True(t, fatal.Fatal())
}

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	err := NewAppError("CONFIG_ERROR", "DB_URL is required", cause)
	assert.Contains(t, err.Error(), "CONFIG_ERROR")
	assert.ErrorIs(t, err, cause)
}
