package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vendor represents a payee resolved from extracted invoice text.
type Vendor struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Name            string    `json:"name"`
	NormalizedName  string    `json:"normalized_name"`
	Aliases         []string  `json:"aliases,omitempty"`
	Address         *string   `json:"address,omitempty"`
	Email           *string   `json:"email,omitempty"`
	Phone           *string   `json:"phone,omitempty"`
	AICreated       bool      `json:"ai_created"`
	ConfidenceScore float32   `json:"confidence_score"`
	InvoiceCount    int       `json:"invoice_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
