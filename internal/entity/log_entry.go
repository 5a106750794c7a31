package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/paperpilot/invoicer/constants"
)

// LogEntry is one append-only processing-log row.
type LogEntry struct {
	ID         uuid.UUID              `json:"id"`
	InvoiceID  uuid.UUID              `json:"invoice_id"`
	Stage      constants.Stage        `json:"stage"`
	Status     constants.LogStatus    `json:"status"`
	Message    string                 `json:"message,omitempty"`
	Attempt    int                    `json:"attempt"`
	DurationMS int64                  `json:"duration_ms"`
	Details    map[string]interface{} `json:"details,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}
