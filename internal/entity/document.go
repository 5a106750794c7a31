package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document is an uploaded invoice file. Content is loaded on demand.
type Document struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Filename   string    `json:"filename"`
	MIMEType   string    `json:"mime_type"`
	ByteSize   int       `json:"byte_size"`
	UploadedAt time.Time `json:"uploaded_at"`
}
