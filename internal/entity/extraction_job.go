package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExtractionJob records one extraction run for data transfer between layers.
type ExtractionJob struct {
	ID           uuid.UUID  `json:"id"`
	DocumentName string     `json:"document_name"`
	DocumentType string     `json:"document_type"`
	Strategy     string     `json:"strategy"`
	Status       string     `json:"status"`
	ResultJSON   []byte     `json:"result_json,omitempty"`
	Confidence   float64    `json:"confidence"`
	ErrorMessage *string    `json:"error_message,omitempty"`
	StartedAt    time.Time  `json:"started_at"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
}
