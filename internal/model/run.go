package model

import "time"

// RunStatus represents the current state of a matching run.
type RunStatus string

const (
	RunStatusRunning  RunStatus = "running"
	RunStatusComplete RunStatus = "complete"
	RunStatusFailed   RunStatus = "failed"
)

// Run represents a single matching pipeline run and its persisted outcome.
type Run struct {
	ID          string    `json:"id"`
	VendorFile  string    `json:"vendor_file"`
	ClientFiles []string  `json:"client_files"`
	Status      RunStatus `json:"status"`
	Error       string    `json:"error,omitempty"`
	Result      *Result   `json:"result,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
