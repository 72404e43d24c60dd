package lab

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrDefinitionNotFound = errors.New("test definition not found")
	ErrTestNotFound       = errors.New("lab test not found")
)

// TestDefinition describes a lab test the clinic offers, with free-text
// normal ranges per patient group.
type TestDefinition struct {
	ID          uuid.UUID
	Name        string
	Category    string
	SampleType  string
	RangeMale   string
	RangeFemale string
	RangeChild  string
	CreatedAt   time.Time
}

// TestStatus moves one way: pending → completed.
type TestStatus string

const (
	TestPending   TestStatus = "pending"
	TestCompleted TestStatus = "completed"
)

// Test is one ordered lab test for a patient. Result stays nil until
// recorded; recording flips the status to completed. Nothing in this
// layer prevents a completed result from being overwritten — the
// immutability is a UI convention of the dashboard, not a backend rule.
type Test struct {
	ID           uuid.UUID
	PatientID    uuid.UUID
	DefinitionID uuid.UUID
	Result       *string
	Status       TestStatus
	Date         time.Time
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
