package dialysis

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session not found")

// Status is the lifecycle state of a session. It only moves forward:
// waiting → active → finished.
type Status string

const (
	StatusWaiting  Status = "waiting"
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

var statusRank = map[Status]int{
	StatusWaiting:  0,
	StatusActive:   1,
	StatusFinished: 2,
}

func (s Status) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is allowed.
// Backward transitions are not.
func (s Status) CanTransitionTo(next Status) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}

	return statusRank[next] >= statusRank[s]
}

// Session is one dialysis treatment encounter for a patient.
type Session struct {
	ID            uuid.UUID
	PatientID     uuid.UUID
	ServiceID     *uuid.UUID
	Date          time.Time
	StartTime     string
	EndTime       *string
	WeightBefore  *float64
	WeightAfter   *float64
	BloodPressure string
	Room          string
	Status        Status
	Notes         string
	CustomData    map[string]string // keyed by the service's required field names
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
