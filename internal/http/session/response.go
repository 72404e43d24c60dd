package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/hemodesk/hemodesk/internal/dialysis"
)

type sessionResponse struct {
	ID            uuid.UUID         `json:"id"`
	PatientID     uuid.UUID         `json:"patient_id"`
	ServiceID     *uuid.UUID        `json:"service_id,omitempty"`
	Date          time.Time         `json:"date"`
	StartTime     string            `json:"start_time"`
	EndTime       *string           `json:"end_time,omitempty"`
	WeightBefore  *float64          `json:"weight_before,omitempty"`
	WeightAfter   *float64          `json:"weight_after,omitempty"`
	BloodPressure string            `json:"blood_pressure,omitempty"`
	Room          string            `json:"room,omitempty"`
	Status        dialysis.Status   `json:"status"`
	Notes         string            `json:"notes,omitempty"`
	CustomData    map[string]string `json:"custom_data,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     *time.Time        `json:"updated_at,omitempty"`
}

func toResponse(sess *dialysis.Session) sessionResponse {
	return sessionResponse{
		ID:            sess.ID,
		PatientID:     sess.PatientID,
		ServiceID:     sess.ServiceID,
		Date:          sess.Date,
		StartTime:     sess.StartTime,
		EndTime:       sess.EndTime,
		WeightBefore:  sess.WeightBefore,
		WeightAfter:   sess.WeightAfter,
		BloodPressure: sess.BloodPressure,
		Room:          sess.Room,
		Status:        sess.Status,
		Notes:         sess.Notes,
		CustomData:    sess.CustomData,
		CreatedAt:     sess.CreatedAt,
		UpdatedAt:     sess.UpdatedAt,
	}
}
