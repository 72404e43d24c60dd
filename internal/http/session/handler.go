package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hemodesk/hemodesk/internal/dialysis"
	"github.com/hemodesk/hemodesk/internal/http/respond"
)

type Handler struct {
	svc *dialysis.Service
}

func NewHandler(svc *dialysis.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.record)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Patch("/{id}/status", h.updateStatus)
}

type recordSessionRequest struct {
	PatientID     uuid.UUID         `json:"patient_id"`
	ServiceID     *uuid.UUID        `json:"service_id,omitempty"`
	StoreID       *uuid.UUID        `json:"store_id,omitempty"`
	Date          *time.Time        `json:"date,omitempty"`
	StartTime     string            `json:"start_time"`
	EndTime       *string           `json:"end_time,omitempty"`
	WeightBefore  *float64          `json:"weight_before,omitempty"`
	WeightAfter   *float64          `json:"weight_after,omitempty"`
	BloodPressure string            `json:"blood_pressure,omitempty"`
	Room          string            `json:"room,omitempty"`
	Status        dialysis.Status   `json:"status"`
	Notes         string            `json:"notes,omitempty"`
	CustomData    map[string]string `json:"custom_data,omitempty"`
}

func (h *Handler) record(w http.ResponseWriter, r *http.Request) {
	var req recordSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := dialysis.RecordParams{
		PatientID:     req.PatientID,
		ServiceID:     req.ServiceID,
		StoreID:       req.StoreID,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		WeightBefore:  req.WeightBefore,
		WeightAfter:   req.WeightAfter,
		BloodPressure: req.BloodPressure,
		Room:          req.Room,
		Status:        req.Status,
		Notes:         req.Notes,
		CustomData:    req.CustomData,
	}
	if req.Date != nil {
		params.Date = *req.Date
	}

	sess, err := h.svc.Record(r.Context(), params)
	if err != nil {
		respond.Error(w, err, "failed to record session")
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(sess))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := dialysis.ListFilter{}

	if s := r.URL.Query().Get("patient_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.PatientID = &id
		}
	}

	if s := r.URL.Query().Get("status"); s != "" {
		status := dialysis.Status(s)
		filter.Status = &status
	}

	sessions, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, err, "failed to list sessions")
		return
	}

	resp := make([]sessionResponse, 0, len(sessions))
	for _, sess := range sessions {
		resp = append(resp, toResponse(sess))
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	sess, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, dialysis.ErrNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}

		respond.Error(w, err, "failed to get session")

		return
	}

	respond.JSON(w, http.StatusOK, toResponse(sess))
}

type updateSessionRequest struct {
	EndTime       *string            `json:"end_time,omitempty"`
	WeightBefore  *float64           `json:"weight_before,omitempty"`
	WeightAfter   *float64           `json:"weight_after,omitempty"`
	BloodPressure *string            `json:"blood_pressure,omitempty"`
	Room          *string            `json:"room,omitempty"`
	Notes         *string            `json:"notes,omitempty"`
	CustomData    *map[string]string `json:"custom_data,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, dialysis.ErrNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}

		respond.Error(w, err, "failed to get session")

		return
	}

	if req.EndTime != nil {
		sess.EndTime = req.EndTime
	}

	if req.WeightBefore != nil {
		sess.WeightBefore = req.WeightBefore
	}

	if req.WeightAfter != nil {
		sess.WeightAfter = req.WeightAfter
	}

	if req.BloodPressure != nil {
		sess.BloodPressure = *req.BloodPressure
	}

	if req.Room != nil {
		sess.Room = *req.Room
	}

	if req.Notes != nil {
		sess.Notes = *req.Notes
	}

	if req.CustomData != nil {
		sess.CustomData = *req.CustomData
	}

	if err := h.svc.Update(r.Context(), sess); err != nil {
		respond.Error(w, err, "failed to update session")
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(sess))
}

type updateStatusRequest struct {
	Status dialysis.Status `json:"status"`
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.UpdateStatus(r.Context(), id, req.Status); err != nil {
		if errors.Is(err, dialysis.ErrNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}

		respond.Error(w, err, "failed to update session status")

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
