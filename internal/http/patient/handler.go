package patient

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hemodesk/hemodesk/internal/http/respond"
	"github.com/hemodesk/hemodesk/internal/patient"
)

type Handler struct {
	svc *patient.Service
}

func NewHandler(svc *patient.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)

	r.Post("/funding-entities", h.createFundingEntity)
	r.Get("/funding-entities", h.listFundingEntities)
}

type emergencyContactDTO struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
}

type createPatientRequest struct {
	Name            string              `json:"name"`
	NationalID      string              `json:"national_id"`
	Phone           string              `json:"phone"`
	Address         string              `json:"address"`
	BloodType       string              `json:"blood_type"`
	DateOfBirth     *time.Time          `json:"date_of_birth,omitempty"`
	FundingEntityID *uuid.UUID          `json:"funding_entity_id,omitempty"`
	Emergency       emergencyContactDTO `json:"emergency_contact"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Create(r.Context(), patient.CreateParams{
		Name:            req.Name,
		NationalID:      req.NationalID,
		Phone:           req.Phone,
		Address:         req.Address,
		BloodType:       req.BloodType,
		DateOfBirth:     req.DateOfBirth,
		FundingEntityID: req.FundingEntityID,
		Emergency: patient.EmergencyContact{
			Name:     req.Emergency.Name,
			Phone:    req.Emergency.Phone,
			Relation: req.Emergency.Relation,
		},
	})
	if err != nil {
		respond.Error(w, err, "failed to create patient")
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(p))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	patients, err := h.svc.List(r.Context())
	if err != nil {
		respond.Error(w, err, "failed to list patients")
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(patients))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, patient.ErrNotFound) {
			http.Error(w, "patient not found", http.StatusNotFound)
			return
		}

		respond.Error(w, err, "failed to get patient")

		return
	}

	respond.JSON(w, http.StatusOK, toResponse(p))
}

type updatePatientRequest struct {
	Name            *string              `json:"name,omitempty"`
	NationalID      *string              `json:"national_id,omitempty"`
	Phone           *string              `json:"phone,omitempty"`
	Address         *string              `json:"address,omitempty"`
	BloodType       *string              `json:"blood_type,omitempty"`
	DateOfBirth     *time.Time           `json:"date_of_birth,omitempty"`
	FundingEntityID *uuid.UUID           `json:"funding_entity_id,omitempty"`
	Emergency       *emergencyContactDTO `json:"emergency_contact,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, patient.ErrNotFound) {
			http.Error(w, "patient not found", http.StatusNotFound)
			return
		}

		respond.Error(w, err, "failed to get patient")

		return
	}

	if req.Name != nil {
		p.Name = *req.Name
	}

	if req.NationalID != nil {
		p.NationalID = *req.NationalID
	}

	if req.Phone != nil {
		p.Phone = *req.Phone
	}

	if req.Address != nil {
		p.Address = *req.Address
	}

	if req.BloodType != nil {
		p.BloodType = *req.BloodType
	}

	if req.DateOfBirth != nil {
		p.DateOfBirth = req.DateOfBirth
	}

	if req.FundingEntityID != nil {
		p.FundingEntityID = req.FundingEntityID
	}

	if req.Emergency != nil {
		p.Emergency = patient.EmergencyContact{
			Name:     req.Emergency.Name,
			Phone:    req.Emergency.Phone,
			Relation: req.Emergency.Relation,
		}
	}

	if err := h.svc.Update(r.Context(), p); err != nil {
		respond.Error(w, err, "failed to update patient")
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(p))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respond.Error(w, err, "failed to delete patient")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type createFundingEntityRequest struct {
	Name string `json:"name"`
}

func (h *Handler) createFundingEntity(w http.ResponseWriter, r *http.Request) {
	var req createFundingEntityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	fe, err := h.svc.CreateFundingEntity(r.Context(), req.Name)
	if err != nil {
		respond.Error(w, err, "failed to create funding entity")
		return
	}

	respond.JSON(w, http.StatusCreated, toFundingEntityResponse(fe))
}

func (h *Handler) listFundingEntities(w http.ResponseWriter, r *http.Request) {
	entities, err := h.svc.ListFundingEntities(r.Context())
	if err != nil {
		respond.Error(w, err, "failed to list funding entities")
		return
	}

	resp := make([]fundingEntityResponse, 0, len(entities))
	for _, fe := range entities {
		resp = append(resp, toFundingEntityResponse(fe))
	}

	respond.JSON(w, http.StatusOK, resp)
}
