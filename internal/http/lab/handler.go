package lab

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hemodesk/hemodesk/internal/http/respond"
	"github.com/hemodesk/hemodesk/internal/lab"
)

type Handler struct {
	svc *lab.Service
}

func NewHandler(svc *lab.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/definitions", h.createDefinition)
	r.Get("/definitions", h.listDefinitions)
	r.Delete("/definitions/{id}", h.deleteDefinition)

	r.Post("/tests", h.orderTest)
	r.Get("/tests", h.listTests)
	r.Get("/tests/{id}", h.getTest)
	r.Patch("/tests/{id}/result", h.updateResult)
}

type definitionRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	SampleType  string `json:"sample_type,omitempty"`
	RangeMale   string `json:"range_male,omitempty"`
	RangeFemale string `json:"range_female,omitempty"`
	RangeChild  string `json:"range_child,omitempty"`
}

type definitionResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category,omitempty"`
	SampleType  string    `json:"sample_type,omitempty"`
	RangeMale   string    `json:"range_male,omitempty"`
	RangeFemale string    `json:"range_female,omitempty"`
	RangeChild  string    `json:"range_child,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toDefinitionResponse(def *lab.TestDefinition) definitionResponse {
	return definitionResponse{
		ID:          def.ID,
		Name:        def.Name,
		Category:    def.Category,
		SampleType:  def.SampleType,
		RangeMale:   def.RangeMale,
		RangeFemale: def.RangeFemale,
		RangeChild:  def.RangeChild,
		CreatedAt:   def.CreatedAt,
	}
}

func (h *Handler) createDefinition(w http.ResponseWriter, r *http.Request) {
	var req definitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	def, err := h.svc.CreateDefinition(r.Context(), lab.DefinitionParams{
		Name:        req.Name,
		Category:    req.Category,
		SampleType:  req.SampleType,
		RangeMale:   req.RangeMale,
		RangeFemale: req.RangeFemale,
		RangeChild:  req.RangeChild,
	})
	if err != nil {
		respond.Error(w, err, "failed to create test definition")
		return
	}

	respond.JSON(w, http.StatusCreated, toDefinitionResponse(def))
}

func (h *Handler) listDefinitions(w http.ResponseWriter, r *http.Request) {
	defs, err := h.svc.ListDefinitions(r.Context())
	if err != nil {
		respond.Error(w, err, "failed to list test definitions")
		return
	}

	resp := make([]definitionResponse, 0, len(defs))
	for _, def := range defs {
		resp = append(resp, toDefinitionResponse(def))
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) deleteDefinition(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteDefinition(r.Context(), id); err != nil {
		respond.Error(w, err, "failed to delete test definition")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type orderTestRequest struct {
	PatientID    uuid.UUID  `json:"patient_id"`
	DefinitionID uuid.UUID  `json:"definition_id"`
	Date         *time.Time `json:"date,omitempty"`
}

type testResponse struct {
	ID           uuid.UUID      `json:"id"`
	PatientID    uuid.UUID      `json:"patient_id"`
	DefinitionID uuid.UUID      `json:"definition_id"`
	Result       *string        `json:"result,omitempty"`
	Status       lab.TestStatus `json:"status"`
	Date         time.Time      `json:"date"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    *time.Time     `json:"updated_at,omitempty"`
}

func toTestResponse(t *lab.Test) testResponse {
	return testResponse{
		ID:           t.ID,
		PatientID:    t.PatientID,
		DefinitionID: t.DefinitionID,
		Result:       t.Result,
		Status:       t.Status,
		Date:         t.Date,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func (h *Handler) orderTest(w http.ResponseWriter, r *http.Request) {
	var req orderTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := lab.OrderParams{
		PatientID:    req.PatientID,
		DefinitionID: req.DefinitionID,
	}
	if req.Date != nil {
		params.Date = *req.Date
	}

	t, err := h.svc.Order(r.Context(), params)
	if err != nil {
		respond.Error(w, err, "failed to order test")
		return
	}

	respond.JSON(w, http.StatusCreated, toTestResponse(t))
}

func (h *Handler) listTests(w http.ResponseWriter, r *http.Request) {
	filter := lab.ListFilter{}

	if s := r.URL.Query().Get("patient_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.PatientID = &id
		}
	}

	if s := r.URL.Query().Get("status"); s != "" {
		status := lab.TestStatus(s)
		filter.Status = &status
	}

	tests, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, err, "failed to list tests")
		return
	}

	resp := make([]testResponse, 0, len(tests))
	for _, t := range tests {
		resp = append(resp, toTestResponse(t))
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) getTest(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, lab.ErrTestNotFound) {
			http.Error(w, "test not found", http.StatusNotFound)
			return
		}

		respond.Error(w, err, "failed to get test")

		return
	}

	respond.JSON(w, http.StatusOK, toTestResponse(t))
}

type updateResultRequest struct {
	Result string `json:"result"`
}

func (h *Handler) updateResult(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.UpdateResult(r.Context(), id, req.Result); err != nil {
		if errors.Is(err, lab.ErrTestNotFound) {
			http.Error(w, "test not found", http.StatusNotFound)
			return
		}

		respond.Error(w, err, "failed to update result")

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
