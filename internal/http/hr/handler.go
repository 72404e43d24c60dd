package hr

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hemodesk/hemodesk/internal/hr"
	"github.com/hemodesk/hemodesk/internal/http/respond"
	"github.com/hemodesk/hemodesk/internal/importer"
)

type Handler struct {
	svc    *hr.Service
	sheets *importer.ShiftSheet
}

func NewHandler(svc *hr.Service, sheets *importer.ShiftSheet) *Handler {
	return &Handler{svc: svc, sheets: sheets}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/employees", h.createEmployee)
	r.Get("/employees", h.listEmployees)
	r.Get("/employees/{id}", h.getEmployee)
	r.Patch("/employees/{id}", h.updateEmployee)
	r.Delete("/employees/{id}", h.deleteEmployee)

	r.Post("/shifts", h.recordShift)
	r.Get("/shifts", h.listShifts)
	r.Post("/shifts/import", h.importShifts)
}

type employeeRequest struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	BankAccount string          `json:"bank_account,omitempty"`
	ShiftPrice  int64           `json:"shift_price"`
	Type        hr.EmployeeType `json:"type"`
}

type employeeResponse struct {
	ID          uuid.UUID       `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	BankAccount string          `json:"bank_account,omitempty"`
	ShiftPrice  int64           `json:"shift_price"`
	Type        hr.EmployeeType `json:"type"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`
}

func toEmployeeResponse(e *hr.Employee) employeeResponse {
	return employeeResponse{
		ID:          e.ID,
		Code:        e.Code,
		Name:        e.Name,
		BankAccount: e.BankAccount,
		ShiftPrice:  e.ShiftPrice,
		Type:        e.Type,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (h *Handler) createEmployee(w http.ResponseWriter, r *http.Request) {
	var req employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.CreateEmployee(r.Context(), hr.EmployeeParams{
		Code:        req.Code,
		Name:        req.Name,
		BankAccount: req.BankAccount,
		ShiftPrice:  req.ShiftPrice,
		Type:        req.Type,
	})
	if err != nil {
		respond.Error(w, err, "failed to create employee")
		return
	}

	respond.JSON(w, http.StatusCreated, toEmployeeResponse(e))
}

func (h *Handler) listEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.svc.ListEmployees(r.Context())
	if err != nil {
		respond.Error(w, err, "failed to list employees")
		return
	}

	resp := make([]employeeResponse, 0, len(employees))
	for _, e := range employees {
		resp = append(resp, toEmployeeResponse(e))
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) getEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	e, err := h.svc.GetEmployee(r.Context(), id)
	if err != nil {
		if errors.Is(err, hr.ErrEmployeeNotFound) {
			http.Error(w, "employee not found", http.StatusNotFound)
			return
		}

		respond.Error(w, err, "failed to get employee")

		return
	}

	respond.JSON(w, http.StatusOK, toEmployeeResponse(e))
}

func (h *Handler) updateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.GetEmployee(r.Context(), id)
	if err != nil {
		if errors.Is(err, hr.ErrEmployeeNotFound) {
			http.Error(w, "employee not found", http.StatusNotFound)
			return
		}

		respond.Error(w, err, "failed to get employee")

		return
	}

	e.Code = req.Code
	e.Name = req.Name
	e.BankAccount = req.BankAccount
	e.ShiftPrice = req.ShiftPrice
	e.Type = req.Type

	if err := h.svc.UpdateEmployee(r.Context(), e); err != nil {
		respond.Error(w, err, "failed to update employee")
		return
	}

	respond.JSON(w, http.StatusOK, toEmployeeResponse(e))
}

func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteEmployee(r.Context(), id); err != nil {
		respond.Error(w, err, "failed to delete employee")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type shiftRequest struct {
	EmployeeID uuid.UUID `json:"employee_id"`
	Date       time.Time `json:"date"`
	Count      float64   `json:"count"`
}

type shiftResponse struct {
	ID         uuid.UUID `json:"id"`
	EmployeeID uuid.UUID `json:"employee_id"`
	Date       time.Time `json:"date"`
	Count      float64   `json:"count"`
	CreatedAt  time.Time `json:"created_at"`
}

func (h *Handler) recordShift(w http.ResponseWriter, r *http.Request) {
	var req shiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := h.svc.RecordShift(r.Context(), hr.ShiftParams{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Count:      req.Count,
	})
	if err != nil {
		respond.Error(w, err, "failed to record shift")
		return
	}

	respond.JSON(w, http.StatusCreated, shiftResponse{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		Date:       rec.Date,
		Count:      rec.Count,
		CreatedAt:  rec.CreatedAt,
	})
}

func (h *Handler) listShifts(w http.ResponseWriter, r *http.Request) {
	filter := hr.ShiftFilter{}

	if s := r.URL.Query().Get("employee_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.EmployeeID = &id
		}
	}

	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = &t
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = &t
		}
	}

	records, err := h.svc.ListShiftRecords(r.Context(), filter)
	if err != nil {
		respond.Error(w, err, "failed to list shift records")
		return
	}

	resp := make([]shiftResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, shiftResponse{
			ID:         rec.ID,
			EmployeeID: rec.EmployeeID,
			Date:       rec.Date,
			Count:      rec.Count,
			CreatedAt:  rec.CreatedAt,
		})
	}

	respond.JSON(w, http.StatusOK, resp)
}

type importResponse struct {
	Imported int `json:"imported"`
}

func (h *Handler) importShifts(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := h.sheets.Parse(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	imported, err := h.svc.ImportShifts(r.Context(), rows)
	if err != nil {
		respond.Error(w, err, "failed to import shifts")
		return
	}

	respond.JSON(w, http.StatusCreated, importResponse{Imported: imported})
}
