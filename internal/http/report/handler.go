package report

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hemodesk/hemodesk/internal/finance"
	"github.com/hemodesk/hemodesk/internal/http/respond"
	"github.com/hemodesk/hemodesk/internal/report"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/transactions", h.transactions)
	r.Get("/stock-levels", h.stockLevels)
}

func (h *Handler) transactions(w http.ResponseWriter, r *http.Request) {
	filter := finance.ListFilter{}

	if s := r.URL.Query().Get("account_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.AccountID = &id
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

	data, err := h.svc.Transactions(r.Context(), filter)
	if err != nil {
		respond.Error(w, err, "failed to build transactions report")
		return
	}

	writeWorkbook(w, "transactions", data)
}

func (h *Handler) stockLevels(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.StockLevels(r.Context())
	if err != nil {
		respond.Error(w, err, "failed to build stock levels report")
		return
	}

	writeWorkbook(w, "stock-levels", data)
}

func writeWorkbook(w http.ResponseWriter, name string, data []byte) {
	filename := fmt.Sprintf("%s-%s.xlsx", name, time.Now().Format(time.DateOnly))

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
