package finance

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hemodesk/hemodesk/internal/finance"
	"github.com/hemodesk/hemodesk/internal/http/respond"
)

type Handler struct {
	svc *finance.Service
}

func NewHandler(svc *finance.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/accounts", h.createAccount)
	r.Get("/accounts", h.listAccounts)
	r.Get("/accounts/{id}", h.getAccount)

	r.Post("/transactions", h.record)
	r.Get("/transactions", h.listTransactions)
}

type createAccountRequest struct {
	Name string              `json:"name"`
	Type finance.AccountType `json:"type"`
}

type accountResponse struct {
	ID        uuid.UUID           `json:"id"`
	Name      string              `json:"name"`
	Type      finance.AccountType `json:"type"`
	Balance   int64               `json:"balance"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt *time.Time          `json:"updated_at,omitempty"`
}

func toAccountResponse(acc *finance.Account) accountResponse {
	return accountResponse{
		ID:        acc.ID,
		Name:      acc.Name,
		Type:      acc.Type,
		Balance:   acc.Balance,
		CreatedAt: acc.CreatedAt,
		UpdatedAt: acc.UpdatedAt,
	}
}

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	acc, err := h.svc.CreateAccount(r.Context(), req.Name, req.Type)
	if err != nil {
		respond.Error(w, err, "failed to create account")
		return
	}

	respond.JSON(w, http.StatusCreated, toAccountResponse(acc))
}

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.svc.ListAccounts(r.Context())
	if err != nil {
		respond.Error(w, err, "failed to list accounts")
		return
	}

	resp := make([]accountResponse, 0, len(accounts))
	for _, acc := range accounts {
		resp = append(resp, toAccountResponse(acc))
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) getAccount(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	acc, err := h.svc.GetAccount(r.Context(), id)
	if err != nil {
		if errors.Is(err, finance.ErrAccountNotFound) {
			http.Error(w, "account not found", http.StatusNotFound)
			return
		}

		respond.Error(w, err, "failed to get account")

		return
	}

	respond.JSON(w, http.StatusOK, toAccountResponse(acc))
}

type recordRequest struct {
	AccountID uuid.UUID               `json:"account_id"`
	Amount    int64                   `json:"amount"`
	Type      finance.TransactionType `json:"type"`
	Date      *time.Time              `json:"date,omitempty"`
	Category  string                  `json:"category,omitempty"`
	Note      string                  `json:"note,omitempty"`
}

type transactionResponse struct {
	ID        uuid.UUID               `json:"id"`
	AccountID uuid.UUID               `json:"account_id"`
	Amount    int64                   `json:"amount"`
	Type      finance.TransactionType `json:"type"`
	Date      time.Time               `json:"date"`
	Category  string                  `json:"category,omitempty"`
	Note      string                  `json:"note,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
}

func toTransactionResponse(tx *finance.Transaction) transactionResponse {
	return transactionResponse{
		ID:        tx.ID,
		AccountID: tx.AccountID,
		Amount:    tx.Amount,
		Type:      tx.Type,
		Date:      tx.Date,
		Category:  tx.Category,
		Note:      tx.Note,
		CreatedAt: tx.CreatedAt,
	}
}

func (h *Handler) record(w http.ResponseWriter, r *http.Request) {
	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := finance.RecordParams{
		AccountID: req.AccountID,
		Amount:    req.Amount,
		Type:      req.Type,
		Category:  req.Category,
		Note:      req.Note,
	}
	if req.Date != nil {
		params.Date = *req.Date
	}

	tx, err := h.svc.Record(r.Context(), params)
	if err != nil {
		respond.Error(w, err, "failed to record transaction")
		return
	}

	respond.JSON(w, http.StatusCreated, toTransactionResponse(tx))
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	filter := parseListFilter(r)

	txs, err := h.svc.ListTransactions(r.Context(), filter)
	if err != nil {
		respond.Error(w, err, "failed to list transactions")
		return
	}

	resp := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		resp = append(resp, toTransactionResponse(tx))
	}

	respond.JSON(w, http.StatusOK, resp)
}

// parseListFilter reads the account_id, start_date and end_date query
// parameters. Unparseable values are ignored rather than rejected.
func parseListFilter(r *http.Request) finance.ListFilter {
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

	return filter
}
