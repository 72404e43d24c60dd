package inventory

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hemodesk/hemodesk/internal/http/respond"
	"github.com/hemodesk/hemodesk/internal/inventory"
)

type Handler struct {
	svc *inventory.Service
}

func NewHandler(svc *inventory.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/products", h.createProduct)
	r.Get("/products", h.listProducts)
	r.Get("/products/{id}", h.getProduct)
	r.Patch("/products/{id}", h.updateProduct)
	r.Delete("/products/{id}", h.deleteProduct)

	r.Post("/stores", h.createStore)
	r.Get("/stores", h.listStores)
	r.Delete("/stores/{id}", h.deleteStore)

	r.Post("/transactions", h.recordTransaction)
	r.Get("/transactions", h.listTransactions)
	r.Get("/levels", h.stockLevels)

	r.Post("/transfers", h.createTransfer)
	r.Get("/transfers", h.listTransfers)
	r.Post("/transfers/{id}/approve", h.approveTransfer)
	r.Post("/transfers/{id}/reject", h.rejectTransfer)
}

type productRequest struct {
	Name        string  `json:"name"`
	Unit        string  `json:"unit"`
	MinStock    float64 `json:"min_stock"`
	UnitPrice   int64   `json:"unit_price"`
	Category    string  `json:"category,omitempty"`
	Barcode     string  `json:"barcode,omitempty"`
	Description string  `json:"description,omitempty"`
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.CreateProduct(r.Context(), inventory.ProductParams{
		Name:        req.Name,
		Unit:        req.Unit,
		MinStock:    req.MinStock,
		UnitPrice:   req.UnitPrice,
		Category:    req.Category,
		Barcode:     req.Barcode,
		Description: req.Description,
	})
	if err != nil {
		respond.Error(w, err, "failed to create product")
		return
	}

	respond.JSON(w, http.StatusCreated, toProductResponse(p))
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.ListProducts(r.Context())
	if err != nil {
		respond.Error(w, err, "failed to list products")
		return
	}

	resp := make([]productResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, toProductResponse(p))
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	p, err := h.svc.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, inventory.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}

		respond.Error(w, err, "failed to get product")

		return
	}

	respond.JSON(w, http.StatusOK, toProductResponse(p))
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, inventory.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}

		respond.Error(w, err, "failed to get product")

		return
	}

	p.Name = req.Name
	p.Unit = req.Unit
	p.MinStock = req.MinStock
	p.UnitPrice = req.UnitPrice
	p.Category = req.Category
	p.Barcode = req.Barcode
	p.Description = req.Description

	if err := h.svc.UpdateProduct(r.Context(), p); err != nil {
		respond.Error(w, err, "failed to update product")
		return
	}

	respond.JSON(w, http.StatusOK, toProductResponse(p))
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteProduct(r.Context(), id); err != nil {
		respond.Error(w, err, "failed to delete product")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type createStoreRequest struct {
	Name   string `json:"name"`
	IsMain bool   `json:"is_main"`
}

func (h *Handler) createStore(w http.ResponseWriter, r *http.Request) {
	var req createStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	st, err := h.svc.CreateStore(r.Context(), req.Name, req.IsMain)
	if err != nil {
		respond.Error(w, err, "failed to create store")
		return
	}

	respond.JSON(w, http.StatusCreated, toStoreResponse(st))
}

func (h *Handler) listStores(w http.ResponseWriter, r *http.Request) {
	stores, err := h.svc.ListStores(r.Context())
	if err != nil {
		respond.Error(w, err, "failed to list stores")
		return
	}

	resp := make([]storeResponse, 0, len(stores))
	for _, st := range stores {
		resp = append(resp, toStoreResponse(st))
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) deleteStore(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteStore(r.Context(), id); err != nil {
		respond.Error(w, err, "failed to delete store")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type recordTransactionRequest struct {
	ProductID     uuid.UUID                 `json:"product_id"`
	StoreID       uuid.UUID                 `json:"store_id"`
	Type          inventory.TransactionType `json:"type"`
	Quantity      float64                   `json:"quantity"`
	TargetStoreID *uuid.UUID                `json:"target_store_id,omitempty"`
	Date          *time.Time                `json:"date,omitempty"`
	Note          string                    `json:"note,omitempty"`
}

func (h *Handler) recordTransaction(w http.ResponseWriter, r *http.Request) {
	var req recordTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := inventory.TransactionParams{
		ProductID:     req.ProductID,
		StoreID:       req.StoreID,
		Type:          req.Type,
		Quantity:      req.Quantity,
		TargetStoreID: req.TargetStoreID,
		Note:          req.Note,
	}
	if req.Date != nil {
		params.Date = *req.Date
	}

	tx, err := h.svc.RecordTransaction(r.Context(), params)
	if err != nil {
		respond.Error(w, err, "failed to record stock transaction")
		return
	}

	respond.JSON(w, http.StatusCreated, toTransactionResponse(tx))
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	filter := inventory.TransactionFilter{}

	if s := r.URL.Query().Get("product_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.ProductID = &id
		}
	}

	if s := r.URL.Query().Get("store_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.StoreID = &id
		}
	}

	txs, err := h.svc.ListTransactions(r.Context(), filter)
	if err != nil {
		respond.Error(w, err, "failed to list stock transactions")
		return
	}

	resp := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		resp = append(resp, toTransactionResponse(tx))
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) stockLevels(w http.ResponseWriter, r *http.Request) {
	levels, err := h.svc.StockLevels(r.Context())
	if err != nil {
		respond.Error(w, err, "failed to compute stock levels")
		return
	}

	resp := make([]stockLevelResponse, 0, len(levels))
	for key, balance := range levels {
		resp = append(resp, stockLevelResponse{
			ProductID: key.ProductID,
			StoreID:   key.StoreID,
			Balance:   balance,
		})
	}

	respond.JSON(w, http.StatusOK, resp)
}

type createTransferRequest struct {
	ProductID   uuid.UUID `json:"product_id"`
	FromStoreID uuid.UUID `json:"from_store_id"`
	ToStoreID   uuid.UUID `json:"to_store_id"`
	Quantity    float64   `json:"quantity"`
	Note        string    `json:"note,omitempty"`
}

func (h *Handler) createTransfer(w http.ResponseWriter, r *http.Request) {
	var req createTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tr, err := h.svc.CreateTransferRequest(r.Context(), inventory.TransferParams{
		ProductID:   req.ProductID,
		FromStoreID: req.FromStoreID,
		ToStoreID:   req.ToStoreID,
		Quantity:    req.Quantity,
		Note:        req.Note,
	})
	if err != nil {
		respond.Error(w, err, "failed to create transfer request")
		return
	}

	respond.JSON(w, http.StatusCreated, toTransferResponse(tr))
}

func (h *Handler) listTransfers(w http.ResponseWriter, r *http.Request) {
	trs, err := h.svc.ListTransferRequests(r.Context())
	if err != nil {
		respond.Error(w, err, "failed to list transfer requests")
		return
	}

	resp := make([]transferResponse, 0, len(trs))
	for _, tr := range trs {
		resp = append(resp, toTransferResponse(tr))
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) approveTransfer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.ApproveTransfer(r.Context(), id); err != nil {
		if errors.Is(err, inventory.ErrTransferNotFound) {
			http.Error(w, "transfer request not found", http.StatusNotFound)
			return
		}

		respond.Error(w, err, "failed to approve transfer")

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) rejectTransfer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.RejectTransfer(r.Context(), id); err != nil {
		if errors.Is(err, inventory.ErrTransferNotFound) {
			http.Error(w, "transfer request not found", http.StatusNotFound)
			return
		}

		respond.Error(w, err, "failed to reject transfer")

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
