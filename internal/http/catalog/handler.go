package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hemodesk/hemodesk/internal/catalog"
	"github.com/hemodesk/hemodesk/internal/http/respond"
)

type Handler struct {
	cat *catalog.Catalog
}

func NewHandler(cat *catalog.Catalog) *Handler {
	return &Handler{cat: cat}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type consumableDTO struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  float64   `json:"quantity"`
}

type createServiceRequest struct {
	Name           string           `json:"name"`
	Price          int64            `json:"price"`
	Category       catalog.Category `json:"category"`
	RequiredFields []string         `json:"required_fields,omitempty"`
	Consumables    []consumableDTO  `json:"consumables,omitempty"`
}

type serviceResponse struct {
	ID             uuid.UUID        `json:"id"`
	Name           string           `json:"name"`
	Price          int64            `json:"price"`
	Category       catalog.Category `json:"category"`
	RequiredFields []string         `json:"required_fields,omitempty"`
	Consumables    []consumableDTO  `json:"consumables,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      *time.Time       `json:"updated_at,omitempty"`
}

func toResponse(svc *catalog.Service) serviceResponse {
	resp := serviceResponse{
		ID:             svc.ID,
		Name:           svc.Name,
		Price:          svc.Price,
		Category:       svc.Category,
		RequiredFields: svc.RequiredFields,
		CreatedAt:      svc.CreatedAt,
		UpdatedAt:      svc.UpdatedAt,
	}

	for _, c := range svc.Consumables {
		resp.Consumables = append(resp.Consumables, consumableDTO{
			ProductID: c.ProductID,
			Quantity:  c.Quantity,
		})
	}

	return resp
}

func toConsumables(dtos []consumableDTO) []catalog.Consumable {
	consumables := make([]catalog.Consumable, 0, len(dtos))
	for _, c := range dtos {
		consumables = append(consumables, catalog.Consumable{
			ProductID: c.ProductID,
			Quantity:  c.Quantity,
		})
	}

	return consumables
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	svc, err := h.cat.Create(r.Context(), catalog.CreateParams{
		Name:           req.Name,
		Price:          req.Price,
		Category:       req.Category,
		RequiredFields: req.RequiredFields,
		Consumables:    toConsumables(req.Consumables),
	})
	if err != nil {
		respond.Error(w, err, "failed to create service")
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(svc))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	services, err := h.cat.List(r.Context())
	if err != nil {
		respond.Error(w, err, "failed to list services")
		return
	}

	resp := make([]serviceResponse, 0, len(services))
	for _, svc := range services {
		resp = append(resp, toResponse(svc))
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	svc, err := h.cat.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			http.Error(w, "service not found", http.StatusNotFound)
			return
		}

		respond.Error(w, err, "failed to get service")

		return
	}

	respond.JSON(w, http.StatusOK, toResponse(svc))
}

type updateServiceRequest struct {
	Name           *string           `json:"name,omitempty"`
	Price          *int64            `json:"price,omitempty"`
	Category       *catalog.Category `json:"category,omitempty"`
	RequiredFields *[]string         `json:"required_fields,omitempty"`
	Consumables    *[]consumableDTO  `json:"consumables,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	svc, err := h.cat.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			http.Error(w, "service not found", http.StatusNotFound)
			return
		}

		respond.Error(w, err, "failed to get service")

		return
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}

	if req.Price != nil {
		svc.Price = *req.Price
	}

	if req.Category != nil {
		svc.Category = *req.Category
	}

	if req.RequiredFields != nil {
		svc.RequiredFields = *req.RequiredFields
	}

	if req.Consumables != nil {
		svc.Consumables = toConsumables(*req.Consumables)
	}

	if err := h.cat.Update(r.Context(), svc); err != nil {
		respond.Error(w, err, "failed to update service")
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(svc))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.cat.Delete(r.Context(), id); err != nil {
		respond.Error(w, err, "failed to delete service")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
