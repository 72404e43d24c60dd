package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/hemodesk/hemodesk/internal/inventory"
)

type productResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Unit        string     `json:"unit"`
	MinStock    float64    `json:"min_stock"`
	UnitPrice   int64      `json:"unit_price"`
	Category    string     `json:"category,omitempty"`
	Barcode     string     `json:"barcode,omitempty"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func toProductResponse(p *inventory.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Unit:        p.Unit,
		MinStock:    p.MinStock,
		UnitPrice:   p.UnitPrice,
		Category:    p.Category,
		Barcode:     p.Barcode,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type storeResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	IsMain    bool      `json:"is_main"`
	CreatedAt time.Time `json:"created_at"`
}

func toStoreResponse(st *inventory.Store) storeResponse {
	return storeResponse{
		ID:        st.ID,
		Name:      st.Name,
		IsMain:    st.IsMain,
		CreatedAt: st.CreatedAt,
	}
}

type transactionResponse struct {
	ID            uuid.UUID                 `json:"id"`
	ProductID     uuid.UUID                 `json:"product_id"`
	StoreID       uuid.UUID                 `json:"store_id"`
	Type          inventory.TransactionType `json:"type"`
	Quantity      float64                   `json:"quantity"`
	TargetStoreID *uuid.UUID                `json:"target_store_id,omitempty"`
	Date          time.Time                 `json:"date"`
	Note          string                    `json:"note,omitempty"`
	CreatedAt     time.Time                 `json:"created_at"`
}

func toTransactionResponse(tx *inventory.StockTransaction) transactionResponse {
	return transactionResponse{
		ID:            tx.ID,
		ProductID:     tx.ProductID,
		StoreID:       tx.StoreID,
		Type:          tx.Type,
		Quantity:      tx.Quantity,
		TargetStoreID: tx.TargetStoreID,
		Date:          tx.Date,
		Note:          tx.Note,
		CreatedAt:     tx.CreatedAt,
	}
}

type stockLevelResponse struct {
	ProductID uuid.UUID `json:"product_id"`
	StoreID   uuid.UUID `json:"store_id"`
	Balance   float64   `json:"balance"`
}

type transferResponse struct {
	ID          uuid.UUID                `json:"id"`
	ProductID   uuid.UUID                `json:"product_id"`
	FromStoreID uuid.UUID                `json:"from_store_id"`
	ToStoreID   uuid.UUID                `json:"to_store_id"`
	Quantity    float64                  `json:"quantity"`
	Status      inventory.TransferStatus `json:"status"`
	Note        string                   `json:"note,omitempty"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   *time.Time               `json:"updated_at,omitempty"`
}

func toTransferResponse(tr *inventory.TransferRequest) transferResponse {
	return transferResponse{
		ID:          tr.ID,
		ProductID:   tr.ProductID,
		FromStoreID: tr.FromStoreID,
		ToStoreID:   tr.ToStoreID,
		Quantity:    tr.Quantity,
		Status:      tr.Status,
		Note:        tr.Note,
		CreatedAt:   tr.CreatedAt,
		UpdatedAt:   tr.UpdatedAt,
	}
}
