package inventory

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrStoreNotFound    = errors.New("store not found")
	ErrTransferNotFound = errors.New("transfer request not found")
)

// Product is a stocked item (dialyzer, bloodline, saline bag, ...).
type Product struct {
	ID          uuid.UUID
	Name        string
	Unit        string
	MinStock    float64
	UnitPrice   int64 // price in cents
	Category    string
	Barcode     string
	Description string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Store is a physical inventory location (warehouse), not the persistence
// layer. By convention exactly one store is the main one; this is not
// enforced.
type Store struct {
	ID        uuid.UUID
	Name      string
	IsMain    bool
	CreatedAt time.Time
}

// TransactionType encodes the direction of a stock movement. Quantity is
// always positive; direction lives in the type, never in the sign.
type TransactionType string

const (
	TransactionAdd      TransactionType = "add"
	TransactionDeduct   TransactionType = "deduct"
	TransactionTransfer TransactionType = "transfer"
)

// StockTransaction is one entry in the append-only stock ledger. Balances
// are never stored; they are derived by summing transactions per
// (product, store).
type StockTransaction struct {
	ID            uuid.UUID
	ProductID     uuid.UUID
	StoreID       uuid.UUID
	Type          TransactionType
	Quantity      float64
	TargetStoreID *uuid.UUID // set when Type is transfer
	Date          time.Time
	Note          string
	CreatedAt     time.Time
}

// TransferStatus is the lifecycle of a stock transfer request.
type TransferStatus string

const (
	TransferPending  TransferStatus = "pending"
	TransferApproved TransferStatus = "approved"
	TransferRejected TransferStatus = "rejected"
)

// TransferRequest asks to move stock between two stores. Approval appends
// a single transfer transaction to the ledger.
type TransferRequest struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	FromStoreID uuid.UUID
	ToStoreID   uuid.UUID
	Quantity    float64
	Status      TransferStatus
	Note        string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// BalanceKey identifies one (product, store) stock level.
type BalanceKey struct {
	ProductID uuid.UUID
	StoreID   uuid.UUID
}

// ComputeBalances derives stock levels from the transaction ledger:
// add and incoming transfer increase, deduct and outgoing transfer
// decrease. Quantities below zero are possible; nothing validates stock
// before a deduction.
func ComputeBalances(txs []*StockTransaction) map[BalanceKey]float64 {
	balances := make(map[BalanceKey]float64)

	for _, tx := range txs {
		key := BalanceKey{ProductID: tx.ProductID, StoreID: tx.StoreID}

		switch tx.Type {
		case TransactionAdd:
			balances[key] += tx.Quantity
		case TransactionDeduct:
			balances[key] -= tx.Quantity
		case TransactionTransfer:
			balances[key] -= tx.Quantity

			if tx.TargetStoreID != nil {
				in := BalanceKey{ProductID: tx.ProductID, StoreID: *tx.TargetStoreID}
				balances[in] += tx.Quantity
			}
		}
	}

	return balances
}
