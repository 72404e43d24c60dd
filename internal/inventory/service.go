package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=inventory
type Repository interface {
	CreateProduct(ctx context.Context, p *Product) error
	GetProduct(ctx context.Context, id uuid.UUID) (*Product, error)
	ListProducts(ctx context.Context) ([]*Product, error)
	UpdateProduct(ctx context.Context, p *Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	CreateStore(ctx context.Context, st *Store) error
	ListStores(ctx context.Context) ([]*Store, error)
	DeleteStore(ctx context.Context, id uuid.UUID) error

	CreateStockTransaction(ctx context.Context, tx *StockTransaction) error
	ListStockTransactions(ctx context.Context, filter TransactionFilter) ([]*StockTransaction, error)

	CreateTransferRequest(ctx context.Context, tr *TransferRequest) error
	GetTransferRequest(ctx context.Context, id uuid.UUID) (*TransferRequest, error)
	ListTransferRequests(ctx context.Context) ([]*TransferRequest, error)
	UpdateTransferStatus(ctx context.Context, id uuid.UUID, status TransferStatus) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type ProductParams struct {
	Name        string
	Unit        string
	MinStock    float64
	UnitPrice   int64
	Category    string
	Barcode     string
	Description string
}

func (s *Service) CreateProduct(ctx context.Context, params ProductParams) (*Product, error) {
	p := &Product{
		Name:        params.Name,
		Unit:        params.Unit,
		MinStock:    params.MinStock,
		UnitPrice:   params.UnitPrice,
		Category:    params.Category,
		Barcode:     params.Barcode,
		Description: params.Description,
	}
	if err := s.repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) GetProduct(ctx context.Context, id uuid.UUID) (*Product, error) {
	return s.repo.GetProduct(ctx, id)
}

func (s *Service) ListProducts(ctx context.Context) ([]*Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *Service) UpdateProduct(ctx context.Context, p *Product) error {
	return s.repo.UpdateProduct(ctx, p)
}

func (s *Service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteProduct(ctx, id)
}

func (s *Service) CreateStore(ctx context.Context, name string, isMain bool) (*Store, error) {
	st := &Store{Name: name, IsMain: isMain}
	if err := s.repo.CreateStore(ctx, st); err != nil {
		return nil, err
	}

	return st, nil
}

func (s *Service) ListStores(ctx context.Context) ([]*Store, error) {
	return s.repo.ListStores(ctx)
}

func (s *Service) DeleteStore(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteStore(ctx, id)
}

type TransactionParams struct {
	ProductID     uuid.UUID
	StoreID       uuid.UUID
	Type          TransactionType
	Quantity      float64
	TargetStoreID *uuid.UUID
	Date          time.Time
	Note          string
}

type TransactionFilter struct {
	ProductID *uuid.UUID
	StoreID   *uuid.UUID
}

// RecordTransaction appends an entry to the stock ledger. The quantity is
// taken as given: non-positive values are accepted, matching the dashboard
// behavior this backend replaces.
func (s *Service) RecordTransaction(ctx context.Context, params TransactionParams) (*StockTransaction, error) {
	date := params.Date
	if date.IsZero() {
		date = time.Now()
	}

	tx := &StockTransaction{
		ProductID:     params.ProductID,
		StoreID:       params.StoreID,
		Type:          params.Type,
		Quantity:      params.Quantity,
		TargetStoreID: params.TargetStoreID,
		Date:          date,
		Note:          params.Note,
	}
	if err := s.repo.CreateStockTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) ListTransactions(ctx context.Context, filter TransactionFilter) ([]*StockTransaction, error) {
	return s.repo.ListStockTransactions(ctx, filter)
}

// StockLevels recomputes every (product, store) balance from the full
// ledger. Nothing is cached or stored; each call re-reads the ledger.
func (s *Service) StockLevels(ctx context.Context) (map[BalanceKey]float64, error) {
	txs, err := s.repo.ListStockTransactions(ctx, TransactionFilter{})
	if err != nil {
		return nil, err
	}

	return ComputeBalances(txs), nil
}

// Deduct records a single deduction against a store. Used by the session
// workflow for consumables; no stock-level check happens here, so the
// derived balance can go negative.
func (s *Service) Deduct(ctx context.Context, productID, storeID uuid.UUID, quantity float64, note string) (*StockTransaction, error) {
	return s.RecordTransaction(ctx, TransactionParams{
		ProductID: productID,
		StoreID:   storeID,
		Type:      TransactionDeduct,
		Quantity:  quantity,
		Note:      note,
	})
}

type TransferParams struct {
	ProductID   uuid.UUID
	FromStoreID uuid.UUID
	ToStoreID   uuid.UUID
	Quantity    float64
	Note        string
}

func (s *Service) CreateTransferRequest(ctx context.Context, params TransferParams) (*TransferRequest, error) {
	tr := &TransferRequest{
		ProductID:   params.ProductID,
		FromStoreID: params.FromStoreID,
		ToStoreID:   params.ToStoreID,
		Quantity:    params.Quantity,
		Status:      TransferPending,
		Note:        params.Note,
	}
	if err := s.repo.CreateTransferRequest(ctx, tr); err != nil {
		return nil, err
	}

	return tr, nil
}

func (s *Service) ListTransferRequests(ctx context.Context) ([]*TransferRequest, error) {
	return s.repo.ListTransferRequests(ctx)
}

// ApproveTransfer moves a pending request to approved and appends the
// corresponding transfer transaction to the ledger. The two writes are
// separate round trips: a failure after the ledger insert leaves the
// request pending with the stock already moved.
func (s *Service) ApproveTransfer(ctx context.Context, id uuid.UUID) error {
	tr, err := s.repo.GetTransferRequest(ctx, id)
	if err != nil {
		return err
	}

	if tr.Status != TransferPending {
		return fmt.Errorf("transfer request is %s, only pending requests can be approved", tr.Status)
	}

	_, err = s.RecordTransaction(ctx, TransactionParams{
		ProductID:     tr.ProductID,
		StoreID:       tr.FromStoreID,
		Type:          TransactionTransfer,
		Quantity:      tr.Quantity,
		TargetStoreID: &tr.ToStoreID,
		Note:          fmt.Sprintf("transfer request %s", tr.ID),
	})
	if err != nil {
		return err
	}

	return s.repo.UpdateTransferStatus(ctx, id, TransferApproved)
}

func (s *Service) RejectTransfer(ctx context.Context, id uuid.UUID) error {
	tr, err := s.repo.GetTransferRequest(ctx, id)
	if err != nil {
		return err
	}

	if tr.Status != TransferPending {
		return fmt.Errorf("transfer request is %s, only pending requests can be rejected", tr.Status)
	}

	return s.repo.UpdateTransferStatus(ctx, id, TransferRejected)
}
