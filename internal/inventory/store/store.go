package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/hemodesk/hemodesk/internal/inventory"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func (s *Store) CreateProduct(ctx context.Context, p *inventory.Product) error {
	query := `
		INSERT INTO products (name, unit, min_stock, unit_price, category, barcode, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		p.Name,
		p.Unit,
		p.MinStock,
		p.UnitPrice,
		p.Category,
		p.Barcode,
		p.Description,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating product: %w", err)
	}

	return nil
}

const selectProductColumns = `
	id, name, unit, min_stock, unit_price, category, barcode, description, created_at, updated_at
`

func scanProduct(sc scanner) (*inventory.Product, error) {
	var p inventory.Product

	var category, barcode, description sql.NullString

	if err := sc.Scan(
		&p.ID, &p.Name, &p.Unit, &p.MinStock, &p.UnitPrice,
		&category, &barcode, &description,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	p.Category = category.String
	p.Barcode = barcode.String
	p.Description = description.String

	return &p, nil
}

func (s *Store) GetProduct(ctx context.Context, id uuid.UUID) (*inventory.Product, error) {
	query := `SELECT ` + selectProductColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, inventory.ErrProductNotFound
		}

		return nil, fmt.Errorf("getting product: %w", err)
	}

	return p, nil
}

func (s *Store) ListProducts(ctx context.Context) ([]*inventory.Product, error) {
	query := `SELECT ` + selectProductColumns + ` FROM products ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var products []*inventory.Product

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}

		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, nil
}

func (s *Store) UpdateProduct(ctx context.Context, p *inventory.Product) error {
	query := `
		UPDATE products
		SET name = $1, unit = $2, min_stock = $3, unit_price = $4,
			category = $5, barcode = $6, description = $7, updated_at = NOW()
		WHERE id = $8
	`

	_, err := s.db.ExecContext(ctx, query,
		p.Name,
		p.Unit,
		p.MinStock,
		p.UnitPrice,
		p.Category,
		p.Barcode,
		p.Description,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}

	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM products WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	return nil
}

func (s *Store) CreateStore(ctx context.Context, st *inventory.Store) error {
	query := `
		INSERT INTO stores (name, is_main, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, st.Name, st.IsMain).Scan(&st.ID, &st.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating store: %w", err)
	}

	return nil
}

func (s *Store) ListStores(ctx context.Context) ([]*inventory.Store, error) {
	query := `SELECT id, name, is_main, created_at FROM stores ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing stores: %w", err)
	}
	defer rows.Close()

	var stores []*inventory.Store

	for rows.Next() {
		var st inventory.Store
		if err := rows.Scan(&st.ID, &st.Name, &st.IsMain, &st.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning store: %w", err)
		}

		stores = append(stores, &st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating store rows: %w", err)
	}

	return stores, nil
}

func (s *Store) DeleteStore(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM stores WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting store: %w", err)
	}

	return nil
}

func (s *Store) CreateStockTransaction(ctx context.Context, tx *inventory.StockTransaction) error {
	query := `
		INSERT INTO stock_transactions (product_id, store_id, type, quantity, target_store_id, date, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		tx.ProductID,
		tx.StoreID,
		tx.Type,
		tx.Quantity,
		tx.TargetStoreID,
		tx.Date,
		tx.Note,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating stock transaction: %w", err)
	}

	return nil
}

func (s *Store) ListStockTransactions(ctx context.Context, filter inventory.TransactionFilter) ([]*inventory.StockTransaction, error) {
	query := `
		SELECT id, product_id, store_id, type, quantity, target_store_id, date, note, created_at
		FROM stock_transactions
		WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.ProductID != nil {
		query += fmt.Sprintf(" AND product_id = $%d", argIdx)

		args = append(args, *filter.ProductID)
		argIdx++
	}

	if filter.StoreID != nil {
		query += fmt.Sprintf(" AND store_id = $%d", argIdx)

		args = append(args, *filter.StoreID)
		argIdx++
	}

	query += " ORDER BY date DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing stock transactions: %w", err)
	}
	defer rows.Close()

	var txs []*inventory.StockTransaction

	for rows.Next() {
		var tx inventory.StockTransaction

		var typeStr string

		var note sql.NullString

		if err := rows.Scan(
			&tx.ID, &tx.ProductID, &tx.StoreID, &typeStr, &tx.Quantity,
			&tx.TargetStoreID, &tx.Date, &note, &tx.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning stock transaction: %w", err)
		}

		tx.Type = inventory.TransactionType(typeStr)
		tx.Note = note.String

		txs = append(txs, &tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stock transaction rows: %w", err)
	}

	return txs, nil
}

func (s *Store) CreateTransferRequest(ctx context.Context, tr *inventory.TransferRequest) error {
	query := `
		INSERT INTO transfer_requests (product_id, from_store_id, to_store_id, quantity, status, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		tr.ProductID,
		tr.FromStoreID,
		tr.ToStoreID,
		tr.Quantity,
		tr.Status,
		tr.Note,
	).Scan(&tr.ID, &tr.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating transfer request: %w", err)
	}

	return nil
}

const selectTransferColumns = `
	id, product_id, from_store_id, to_store_id, quantity, status, note, created_at, updated_at
`

func scanTransfer(sc scanner) (*inventory.TransferRequest, error) {
	var tr inventory.TransferRequest

	var statusStr string

	var note sql.NullString

	if err := sc.Scan(
		&tr.ID, &tr.ProductID, &tr.FromStoreID, &tr.ToStoreID, &tr.Quantity,
		&statusStr, &note, &tr.CreatedAt, &tr.UpdatedAt,
	); err != nil {
		return nil, err
	}

	tr.Status = inventory.TransferStatus(statusStr)
	tr.Note = note.String

	return &tr, nil
}

func (s *Store) GetTransferRequest(ctx context.Context, id uuid.UUID) (*inventory.TransferRequest, error) {
	query := `SELECT ` + selectTransferColumns + ` FROM transfer_requests WHERE id = $1`

	tr, err := scanTransfer(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, inventory.ErrTransferNotFound
		}

		return nil, fmt.Errorf("getting transfer request: %w", err)
	}

	return tr, nil
}

func (s *Store) ListTransferRequests(ctx context.Context) ([]*inventory.TransferRequest, error) {
	query := `SELECT ` + selectTransferColumns + ` FROM transfer_requests ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing transfer requests: %w", err)
	}
	defer rows.Close()

	var trs []*inventory.TransferRequest

	for rows.Next() {
		tr, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transfer request: %w", err)
		}

		trs = append(trs, tr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transfer request rows: %w", err)
	}

	return trs, nil
}

func (s *Store) UpdateTransferStatus(ctx context.Context, id uuid.UUID, status inventory.TransferStatus) error {
	query := `
		UPDATE transfer_requests
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	_, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating transfer status: %w", err)
	}

	return nil
}
