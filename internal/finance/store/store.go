package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/hemodesk/hemodesk/internal/finance"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateAccount(ctx context.Context, acc *finance.Account) error {
	query := `
		INSERT INTO financial_accounts (name, type, balance, created_at)
		VALUES ($1, $2, 0, NOW())
		RETURNING id, balance, created_at
	`

	err := s.db.QueryRowContext(ctx, query, acc.Name, acc.Type).
		Scan(&acc.ID, &acc.Balance, &acc.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating account: %w", err)
	}

	return nil
}

func (s *Store) GetAccount(ctx context.Context, id uuid.UUID) (*finance.Account, error) {
	query := `
		SELECT id, name, type, balance, created_at, updated_at
		FROM financial_accounts
		WHERE id = $1
	`

	var acc finance.Account

	var typeStr string

	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&acc.ID, &acc.Name, &typeStr, &acc.Balance, &acc.CreatedAt, &acc.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, finance.ErrAccountNotFound
		}

		return nil, fmt.Errorf("getting account: %w", err)
	}

	acc.Type = finance.AccountType(typeStr)

	return &acc, nil
}

func (s *Store) ListAccounts(ctx context.Context) ([]*finance.Account, error) {
	query := `
		SELECT id, name, type, balance, created_at, updated_at
		FROM financial_accounts
		ORDER BY name ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*finance.Account

	for rows.Next() {
		var acc finance.Account

		var typeStr string

		if err := rows.Scan(&acc.ID, &acc.Name, &typeStr, &acc.Balance, &acc.CreatedAt, &acc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		acc.Type = finance.AccountType(typeStr)

		accounts = append(accounts, &acc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating account rows: %w", err)
	}

	return accounts, nil
}

func (s *Store) UpdateBalance(ctx context.Context, id uuid.UUID, balance int64) error {
	query := `
		UPDATE financial_accounts
		SET balance = $1, updated_at = NOW()
		WHERE id = $2
	`

	_, err := s.db.ExecContext(ctx, query, balance, id)
	if err != nil {
		return fmt.Errorf("updating balance: %w", err)
	}

	return nil
}

func (s *Store) CreateTransaction(ctx context.Context, tx *finance.Transaction) error {
	query := `
		INSERT INTO transactions (account_id, amount, type, date, category, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		tx.AccountID,
		tx.Amount,
		tx.Type,
		tx.Date,
		tx.Category,
		tx.Note,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (s *Store) ListTransactions(ctx context.Context, filter finance.ListFilter) ([]*finance.Transaction, error) {
	query := `
		SELECT id, account_id, amount, type, date, category, note, created_at
		FROM transactions
		WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.AccountID != nil {
		query += fmt.Sprintf(" AND account_id = $%d", argIdx)

		args = append(args, *filter.AccountID)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY date DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*finance.Transaction

	for rows.Next() {
		var tx finance.Transaction

		var typeStr string

		var category, note sql.NullString

		if err := rows.Scan(&tx.ID, &tx.AccountID, &tx.Amount, &typeStr, &tx.Date, &category, &note, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		tx.Type = finance.TransactionType(typeStr)
		tx.Category = category.String
		tx.Note = note.String

		txs = append(txs, &tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}
