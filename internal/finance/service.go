package finance

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=finance
type Repository interface {
	CreateAccount(ctx context.Context, acc *Account) error
	GetAccount(ctx context.Context, id uuid.UUID) (*Account, error)
	ListAccounts(ctx context.Context) ([]*Account, error)
	UpdateBalance(ctx context.Context, id uuid.UUID, balance int64) error

	CreateTransaction(ctx context.Context, tx *Transaction) error
	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateAccount(ctx context.Context, name string, accType AccountType) (*Account, error) {
	if accType != AccountCash && accType != AccountBank {
		return nil, errors.New("account type must be cash or bank")
	}

	acc := &Account{Name: name, Type: accType}
	if err := s.repo.CreateAccount(ctx, acc); err != nil {
		return nil, err
	}

	return acc, nil
}

func (s *Service) GetAccount(ctx context.Context, id uuid.UUID) (*Account, error) {
	return s.repo.GetAccount(ctx, id)
}

func (s *Service) ListAccounts(ctx context.Context) ([]*Account, error) {
	return s.repo.ListAccounts(ctx)
}

type RecordParams struct {
	AccountID uuid.UUID
	Amount    int64
	Type      TransactionType
	Date      time.Time // defaults to now when zero
	Category  string
	Note      string
}

type ListFilter struct {
	AccountID *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// Record appends a ledger entry and then updates the owning account's
// balance: + for income, − for expense.
//
// The insert, the balance read, and the balance write are three separate
// round trips with no locking or versioning. Concurrent calls against the
// same account can lose updates, and a failure after the insert leaves the
// transaction recorded with a stale balance. This mirrors the dashboard
// behavior this backend replaces; it is a documented gap, not a guarantee.
func (s *Service) Record(ctx context.Context, params RecordParams) (*Transaction, error) {
	if params.Amount <= 0 {
		return nil, errors.New("transaction amount must be positive")
	}

	if params.Type != TransactionIncome && params.Type != TransactionExpense {
		return nil, errors.New("transaction type must be income or expense")
	}

	date := params.Date
	if date.IsZero() {
		date = time.Now()
	}

	tx := &Transaction{
		AccountID: params.AccountID,
		Amount:    params.Amount,
		Type:      params.Type,
		Date:      date,
		Category:  params.Category,
		Note:      params.Note,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	acc, err := s.repo.GetAccount(ctx, params.AccountID)
	if err != nil {
		return nil, err
	}

	balance := acc.Balance
	if params.Type == TransactionIncome {
		balance += params.Amount
	} else {
		balance -= params.Amount
	}

	if err := s.repo.UpdateBalance(ctx, params.AccountID, balance); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, filter)
}
