package finance

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrAccountNotFound = errors.New("account not found")

// AccountType distinguishes cash drawers from bank accounts.
type AccountType string

const (
	AccountCash AccountType = "cash"
	AccountBank AccountType = "bank"
)

// Account holds a running balance maintained procedurally at write time.
// The balance is not recomputed from the ledger on read, so it can drift
// if any other writer touches the transactions table.
type Account struct {
	ID        uuid.UUID
	Name      string
	Type      AccountType
	Balance   int64 // balance in cents
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// TransactionType encodes direction; amounts are always positive.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction is one entry in the append-only finance ledger.
type Transaction struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Amount    int64 // amount in cents, positive
	Type      TransactionType
	Date      time.Time
	Category  string
	Note      string
	CreatedAt time.Time
}
