package finance_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hemodesk/hemodesk/internal/finance"
)

func TestService_CreateAccount(t *testing.T) {
	type testCase struct {
		name      string
		accName   string
		accType   finance.AccountType
		setupMock func(m *finance.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name:    "Cash",
			accName: "Front Desk",
			accType: finance.AccountCash,
			setupMock: func(m *finance.MockRepository) {
				m.EXPECT().
					CreateAccount(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, acc *finance.Account) error {
						acc.ID = uuid.New()
						acc.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name:    "UnknownType",
			accName: "Broken",
			accType: finance.AccountType("crypto"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := finance.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := finance.NewService(repo)
			got, err := svc.CreateAccount(context.Background(), tt.accName, tt.accType)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			assert.Zero(t, got.Balance)
		})
	}
}

func TestService_Record(t *testing.T) {
	accountID := uuid.New()

	type testCase struct {
		name      string
		params    finance.RecordParams
		setupMock func(m *finance.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "IncomeAddsToBalance",
			params: finance.RecordParams{
				AccountID: accountID,
				Amount:    100,
				Type:      finance.TransactionIncome,
			},
			setupMock: func(m *finance.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *finance.Transaction) error {
						tx.ID = uuid.New()
						return nil
					})
				m.EXPECT().
					GetAccount(gomock.Any(), accountID).
					Return(&finance.Account{ID: accountID, Balance: 500}, nil)
				m.EXPECT().
					UpdateBalance(gomock.Any(), accountID, int64(600)).
					Return(nil)
			},
		},
		{
			name: "ExpenseSubtractsFromBalance",
			params: finance.RecordParams{
				AccountID: accountID,
				Amount:    100,
				Type:      finance.TransactionExpense,
			},
			setupMock: func(m *finance.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *finance.Transaction) error {
						tx.ID = uuid.New()
						return nil
					})
				m.EXPECT().
					GetAccount(gomock.Any(), accountID).
					Return(&finance.Account{ID: accountID, Balance: 500}, nil)
				m.EXPECT().
					UpdateBalance(gomock.Any(), accountID, int64(400)).
					Return(nil)
			},
		},
		{
			name: "BalanceUpdateFailureLeavesLedgerEntry",
			params: finance.RecordParams{
				AccountID: accountID,
				Amount:    100,
				Type:      finance.TransactionIncome,
			},
			setupMock: func(m *finance.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *finance.Transaction) error {
						tx.ID = uuid.New()
						return nil
					})
				m.EXPECT().
					GetAccount(gomock.Any(), accountID).
					Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
		{
			name: "ZeroAmount",
			params: finance.RecordParams{
				AccountID: accountID,
				Amount:    0,
				Type:      finance.TransactionIncome,
			},
			wantErr: true,
		},
		{
			name: "NegativeAmount",
			params: finance.RecordParams{
				AccountID: accountID,
				Amount:    -50,
				Type:      finance.TransactionExpense,
			},
			wantErr: true,
		},
		{
			name: "UnknownType",
			params: finance.RecordParams{
				AccountID: accountID,
				Amount:    100,
				Type:      finance.TransactionType("refund"),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := finance.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := finance.NewService(repo)
			got, err := svc.Record(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			assert.False(t, got.Date.IsZero())
		})
	}
}
