package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hemodesk/hemodesk/internal/inventory"
)

func TestService_RecordTransaction(t *testing.T) {
	productID := uuid.New()
	storeID := uuid.New()

	type testCase struct {
		name      string
		params    inventory.TransactionParams
		setupMock func(m *inventory.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Add",
			params: inventory.TransactionParams{
				ProductID: productID,
				StoreID:   storeID,
				Type:      inventory.TransactionAdd,
				Quantity:  50,
			},
			setupMock: func(m *inventory.MockRepository) {
				m.EXPECT().
					CreateStockTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *inventory.StockTransaction) error {
						tx.ID = uuid.New()
						tx.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			// Non-positive quantities pass through unchecked.
			name: "ZeroQuantityAccepted",
			params: inventory.TransactionParams{
				ProductID: productID,
				StoreID:   storeID,
				Type:      inventory.TransactionDeduct,
				Quantity:  0,
			},
			setupMock: func(m *inventory.MockRepository) {
				m.EXPECT().
					CreateStockTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *inventory.StockTransaction) error {
						tx.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name: "RepoError",
			params: inventory.TransactionParams{
				ProductID: productID,
				StoreID:   storeID,
				Type:      inventory.TransactionAdd,
				Quantity:  10,
			},
			setupMock: func(m *inventory.MockRepository) {
				m.EXPECT().
					CreateStockTransaction(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := inventory.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := inventory.NewService(repo)
			got, err := svc.RecordTransaction(context.Background(), tt.params)

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

func TestService_StockLevels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	productID := uuid.New()
	storeID := uuid.New()

	repo := inventory.NewMockRepository(ctrl)
	repo.EXPECT().
		ListStockTransactions(gomock.Any(), inventory.TransactionFilter{}).
		Return([]*inventory.StockTransaction{
			{ProductID: productID, StoreID: storeID, Type: inventory.TransactionAdd, Quantity: 12},
			{ProductID: productID, StoreID: storeID, Type: inventory.TransactionDeduct, Quantity: 2},
		}, nil)

	svc := inventory.NewService(repo)
	levels, err := svc.StockLevels(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 10.0, levels[inventory.BalanceKey{ProductID: productID, StoreID: storeID}])
}

func TestService_ApproveTransfer(t *testing.T) {
	transferID := uuid.New()
	productID := uuid.New()
	fromStore := uuid.New()
	toStore := uuid.New()

	pending := func() *inventory.TransferRequest {
		return &inventory.TransferRequest{
			ID:          transferID,
			ProductID:   productID,
			FromStoreID: fromStore,
			ToStoreID:   toStore,
			Quantity:    5,
			Status:      inventory.TransferPending,
		}
	}

	type testCase struct {
		name      string
		setupMock func(m *inventory.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *inventory.MockRepository) {
				m.EXPECT().
					GetTransferRequest(gomock.Any(), transferID).
					Return(pending(), nil)
				m.EXPECT().
					CreateStockTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *inventory.StockTransaction) error {
						assert.Equal(t, inventory.TransactionTransfer, tx.Type)
						assert.Equal(t, fromStore, tx.StoreID)
						require.NotNil(t, tx.TargetStoreID)
						assert.Equal(t, toStore, *tx.TargetStoreID)
						tx.ID = uuid.New()
						return nil
					})
				m.EXPECT().
					UpdateTransferStatus(gomock.Any(), transferID, inventory.TransferApproved).
					Return(nil)
			},
		},
		{
			name: "AlreadyApproved",
			setupMock: func(m *inventory.MockRepository) {
				tr := pending()
				tr.Status = inventory.TransferApproved
				m.EXPECT().
					GetTransferRequest(gomock.Any(), transferID).
					Return(tr, nil)
			},
			wantErr: true,
		},
		{
			// The ledger insert landed but the status flip failed: the
			// request stays pending with the stock already moved.
			name: "StatusUpdateFailure",
			setupMock: func(m *inventory.MockRepository) {
				m.EXPECT().
					GetTransferRequest(gomock.Any(), transferID).
					Return(pending(), nil)
				m.EXPECT().
					CreateStockTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *inventory.StockTransaction) error {
						tx.ID = uuid.New()
						return nil
					})
				m.EXPECT().
					UpdateTransferStatus(gomock.Any(), transferID, inventory.TransferApproved).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := inventory.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := inventory.NewService(repo)
			err := svc.ApproveTransfer(context.Background(), transferID)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_RejectTransfer(t *testing.T) {
	transferID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := inventory.NewMockRepository(ctrl)
	repo.EXPECT().
		GetTransferRequest(gomock.Any(), transferID).
		Return(&inventory.TransferRequest{ID: transferID, Status: inventory.TransferPending}, nil)
	repo.EXPECT().
		UpdateTransferStatus(gomock.Any(), transferID, inventory.TransferRejected).
		Return(nil)

	svc := inventory.NewService(repo)
	assert.NoError(t, svc.RejectTransfer(context.Background(), transferID))
}
