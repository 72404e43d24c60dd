package report_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"

	"github.com/hemodesk/hemodesk/internal/finance"
	"github.com/hemodesk/hemodesk/internal/inventory"
	"github.com/hemodesk/hemodesk/internal/report"
)

func TestService_Transactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := uuid.New()

	financeRepo := finance.NewMockRepository(ctrl)
	financeRepo.EXPECT().
		ListTransactions(gomock.Any(), finance.ListFilter{}).
		Return([]*finance.Transaction{
			{
				ID:        uuid.New(),
				AccountID: accountID,
				Amount:    250000,
				Type:      finance.TransactionIncome,
				Date:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				Category:  "dialysis",
			},
		}, nil)
	financeRepo.EXPECT().
		ListAccounts(gomock.Any()).
		Return([]*finance.Account{
			{ID: accountID, Name: "Main Cash", Type: finance.AccountCash},
		}, nil)

	svc := report.NewService(finance.NewService(financeRepo), inventory.NewService(inventory.NewMockRepository(ctrl)))

	data, err := svc.Transactions(context.Background(), finance.ListFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Transactions")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Date", rows[0][0])
	assert.Equal(t, "2024-03-01", rows[1][0])
	assert.Equal(t, "Main Cash", rows[1][1])
	assert.Equal(t, "income", rows[1][2])
	assert.Equal(t, "2500", rows[1][3])
}

func TestService_StockLevels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	productID := uuid.New()
	storeID := uuid.New()

	inventoryRepo := inventory.NewMockRepository(ctrl)
	inventoryRepo.EXPECT().
		ListStockTransactions(gomock.Any(), inventory.TransactionFilter{}).
		Return([]*inventory.StockTransaction{
			{ProductID: productID, StoreID: storeID, Type: inventory.TransactionAdd, Quantity: 40},
			{ProductID: productID, StoreID: storeID, Type: inventory.TransactionDeduct, Quantity: 10},
		}, nil)
	inventoryRepo.EXPECT().
		ListProducts(gomock.Any()).
		Return([]*inventory.Product{
			{ID: productID, Name: "Dialyzer", Unit: "pc", MinStock: 20},
		}, nil)
	inventoryRepo.EXPECT().
		ListStores(gomock.Any()).
		Return([]*inventory.Store{
			{ID: storeID, Name: "Main Warehouse", IsMain: true},
		}, nil)

	svc := report.NewService(finance.NewService(finance.NewMockRepository(ctrl)), inventory.NewService(inventoryRepo))

	data, err := svc.StockLevels(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Stock Levels")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"Product", "Store", "Balance", "Unit", "Min Stock"}, rows[0])
	assert.Equal(t, "Dialyzer", rows[1][0])
	assert.Equal(t, "Main Warehouse", rows[1][1])
	assert.Equal(t, "30", rows[1][2])
}
