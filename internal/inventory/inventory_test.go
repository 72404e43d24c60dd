package inventory_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/hemodesk/hemodesk/internal/inventory"
)

func TestComputeBalances(t *testing.T) {
	productID := uuid.New()
	mainStore := uuid.New()
	wardStore := uuid.New()

	txs := []*inventory.StockTransaction{
		{ProductID: productID, StoreID: mainStore, Type: inventory.TransactionAdd, Quantity: 100},
		{ProductID: productID, StoreID: mainStore, Type: inventory.TransactionDeduct, Quantity: 30},
		{ProductID: productID, StoreID: mainStore, Type: inventory.TransactionTransfer, Quantity: 20, TargetStoreID: &wardStore},
		{ProductID: productID, StoreID: wardStore, Type: inventory.TransactionDeduct, Quantity: 5},
	}

	balances := inventory.ComputeBalances(txs)

	assert.Equal(t, 50.0, balances[inventory.BalanceKey{ProductID: productID, StoreID: mainStore}])
	assert.Equal(t, 15.0, balances[inventory.BalanceKey{ProductID: productID, StoreID: wardStore}])
}

func TestComputeBalances_NegativeAllowed(t *testing.T) {
	productID := uuid.New()
	storeID := uuid.New()

	txs := []*inventory.StockTransaction{
		{ProductID: productID, StoreID: storeID, Type: inventory.TransactionDeduct, Quantity: 10},
	}

	balances := inventory.ComputeBalances(txs)

	assert.Equal(t, -10.0, balances[inventory.BalanceKey{ProductID: productID, StoreID: storeID}])
}

func TestComputeBalances_TransferWithoutTarget(t *testing.T) {
	productID := uuid.New()
	storeID := uuid.New()

	txs := []*inventory.StockTransaction{
		{ProductID: productID, StoreID: storeID, Type: inventory.TransactionAdd, Quantity: 10},
		{ProductID: productID, StoreID: storeID, Type: inventory.TransactionTransfer, Quantity: 4},
	}

	balances := inventory.ComputeBalances(txs)

	assert.Len(t, balances, 1)
	assert.Equal(t, 6.0, balances[inventory.BalanceKey{ProductID: productID, StoreID: storeID}])
}
