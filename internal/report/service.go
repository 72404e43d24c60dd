package report

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/hemodesk/hemodesk/internal/finance"
	"github.com/hemodesk/hemodesk/internal/inventory"
)

// Service renders the dashboard's export buttons: finance and stock data
// as Excel workbooks.
type Service struct {
	finance   *finance.Service
	inventory *inventory.Service
}

func NewService(financeSvc *finance.Service, inventorySvc *inventory.Service) *Service {
	return &Service{finance: financeSvc, inventory: inventorySvc}
}

var transactionHeaders = []string{"Date", "Account", "Type", "Amount", "Category", "Note"}

// Transactions builds an .xlsx of ledger entries matching the filter.
func (s *Service) Transactions(ctx context.Context, filter finance.ListFilter) ([]byte, error) {
	txs, err := s.finance.ListTransactions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	accounts, err := s.finance.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}

	accountNames := make(map[string]string, len(accounts))
	for _, acc := range accounts {
		accountNames[acc.ID.String()] = acc.Name
	}

	rows := make([][]any, 0, len(txs))

	for _, tx := range txs {
		rows = append(rows, []any{
			tx.Date.Format(time.DateOnly),
			accountNames[tx.AccountID.String()],
			string(tx.Type),
			float64(tx.Amount) / 100,
			tx.Category,
			tx.Note,
		})
	}

	return buildWorkbook("Transactions", transactionHeaders, rows)
}

var stockHeaders = []string{"Product", "Store", "Balance", "Unit", "Min Stock"}

// StockLevels builds an .xlsx of derived per-store balances.
func (s *Service) StockLevels(ctx context.Context) ([]byte, error) {
	levels, err := s.inventory.StockLevels(ctx)
	if err != nil {
		return nil, fmt.Errorf("computing stock levels: %w", err)
	}

	products, err := s.inventory.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}

	stores, err := s.inventory.ListStores(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing stores: %w", err)
	}

	storeNames := make(map[string]string, len(stores))
	for _, st := range stores {
		storeNames[st.ID.String()] = st.Name
	}

	var rows [][]any

	// Walk products in their listed (name) order so the sheet is stable.
	for _, p := range products {
		for _, st := range stores {
			key := inventory.BalanceKey{ProductID: p.ID, StoreID: st.ID}

			balance, ok := levels[key]
			if !ok {
				continue
			}

			rows = append(rows, []any{
				p.Name,
				storeNames[st.ID.String()],
				balance,
				p.Unit,
				p.MinStock,
			})
		}
	}

	return buildWorkbook("Stock Levels", stockHeaders, rows)
}

// buildWorkbook writes a single-sheet workbook with a bold header row.
func buildWorkbook(sheetName string, headers []string, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("creating sheet: %w", err)
	}

	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("creating header style: %w", err)
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("resolving header cell: %w", err)
		}

		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("writing header: %w", err)
		}

		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("styling header: %w", err)
		}
	}

	for i, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("resolving cell: %w", err)
			}

			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				f.Close()
				return nil, fmt.Errorf("writing row %d: %w", i+1, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("serializing workbook: %w", err)
	}

	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("closing workbook: %w", err)
	}

	return buf.Bytes(), nil
}
