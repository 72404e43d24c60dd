package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	enc "github.com/hemodesk/hemodesk/internal/encoding"
	"github.com/hemodesk/hemodesk/internal/hr"
)

// Column names accepted in a shift sheet header. Sheets come from
// hand-maintained spreadsheets, so several spellings are tolerated.
var (
	codeHeaders  = []string{"code", "employee code", "employee"}
	dateHeaders  = []string{"date", "day"}
	countHeaders = []string{"shifts", "count", "shift count"}
)

var dateLayouts = []string{"2006-01-02", "02/01/2006", "02-01-2006"}

// ShiftSheet parses uploaded payroll shift sheets (CSV exports) into
// import rows. The header row is located by scanning for the expected
// column names, so leading title rows are skipped.
type ShiftSheet struct{}

func NewShiftSheet() *ShiftSheet {
	return &ShiftSheet{}
}

func (p *ShiftSheet) Parse(r io.Reader) ([]hr.ShiftImportRow, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	codeIdx, dateIdx, countIdx, headerIdx, found := detectHeader(rows)
	if !found {
		return nil, fmt.Errorf("no shift sheet header found: expected columns for employee code, date, and shift count")
	}

	var imports []hr.ShiftImportRow

	for i, row := range rows[headerIdx+1:] {
		rowNum := headerIdx + i + 2 // 1-based, after the header

		code := cellValue(row, codeIdx)
		if code == "" {
			// Blank or footer row.
			continue
		}

		date, ok := parseDate(cellValue(row, dateIdx))
		if !ok {
			return nil, fmt.Errorf("row %d: unparseable date %q", rowNum, cellValue(row, dateIdx))
		}

		count, err := strconv.ParseFloat(cellValue(row, countIdx), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: unparseable shift count %q", rowNum, cellValue(row, countIdx))
		}

		imports = append(imports, hr.ShiftImportRow{
			EmployeeCode: code,
			Date:         date,
			Count:        count,
		})
	}

	return imports, nil
}

// detectHeader scans for the first row containing all three expected
// columns and returns their indices.
func detectHeader(rows [][]string) (codeIdx, dateIdx, countIdx, headerIdx int, found bool) {
	for rowIdx, row := range rows {
		cols := make(map[string]int)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if name != "" {
				cols[name] = i
			}
		}

		codeIdx, codeOK := findColumn(cols, codeHeaders)
		dateIdx, dateOK := findColumn(cols, dateHeaders)
		countIdx, countOK := findColumn(cols, countHeaders)

		if codeOK && dateOK && countOK {
			return codeIdx, dateIdx, countIdx, rowIdx, true
		}
	}

	return 0, 0, 0, 0, false
}

func findColumn(cols map[string]int, names []string) (int, bool) {
	for _, name := range names {
		if idx, ok := cols[name]; ok {
			return idx, true
		}
	}

	return 0, false
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
