package importer_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hemodesk/hemodesk/internal/importer"
)

func TestShiftSheet_Parse(t *testing.T) {
	input := strings.Join([]string{
		"Code,Date,Shifts",
		"E-001,2024-03-01,1",
		"E-002,2024-03-01,0.5",
		"",
		"E-001,2024-03-02,1",
	}, "\n")

	rows, err := importer.NewShiftSheet().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "E-001", rows[0].EmployeeCode)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), rows[0].Date)
	assert.Equal(t, 1.0, rows[0].Count)
	assert.Equal(t, 0.5, rows[1].Count)
}

func TestShiftSheet_Parse_HeaderSynonymsAndTitleRow(t *testing.T) {
	// Sheets exported by hand often carry a title row above the header and
	// use alternate column names.
	input := strings.Join([]string{
		"March payroll,,",
		"Employee Code,Day,Count",
		"E-001,01/03/2024,1",
	}, "\n")

	rows, err := importer.NewShiftSheet().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "E-001", rows[0].EmployeeCode)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), rows[0].Date)
}

func TestShiftSheet_Parse_NoHeader(t *testing.T) {
	input := "just,some,cells\nwithout,a,header\n"

	_, err := importer.NewShiftSheet().Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no shift sheet header")
}

func TestShiftSheet_Parse_BadDate(t *testing.T) {
	input := "Code,Date,Shifts\nE-001,yesterday,1\n"

	_, err := importer.NewShiftSheet().Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, err.Error(), "date")
}

func TestShiftSheet_Parse_BadCount(t *testing.T) {
	input := "Code,Date,Shifts\nE-001,2024-03-01,lots\n"

	_, err := importer.NewShiftSheet().Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, err.Error(), "shift count")
}
