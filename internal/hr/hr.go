package hr

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmployeeNotFound = errors.New("employee not found")

// EmployeeType separates staff on payroll from temporary hires.
type EmployeeType string

const (
	EmployeePermanent EmployeeType = "permanent"
	EmployeeTemporary EmployeeType = "temporary"
)

// Employee is a payroll record. Code is the clinic's own unique staff
// identifier and is what shift sheets reference.
type Employee struct {
	ID          uuid.UUID
	Code        string
	Name        string
	BankAccount string
	ShiftPrice  int64 // pay per shift in cents
	Type        EmployeeType
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// ShiftRecord states how many shifts an employee worked on a date.
type ShiftRecord struct {
	ID         uuid.UUID
	EmployeeID uuid.UUID
	Date       time.Time
	Count      float64
	CreatedAt  time.Time
}

// ShiftImportRow is one parsed line of an uploaded shift sheet, keyed by
// employee code rather than ID.
type ShiftImportRow struct {
	EmployeeCode string
	Date         time.Time
	Count        float64
}
