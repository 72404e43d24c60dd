package hr

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=hr
type Repository interface {
	CreateEmployee(ctx context.Context, e *Employee) error
	GetEmployee(ctx context.Context, id uuid.UUID) (*Employee, error)
	GetEmployeeByCode(ctx context.Context, code string) (*Employee, error)
	ListEmployees(ctx context.Context) ([]*Employee, error)
	UpdateEmployee(ctx context.Context, e *Employee) error
	DeleteEmployee(ctx context.Context, id uuid.UUID) error

	CreateShiftRecord(ctx context.Context, r *ShiftRecord) error
	ListShiftRecords(ctx context.Context, filter ShiftFilter) ([]*ShiftRecord, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type EmployeeParams struct {
	Code        string
	Name        string
	BankAccount string
	ShiftPrice  int64
	Type        EmployeeType
}

func (s *Service) CreateEmployee(ctx context.Context, params EmployeeParams) (*Employee, error) {
	if params.Code == "" {
		return nil, errors.New("employee code is required")
	}

	if params.Type != EmployeePermanent && params.Type != EmployeeTemporary {
		return nil, errors.New("employee type must be permanent or temporary")
	}

	e := &Employee{
		Code:        params.Code,
		Name:        params.Name,
		BankAccount: params.BankAccount,
		ShiftPrice:  params.ShiftPrice,
		Type:        params.Type,
	}
	if err := s.repo.CreateEmployee(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) GetEmployee(ctx context.Context, id uuid.UUID) (*Employee, error) {
	return s.repo.GetEmployee(ctx, id)
}

func (s *Service) ListEmployees(ctx context.Context) ([]*Employee, error) {
	return s.repo.ListEmployees(ctx)
}

func (s *Service) UpdateEmployee(ctx context.Context, e *Employee) error {
	return s.repo.UpdateEmployee(ctx, e)
}

func (s *Service) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteEmployee(ctx, id)
}

type ShiftParams struct {
	EmployeeID uuid.UUID
	Date       time.Time
	Count      float64
}

type ShiftFilter struct {
	EmployeeID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

func (s *Service) RecordShift(ctx context.Context, params ShiftParams) (*ShiftRecord, error) {
	r := &ShiftRecord{
		EmployeeID: params.EmployeeID,
		Date:       params.Date,
		Count:      params.Count,
	}
	if err := s.repo.CreateShiftRecord(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

func (s *Service) ListShiftRecords(ctx context.Context, filter ShiftFilter) ([]*ShiftRecord, error) {
	return s.repo.ListShiftRecords(ctx, filter)
}

// ImportShifts records every row of a parsed shift sheet, resolving
// employees by code. Rows are written one by one in order; a bad code or
// failed insert stops the import and reports how many rows made it in.
func (s *Service) ImportShifts(ctx context.Context, rows []ShiftImportRow) (int, error) {
	for i, row := range rows {
		e, err := s.repo.GetEmployeeByCode(ctx, row.EmployeeCode)
		if err != nil {
			return i, fmt.Errorf("row %d: resolving employee %q: %w", i+1, row.EmployeeCode, err)
		}

		r := &ShiftRecord{
			EmployeeID: e.ID,
			Date:       row.Date,
			Count:      row.Count,
		}
		if err := s.repo.CreateShiftRecord(ctx, r); err != nil {
			return i, fmt.Errorf("row %d: recording shift: %w", i+1, err)
		}
	}

	return len(rows), nil
}
