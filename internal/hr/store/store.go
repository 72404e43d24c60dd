package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/hemodesk/hemodesk/internal/hr"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectEmployeeColumns = `
	id, code, name, bank_account, shift_price, type, created_at, updated_at
`

func scanEmployee(sc scanner) (*hr.Employee, error) {
	var e hr.Employee

	var typeStr string

	var bankAccount sql.NullString

	if err := sc.Scan(
		&e.ID, &e.Code, &e.Name, &bankAccount, &e.ShiftPrice, &typeStr, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}

	e.BankAccount = bankAccount.String
	e.Type = hr.EmployeeType(typeStr)

	return &e, nil
}

func (s *Store) CreateEmployee(ctx context.Context, e *hr.Employee) error {
	query := `
		INSERT INTO employees (code, name, bank_account, shift_price, type, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		e.Code,
		e.Name,
		e.BankAccount,
		e.ShiftPrice,
		e.Type,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating employee: %w", err)
	}

	return nil
}

func (s *Store) GetEmployee(ctx context.Context, id uuid.UUID) (*hr.Employee, error) {
	query := `SELECT ` + selectEmployeeColumns + ` FROM employees WHERE id = $1`

	e, err := scanEmployee(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, hr.ErrEmployeeNotFound
		}

		return nil, fmt.Errorf("getting employee: %w", err)
	}

	return e, nil
}

func (s *Store) GetEmployeeByCode(ctx context.Context, code string) (*hr.Employee, error) {
	query := `SELECT ` + selectEmployeeColumns + ` FROM employees WHERE code = $1`

	e, err := scanEmployee(s.db.QueryRowContext(ctx, query, code))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, hr.ErrEmployeeNotFound
		}

		return nil, fmt.Errorf("getting employee by code: %w", err)
	}

	return e, nil
}

func (s *Store) ListEmployees(ctx context.Context) ([]*hr.Employee, error) {
	query := `SELECT ` + selectEmployeeColumns + ` FROM employees ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}
	defer rows.Close()

	var employees []*hr.Employee

	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning employee: %w", err)
		}

		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating employee rows: %w", err)
	}

	return employees, nil
}

func (s *Store) UpdateEmployee(ctx context.Context, e *hr.Employee) error {
	query := `
		UPDATE employees
		SET code = $1, name = $2, bank_account = $3, shift_price = $4, type = $5, updated_at = NOW()
		WHERE id = $6
	`

	_, err := s.db.ExecContext(ctx, query,
		e.Code,
		e.Name,
		e.BankAccount,
		e.ShiftPrice,
		e.Type,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating employee: %w", err)
	}

	return nil
}

func (s *Store) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM employees WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting employee: %w", err)
	}

	return nil
}

func (s *Store) CreateShiftRecord(ctx context.Context, r *hr.ShiftRecord) error {
	query := `
		INSERT INTO shift_records (employee_id, date, count, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, r.EmployeeID, r.Date, r.Count).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating shift record: %w", err)
	}

	return nil
}

func (s *Store) ListShiftRecords(ctx context.Context, filter hr.ShiftFilter) ([]*hr.ShiftRecord, error) {
	query := `
		SELECT id, employee_id, date, count, created_at
		FROM shift_records
		WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND employee_id = $%d", argIdx)

		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY date DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing shift records: %w", err)
	}
	defer rows.Close()

	var records []*hr.ShiftRecord

	for rows.Next() {
		var r hr.ShiftRecord
		if err := rows.Scan(&r.ID, &r.EmployeeID, &r.Date, &r.Count, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning shift record: %w", err)
		}

		records = append(records, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shift record rows: %w", err)
	}

	return records, nil
}
