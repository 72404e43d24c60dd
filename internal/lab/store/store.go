package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/hemodesk/hemodesk/internal/lab"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateDefinition(ctx context.Context, def *lab.TestDefinition) error {
	query := `
		INSERT INTO lab_test_definitions (name, category, sample_type, range_male, range_female, range_child, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		def.Name,
		def.Category,
		def.SampleType,
		def.RangeMale,
		def.RangeFemale,
		def.RangeChild,
	).Scan(&def.ID, &def.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating test definition: %w", err)
	}

	return nil
}

func (s *Store) ListDefinitions(ctx context.Context) ([]*lab.TestDefinition, error) {
	query := `
		SELECT id, name, category, sample_type, range_male, range_female, range_child, created_at
		FROM lab_test_definitions
		ORDER BY name ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing test definitions: %w", err)
	}
	defer rows.Close()

	var defs []*lab.TestDefinition

	for rows.Next() {
		var def lab.TestDefinition

		var category, sampleType, rangeMale, rangeFemale, rangeChild sql.NullString

		if err := rows.Scan(
			&def.ID, &def.Name, &category, &sampleType,
			&rangeMale, &rangeFemale, &rangeChild, &def.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning test definition: %w", err)
		}

		def.Category = category.String
		def.SampleType = sampleType.String
		def.RangeMale = rangeMale.String
		def.RangeFemale = rangeFemale.String
		def.RangeChild = rangeChild.String

		defs = append(defs, &def)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating test definition rows: %w", err)
	}

	return defs, nil
}

func (s *Store) DeleteDefinition(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM lab_test_definitions WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting test definition: %w", err)
	}

	return nil
}

func (s *Store) CreateTest(ctx context.Context, t *lab.Test) error {
	query := `
		INSERT INTO lab_tests (patient_id, definition_id, result, status, date, created_at)
		VALUES ($1, $2, NULL, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		t.PatientID,
		t.DefinitionID,
		t.Status,
		t.Date,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating lab test: %w", err)
	}

	return nil
}

const selectTestColumns = `
	id, patient_id, definition_id, result, status, date, created_at, updated_at
`

func (s *Store) GetTest(ctx context.Context, id uuid.UUID) (*lab.Test, error) {
	query := `SELECT ` + selectTestColumns + ` FROM lab_tests WHERE id = $1`

	var t lab.Test

	var statusStr string

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.PatientID, &t.DefinitionID, &t.Result, &statusStr, &t.Date, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, lab.ErrTestNotFound
		}

		return nil, fmt.Errorf("getting lab test: %w", err)
	}

	t.Status = lab.TestStatus(statusStr)

	return &t, nil
}

func (s *Store) ListTests(ctx context.Context, filter lab.ListFilter) ([]*lab.Test, error) {
	query := `SELECT ` + selectTestColumns + ` FROM lab_tests WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.PatientID != nil {
		query += fmt.Sprintf(" AND patient_id = $%d", argIdx)

		args = append(args, *filter.PatientID)
		argIdx++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	query += " ORDER BY date DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing lab tests: %w", err)
	}
	defer rows.Close()

	var tests []*lab.Test

	for rows.Next() {
		var t lab.Test

		var statusStr string

		if err := rows.Scan(
			&t.ID, &t.PatientID, &t.DefinitionID, &t.Result, &statusStr, &t.Date, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning lab test: %w", err)
		}

		t.Status = lab.TestStatus(statusStr)

		tests = append(tests, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating lab test rows: %w", err)
	}

	return tests, nil
}

func (s *Store) SetResult(ctx context.Context, id uuid.UUID, result string, status lab.TestStatus) error {
	query := `
		UPDATE lab_tests
		SET result = $1, status = $2, updated_at = NOW()
		WHERE id = $3
	`

	_, err := s.db.ExecContext(ctx, query, result, status, id)
	if err != nil {
		return fmt.Errorf("setting lab result: %w", err)
	}

	return nil
}
