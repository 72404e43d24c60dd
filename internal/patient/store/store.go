package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/hemodesk/hemodesk/internal/patient"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectPatientColumns = `
	p.id, p.name, p.national_id, p.phone, p.address, p.blood_type, p.date_of_birth,
	p.funding_entity_id, fe.name AS funding_entity_name, fe.created_at AS funding_entity_created_at,
	p.emergency_name, p.emergency_phone, p.emergency_relation,
	p.created_at, p.updated_at, p.deleted_at
`

// scanPatient reads a patient row joined with its optional funding entity.
func scanPatient(s scanner) (*patient.Patient, error) {
	var p patient.Patient

	var feID *uuid.UUID

	var feName sql.NullString

	var feCreatedAt sql.NullTime

	if err := s.Scan(
		&p.ID, &p.Name, &p.NationalID, &p.Phone, &p.Address, &p.BloodType, &p.DateOfBirth,
		&feID, &feName, &feCreatedAt,
		&p.Emergency.Name, &p.Emergency.Phone, &p.Emergency.Relation,
		&p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	); err != nil {
		return nil, err
	}

	p.FundingEntityID = feID

	if feID != nil && feName.Valid {
		p.FundingEntity = &patient.FundingEntity{
			ID:        *feID,
			Name:      feName.String,
			CreatedAt: feCreatedAt.Time,
		}
	}

	return &p, nil
}

func (s *Store) CreatePatient(ctx context.Context, p *patient.Patient) error {
	query := `
		INSERT INTO patients (name, national_id, phone, address, blood_type, date_of_birth,
			funding_entity_id, emergency_name, emergency_phone, emergency_relation, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		p.Name,
		p.NationalID,
		p.Phone,
		p.Address,
		p.BloodType,
		p.DateOfBirth,
		p.FundingEntityID,
		p.Emergency.Name,
		p.Emergency.Phone,
		p.Emergency.Relation,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating patient: %w", err)
	}

	return nil
}

func (s *Store) GetPatient(ctx context.Context, id uuid.UUID) (*patient.Patient, error) {
	query := `SELECT ` + selectPatientColumns + `
		FROM patients p
		LEFT JOIN funding_entities fe ON p.funding_entity_id = fe.id
		WHERE p.id = $1 AND p.deleted_at IS NULL`

	p, err := scanPatient(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, patient.ErrNotFound
		}

		return nil, fmt.Errorf("getting patient: %w", err)
	}

	return p, nil
}

func (s *Store) ListPatients(ctx context.Context) ([]*patient.Patient, error) {
	query := `SELECT ` + selectPatientColumns + `
		FROM patients p
		LEFT JOIN funding_entities fe ON p.funding_entity_id = fe.id
		WHERE p.deleted_at IS NULL
		ORDER BY p.created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing patients: %w", err)
	}
	defer rows.Close()

	var patients []*patient.Patient

	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning patient: %w", err)
		}

		patients = append(patients, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating patient rows: %w", err)
	}

	return patients, nil
}

func (s *Store) UpdatePatient(ctx context.Context, p *patient.Patient) error {
	query := `
		UPDATE patients
		SET name = $1, national_id = $2, phone = $3, address = $4, blood_type = $5,
			date_of_birth = $6, funding_entity_id = $7,
			emergency_name = $8, emergency_phone = $9, emergency_relation = $10,
			updated_at = NOW()
		WHERE id = $11 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query,
		p.Name,
		p.NationalID,
		p.Phone,
		p.Address,
		p.BloodType,
		p.DateOfBirth,
		p.FundingEntityID,
		p.Emergency.Name,
		p.Emergency.Phone,
		p.Emergency.Relation,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating patient: %w", err)
	}

	return nil
}

func (s *Store) DeletePatient(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE patients
		SET deleted_at = NOW()
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting patient: %w", err)
	}

	return nil
}

func (s *Store) CreateFundingEntity(ctx context.Context, fe *patient.FundingEntity) error {
	query := `
		INSERT INTO funding_entities (name, created_at)
		VALUES ($1, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, fe.Name).Scan(&fe.ID, &fe.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating funding entity: %w", err)
	}

	return nil
}

func (s *Store) ListFundingEntities(ctx context.Context) ([]*patient.FundingEntity, error) {
	query := `
		SELECT id, name, created_at
		FROM funding_entities
		ORDER BY name ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing funding entities: %w", err)
	}
	defer rows.Close()

	var entities []*patient.FundingEntity

	for rows.Next() {
		var fe patient.FundingEntity
		if err := rows.Scan(&fe.ID, &fe.Name, &fe.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning funding entity: %w", err)
		}

		entities = append(entities, &fe)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating funding entity rows: %w", err)
	}

	return entities, nil
}
