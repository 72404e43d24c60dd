package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/hemodesk/hemodesk/internal/catalog"
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

const selectServiceColumns = `
	id, name, price, category, required_fields, consumables, created_at, updated_at
`

// scanService reads a service row, decoding the JSONB config columns.
func scanService(s scanner) (*catalog.Service, error) {
	var svc catalog.Service

	var categoryStr string

	var requiredFields, consumables []byte

	if err := s.Scan(
		&svc.ID, &svc.Name, &svc.Price, &categoryStr,
		&requiredFields, &consumables,
		&svc.CreatedAt, &svc.UpdatedAt,
	); err != nil {
		return nil, err
	}

	svc.Category = catalog.Category(categoryStr)

	if len(requiredFields) > 0 {
		if err := json.Unmarshal(requiredFields, &svc.RequiredFields); err != nil {
			return nil, fmt.Errorf("decoding required fields: %w", err)
		}
	}

	if len(consumables) > 0 {
		if err := json.Unmarshal(consumables, &svc.Consumables); err != nil {
			return nil, fmt.Errorf("decoding consumables: %w", err)
		}
	}

	return &svc, nil
}

func encodeConfig(svc *catalog.Service) ([]byte, []byte, error) {
	requiredFields, err := json.Marshal(svc.RequiredFields)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding required fields: %w", err)
	}

	consumables, err := json.Marshal(svc.Consumables)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding consumables: %w", err)
	}

	return requiredFields, consumables, nil
}

func (s *Store) CreateService(ctx context.Context, svc *catalog.Service) error {
	requiredFields, consumables, err := encodeConfig(svc)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO services (name, price, category, required_fields, consumables, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err = s.db.QueryRowContext(ctx, query,
		svc.Name,
		svc.Price,
		svc.Category,
		requiredFields,
		consumables,
	).Scan(&svc.ID, &svc.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating service: %w", err)
	}

	return nil
}

func (s *Store) GetService(ctx context.Context, id uuid.UUID) (*catalog.Service, error) {
	query := `SELECT ` + selectServiceColumns + ` FROM services WHERE id = $1`

	svc, err := scanService(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, catalog.ErrNotFound
		}

		return nil, fmt.Errorf("getting service: %w", err)
	}

	return svc, nil
}

func (s *Store) ListServices(ctx context.Context) ([]*catalog.Service, error) {
	query := `SELECT ` + selectServiceColumns + ` FROM services ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing services: %w", err)
	}
	defer rows.Close()

	var services []*catalog.Service

	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning service: %w", err)
		}

		services = append(services, svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating service rows: %w", err)
	}

	return services, nil
}

func (s *Store) UpdateService(ctx context.Context, svc *catalog.Service) error {
	requiredFields, consumables, err := encodeConfig(svc)
	if err != nil {
		return err
	}

	query := `
		UPDATE services
		SET name = $1, price = $2, category = $3, required_fields = $4, consumables = $5, updated_at = NOW()
		WHERE id = $6
	`

	_, err = s.db.ExecContext(ctx, query,
		svc.Name,
		svc.Price,
		svc.Category,
		requiredFields,
		consumables,
		svc.ID,
	)
	if err != nil {
		return fmt.Errorf("updating service: %w", err)
	}

	return nil
}

func (s *Store) DeleteService(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM services WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting service: %w", err)
	}

	return nil
}
