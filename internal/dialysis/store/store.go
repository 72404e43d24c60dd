package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/hemodesk/hemodesk/internal/dialysis"
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

const selectSessionColumns = `
	id, patient_id, service_id, date, start_time, end_time,
	weight_before, weight_after, blood_pressure, room, status, notes,
	custom_data, created_at, updated_at
`

func scanSession(sc scanner) (*dialysis.Session, error) {
	var sess dialysis.Session

	var statusStr string

	var bloodPressure, room, notes sql.NullString

	var customData []byte

	if err := sc.Scan(
		&sess.ID, &sess.PatientID, &sess.ServiceID, &sess.Date, &sess.StartTime, &sess.EndTime,
		&sess.WeightBefore, &sess.WeightAfter, &bloodPressure, &room, &statusStr, &notes,
		&customData, &sess.CreatedAt, &sess.UpdatedAt,
	); err != nil {
		return nil, err
	}

	sess.Status = dialysis.Status(statusStr)
	sess.BloodPressure = bloodPressure.String
	sess.Room = room.String
	sess.Notes = notes.String

	if len(customData) > 0 {
		if err := json.Unmarshal(customData, &sess.CustomData); err != nil {
			return nil, fmt.Errorf("decoding custom data: %w", err)
		}
	}

	return &sess, nil
}

func (s *Store) CreateSession(ctx context.Context, sess *dialysis.Session) error {
	customData, err := json.Marshal(sess.CustomData)
	if err != nil {
		return fmt.Errorf("encoding custom data: %w", err)
	}

	query := `
		INSERT INTO dialysis_sessions (patient_id, service_id, date, start_time, end_time,
			weight_before, weight_after, blood_pressure, room, status, notes, custom_data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		RETURNING id, created_at
	`

	err = s.db.QueryRowContext(ctx, query,
		sess.PatientID,
		sess.ServiceID,
		sess.Date,
		sess.StartTime,
		sess.EndTime,
		sess.WeightBefore,
		sess.WeightAfter,
		sess.BloodPressure,
		sess.Room,
		sess.Status,
		sess.Notes,
		customData,
	).Scan(&sess.ID, &sess.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}

	return nil
}

func (s *Store) GetSession(ctx context.Context, id uuid.UUID) (*dialysis.Session, error) {
	query := `SELECT ` + selectSessionColumns + ` FROM dialysis_sessions WHERE id = $1`

	sess, err := scanSession(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, dialysis.ErrNotFound
		}

		return nil, fmt.Errorf("getting session: %w", err)
	}

	return sess, nil
}

func (s *Store) ListSessions(ctx context.Context, filter dialysis.ListFilter) ([]*dialysis.Session, error) {
	query := `SELECT ` + selectSessionColumns + ` FROM dialysis_sessions WHERE 1=1`

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
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*dialysis.Session

	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}

		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating session rows: %w", err)
	}

	return sessions, nil
}

func (s *Store) UpdateSession(ctx context.Context, sess *dialysis.Session) error {
	customData, err := json.Marshal(sess.CustomData)
	if err != nil {
		return fmt.Errorf("encoding custom data: %w", err)
	}

	query := `
		UPDATE dialysis_sessions
		SET service_id = $1, date = $2, start_time = $3, end_time = $4,
			weight_before = $5, weight_after = $6, blood_pressure = $7, room = $8,
			status = $9, notes = $10, custom_data = $11, updated_at = NOW()
		WHERE id = $12
	`

	_, err = s.db.ExecContext(ctx, query,
		sess.ServiceID,
		sess.Date,
		sess.StartTime,
		sess.EndTime,
		sess.WeightBefore,
		sess.WeightAfter,
		sess.BloodPressure,
		sess.Room,
		sess.Status,
		sess.Notes,
		customData,
		sess.ID,
	)
	if err != nil {
		return fmt.Errorf("updating session: %w", err)
	}

	return nil
}

func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, status dialysis.Status) error {
	query := `
		UPDATE dialysis_sessions
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	_, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating session status: %w", err)
	}

	return nil
}
