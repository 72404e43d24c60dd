package dialysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hemodesk/hemodesk/internal/catalog"
	"github.com/hemodesk/hemodesk/internal/inventory"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=dialysis
type Repository interface {
	CreateSession(ctx context.Context, sess *Session) error
	GetSession(ctx context.Context, id uuid.UUID) (*Session, error)
	ListSessions(ctx context.Context, filter ListFilter) ([]*Session, error)
	UpdateSession(ctx context.Context, sess *Session) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
}

// ServiceCatalog resolves the billable service chosen for a session.
type ServiceCatalog interface {
	Get(ctx context.Context, id uuid.UUID) (*catalog.Service, error)
}

// StockDeductor appends consumable deductions to the stock ledger.
type StockDeductor interface {
	Deduct(ctx context.Context, productID, storeID uuid.UUID, quantity float64, note string) (*inventory.StockTransaction, error)
}

type Service struct {
	repo    Repository
	catalog ServiceCatalog
	stock   StockDeductor
}

func NewService(repo Repository, cat ServiceCatalog, stock StockDeductor) *Service {
	return &Service{repo: repo, catalog: cat, stock: stock}
}

type RecordParams struct {
	PatientID     uuid.UUID
	ServiceID     *uuid.UUID
	StoreID       *uuid.UUID // warehouse consumables are deducted from
	Date          time.Time
	StartTime     string
	EndTime       *string
	WeightBefore  *float64
	WeightAfter   *float64
	BloodPressure string
	Room          string
	Status        Status
	Notes         string
	CustomData    map[string]string
}

type ListFilter struct {
	PatientID *uuid.UUID
	Status    *Status
}

// Record creates the session and then deducts the chosen service's
// consumables from the given store, one ledger entry per consumable line.
//
// The session insert is atomic on its own and fails fast. The deductions
// are separate round trips, not transactional with the insert or with each
// other: if one fails, the session stays recorded with only a prefix of
// the consumables deducted, and the error is surfaced to the caller.
// When no store is supplied the deduction step is skipped silently.
func (s *Service) Record(ctx context.Context, params RecordParams) (*Session, error) {
	if params.PatientID == uuid.Nil {
		return nil, errors.New("session requires a patient")
	}

	if !params.Status.Valid() {
		return nil, fmt.Errorf("unknown session status: %s", params.Status)
	}

	var svc *catalog.Service

	if params.ServiceID != nil {
		var err error

		svc, err = s.catalog.Get(ctx, *params.ServiceID)
		if err != nil {
			return nil, fmt.Errorf("resolving service: %w", err)
		}

		if err := validateCustomData(svc.RequiredFields, params.CustomData); err != nil {
			return nil, err
		}
	}

	date := params.Date
	if date.IsZero() {
		date = time.Now()
	}

	sess := &Session{
		PatientID:     params.PatientID,
		ServiceID:     params.ServiceID,
		Date:          date,
		StartTime:     params.StartTime,
		EndTime:       params.EndTime,
		WeightBefore:  params.WeightBefore,
		WeightAfter:   params.WeightAfter,
		BloodPressure: params.BloodPressure,
		Room:          params.Room,
		Status:        params.Status,
		Notes:         params.Notes,
		CustomData:    params.CustomData,
	}
	if err := s.repo.CreateSession(ctx, sess); err != nil {
		return nil, err
	}

	if svc == nil || len(svc.Consumables) == 0 || params.StoreID == nil {
		return sess, nil
	}

	for _, c := range svc.Consumables {
		note := fmt.Sprintf("consumed by session %s", sess.ID)

		if _, err := s.stock.Deduct(ctx, c.ProductID, *params.StoreID, c.Quantity, note); err != nil {
			return nil, fmt.Errorf("session %s recorded, deducting consumable %s failed: %w", sess.ID, c.ProductID, err)
		}
	}

	return sess, nil
}

// validateCustomData checks the collected custom fields against the
// service's declared required field names.
func validateCustomData(required []string, data map[string]string) error {
	for _, field := range required {
		if _, ok := data[field]; !ok {
			return fmt.Errorf("missing required session field: %s", field)
		}
	}

	return nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	return s.repo.GetSession(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Session, error) {
	return s.repo.ListSessions(ctx, filter)
}

func (s *Service) Update(ctx context.Context, sess *Session) error {
	return s.repo.UpdateSession(ctx, sess)
}

// UpdateStatus moves the session forward through its lifecycle.
// Backward transitions are rejected.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	sess, err := s.repo.GetSession(ctx, id)
	if err != nil {
		return err
	}

	if !sess.Status.CanTransitionTo(status) {
		return fmt.Errorf("cannot move session from %s to %s", sess.Status, status)
	}

	return s.repo.UpdateStatus(ctx, id, status)
}
