package lab

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=lab
type Repository interface {
	CreateDefinition(ctx context.Context, def *TestDefinition) error
	ListDefinitions(ctx context.Context) ([]*TestDefinition, error)
	DeleteDefinition(ctx context.Context, id uuid.UUID) error

	CreateTest(ctx context.Context, t *Test) error
	GetTest(ctx context.Context, id uuid.UUID) (*Test, error)
	ListTests(ctx context.Context, filter ListFilter) ([]*Test, error)
	SetResult(ctx context.Context, id uuid.UUID, result string, status TestStatus) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type DefinitionParams struct {
	Name        string
	Category    string
	SampleType  string
	RangeMale   string
	RangeFemale string
	RangeChild  string
}

func (s *Service) CreateDefinition(ctx context.Context, params DefinitionParams) (*TestDefinition, error) {
	def := &TestDefinition{
		Name:        params.Name,
		Category:    params.Category,
		SampleType:  params.SampleType,
		RangeMale:   params.RangeMale,
		RangeFemale: params.RangeFemale,
		RangeChild:  params.RangeChild,
	}
	if err := s.repo.CreateDefinition(ctx, def); err != nil {
		return nil, err
	}

	return def, nil
}

func (s *Service) ListDefinitions(ctx context.Context) ([]*TestDefinition, error) {
	return s.repo.ListDefinitions(ctx)
}

func (s *Service) DeleteDefinition(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteDefinition(ctx, id)
}

type OrderParams struct {
	PatientID    uuid.UUID
	DefinitionID uuid.UUID
	Date         time.Time // defaults to now when zero
}

type ListFilter struct {
	PatientID *uuid.UUID
	Status    *TestStatus
}

// Order creates a test in pending state with no result.
func (s *Service) Order(ctx context.Context, params OrderParams) (*Test, error) {
	date := params.Date
	if date.IsZero() {
		date = time.Now()
	}

	t := &Test{
		PatientID:    params.PatientID,
		DefinitionID: params.DefinitionID,
		Status:       TestPending,
		Date:         date,
	}
	if err := s.repo.CreateTest(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Test, error) {
	return s.repo.GetTest(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Test, error) {
	return s.repo.ListTests(ctx, filter)
}

// UpdateResult records the result and marks the test completed in a single
// write. Calling it again on a completed test overwrites the result: the
// dashboard hides the action after completion, but this layer does not
// guard it.
func (s *Service) UpdateResult(ctx context.Context, id uuid.UUID, result string) error {
	return s.repo.SetResult(ctx, id, result, TestCompleted)
}
