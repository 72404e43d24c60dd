package patient

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=patient
type Repository interface {
	CreatePatient(ctx context.Context, p *Patient) error
	GetPatient(ctx context.Context, id uuid.UUID) (*Patient, error)
	ListPatients(ctx context.Context) ([]*Patient, error)
	UpdatePatient(ctx context.Context, p *Patient) error
	DeletePatient(ctx context.Context, id uuid.UUID) error

	CreateFundingEntity(ctx context.Context, fe *FundingEntity) error
	ListFundingEntities(ctx context.Context) ([]*FundingEntity, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name            string
	NationalID      string
	Phone           string
	Address         string
	BloodType       string
	DateOfBirth     *time.Time
	FundingEntityID *uuid.UUID
	Emergency       EmergencyContact
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Patient, error) {
	p := &Patient{
		Name:            params.Name,
		NationalID:      params.NationalID,
		Phone:           params.Phone,
		Address:         params.Address,
		BloodType:       params.BloodType,
		DateOfBirth:     params.DateOfBirth,
		FundingEntityID: params.FundingEntityID,
		Emergency:       params.Emergency,
	}
	if err := s.repo.CreatePatient(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.repo.GetPatient(ctx, id)
}

// List returns all patients, newest intake first.
func (s *Service) List(ctx context.Context) ([]*Patient, error) {
	return s.repo.ListPatients(ctx)
}

func (s *Service) Update(ctx context.Context, p *Patient) error {
	return s.repo.UpdatePatient(ctx, p)
}

// Delete archives the patient record. Patients are never hard-deleted.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeletePatient(ctx, id)
}

func (s *Service) CreateFundingEntity(ctx context.Context, name string) (*FundingEntity, error) {
	fe := &FundingEntity{Name: name}
	if err := s.repo.CreateFundingEntity(ctx, fe); err != nil {
		return nil, err
	}

	return fe, nil
}

func (s *Service) ListFundingEntities(ctx context.Context) ([]*FundingEntity, error) {
	return s.repo.ListFundingEntities(ctx)
}
