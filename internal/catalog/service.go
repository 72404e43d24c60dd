package catalog

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=catalog
type Repository interface {
	CreateService(ctx context.Context, svc *Service) error
	GetService(ctx context.Context, id uuid.UUID) (*Service, error)
	ListServices(ctx context.Context) ([]*Service, error)
	UpdateService(ctx context.Context, svc *Service) error
	DeleteService(ctx context.Context, id uuid.UUID) error
}

// Catalog manages the billable services offered by the clinic.
// (The Service name belongs to the entity here.)
type Catalog struct {
	repo Repository
}

func NewCatalog(repo Repository) *Catalog {
	return &Catalog{repo: repo}
}

type CreateParams struct {
	Name           string
	Price          int64
	Category       Category
	RequiredFields []string
	Consumables    []Consumable
}

func (c *Catalog) Create(ctx context.Context, params CreateParams) (*Service, error) {
	if err := validate(params.Name, params.Price, params.Category); err != nil {
		return nil, err
	}

	svc := &Service{
		Name:           params.Name,
		Price:          params.Price,
		Category:       params.Category,
		RequiredFields: params.RequiredFields,
		Consumables:    params.Consumables,
	}
	if err := c.repo.CreateService(ctx, svc); err != nil {
		return nil, err
	}

	return svc, nil
}

func (c *Catalog) Get(ctx context.Context, id uuid.UUID) (*Service, error) {
	return c.repo.GetService(ctx, id)
}

func (c *Catalog) List(ctx context.Context) ([]*Service, error) {
	return c.repo.ListServices(ctx)
}

func (c *Catalog) Update(ctx context.Context, svc *Service) error {
	if err := validate(svc.Name, svc.Price, svc.Category); err != nil {
		return err
	}

	return c.repo.UpdateService(ctx, svc)
}

func (c *Catalog) Delete(ctx context.Context, id uuid.UUID) error {
	return c.repo.DeleteService(ctx, id)
}
