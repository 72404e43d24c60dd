package catalog

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("service not found")

// Category classifies a billable service.
type Category string

const (
	CategoryDialysis Category = "dialysis"
	CategoryLab      Category = "lab"
	CategoryPharmacy Category = "pharmacy"
	CategoryOther    Category = "other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryDialysis, CategoryLab, CategoryPharmacy, CategoryOther:
		return true
	}

	return false
}

// Consumable is a product quantity deducted from a warehouse each time
// the service is used in a session.
type Consumable struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  float64   `json:"quantity"`
}

// Service is a billable clinic service. RequiredFields lists the extra
// field names the session form must collect when this service is chosen;
// Consumables lists the stock deducted per use.
type Service struct {
	ID             uuid.UUID
	Name           string
	Price          int64 // price in cents
	Category       Category
	RequiredFields []string
	Consumables    []Consumable
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

func validate(name string, price int64, category Category) error {
	if name == "" {
		return errors.New("service name is required")
	}

	if price < 0 {
		return errors.New("service price must not be negative")
	}

	if !category.Valid() {
		return fmt.Errorf("unknown service category: %s", category)
	}

	return nil
}
