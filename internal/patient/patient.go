package patient

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("patient not found")

// EmergencyContact is the person reached when the patient cannot be.
type EmergencyContact struct {
	Name     string
	Phone    string
	Relation string
}

// Patient represents a clinic patient record.
type Patient struct {
	ID              uuid.UUID
	Name            string
	NationalID      string
	Phone           string
	Address         string
	BloodType       string
	DateOfBirth     *time.Time
	FundingEntityID *uuid.UUID // nil means self-pay
	FundingEntity   *FundingEntity
	Emergency       EmergencyContact
	CreatedAt       time.Time
	UpdatedAt       *time.Time
	DeletedAt       *time.Time
}

// FundingEntity is a third-party payer (insurance, employer contract)
// a patient may be billed through instead of cash.
type FundingEntity struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}
