package patient

import (
	"time"

	"github.com/google/uuid"

	"github.com/hemodesk/hemodesk/internal/patient"
)

type patientResponse struct {
	ID              uuid.UUID              `json:"id"`
	Name            string                 `json:"name"`
	NationalID      string                 `json:"national_id"`
	Phone           string                 `json:"phone"`
	Address         string                 `json:"address"`
	BloodType       string                 `json:"blood_type"`
	DateOfBirth     *time.Time             `json:"date_of_birth,omitempty"`
	FundingEntityID *uuid.UUID             `json:"funding_entity_id,omitempty"`
	FundingEntity   *fundingEntityResponse `json:"funding_entity,omitempty"`
	Emergency       emergencyContactDTO    `json:"emergency_contact"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       *time.Time             `json:"updated_at,omitempty"`
}

type fundingEntityResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func toResponse(p *patient.Patient) patientResponse {
	resp := patientResponse{
		ID:              p.ID,
		Name:            p.Name,
		NationalID:      p.NationalID,
		Phone:           p.Phone,
		Address:         p.Address,
		BloodType:       p.BloodType,
		DateOfBirth:     p.DateOfBirth,
		FundingEntityID: p.FundingEntityID,
		Emergency: emergencyContactDTO{
			Name:     p.Emergency.Name,
			Phone:    p.Emergency.Phone,
			Relation: p.Emergency.Relation,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}

	if p.FundingEntity != nil {
		fe := toFundingEntityResponse(p.FundingEntity)
		resp.FundingEntity = &fe
	}

	return resp
}

func toResponseList(patients []*patient.Patient) []patientResponse {
	resp := make([]patientResponse, 0, len(patients))
	for _, p := range patients {
		resp = append(resp, toResponse(p))
	}

	return resp
}

func toFundingEntityResponse(fe *patient.FundingEntity) fundingEntityResponse {
	return fundingEntityResponse{
		ID:        fe.ID,
		Name:      fe.Name,
		CreatedAt: fe.CreatedAt,
	}
}
