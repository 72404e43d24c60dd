package patient_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hemodesk/hemodesk/internal/patient"
)

func TestService_Create(t *testing.T) {
	dob := time.Date(1960, 5, 12, 0, 0, 0, 0, time.UTC)
	feID := uuid.New()

	type testCase struct {
		name      string
		params    patient.CreateParams
		setupMock func(m *patient.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: patient.CreateParams{
				Name:            "Ahmed Hassan",
				NationalID:      "29005121234567",
				Phone:           "+201001234567",
				BloodType:       "A+",
				DateOfBirth:     &dob,
				FundingEntityID: &feID,
				Emergency: patient.EmergencyContact{
					Name:     "Mona Hassan",
					Phone:    "+201007654321",
					Relation: "spouse",
				},
			},
			setupMock: func(m *patient.MockRepository) {
				m.EXPECT().
					CreatePatient(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *patient.Patient) error {
						p.ID = uuid.New()
						p.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "RepoError",
			params: patient.CreateParams{
				Name: "Broken",
			},
			setupMock: func(m *patient.MockRepository) {
				m.EXPECT().
					CreatePatient(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := patient.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := patient.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, tt.params.Name, got.Name)
		})
	}
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := patient.NewMockRepository(ctrl)
	repo.EXPECT().
		ListPatients(gomock.Any()).
		Return([]*patient.Patient{
			{ID: uuid.New()},
			{ID: uuid.New()},
		}, nil)

	svc := patient.NewService(repo)
	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestService_CreateFundingEntity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := patient.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateFundingEntity(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fe *patient.FundingEntity) error {
			fe.ID = uuid.New()
			return nil
		})

	svc := patient.NewService(repo)
	got, err := svc.CreateFundingEntity(context.Background(), "Health Insurance Org")

	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "Health Insurance Org", got.Name)
}
