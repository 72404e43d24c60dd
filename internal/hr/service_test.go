package hr_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hemodesk/hemodesk/internal/hr"
)

func TestService_CreateEmployee(t *testing.T) {
	type testCase struct {
		name      string
		params    hr.EmployeeParams
		setupMock func(m *hr.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: hr.EmployeeParams{
				Code:       "E-001",
				Name:       "Nurse One",
				ShiftPrice: 15000,
				Type:       hr.EmployeePermanent,
			},
			setupMock: func(m *hr.MockRepository) {
				m.EXPECT().
					CreateEmployee(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *hr.Employee) error {
						e.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name: "MissingCode",
			params: hr.EmployeeParams{
				Name: "No Code",
				Type: hr.EmployeePermanent,
			},
			wantErr: true,
		},
		{
			name: "UnknownType",
			params: hr.EmployeeParams{
				Code: "E-002",
				Type: hr.EmployeeType("contractor"),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := hr.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := hr.NewService(repo)
			got, err := svc.CreateEmployee(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestService_ImportShifts(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	emp1 := &hr.Employee{ID: uuid.New(), Code: "E-001"}
	emp2 := &hr.Employee{ID: uuid.New(), Code: "E-002"}

	rows := []hr.ShiftImportRow{
		{EmployeeCode: "E-001", Date: date, Count: 1},
		{EmployeeCode: "E-002", Date: date, Count: 0.5},
	}

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := hr.NewMockRepository(ctrl)
		repo.EXPECT().GetEmployeeByCode(gomock.Any(), "E-001").Return(emp1, nil)
		repo.EXPECT().
			CreateShiftRecord(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *hr.ShiftRecord) error {
				assert.Equal(t, emp1.ID, r.EmployeeID)
				return nil
			})
		repo.EXPECT().GetEmployeeByCode(gomock.Any(), "E-002").Return(emp2, nil)
		repo.EXPECT().
			CreateShiftRecord(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *hr.ShiftRecord) error {
				assert.Equal(t, emp2.ID, r.EmployeeID)
				assert.Equal(t, 0.5, r.Count)
				return nil
			})

		svc := hr.NewService(repo)
		imported, err := svc.ImportShifts(context.Background(), rows)

		require.NoError(t, err)
		assert.Equal(t, 2, imported)
	})

	t.Run("StopsOnUnknownCode", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := hr.NewMockRepository(ctrl)
		repo.EXPECT().GetEmployeeByCode(gomock.Any(), "E-001").Return(emp1, nil)
		repo.EXPECT().CreateShiftRecord(gomock.Any(), gomock.Any()).Return(nil)
		repo.EXPECT().GetEmployeeByCode(gomock.Any(), "E-002").Return(nil, hr.ErrEmployeeNotFound)

		svc := hr.NewService(repo)
		imported, err := svc.ImportShifts(context.Background(), rows)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "row 2")
		assert.Equal(t, 1, imported)
	})
}
