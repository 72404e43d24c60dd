package dialysis_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hemodesk/hemodesk/internal/catalog"
	"github.com/hemodesk/hemodesk/internal/dialysis"
	"github.com/hemodesk/hemodesk/internal/inventory"
)

func TestService_Record(t *testing.T) {
	patientID := uuid.New()
	serviceID := uuid.New()
	storeID := uuid.New()
	dialyzerID := uuid.New()
	bloodlineID := uuid.New()

	type testCase struct {
		name        string
		params      dialysis.RecordParams
		setupMocks  func(repo *dialysis.MockRepository, cat *dialysis.MockServiceCatalog, stock *dialysis.MockStockDeductor)
		wantErr     bool
		errContains string
	}

	tests := []testCase{
		{
			name: "NoService",
			params: dialysis.RecordParams{
				PatientID: patientID,
				StartTime: "08:00",
				Status:    dialysis.StatusWaiting,
			},
			setupMocks: func(repo *dialysis.MockRepository, cat *dialysis.MockServiceCatalog, stock *dialysis.MockStockDeductor) {
				repo.EXPECT().
					CreateSession(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, sess *dialysis.Session) error {
						sess.ID = uuid.New()
						sess.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "ServiceWithConsumables",
			params: dialysis.RecordParams{
				PatientID: patientID,
				ServiceID: &serviceID,
				StoreID:   &storeID,
				StartTime: "08:00",
				Status:    dialysis.StatusActive,
				CustomData: map[string]string{
					"machine": "M3",
				},
			},
			setupMocks: func(repo *dialysis.MockRepository, cat *dialysis.MockServiceCatalog, stock *dialysis.MockStockDeductor) {
				cat.EXPECT().
					Get(gomock.Any(), serviceID).
					Return(&catalog.Service{
						ID:             serviceID,
						Name:           "Hemodialysis",
						Category:       catalog.CategoryDialysis,
						RequiredFields: []string{"machine"},
						Consumables: []catalog.Consumable{
							{ProductID: dialyzerID, Quantity: 1},
							{ProductID: bloodlineID, Quantity: 2},
						},
					}, nil)

				repo.EXPECT().
					CreateSession(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, sess *dialysis.Session) error {
						sess.ID = uuid.New()
						return nil
					})

				stock.EXPECT().
					Deduct(gomock.Any(), dialyzerID, storeID, 1.0, gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _ uuid.UUID, _ float64, note string) (*inventory.StockTransaction, error) {
						if !strings.HasPrefix(note, "consumed by session ") {
							t.Errorf("unexpected deduction note: %q", note)
						}
						return &inventory.StockTransaction{ID: uuid.New()}, nil
					})
				stock.EXPECT().
					Deduct(gomock.Any(), bloodlineID, storeID, 2.0, gomock.Any()).
					Return(&inventory.StockTransaction{ID: uuid.New()}, nil)
			},
		},
		{
			name: "NoStoreSkipsDeduction",
			params: dialysis.RecordParams{
				PatientID: patientID,
				ServiceID: &serviceID,
				StartTime: "08:00",
				Status:    dialysis.StatusWaiting,
			},
			setupMocks: func(repo *dialysis.MockRepository, cat *dialysis.MockServiceCatalog, stock *dialysis.MockStockDeductor) {
				cat.EXPECT().
					Get(gomock.Any(), serviceID).
					Return(&catalog.Service{
						ID:       serviceID,
						Category: catalog.CategoryDialysis,
						Consumables: []catalog.Consumable{
							{ProductID: dialyzerID, Quantity: 1},
						},
					}, nil)

				repo.EXPECT().
					CreateSession(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, sess *dialysis.Session) error {
						sess.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name: "MissingRequiredField",
			params: dialysis.RecordParams{
				PatientID: patientID,
				ServiceID: &serviceID,
				StartTime: "08:00",
				Status:    dialysis.StatusWaiting,
			},
			setupMocks: func(repo *dialysis.MockRepository, cat *dialysis.MockServiceCatalog, stock *dialysis.MockStockDeductor) {
				cat.EXPECT().
					Get(gomock.Any(), serviceID).
					Return(&catalog.Service{
						ID:             serviceID,
						Category:       catalog.CategoryDialysis,
						RequiredFields: []string{"machine"},
					}, nil)
			},
			wantErr:     true,
			errContains: "missing required session field: machine",
		},
		{
			name: "DeductionFailureAfterInsert",
			params: dialysis.RecordParams{
				PatientID: patientID,
				ServiceID: &serviceID,
				StoreID:   &storeID,
				StartTime: "08:00",
				Status:    dialysis.StatusWaiting,
			},
			setupMocks: func(repo *dialysis.MockRepository, cat *dialysis.MockServiceCatalog, stock *dialysis.MockStockDeductor) {
				cat.EXPECT().
					Get(gomock.Any(), serviceID).
					Return(&catalog.Service{
						ID:       serviceID,
						Category: catalog.CategoryDialysis,
						Consumables: []catalog.Consumable{
							{ProductID: dialyzerID, Quantity: 1},
						},
					}, nil)

				repo.EXPECT().
					CreateSession(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, sess *dialysis.Session) error {
						sess.ID = uuid.New()
						return nil
					})

				stock.EXPECT().
					Deduct(gomock.Any(), dialyzerID, storeID, 1.0, gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			wantErr:     true,
			errContains: "recorded",
		},
		{
			name: "UnknownStatus",
			params: dialysis.RecordParams{
				PatientID: patientID,
				StartTime: "08:00",
				Status:    dialysis.Status("paused"),
			},
			wantErr:     true,
			errContains: "unknown session status",
		},
		{
			name: "NoPatient",
			params: dialysis.RecordParams{
				StartTime: "08:00",
				Status:    dialysis.StatusWaiting,
			},
			wantErr:     true,
			errContains: "requires a patient",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := dialysis.NewMockRepository(ctrl)
			cat := dialysis.NewMockServiceCatalog(ctrl)
			stock := dialysis.NewMockStockDeductor(ctrl)

			if tt.setupMocks != nil {
				tt.setupMocks(repo, cat, stock)
			}

			svc := dialysis.NewService(repo, cat, stock)
			got, err := svc.Record(context.Background(), tt.params)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
			assert.False(t, got.Date.IsZero())
		})
	}
}

func TestService_UpdateStatus(t *testing.T) {
	id := uuid.New()

	type testCase struct {
		name    string
		current dialysis.Status
		next    dialysis.Status
		wantErr bool
	}

	tests := []testCase{
		{name: "Forward", current: dialysis.StatusWaiting, next: dialysis.StatusActive},
		{name: "SkipAhead", current: dialysis.StatusWaiting, next: dialysis.StatusFinished},
		{name: "SameStatus", current: dialysis.StatusActive, next: dialysis.StatusActive},
		{name: "Backward", current: dialysis.StatusFinished, next: dialysis.StatusActive, wantErr: true},
		{name: "UnknownTarget", current: dialysis.StatusWaiting, next: dialysis.Status("paused"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := dialysis.NewMockRepository(ctrl)
			repo.EXPECT().
				GetSession(gomock.Any(), id).
				Return(&dialysis.Session{ID: id, Status: tt.current}, nil)

			if !tt.wantErr {
				repo.EXPECT().
					UpdateStatus(gomock.Any(), id, tt.next).
					Return(nil)
			}

			svc := dialysis.NewService(repo, dialysis.NewMockServiceCatalog(ctrl), dialysis.NewMockStockDeductor(ctrl))
			err := svc.UpdateStatus(context.Background(), id, tt.next)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}
