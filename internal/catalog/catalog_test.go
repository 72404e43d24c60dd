package catalog_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hemodesk/hemodesk/internal/catalog"
)

func TestCatalog_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    catalog.CreateParams
		setupMock func(m *catalog.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: catalog.CreateParams{
				Name:           "Hemodialysis",
				Price:          250000,
				Category:       catalog.CategoryDialysis,
				RequiredFields: []string{"machine"},
				Consumables: []catalog.Consumable{
					{ProductID: uuid.New(), Quantity: 1},
				},
			},
			setupMock: func(m *catalog.MockRepository) {
				m.EXPECT().
					CreateService(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, svc *catalog.Service) error {
						svc.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name: "FreeServiceAllowed",
			params: catalog.CreateParams{
				Name:     "Checkup",
				Price:    0,
				Category: catalog.CategoryOther,
			},
			setupMock: func(m *catalog.MockRepository) {
				m.EXPECT().
					CreateService(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, svc *catalog.Service) error {
						svc.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name: "MissingName",
			params: catalog.CreateParams{
				Price:    1000,
				Category: catalog.CategoryLab,
			},
			wantErr: true,
		},
		{
			name: "NegativePrice",
			params: catalog.CreateParams{
				Name:     "Broken",
				Price:    -1,
				Category: catalog.CategoryLab,
			},
			wantErr: true,
		},
		{
			name: "UnknownCategory",
			params: catalog.CreateParams{
				Name:     "Mystery",
				Price:    1000,
				Category: catalog.Category("surgery"),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := catalog.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			cat := catalog.NewCatalog(repo)
			got, err := cat.Create(context.Background(), tt.params)

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
