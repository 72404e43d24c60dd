package lab_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hemodesk/hemodesk/internal/lab"
)

func TestService_Order(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	patientID := uuid.New()
	defID := uuid.New()

	repo := lab.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateTest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, test *lab.Test) error {
			test.ID = uuid.New()
			return nil
		})

	svc := lab.NewService(repo)
	got, err := svc.Order(context.Background(), lab.OrderParams{
		PatientID:    patientID,
		DefinitionID: defID,
	})

	require.NoError(t, err)
	assert.Equal(t, lab.TestPending, got.Status)
	assert.Nil(t, got.Result)
	assert.False(t, got.Date.IsZero())
}

func TestService_UpdateResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	repo := lab.NewMockRepository(ctrl)
	repo.EXPECT().
		SetResult(gomock.Any(), id, "5.2 mmol/L", lab.TestCompleted).
		Return(nil)

	svc := lab.NewService(repo)
	assert.NoError(t, svc.UpdateResult(context.Background(), id, "5.2 mmol/L"))
}

// A completed test can be overwritten; no guard exists at this layer.
func TestService_UpdateResult_Overwrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	repo := lab.NewMockRepository(ctrl)
	repo.EXPECT().
		SetResult(gomock.Any(), id, gomock.Any(), lab.TestCompleted).
		Return(nil).
		Times(2)

	svc := lab.NewService(repo)
	require.NoError(t, svc.UpdateResult(context.Background(), id, "first"))
	require.NoError(t, svc.UpdateResult(context.Background(), id, "second"))
}
