package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hemodesk/hemodesk/internal/user"
)

const testSecret = "test-secret"

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    user.CreateParams
		setupMock func(m *user.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: user.CreateParams{
				Name:        "Nurse One",
				Username:    "nurse1",
				Password:    "secret",
				Permissions: []user.Permission{user.PermPatients, user.PermSessions},
			},
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *user.User) error {
						u.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name: "UnknownPermission",
			params: user.CreateParams{
				Username:    "nurse2",
				Password:    "secret",
				Permissions: []user.Permission{"superuser"},
			},
			wantErr: true,
		},
		{
			name: "MissingUsername",
			params: user.CreateParams{
				Password: "secret",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := user.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := user.NewService(repo, testSecret, time.Hour)
			got, err := svc.Create(context.Background(), tt.params)

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

func TestService_Login(t *testing.T) {
	userID := uuid.New()

	stored := &user.User{
		ID:          userID,
		Username:    "admin",
		Password:    "admin123",
		Permissions: []user.Permission{user.PermAdmin},
	}

	type testCase struct {
		name      string
		username  string
		password  string
		setupMock func(m *user.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:     "Success",
			username: "admin",
			password: "admin123",
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().
					GetUserByUsername(gomock.Any(), "admin").
					Return(stored, nil)
			},
		},
		{
			name:     "WrongPassword",
			username: "admin",
			password: "nope",
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().
					GetUserByUsername(gomock.Any(), "admin").
					Return(stored, nil)
			},
			wantErr: user.ErrInvalidCredentials,
		},
		{
			name:     "UnknownUser",
			username: "ghost",
			password: "whatever",
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().
					GetUserByUsername(gomock.Any(), "ghost").
					Return(nil, user.ErrNotFound)
			},
			wantErr: user.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := user.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := user.NewService(repo, testSecret, time.Hour)
			got, token, err := svc.Login(context.Background(), tt.username, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				assert.Empty(t, token)

				return
			}

			require.NoError(t, err)
			require.NotEmpty(t, token)

			claims, err := svc.VerifyToken(token)
			require.NoError(t, err)
			assert.Equal(t, userID.String(), claims.Subject)
			assert.Equal(t, []user.Permission{user.PermAdmin}, claims.Permissions)
		})
	}
}

func TestService_VerifyToken_WrongSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := user.NewMockRepository(ctrl)
	repo.EXPECT().
		GetUserByUsername(gomock.Any(), "admin").
		Return(&user.User{ID: uuid.New(), Username: "admin", Password: "pw"}, nil)

	issuer := user.NewService(repo, "secret-a", time.Hour)
	_, token, err := issuer.Login(context.Background(), "admin", "pw")
	require.NoError(t, err)

	verifier := user.NewService(nil, "secret-b", time.Hour)
	_, err = verifier.VerifyToken(token)
	assert.Error(t, err)
}

func TestValidatePermissions(t *testing.T) {
	assert.NoError(t, user.ValidatePermissions([]user.Permission{user.PermLab, user.PermFinance}))
	assert.Error(t, user.ValidatePermissions([]user.Permission{user.PermLab, "root"}))
	assert.NoError(t, user.ValidatePermissions(nil))
}
