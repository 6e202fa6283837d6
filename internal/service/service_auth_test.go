package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/review-site/internal/config"
	"github.com/MKhiriev/review-site/internal/logger"
	"github.com/MKhiriev/review-site/internal/mock"
	"github.com/MKhiriev/review-site/internal/store"
	"github.com/MKhiriev/review-site/internal/utils"
	"github.com/MKhiriev/review-site/models"
)

const (
	testSignKey = "test-sign-key"
	aliceID     = "0b6c1c1e-4a8f-4d0a-9f61-5a8d7bfb2a10"
)

func newTestAuthSvc(t *testing.T) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	svc := NewAuthService(repo, config.App{TokenSignKey: testSignKey, PasswordHashCost: bcrypt.MinCost}, logger.Nop())
	return svc, repo
}

func storedUser(t *testing.T, username, password string) models.User {
	t.Helper()
	hash, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return models.User{UserID: aliceID, Username: username, Password: hash}
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_HashesPassword(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "alice", u.Username)
			assert.NotEqual(t, "s3cret", u.Password, "raw password must never reach storage")
			assert.True(t, utils.ComparePassword(u.Password, "s3cret"))
			u.UserID = aliceID
			return u, nil
		},
	)

	identity, err := svc.RegisterUser(ctx, models.User{Username: "alice", Password: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, models.Identity{UserID: aliceID, Username: "alice"}, identity)
}

func TestAuthService_RegisterUser_InvalidInput(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	for _, u := range []models.User{
		{Username: "", Password: "pw"},
		{Username: "alice", Password: ""},
	} {
		_, err := svc.RegisterUser(context.Background(), u)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	}
}

func TestAuthService_RegisterUser_UsernameTaken(t *testing.T) {
	svc, repo := newTestAuthSvc(t)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUsernameTaken)

	_, err := svc.RegisterUser(context.Background(), models.User{Username: "alice", Password: "pw"})

	assert.ErrorIs(t, err, store.ErrUsernameTaken)
	assert.ErrorIs(t, err, store.ErrConflict)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo := newTestAuthSvc(t)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(storedUser(t, "alice", "s3cret"), nil)

	identity, err := svc.Login(context.Background(), models.User{Username: "alice", Password: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, aliceID, identity.UserID)
	assert.Equal(t, "alice", identity.Username)
}

func TestAuthService_Login_SameErrorForUnknownUserAndWrongPassword(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByUsername(ctx, "alice").Return(storedUser(t, "alice", "s3cret"), nil)
	repo.EXPECT().FindUserByUsername(ctx, "mallory").Return(models.User{}, store.ErrUserNotFound)

	_, wrongPassword := svc.Login(ctx, models.User{Username: "alice", Password: "guess"})
	_, unknownUser := svc.Login(ctx, models.User{Username: "mallory", Password: "guess"})

	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	_, err := svc.Login(context.Background(), models.User{Username: "alice"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_StorageFailure(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	dbErr := errors.New("connection refused")

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{}, dbErr)

	_, err := svc.Login(context.Background(), models.User{Username: "alice", Password: "pw"})

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_RegisterLoginToken_RoundTrip(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	var saved models.User
	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			u.UserID = aliceID
			saved = u
			return u, nil
		},
	)
	repo.EXPECT().FindUserByUsername(ctx, "alice").DoAndReturn(
		func(context.Context, string) (models.User, error) { return saved, nil },
	)
	repo.EXPECT().FindUserByID(ctx, aliceID).DoAndReturn(
		func(context.Context, string) (models.User, error) { return saved, nil },
	)

	_, err := svc.RegisterUser(ctx, models.User{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	identity, err := svc.Login(ctx, models.User{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	token, err := svc.CreateToken(ctx, identity)
	require.NoError(t, err)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, aliceID, parsed.UserID)

	resolved, err := svc.Identify(ctx, parsed.UserID)
	require.NoError(t, err)
	assert.Equal(t, "alice", resolved.Username)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	foreign, err := utils.GenerateJWTToken(aliceID, "another-key")
	require.NoError(t, err)

	for _, raw := range []string{"", "garbage", foreign.SignedString} {
		_, err := svc.ParseToken(context.Background(), raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestAuthService_CreateToken_EmptyIdentity(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	_, err := svc.CreateToken(context.Background(), models.Identity{})

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_Identify(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "known user"},
		{name: "deleted user", repoErr: store.ErrUserNotFound, wantErr: ErrUnknownTokenOwner},
		{name: "storage failure", repoErr: store.ErrExecutingQuery, wantErr: store.ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestAuthSvc(t)

			user := models.User{UserID: aliceID, Username: "alice", Password: "hash"}
			if tt.repoErr != nil {
				user = models.User{}
			}
			repo.EXPECT().FindUserByID(gomock.Any(), aliceID).Return(user, tt.repoErr)

			identity, err := svc.Identify(context.Background(), aliceID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.Identity{UserID: aliceID, Username: "alice"}, identity)
		})
	}
}
