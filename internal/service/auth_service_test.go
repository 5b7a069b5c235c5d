package service

import (
	"context"
	"fmt"
	"testing"

	"drone-response-be/internal/config"
	"drone-response-be/internal/dto"
	"drone-response-be/internal/repository/specification"
	"drone-response-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var authSchema = []string{
	`CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		username TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		is_first_time NUMERIC DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	)`,
	`CREATE TABLE user_refresh_tokens (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		token_hash TEXT NOT NULL,
		expires_at DATETIME NOT NULL,
		revoked NUMERIC DEFAULT 0,
		ip_address TEXT,
		user_agent TEXT,
		created_at DATETIME
	)`,
}

func newAuthTestService(t *testing.T) (IAuthService, unitofwork.RepositoryFactory) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	for _, ddl := range authSchema {
		require.NoError(t, db.Exec(ddl).Error)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	return NewAuthService(uowFactory, config.JWTConfig{
		Secret:          "test-secret",
		AccessTTLHours:  1,
		RefreshTTLHours: 24,
	}), uowFactory
}

func registerTestUser(t *testing.T, svc IAuthService) *dto.AuthResponse {
	t.Helper()
	res, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "pilot@example.com",
		Username: "pilot",
		Password: "correct horse",
	})
	require.NoError(t, err)
	return res
}

func TestRegisterIssuesTokensAndOnboarding(t *testing.T) {
	svc, uowFactory := newAuthTestService(t)

	res := registerTestUser(t, svc)
	assert.Equal(t, "pilot@example.com", res.User.Email)
	assert.True(t, res.User.IsFirstTime)
	assert.Equal(t, "onboarding", res.NextStep)
	assert.NotEmpty(t, res.Tokens.Access)
	assert.NotEmpty(t, res.Tokens.Refresh)

	// Access token carries the user id and is signed with the secret.
	token, err := jwt.Parse(res.Tokens.Access, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, res.User.Id.String(), claims["user_id"])

	// The refresh token itself is never stored, only its digest.
	uow := uowFactory.NewUnitOfWork(context.Background())
	stored, err := uow.UserRepository().FindRefreshToken(context.Background(),
		specification.ByUserID{UserID: res.User.Id},
	)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, res.Tokens.Refresh, stored.TokenHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthTestService(t)
	registerTestUser(t, svc)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "pilot@example.com",
		Username: "someone else",
		Password: "another pass",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginFlipsFirstTimeFlag(t *testing.T) {
	svc, _ := newAuthTestService(t)
	registerTestUser(t, svc)
	ctx := context.Background()

	first, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "pilot@example.com",
		Password: "correct horse",
	}, "203.0.113.7", "test-agent")
	require.NoError(t, err)
	assert.True(t, first.User.IsFirstTime)
	assert.Equal(t, "onboarding", first.NextStep)

	second, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "pilot@example.com",
		Password: "correct horse",
	}, "203.0.113.7", "test-agent")
	require.NoError(t, err)
	assert.False(t, second.User.IsFirstTime)
	assert.Equal(t, "dashboard", second.NextStep)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthTestService(t)
	registerTestUser(t, svc)
	ctx := context.Background()

	_, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "pilot@example.com",
		Password: "wrong horse",
	}, "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct horse",
	}, "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	svc, _ := newAuthTestService(t)
	res := registerTestUser(t, svc)
	ctx := context.Background()

	pair, err := svc.Refresh(ctx, res.Tokens.Refresh, "203.0.113.7", "test-agent")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.Access)
	assert.NotEqual(t, res.Tokens.Refresh, pair.Refresh)

	// The presented token was revoked, a replay must fail.
	_, err = svc.Refresh(ctx, res.Tokens.Refresh, "203.0.113.7", "test-agent")
	assert.ErrorIs(t, err, ErrInvalidRefresh)

	// The rotated token stays usable.
	_, err = svc.Refresh(ctx, pair.Refresh, "203.0.113.7", "test-agent")
	assert.NoError(t, err)
}

func TestRefreshRejectsGarbageToken(t *testing.T) {
	svc, _ := newAuthTestService(t)

	_, err := svc.Refresh(context.Background(), "not-a-token", "", "")
	assert.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	svc, _ := newAuthTestService(t)
	res := registerTestUser(t, svc)
	ctx := context.Background()

	require.NoError(t, svc.Logout(ctx, res.Tokens.Refresh))

	_, err := svc.Refresh(ctx, res.Tokens.Refresh, "", "")
	assert.ErrorIs(t, err, ErrInvalidRefresh)
}
