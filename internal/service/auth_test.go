package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"hackathon-backend/internal/domain"
	"hackathon-backend/internal/security"
	"hackathon-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testTokenManager() security.TokenManager {
	return security.NewTokenManager("test-secret-test-secret-test-secret", time.Hour, 24*time.Hour)
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, testTokenManager())

		userRepo.On("GetByEmail", ctx, "ada@example.com").Return(nil, sql.ErrNoRows)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.User).ID = 1
			}).Return(nil)

		user, access, refresh, err := svc.Signup(ctx, "Ada", "Ada@Example.com ", "hunter2hunter2")
		assert.NoError(t, err)
		assert.Equal(t, "ada@example.com", user.Email)
		assert.Equal(t, domain.UserRoleHacker, user.Role)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
	})

	t.Run("ShortPassword", func(t *testing.T) {
		svc := service.NewAuthService(new(MockUserRepo), testTokenManager())

		_, _, _, err := svc.Signup(ctx, "Ada", "ada@example.com", "short")
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, testTokenManager())

		userRepo.On("GetByEmail", ctx, "ada@example.com").Return(&domain.User{ID: 1}, nil)

		_, _, _, err := svc.Signup(ctx, "Ada", "ada@example.com", "hunter2hunter2")
		assert.Equal(t, domain.KindConflict, domain.KindOf(err))
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	stored := &domain.User{ID: 1, Email: "ada@example.com", PasswordHash: string(hash), Role: domain.UserRoleHacker}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, testTokenManager())

		userRepo.On("GetByEmail", ctx, "ada@example.com").Return(stored, nil)

		user, access, _, err := svc.Login(ctx, "ada@example.com", "hunter2hunter2")
		assert.NoError(t, err)
		assert.Equal(t, int32(1), user.ID)
		assert.NotEmpty(t, access)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, testTokenManager())

		userRepo.On("GetByEmail", ctx, "ada@example.com").Return(stored, nil)

		_, _, _, err := svc.Login(ctx, "ada@example.com", "wrong-password")
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, testTokenManager())

		userRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, sql.ErrNoRows)

		_, _, _, err := svc.Login(ctx, "ghost@example.com", "hunter2hunter2")
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	tokens := testTokenManager()

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)

		refresh, err := tokens.GenerateRefreshToken(1, "ada@example.com")
		assert.NoError(t, err)
		userRepo.On("GetByID", ctx, int32(1)).Return(&domain.User{ID: 1, Email: "ada@example.com"}, nil)

		access, newRefresh, err := svc.RefreshToken(ctx, refresh)
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, newRefresh)
	})

	t.Run("AccessTokenRejected", func(t *testing.T) {
		svc := service.NewAuthService(new(MockUserRepo), tokens)

		access, err := tokens.GenerateAccessToken(1, "ada@example.com", domain.UserRoleHacker)
		assert.NoError(t, err)

		_, _, err = svc.RefreshToken(ctx, access)
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	})

	t.Run("GarbageToken", func(t *testing.T) {
		svc := service.NewAuthService(new(MockUserRepo), tokens)

		_, _, err := svc.RefreshToken(ctx, "not-a-token")
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	})
}
