package identity

import (
	"context"
	"testing"
	"time"

	domainidentity "github.com/Mutombwa/kimberly-signature-scents/internal/domain/identity"
	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/shared"
	"github.com/Mutombwa/kimberly-signature-scents/internal/infrastructure/auth"
	"github.com/Mutombwa/kimberly-signature-scents/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *domainidentity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) Update(ctx context.Context, user *domainidentity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*domainidentity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainidentity.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*domainidentity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainidentity.User), args.Error(1)
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) FindAll(ctx context.Context) ([]*domainidentity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domainidentity.User), args.Error(1)
}

func (m *mockUserRepository) Stats(ctx context.Context) (*domainidentity.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainidentity.Stats), args.Error(1)
}

func newTestAuthService(repo *mockUserRepository, adminEmail string) *AuthService {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:     "test-secret-at-least-32-characters!!",
		Expiration: time.Hour,
		Issuer:     "test",
	})
	return NewAuthService(repo, jwtService, adminEmail, zap.NewNop())
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user with token", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := newTestAuthService(repo, "owner@example.com")

		repo.On("ExistsByEmail", ctx, "jane@example.com").Return(false, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*identity.User")).Return(nil).Run(func(args mock.Arguments) {
			args.Get(1).(*domainidentity.User).ID = 1
		})

		result, err := svc.Register(ctx, RegisterCommand{
			FullName: "Jane Doe",
			Email:    "Jane@Example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "jane@example.com", result.User.Email)
		assert.Equal(t, "user", result.User.Role)
		repo.AssertExpectations(t)
	})

	t.Run("grants admin role to the configured email", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := newTestAuthService(repo, "owner@example.com")

		repo.On("ExistsByEmail", ctx, "owner@example.com").Return(false, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

		result, err := svc.Register(ctx, RegisterCommand{
			FullName: "Owner",
			Email:    "OWNER@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.Equal(t, "admin", result.User.Role)
	})

	t.Run("admin grant ignores configured email casing", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := newTestAuthService(repo, "Owner@Example.COM")

		repo.On("ExistsByEmail", ctx, "owner@example.com").Return(false, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

		result, err := svc.Register(ctx, RegisterCommand{
			FullName: "Owner",
			Email:    "owner@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.Equal(t, "admin", result.User.Role)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := newTestAuthService(repo, "")

		repo.On("ExistsByEmail", ctx, "jane@example.com").Return(true, nil)

		_, err := svc.Register(ctx, RegisterCommand{
			FullName: "Jane",
			Email:    "jane@example.com",
			Password: "secret123",
		})
		require.Error(t, err)
		assert.Equal(t, "Email already registered", err.Error())
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects duplicate surfaced by the store", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := newTestAuthService(repo, "")

		repo.On("ExistsByEmail", ctx, "jane@example.com").Return(false, nil)
		repo.On("Create", ctx, mock.Anything).Return(shared.ErrAlreadyExists)

		_, err := svc.Register(ctx, RegisterCommand{
			FullName: "Jane",
			Email:    "jane@example.com",
			Password: "secret123",
		})
		require.Error(t, err)
		assert.Equal(t, "Email already registered", err.Error())
	})

	t.Run("propagates domain validation", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := newTestAuthService(repo, "")

		_, err := svc.Register(ctx, RegisterCommand{FullName: "Jane", Email: "bad", Password: "secret123"})
		require.Error(t, err)
		assert.Equal(t, "Valid email is required", err.Error())
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	newStoredUser := func(t *testing.T) *domainidentity.User {
		user, err := domainidentity.NewUser("Jane", "jane@example.com", "secret123")
		require.NoError(t, err)
		user.ID = 1
		return user
	}

	t.Run("returns token on valid credentials", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := newTestAuthService(repo, "")
		user := newStoredUser(t)

		repo.On("FindByEmail", ctx, "jane@example.com").Return(user, nil)
		repo.On("Update", ctx, user).Return(nil)

		result, err := svc.Login(ctx, LoginCommand{Email: "jane@example.com", Password: "secret123"})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.NotNil(t, result.User.LastLogin)
	})

	t.Run("same failure for unknown email and wrong password", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := newTestAuthService(repo, "")
		user := newStoredUser(t)

		repo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, shared.ErrNotFound)
		repo.On("FindByEmail", ctx, "jane@example.com").Return(user, nil)

		_, unknownErr := svc.Login(ctx, LoginCommand{Email: "ghost@example.com", Password: "secret123"})
		_, wrongErr := svc.Login(ctx, LoginCommand{Email: "jane@example.com", Password: "wrong"})

		require.Error(t, unknownErr)
		require.Error(t, wrongErr)
		assert.Equal(t, unknownErr.Error(), wrongErr.Error())
		assert.Equal(t, "Invalid email or password", unknownErr.Error())
	})

	t.Run("deactivated account is rejected with its own message", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := newTestAuthService(repo, "")
		user := newStoredUser(t)
		user.Deactivate()

		repo.On("FindByEmail", ctx, "jane@example.com").Return(user, nil)

		_, err := svc.Login(ctx, LoginCommand{Email: "jane@example.com", Password: "secret123"})
		require.Error(t, err)
		assert.Equal(t, "Account has been deactivated", err.Error())

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "FORBIDDEN", domainErr.Code)
	})

	t.Run("wrong password on a deactivated account stays generic", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := newTestAuthService(repo, "")
		user := newStoredUser(t)
		user.Deactivate()

		repo.On("FindByEmail", ctx, "jane@example.com").Return(user, nil)

		_, err := svc.Login(ctx, LoginCommand{Email: "jane@example.com", Password: "wrong"})
		require.Error(t, err)
		assert.Equal(t, "Invalid email or password", err.Error())
	})

	t.Run("login succeeds even if last-login write fails", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := newTestAuthService(repo, "")
		user := newStoredUser(t)

		repo.On("FindByEmail", ctx, "jane@example.com").Return(user, nil)
		repo.On("Update", ctx, user).Return(shared.ErrInternal)

		_, err := svc.Login(ctx, LoginCommand{Email: "jane@example.com", Password: "secret123"})
		require.NoError(t, err)
	})
}

func TestUpdateProfileService(t *testing.T) {
	ctx := context.Background()
	repo := new(mockUserRepository)
	svc := newTestAuthService(repo, "")

	user, err := domainidentity.NewUser("Jane", "jane@example.com", "secret123")
	require.NoError(t, err)
	user.ID = 1

	repo.On("FindByID", ctx, int64(1)).Return(user, nil)
	repo.On("Update", ctx, user).Return(nil)

	updated, err := svc.UpdateProfile(ctx, 1, UpdateProfileCommand{
		FullName: "Jane Smith",
		Phone:    "+263771234567",
		Bio:      "perfume lover",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", updated.FullName)
	assert.Equal(t, "perfume lover", updated.Bio)
}
