package identity

import (
	"context"
	"errors"

	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/identity"
	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/shared"
	"github.com/Mutombwa/kimberly-signature-scents/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// ErrInvalidCredentials is the single failure returned for a bad email
// or password so responses never reveal whether an email is registered.
var ErrInvalidCredentials = shared.NewDomainError("UNAUTHORIZED", "Invalid email or password")

// ErrAccountDeactivated is returned when the password is correct but the
// account has been switched off by an admin.
var ErrAccountDeactivated = shared.NewDomainError("FORBIDDEN", "Account has been deactivated")

// AuthService handles account signup, login and profile management
type AuthService struct {
	users      identity.UserRepository
	jwt        *auth.JWTService
	adminEmail string
	logger     *zap.Logger
}

// NewAuthService creates a new auth service. Accounts registered with
// adminEmail are granted the admin role at signup.
func NewAuthService(users identity.UserRepository, jwt *auth.JWTService, adminEmail string, logger *zap.Logger) *AuthService {
	// Stored emails are normalized, so the configured one must be too
	// or a mixed-case setting would never match.
	if normalized, err := identity.NormalizeEmail(adminEmail); err == nil {
		adminEmail = normalized
	}
	return &AuthService{
		users:      users,
		jwt:        jwt,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

// Register creates a new account and returns a fresh token for it
func (s *AuthService) Register(ctx context.Context, cmd RegisterCommand) (*AuthResultDTO, error) {
	user, err := identity.NewUser(cmd.FullName, cmd.Email, cmd.Password)
	if err != nil {
		return nil, err
	}

	exists, err := s.users.ExistsByEmail(ctx, user.Email)
	if err != nil {
		s.logger.Error("Failed to check email existence", zap.Error(err))
		return nil, shared.ErrInternal
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Email already registered")
	}

	user.Phone = cmd.Phone
	user.DateOfBirth = cmd.DateOfBirth
	user.Address = cmd.Address
	user.KitChoice = cmd.KitChoice

	if s.adminEmail != "" && user.Email == s.adminEmail {
		user.GrantAdmin()
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Email already registered")
		}
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, shared.ErrInternal
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		s.logger.Error("Failed to generate token", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, shared.ErrInternal
	}

	s.logger.Info("User registered", zap.Int64("user_id", user.ID), zap.String("role", string(user.Role)))
	return &AuthResultDTO{Token: token, User: ToUserDTO(user)}, nil
}

// Login verifies credentials and returns a fresh token
func (s *AuthService) Login(ctx context.Context, cmd LoginCommand) (*AuthResultDTO, error) {
	user, err := s.users.FindByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Failed to find user by email", zap.Error(err))
		return nil, shared.ErrInternal
	}

	if !user.VerifyPassword(cmd.Password) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountDeactivated
	}

	user.RecordLogin()
	if err := s.users.Update(ctx, user); err != nil {
		s.logger.Warn("Failed to record login time", zap.Error(err), zap.Int64("user_id", user.ID))
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		s.logger.Error("Failed to generate token", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, shared.ErrInternal
	}

	s.logger.Info("User logged in", zap.Int64("user_id", user.ID))
	return &AuthResultDTO{Token: token, User: ToUserDTO(user)}, nil
}

// CurrentUser returns the full account view for the token holder
func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (*UserDTO, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "User not found")
		}
		s.logger.Error("Failed to find user", zap.Error(err), zap.Int64("user_id", userID))
		return nil, shared.ErrInternal
	}
	dto := ToUserDTO(user)
	return &dto, nil
}

// Profile returns the public profile of any user
func (s *AuthService) Profile(ctx context.Context, userID int64) (*ProfileDTO, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "User not found")
		}
		s.logger.Error("Failed to find user", zap.Error(err), zap.Int64("user_id", userID))
		return nil, shared.ErrInternal
	}
	dto := ToProfileDTO(user)
	return &dto, nil
}

// UpdateProfile applies the mutable profile fields for the token holder
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, cmd UpdateProfileCommand) (*UserDTO, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "User not found")
		}
		s.logger.Error("Failed to find user", zap.Error(err), zap.Int64("user_id", userID))
		return nil, shared.ErrInternal
	}

	if err := user.UpdateProfile(cmd.FullName, cmd.Phone, cmd.Bio, cmd.ProfileImage); err != nil {
		return nil, err
	}

	if err := s.users.Update(ctx, user); err != nil {
		s.logger.Error("Failed to update profile", zap.Error(err), zap.Int64("user_id", userID))
		return nil, shared.ErrInternal
	}

	dto := ToUserDTO(user)
	return &dto, nil
}

// ListUsers returns all accounts, for the admin console
func (s *AuthService) ListUsers(ctx context.Context) ([]UserDTO, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list users", zap.Error(err))
		return nil, shared.ErrInternal
	}
	dtos := make([]UserDTO, len(users))
	for i, u := range users {
		dtos[i] = ToUserDTO(u)
	}
	return dtos, nil
}

// Stats returns the public aggregate counters
func (s *AuthService) Stats(ctx context.Context) (*identity.Stats, error) {
	stats, err := s.users.Stats(ctx)
	if err != nil {
		s.logger.Error("Failed to load stats", zap.Error(err))
		return nil, shared.ErrInternal
	}
	return stats, nil
}
