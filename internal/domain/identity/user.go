package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Role is the coarse permission tag embedded in issued tokens
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Password cost for bcrypt
const bcryptCost = 10

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// User represents an account holder. Accounts are never hard-deleted;
// deactivation flips IsActive instead.
type User struct {
	shared.BaseEntity
	FullName      string
	Email         string
	PasswordHash  string
	Phone         string
	DateOfBirth   string
	Address       string
	KitChoice     string
	Role          Role
	ProfileImage  string
	Bio           string
	LastLogin     *time.Time
	IsActive      bool
	EmailVerified bool
}

// NewUser creates a new user with a hashed password. The email is
// normalized to lowercase before the caller checks uniqueness.
func NewUser(fullName, email, password string) (*User, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Full name is required")
	}

	email, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         RoleUser,
		IsActive:     true,
	}, nil
}

// NormalizeEmail lowercases and validates an email address
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", shared.NewDomainError("VALIDATION_ERROR", "Valid email is required")
	}
	if len(email) > 255 || !emailRegex.MatchString(email) {
		return "", shared.NewDomainError("VALIDATION_ERROR", "Valid email is required")
	}
	return email, nil
}

// VerifyPassword reports whether the given plaintext matches the stored hash
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// GrantAdmin promotes the user to the admin role
func (u *User) GrantAdmin() {
	u.Role = RoleAdmin
	u.Touch()
}

// IsAdmin reports whether the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// RecordLogin updates the last-login timestamp
func (u *User) RecordLogin() {
	now := time.Now()
	u.LastLogin = &now
	u.Touch()
}

// UpdateProfile replaces the mutable profile fields
func (u *User) UpdateProfile(fullName, phone, bio, profileImage string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Full name is required")
	}
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Phone is required")
	}

	u.FullName = fullName
	u.Phone = phone
	u.Bio = strings.TrimSpace(bio)
	u.ProfileImage = profileImage
	u.Touch()

	return nil
}

// Deactivate disables the account without deleting it
func (u *User) Deactivate() {
	u.IsActive = false
	u.Touch()
}

func validatePassword(password string) error {
	if len(password) < 6 {
		return shared.NewDomainError("VALIDATION_ERROR", "Password must be at least 6 characters")
	}
	if len(password) > 128 {
		return shared.NewDomainError("VALIDATION_ERROR", "Password cannot exceed 128 characters")
	}
	return nil
}
