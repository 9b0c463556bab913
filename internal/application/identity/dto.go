package identity

import (
	"time"

	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/identity"
)

// RegisterCommand carries the fields of a signup request
type RegisterCommand struct {
	FullName    string
	Email       string
	Password    string
	Phone       string
	DateOfBirth string
	Address     string
	KitChoice   string
}

// LoginCommand carries the fields of a login request
type LoginCommand struct {
	Email    string
	Password string
}

// UpdateProfileCommand carries the mutable profile fields
type UpdateProfileCommand struct {
	FullName     string
	Phone        string
	Bio          string
	ProfileImage string
}

// UserDTO is the full account view returned to the account holder
// and to admins.
type UserDTO struct {
	ID            int64      `json:"id"`
	FullName      string     `json:"full_name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone,omitempty"`
	DateOfBirth   string     `json:"date_of_birth,omitempty"`
	Address       string     `json:"address,omitempty"`
	KitChoice     string     `json:"kit_choice,omitempty"`
	Role          string     `json:"role"`
	ProfileImage  string     `json:"profile_image,omitempty"`
	Bio           string     `json:"bio,omitempty"`
	LastLogin     *time.Time `json:"last_login,omitempty"`
	IsActive      bool       `json:"is_active"`
	EmailVerified bool       `json:"email_verified"`
	CreatedAt     time.Time  `json:"created_at"`
}

// ProfileDTO is the public profile view of another user
type ProfileDTO struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"full_name"`
	ProfileImage string    `json:"profile_image,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// AuthResultDTO bundles a fresh token with the account it identifies
type AuthResultDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// ToUserDTO converts a domain User to its full DTO
func ToUserDTO(u *identity.User) UserDTO {
	return UserDTO{
		ID:            u.ID,
		FullName:      u.FullName,
		Email:         u.Email,
		Phone:         u.Phone,
		DateOfBirth:   u.DateOfBirth,
		Address:       u.Address,
		KitChoice:     u.KitChoice,
		Role:          string(u.Role),
		ProfileImage:  u.ProfileImage,
		Bio:           u.Bio,
		LastLogin:     u.LastLogin,
		IsActive:      u.IsActive,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
	}
}

// ToProfileDTO converts a domain User to its public profile DTO
func ToProfileDTO(u *identity.User) ProfileDTO {
	return ProfileDTO{
		ID:           u.ID,
		FullName:     u.FullName,
		ProfileImage: u.ProfileImage,
		Bio:          u.Bio,
		CreatedAt:    u.CreatedAt,
	}
}
