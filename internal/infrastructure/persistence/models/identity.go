package models

import (
	"time"

	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/identity"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	BaseModel
	FullName      string        `gorm:"type:varchar(255);not null"`
	Email         string        `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash  string        `gorm:"type:varchar(255);not null"`
	Phone         string        `gorm:"type:varchar(50)"`
	DateOfBirth   string        `gorm:"type:varchar(20)"`
	Address       string        `gorm:"type:text"`
	KitChoice     string        `gorm:"type:varchar(100)"`
	Role          identity.Role `gorm:"type:varchar(20);not null;default:'user'"`
	ProfileImage  string        `gorm:"type:text"`
	Bio           string        `gorm:"type:text"`
	LastLogin     *time.Time
	IsActive      bool `gorm:"not null;default:true"`
	EmailVerified bool `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity:    m.BaseModel.ToDomain(),
		FullName:      m.FullName,
		Email:         m.Email,
		PasswordHash:  m.PasswordHash,
		Phone:         m.Phone,
		DateOfBirth:   m.DateOfBirth,
		Address:       m.Address,
		KitChoice:     m.KitChoice,
		Role:          m.Role,
		ProfileImage:  m.ProfileImage,
		Bio:           m.Bio,
		LastLogin:     m.LastLogin,
		IsActive:      m.IsActive,
		EmailVerified: m.EmailVerified,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainBaseEntity(u.BaseEntity)
	m.FullName = u.FullName
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.Phone = u.Phone
	m.DateOfBirth = u.DateOfBirth
	m.Address = u.Address
	m.KitChoice = u.KitChoice
	m.Role = u.Role
	m.ProfileImage = u.ProfileImage
	m.Bio = u.Bio
	m.LastLogin = u.LastLogin
	m.IsActive = u.IsActive
	m.EmailVerified = u.EmailVerified
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
