package dto

import "github.com/shopspring/decimal"

// RegisterRequest is the signup payload
type RegisterRequest struct {
	FullName    string `json:"full_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6,max=128"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"date_of_birth"`
	Address     string `json:"address"`
	KitChoice   string `json:"kit_choice"`
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest is the profile edit payload
type UpdateProfileRequest struct {
	FullName     string `json:"full_name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profile_image"`
}

// SubmitRegistrationRequest is the public intake form payload
type SubmitRegistrationRequest struct {
	FullName    string `json:"full_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	DateOfBirth string `json:"date_of_birth" binding:"required"`
	Address     string `json:"address" binding:"required"`
	KitChoice   string `json:"kit_choice" binding:"required"`
}

// UpdateRegistrationStatusRequest is the admin status change payload
type UpdateRegistrationStatusRequest struct {
	Status           string `json:"status" binding:"required"`
	PaymentConfirmed bool   `json:"payment_confirmed"`
	Notes            string `json:"notes"`
}

// CreatePostRequest is the new post payload
type CreatePostRequest struct {
	Title    string `json:"title" binding:"required,max=200"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"required"`
}

// UpdatePostRequest is the post edit payload
type UpdatePostRequest struct {
	Title    string `json:"title" binding:"required,max=200"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"required"`
}

// CreateCommentRequest is the new comment payload
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// AnnouncementRequest is the announcement create/update payload
type AnnouncementRequest struct {
	Title    string `json:"title" binding:"required"`
	Category string `json:"category" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Image    string `json:"image"`
	IsPinned bool   `json:"is_pinned"`
}

// UpdateExchangeRateRequest is the admin rate change payload
type UpdateExchangeRateRequest struct {
	Rate decimal.Decimal `json:"rate" binding:"required"`
}

// CreateProductRequest is the product create payload
type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	ImageURLs   []string `json:"image_urls"`
}

// ListPostsQuery holds paging query parameters for post listings
type ListPostsQuery struct {
	Page  int `form:"page,default=1" binding:"omitempty,min=1"`
	Limit int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
}
