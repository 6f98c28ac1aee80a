package dto

import (
	"time"

	"github.com/spec-kit/course-service/internal/domain"
)

// RegisterRequest payload for new users.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest payload for partial profile updates. Absent fields
// are left untouched; email cannot be changed here.
type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LoginResponse bundles the profile with the issued token.
type LoginResponse struct {
	User domain.Profile `json:"user"`
	Auth AuthResponse   `json:"auth"`
}
