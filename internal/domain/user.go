package domain

import "time"

// UserRole enumerates account roles.
type UserRole string

const (
	UserRoleStudent UserRole = "STUDENT"
	UserRoleAdmin   UserRole = "ADMIN"
)

// User is the domain model for registered accounts.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         UserRole
	Progress     []ProgressRecord
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProgressRecord tracks module completion for one course enrollment.
// Course and module ids are not validated against the course collection.
type ProgressRecord struct {
	CourseID         int64
	CompletedModules []int64
	TotalModules     int64
}

// CompletionRatio returns completed/total, 0 when no modules are counted.
func (p ProgressRecord) CompletionRatio() float64 {
	if p.TotalModules <= 0 {
		return 0
	}
	return float64(len(p.CompletedModules)) / float64(p.TotalModules)
}

// Completed reports whether the module id is in the completed set.
func (p ProgressRecord) Completed(moduleID int64) bool {
	for _, id := range p.CompletedModules {
		if id == moduleID {
			return true
		}
	}
	return false
}

// Profile is the public projection of a User. The password hash never
// crosses this boundary.
type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicProfile builds the outward-facing view of the user.
func (u *User) PublicProfile() Profile {
	return Profile{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ProgressSummary is the derived per-course completion view.
type ProgressSummary struct {
	CourseID   int64   `json:"course_id"`
	Completion float64 `json:"completion"`
}
