package service

import (
	"context"

	"github.com/spec-kit/course-service/internal/domain"
	"github.com/spec-kit/course-service/internal/store"
)

// AdminService derives aggregate views across the collections.
type AdminService struct {
	store *store.Store
}

// NewAdminService constructs the service.
func NewAdminService(st *store.Store) *AdminService {
	return &AdminService{store: st}
}

// Snapshot counts users, courses and pending payments. Each count is read
// under its own lock, so a concurrent writer may land between reads; the
// result is a best-effort composite, not a point-in-time view.
func (s *AdminService) Snapshot(_ context.Context) domain.AnalyticsSnapshot {
	return domain.AnalyticsSnapshot{
		TotalUsers:     s.store.Users.Len(),
		TotalCourses:   s.store.Courses.Len(),
		ActivePayments: s.store.Payments.CountPending(),
	}
}

// ListUsers returns the public profile of every registered user.
func (s *AdminService) ListUsers(_ context.Context) []domain.Profile {
	users := s.store.Users.List()
	profiles := make([]domain.Profile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].PublicProfile())
	}
	return profiles
}
