package store

import (
	"errors"
	"sync/atomic"

	"github.com/spec-kit/course-service/internal/domain"
)

// ErrNotFound signals that a referenced entity is absent from a collection.
var ErrNotFound = errors.New("not found")

// Store owns all entity data for the process lifetime. Each collection is
// guarded by its own reader/writer lock, so unrelated operations never
// contend. Id sequences are lock-free and independent of the collection
// locks. A single Store is constructed at startup and handed to every
// service; there is no package-level instance.
type Store struct {
	Users    *UserCollection
	Courses  *CourseCollection
	Payments *PaymentCollection

	courseSeq atomic.Int64
	moduleSeq atomic.Int64
}

// New builds a Store seeded with one demo course and two demo modules. The
// id sequences start past the seeded records.
func New() *Store {
	s := &Store{
		Users:    newUserCollection(),
		Courses:  newCourseCollection(),
		Payments: newPaymentCollection(),
	}

	seed := domain.Course{
		ID:          1,
		Title:       "Beginner Drone Operations",
		Description: "Get started with hands-on drone piloting",
		Modules: []domain.CourseModule{
			{ID: 1, Title: "Safety Basics", Content: "Learn the foundational safety procedures before flying"},
			{ID: 2, Title: "First Flight", Content: "Step-by-step guide to your first supervised flight"},
		},
		Resources: []string{
			"https://example.com/drone-checklist.pdf",
			"https://example.com/flight-log.xlsx",
		},
	}
	s.Courses.Insert(seed)

	s.courseSeq.Store(seed.ID)
	s.moduleSeq.Store(int64(len(seed.Modules)))

	return s
}

// NextCourseID returns a fresh course id. Values are strictly increasing
// and never reused, even after a course is deleted.
func (s *Store) NextCourseID() int64 {
	return s.courseSeq.Add(1)
}

// NextModuleID returns a fresh module id, unique across all courses.
func (s *Store) NextModuleID() int64 {
	return s.moduleSeq.Add(1)
}

// AssignModuleIDs stamps fresh module ids onto the definitions in input
// order and returns the resulting modules.
func (s *Store) AssignModuleIDs(defs []domain.CourseModule) []domain.CourseModule {
	if len(defs) == 0 {
		return nil
	}
	modules := make([]domain.CourseModule, 0, len(defs))
	for _, def := range defs {
		modules = append(modules, domain.CourseModule{
			ID:      s.NextModuleID(),
			Title:   def.Title,
			Content: def.Content,
		})
	}
	return modules
}
