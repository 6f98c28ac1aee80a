package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/course-service/internal/domain"
	"github.com/spec-kit/course-service/internal/events"
	"github.com/spec-kit/course-service/internal/store"
	"github.com/spec-kit/course-service/internal/validation"
	apperrors "github.com/spec-kit/course-service/pkg/util"
)

const maxRecommendations = 3

// CourseService coordinates course CRUD, enrollment and the derived
// progress and recommendation views.
type CourseService struct {
	store      *store.Store
	dispatcher events.Dispatcher
}

// NewCourseService constructs the service.
func NewCourseService(st *store.Store, dispatcher events.Dispatcher) *CourseService {
	return &CourseService{store: st, dispatcher: dispatcher}
}

// ModuleInput describes a module definition inside a course payload.
type ModuleInput struct {
	Title   string
	Content string
}

// CourseCreateInput describes course creation payload.
type CourseCreateInput struct {
	Title       string
	Description string
	Modules     []ModuleInput
	Resources   []string
}

// CourseUpdateInput describes a partial course update; nil fields are left
// untouched.
type CourseUpdateInput struct {
	Title       *string
	Description *string
	Resources   *[]string
}

// List returns all courses in unspecified order.
func (s *CourseService) List(_ context.Context) []domain.Course {
	return s.store.Courses.List()
}

// Get returns one course by id.
func (s *CourseService) Get(_ context.Context, id int64) (domain.Course, error) {
	course, err := s.store.Courses.Get(id)
	if err != nil {
		return domain.Course{}, apperrors.NewNotFound("course", map[string]any{"course_id": id})
	}
	return course, nil
}

// Create assigns fresh course and module ids and stores the course.
// Creation itself never fails.
func (s *CourseService) Create(ctx context.Context, input CourseCreateInput) domain.Course {
	defs := make([]domain.CourseModule, 0, len(input.Modules))
	for _, m := range input.Modules {
		defs = append(defs, domain.CourseModule{Title: m.Title, Content: m.Content})
	}

	course := domain.Course{
		ID:          s.store.NextCourseID(),
		Title:       input.Title,
		Description: input.Description,
		Modules:     s.store.AssignModuleIDs(defs),
		Resources:   input.Resources,
	}
	s.store.Courses.Insert(course)

	s.publishEvent(ctx, events.Event{
		Type: events.EventCourseCreated,
		Payload: events.CourseCreatedPayload{
			CourseID:    course.ID,
			Title:       course.Title,
			ModuleCount: len(course.Modules),
		},
	})
	return course
}

// Update applies only the provided fields and returns the updated course.
func (s *CourseService) Update(_ context.Context, id int64, input CourseUpdateInput) (domain.Course, error) {
	course, err := s.store.Courses.Update(id, func(c *domain.Course) error {
		if input.Title != nil {
			if !validation.ValidateTitle(*input.Title) {
				return apperrors.NewBadRequest("course title cannot be empty", nil)
			}
			c.Title = *input.Title
		}
		if input.Description != nil {
			c.Description = *input.Description
		}
		if input.Resources != nil {
			c.Resources = *input.Resources
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Course{}, apperrors.NewNotFound("course", map[string]any{"course_id": id})
		}
		return domain.Course{}, apperrors.MapError(err)
	}
	return course, nil
}

// Delete removes the course by id. The id is never reassigned.
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Courses.Delete(id); err != nil {
		return apperrors.NewNotFound("course", map[string]any{"course_id": id})
	}
	s.publishEvent(ctx, events.Event{
		Type:    events.EventCourseDeleted,
		Payload: events.CourseDeletedPayload{CourseID: id},
	})
	return nil
}

// Enroll adds a fresh progress record for the course to the user. The
// course must exist at enrollment time; the record is not kept in sync
// with later course changes.
func (s *CourseService) Enroll(ctx context.Context, userID string, courseID int64) (domain.ProgressRecord, error) {
	course, err := s.store.Courses.Get(courseID)
	if err != nil {
		return domain.ProgressRecord{}, apperrors.NewNotFound("course", map[string]any{"course_id": courseID})
	}

	record := domain.ProgressRecord{
		CourseID:         course.ID,
		CompletedModules: []int64{},
		TotalModules:     int64(len(course.Modules)),
	}

	if _, err := s.store.Users.Update(userID, func(u *domain.User) error {
		for _, existing := range u.Progress {
			if existing.CourseID == courseID {
				return apperrors.NewBadRequest("already enrolled in this course", nil)
			}
		}
		u.Progress = append(u.Progress, record)
		return nil
	}); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ProgressRecord{}, apperrors.NewNotFound("user", nil)
		}
		return domain.ProgressRecord{}, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:   events.EventEnrollmentCreated,
		UserID: userID,
		Payload: events.EnrollmentCreatedPayload{
			CourseID:     record.CourseID,
			TotalModules: record.TotalModules,
		},
	})
	return record, nil
}

// CompleteModule marks the module as completed on the user's enrollment
// for the course. Completing the same module twice is a no-op. The module
// id is not checked against the course contents.
func (s *CourseService) CompleteModule(ctx context.Context, userID string, courseID, moduleID int64) (domain.ProgressSummary, error) {
	var summary domain.ProgressSummary

	if _, err := s.store.Users.Update(userID, func(u *domain.User) error {
		for i := range u.Progress {
			if u.Progress[i].CourseID != courseID {
				continue
			}
			if !u.Progress[i].Completed(moduleID) {
				u.Progress[i].CompletedModules = append(u.Progress[i].CompletedModules, moduleID)
			}
			summary = domain.ProgressSummary{
				CourseID:   courseID,
				Completion: u.Progress[i].CompletionRatio(),
			}
			return nil
		}
		return apperrors.NewNotFound("enrollment", map[string]any{"course_id": courseID})
	}); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ProgressSummary{}, apperrors.NewNotFound("user", nil)
		}
		return domain.ProgressSummary{}, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:   events.EventModuleCompleted,
		UserID: userID,
		Payload: events.ModuleCompletedPayload{
			CourseID:   courseID,
			ModuleID:   moduleID,
			Completion: summary.Completion,
		},
	})
	return summary, nil
}

// TrackProgress maps every enrollment of the user to its completion ratio.
func (s *CourseService) TrackProgress(_ context.Context, userID string) ([]domain.ProgressSummary, error) {
	user, err := s.store.Users.GetByID(userID)
	if err != nil {
		return nil, apperrors.NewNotFound("user", nil)
	}

	summaries := make([]domain.ProgressSummary, 0, len(user.Progress))
	for _, record := range user.Progress {
		summaries = append(summaries, domain.ProgressSummary{
			CourseID:   record.CourseID,
			Completion: record.CompletionRatio(),
		})
	}
	return summaries, nil
}

// Recommend returns up to three courses the user is not enrolled in,
// ordered by title. The user and course locks are taken one after the
// other, never together.
func (s *CourseService) Recommend(_ context.Context, userID string) ([]domain.Course, error) {
	user, err := s.store.Users.GetByID(userID)
	if err != nil {
		return nil, apperrors.NewNotFound("user", nil)
	}

	enrolled := make(map[int64]struct{}, len(user.Progress))
	for _, record := range user.Progress {
		enrolled[record.CourseID] = struct{}{}
	}

	courses := s.store.Courses.List()
	sort.Slice(courses, func(i, j int) bool {
		return courses[i].Title < courses[j].Title
	})

	recommendations := make([]domain.Course, 0, maxRecommendations)
	for _, course := range courses {
		if _, ok := enrolled[course.ID]; ok {
			continue
		}
		recommendations = append(recommendations, course)
		if len(recommendations) == maxRecommendations {
			break
		}
	}
	return recommendations, nil
}

func (s *CourseService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
