package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/course-service/internal/domain"
	"github.com/spec-kit/course-service/internal/store"
)

func seedUser(st *store.Store, id string, progress ...domain.ProgressRecord) {
	st.Users.Insert(domain.User{
		ID:       id,
		Name:     "Student " + id,
		Email:    id + "@example.com",
		Role:     domain.UserRoleStudent,
		Progress: progress,
	})
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	st := store.New()
	svc := NewCourseService(st, nil)

	course := svc.Create(context.Background(), CourseCreateInput{
		Title:       "Advanced Mapping",
		Description: "Aerial survey techniques",
		Modules: []ModuleInput{
			{Title: "Flight Planning", Content: "Plan a survey grid"},
			{Title: "Data Capture", Content: "Camera settings and overlap"},
		},
		Resources: []string{"https://example.com/mapping.pdf"},
	})

	assert.Equal(t, int64(2), course.ID)
	require.Len(t, course.Modules, 2)
	// Module ids continue past the two seeded demo modules, in input order.
	assert.Equal(t, int64(3), course.Modules[0].ID)
	assert.Equal(t, int64(4), course.Modules[1].ID)

	next := svc.Create(context.Background(), CourseCreateInput{Title: "Night Flying"})
	assert.Equal(t, int64(3), next.ID)
	assert.Empty(t, next.Modules)
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	st := store.New()
	svc := NewCourseService(st, nil)

	description := "Updated description"
	course, err := svc.Update(context.Background(), 1, CourseUpdateInput{Description: &description})
	require.NoError(t, err)
	assert.Equal(t, "Beginner Drone Operations", course.Title)
	assert.Equal(t, "Updated description", course.Description)

	resources := []string{"https://example.com/new.pdf"}
	course, err = svc.Update(context.Background(), 1, CourseUpdateInput{Resources: &resources})
	require.NoError(t, err)
	assert.Equal(t, resources, course.Resources)
	assert.Equal(t, "Updated description", course.Description)
}

func TestUpdateEmptyTitleRejected(t *testing.T) {
	st := store.New()
	svc := NewCourseService(st, nil)

	empty := "  "
	_, err := svc.Update(context.Background(), 1, CourseUpdateInput{Title: &empty})
	requireDomainError(t, err, "BAD_REQUEST")

	course, err := st.Courses.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Beginner Drone Operations", course.Title)
}

func TestUpdateUnknownCourse(t *testing.T) {
	svc := NewCourseService(store.New(), nil)

	title := "Anything"
	_, err := svc.Update(context.Background(), 999, CourseUpdateInput{Title: &title})
	requireDomainError(t, err, "NOT_FOUND")
}

func TestDeleteUnknownCourseLeavesCollectionUnchanged(t *testing.T) {
	st := store.New()
	svc := NewCourseService(st, nil)
	before := st.Courses.Len()

	err := svc.Delete(context.Background(), 999)
	requireDomainError(t, err, "NOT_FOUND")
	assert.Equal(t, before, st.Courses.Len())

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Equal(t, before-1, st.Courses.Len())
}

func TestTrackProgressHandlesZeroTotalModules(t *testing.T) {
	st := store.New()
	svc := NewCourseService(st, nil)
	seedUser(st, "u1",
		domain.ProgressRecord{CourseID: 1, CompletedModules: []int64{1, 2}, TotalModules: 0},
		domain.ProgressRecord{CourseID: 2, CompletedModules: []int64{3}, TotalModules: 4},
	)

	summaries, err := svc.TrackProgress(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, 0.0, summaries[0].Completion)
	assert.Equal(t, 0.25, summaries[1].Completion)
}

func TestTrackProgressUnknownUser(t *testing.T) {
	svc := NewCourseService(store.New(), nil)

	_, err := svc.TrackProgress(context.Background(), "missing")
	requireDomainError(t, err, "NOT_FOUND")
}

func TestRecommendOrdersByTitleExcludesEnrolledCapsAtThree(t *testing.T) {
	st := store.New()
	svc := NewCourseService(st, nil)

	_, err := st.Courses.Update(1, func(c *domain.Course) error {
		c.Title = "Beta"
		return nil
	})
	require.NoError(t, err)
	svc.Create(context.Background(), CourseCreateInput{Title: "Alpha"})
	svc.Create(context.Background(), CourseCreateInput{Title: "Gamma"})
	svc.Create(context.Background(), CourseCreateInput{Title: "Delta"})

	seedUser(st, "u1", domain.ProgressRecord{CourseID: 1, TotalModules: 2})

	courses, err := svc.Recommend(context.Background(), "u1")
	require.NoError(t, err)
	titles := make([]string, 0, len(courses))
	for _, course := range courses {
		titles = append(titles, course.Title)
	}
	assert.Equal(t, []string{"Alpha", "Delta", "Gamma"}, titles)
}

func TestRecommendUnknownUser(t *testing.T) {
	svc := NewCourseService(store.New(), nil)

	_, err := svc.Recommend(context.Background(), "missing")
	requireDomainError(t, err, "NOT_FOUND")
}

func TestEnrollCreatesProgressRecord(t *testing.T) {
	st := store.New()
	svc := NewCourseService(st, nil)
	seedUser(st, "u1")

	record, err := svc.Enroll(context.Background(), "u1", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), record.CourseID)
	assert.Equal(t, int64(2), record.TotalModules)
	assert.Empty(t, record.CompletedModules)

	_, err = svc.Enroll(context.Background(), "u1", 1)
	requireDomainError(t, err, "BAD_REQUEST")
}

func TestEnrollUnknownCourseOrUser(t *testing.T) {
	st := store.New()
	svc := NewCourseService(st, nil)
	seedUser(st, "u1")

	_, err := svc.Enroll(context.Background(), "u1", 999)
	requireDomainError(t, err, "NOT_FOUND")

	_, err = svc.Enroll(context.Background(), "missing", 1)
	requireDomainError(t, err, "NOT_FOUND")
}

func TestCompleteModuleIsIdempotent(t *testing.T) {
	st := store.New()
	svc := NewCourseService(st, nil)
	seedUser(st, "u1")

	_, err := svc.Enroll(context.Background(), "u1", 1)
	require.NoError(t, err)

	summary, err := svc.CompleteModule(context.Background(), "u1", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.5, summary.Completion)

	summary, err = svc.CompleteModule(context.Background(), "u1", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.5, summary.Completion)

	summary, err = svc.CompleteModule(context.Background(), "u1", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, summary.Completion)
}

func TestCompleteModuleRequiresEnrollment(t *testing.T) {
	st := store.New()
	svc := NewCourseService(st, nil)
	seedUser(st, "u1")

	_, err := svc.CompleteModule(context.Background(), "u1", 1, 1)
	requireDomainError(t, err, "NOT_FOUND")

	_, err = svc.CompleteModule(context.Background(), "missing", 1, 1)
	requireDomainError(t, err, "NOT_FOUND")
}
