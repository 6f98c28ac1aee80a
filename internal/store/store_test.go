package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/course-service/internal/domain"
)

func TestNewSeedsDemoCourse(t *testing.T) {
	s := New()

	course, err := s.Courses.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Beginner Drone Operations", course.Title)
	require.Len(t, course.Modules, 2)
	assert.Equal(t, int64(1), course.Modules[0].ID)
	assert.Equal(t, int64(2), course.Modules[1].ID)
	assert.Len(t, course.Resources, 2)

	// Sequences start past the seeded records.
	assert.Equal(t, int64(2), s.NextCourseID())
	assert.Equal(t, int64(3), s.NextModuleID())
}

func TestSequencesDistinctUnderConcurrency(t *testing.T) {
	s := New()

	const workers = 50
	const perWorker = 20

	var wg sync.WaitGroup
	courseIDs := make(chan int64, workers*perWorker)
	moduleIDs := make(chan int64, workers*perWorker)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			prevCourse := int64(0)
			prevModule := int64(0)
			for j := 0; j < perWorker; j++ {
				id := s.NextCourseID()
				assert.Greater(t, id, prevCourse)
				prevCourse = id
				courseIDs <- id

				mid := s.NextModuleID()
				assert.Greater(t, mid, prevModule)
				prevModule = mid
				moduleIDs <- mid
			}
		}()
	}
	wg.Wait()
	close(courseIDs)
	close(moduleIDs)

	seenCourses := make(map[int64]bool)
	for id := range courseIDs {
		assert.False(t, seenCourses[id], "course id %d issued twice", id)
		seenCourses[id] = true
	}
	require.Len(t, seenCourses, workers*perWorker)

	seenModules := make(map[int64]bool)
	for id := range moduleIDs {
		assert.False(t, seenModules[id], "module id %d issued twice", id)
		seenModules[id] = true
	}
	require.Len(t, seenModules, workers*perWorker)
}

func TestCourseDeleteAbsent(t *testing.T) {
	s := New()
	before := s.Courses.Len()

	err := s.Courses.Delete(999)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, before, s.Courses.Len())
}

func TestCourseIDsNotReusedAfterDelete(t *testing.T) {
	s := New()

	id := s.NextCourseID()
	s.Courses.Insert(domain.Course{ID: id, Title: "Temporary"})
	require.NoError(t, s.Courses.Delete(id))

	assert.Greater(t, s.NextCourseID(), id)
}

func TestCourseReadsReturnCopies(t *testing.T) {
	s := New()

	course, err := s.Courses.Get(1)
	require.NoError(t, err)
	course.Modules[0].Title = "mutated"
	course.Resources[0] = "mutated"

	fresh, err := s.Courses.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Safety Basics", fresh.Modules[0].Title)
	assert.Equal(t, "https://example.com/drone-checklist.pdf", fresh.Resources[0])
}

func TestUserLookupByEmailIsCaseInsensitive(t *testing.T) {
	s := New()
	s.Users.Insert(domain.User{ID: "u1", Name: "Dana", Email: "Dana@Example.com"})

	user, err := s.Users.GetByEmail("dana@example.COM")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	_, err = s.Users.GetByEmail("missing@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserUpdateFailureLeavesRecordUntouched(t *testing.T) {
	s := New()
	s.Users.Insert(domain.User{ID: "u1", Name: "Dana", Email: "dana@example.com"})

	_, err := s.Users.Update("u1", func(u *domain.User) error {
		u.Name = "changed"
		return ErrNotFound
	})
	require.Error(t, err)

	user, err := s.Users.GetByID("u1")
	require.NoError(t, err)
	assert.Equal(t, "Dana", user.Name)
}

func TestUserReadsReturnCopies(t *testing.T) {
	s := New()
	s.Users.Insert(domain.User{
		ID:    "u1",
		Email: "dana@example.com",
		Progress: []domain.ProgressRecord{
			{CourseID: 1, CompletedModules: []int64{1}, TotalModules: 2},
		},
	})

	user, err := s.Users.GetByID("u1")
	require.NoError(t, err)
	user.Progress[0].CompletedModules[0] = 99

	fresh, err := s.Users.GetByID("u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), fresh.Progress[0].CompletedModules[0])
}

func TestPaymentConfirmAndPendingCount(t *testing.T) {
	s := New()
	s.Payments.Append(domain.Payment{ID: "p1", UserID: "u1", Status: domain.PaymentStatusPending})
	s.Payments.Append(domain.Payment{ID: "p2", UserID: "u1", Status: domain.PaymentStatusPending})
	s.Payments.Append(domain.Payment{ID: "p3", UserID: "u2", Status: domain.PaymentStatusPending})

	_, err := s.Payments.Confirm("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	payment, err := s.Payments.Confirm("p2")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, payment.Status)
	assert.Equal(t, 2, s.Payments.CountPending())

	mine := s.Payments.ListByUser("u1")
	require.Len(t, mine, 2)
	assert.Equal(t, "p1", mine[0].ID)
	assert.Equal(t, "p2", mine[1].ID)
}
