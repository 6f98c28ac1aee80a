package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/course-service/internal/domain"
	"github.com/spec-kit/course-service/internal/store"
)

func TestSnapshotCountsCollections(t *testing.T) {
	st := store.New()
	admin := NewAdminService(st)
	courses := NewCourseService(st, nil)
	payments := NewPaymentService(st, nil)

	seedUser(st, "u1")
	seedUser(st, "u2")
	seedUser(st, "u3")

	courses.Create(context.Background(), CourseCreateInput{Title: "Night Flying"})

	payments.Create(context.Background(), "u1", "1", 10)
	payments.Create(context.Background(), "u2", "1", 10)
	payments.Create(context.Background(), "u3", "1", 10)
	done := payments.Create(context.Background(), "u1", "2", 20)
	_, err := payments.Confirm(context.Background(), done.ID)
	require.NoError(t, err)

	snapshot := admin.Snapshot(context.Background())
	assert.Equal(t, domain.AnalyticsSnapshot{
		TotalUsers:     3,
		TotalCourses:   2,
		ActivePayments: 3,
	}, snapshot)
}

func TestSnapshotOnFreshStore(t *testing.T) {
	admin := NewAdminService(store.New())

	snapshot := admin.Snapshot(context.Background())
	assert.Equal(t, domain.AnalyticsSnapshot{TotalCourses: 1}, snapshot)
}

func TestListUsersReturnsProfilesWithoutHashes(t *testing.T) {
	st := store.New()
	admin := NewAdminService(st)

	st.Users.Insert(domain.User{
		ID:           "u1",
		Name:         "Dana",
		Email:        "dana@example.com",
		PasswordHash: "$2a$04$abcdefghijklmnopqrstuv",
		Role:         domain.UserRoleStudent,
	})

	profiles := admin.ListUsers(context.Background())
	require.Len(t, profiles, 1)
	assert.Equal(t, "u1", profiles[0].ID)
	assert.Equal(t, "Dana", profiles[0].Name)
	assert.Equal(t, domain.UserRoleStudent, profiles[0].Role)
}
