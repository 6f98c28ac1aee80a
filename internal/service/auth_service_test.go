package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/course-service/internal/config"
	"github.com/spec-kit/course-service/internal/domain"
	"github.com/spec-kit/course-service/internal/store"
	apperrors "github.com/spec-kit/course-service/pkg/util"
)

func newTestAuthService(st *store.Store) *AuthService {
	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret",
			TokenTTLSeconds: 3600,
			BcryptCost:      4,
		},
	}
	return NewAuthService(cfg, st, nil)
}

func TestRegisterCreatesStudentProfile(t *testing.T) {
	st := store.New()
	svc := newTestAuthService(st)

	profile, err := svc.Register(context.Background(), "Dana", "dana@example.com", "supersafe1")
	require.NoError(t, err)

	assert.NotEmpty(t, profile.ID)
	assert.Equal(t, "Dana", profile.Name)
	assert.Equal(t, "dana@example.com", profile.Email)
	assert.Equal(t, domain.UserRoleStudent, profile.Role)

	stored, err := st.Users.GetByID(profile.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Progress)
	assert.NotEqual(t, "supersafe1", stored.PasswordHash)
}

func TestRegisterRejectsBadInput(t *testing.T) {
	svc := newTestAuthService(store.New())

	_, err := svc.Register(context.Background(), "Dana", "not-an-email", "supersafe1")
	requireDomainError(t, err, "BAD_REQUEST")

	_, err = svc.Register(context.Background(), "Dana", "dana@example.com", "short")
	requireDomainError(t, err, "BAD_REQUEST")
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	svc := newTestAuthService(store.New())

	_, err := svc.Register(context.Background(), "Dana", "Dana@Example.com", "supersafe1")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Other", "dana@example.com", "supersafe1")
	requireDomainError(t, err, "BAD_REQUEST")

	// A failed attempt does not free the address.
	_, err = svc.Register(context.Background(), "Other", "DANA@EXAMPLE.COM", "supersafe1")
	requireDomainError(t, err, "BAD_REQUEST")
}

func TestLoginIssuesTokenWithHourExpiry(t *testing.T) {
	svc := newTestAuthService(store.New())

	_, err := svc.Register(context.Background(), "Dana", "dana@example.com", "supersafe1")
	require.NoError(t, err)

	profile, token, exp, err := svc.Login(context.Background(), "dana@example.com", "supersafe1")
	require.NoError(t, err)
	assert.Equal(t, "dana@example.com", profile.Email)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 2*time.Second)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc := newTestAuthService(store.New())

	_, err := svc.Register(context.Background(), "Dana", "dana@example.com", "supersafe1")
	require.NoError(t, err)

	_, _, _, errUnknown := svc.Login(context.Background(), "nobody@example.com", "supersafe1")
	_, _, _, errWrongPass := svc.Login(context.Background(), "dana@example.com", "wrongpass1")

	unknownErr := requireDomainError(t, errUnknown, "UNAUTHORIZED")
	wrongPassErr := requireDomainError(t, errWrongPass, "UNAUTHORIZED")
	assert.Equal(t, unknownErr.Message, wrongPassErr.Message)
}

func TestGetProfileNotFound(t *testing.T) {
	svc := newTestAuthService(store.New())

	_, err := svc.GetProfile(context.Background(), "missing")
	requireDomainError(t, err, "NOT_FOUND")
}

func TestUpdateProfileEmptyNameRejected(t *testing.T) {
	st := store.New()
	svc := newTestAuthService(st)

	profile, err := svc.Register(context.Background(), "Dana", "dana@example.com", "supersafe1")
	require.NoError(t, err)

	empty := "   "
	_, err = svc.UpdateProfile(context.Background(), profile.ID, ProfileUpdateInput{Name: &empty})
	requireDomainError(t, err, "BAD_REQUEST")

	stored, err := st.Users.GetByID(profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dana", stored.Name)
}

func TestUpdateProfileChangesNameAndPassword(t *testing.T) {
	svc := newTestAuthService(store.New())

	profile, err := svc.Register(context.Background(), "Dana", "dana@example.com", "supersafe1")
	require.NoError(t, err)

	name := "Dana Q."
	password := "evensafer2"
	updated, err := svc.UpdateProfile(context.Background(), profile.ID, ProfileUpdateInput{
		Name:     &name,
		Password: &password,
	})
	require.NoError(t, err)
	assert.Equal(t, "Dana Q.", updated.Name)
	assert.Equal(t, "dana@example.com", updated.Email)

	_, _, _, err = svc.Login(context.Background(), "dana@example.com", "evensafer2")
	assert.NoError(t, err)
	_, _, _, err = svc.Login(context.Background(), "dana@example.com", "supersafe1")
	assert.Error(t, err)
}

func TestUpdateProfileWeakPasswordRejected(t *testing.T) {
	svc := newTestAuthService(store.New())

	profile, err := svc.Register(context.Background(), "Dana", "dana@example.com", "supersafe1")
	require.NoError(t, err)

	weak := "short"
	_, err = svc.UpdateProfile(context.Background(), profile.ID, ProfileUpdateInput{Password: &weak})
	requireDomainError(t, err, "BAD_REQUEST")
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	svc := newTestAuthService(store.New())

	name := "Anyone"
	_, err := svc.UpdateProfile(context.Background(), "missing", ProfileUpdateInput{Name: &name})
	requireDomainError(t, err, "NOT_FOUND")
}

func requireDomainError(t *testing.T, err error, code string) *apperrors.DomainError {
	t.Helper()
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	require.Equal(t, code, domainErr.Code)
	return domainErr
}
