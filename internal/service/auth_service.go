package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/course-service/internal/auth"
	"github.com/spec-kit/course-service/internal/config"
	"github.com/spec-kit/course-service/internal/domain"
	"github.com/spec-kit/course-service/internal/events"
	"github.com/spec-kit/course-service/internal/store"
	"github.com/spec-kit/course-service/internal/validation"
	apperrors "github.com/spec-kit/course-service/pkg/util"
)

// invalidCredentials is returned for both unknown emails and password
// mismatches so a caller cannot tell which check failed.
const invalidCredentials = "invalid credentials"

// AuthService coordinates registration, login and profile flows against
// the shared store.
type AuthService struct {
	store      *store.Store
	tokenMgr   *auth.TokenManager
	bcryptCost int
	dispatcher events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, st *store.Store, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{
		store:      st,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLSeconds),
		bcryptCost: cfg.Auth.BcryptCost,
		dispatcher: dispatcher,
	}
}

// ProfileUpdateInput describes a partial profile update. Email is not
// mutable through this operation.
type ProfileUpdateInput struct {
	Name     *string
	Password *string
}

// Register creates a new student account and returns its public profile.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (domain.Profile, error) {
	if !validation.ValidateEmail(email) {
		return domain.Profile{}, apperrors.NewBadRequest("invalid email format", nil)
	}
	if !validation.ValidatePassword(password) {
		return domain.Profile{}, apperrors.NewBadRequest("password must be at least 8 characters long", nil)
	}
	if _, err := s.store.Users.GetByEmail(email); err == nil {
		return domain.Profile{}, apperrors.NewBadRequest("email already registered", nil)
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.Profile{}, apperrors.NewInternalError(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return domain.Profile{}, apperrors.NewInternalError(err)
	}

	now := time.Now()
	user := domain.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		Role:         domain.UserRoleStudent,
		Progress:     []domain.ProgressRecord{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.store.Users.Insert(user)

	s.publishEvent(ctx, events.Event{
		Type:   events.EventUserRegistered,
		UserID: user.ID,
		Payload: events.UserRegisteredPayload{
			Email: user.Email,
			Role:  user.Role,
		},
	})
	return user.PublicProfile(), nil
}

// Login authenticates a user and issues a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Profile, string, time.Time, error) {
	user, err := s.store.Users.GetByEmail(email)
	if err != nil {
		return domain.Profile{}, "", time.Time{}, apperrors.NewUnauthorized(invalidCredentials)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return domain.Profile{}, "", time.Time{}, apperrors.NewUnauthorized(invalidCredentials)
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID)
	if err != nil {
		return domain.Profile{}, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return user.PublicProfile(), token, exp, nil
}

// GetProfile returns the public profile for the user id.
func (s *AuthService) GetProfile(_ context.Context, id string) (domain.Profile, error) {
	user, err := s.store.Users.GetByID(id)
	if err != nil {
		return domain.Profile{}, apperrors.NewNotFound("user", nil)
	}
	return user.PublicProfile(), nil
}

// UpdateProfile applies the provided fields. An empty name and a weak
// password are both rejected without touching the stored record.
func (s *AuthService) UpdateProfile(_ context.Context, id string, input ProfileUpdateInput) (domain.Profile, error) {
	if input.Name != nil && !validation.ValidateTitle(*input.Name) {
		return domain.Profile{}, apperrors.NewBadRequest("name cannot be empty", nil)
	}

	var newHash string
	if input.Password != nil {
		if !validation.ValidatePassword(*input.Password) {
			return domain.Profile{}, apperrors.NewBadRequest("password must be at least 8 characters long", nil)
		}
		hash, err := auth.HashPassword(*input.Password, s.bcryptCost)
		if err != nil {
			return domain.Profile{}, apperrors.NewInternalError(err)
		}
		newHash = hash
	}

	user, err := s.store.Users.Update(id, func(u *domain.User) error {
		if input.Name != nil {
			u.Name = strings.TrimSpace(*input.Name)
		}
		if newHash != "" {
			u.PasswordHash = newHash
		}
		u.UpdatedAt = time.Now()
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Profile{}, apperrors.NewNotFound("user", nil)
		}
		return domain.Profile{}, apperrors.MapError(err)
	}
	return user.PublicProfile(), nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publishEvent(ctx context.Context, event events.Event) {
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
