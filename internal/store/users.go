package store

import (
	"strings"
	"sync"

	"github.com/spec-kit/course-service/internal/domain"
)

// UserCollection holds users keyed by their opaque id. All access goes
// through the collection's lock; reads hand back copies so callers never
// alias the stored record.
type UserCollection struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func newUserCollection() *UserCollection {
	return &UserCollection{users: make(map[string]domain.User)}
}

// Insert stores a new user. The caller is responsible for id and email
// uniqueness checks before inserting.
func (c *UserCollection) Insert(user domain.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.users[user.ID] = cloneUser(user)
}

// GetByID returns a copy of the user, or ErrNotFound.
func (c *UserCollection) GetByID(id string) (domain.User, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	user, ok := c.users[id]
	if !ok {
		return domain.User{}, ErrNotFound
	}
	return cloneUser(user), nil
}

// GetByEmail returns a copy of the user whose email matches
// case-insensitively, or ErrNotFound.
func (c *UserCollection) GetByEmail(email string) (domain.User, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, user := range c.users {
		if strings.EqualFold(user.Email, email) {
			return cloneUser(user), nil
		}
	}
	return domain.User{}, ErrNotFound
}

// Update applies fn to the stored user under the write lock. fn operates
// on a working copy; if it returns an error nothing is written back.
func (c *UserCollection) Update(id string, fn func(*domain.User) error) (domain.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	user, ok := c.users[id]
	if !ok {
		return domain.User{}, ErrNotFound
	}
	if err := fn(&user); err != nil {
		return domain.User{}, err
	}
	c.users[id] = user
	return cloneUser(user), nil
}

// List returns copies of all users in unspecified order.
func (c *UserCollection) List() []domain.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.User, 0, len(c.users))
	for _, user := range c.users {
		out = append(out, cloneUser(user))
	}
	return out
}

// Len returns the number of stored users.
func (c *UserCollection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.users)
}

func cloneUser(user domain.User) domain.User {
	if len(user.Progress) > 0 {
		progress := make([]domain.ProgressRecord, len(user.Progress))
		for i, record := range user.Progress {
			progress[i] = record
			if len(record.CompletedModules) > 0 {
				progress[i].CompletedModules = append([]int64(nil), record.CompletedModules...)
			}
		}
		user.Progress = progress
	}
	return user
}
