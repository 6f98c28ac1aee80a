package store

import (
	"sync"

	"github.com/spec-kit/course-service/internal/domain"
)

// CourseCollection holds courses keyed by their integer id behind an
// independent reader/writer lock.
type CourseCollection struct {
	mu      sync.RWMutex
	courses map[int64]domain.Course
}

func newCourseCollection() *CourseCollection {
	return &CourseCollection{courses: make(map[int64]domain.Course)}
}

// Insert stores a course under its assigned id.
func (c *CourseCollection) Insert(course domain.Course) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.courses[course.ID] = cloneCourse(course)
}

// Get returns a copy of the course, or ErrNotFound.
func (c *CourseCollection) Get(id int64) (domain.Course, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	course, ok := c.courses[id]
	if !ok {
		return domain.Course{}, ErrNotFound
	}
	return cloneCourse(course), nil
}

// Update applies fn to the stored course under the write lock.
func (c *CourseCollection) Update(id int64, fn func(*domain.Course) error) (domain.Course, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	course, ok := c.courses[id]
	if !ok {
		return domain.Course{}, ErrNotFound
	}
	if err := fn(&course); err != nil {
		return domain.Course{}, err
	}
	c.courses[id] = course
	return cloneCourse(course), nil
}

// Delete removes the course, or reports ErrNotFound. The id is never
// reused.
func (c *CourseCollection) Delete(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.courses[id]; !ok {
		return ErrNotFound
	}
	delete(c.courses, id)
	return nil
}

// List returns copies of all courses. Iteration order is unspecified.
func (c *CourseCollection) List() []domain.Course {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Course, 0, len(c.courses))
	for _, course := range c.courses {
		out = append(out, cloneCourse(course))
	}
	return out
}

// Len returns the number of stored courses.
func (c *CourseCollection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.courses)
}

func cloneCourse(course domain.Course) domain.Course {
	if len(course.Modules) > 0 {
		course.Modules = append([]domain.CourseModule(nil), course.Modules...)
	}
	if len(course.Resources) > 0 {
		course.Resources = append([]string(nil), course.Resources...)
	}
	return course
}
