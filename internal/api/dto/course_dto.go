package dto

import "github.com/spec-kit/course-service/internal/domain"

// ModuleRequest describes a module definition in a course payload.
type ModuleRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreateCourseRequest payload.
type CreateCourseRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Modules     []ModuleRequest `json:"modules"`
	Resources   []string        `json:"resources"`
}

// UpdateCourseRequest payload; only provided fields change.
type UpdateCourseRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Resources   *[]string `json:"resources"`
}

// ModuleResponse response.
type ModuleResponse struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CourseResponse response.
type CourseResponse struct {
	ID          int64            `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Modules     []ModuleResponse `json:"modules"`
	Resources   []string         `json:"resources"`
}

// NewCourseResponse maps a domain course onto the wire shape.
func NewCourseResponse(course domain.Course) CourseResponse {
	modules := make([]ModuleResponse, 0, len(course.Modules))
	for _, m := range course.Modules {
		modules = append(modules, ModuleResponse{ID: m.ID, Title: m.Title, Content: m.Content})
	}
	return CourseResponse{
		ID:          course.ID,
		Title:       course.Title,
		Description: course.Description,
		Modules:     modules,
		Resources:   course.Resources,
	}
}

// EnrollmentResponse reports a fresh enrollment.
type EnrollmentResponse struct {
	CourseID     int64 `json:"course_id"`
	TotalModules int64 `json:"total_modules"`
}
