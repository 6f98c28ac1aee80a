package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/course-service/internal/api/dto"
	"github.com/spec-kit/course-service/internal/auth"
	"github.com/spec-kit/course-service/internal/service"
	apperrors "github.com/spec-kit/course-service/pkg/util"
)

// DashboardHandler serves the student progress and recommendation views.
type DashboardHandler struct {
	courses *service.CourseService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(courseService *service.CourseService) *DashboardHandler {
	return &DashboardHandler{courses: courseService}
}

// Progress handles GET /dashboard/progress.
func (h *DashboardHandler) Progress(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	summaries, err := h.courses.TrackProgress(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": summaries})
}

// Recommendations handles GET /dashboard/recommendations.
func (h *DashboardHandler) Recommendations(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	courses, err := h.courses.Recommend(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	items := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		items = append(items, dto.NewCourseResponse(course))
	}
	return c.JSON(fiber.Map{"data": items})
}
