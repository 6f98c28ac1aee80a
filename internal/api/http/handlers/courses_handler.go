package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/course-service/internal/api/dto"
	"github.com/spec-kit/course-service/internal/auth"
	"github.com/spec-kit/course-service/internal/service"
	apperrors "github.com/spec-kit/course-service/pkg/util"
)

// CoursesHandler manages course CRUD and enrollment endpoints.
type CoursesHandler struct {
	courses *service.CourseService
}

// NewCoursesHandler constructs handler.
func NewCoursesHandler(courseService *service.CourseService) *CoursesHandler {
	return &CoursesHandler{courses: courseService}
}

// List handles GET /courses.
func (h *CoursesHandler) List(c *fiber.Ctx) error {
	courses := h.courses.List(c.Context())
	items := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		items = append(items, dto.NewCourseResponse(course))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get handles GET /courses/:id.
func (h *CoursesHandler) Get(c *fiber.Ctx) error {
	id, err := courseIDParam(c)
	if err != nil {
		return err
	}
	course, err := h.courses.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCourseResponse(course)})
}

// Create handles POST /courses.
func (h *CoursesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload", nil)
	}
	if req.Title == "" {
		return apperrors.NewBadRequest("title required", nil)
	}

	modules := make([]service.ModuleInput, 0, len(req.Modules))
	for _, m := range req.Modules {
		modules = append(modules, service.ModuleInput{Title: m.Title, Content: m.Content})
	}
	course := h.courses.Create(c.Context(), service.CourseCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Modules:     modules,
		Resources:   req.Resources,
	})
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewCourseResponse(course)})
}

// Update handles PUT /courses/:id.
func (h *CoursesHandler) Update(c *fiber.Ctx) error {
	id, err := courseIDParam(c)
	if err != nil {
		return err
	}
	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload", nil)
	}

	course, err := h.courses.Update(c.Context(), id, service.CourseUpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Resources:   req.Resources,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCourseResponse(course)})
}

// Delete handles DELETE /courses/:id.
func (h *CoursesHandler) Delete(c *fiber.Ctx) error {
	id, err := courseIDParam(c)
	if err != nil {
		return err
	}
	if err := h.courses.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Enroll handles POST /courses/:id/enroll.
func (h *CoursesHandler) Enroll(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	id, err := courseIDParam(c)
	if err != nil {
		return err
	}
	record, err := h.courses.Enroll(c.Context(), principal.User.ID, id)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.EnrollmentResponse{
		CourseID:     record.CourseID,
		TotalModules: record.TotalModules,
	}})
}

// CompleteModule handles POST /courses/:id/modules/:moduleID/complete.
func (h *CoursesHandler) CompleteModule(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	id, err := courseIDParam(c)
	if err != nil {
		return err
	}
	moduleID, err := strconv.ParseInt(c.Params("moduleID"), 10, 64)
	if err != nil {
		return apperrors.NewBadRequest("invalid module id", nil)
	}

	summary, err := h.courses.CompleteModule(c.Context(), principal.User.ID, id, moduleID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": summary})
}

func courseIDParam(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewBadRequest("invalid course id", nil)
	}
	return id, nil
}
