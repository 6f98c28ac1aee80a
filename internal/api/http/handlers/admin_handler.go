package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/course-service/internal/service"
)

// AdminHandler serves the analytics and user management views.
type AdminHandler struct {
	admin *service.AdminService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: adminService}
}

// Analytics handles GET /admin/analytics.
func (h *AdminHandler) Analytics(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.admin.Snapshot(c.Context())})
}

// Users handles GET /admin/users.
func (h *AdminHandler) Users(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.admin.ListUsers(c.Context())})
}
