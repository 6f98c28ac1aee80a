package events

import (
	"time"

	"github.com/spec-kit/course-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered    EventType = "user_registered"
	EventCourseCreated     EventType = "course_created"
	EventCourseDeleted     EventType = "course_deleted"
	EventEnrollmentCreated EventType = "enrollment_created"
	EventModuleCompleted   EventType = "module_completed"
	EventPaymentCreated    EventType = "payment_created"
	EventPaymentConfirmed  EventType = "payment_confirmed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Email string          `json:"email"`
	Role  domain.UserRole `json:"role"`
}

// CourseCreatedPayload payload.
type CourseCreatedPayload struct {
	CourseID    int64  `json:"course_id"`
	Title       string `json:"title"`
	ModuleCount int    `json:"module_count"`
}

// CourseDeletedPayload payload.
type CourseDeletedPayload struct {
	CourseID int64 `json:"course_id"`
}

// EnrollmentCreatedPayload payload.
type EnrollmentCreatedPayload struct {
	CourseID     int64 `json:"course_id"`
	TotalModules int64 `json:"total_modules"`
}

// ModuleCompletedPayload payload.
type ModuleCompletedPayload struct {
	CourseID   int64   `json:"course_id"`
	ModuleID   int64   `json:"module_id"`
	Completion float64 `json:"completion"`
}

// PaymentCreatedPayload payload.
type PaymentCreatedPayload struct {
	PaymentID string  `json:"payment_id"`
	CourseID  string  `json:"course_id"`
	Amount    float64 `json:"amount"`
}

// PaymentConfirmedPayload payload.
type PaymentConfirmedPayload struct {
	PaymentID string               `json:"payment_id"`
	Status    domain.PaymentStatus `json:"status"`
}
