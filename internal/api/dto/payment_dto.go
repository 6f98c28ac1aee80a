package dto

import (
	"time"

	"github.com/spec-kit/course-service/internal/domain"
)

// CreatePaymentRequest payload.
type CreatePaymentRequest struct {
	CourseID string  `json:"course_id"`
	Amount   float64 `json:"amount"`
}

// PaymentResponse response.
type PaymentResponse struct {
	ID        string               `json:"id"`
	UserID    string               `json:"user_id"`
	CourseID  string               `json:"course_id"`
	Amount    float64              `json:"amount"`
	Status    domain.PaymentStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
}

// NewPaymentResponse maps a domain payment onto the wire shape.
func NewPaymentResponse(payment domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        payment.ID,
		UserID:    payment.UserID,
		CourseID:  payment.CourseID,
		Amount:    payment.Amount,
		Status:    payment.Status,
		CreatedAt: payment.CreatedAt,
	}
}
