package domain

import "time"

// PaymentStatus enumerates payment lifecycle states. FAILED is reserved:
// no operation currently produces it.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

// Payment records a purchase attempt. User and course references are not
// validated for existence.
type Payment struct {
	ID        string
	UserID    string
	CourseID  string
	Amount    float64
	Status    PaymentStatus
	CreatedAt time.Time
}
