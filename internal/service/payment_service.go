package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/course-service/internal/domain"
	"github.com/spec-kit/course-service/internal/events"
	"github.com/spec-kit/course-service/internal/store"
	apperrors "github.com/spec-kit/course-service/pkg/util"
)

// PaymentService records and confirms payments. User and course
// references are carried as-is; the gateway side of the flow lives
// outside this service.
type PaymentService struct {
	store      *store.Store
	dispatcher events.Dispatcher
}

// NewPaymentService constructs the service.
func NewPaymentService(st *store.Store, dispatcher events.Dispatcher) *PaymentService {
	return &PaymentService{store: st, dispatcher: dispatcher}
}

// Create appends a new PENDING payment and returns it.
func (s *PaymentService) Create(ctx context.Context, userID, courseID string, amount float64) domain.Payment {
	payment := domain.Payment{
		ID:        uuid.NewString(),
		UserID:    userID,
		CourseID:  courseID,
		Amount:    amount,
		Status:    domain.PaymentStatusPending,
		CreatedAt: time.Now(),
	}
	s.store.Payments.Append(payment)

	s.publishEvent(ctx, events.Event{
		Type:   events.EventPaymentCreated,
		UserID: userID,
		Payload: events.PaymentCreatedPayload{
			PaymentID: payment.ID,
			CourseID:  payment.CourseID,
			Amount:    payment.Amount,
		},
	})
	return payment
}

// Confirm transitions the payment to COMPLETED. Confirming twice yields
// COMPLETED both times.
func (s *PaymentService) Confirm(ctx context.Context, paymentID string) (domain.Payment, error) {
	payment, err := s.store.Payments.Confirm(paymentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Payment{}, apperrors.NewNotFound("payment", map[string]any{"payment_id": paymentID})
		}
		return domain.Payment{}, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:   events.EventPaymentConfirmed,
		UserID: payment.UserID,
		Payload: events.PaymentConfirmedPayload{
			PaymentID: payment.ID,
			Status:    payment.Status,
		},
	})
	return payment, nil
}

// ListForUser returns the user's payments in store order.
func (s *PaymentService) ListForUser(_ context.Context, userID string) []domain.Payment {
	return s.store.Payments.ListByUser(userID)
}

func (s *PaymentService) publishEvent(ctx context.Context, event events.Event) {
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
