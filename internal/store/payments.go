package store

import (
	"sync"

	"github.com/spec-kit/course-service/internal/domain"
)

// PaymentCollection is an append-only sequence of payments behind its own
// lock. Lookups are linear scans in insertion order.
type PaymentCollection struct {
	mu       sync.RWMutex
	payments []domain.Payment
}

func newPaymentCollection() *PaymentCollection {
	return &PaymentCollection{}
}

// Append records a new payment at the end of the sequence.
func (c *PaymentCollection) Append(payment domain.Payment) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.payments = append(c.payments, payment)
}

// Confirm transitions the payment to COMPLETED and returns the updated
// record. Confirming an already-completed payment re-sets COMPLETED.
func (c *PaymentCollection) Confirm(id string) (domain.Payment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.payments {
		if c.payments[i].ID == id {
			c.payments[i].Status = domain.PaymentStatusCompleted
			return c.payments[i], nil
		}
	}
	return domain.Payment{}, ErrNotFound
}

// ListByUser returns the user's payments in store order.
func (c *PaymentCollection) ListByUser(userID string) []domain.Payment {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Payment, 0)
	for _, payment := range c.payments {
		if payment.UserID == userID {
			out = append(out, payment)
		}
	}
	return out
}

// Len returns the total number of payments.
func (c *PaymentCollection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.payments)
}

// CountPending returns how many payments are still PENDING.
func (c *PaymentCollection) CountPending() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	count := 0
	for _, payment := range c.payments {
		if payment.Status == domain.PaymentStatusPending {
			count++
		}
	}
	return count
}
