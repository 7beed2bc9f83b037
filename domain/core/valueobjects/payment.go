package valueobjects

import (
	apperrors "wordhoard-backend/pkg/errors"
)

// Payment is an opaque payment instrument supporting split, merge and
// value query. The exchange never inspects anything beyond its value.
type Payment struct {
	value uint64
}

// NewPayment creates a payment instrument holding the given value.
func NewPayment(value uint64) *Payment {
	return &Payment{value: value}
}

// Value returns the current balance of the instrument.
func (p *Payment) Value() uint64 {
	return p.value
}

// Split removes amount from the instrument and returns it as a new one.
func (p *Payment) Split(amount uint64) (*Payment, error) {
	if amount > p.value {
		return nil, apperrors.NewInsufficientPayment("split exceeds payment balance")
	}
	p.value -= amount
	return &Payment{value: amount}, nil
}

// Merge absorbs the other instrument into this one, zeroing it.
func (p *Payment) Merge(other *Payment) {
	if other == nil {
		return
	}
	p.value += other.value
	other.value = 0
}
