package model

import "time"

// Payment is a standalone payment record with bookkeeping timestamps.
type Payment struct {
	ID          uint64    `json:"id"`          // payments.id
	PaymentDate time.Time `json:"paymentDate"` // payments.payment_date
	Amount      int64     `json:"amount"`      // payments.amount
	CreatedAt   time.Time `json:"createdAt"`   // payments.created_at
	UpdatedAt   time.Time `json:"updatedAt"`   // payments.updated_at
}
