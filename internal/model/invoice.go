package model

import "time"

// Invoice is a billing document issued by a sales person. Receive is
// the human-facing invoice number assigned from the durable `receive`
// sequence at creation time, independent of the sale ticket sequence;
// like Ticket it is unique, floor-bounded and never reassigned.
//
// Fields:
//  ID          – primary key identifier.
//  SalesPerson – users.id of the issuing staff member.
//  DueDate     – payment due date (nullable).
//  TotalAmount – invoiced amount in whole currency units.
//  Paid        – whether the invoice has been settled.
//  Receive     – sequence-assigned invoice number (immutable).
type Invoice struct {
	ID          uint64     `json:"id"`          // invoices.id
	SalesPerson uint64     `json:"salesPerson"` // invoices.sales_person (references users.id)
	DueDate     *time.Time `json:"dueDate"`     // invoices.due_date (nullable)
	TotalAmount int64      `json:"totalAmount"` // invoices.total_amount
	Paid        bool       `json:"paid"`        // invoices.paid
	Receive     uint64     `json:"receive"`     // invoices.receive (assigned once at create)
}
