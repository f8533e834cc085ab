package model

import "time"

// Sale records a completed vehicle sale. Ticket is the human-facing
// sale number assigned from the durable `ticket` sequence at creation
// time; it is unique, never below the sequence floor, and never
// reassigned on update. Buyer references clients.id and a sale holding
// such a reference blocks that client's deletion.
//
// Fields:
//  ID            – primary key identifier.
//  Buyer         – clients.id of the purchasing client.
//  SaleDate      – when the sale took place.
//  Quantity      – number of vehicles sold.
//  TotalPrice    – total sale price in whole currency units.
//  PaymentMethod – free-form payment method label (e.g. "cash", "finance").
//  SalesPerson   – users.id of the selling staff member.
//  Ticket        – sequence-assigned sale ticket number (immutable).
type Sale struct {
	ID            uint64    `json:"id"`            // sales.id
	Buyer         uint64    `json:"buyer"`         // sales.buyer (references clients.id)
	SaleDate      time.Time `json:"saleDate"`      // sales.sale_date
	Quantity      int       `json:"quantity"`      // sales.quantity
	TotalPrice    int64     `json:"totalPrice"`    // sales.total_price
	PaymentMethod string    `json:"paymentMethod"` // sales.payment_method
	SalesPerson   uint64    `json:"salesPerson"`   // sales.sales_person (references users.id)
	Ticket        uint64    `json:"ticket"`        // sales.ticket (assigned once at create)
}
