// Package queue defines message payloads exchanged over the message
// broker and the background consumer that records them.
package queue

// SaleRecordedEvent is published when a sale is successfully created.
// Ticket numbers are externally visible business identifiers, so
// downstream consumers (receipt printing, analytics) get everything
// they need without querying the primary database.
type SaleRecordedEvent struct {
	SaleID        uint64 `json:"sale_id"`
	Ticket        uint64 `json:"ticket"`
	Buyer         uint64 `json:"buyer"`
	SalesPerson   uint64 `json:"sales_person"`
	Quantity      int    `json:"quantity"`
	TotalPrice    int64  `json:"total_price"`
	PaymentMethod string `json:"payment_method"`
	SaleDate      string `json:"sale_date"`
}

// InvoiceIssuedEvent is published when an invoice is successfully
// created, carrying its sequence-assigned number.
type InvoiceIssuedEvent struct {
	InvoiceID   uint64 `json:"invoice_id"`
	Receive     uint64 `json:"receive"`
	SalesPerson uint64 `json:"sales_person"`
	TotalAmount int64  `json:"total_amount"`
	DueDate     string `json:"due_date,omitempty"`
}
