package handler

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/motorline/dealer-backend/internal/model"
	"github.com/motorline/dealer-backend/internal/queue"
)

type invoiceBody struct {
	ID          uint64     `json:"id"`
	SalesPerson uint64     `json:"salesPerson"`
	DueDate     *time.Time `json:"dueDate"`
	TotalAmount int64      `json:"totalAmount"`
	Paid        *bool      `json:"paid"`
}

// ListInvoices handles GET /v1/invoices.
func (h *RecordHandler) ListInvoices(c echo.Context) error {
	invoices, err := h.Invoices.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": invoices})
}

// CreateInvoice handles POST /v1/invoices, returning the assigned
// invoice number. An invoice.issued event is published afterwards.
func (h *RecordHandler) CreateInvoice(c echo.Context) error {
	var body invoiceBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.SalesPerson == 0 || body.TotalAmount == 0 {
		return badRequest(c, "salesPerson and totalAmount are required")
	}

	inv := &model.Invoice{
		SalesPerson: body.SalesPerson,
		DueDate:     body.DueDate,
		TotalAmount: body.TotalAmount,
	}
	if body.Paid != nil {
		inv.Paid = *body.Paid
	}
	if err := h.Invoices.Create(c.Request().Context(), inv); err != nil {
		return fail(c, err)
	}

	due := ""
	if inv.DueDate != nil {
		due = inv.DueDate.UTC().Format(time.RFC3339)
	}
	if err := queue.PublishInvoiceIssued(c.Request().Context(), queue.InvoiceIssuedEvent{
		InvoiceID:   inv.ID,
		Receive:     inv.Receive,
		SalesPerson: inv.SalesPerson,
		TotalAmount: inv.TotalAmount,
		DueDate:     due,
	}); err != nil {
		log.Printf("invoice %d: publish event failed: %v", inv.ID, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": fmt.Sprintf("New invoice %d created", inv.Receive),
		"invoice": inv,
	})
}

// UpdateInvoice handles PATCH /v1/invoices. The invoice number is
// carried forward by the service regardless of the payload.
func (h *RecordHandler) UpdateInvoice(c echo.Context) error {
	var body invoiceBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.ID == 0 {
		return badRequest(c, "invoice id required")
	}
	if body.SalesPerson == 0 || body.TotalAmount == 0 || body.Paid == nil {
		return badRequest(c, "all fields are required")
	}

	inv := &model.Invoice{
		ID:          body.ID,
		SalesPerson: body.SalesPerson,
		DueDate:     body.DueDate,
		TotalAmount: body.TotalAmount,
		Paid:        *body.Paid,
	}
	if err := h.Invoices.Update(c.Request().Context(), inv); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("Invoice %d updated", inv.Receive),
		"invoice": inv,
	})
}

// DeleteInvoice handles DELETE /v1/invoices with the id in the body.
func (h *RecordHandler) DeleteInvoice(c echo.Context) error {
	var body struct {
		ID uint64 `json:"id"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.ID == 0 {
		return badRequest(c, "invoice id required")
	}
	deleted, err := h.Invoices.Delete(c.Request().Context(), body.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("Invoice %d deleted", deleted.Receive),
	})
}
