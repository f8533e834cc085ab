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

type saleBody struct {
	ID            uint64    `json:"id"`
	Buyer         uint64    `json:"buyer"`
	SaleDate      time.Time `json:"saleDate"`
	Quantity      int       `json:"quantity"`
	TotalPrice    int64     `json:"totalPrice"`
	PaymentMethod string    `json:"paymentMethod"`
	SalesPerson   uint64    `json:"salesPerson"`
}

// ListSales handles GET /v1/sales.
func (h *RecordHandler) ListSales(c echo.Context) error {
	sales, err := h.Sales.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": sales})
}

// CreateSale handles POST /v1/sales. The response includes the
// sequence-assigned ticket number since the caller displays it on the
// sale document. A sale.recorded event is published afterwards;
// publish failures are logged but never fail the request.
func (h *RecordHandler) CreateSale(c echo.Context) error {
	var body saleBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Buyer == 0 || body.SaleDate.IsZero() || body.Quantity == 0 ||
		body.TotalPrice == 0 || body.PaymentMethod == "" || body.SalesPerson == 0 {
		return badRequest(c, "all fields are required")
	}

	sale := &model.Sale{
		Buyer:         body.Buyer,
		SaleDate:      body.SaleDate,
		Quantity:      body.Quantity,
		TotalPrice:    body.TotalPrice,
		PaymentMethod: body.PaymentMethod,
		SalesPerson:   body.SalesPerson,
	}
	if err := h.Sales.Create(c.Request().Context(), sale); err != nil {
		return fail(c, err)
	}

	if err := queue.PublishSaleRecorded(c.Request().Context(), queue.SaleRecordedEvent{
		SaleID:        sale.ID,
		Ticket:        sale.Ticket,
		Buyer:         sale.Buyer,
		SalesPerson:   sale.SalesPerson,
		Quantity:      sale.Quantity,
		TotalPrice:    sale.TotalPrice,
		PaymentMethod: sale.PaymentMethod,
		SaleDate:      sale.SaleDate.UTC().Format(time.RFC3339),
	}); err != nil {
		log.Printf("sale %d: publish event failed: %v", sale.ID, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": fmt.Sprintf("New sale with ticket %d created", sale.Ticket),
		"sale":    sale,
	})
}

// UpdateSale handles PATCH /v1/sales. The ticket number is never
// changed by an update; the service carries the assigned one forward.
func (h *RecordHandler) UpdateSale(c echo.Context) error {
	var body saleBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.ID == 0 {
		return badRequest(c, "sale id required")
	}
	if body.Buyer == 0 || body.SaleDate.IsZero() || body.Quantity == 0 ||
		body.TotalPrice == 0 || body.PaymentMethod == "" || body.SalesPerson == 0 {
		return badRequest(c, "all fields are required")
	}

	sale := &model.Sale{
		ID:            body.ID,
		Buyer:         body.Buyer,
		SaleDate:      body.SaleDate,
		Quantity:      body.Quantity,
		TotalPrice:    body.TotalPrice,
		PaymentMethod: body.PaymentMethod,
		SalesPerson:   body.SalesPerson,
	}
	if err := h.Sales.Update(c.Request().Context(), sale); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("Sale %d updated", sale.ID),
		"sale":    sale,
	})
}

// DeleteSale handles DELETE /v1/sales with the id in the body.
func (h *RecordHandler) DeleteSale(c echo.Context) error {
	var body struct {
		ID uint64 `json:"id"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.ID == 0 {
		return badRequest(c, "sale id required")
	}
	deleted, err := h.Sales.Delete(c.Request().Context(), body.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("Sale with ticket %d deleted", deleted.Ticket),
	})
}
