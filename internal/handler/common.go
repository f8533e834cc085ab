// Package handler defines the HTTP handlers for the record API. The
// handlers are thin: they bind and normalize the JSON payload, call
// the record service, and translate typed service failures into HTTP
// statuses. All invariants live below, in the service layer.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/motorline/dealer-backend/internal/service"
)

// RecordHandler bundles the record services behind the HTTP surface.
type RecordHandler struct {
	Cars      *service.CarService
	Clients   *service.ClientService
	Users     *service.UserService
	Sales     *service.SaleService
	Invoices  *service.InvoiceService
	Inventory *service.InventoryService
	Comments  *service.CommentService
	Images    *service.ImageService
	Payments  *service.PaymentService

	// BcryptCost is used when hashing user passwords at this edge.
	BcryptCost int
}

// fail translates a service failure into the API's error responses.
// One reason is reported per failure, mirroring the service contract.
func fail(c echo.Context, err error) error {
	var dup *service.DuplicateError
	var inUse *service.InUseError
	switch {
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	case errors.As(err, &dup):
		return c.JSON(http.StatusConflict, echo.Map{
			"error":       "duplicate " + dup.Kind,
			"conflict_id": dup.ConflictID,
		})
	case errors.As(err, &inUse):
		return c.JSON(http.StatusConflict, echo.Map{
			"error":      inUse.Kind + " has assigned " + inUse.Dependent + " records",
			"blocked_by": inUse.Dependent,
		})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
}
