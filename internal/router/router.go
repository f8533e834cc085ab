// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/motorline/dealer-backend/internal/handler"
)

// RegisterRoutes registers the health check on the provided Echo
// instance. It can be used by load balancers or monitoring systems to
// verify that the service is up and running.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterRecords registers the record API under /v1. Each collection
// follows the same shape: GET lists, POST creates, PATCH updates and
// DELETE removes, with the record id carried in the body for PATCH and
// DELETE. The optional middleware (rate limiting first, then response
// caching for reads) is applied to the whole group.
func RegisterRecords(e *echo.Echo, h *handler.RecordHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/v1", mw...)

	g.GET("/cars", h.ListCars)
	g.POST("/cars", h.CreateCar)
	g.PATCH("/cars", h.UpdateCar)
	g.DELETE("/cars", h.DeleteCar)

	g.GET("/clients", h.ListClients)
	g.POST("/clients", h.CreateClient)
	g.PATCH("/clients", h.UpdateClient)
	g.DELETE("/clients", h.DeleteClient)

	g.GET("/users", h.ListUsers)
	g.POST("/users", h.CreateUser)
	g.PATCH("/users", h.UpdateUser)
	g.DELETE("/users", h.DeleteUser)

	g.GET("/sales", h.ListSales)
	g.POST("/sales", h.CreateSale)
	g.PATCH("/sales", h.UpdateSale)
	g.DELETE("/sales", h.DeleteSale)

	g.GET("/invoices", h.ListInvoices)
	g.POST("/invoices", h.CreateInvoice)
	g.PATCH("/invoices", h.UpdateInvoice)
	g.DELETE("/invoices", h.DeleteInvoice)

	g.GET("/inventory", h.ListInventory)
	g.POST("/inventory", h.CreateInventory)
	g.PATCH("/inventory", h.UpdateInventory)
	g.DELETE("/inventory", h.DeleteInventory)

	g.GET("/comments", h.ListComments)
	g.POST("/comments", h.CreateComment)
	g.PATCH("/comments", h.UpdateComment)
	g.DELETE("/comments", h.DeleteComment)

	g.GET("/images", h.ListImages)
	g.POST("/images", h.CreateImage)
	g.PATCH("/images", h.UpdateImage)
	g.DELETE("/images", h.DeleteImage)

	g.GET("/payments", h.ListPayments)
	g.POST("/payments", h.CreatePayment)
	g.PATCH("/payments", h.UpdatePayment)
	g.DELETE("/payments", h.DeletePayment)
}
