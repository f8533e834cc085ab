package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/motorline/dealer-backend/internal/model"
)

type inventoryBody struct {
	ID       uint64 `json:"id"`
	CarID    uint64 `json:"carID"`
	Quantity int    `json:"quantity"`
	Location string `json:"location"`
}

// ListInventory handles GET /v1/inventory.
func (h *RecordHandler) ListInventory(c echo.Context) error {
	items, err := h.Inventory.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// CreateInventory handles POST /v1/inventory.
func (h *RecordHandler) CreateInventory(c echo.Context) error {
	var body inventoryBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.CarID == 0 {
		return badRequest(c, "carID is required")
	}

	inv := &model.Inventory{
		CarID:    body.CarID,
		Quantity: body.Quantity,
		Location: body.Location,
	}
	if err := h.Inventory.Create(c.Request().Context(), inv); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":   fmt.Sprintf("New inventory record for car %d created", inv.CarID),
		"inventory": inv,
	})
}

// UpdateInventory handles PATCH /v1/inventory.
func (h *RecordHandler) UpdateInventory(c echo.Context) error {
	var body inventoryBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.ID == 0 {
		return badRequest(c, "inventory id required")
	}
	if body.CarID == 0 {
		return badRequest(c, "carID is required")
	}

	inv := &model.Inventory{
		ID:       body.ID,
		CarID:    body.CarID,
		Quantity: body.Quantity,
		Location: body.Location,
	}
	if err := h.Inventory.Update(c.Request().Context(), inv); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":   fmt.Sprintf("Inventory record %d updated", inv.ID),
		"inventory": inv,
	})
}

// DeleteInventory handles DELETE /v1/inventory with the id in the body.
func (h *RecordHandler) DeleteInventory(c echo.Context) error {
	var body struct {
		ID uint64 `json:"id"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.ID == 0 {
		return badRequest(c, "inventory id required")
	}
	deleted, err := h.Inventory.Delete(c.Request().Context(), body.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("Inventory record %d for car %d deleted", deleted.ID, deleted.CarID),
	})
}
