package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/motorline/dealer-backend/internal/model"
)

type clientBody struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	ContactInfo string `json:"contactInfo"`
	Address     string `json:"address"`
	SalesPerson uint64 `json:"salesPerson"`
	PhotoURL    string `json:"photoURL"`
	Active      *bool  `json:"active"`
}

// ListClients handles GET /v1/clients.
func (h *RecordHandler) ListClients(c echo.Context) error {
	clients, err := h.Clients.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": clients})
}

// CreateClient handles POST /v1/clients. New clients always start active.
func (h *RecordHandler) CreateClient(c echo.Context) error {
	var body clientBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" || body.Email == "" || body.ContactInfo == "" ||
		body.Address == "" || body.SalesPerson == 0 {
		return badRequest(c, "all fields are required")
	}

	client := &model.Client{
		Name:        body.Name,
		Email:       body.Email,
		ContactInfo: body.ContactInfo,
		Address:     body.Address,
		SalesPerson: body.SalesPerson,
		PhotoURL:    body.PhotoURL,
		Active:      true,
	}
	if err := h.Clients.Create(c.Request().Context(), client); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": fmt.Sprintf("New client %s created", client.Name),
		"client":  client,
	})
}

// UpdateClient handles PATCH /v1/clients with the complete record.
func (h *RecordHandler) UpdateClient(c echo.Context) error {
	var body clientBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	body.Name = strings.TrimSpace(body.Name)
	if body.ID == 0 {
		return badRequest(c, "client id required")
	}
	if body.Name == "" || body.Email == "" || body.ContactInfo == "" ||
		body.Address == "" || body.SalesPerson == 0 || body.Active == nil {
		return badRequest(c, "all fields are required")
	}

	client := &model.Client{
		ID:          body.ID,
		Name:        body.Name,
		Email:       body.Email,
		ContactInfo: body.ContactInfo,
		Address:     body.Address,
		SalesPerson: body.SalesPerson,
		PhotoURL:    body.PhotoURL,
		Active:      *body.Active,
	}
	if err := h.Clients.Update(c.Request().Context(), client); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("%s updated", client.Name),
		"client":  client,
	})
}

// DeleteClient handles DELETE /v1/clients with the id in the body.
// The service refuses while sales still reference the client.
func (h *RecordHandler) DeleteClient(c echo.Context) error {
	var body struct {
		ID uint64 `json:"id"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.ID == 0 {
		return badRequest(c, "client id required")
	}
	deleted, err := h.Clients.Delete(c.Request().Context(), body.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("Client %s with ID %d deleted", deleted.Name, deleted.ID),
	})
}
