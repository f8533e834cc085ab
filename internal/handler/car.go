package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/motorline/dealer-backend/internal/model"
)

// carBody is the full car payload; PATCH carries the id as well. The
// transport always supplies the complete record, so updates replace
// every mutable field at once.
type carBody struct {
	ID          uint64   `json:"id"`
	Make        string   `json:"make"`
	Model       string   `json:"model"`
	Year        int      `json:"year"`
	Price       int64    `json:"price"`
	Description string   `json:"description"`
	Photos      []string `json:"photos"`
	Active      *bool    `json:"active"`
}

// ListCars handles GET /v1/cars.
func (h *RecordHandler) ListCars(c echo.Context) error {
	cars, err := h.Cars.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": cars})
}

// CreateCar handles POST /v1/cars. New cars always start active.
func (h *RecordHandler) CreateCar(c echo.Context) error {
	var body carBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	body.Make = strings.TrimSpace(body.Make)
	body.Model = strings.TrimSpace(body.Model)
	if body.Make == "" || body.Model == "" || body.Year == 0 || body.Price == 0 {
		return badRequest(c, "make, model, year and price are required")
	}
	if body.Photos == nil {
		body.Photos = []string{}
	}

	car := &model.Car{
		Make:        body.Make,
		Model:       body.Model,
		Year:        body.Year,
		Price:       body.Price,
		Description: body.Description,
		Photos:      body.Photos,
		Active:      true,
	}
	if err := h.Cars.Create(c.Request().Context(), car); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": fmt.Sprintf("New car %s - %s created", car.Make, car.Model),
		"car":     car,
	})
}

// UpdateCar handles PATCH /v1/cars. The body must carry the id and the
// complete record; partial patches are not supported.
func (h *RecordHandler) UpdateCar(c echo.Context) error {
	var body carBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	body.Make = strings.TrimSpace(body.Make)
	body.Model = strings.TrimSpace(body.Model)
	if body.ID == 0 {
		return badRequest(c, "car id required")
	}
	if body.Make == "" || body.Model == "" || body.Year == 0 || body.Price == 0 || body.Active == nil {
		return badRequest(c, "all fields are required")
	}
	if body.Photos == nil {
		body.Photos = []string{}
	}

	car := &model.Car{
		ID:          body.ID,
		Make:        body.Make,
		Model:       body.Model,
		Year:        body.Year,
		Price:       body.Price,
		Description: body.Description,
		Photos:      body.Photos,
		Active:      *body.Active,
	}
	if err := h.Cars.Update(c.Request().Context(), car); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("%s updated", car.Make),
		"car":     car,
	})
}

// DeleteCar handles DELETE /v1/cars with the id in the body. The
// service refuses while inventory still references the car.
func (h *RecordHandler) DeleteCar(c echo.Context) error {
	var body struct {
		ID uint64 `json:"id"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.ID == 0 {
		return badRequest(c, "car id required")
	}
	deleted, err := h.Cars.Delete(c.Request().Context(), body.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("Car %s with ID %d deleted", deleted.Make, deleted.ID),
	})
}
