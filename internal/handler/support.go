package handler

// Handlers for the supporting record kinds: comments, images and
// payments. Same shape as the main kinds, no guard involvement.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/motorline/dealer-backend/internal/model"
)

type commentBody struct {
	ID          uint64    `json:"id"`
	RelatedSale uint64    `json:"relatedSale"`
	Comment     string    `json:"comment"`
	CreatedBy   uint64    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (h *RecordHandler) ListComments(c echo.Context) error {
	items, err := h.Comments.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

func (h *RecordHandler) CreateComment(c echo.Context) error {
	var body commentBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.RelatedSale == 0 || body.Comment == "" || body.CreatedBy == 0 {
		return badRequest(c, "all fields are required")
	}
	if body.CreatedAt.IsZero() {
		body.CreatedAt = time.Now().UTC()
	}

	cm := &model.Comment{
		RelatedSale: body.RelatedSale,
		Comment:     body.Comment,
		CreatedBy:   body.CreatedBy,
		CreatedAt:   body.CreatedAt,
	}
	if err := h.Comments.Create(c.Request().Context(), cm); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "New comment created", "comment": cm})
}

func (h *RecordHandler) UpdateComment(c echo.Context) error {
	var body commentBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.ID == 0 {
		return badRequest(c, "comment id required")
	}
	if body.RelatedSale == 0 || body.Comment == "" || body.CreatedBy == 0 {
		return badRequest(c, "all fields are required")
	}

	cm := &model.Comment{
		ID:          body.ID,
		RelatedSale: body.RelatedSale,
		Comment:     body.Comment,
		CreatedBy:   body.CreatedBy,
		CreatedAt:   body.CreatedAt,
	}
	if err := h.Comments.Update(c.Request().Context(), cm); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": fmt.Sprintf("Comment %d updated", cm.ID), "comment": cm})
}

func (h *RecordHandler) DeleteComment(c echo.Context) error {
	var body struct {
		ID uint64 `json:"id"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.ID == 0 {
		return badRequest(c, "comment id required")
	}
	deleted, err := h.Comments.Delete(c.Request().Context(), body.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": fmt.Sprintf("Comment %d deleted", deleted.ID)})
}

type imageBody struct {
	ID      uint64 `json:"id"`
	LinkURL string `json:"linkURL"`
	CarID   uint64 `json:"carID"`
}

func (h *RecordHandler) ListImages(c echo.Context) error {
	items, err := h.Images.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

func (h *RecordHandler) CreateImage(c echo.Context) error {
	var body imageBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.LinkURL == "" || body.CarID == 0 {
		return badRequest(c, "linkURL and carID are required")
	}

	img := &model.Image{LinkURL: body.LinkURL, CarID: body.CarID}
	if err := h.Images.Create(c.Request().Context(), img); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "New image created", "image": img})
}

func (h *RecordHandler) UpdateImage(c echo.Context) error {
	var body imageBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.ID == 0 {
		return badRequest(c, "image id required")
	}
	if body.LinkURL == "" || body.CarID == 0 {
		return badRequest(c, "linkURL and carID are required")
	}

	img := &model.Image{ID: body.ID, LinkURL: body.LinkURL, CarID: body.CarID}
	if err := h.Images.Update(c.Request().Context(), img); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": fmt.Sprintf("Image %d updated", img.ID), "image": img})
}

func (h *RecordHandler) DeleteImage(c echo.Context) error {
	var body struct {
		ID uint64 `json:"id"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.ID == 0 {
		return badRequest(c, "image id required")
	}
	deleted, err := h.Images.Delete(c.Request().Context(), body.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": fmt.Sprintf("Image %d deleted", deleted.ID)})
}

type paymentBody struct {
	ID          uint64    `json:"id"`
	PaymentDate time.Time `json:"paymentDate"`
	Amount      int64     `json:"amount"`
}

func (h *RecordHandler) ListPayments(c echo.Context) error {
	items, err := h.Payments.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

func (h *RecordHandler) CreatePayment(c echo.Context) error {
	var body paymentBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.PaymentDate.IsZero() || body.Amount == 0 {
		return badRequest(c, "paymentDate and amount are required")
	}

	p := &model.Payment{PaymentDate: body.PaymentDate, Amount: body.Amount}
	if err := h.Payments.Create(c.Request().Context(), p); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "New payment created", "payment": p})
}

func (h *RecordHandler) UpdatePayment(c echo.Context) error {
	var body paymentBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.ID == 0 {
		return badRequest(c, "payment id required")
	}
	if body.PaymentDate.IsZero() || body.Amount == 0 {
		return badRequest(c, "paymentDate and amount are required")
	}

	p := &model.Payment{ID: body.ID, PaymentDate: body.PaymentDate, Amount: body.Amount}
	if err := h.Payments.Update(c.Request().Context(), p); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": fmt.Sprintf("Payment %d updated", p.ID), "payment": p})
}

func (h *RecordHandler) DeletePayment(c echo.Context) error {
	var body struct {
		ID uint64 `json:"id"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.ID == 0 {
		return badRequest(c, "payment id required")
	}
	deleted, err := h.Payments.Delete(c.Request().Context(), body.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": fmt.Sprintf("Payment %d deleted", deleted.ID)})
}
