package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/motorline/dealer-backend/internal/model"
	"github.com/motorline/dealer-backend/internal/utils"
)

type userBody struct {
	ID       uint64   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Roles    []string `json:"roles"`
	PhotoURL string   `json:"photoURL"`
	Active   *bool    `json:"active"`
}

// ListUsers handles GET /v1/users.
func (h *RecordHandler) ListUsers(c echo.Context) error {
	users, err := h.Users.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": users})
}

// CreateUser handles POST /v1/users. The plaintext password is hashed
// here, before the record service is involved.
func (h *RecordHandler) CreateUser(c echo.Context) error {
	var body userBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	body.Username = strings.TrimSpace(body.Username)
	if body.Username == "" || body.Email == "" || body.Password == "" || len(body.Roles) == 0 {
		return badRequest(c, "all fields are required")
	}

	hash, err := utils.HashPassword(body.Password, h.BcryptCost)
	if err != nil {
		return fail(c, err)
	}
	user := &model.User{
		Username:     body.Username,
		Email:        body.Email,
		PasswordHash: hash,
		Roles:        body.Roles,
		PhotoURL:     body.PhotoURL,
		Active:       true,
	}
	if err := h.Users.Create(c.Request().Context(), user); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": fmt.Sprintf("New user %s created", user.Username),
		"user":    user,
	})
}

// UpdateUser handles PATCH /v1/users. All fields except password are
// required; an omitted password keeps the stored hash.
func (h *RecordHandler) UpdateUser(c echo.Context) error {
	var body userBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	body.Username = strings.TrimSpace(body.Username)
	if body.ID == 0 {
		return badRequest(c, "user id required")
	}
	if body.Username == "" || body.Email == "" || len(body.Roles) == 0 || body.Active == nil {
		return badRequest(c, "all fields except password are required")
	}

	var hash string
	if body.Password != "" {
		var err error
		hash, err = utils.HashPassword(body.Password, h.BcryptCost)
		if err != nil {
			return fail(c, err)
		}
	}
	user := &model.User{
		ID:           body.ID,
		Username:     body.Username,
		Email:        body.Email,
		PasswordHash: hash, // empty means keep current, resolved by the service
		Roles:        body.Roles,
		PhotoURL:     body.PhotoURL,
		Active:       *body.Active,
	}
	if err := h.Users.Update(c.Request().Context(), user); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("%s updated", user.Username),
		"user":    user,
	})
}

// DeleteUser handles DELETE /v1/users with the id in the body. The
// service refuses while clients still list the user as sales person.
func (h *RecordHandler) DeleteUser(c echo.Context) error {
	var body struct {
		ID uint64 `json:"id"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.ID == 0 {
		return badRequest(c, "user id required")
	}
	deleted, err := h.Users.Delete(c.Request().Context(), body.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("User %s with ID %d deleted", deleted.Username, deleted.ID),
	})
}
