package handler

import (
	"net/http"
	"path"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/userhub/accounts-api/internal/core/domain"
	"github.com/userhub/accounts-api/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type addUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

type updateUserRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// List returns every registered account.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  map[string]string
// @Router       /api/users/info [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// GetByID returns one account by id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/users/info/{id} [get]
func (h *UserHandler) GetByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	user, err := h.userService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Add registers a new account with the base permission level.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      addUserRequest  true  "Account details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Router       /api/users/add [post]
func (h *UserHandler) Add(c echo.Context) error {
	var req addUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.Create(c.Request().Context(), ports.NewUser{
		Name:     req.Name,
		Password: req.Password,
		Email:    req.Email,
	})
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation,
		path.Join(c.Request().URL.Path, strconv.FormatInt(user.ID, 10)))
	return c.JSON(http.StatusCreated, user)
}

// Update patches an account. Owner or admin only; at least one of name,
// password, email must be supplied.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  int                true  "User id"
// @Param        body  body  updateUserRequest  true  "Fields to change"
// @Success      204
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/users/update/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.userService.Update(c.Request().Context(), actor, id, domain.UserUpdate{
		Name:     req.Name,
		Password: req.Password,
		Email:    req.Email,
	}); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes an account. Admin only.
//
// @Summary      Delete a user
// @Tags         users
// @Security     BearerAuth
// @Param        id   path  int  true  "User id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/users/delete/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.userService.Delete(c.Request().Context(), actor, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// parseID reads the :id route parameter. A non-numeric id cannot match any
// account, so it reports not-found rather than bad-request.
func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusNotFound,
			"Could not find user with id: "+c.Param("id"))
	}
	return id, nil
}
