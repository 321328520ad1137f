package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"ratehub/internal/errors"
	"ratehub/internal/model"
	"ratehub/internal/query"
	"ratehub/internal/service"
)

// AdminHandler handles administrator endpoints.
type AdminHandler struct {
	storeService service.StoreService
	userService  service.UserService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(storeService service.StoreService, userService service.UserService) *AdminHandler {
	return &AdminHandler{storeService: storeService, userService: userService}
}

// CreateStoreRequest is the admin create-store payload.
type CreateStoreRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"required,max=400"`
}

// CreateUserRequest is the admin create-user payload.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=20,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Address  string `json:"address" validate:"required,max=400"`
	Role     string `json:"role" validate:"required,oneof=ADMIN USER STORE_OWNER"`
}

// sortFromQuery builds the requested ordering from sortBy/order params.
// Unknown fields are resolved downstream, not rejected here.
func sortFromQuery(c echo.Context) query.Sort {
	return query.Sort{
		Field: c.QueryParam("sortBy"),
		Order: query.Order(strings.ToUpper(c.QueryParam("order"))),
	}
}

// Dashboard godoc
// @Summary Admin summary counts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} view.DashboardStatsView
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	stats, err := h.storeService.DashboardStats(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, stats)
}

// CreateStore godoc
// @Summary Create a store
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateStoreRequest true "Store data"
// @Success 201 {object} model.Store
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /admin/stores [post]
func (h *AdminHandler) CreateStore(c echo.Context) error {
	var req CreateStoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  string(errors.KindValidation),
		})
	}

	store, err := h.storeService.CreateStore(c.Request().Context(), req.Name, req.Email, req.Address)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, store)
}

// CreateUser godoc
// @Summary Create a user of any role
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateUserRequest true "User data"
// @Success 201 {object} view.UserAdminView
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /admin/users [post]
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  string(errors.KindValidation),
		})
	}

	user, err := h.userService.CreateUser(c.Request().Context(), req.Name, req.Email, req.Password, req.Address, model.Role(req.Role))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, user)
}

// ListStores godoc
// @Summary List stores with aggregated ratings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param name query string false "Name substring"
// @Param email query string false "Email substring"
// @Param address query string false "Address substring"
// @Param sortBy query string false "Sort field"
// @Param order query string false "ASC or DESC"
// @Success 200 {array} view.StoreAdminView
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/stores [get]
func (h *AdminHandler) ListStores(c echo.Context) error {
	filter := query.Filter{
		Name:    c.QueryParam("name"),
		Email:   c.QueryParam("email"),
		Address: c.QueryParam("address"),
	}

	stores, err := h.storeService.ListStoresForAdmin(c.Request().Context(), filter, sortFromQuery(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, stores)
}

// ListUsers godoc
// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param name query string false "Name substring"
// @Param email query string false "Email substring"
// @Param address query string false "Address substring"
// @Param role query string false "Exact role"
// @Param sortBy query string false "Sort field"
// @Param order query string false "ASC or DESC"
// @Success 200 {array} view.UserAdminView
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	filter := query.Filter{
		Name:    c.QueryParam("name"),
		Email:   c.QueryParam("email"),
		Address: c.QueryParam("address"),
		Role:    model.Role(c.QueryParam("role")),
	}

	users, err := h.userService.ListUsers(c.Request().Context(), filter, sortFromQuery(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, users)
}
