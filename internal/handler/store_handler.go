package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ratehub/internal/auth"
	"ratehub/internal/errors"
	"ratehub/internal/service"
)

// StoreHandler handles store-owner endpoints.
type StoreHandler struct {
	storeService service.StoreService
}

// NewStoreHandler creates a new store handler.
func NewStoreHandler(storeService service.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

// Dashboard godoc
// @Summary Store owner dashboard
// @Tags store
// @Produce json
// @Security BearerAuth
// @Success 200 {object} view.OwnerDashboardView
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /store/dashboard [get]
func (h *StoreHandler) Dashboard(c echo.Context) error {
	claims, err := auth.CurrentClaims(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	dashboard, err := h.storeService.OwnerDashboard(c.Request().Context(), claims.UserID, claims.Email)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, dashboard)
}
