package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"ratehub/internal/auth"
	"ratehub/internal/errors"
	"ratehub/internal/query"
	"ratehub/internal/service"
)

// UserHandler handles normal-user endpoints.
type UserHandler struct {
	storeService  service.StoreService
	ratingService service.RatingService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(storeService service.StoreService, ratingService service.RatingService) *UserHandler {
	return &UserHandler{storeService: storeService, ratingService: ratingService}
}

// SubmitRatingRequest is the rating submission payload. Submitting for an
// already-rated store overwrites the previous value.
type SubmitRatingRequest struct {
	StoreID string `json:"storeId" validate:"required,uuid"`
	Value   int    `json:"value" validate:"required"`
}

// ListStores godoc
// @Summary List stores with the caller's own rating on each row
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param name query string false "Name substring"
// @Param address query string false "Address substring"
// @Success 200 {array} view.StoreUserView
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users/stores [get]
func (h *UserHandler) ListStores(c echo.Context) error {
	claims, err := auth.CurrentClaims(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	filter := query.Filter{
		Name:    c.QueryParam("name"),
		Address: c.QueryParam("address"),
	}

	stores, err := h.storeService.ListStoresForUser(c.Request().Context(), claims.UserID, filter)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, stores)
}

// SubmitRating godoc
// @Summary Submit or update a rating for a store
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SubmitRatingRequest true "Rating data"
// @Success 200 {object} view.RatingView
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/ratings [post]
func (h *UserHandler) SubmitRating(c echo.Context) error {
	claims, err := auth.CurrentClaims(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	var req SubmitRatingRequest
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

	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid storeId",
			Code:  "INVALID_UUID",
		})
	}

	rating, err := h.ratingService.SubmitRating(c.Request().Context(), claims.UserID, storeID, req.Value)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, rating)
}
