package handler

import (
	"log/slog"
	"net/http"
	"time"

	"crosspath/internal/delivery/http/response"
	"crosspath/internal/geohash"
	"crosspath/internal/usecase"
	"crosspath/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for location-related handlers
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// RecordLocationRequest represents the request body for a location tick
type RecordLocationRequest struct {
	Latitude       float64   `json:"latitude" validate:"min=-90,max=90"`
	Longitude      float64   `json:"longitude" validate:"min=-180,max=180"`
	AccuracyMeters float64   `json:"accuracy_meters" validate:"min=0"`
	AppState       string    `json:"app_state" validate:"omitempty,oneof=foreground background inactive"`
	IsVisible      *bool     `json:"is_visible,omitempty"`
	RecordedAt     time.Time `json:"recorded_at"`
}

// SetVisibilityRequest represents the request body for toggling visibility
type SetVisibilityRequest struct {
	IsVisible *bool `json:"is_visible" validate:"required"`
}

// RecordLocation handles a location tick from the client
func (h *LocationHandler) RecordLocation(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	var req RecordLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.RecordLocationInput{
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		AccuracyMeters: req.AccuracyMeters,
		AppState:       req.AppState,
		IsVisible:      req.IsVisible,
		RecordedAt:     req.RecordedAt,
	}

	tick, err := h.locationUC.RecordLocation(c.Request().Context(), userID, input)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, tick, "Location recorded successfully")
}

// GetLocation handles retrieving the user's live location
func (h *LocationHandler) GetLocation(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	location, err := h.locationUC.GetLocation(c.Request().Context(), userID)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, location, "Location retrieved successfully")
}

// SetVisibility handles toggling discoverability
func (h *LocationHandler) SetVisibility(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	var req SetVisibilityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid visibility input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	location, err := h.locationUC.SetVisibility(c.Request().Context(), userID, *req.IsVisible)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, location, "Visibility updated successfully")
}

// DeleteLocation handles removing the user's live location
func (h *LocationHandler) DeleteLocation(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	if err := h.locationUC.DeleteLocation(c.Request().Context(), userID); err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Location deleted successfully"}, "Location deleted successfully")
}

// handleError maps use case errors to API responses
func (h *LocationHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, impl.ErrNoLocation):
		return response.NotFound(c, "LOCATION_NOT_FOUND", "No live location on file")
	case errors.Is(err, impl.ErrInvalidAppState):
		return response.BadRequest(c, "INVALID_APP_STATE", "Unknown app state")
	case errors.Is(err, geohash.ErrInvalidLatitude), errors.Is(err, geohash.ErrInvalidLongitude):
		return response.BadRequest(c, "INVALID_COORDINATE", "Coordinate out of range")
	}

	return errors.WithStack(err)
}
