package handler

import (
	"log/slog"
	"net/http"

	"crosspath/internal/delivery/http/response"
	"crosspath/internal/usecase"
	"crosspath/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device registration handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest represents the request body for registering a push device
type RegisterDeviceRequest struct {
	FCMToken string `json:"fcmToken" validate:"required"`
	DeviceID string `json:"deviceId" validate:"required"`
	Platform string `json:"platform" validate:"omitempty,oneof=ios android web"`
}

// RegisterDevice handles registering or refreshing a push device token
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), userID, &usecase.RegisterDeviceInput{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, device, "Device registered successfully")
}

// RemoveDevice handles deactivating a push device
func (h *DeviceHandler) RemoveDevice(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	deviceID := c.Param("deviceID")
	if deviceID == "" {
		return response.BadRequest(c, "INVALID_ID", "Device ID is required")
	}

	if err := h.deviceUC.RemoveDevice(c.Request().Context(), userID, deviceID); err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Device removed"}, "Device removed successfully")
}

// handleError maps use case errors to API responses
func (h *DeviceHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, impl.ErrInvalidDeviceInput):
		return response.BadRequest(c, "INVALID_DEVICE", "FCM token and device ID are required")
	case errors.Is(err, impl.ErrDeviceNotFound):
		return response.NotFound(c, "DEVICE_NOT_FOUND", "Device not found")
	}

	return errors.WithStack(err)
}
