package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"crosspath/internal/delivery/http/response"
	"crosspath/internal/domain/entity"
	"crosspath/internal/usecase"
	"crosspath/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProximityHandlerParams holds dependencies for ProximityHandler, injected by Fx.
type ProximityHandlerParams struct {
	fx.In

	ProximityUC usecase.ProximityUsecase
	Logger      *slog.Logger
}

// ProximityHandler holds dependencies for proximity-related handlers
type ProximityHandler struct {
	proximityUC usecase.ProximityUsecase
	logger      *slog.Logger
}

// NewProximityHandler is the constructor for ProximityHandler
func NewProximityHandler(params ProximityHandlerParams) *ProximityHandler {
	return &ProximityHandler{
		proximityUC: params.ProximityUC,
		logger:      params.Logger,
	}
}

// ScanNearby handles an on-demand nearby scan
func (h *ProximityHandler) ScanNearby(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	nearby, err := h.proximityUC.ScanNearby(c.Request().Context(), userID)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, nearby, "Nearby users retrieved successfully")
}

// ListEvents handles listing the user's proximity events
func (h *ProximityHandler) ListEvents(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	var statuses []entity.EventStatus
	if raw := c.QueryParam("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			statuses = append(statuses, entity.EventStatus(strings.TrimSpace(s)))
		}
	}

	events, err := h.proximityUC.ListEvents(c.Request().Context(), userID, statuses, limit, offset)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, events, "Proximity events retrieved successfully")
}

// GetEvent handles retrieving a single proximity event
func (h *ProximityHandler) GetEvent(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid event ID")
	}

	event, err := h.proximityUC.GetEvent(c.Request().Context(), userID, eventID)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, event, "Proximity event retrieved successfully")
}

// MarkEventViewed handles recording that the user saw an event
func (h *ProximityHandler) MarkEventViewed(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid event ID")
	}

	if err := h.proximityUC.MarkEventViewed(c.Request().Context(), userID, eventID); err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Event marked as viewed"}, "Event marked as viewed")
}

// handleError maps use case errors to API responses
func (h *ProximityHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, impl.ErrEventNotFound):
		return response.NotFound(c, "EVENT_NOT_FOUND", "Proximity event not found")
	case errors.Is(err, impl.ErrNotEventParticipant):
		return response.Forbidden(c, "NOT_PARTICIPANT", "Not a participant of this event")
	}

	return errors.WithStack(err)
}
