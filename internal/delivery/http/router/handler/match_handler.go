package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"crosspath/internal/delivery/http/response"
	"crosspath/internal/domain/entity"
	"crosspath/internal/usecase"
	"crosspath/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MatchHandlerParams holds dependencies for MatchHandler, injected by Fx.
type MatchHandlerParams struct {
	fx.In

	MatchUC usecase.MatchUsecase
	Logger  *slog.Logger
}

// MatchHandler holds dependencies for match-related handlers
type MatchHandler struct {
	matchUC usecase.MatchUsecase
	logger  *slog.Logger
}

// NewMatchHandler is the constructor for MatchHandler
func NewMatchHandler(params MatchHandlerParams) *MatchHandler {
	return &MatchHandler{
		matchUC: params.MatchUC,
		logger:  params.Logger,
	}
}

// ShareInstagramRequest represents the request body for sharing consent
type ShareInstagramRequest struct {
	Shared *bool `json:"shared" validate:"required"`
}

// RecordMessageRequest represents the chat preview pushed by the messaging
// collaborator
type RecordMessageRequest struct {
	Text     string    `json:"text" validate:"required,max=280"`
	SenderID uuid.UUID `json:"sender_id" validate:"required"`
	SentAt   time.Time `json:"sent_at"`
}

// Connect handles the connect decision on a proximity event
func (h *MatchHandler) Connect(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid event ID")
	}

	match, err := h.matchUC.Connect(c.Request().Context(), userID, eventID)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusCreated, match, "Connected successfully")
}

// Skip handles the skip decision on a proximity event
func (h *MatchHandler) Skip(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid event ID")
	}

	if err := h.matchUC.Skip(c.Request().Context(), userID, eventID); err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Event skipped"}, "Event skipped")
}

// ListMatches handles listing the user's matches
func (h *MatchHandler) ListMatches(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	matches, err := h.matchUC.ListMatches(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, matches, "Matches retrieved successfully")
}

// GetMatch handles retrieving a single match
func (h *MatchHandler) GetMatch(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid match ID")
	}

	match, err := h.matchUC.GetMatch(c.Request().Context(), userID, matchID)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, match, "Match retrieved successfully")
}

// ShareInstagram handles recording Instagram sharing consent
func (h *MatchHandler) ShareInstagram(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid match ID")
	}

	var req ShareInstagramRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sharing input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	match, err := h.matchUC.ShareInstagram(c.Request().Context(), userID, matchID, *req.Shared)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, match, "Instagram sharing updated successfully")
}

// RecordMessage handles the chat-preview update from the messaging service
func (h *MatchHandler) RecordMessage(c echo.Context) error {
	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid match ID")
	}

	var req RecordMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	preview := &entity.MessagePreview{
		Text:     req.Text,
		SenderID: req.SenderID,
		SentAt:   req.SentAt,
	}

	if err := h.matchUC.RecordLastMessage(c.Request().Context(), matchID, preview); err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Message recorded"}, "Message recorded")
}

// Unmatch handles soft-deleting a match
func (h *MatchHandler) Unmatch(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid match ID")
	}

	if err := h.matchUC.Unmatch(c.Request().Context(), userID, matchID); err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Match removed"}, "Match removed")
}

// handleError maps use case errors to API responses
func (h *MatchHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, impl.ErrEventNotFound):
		return response.NotFound(c, "EVENT_NOT_FOUND", "Proximity event not found")
	case errors.Is(err, impl.ErrNotEventParticipant):
		return response.Forbidden(c, "NOT_PARTICIPANT", "Not a participant of this event")
	case errors.Is(err, impl.ErrEventNotActionable):
		return response.Conflict(c, "EVENT_NOT_ACTIONABLE", "Proximity event is no longer active")
	case errors.Is(err, impl.ErrMatchNotFound):
		return response.NotFound(c, "MATCH_NOT_FOUND", "Match not found")
	case errors.Is(err, impl.ErrNotMatchParticipant):
		return response.Forbidden(c, "NOT_PARTICIPANT", "Not a participant of this match")
	}

	return errors.WithStack(err)
}
