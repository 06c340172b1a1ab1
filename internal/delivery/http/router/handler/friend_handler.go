package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"crosspath/internal/delivery/http/response"
	"crosspath/internal/domain/entity"
	"crosspath/internal/usecase"
	"crosspath/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FriendHandlerParams holds dependencies for FriendHandler, injected by Fx.
type FriendHandlerParams struct {
	fx.In

	FriendUC usecase.FriendUsecase
	Logger   *slog.Logger
}

// FriendHandler holds dependencies for friend-related handlers
type FriendHandler struct {
	friendUC usecase.FriendUsecase
	logger   *slog.Logger
}

// NewFriendHandler is the constructor for FriendHandler
func NewFriendHandler(params FriendHandlerParams) *FriendHandler {
	return &FriendHandler{
		friendUC: params.FriendUC,
		logger:   params.Logger,
	}
}

// RespondRequest represents the request body for answering a friend request
type RespondRequest struct {
	Accept *bool `json:"accept" validate:"required"`
}

// RequestFriend handles the friend-request decision on a proximity event
func (h *FriendHandler) RequestFriend(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid event ID")
	}

	request, err := h.friendUC.RequestFriend(c.Request().Context(), userID, eventID)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusCreated, request, "Friend request sent successfully")
}

// RespondToRequest handles accepting or rejecting a friend request
func (h *FriendHandler) RespondToRequest(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid request ID")
	}

	var req RespondRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid response input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	friend, err := h.friendUC.RespondToRequest(c.Request().Context(), userID, requestID, *req.Accept)
	if err != nil {
		return h.handleError(c, err)
	}

	if friend == nil {
		return response.Success(c, http.StatusOK, map[string]string{"message": "Friend request rejected"}, "Friend request rejected")
	}

	return response.Success(c, http.StatusCreated, friend, "Friend request accepted")
}

// ListIncomingRequests handles listing friend requests addressed to the user
func (h *FriendHandler) ListIncomingRequests(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	status := entity.FriendRequestStatus(c.QueryParam("status"))

	requests, err := h.friendUC.ListIncomingRequests(c.Request().Context(), userID, status, limit, offset)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, requests, "Friend requests retrieved successfully")
}

// ListFriends handles listing the user's friendships
func (h *FriendHandler) ListFriends(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	friends, err := h.friendUC.ListFriends(c.Request().Context(), userID)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, friends, "Friends retrieved successfully")
}

// handleError maps use case errors to API responses
func (h *FriendHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, impl.ErrEventNotFound):
		return response.NotFound(c, "EVENT_NOT_FOUND", "Proximity event not found")
	case errors.Is(err, impl.ErrNotEventParticipant):
		return response.Forbidden(c, "NOT_PARTICIPANT", "Not a participant of this event")
	case errors.Is(err, impl.ErrEventNotActionable):
		return response.Conflict(c, "EVENT_NOT_ACTIONABLE", "Proximity event is no longer active")
	case errors.Is(err, impl.ErrRequestNotFound):
		return response.NotFound(c, "REQUEST_NOT_FOUND", "Friend request not found")
	case errors.Is(err, impl.ErrNotRequestAddressee):
		return response.Forbidden(c, "NOT_ADDRESSEE", "Friend request is not addressed to this user")
	case errors.Is(err, impl.ErrRequestNotActionable):
		return response.Conflict(c, "REQUEST_NOT_PENDING", "Friend request is no longer pending")
	case errors.Is(err, impl.ErrAlreadyFriends):
		return response.Conflict(c, "ALREADY_FRIENDS", "Users are already friends")
	}

	return errors.WithStack(err)
}
