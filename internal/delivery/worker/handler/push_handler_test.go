package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"crosspath/config"
	"crosspath/internal/domain/entity"
	"crosspath/internal/domain/service"
	mockRepo "crosspath/internal/mocks/repository"
	mockSvc "crosspath/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushHandler(t *testing.T) (*PushHandler, *mockSvc.MockNotificationService, *mockRepo.MockDeviceRepository) {
	t.Helper()

	notificationSvc := mockSvc.NewMockNotificationService(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	handler := NewPushHandler(PushHandlerParams{
		Config:          &config.Config{},
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationSvc: notificationSvc,
		DeviceRepo:      deviceRepo,
	})

	return handler, notificationSvc, deviceRepo
}

func pushRequest(t *testing.T, event *service.EncounterEvent) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	pushMsg.Message.MessageID = "msg-1"
	pushMsg.Subscription = "projects/test/subscriptions/encounters"

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPushHandler_HandlePush_ProximityFanOut(t *testing.T) {
	handler, notificationSvc, deviceRepo := newPushHandler(t)

	userA := uuid.New()
	userB := uuid.New()
	event := &service.EncounterEvent{
		Kind:             service.EncounterKindProximity,
		ProximityEventID: uuid.New().String(),
		RecipientIDs:     []string{userA.String(), userB.String()},
		DisplayNames:     []string{"Sam", "Alex"},
		DistanceMeters:   42,
		LocationGeohash:  "wsqqqm",
	}

	deviceRepo.EXPECT().
		FindActiveDevicesByUsers(mock.Anything, []uuid.UUID{userA, userB}).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: userA, FCMToken: "token-a"},
			{ID: uuid.New(), UserID: userB, FCMToken: "token-b"},
		}, nil)

	// Each recipient gets a body naming their counterpart.
	notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"token-a"}, "Crossed paths", "Sam is about 42 meters away", mock.Anything).
		Return(1, 0, nil, nil)
	notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"token-b"}, "Crossed paths", "Alex is about 42 meters away", mock.Anything).
		Return(1, 0, nil, nil)

	c, rec := pushRequest(t, event)
	err := handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_MatchContent(t *testing.T) {
	handler, notificationSvc, deviceRepo := newPushHandler(t)

	recipient := uuid.New()
	matchID := uuid.New().String()
	event := &service.EncounterEvent{
		Kind:             service.EncounterKindMatch,
		ProximityEventID: uuid.New().String(),
		MatchID:          matchID,
		RecipientIDs:     []string{recipient.String()},
		DisplayNames:     []string{"Alex"},
	}

	deviceRepo.EXPECT().
		FindActiveDevicesByUsers(mock.Anything, []uuid.UUID{recipient}).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: recipient, FCMToken: "token-a"},
		}, nil)

	notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"token-a"}, "It's a match!", "You and Alex want to connect", mock.Anything).
		RunAndReturn(func(_ context.Context, _ []string, _, _ string, data map[string]string) (int, int, []string, error) {
			assert.Equal(t, service.EncounterKindMatch, data["kind"])
			assert.Equal(t, matchID, data["match_id"])

			return 1, 0, nil, nil
		})

	c, rec := pushRequest(t, event)
	err := handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_RetryableFailure(t *testing.T) {
	handler, _, deviceRepo := newPushHandler(t)

	event := &service.EncounterEvent{
		Kind:             service.EncounterKindProximity,
		ProximityEventID: uuid.New().String(),
		RecipientIDs:     []string{uuid.New().String()},
	}

	deviceRepo.EXPECT().
		FindActiveDevicesByUsers(mock.Anything, mock.AnythingOfType("[]uuid.UUID")).
		Return(nil, errors.New("connection refused"))

	c, rec := pushRequest(t, event)
	err := handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_InvalidTokenCleanup(t *testing.T) {
	handler, notificationSvc, deviceRepo := newPushHandler(t)

	recipient := uuid.New()
	staleDeviceID := uuid.New()
	event := &service.EncounterEvent{
		Kind:             service.EncounterKindProximity,
		ProximityEventID: uuid.New().String(),
		RecipientIDs:     []string{recipient.String()},
		DisplayNames:     []string{"Sam"},
	}

	deviceRepo.EXPECT().
		FindActiveDevicesByUsers(mock.Anything, []uuid.UUID{recipient}).
		Return([]*entity.UserDevice{
			{ID: staleDeviceID, UserID: recipient, FCMToken: "stale-token"},
		}, nil)

	notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"stale-token"}, mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).
		Return(0, 1, []string{"stale-token"}, nil)

	deviceRepo.EXPECT().
		DeactivateDevice(mock.Anything, staleDeviceID).
		Return(nil)

	c, rec := pushRequest(t, event)
	err := handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_BadPayload(t *testing.T) {
	handler, _, _ := newPushHandler(t)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = "not-base64!!!"
	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err = handler.HandlePush(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_NoDevices(t *testing.T) {
	handler, _, deviceRepo := newPushHandler(t)

	recipient := uuid.New()
	event := &service.EncounterEvent{
		Kind:             service.EncounterKindProximity,
		ProximityEventID: uuid.New().String(),
		RecipientIDs:     []string{recipient.String()},
	}

	deviceRepo.EXPECT().
		FindActiveDevicesByUsers(mock.Anything, []uuid.UUID{recipient}).
		Return([]*entity.UserDevice{}, nil)

	c, rec := pushRequest(t, event)
	err := handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
