package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"canteen/config"
	"canteen/internal/domain/constants"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/service"
	usecasemocks "canteen/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *usecasemocks.MockRatingUsecase) {
	t.Helper()

	ratingUC := usecasemocks.NewMockRatingUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:   &config.Config{},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		RatingUC: ratingUC,
	})

	return h, ratingUC
}

func pushBody(t *testing.T, event *service.ReviewCreatedEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	msg := PubSubMessage{Subscription: "projects/p/subscriptions/review-events"}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m1"
	msg.Message.Attributes = map[string]string{"request_id": "req-1"}

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	_ = h.HandlePush(c)

	return rec
}

func TestPushHandler_RefreshesCanteenAndDish(t *testing.T) {
	h, ratingUC := newTestPushHandler(t)
	ratingUC.EXPECT().RefreshSummary(mock.Anything, entity.RatingTargetCanteen, "c1").
		Return(&entity.RatingSummary{Average: 4, Count: 1}, nil).Once()
	ratingUC.EXPECT().RefreshSummary(mock.Anything, entity.RatingTargetDish, "d1").
		Return(&entity.RatingSummary{Average: 4, Count: 1}, nil).Once()

	rec := servePush(h, pushBody(t, &service.ReviewCreatedEvent{EventID: "e1", ReviewID: "r1", CanteenID: "c1", DishID: "d1", Rating: 4}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_NoTargetIsAcknowledged(t *testing.T) {
	h, _ := newTestPushHandler(t)

	rec := servePush(h, pushBody(t, &service.ReviewCreatedEvent{EventID: "e1", ReviewID: "r1"}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_StoreErrorIsRetried(t *testing.T) {
	h, ratingUC := newTestPushHandler(t)
	ratingUC.EXPECT().RefreshSummary(mock.Anything, entity.RatingTargetCanteen, "c1").
		Return(nil, errors.New("server selection timeout"))

	rec := servePush(h, pushBody(t, &service.ReviewCreatedEvent{EventID: "e1", ReviewID: "r1", CanteenID: "c1"}))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_MissingTargetIsAcknowledged(t *testing.T) {
	h, ratingUC := newTestPushHandler(t)
	ratingUC.EXPECT().RefreshSummary(mock.Anything, entity.RatingTargetDish, "gone").
		Return(nil, domainerrors.NewResourceNotFoundError(domainerrors.ResourceDish, "gone"))

	rec := servePush(h, pushBody(t, &service.ReviewCreatedEvent{EventID: "e1", ReviewID: "r1", DishID: "gone"}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "bad base64", body: `{"message":{"data":"%%%"}}`},
		{name: "payload not an event", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[1,2]")) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t)

			rec := servePush(h, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesTokenForGoogleOutsideDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = "production"
	h := NewPushHandler(PushHandlerParams{
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		RatingUC: usecasemocks.NewMockRatingUsecase(t),
	})
	require.True(t, h.verifyPushAuth)
	h.verifyToken = func(*http.Request) error { return errors.New("invalid issuer") }

	rec := servePush(h, pushBody(t, &service.ReviewCreatedEvent{EventID: "e1", ReviewID: "r1", CanteenID: "c1"}))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewPushHandler_SkipsVerificationInDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvDevelop

	h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.Default()})

	assert.False(t, h.verifyPushAuth)
}

func TestVerifyPubSubToken_RejectsMissingBearer(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	require.EqualError(t, verifyPubSubToken(req), "missing authorization header")

	req.Header.Set("Authorization", "Basic abc")
	require.EqualError(t, verifyPubSubToken(req), "invalid authorization header format")
}
