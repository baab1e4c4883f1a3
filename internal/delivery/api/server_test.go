package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"

	"canteen/config"
	apimiddleware "canteen/internal/delivery/api/middleware"
	"canteen/internal/delivery/api/response"
	"canteen/internal/delivery/api/router"
	"canteen/internal/delivery/api/router/handler"
	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/service"
	servicemocks "canteen/internal/mocks/service"
	usecasemocks "canteen/internal/mocks/usecase"
	"canteen/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

const canteenHexID = "64b7f0c2e1a4c3b2a1d0e9f8"

type apiHarness struct {
	canteenUC *usecasemocks.MockCanteenUsecase
	dishUC    *usecasemocks.MockDishUsecase
	userUC    *usecasemocks.MockUserUsecase
	reviewUC  *usecasemocks.MockReviewUsecase
	mediaUC   *usecasemocks.MockMediaUsecase
	tokenSvc  *servicemocks.MockTokenService
	handler   http.Handler
}

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  *response.MetaInfo  `json:"meta"`
}

func newAPIHarness(t *testing.T, testRoutes bool) *apiHarness {
	t.Helper()

	cfg := &config.Config{TestRoutes: &config.TestRoutesConfig{Enabled: testRoutes}}
	cfg.HTTP.MaxRequestBodySize = "1MB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := &apiHarness{
		canteenUC: usecasemocks.NewMockCanteenUsecase(t),
		dishUC:    usecasemocks.NewMockDishUsecase(t),
		userUC:    usecasemocks.NewMockUserUsecase(t),
		reviewUC:  usecasemocks.NewMockReviewUsecase(t),
		mediaUC:   usecasemocks.NewMockMediaUsecase(t),
		tokenSvc:  servicemocks.NewMockTokenService(t),
	}

	srv, err := NewServer(ServerParams{
		Lc:     fxtest.NewLifecycle(t),
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			CanteenHandler: handler.NewCanteenHandler(handler.CanteenHandlerParams{CanteenUC: h.canteenUC, Logger: logger}),
			DishHandler:    handler.NewDishHandler(handler.DishHandlerParams{DishUC: h.dishUC, Logger: logger}),
			UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{UserUC: h.userUC, Logger: logger}),
			ReviewHandler:  handler.NewReviewHandler(handler.ReviewHandlerParams{ReviewUC: h.reviewUC, Logger: logger}),
			MediaHandler:   handler.NewMediaHandler(handler.MediaHandlerParams{MediaUC: h.mediaUC, Logger: logger}),
			TestHandler:    handler.NewTestHandler(),
			AuthMiddleware: apimiddleware.NewAuthMiddleware(h.tokenSvc),
			Config:         cfg,
		},
	})
	require.NoError(t, err)
	h.handler = srv.(*apiServer).server

	return h
}

func (h *apiHarness) do(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, req)

	var body envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}

	return rec, body
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	return req
}

func TestServer_Health(t *testing.T) {
	h := newAPIHarness(t, false)

	rec, body := h.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(body.Data))
	require.NotNil(t, body.Meta)
	assert.NotEmpty(t, body.Meta.RequestID)
	assert.Equal(t, body.Meta.RequestID, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_CanteenRoutes(t *testing.T) {
	t.Run("search is not captured by id", func(t *testing.T) {
		h := newAPIHarness(t, false)
		h.canteenUC.EXPECT().SearchCanteens(mock.Anything, "north").
			Return([]*entity.Canteen{{ID: canteenHexID, Name: "North Canteen"}}, nil)

		rec, body := h.do(t, httptest.NewRequest(http.MethodGet, "/api/canteens/search?keyword=north", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(body.Data), "North Canteen")
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		h := newAPIHarness(t, false)
		h.canteenUC.EXPECT().GetCanteen(mock.Anything, "missing").
			Return(nil, domainerrors.NewResourceNotFoundError(domainerrors.ResourceCanteen, "missing"))

		rec, body := h.do(t, httptest.NewRequest(http.MethodGet, "/api/canteens/missing", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "CANTEEN_NOT_FOUND", body.Error.Code)
		assert.Equal(t, "Canteen not found with id: missing", body.Error.Message)
	})

	t.Run("create validates name", func(t *testing.T) {
		h := newAPIHarness(t, false)

		rec, body := h.do(t, jsonRequest(http.MethodPost, "/api/canteens", `{"location":"Block A"}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Equal(t, "name is required", body.Error.Details)
	})

	t.Run("create returns 201", func(t *testing.T) {
		h := newAPIHarness(t, false)
		h.canteenUC.EXPECT().CreateCanteen(mock.Anything, &usecase.CreateCanteenInput{Name: "North Canteen", Location: "Block A"}).
			Return(&entity.Canteen{ID: canteenHexID, Name: "North Canteen", Location: "Block A"}, nil)

		rec, body := h.do(t, jsonRequest(http.MethodPost, "/api/canteens", `{"name":"North Canteen","location":"Block A"}`))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, string(body.Data), canteenHexID)
	})

	t.Run("qrcode is png", func(t *testing.T) {
		h := newAPIHarness(t, false)
		png := []byte("\x89PNG\r\n\x1a\n")
		h.canteenUC.EXPECT().GetCanteenQRCode(mock.Anything, canteenHexID).Return(png, nil)

		rec, _ := h.do(t, httptest.NewRequest(http.MethodGet, "/api/canteens/"+canteenHexID+"/qrcode", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("scanned link resolves to canteen", func(t *testing.T) {
		h := newAPIHarness(t, false)
		link := "http://localhost:8080/api/canteens/" + canteenHexID
		h.canteenUC.EXPECT().ResolveCanteenQRCode(mock.Anything, link).
			Return(&entity.Canteen{ID: canteenHexID, Name: "North Canteen"}, nil)

		target := "/api/canteens/qrcode/resolve?data=" + url.QueryEscape(link)
		rec, body := h.do(t, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(body.Data), canteenHexID)
	})

	t.Run("foreign scan is 400", func(t *testing.T) {
		h := newAPIHarness(t, false)
		h.canteenUC.EXPECT().ResolveCanteenQRCode(mock.Anything, "hello").
			Return(nil, domainerrors.ErrValidationFailed.WithDetails("data is not a canteen QR code"))

		rec, body := h.do(t, httptest.NewRequest(http.MethodGet, "/api/canteens/qrcode/resolve?data=hello", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	})
}

func TestServer_DishRoutes(t *testing.T) {
	t.Run("by canteen", func(t *testing.T) {
		h := newAPIHarness(t, false)
		h.dishUC.EXPECT().ListDishesByCanteen(mock.Anything, canteenHexID).
			Return([]*entity.Dish{{ID: "d1", Name: "Spicy Noodles", Canteen: &entity.Canteen{ID: canteenHexID}}}, nil)

		rec, body := h.do(t, httptest.NewRequest(http.MethodGet, "/api/dishes/canteen/"+canteenHexID, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(body.Data), "Spicy Noodles")
	})

	t.Run("search with empty result is an empty list", func(t *testing.T) {
		h := newAPIHarness(t, false)
		h.dishUC.EXPECT().SearchDishes(mock.Anything, "zzz").Return([]*entity.Dish{}, nil)

		rec, body := h.do(t, httptest.NewRequest(http.MethodGet, "/api/dishes/search?keyword=zzz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, string(body.Data))
	})

	t.Run("create rejects negative price", func(t *testing.T) {
		h := newAPIHarness(t, false)

		rec, body := h.do(t, jsonRequest(http.MethodPost, "/api/dishes",
			`{"name":"Spicy Noodles","price":-1,"canteenId":"`+canteenHexID+`"}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "price must be greater than or equal to 0", body.Error.Details)
	})

	t.Run("create with unknown canteen is 404", func(t *testing.T) {
		h := newAPIHarness(t, false)
		h.dishUC.EXPECT().CreateDish(mock.Anything, mock.MatchedBy(func(in *usecase.CreateDishInput) bool {
			return in.CanteenID == "nope" && in.Price == 12.5
		})).Return(nil, domainerrors.NewResourceNotFoundError(domainerrors.ResourceCanteen, "nope"))

		rec, body := h.do(t, jsonRequest(http.MethodPost, "/api/dishes",
			`{"name":"Spicy Noodles","price":12.5,"tags":["spicy"],"canteenId":"nope"}`))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "CANTEEN_NOT_FOUND", body.Error.Code)
	})
}

func TestServer_UserRoutes(t *testing.T) {
	t.Run("register returns 201 without password hash", func(t *testing.T) {
		h := newAPIHarness(t, false)
		h.userUC.EXPECT().Register(mock.Anything, &usecase.RegisterUserInput{Username: "alice", Password: "secret1"}).
			Return(&entity.User{ID: "u1", Username: "alice", PasswordHash: "$2a$10$hash"}, nil)

		rec, body := h.do(t, jsonRequest(http.MethodPost, "/api/users/register", `{"username":"alice","password":"secret1"}`))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.NotContains(t, string(body.Data), "hash")
	})

	t.Run("duplicate username is 409", func(t *testing.T) {
		h := newAPIHarness(t, false)
		h.userUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)

		rec, body := h.do(t, jsonRequest(http.MethodPost, "/api/users/register", `{"username":"alice","password":"secret1"}`))

		assert.Equal(t, http.StatusConflict, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "USER_ALREADY_EXISTS", body.Error.Code)
	})

	t.Run("bad login is 401", func(t *testing.T) {
		h := newAPIHarness(t, false)
		h.userUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Username: "alice", Password: "wrong"}).
			Return(nil, domainerrors.ErrInvalidCredentials)

		rec, body := h.do(t, jsonRequest(http.MethodPost, "/api/users/login", `{"username":"alice","password":"wrong"}`))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "INVALID_CREDENTIALS", body.Error.Code)
		assert.Nil(t, body.Error.Details)
	})

	t.Run("me requires a token", func(t *testing.T) {
		h := newAPIHarness(t, false)

		rec, body := h.do(t, httptest.NewRequest(http.MethodGet, "/api/users/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
	})

	t.Run("me returns the token user", func(t *testing.T) {
		h := newAPIHarness(t, false)
		h.tokenSvc.EXPECT().ValidateToken("tok").Return(&service.Claims{UserID: "u1", Type: service.TokenTypeAccess}, nil)
		h.userUC.EXPECT().GetUser(mock.Anything, "u1").Return(&entity.User{ID: "u1", Username: "alice"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		req.Header.Set("Authorization", "Bearer tok")
		rec, body := h.do(t, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(body.Data), "alice")
	})
}

func TestServer_ReviewRoutes(t *testing.T) {
	t.Run("token subject fills the user", func(t *testing.T) {
		h := newAPIHarness(t, false)
		h.tokenSvc.EXPECT().ValidateToken("tok").Return(&service.Claims{UserID: "u1", Type: service.TokenTypeAccess}, nil)
		h.reviewUC.EXPECT().CreateReview(mock.Anything, &usecase.CreateReviewInput{
			Content:   "great",
			Rating:    5,
			UserID:    "u1",
			CanteenID: canteenHexID,
		}).Return(&entity.Review{ID: "r1", Content: "great", Rating: 5}, nil)

		req := jsonRequest(http.MethodPost, "/api/reviews", `{"content":"great","rating":5,"canteenId":"`+canteenHexID+`"}`)
		req.Header.Set("Authorization", "Bearer tok")
		rec, _ := h.do(t, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("anonymous review needs a user id", func(t *testing.T) {
		h := newAPIHarness(t, false)

		rec, body := h.do(t, jsonRequest(http.MethodPost, "/api/reviews", `{"content":"great","rating":5}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "userId is required", body.Error.Details)
	})

	t.Run("rating outside 1..5 is accepted", func(t *testing.T) {
		h := newAPIHarness(t, false)
		h.reviewUC.EXPECT().CreateReview(mock.Anything, mock.MatchedBy(func(in *usecase.CreateReviewInput) bool {
			return in.Rating == 42 && in.UserID == canteenHexID
		})).Return(&entity.Review{ID: "r1", Rating: 42}, nil)

		rec, _ := h.do(t, jsonRequest(http.MethodPost, "/api/reviews", `{"rating":42,"userId":"`+canteenHexID+`"}`))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("list by dish", func(t *testing.T) {
		h := newAPIHarness(t, false)
		h.reviewUC.EXPECT().ListReviewsByDish(mock.Anything, "d1").Return([]*entity.Review{{ID: "r1"}}, nil)

		rec, _ := h.do(t, httptest.NewRequest(http.MethodGet, "/api/reviews/dish/d1", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestServer_UploadImage(t *testing.T) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="noodles.png"`)
	header.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	h := newAPIHarness(t, false)
	h.mediaUC.EXPECT().UploadImage(mock.Anything, mock.MatchedBy(func(in *usecase.UploadImageInput) bool {
		return in.Filename == "noodles.png" && in.ContentType == "image/png" && in.Size == int64(len("png-bytes"))
	})).Return(&service.StoredImage{ObjectKey: "abc.png", URL: "http://cdn/images/abc.png"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/media/images", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec, body := h.do(t, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(body.Data), "http://cdn/images/abc.png")
}

func TestServer_TestRoutesAreConfigGated(t *testing.T) {
	rec, _ := newAPIHarness(t, false).do(t, httptest.NewRequest(http.MethodGet, "/test/public", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = newAPIHarness(t, true).do(t, httptest.NewRequest(http.MethodGet, "/test/public", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
