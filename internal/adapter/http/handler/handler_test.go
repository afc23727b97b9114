package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cryptopay-gateway/internal/adapter/http/dto"
	"cryptopay-gateway/internal/adapter/http/middleware"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/internal/core/ports/mocks"
	"cryptopay-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestContext builds a gin context whose request carries body as JSON.
// A non-nil merchant is installed as the authenticated merchant.
func newTestContext(method, path string, body interface{}, merchant *uuid.UUID) (*httptest.ResponseRecorder, *gin.Context) {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	if merchant != nil {
		c.Set(middleware.CtxMerchantID, *merchant)
	}
	return w, c
}

func withParam(c *gin.Context, key, value string) {
	c.Params = append(c.Params, gin.Param{Key: key, Value: value})
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %s", w.Body.String())
	return data
}

func decodeErrorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	code, _ := resp["error_code"].(string)
	return code
}

// --- Auth Handler Tests ---

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	merchantID := uuid.New()
	mockAuth.EXPECT().Register(gomock.Any(), ports.RegisterRequest{
		Username:     "testuser",
		Password:     "password123",
		BusinessName: "Test Shop",
	}).Return(&ports.RegisterResponse{
		MerchantID:    merchantID,
		AccessKey:     "ak_test",
		SecretKey:     "sk_test",
		WebhookSecret: "whsec_test",
	}, nil)

	w, c := newTestContext(http.MethodPost, "/api/v1/auth/register", dto.RegisterRequest{
		Username:     "testuser",
		Password:     "password123",
		BusinessName: "Test Shop",
	}, nil)

	h.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, merchantID.String(), data["merchant_id"])
	assert.Equal(t, "ak_test", data["access_key"])
	assert.Equal(t, "sk_test", data["secret_key"])
	assert.Equal(t, "whsec_test", data["webhook_secret"])
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.Equal(t, "/api/v1/merchants/me", w.Header().Get("Location"))
}

func TestRegister_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	w, c := newTestContext(http.MethodPost, "/api/v1/auth/register", `{}`, nil)
	h.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "PAY_002", decodeErrorCode(t, w))
}

func TestRegister_RejectsNonHTTPWebhook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	w, c := newTestContext(http.MethodPost, "/api/v1/auth/register", map[string]interface{}{
		"username":      "shop",
		"password":      "password123",
		"business_name": "Shop",
		"webhook_url":   "ftp://example.com/hook",
	}, nil)
	h.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_UsernameTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	mockAuth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrUsernameExists())

	w, c := newTestContext(http.MethodPost, "/api/v1/auth/register", dto.RegisterRequest{
		Username:     "taken",
		Password:     "password123",
		BusinessName: "Shop",
	}, nil)
	h.Register(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "AUTH_002", decodeErrorCode(t, w))
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	expiry := time.Now().Add(24 * time.Hour)
	mockAuth.EXPECT().Login(gomock.Any(), "shop", "password123").Return("jwt-token", expiry, nil)

	w, c := newTestContext(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{
		Username: "shop",
		Password: "password123",
	}, nil)
	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "jwt-token", data["token"])
	assert.Equal(t, "Bearer", data["token_type"])
	assert.Equal(t, float64(expiry.Unix()), data["expiry"])
	assert.InDelta(t, float64(24*60*60), data["expires_in"], 5)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}

func TestLogin_ExpiredTokenReportsZeroTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)
	mockAuth.EXPECT().Login(gomock.Any(), "shop", "password123").Return("jwt-token", time.Now().Add(-time.Minute), nil)

	w, c := newTestContext(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Username: "shop", Password: "password123"}, nil)
	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decodeData(t, w)["expires_in"])
}

func TestLogin_MissingPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewAuthHandler(mocks.NewMockAuthService(ctrl))
	w, c := newTestContext(http.MethodPost, "/api/v1/auth/login", map[string]string{"username": "shop"}, nil)
	h.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "PAY_002", decodeErrorCode(t, w))
	assert.Empty(t, w.Header().Get("Cache-Control"))
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	mockAuth.EXPECT().Login(gomock.Any(), "shop", "wrong-password").
		Return("", time.Time{}, apperror.ErrInvalidCredentials())

	w, c := newTestContext(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{
		Username: "shop",
		Password: "wrong-password",
	}, nil)
	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_001", decodeErrorCode(t, w))
}

// --- Health ---

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Ping(context.Context) error { return s.err }
func (s stubChecker) Name() string               { return s.name }

// hangingChecker blocks until its context is cancelled.
type hangingChecker struct{}

func (hangingChecker) Ping(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}
func (hangingChecker) Name() string { return "rpc" }

func healthy(name string) ports.HealthChecker { return stubChecker{name: name} }

func failing(name string, err error) ports.HealthChecker { return stubChecker{name: name, err: err} }

func TestHealthCheck_AllHealthy(t *testing.T) {
	w, c := newTestContext(http.MethodGet, "/health", nil, nil)
	HealthCheck(healthy("postgresql"), healthy("redis"))(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"healthy"`)
}

func TestHealthCheck_Degraded(t *testing.T) {
	w, c := newTestContext(http.MethodGet, "/health", nil, nil)
	HealthCheck(healthy("postgresql"), failing("rabbitmq", errors.New("connection refused")))(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "degraded")
	assert.Contains(t, w.Body.String(), "connection refused")

	var body struct {
		Dependencies map[string]dependencyHealth `json:"dependencies"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Dependencies["postgresql"].Status)
	assert.Equal(t, "unhealthy", body.Dependencies["rabbitmq"].Status)
}

func TestHealthCheck_HangingDependencyTimesOut(t *testing.T) {
	w, c := newTestContext(http.MethodGet, "/health", nil, nil)
	start := time.Now()
	HealthCheck(healthy("redis"), hangingChecker{})(c)

	assert.Less(t, time.Since(start), healthPingTimeout+time.Second)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), context.DeadlineExceeded.Error())
}

// --- Swagger ---

func TestSwaggerUI(t *testing.T) {
	w, c := newTestContext(http.MethodGet, "/swagger", nil, nil)
	SwaggerUI(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "swagger-ui")
	assert.Contains(t, w.Body.String(), "/swagger/spec")
}

func TestSwaggerSpec_Loaded(t *testing.T) {
	SetSwaggerSpec([]byte("openapi: '3.0.0'\ninfo:\n  title: Test"))
	defer SetSwaggerSpec(nil)

	w, c := newTestContext(http.MethodGet, "/swagger/spec", nil, nil)
	SwaggerSpec(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "openapi")
}

func TestSwaggerSpec_NotLoaded(t *testing.T) {
	SetSwaggerSpec(nil)

	w, c := newTestContext(http.MethodGet, "/swagger/spec", nil, nil)
	SwaggerSpec(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
