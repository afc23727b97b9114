package handler

import (
	"net/http"
	"testing"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockMerchantManagementService(ctrl)
	h := NewMerchantHandler(svc)
	mid := uuid.New()

	svc.EXPECT().GetProfile(gomock.Any(), mid).Return(&ports.MerchantProfile{
		ID:             mid,
		Username:       "shop",
		BusinessName:   "Shop",
		Status:         domain.MerchantStatusActive,
		DailyVolumeUSD: decimal.RequireFromString("120.50"),
	}, nil)

	w, c := newTestContext(http.MethodGet, "/api/v1/merchant/profile", nil, &mid)
	h.GetProfile(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "shop", data["username"])
	assert.Equal(t, "120.5", data["daily_volume_usd"])
}

func TestUpdateWebhookURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockMerchantManagementService(ctrl)
	h := NewMerchantHandler(svc)
	mid := uuid.New()
	url := "https://shop.example.com/hooks"

	svc.EXPECT().UpdateWebhookURL(gomock.Any(), mid, &url).Return(nil)

	w, c := newTestContext(http.MethodPut, "/api/v1/merchant/webhook", map[string]string{"webhook_url": url}, &mid)
	h.UpdateWebhookURL(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateWebhookURL_Clear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockMerchantManagementService(ctrl)
	h := NewMerchantHandler(svc)
	mid := uuid.New()

	svc.EXPECT().UpdateWebhookURL(gomock.Any(), mid, nil).Return(nil)

	w, c := newTestContext(http.MethodPut, "/api/v1/merchant/webhook", `{"webhook_url":null}`, &mid)
	h.UpdateWebhookURL(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateWebhookURL_RejectsNonHTTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewMerchantHandler(mocks.NewMockMerchantManagementService(ctrl))
	mid := uuid.New()

	w, c := newTestContext(http.MethodPut, "/api/v1/merchant/webhook",
		map[string]string{"webhook_url": "javascript:alert(1)"}, &mid)
	h.UpdateWebhookURL(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRotateKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockMerchantManagementService(ctrl)
	h := NewMerchantHandler(svc)
	mid := uuid.New()

	svc.EXPECT().RotateKeys(gomock.Any(), mid).Return(&ports.RotateKeysResponse{AccessKey: "ak_new", SecretKey: "sk_new"}, nil)

	w, c := newTestContext(http.MethodPost, "/api/v1/merchant/rotate-keys", nil, &mid)
	h.RotateKeys(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ak_new", decodeData(t, w)["access_key"])
}

func TestGetStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockReportingService(ctrl)
	h := NewDashboardHandler(svc)
	mid := uuid.New()

	svc.EXPECT().GetDashboardStats(gomock.Any(), mid, "week").Return(&ports.PaymentStats{
		TotalPayments: 10,
		Pending:       2,
		Completed:     7,
		Expired:       1,
		VolumeUSD:     decimal.RequireFromString("700"),
		FeesUSD:       decimal.RequireFromString("7"),
	}, nil)

	w, c := newTestContext(http.MethodGet, "/api/v1/dashboard/stats?period=week", nil, &mid)
	h.GetStats(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, float64(10), data["total_payments"])
	assert.Equal(t, "700", data["volume_usd"])
}

func TestGetStats_DefaultsToAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockReportingService(ctrl)
	h := NewDashboardHandler(svc)
	mid := uuid.New()

	svc.EXPECT().GetDashboardStats(gomock.Any(), mid, "all").Return(&ports.PaymentStats{}, nil)

	w, c := newTestContext(http.MethodGet, "/api/v1/dashboard/stats", nil, &mid)
	h.GetStats(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEnableSandbox(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockMerchantManagementService(ctrl)
	h := NewMerchantHandler(svc)
	mid := uuid.New()

	svc.EXPECT().EnableSandbox(gomock.Any(), mid).Return(&ports.MerchantProfile{
		ID:       mid,
		Username: "shop",
		Status:   domain.MerchantStatusActive,
		Sandbox:  true,
	}, nil)

	w, c := newTestContext(http.MethodPost, "/api/v1/merchants/me/sandbox", nil, &mid)
	h.EnableSandbox(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeData(t, w)["sandbox"])
}
