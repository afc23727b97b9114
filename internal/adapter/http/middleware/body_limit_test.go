package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMaxBodySize(t *testing.T) {
	tests := []struct {
		name     string
		limit    int64
		body     string
		wantCode int
	}{
		{"under limit", 1024, "hello world", http.StatusOK},
		{"exact limit", 5, "12345", http.StatusOK},
		{"over limit", 16, strings.Repeat("A", 100), http.StatusRequestEntityTooLarge},
		{"empty body", 1024, "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(MaxBodySize(tt.limit))
			r.POST("/api/v1/payments", func(c *gin.Context) {
				b, err := io.ReadAll(c.Request.Body)
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					c.Status(http.StatusRequestEntityTooLarge)
					return
				}
				c.String(http.StatusOK, string(b))
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/payments", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, tt.body, w.Body.String())
			}
		})
	}
}

func TestMaxBodySize_SignedRequestTooLarge(t *testing.T) {
	f := newHMACFixture(t)
	merchant := activeMerchant()
	f.merchantRepo.EXPECT().GetByAccessKey(gomock.Any(), "ak_valid").Return(merchant, nil)
	f.nonceStore.EXPECT().CheckAndSet(gomock.Any(), merchant.ID.String(), "nonce-big", nonceTTL).Return(true, nil)
	f.encSvc.EXPECT().Decrypt("enc_secret").Return("raw_secret", nil)

	r := gin.New()
	r.Use(MaxBodySize(16))
	r.POST("/api/v1/payments", HMACAuth(f.merchantRepo, f.encSvc, f.sigSvc, f.nonceStore, zerolog.Nop()), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", strings.NewReader(strings.Repeat("A", 100)))
	for k, v := range signedHeaders("ak_valid", "nonce-big", time.Now().Unix()) {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, "PAY_013", errorCode(t, w))
}
