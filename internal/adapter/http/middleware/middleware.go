package middleware

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/apperror"
	"cryptopay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	HeaderAccessKey = "X-Merchant-Access-Key"
	HeaderSignature = "X-Signature"
	HeaderTimestamp = "X-Timestamp"
	HeaderNonce     = "X-Nonce"

	maxTimestampDrift = 60 * time.Second
	// Nonces outlive the drift window on both sides.
	nonceTTL    = 2 * maxTimestampDrift
	maxNonceLen = 64

	CtxMerchantID  = "merchant_id"
	CtxAccessKey   = "access_key"
	CtxMerchantKey = "merchant"
)

func abort(c *gin.Context, err error) {
	response.Error(c, err)
	c.Abort()
}

// HMACAuth authenticates merchant API calls: timestamp window, merchant
// status, nonce replay, then the signature over the canonical request.
func HMACAuth(
	merchantRepo ports.MerchantRepository,
	encSvc ports.EncryptionService,
	sigSvc ports.SignatureService,
	nonceStore ports.NonceStore,
	log zerolog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		accessKey := c.GetHeader(HeaderAccessKey)
		signature := c.GetHeader(HeaderSignature)
		timestampStr := c.GetHeader(HeaderTimestamp)
		nonce := c.GetHeader(HeaderNonce)

		if accessKey == "" || signature == "" || timestampStr == "" || nonce == "" || len(nonce) > maxNonceLen {
			abort(c, apperror.ErrInvalidAccessKey())
			return
		}

		timestamp, err := strconv.ParseInt(timestampStr, 10, 64)
		if err != nil {
			abort(c, apperror.ErrTimestampExpired())
			return
		}
		if drift := time.Since(time.Unix(timestamp, 0)).Abs(); drift > maxTimestampDrift {
			abort(c, apperror.ErrTimestampExpired())
			return
		}

		merchant, err := merchantRepo.GetByAccessKey(ctx, accessKey)
		if err != nil {
			log.Error().Err(err).Msg("failed to fetch merchant")
			abort(c, apperror.InternalError(err))
			return
		}
		if merchant == nil {
			abort(c, apperror.ErrInvalidAccessKey())
			return
		}
		if !merchant.IsActive() {
			abort(c, apperror.ErrMerchantSuspended())
			return
		}

		isNew, err := nonceStore.CheckAndSet(ctx, merchant.ID.String(), nonce, nonceTTL)
		switch {
		case err != nil:
			log.Warn().Err(err).Str("merchant_id", merchant.ID.String()).Msg("nonce store error, allowing request")
		case !isNew:
			abort(c, apperror.ErrNonceUsed())
			return
		}

		secretKey, err := encSvc.Decrypt(merchant.SecretKeyEnc)
		if err != nil {
			log.Error().Err(err).Str("merchant_id", merchant.ID.String()).Msg("failed to decrypt merchant secret key")
			abort(c, apperror.InternalError(err))
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				abort(c, apperror.ErrPayloadTooLarge())
				return
			}
			abort(c, apperror.Validation("cannot read request body"))
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		canonical := sigSvc.BuildCanonicalString(c.Request.Method, c.Request.URL.Path, timestamp, nonce, string(body))
		if !sigSvc.Verify(secretKey, canonical, signature) {
			abort(c, apperror.ErrInvalidSignature())
			return
		}

		c.Set(CtxMerchantID, merchant.ID)
		c.Set(CtxAccessKey, merchant.AccessKey)
		c.Set(CtxMerchantKey, merchant)
		c.Next()
	}
}

// JWTAuth validates dashboard bearer tokens.
func JWTAuth(tokenSvc ports.TokenService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || token == "" {
			abort(c, apperror.ErrInvalidToken())
			return
		}

		claims, err := tokenSvc.Validate(token)
		if err != nil {
			log.Debug().Err(err).Msg("rejected dashboard token")
			abort(c, apperror.ErrInvalidToken())
			return
		}

		c.Set(CtxMerchantID, claims.MerchantID)
		c.Set(CtxAccessKey, claims.AccessKey)
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event = event.
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP())
		if id, ok := c.Get(CtxMerchantID); ok {
			event = event.Interface("merchant_id", id)
		}
		event.Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Interface("panic", r).
					Str("request_id", c.GetString("request_id")).
					Str("path", c.Request.URL.Path).
					Msg("panic recovered")
				abort(c, apperror.InternalError(fmt.Errorf("panic: %v", r)))
			}
		}()
		c.Next()
	}
}
