package handler

import (
	"time"

	"cryptopay-gateway/internal/adapter/http/dto"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler onboards merchants and issues dashboard tokens.
type AuthHandler struct {
	auth ports.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth ports.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /api/v1/auth/register. The API secret and the
// webhook secret appear in this response only.
func (h *AuthHandler) Register(c *gin.Context) {
	req, ok := bindJSON[dto.RegisterRequest](c)
	if !ok {
		return
	}

	creds, err := h.auth.Register(c.Request.Context(), ports.RegisterRequest{
		Username:     req.Username,
		Password:     req.Password,
		BusinessName: req.BusinessName,
		WebhookURL:   req.WebhookURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	noStore(c)
	c.Header("Location", "/api/v1/merchants/me")
	response.Created(c, dto.RegisterResponse{
		MerchantID:    creds.MerchantID.String(),
		AccessKey:     creds.AccessKey,
		SecretKey:     creds.SecretKey,
		WebhookSecret: creds.WebhookSecret,
	})
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	req, ok := bindJSON[dto.LoginRequest](c)
	if !ok {
		return
	}

	token, expiresAt, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	ttl := time.Until(expiresAt)
	if ttl < 0 {
		ttl = 0
	}
	noStore(c)
	response.OK(c, dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		Expiry:    expiresAt.Unix(),
		ExpiresIn: int64(ttl / time.Second),
	})
}
