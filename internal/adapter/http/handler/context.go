package handler

import (
	"strconv"

	"cryptopay-gateway/internal/adapter/http/dto"
	"cryptopay-gateway/internal/adapter/http/middleware"
	"cryptopay-gateway/pkg/apperror"
	"cryptopay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// merchantID returns the authenticated merchant, writing a 401 when absent.
func merchantID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(middleware.CtxMerchantID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return uuid.Nil, false
	}
	return id, true
}

// uuidParam parses a path parameter, writing a 404 when it is not a uuid.
func uuidParam(c *gin.Context, name, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.Error(c, apperror.ErrNotFound(entity))
		return uuid.Nil, false
	}
	return id, true
}

// pagination reads limit/offset, clamping limit to [1, maxPageLimit].
func pagination(c *gin.Context) (limit, offset int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageLimit)))
	if err != nil || limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

// actor returns the audit actor set by AdminAuth.
func actor(c *gin.Context) string {
	return c.GetString(middleware.CtxActor)
}

// bindJSON decodes and sanitizes the request body, writing a 400 when it
// does not validate.
func bindJSON[T any](c *gin.Context) (*T, bool) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return nil, false
	}
	dto.SanitizeStruct(&req)
	return &req, true
}

// noStore keeps credentials out of shared caches.
func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
}
