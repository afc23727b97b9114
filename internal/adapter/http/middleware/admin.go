package middleware

import (
	"crypto/subtle"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/pkg/apperror"
	"cryptopay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	HeaderAdminToken    = "X-Admin-Token"
	HeaderObserverToken = "X-Observer-Token"

	// CtxActor holds the audit actor of an administrative request.
	CtxActor = "actor"
)

// AdminAuth accepts requests carrying one of the configured operator tokens.
// tokens maps operator name to token; the name becomes the audit actor.
func AdminAuth(tokens map[string]string, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		presented := c.GetHeader(HeaderAdminToken)
		if presented == "" {
			response.Error(c, apperror.ErrAdminUnauthorized())
			c.Abort()
			return
		}

		name, ok := matchToken(tokens, presented)
		if !ok {
			log.Warn().Str("client_ip", c.ClientIP()).Str("path", c.Request.URL.Path).Msg("rejected admin token")
			response.Error(c, apperror.ErrAdminUnauthorized())
			c.Abort()
			return
		}

		c.Set(CtxActor, domain.AdminActor(name))
		c.Next()
	}
}

// ObserverAuth guards chain event ingress. An empty token disables ingress.
func ObserverAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		presented := c.GetHeader(HeaderObserverToken)
		if token == "" || presented == "" ||
			subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			response.Error(c, apperror.ErrObserverUnauthorized())
			c.Abort()
			return
		}
		c.Next()
	}
}

// matchToken compares against every configured token so timing does not
// reveal which operator matched.
func matchToken(tokens map[string]string, presented string) (string, bool) {
	var matched string
	for name, token := range tokens {
		if token == "" {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) == 1 {
			matched = name
		}
	}
	return matched, matched != ""
}
