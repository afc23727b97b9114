package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type auditRoute struct {
	action       domain.AuditAction
	resourceType string
}

// auditedRoutes lists writes whose services do not audit themselves.
var auditedRoutes = map[string]auditRoute{
	"POST /api/v1/payments":                          {domain.AuditActionPaymentCreate, "payment"},
	"POST /api/v1/wallets/generate":                  {domain.AuditActionWalletGenerate, "wallet"},
	"POST /api/v1/wallets/import":                    {domain.AuditActionWalletImport, "wallet"},
	"POST /api/v1/wallets/configure-address":         {domain.AuditActionWalletConfigure, "wallet"},
	"POST /api/v1/withdrawals/:id/process":           {domain.AuditActionWithdrawalProcess, "withdrawal"},
	"POST /api/v1/webhooks/deliveries/:id/redeliver": {domain.AuditActionWebhookRedeliver, "webhook_delivery"},
}

// AuditLog records successful write operations after the handler ran.
// Routes are matched by template, so path parameters become the resource id.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return
		}

		action, resourceType := mapRouteToAction(c.Request.Method, c.FullPath())
		if action == "" {
			return
		}

		var merchantID *uuid.UUID
		if mid, exists := c.Get(CtxMerchantID); exists {
			if id, ok := mid.(uuid.UUID); ok {
				merchantID = &id
			}
		}
		actor := domain.ActorMerchant
		if a := c.GetString(CtxActor); a != "" {
			actor = a
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": status,
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			MerchantID:   merchantID,
			Actor:        actor,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   c.Param("id"),
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now().UTC(),
		})
	}
}

func mapRouteToAction(method, route string) (domain.AuditAction, string) {
	r, ok := auditedRoutes[method+" "+route]
	if !ok {
		return "", ""
	}
	return r.action, r.resourceType
}
