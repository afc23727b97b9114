package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionPaymentCreate     AuditAction = "PAYMENT_CREATE"
	AuditActionRefund            AuditAction = "REFUND"
	AuditActionWalletGenerate    AuditAction = "WALLET_GENERATE"
	AuditActionWalletImport      AuditAction = "WALLET_IMPORT"
	AuditActionWalletConfigure   AuditAction = "WALLET_CONFIGURE"
	AuditActionWithdrawalCreate  AuditAction = "WITHDRAWAL_CREATE"
	AuditActionWithdrawalProcess AuditAction = "WITHDRAWAL_PROCESS"
	AuditActionWithdrawalApprove AuditAction = "WITHDRAWAL_APPROVE"
	AuditActionWithdrawalReject  AuditAction = "WITHDRAWAL_REJECT"
	AuditActionForceTransition   AuditAction = "FORCE_TRANSITION"
	AuditActionMerchantStatus    AuditAction = "MERCHANT_STATUS"
	AuditActionMerchantKYC       AuditAction = "MERCHANT_KYC"
	AuditActionWebhookRedeliver  AuditAction = "WEBHOOK_REDELIVER"
	AuditActionRegister          AuditAction = "REGISTER"
	AuditActionLogin             AuditAction = "LOGIN"
	AuditActionRotateKeys        AuditAction = "ROTATE_KEYS"
	AuditActionUpdateWebhook     AuditAction = "UPDATE_WEBHOOK"
	AuditActionSandboxEnable     AuditAction = "SANDBOX_ENABLE"
	AuditActionSandboxSimulate   AuditAction = "SANDBOX_SIMULATE"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	MerchantID   *uuid.UUID  `json:"merchant_id,omitempty"`
	Actor        string      `json:"actor"` // "merchant", "system" or "admin:<name>"
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}

const (
	ActorMerchant = "merchant"
	ActorSystem   = "system"
)

// AdminActor names an administrator for the audit trail.
func AdminActor(name string) string {
	return "admin:" + name
}
