package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type merchantService struct {
	merchantRepo ports.MerchantRepository
	encSvc       ports.EncryptionService
	audit        ports.AuditService
	log          zerolog.Logger
}

// NewMerchantService creates a new merchant management service.
func NewMerchantService(
	merchantRepo ports.MerchantRepository,
	encSvc ports.EncryptionService,
	audit ports.AuditService,
	log zerolog.Logger,
) ports.MerchantManagementService {
	return &merchantService{
		merchantRepo: merchantRepo,
		encSvc:       encSvc,
		audit:        audit,
		log:          log,
	}
}

func (s *merchantService) load(ctx context.Context, merchantID uuid.UUID) (*domain.Merchant, error) {
	merchant, err := s.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get merchant: %w", err))
	}
	if merchant == nil {
		return nil, apperror.ErrNotFound("merchant")
	}
	return merchant, nil
}

func (s *merchantService) GetProfile(ctx context.Context, merchantID uuid.UUID) (*ports.MerchantProfile, error) {
	merchant, err := s.load(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	return profileOf(merchant), nil
}

func profileOf(merchant *domain.Merchant) *ports.MerchantProfile {
	return &ports.MerchantProfile{
		ID:             merchant.ID,
		Username:       merchant.Username,
		BusinessName:   merchant.BusinessName,
		WebhookURL:     merchant.WebhookURL,
		Status:         merchant.Status,
		KYCVerified:    merchant.KYCVerified,
		Sandbox:        merchant.Sandbox,
		DailyVolumeUSD: merchant.VolumeUsedOn(time.Now().UTC()),
		CreatedAt:      merchant.CreatedAt.Format(time.RFC3339),
	}
}

func (s *merchantService) UpdateWebhookURL(ctx context.Context, merchantID uuid.UUID, webhookURL *string) error {
	merchant, err := s.load(ctx, merchantID)
	if err != nil {
		return err
	}

	merchant.WebhookURL = webhookURL
	merchant.UpdatedAt = time.Now().UTC()

	if err := s.merchantRepo.Update(ctx, merchant); err != nil {
		return apperror.InternalError(fmt.Errorf("update merchant: %w", err))
	}
	s.record(ctx, merchant.ID, domain.ActorMerchant, domain.AuditActionUpdateWebhook, nil)
	return nil
}

func (s *merchantService) RotateKeys(ctx context.Context, merchantID uuid.UUID) (*ports.RotateKeysResponse, error) {
	merchant, err := s.load(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	newAccessKey, err := generateKey("ak_", 24)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate access key: %w", err))
	}
	newSecretKey, err := generateKey("sk_", 32)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate secret key: %w", err))
	}

	encSecretKey, err := s.encSvc.Encrypt(newSecretKey)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("encrypt secret key: %w", err))
	}

	merchant.AccessKey = newAccessKey
	merchant.SecretKeyEnc = encSecretKey
	merchant.UpdatedAt = time.Now().UTC()

	if err := s.merchantRepo.Update(ctx, merchant); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update merchant: %w", err))
	}
	s.record(ctx, merchant.ID, domain.ActorMerchant, domain.AuditActionRotateKeys, nil)

	return &ports.RotateKeysResponse{
		AccessKey: newAccessKey,
		SecretKey: newSecretKey,
	}, nil
}

// SetStatus suspends or reactivates a merchant. Suspended merchants keep
// their records but cannot create payments or withdrawals.
func (s *merchantService) SetStatus(ctx context.Context, merchantID uuid.UUID, status domain.MerchantStatus, actor string) error {
	switch status {
	case domain.MerchantStatusActive, domain.MerchantStatusSuspended, domain.MerchantStatusDeactivated:
	default:
		return apperror.Validation("invalid merchant status: " + string(status))
	}

	merchant, err := s.load(ctx, merchantID)
	if err != nil {
		return err
	}
	if merchant.Status == status {
		return nil
	}
	from := merchant.Status
	merchant.Status = status
	merchant.UpdatedAt = time.Now().UTC()

	if err := s.merchantRepo.Update(ctx, merchant); err != nil {
		return apperror.InternalError(fmt.Errorf("update merchant: %w", err))
	}
	s.record(ctx, merchant.ID, actor, domain.AuditActionMerchantStatus, map[string]any{
		"from": from,
		"to":   status,
	})
	s.log.Warn().
		Str("merchant_id", merchant.ID.String()).
		Str("actor", actor).
		Str("status", string(status)).
		Msg("merchant status changed")
	return nil
}

// SetKYC records the merchant's verification state. Verified merchants are
// exempt from the daily volume cap.
func (s *merchantService) SetKYC(ctx context.Context, merchantID uuid.UUID, verified bool, actor string) error {
	merchant, err := s.load(ctx, merchantID)
	if err != nil {
		return err
	}
	if merchant.KYCVerified == verified {
		return nil
	}
	merchant.KYCVerified = verified
	merchant.UpdatedAt = time.Now().UTC()

	if err := s.merchantRepo.Update(ctx, merchant); err != nil {
		return apperror.InternalError(fmt.Errorf("update merchant: %w", err))
	}
	s.record(ctx, merchant.ID, actor, domain.AuditActionMerchantKYC, map[string]any{"verified": verified})
	s.log.Info().
		Str("merchant_id", merchant.ID.String()).
		Str("actor", actor).
		Bool("kyc_verified", verified).
		Msg("merchant kyc changed")
	return nil
}

// EnableSandbox lets the merchant confirm its payments by simulation. Funds
// credited that way never leave the gateway.
func (s *merchantService) EnableSandbox(ctx context.Context, merchantID uuid.UUID) (*ports.MerchantProfile, error) {
	merchant, err := s.load(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	if merchant.Sandbox {
		return profileOf(merchant), nil
	}
	merchant.Sandbox = true
	merchant.UpdatedAt = time.Now().UTC()

	if err := s.merchantRepo.Update(ctx, merchant); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update merchant: %w", err))
	}
	s.record(ctx, merchant.ID, domain.ActorMerchant, domain.AuditActionSandboxEnable, nil)
	s.log.Info().Str("merchant_id", merchant.ID.String()).Msg("sandbox mode enabled")
	return profileOf(merchant), nil
}

func (s *merchantService) record(ctx context.Context, merchantID uuid.UUID, actor string, action domain.AuditAction, details map[string]any) {
	entry := &domain.AuditLog{
		ID:           uuid.New(),
		MerchantID:   &merchantID,
		Actor:        actor,
		Action:       action,
		ResourceType: "merchant",
		ResourceID:   merchantID.String(),
		CreatedAt:    time.Now().UTC(),
	}
	if details != nil {
		b, _ := json.Marshal(details)
		entry.Details = string(b)
	}
	s.audit.Log(ctx, entry)
}
