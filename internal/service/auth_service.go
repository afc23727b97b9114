package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuthServiceImpl implements ports.AuthService.
type AuthServiceImpl struct {
	merchantRepo ports.MerchantRepository
	hashSvc      ports.HashService
	encSvc       ports.EncryptionService
	tokenSvc     ports.TokenService
	audit        ports.AuditService
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	merchantRepo ports.MerchantRepository,
	hashSvc ports.HashService,
	encSvc ports.EncryptionService,
	tokenSvc ports.TokenService,
	audit ports.AuditService,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		merchantRepo: merchantRepo,
		hashSvc:      hashSvc,
		encSvc:       encSvc,
		tokenSvc:     tokenSvc,
		audit:        audit,
	}
}

// Register creates a new merchant account.
// Returns the API keys and webhook secret (plaintext shown only once).
// Wallets are created later, on first use or by explicit generate/import.
func (s *AuthServiceImpl) Register(ctx context.Context, req ports.RegisterRequest) (*ports.RegisterResponse, error) {
	existing, err := s.merchantRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check username: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrUsernameExists()
	}

	accessKey, err := generateKey("ak_", 24)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate access key: %w", err))
	}
	secretKey, err := generateKey("sk_", 32)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate secret key: %w", err))
	}
	webhookSecret, err := generateKey("whsec_", 32)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate webhook secret: %w", err))
	}

	// Hash password with Argon2id
	passwordHash, err := s.hashSvc.Hash(req.Password)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}

	// Secrets needed in plaintext later are encrypted with AES-256-GCM
	secretKeyEnc, err := s.encSvc.Encrypt(secretKey)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("encrypt secret key: %w", err))
	}
	webhookSecretEnc, err := s.encSvc.Encrypt(webhookSecret)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("encrypt webhook secret: %w", err))
	}

	now := time.Now().UTC()
	merchant := &domain.Merchant{
		ID:               uuid.New(),
		Username:         req.Username,
		PasswordHash:     passwordHash,
		BusinessName:     req.BusinessName,
		AccessKey:        accessKey,
		SecretKeyEnc:     secretKeyEnc,
		WebhookURL:       req.WebhookURL,
		WebhookSecretEnc: webhookSecretEnc,
		Status:           domain.MerchantStatusActive,
		DailyVolumeUSD:   decimal.Zero,
		DailyVolumeDate:  now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.merchantRepo.Create(ctx, merchant); err != nil {
		if errors.Is(err, ports.ErrDuplicateRecord) {
			return nil, apperror.ErrUsernameExists()
		}
		return nil, apperror.InternalError(fmt.Errorf("create merchant: %w", err))
	}

	merchantID := merchant.ID
	s.audit.Log(ctx, &domain.AuditLog{
		ID:           uuid.New(),
		MerchantID:   &merchantID,
		Actor:        domain.ActorMerchant,
		Action:       domain.AuditActionRegister,
		ResourceType: "merchant",
		ResourceID:   merchant.ID.String(),
		CreatedAt:    now,
	})

	return &ports.RegisterResponse{
		MerchantID:    merchant.ID,
		AccessKey:     accessKey,
		SecretKey:     secretKey,
		WebhookSecret: webhookSecret,
	}, nil
}

// Login validates credentials and returns a JWT token.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	merchant, err := s.merchantRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("find merchant: %w", err))
	}
	if merchant == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	valid, err := s.hashSvc.Verify(password, merchant.PasswordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	if !merchant.IsActive() {
		return "", time.Time{}, apperror.ErrMerchantSuspended()
	}

	token, expiry, err := s.tokenSvc.Generate(merchant.ID, merchant.AccessKey)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	merchantID := merchant.ID
	s.audit.Log(ctx, &domain.AuditLog{
		ID:           uuid.New(),
		MerchantID:   &merchantID,
		Actor:        domain.ActorMerchant,
		Action:       domain.AuditActionLogin,
		ResourceType: "session",
		CreatedAt:    time.Now().UTC(),
	})
	return token, expiry, nil
}

// generateKey returns prefix followed by n random bytes in hex.
func generateKey(prefix string, n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return prefix + hex.EncodeToString(b), nil
}
