package service

import (
	"context"
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/apperror"
	"cryptopay-gateway/pkg/secret"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"
	"github.com/mr-tron/base58"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	envelopeScheme   = "argon2id-aesgcm"
	keyCheckLen      = 16
	solanaKeypairLen = 64
)

var keyCheckLabel = []byte("cryptopay key check")

var errMalformedEnvelope = errors.New("malformed key envelope")

// KeyVaultImpl implements ports.KeyVault.
type KeyVaultImpl struct {
	walletRepo      ports.WalletRepository
	defaultPassword string
	params          argon2Params
	log             zerolog.Logger
}

// NewKeyVault creates a new KeyVaultImpl. defaultPassword seals keys created
// without a merchant password so that forwarding can sign unattended.
func NewKeyVault(walletRepo ports.WalletRepository, defaultPassword string, log zerolog.Logger) *KeyVaultImpl {
	return &KeyVaultImpl{
		walletRepo:      walletRepo,
		defaultPassword: defaultPassword,
		params:          defaultArgon2Params,
		log:             log,
	}
}

// Generate creates a new key for cryptoType. The raw key is returned once.
func (v *KeyVaultImpl) Generate(ctx context.Context, merchantID uuid.UUID, cryptoType domain.CryptoType, password string) (*ports.GeneratedWallet, error) {
	if !cryptoType.Valid() {
		return nil, apperror.ErrInvalidCryptoType(string(cryptoType))
	}

	var (
		raw      []byte
		address  string
		exported string
	)
	if cryptoType.Network().IsEVM() {
		key, err := crypto.GenerateKey()
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("generate evm key: %w", err))
		}
		raw = crypto.FromECDSA(key)
		address = crypto.PubkeyToAddress(key.PublicKey).Hex()
		exported = hex.EncodeToString(raw)
	} else {
		account := solana.NewWallet()
		raw = []byte(account.PrivateKey)
		address = account.PublicKey().String()
		exported = account.PrivateKey.String()
	}
	buf := secret.New(raw)
	defer buf.Destroy()

	record, err := v.store(ctx, merchantID, cryptoType, domain.WalletModeGenerated, address, buf, password)
	if err != nil {
		return nil, err
	}

	v.log.Info().
		Str("merchant_id", merchantID.String()).
		Str("wallet_id", record.ID.String()).
		Str("crypto_type", string(cryptoType)).
		Str("address", address).
		Msg("wallet generated")

	return &ports.GeneratedWallet{Wallet: record, PrivateKey: exported}, nil
}

// Import seals a merchant-supplied private key.
func (v *KeyVaultImpl) Import(ctx context.Context, merchantID uuid.UUID, cryptoType domain.CryptoType, privateKey, password string) (*domain.WalletRecord, error) {
	if !cryptoType.Valid() {
		return nil, apperror.ErrInvalidCryptoType(string(cryptoType))
	}

	raw, address, err := parsePrivateKey(cryptoType.Network(), privateKey)
	if err != nil {
		return nil, apperror.ErrInvalidPrivateKey()
	}
	buf := secret.New(raw)
	defer buf.Destroy()

	record, err := v.store(ctx, merchantID, cryptoType, domain.WalletModeImported, address, buf, password)
	if err != nil {
		return nil, err
	}

	v.log.Info().
		Str("merchant_id", merchantID.String()).
		Str("wallet_id", record.ID.String()).
		Str("crypto_type", string(cryptoType)).
		Msg("wallet imported")

	return record, nil
}

// ConfigureAddress records a payout address the gateway cannot sign for.
func (v *KeyVaultImpl) ConfigureAddress(ctx context.Context, merchantID uuid.UUID, cryptoType domain.CryptoType, address string) (*domain.WalletRecord, error) {
	if !cryptoType.Valid() {
		return nil, apperror.ErrInvalidCryptoType(string(cryptoType))
	}
	canonical, err := CanonicalAddress(cryptoType.Network(), address)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	record := &domain.WalletRecord{
		ID:               uuid.New(),
		MerchantID:       merchantID,
		CryptoType:       cryptoType,
		Network:          cryptoType.Network(),
		Address:          canonical,
		Mode:             domain.WalletModeAddressOnly,
		AvailableBalance: decimal.Zero,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := v.create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Unlock decrypts the wallet key. The caller owns the result and must Destroy it.
func (v *KeyVaultImpl) Unlock(ctx context.Context, walletID uuid.UUID, password string) (*ports.SigningKey, error) {
	wallet, err := v.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	if !wallet.CanSign() {
		return nil, apperror.ErrKeyUnavailable()
	}

	if password == "" {
		password = v.defaultPassword
	}
	if password == "" {
		return nil, apperror.ErrInvalidPassword()
	}

	raw, err := v.open(*wallet.EncryptedPrivateKey, password, wallet.Address)
	if err != nil {
		if errors.Is(err, errMalformedEnvelope) {
			return nil, apperror.InternalError(fmt.Errorf("wallet %s: %w", walletID, err))
		}
		v.log.Warn().Str("wallet_id", walletID.String()).Msg("wallet unlock rejected")
		return nil, apperror.ErrInvalidPassword()
	}

	return &ports.SigningKey{
		WalletID:   wallet.ID,
		CryptoType: wallet.CryptoType,
		Address:    wallet.Address,
		Secret:     secret.New(raw),
	}, nil
}

// WithKey unlocks the wallet for the duration of fn and wipes the key afterwards.
func (v *KeyVaultImpl) WithKey(ctx context.Context, walletID uuid.UUID, password string, fn func(key *ports.SigningKey) error) error {
	key, err := v.Unlock(ctx, walletID, password)
	if err != nil {
		return err
	}
	defer key.Destroy()
	return fn(key)
}

func (v *KeyVaultImpl) store(ctx context.Context, merchantID uuid.UUID, cryptoType domain.CryptoType, mode domain.WalletMode, address string, key *secret.Buffer, password string) (*domain.WalletRecord, error) {
	usesDefault := password == ""
	if usesDefault {
		if v.defaultPassword == "" {
			return nil, apperror.Validation("encryption_password is required")
		}
		password = v.defaultPassword
	}

	envelope, err := v.seal(key.Bytes(), password, address)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("seal key: %w", err))
	}

	now := time.Now().UTC()
	record := &domain.WalletRecord{
		ID:                  uuid.New(),
		MerchantID:          merchantID,
		CryptoType:          cryptoType,
		Network:             cryptoType.Network(),
		Address:             address,
		Mode:                mode,
		EncryptedPrivateKey: &envelope,
		UsesDefaultPassword: usesDefault,
		AvailableBalance:    decimal.Zero,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := v.create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (v *KeyVaultImpl) create(ctx context.Context, record *domain.WalletRecord) error {
	existing, err := v.walletRepo.Get(ctx, record.MerchantID, record.CryptoType, record.Mode)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("check wallet: %w", err))
	}
	if existing != nil {
		return apperror.ErrStateConflict("wallet already exists for this crypto type and mode")
	}
	if err := v.walletRepo.Create(ctx, record); err != nil {
		if errors.Is(err, ports.ErrDuplicateRecord) {
			return apperror.ErrStateConflict("wallet already exists for this crypto type and mode")
		}
		return apperror.InternalError(fmt.Errorf("create wallet: %w", err))
	}
	return nil
}

// seal renders $argon2id-aesgcm$v=19$m=..,t=..,p=..$<salt>$<check>$<nonce||ciphertext>.
// The address is bound as additional data so envelopes cannot be swapped between wallets.
func (v *KeyVaultImpl) seal(raw []byte, password, address string) (string, error) {
	salt, err := randomBytes(argon2SaltLen)
	if err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}
	kek := v.params.derive([]byte(password), salt)
	defer secret.Wipe(kek)

	aead, err := newGCM(kek)
	if err != nil {
		return "", err
	}
	sealed, err := sealGCM(aead, raw, []byte(address))
	if err != nil {
		return "", err
	}

	return "$" + envelopeScheme + "$" + v.params.encode() + "$" +
		b64.EncodeToString(salt) + "$" +
		b64.EncodeToString(keyCheck(kek)) + "$" +
		b64.EncodeToString(sealed), nil
}

func (v *KeyVaultImpl) open(envelope, password, address string) ([]byte, error) {
	parts := strings.Split(envelope, "$")
	if len(parts) != 7 || parts[1] != envelopeScheme {
		return nil, errMalformedEnvelope
	}
	params, err := parseArgon2Params(parts[2], parts[3])
	if err != nil {
		return nil, errMalformedEnvelope
	}
	params.keyLen = argon2KeyLen
	salt, err1 := b64.DecodeString(parts[4])
	check, err2 := b64.DecodeString(parts[5])
	sealed, err3 := b64.DecodeString(parts[6])
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, errMalformedEnvelope
	}

	kek := params.derive([]byte(password), salt)
	defer secret.Wipe(kek)

	// From here on every failure looks the same to the caller.
	wrong := errors.New("key envelope rejected")
	if subtle.ConstantTimeCompare(check, keyCheck(kek)) != 1 {
		return nil, wrong
	}
	aead, err := newGCM(kek)
	if err != nil {
		return nil, wrong
	}
	raw, err := openGCM(aead, sealed, []byte(address))
	if err != nil {
		return nil, wrong
	}
	return raw, nil
}

func keyCheck(kek []byte) []byte {
	mac := hmac.New(sha256.New, kek)
	mac.Write(keyCheckLabel)
	return mac.Sum(nil)[:keyCheckLen]
}

// parsePrivateKey validates an imported key and derives its address.
func parsePrivateKey(network domain.Network, privateKey string) ([]byte, string, error) {
	privateKey = strings.TrimSpace(privateKey)
	if network.IsEVM() {
		h := strings.TrimPrefix(strings.TrimPrefix(privateKey, "0x"), "0X")
		if len(h) != 64 {
			return nil, "", errors.New("evm key must be 64 hex characters")
		}
		key, err := crypto.HexToECDSA(h)
		if err != nil {
			return nil, "", err
		}
		return crypto.FromECDSA(key), crypto.PubkeyToAddress(key.PublicKey).Hex(), nil
	}

	decoded, err := base58.Decode(privateKey)
	if err != nil {
		return nil, "", err
	}
	if len(decoded) != solanaKeypairLen {
		secret.Wipe(decoded)
		return nil, "", errors.New("solana keypair must be 64 bytes")
	}
	derived := ed25519.NewKeyFromSeed(decoded[:ed25519.SeedSize])
	defer secret.Wipe(derived)
	if subtle.ConstantTimeCompare(derived[ed25519.SeedSize:], decoded[ed25519.SeedSize:]) != 1 {
		secret.Wipe(decoded)
		return nil, "", errors.New("solana public key does not match seed")
	}
	return decoded, solana.PrivateKey(decoded).PublicKey().String(), nil
}
