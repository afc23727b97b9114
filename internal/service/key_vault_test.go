package service

import (
	"context"
	"encoding/hex"
	"strings"
	"testing"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/internal/core/ports/mocks"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type keyVaultTestDeps struct {
	vault      *KeyVaultImpl
	walletRepo *mocks.MockWalletRepository
	ctrl       *gomock.Controller
}

func setupKeyVault(t *testing.T, defaultPassword string) *keyVaultTestDeps {
	ctrl := gomock.NewController(t)
	d := &keyVaultTestDeps{
		walletRepo: mocks.NewMockWalletRepository(ctrl),
		ctrl:       ctrl,
	}
	d.vault = NewKeyVault(d.walletRepo, defaultPassword, zerolog.Nop())
	// Cheap KDF cost keeps the suite fast; the envelope records it.
	d.vault.params = argon2Params{memory: 1024, time: 1, threads: 1, keyLen: argon2KeyLen}
	return d
}

// expectCreate captures the persisted record.
func (d *keyVaultTestDeps) expectCreate(ctx context.Context, merchantID uuid.UUID, ct domain.CryptoType, mode domain.WalletMode) *domain.WalletRecord {
	stored := &domain.WalletRecord{}
	d.walletRepo.EXPECT().Get(ctx, merchantID, ct, mode).Return(nil, nil)
	d.walletRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, w *domain.WalletRecord) error {
		*stored = *w
		return nil
	})
	return stored
}

func TestKeyVault_Generate_EVM_RoundTrip(t *testing.T) {
	d := setupKeyVault(t, "")
	ctx := context.Background()
	merchantID := uuid.New()

	stored := d.expectCreate(ctx, merchantID, domain.CryptoETH, domain.WalletModeGenerated)

	gen, err := d.vault.Generate(ctx, merchantID, domain.CryptoETH, "hunter2!")
	require.NoError(t, err)
	require.NotNil(t, gen.Wallet)

	key, err := crypto.HexToECDSA(gen.PrivateKey)
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey).Hex(), gen.Wallet.Address)
	assert.Equal(t, domain.NetworkEthereum, stored.Network)
	assert.False(t, stored.UsesDefaultPassword)
	require.NotNil(t, stored.EncryptedPrivateKey)
	assert.True(t, strings.HasPrefix(*stored.EncryptedPrivateKey, "$argon2id-aesgcm$v=19$m=1024,t=1,p=1$"))
	assert.NotContains(t, *stored.EncryptedPrivateKey, gen.PrivateKey)

	d.walletRepo.EXPECT().GetByID(ctx, stored.ID).Return(stored, nil)
	signing, err := d.vault.Unlock(ctx, stored.ID, "hunter2!")
	require.NoError(t, err)
	defer signing.Destroy()
	assert.Equal(t, gen.PrivateKey, hex.EncodeToString(signing.Secret.Bytes()))
	assert.Equal(t, stored.Address, signing.Address)
}

func TestKeyVault_Generate_Solana_RoundTrip(t *testing.T) {
	d := setupKeyVault(t, "")
	ctx := context.Background()
	merchantID := uuid.New()

	stored := d.expectCreate(ctx, merchantID, domain.CryptoSOL, domain.WalletModeGenerated)

	gen, err := d.vault.Generate(ctx, merchantID, domain.CryptoSOL, "pw")
	require.NoError(t, err)

	pk, err := solana.PrivateKeyFromBase58(gen.PrivateKey)
	require.NoError(t, err)
	assert.Equal(t, pk.PublicKey().String(), gen.Wallet.Address)

	d.walletRepo.EXPECT().GetByID(ctx, stored.ID).Return(stored, nil)
	signing, err := d.vault.Unlock(ctx, stored.ID, "pw")
	require.NoError(t, err)
	defer signing.Destroy()
	assert.Equal(t, []byte(pk), signing.Secret.Bytes())
}

func TestKeyVault_Generate_DefaultPassword(t *testing.T) {
	d := setupKeyVault(t, "platform-default")
	ctx := context.Background()
	merchantID := uuid.New()

	stored := d.expectCreate(ctx, merchantID, domain.CryptoBNB, domain.WalletModeGenerated)

	_, err := d.vault.Generate(ctx, merchantID, domain.CryptoBNB, "")
	require.NoError(t, err)
	assert.True(t, stored.UsesDefaultPassword)

	d.walletRepo.EXPECT().GetByID(ctx, stored.ID).Return(stored, nil)
	signing, err := d.vault.Unlock(ctx, stored.ID, "")
	require.NoError(t, err)
	signing.Destroy()
}

func TestKeyVault_Generate_NoPasswordNoDefault(t *testing.T) {
	d := setupKeyVault(t, "")

	_, err := d.vault.Generate(context.Background(), uuid.New(), domain.CryptoETH, "")
	assertAppError(t, err, "PAY_002")
}

func TestKeyVault_Generate_InvalidCryptoType(t *testing.T) {
	d := setupKeyVault(t, "")

	_, err := d.vault.Generate(context.Background(), uuid.New(), domain.CryptoType("DOGE"), "pw")
	assertAppError(t, err, "PAY_008")
}

func TestKeyVault_Generate_Duplicate(t *testing.T) {
	d := setupKeyVault(t, "")
	ctx := context.Background()
	merchantID := uuid.New()

	d.walletRepo.EXPECT().Get(ctx, merchantID, domain.CryptoETH, domain.WalletModeGenerated).
		Return(&domain.WalletRecord{ID: uuid.New()}, nil)

	_, err := d.vault.Generate(ctx, merchantID, domain.CryptoETH, "pw")
	assertAppError(t, err, "PAY_011")
}

func TestKeyVault_Generate_DuplicateOnInsert(t *testing.T) {
	d := setupKeyVault(t, "")
	ctx := context.Background()
	merchantID := uuid.New()

	d.walletRepo.EXPECT().Get(ctx, merchantID, domain.CryptoETH, domain.WalletModeGenerated).Return(nil, nil)
	d.walletRepo.EXPECT().Create(ctx, gomock.Any()).Return(ports.ErrDuplicateRecord)

	_, err := d.vault.Generate(ctx, merchantID, domain.CryptoETH, "pw")
	assertAppError(t, err, "PAY_011")
}

func TestKeyVault_Import_EVM(t *testing.T) {
	d := setupKeyVault(t, "")
	ctx := context.Background()
	merchantID := uuid.New()

	const raw = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	key, err := crypto.HexToECDSA(raw)
	require.NoError(t, err)

	stored := d.expectCreate(ctx, merchantID, domain.CryptoUSDTETH, domain.WalletModeImported)

	record, err := d.vault.Import(ctx, merchantID, domain.CryptoUSDTETH, "0x"+raw, "pw")
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey).Hex(), record.Address)
	assert.Equal(t, domain.WalletModeImported, stored.Mode)
}

func TestKeyVault_Import_Solana(t *testing.T) {
	d := setupKeyVault(t, "")
	ctx := context.Background()
	merchantID := uuid.New()
	account := solana.NewWallet()

	d.expectCreate(ctx, merchantID, domain.CryptoUSDTSPL, domain.WalletModeImported)

	record, err := d.vault.Import(ctx, merchantID, domain.CryptoUSDTSPL, account.PrivateKey.String(), "pw")
	require.NoError(t, err)
	assert.Equal(t, account.PublicKey().String(), record.Address)
}

func TestKeyVault_Import_InvalidKeys(t *testing.T) {
	mismatched := solana.NewWallet().PrivateKey
	other := solana.NewWallet().PrivateKey
	copy(mismatched[32:], other[32:])

	tests := []struct {
		name string
		ct   domain.CryptoType
		key  string
	}{
		{"evm short", domain.CryptoETH, "4c0883a691"},
		{"evm not hex", domain.CryptoETH, strings.Repeat("zz", 32)},
		{"evm zero scalar", domain.CryptoETH, strings.Repeat("00", 32)},
		{"solana not base58", domain.CryptoSOL, "0OIl"},
		{"solana wrong length", domain.CryptoSOL, "11111111111111111111111111111111"},
		{"solana public half mismatch", domain.CryptoSOL, mismatched.String()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupKeyVault(t, "")
			_, err := d.vault.Import(context.Background(), uuid.New(), tt.ct, tt.key, "pw")
			assertAppError(t, err, "KEY_002")
		})
	}
}

func TestKeyVault_ConfigureAddress(t *testing.T) {
	d := setupKeyVault(t, "")
	ctx := context.Background()
	merchantID := uuid.New()

	stored := d.expectCreate(ctx, merchantID, domain.CryptoMATIC, domain.WalletModeAddressOnly)

	record, err := d.vault.ConfigureAddress(ctx, merchantID, domain.CryptoMATIC, "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
	require.NoError(t, err)
	assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", record.Address)
	assert.Nil(t, stored.EncryptedPrivateKey)
	assert.False(t, stored.CanSign())
}

func TestKeyVault_ConfigureAddress_Invalid(t *testing.T) {
	d := setupKeyVault(t, "")

	_, err := d.vault.ConfigureAddress(context.Background(), uuid.New(), domain.CryptoSOL, "not-an-address")
	assertAppError(t, err, "PAY_009")
}

func sealedWallet(t *testing.T, d *keyVaultTestDeps, password string) *domain.WalletRecord {
	t.Helper()
	ctx := context.Background()
	merchantID := uuid.New()
	stored := d.expectCreate(ctx, merchantID, domain.CryptoETH, domain.WalletModeGenerated)
	_, err := d.vault.Generate(ctx, merchantID, domain.CryptoETH, password)
	require.NoError(t, err)
	return stored
}

func TestKeyVault_Unlock_WrongPassword(t *testing.T) {
	d := setupKeyVault(t, "")
	ctx := context.Background()
	stored := sealedWallet(t, d, "right")

	d.walletRepo.EXPECT().GetByID(ctx, stored.ID).Return(stored, nil)
	_, err := d.vault.Unlock(ctx, stored.ID, "wrong")
	assertAppError(t, err, "KEY_001")
}

func TestKeyVault_Unlock_TamperedEnvelopeLooksLikeWrongPassword(t *testing.T) {
	d := setupKeyVault(t, "")
	ctx := context.Background()
	stored := sealedWallet(t, d, "right")

	// Same password, but the ciphertext is bound to a different address.
	moved := *stored
	moved.Address = "0x0000000000000000000000000000000000000001"

	d.walletRepo.EXPECT().GetByID(ctx, moved.ID).Return(&moved, nil)
	_, err := d.vault.Unlock(ctx, moved.ID, "right")
	assertAppError(t, err, "KEY_001")
}

func TestKeyVault_Unlock_MalformedEnvelope(t *testing.T) {
	d := setupKeyVault(t, "")
	ctx := context.Background()
	garbage := "$argon2id-aesgcm$broken"
	wallet := &domain.WalletRecord{
		ID:                  uuid.New(),
		CryptoType:          domain.CryptoETH,
		Mode:                domain.WalletModeImported,
		EncryptedPrivateKey: &garbage,
	}

	d.walletRepo.EXPECT().GetByID(ctx, wallet.ID).Return(wallet, nil)
	_, err := d.vault.Unlock(ctx, wallet.ID, "pw")
	assertAppError(t, err, "SYS_001")
}

func TestKeyVault_Unlock_AddressOnly(t *testing.T) {
	d := setupKeyVault(t, "")
	ctx := context.Background()
	wallet := &domain.WalletRecord{ID: uuid.New(), Mode: domain.WalletModeAddressOnly}

	d.walletRepo.EXPECT().GetByID(ctx, wallet.ID).Return(wallet, nil)
	_, err := d.vault.Unlock(ctx, wallet.ID, "pw")
	assertAppError(t, err, "KEY_003")
}

func TestKeyVault_Unlock_NotFound(t *testing.T) {
	d := setupKeyVault(t, "")
	ctx := context.Background()
	id := uuid.New()

	d.walletRepo.EXPECT().GetByID(ctx, id).Return(nil, nil)
	_, err := d.vault.Unlock(ctx, id, "pw")
	assertAppError(t, err, "PAY_004")
}

func TestKeyVault_WithKey_DestroysAfterUse(t *testing.T) {
	d := setupKeyVault(t, "")
	ctx := context.Background()
	stored := sealedWallet(t, d, "pw")

	var seen *ports.SigningKey
	d.walletRepo.EXPECT().GetByID(ctx, stored.ID).Return(stored, nil)
	err := d.vault.WithKey(ctx, stored.ID, "pw", func(key *ports.SigningKey) error {
		assert.Equal(t, 32, key.Secret.Len())
		seen = key
		return nil
	})
	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.True(t, seen.Secret.Destroyed())
}
