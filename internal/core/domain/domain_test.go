package domain

import (
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerchant_IsActive(t *testing.T) {
	tests := []struct {
		name   string
		status MerchantStatus
		want   bool
	}{
		{"active", MerchantStatusActive, true},
		{"suspended", MerchantStatusSuspended, false},
		{"deactivated", MerchantStatusDeactivated, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Merchant{Status: tt.status}
			assert.Equal(t, tt.want, m.IsActive())
		})
	}
}

func TestMerchant_DailyVolume(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	limit := decimal.NewFromInt(1000)

	m := &Merchant{DailyVolumeUSD: decimal.NewFromInt(900), DailyVolumeDate: now.Add(-2 * time.Hour)}
	assert.True(t, m.ExceedsDailyLimit(decimal.NewFromInt(101), limit, now))
	assert.False(t, m.ExceedsDailyLimit(decimal.NewFromInt(100), limit, now))

	t.Run("counter resets on a new day", func(t *testing.T) {
		tomorrow := now.Add(24 * time.Hour)
		assert.True(t, m.VolumeUsedOn(tomorrow).IsZero())
		assert.False(t, m.ExceedsDailyLimit(decimal.NewFromInt(1000), limit, tomorrow))

		m2 := *m
		m2.AddVolume(decimal.NewFromInt(50), tomorrow)
		assert.True(t, m2.DailyVolumeUSD.Equal(decimal.NewFromInt(50)))
		assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), m2.DailyVolumeDate)
	})

	t.Run("kyc merchants are uncapped", func(t *testing.T) {
		verified := &Merchant{KYCVerified: true}
		assert.False(t, verified.ExceedsDailyLimit(decimal.NewFromInt(1_000_000), limit, now))
	})

	t.Run("release only applies on the same day", func(t *testing.T) {
		m3 := &Merchant{DailyVolumeUSD: decimal.NewFromInt(300), DailyVolumeDate: now}
		m3.ReleaseVolume(decimal.NewFromInt(100), now.Add(-48*time.Hour), now)
		assert.True(t, m3.DailyVolumeUSD.Equal(decimal.NewFromInt(300)))

		m3.ReleaseVolume(decimal.NewFromInt(100), now, now)
		assert.True(t, m3.DailyVolumeUSD.Equal(decimal.NewFromInt(200)))

		m3.ReleaseVolume(decimal.NewFromInt(500), now, now)
		assert.True(t, m3.DailyVolumeUSD.IsZero())
	})
}

func TestParseCryptoType(t *testing.T) {
	tests := []struct {
		in   string
		want CryptoType
	}{
		{"ETH", CryptoETH},
		{"eth", CryptoETH},
		{"usdt_erc20", CryptoUSDTETH},
		{"USDT_BNB", CryptoUSDTBEP20},
		{"USDT_MATIC", CryptoUSDTPolygon},
		{"USDT_ARB", CryptoUSDTArbitrum},
		{" USDT_SOL ", CryptoUSDTSPL},
		{"SOL", CryptoSOL},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCryptoType(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseCryptoType("DOGE")
	assert.ErrorIs(t, err, ErrUnknownCryptoType)
}

func TestCryptoType_Table(t *testing.T) {
	for _, ct := range AllCryptoTypes() {
		assert.True(t, ct.Valid(), ct)
		assert.True(t, ct.Network().Valid(), ct)
		native := ct.NativeCurrency()
		assert.True(t, native.IsNative(), ct)
		assert.Equal(t, ct.Network(), native.Network(), ct)
	}

	assert.Equal(t, int32(18), CryptoUSDTBEP20.Decimals())
	assert.Equal(t, int32(6), CryptoUSDTETH.Decimals())
	assert.Equal(t, "USDT", CryptoUSDTSPL.Symbol())
	assert.Equal(t, CryptoMATIC, CryptoUSDTPolygon.NativeCurrency())
	assert.False(t, NetworkSolana.IsEVM())
	assert.True(t, NetworkArbitrum.IsEVM())
}

func TestCryptoType_BaseUnits(t *testing.T) {
	units := CryptoETH.ToBaseUnits(decimal.RequireFromString("1.5"))
	assert.Equal(t, "1500000000000000000", units.String())

	back := CryptoETH.FromBaseUnits(units)
	assert.True(t, back.Equal(decimal.RequireFromString("1.5")))

	// dust below the smallest unit is dropped
	assert.Equal(t, "1", CryptoUSDTETH.ToBaseUnits(decimal.RequireFromString("0.0000019")).String())
	assert.True(t, CryptoSOL.FromBaseUnits(big.NewInt(5000)).Equal(decimal.RequireFromString("0.000005")))
}

func TestCanTransitionPayment(t *testing.T) {
	tests := []struct {
		name string
		from PaymentStatus
		to   PaymentStatus
		mode WalletMode
		want bool
	}{
		{"pending to confirming", PaymentStatusPending, PaymentStatusConfirming, WalletModeGenerated, true},
		{"pending to expired", PaymentStatusPending, PaymentStatusExpired, WalletModeAddressOnly, true},
		{"confirming to confirmed", PaymentStatusConfirming, PaymentStatusConfirmed, WalletModeImported, true},
		{"confirming to failed", PaymentStatusConfirming, PaymentStatusFailed, WalletModeGenerated, true},
		{"confirmed to forwarded custodial", PaymentStatusConfirmed, PaymentStatusForwarded, WalletModeGenerated, true},
		{"confirmed to forwarded address-only", PaymentStatusConfirmed, PaymentStatusForwarded, WalletModeAddressOnly, false},
		{"confirmed to settled address-only", PaymentStatusConfirmed, PaymentStatusSettled, WalletModeAddressOnly, true},
		{"confirmed to settled custodial", PaymentStatusConfirmed, PaymentStatusSettled, WalletModeImported, false},
		{"confirmed to refunded", PaymentStatusConfirmed, PaymentStatusRefunded, WalletModeImported, true},
		{"forwarded to refunded", PaymentStatusForwarded, PaymentStatusRefunded, WalletModeGenerated, false},
		{"confirmed backwards", PaymentStatusConfirmed, PaymentStatusPending, WalletModeGenerated, false},
		{"confirming to expired", PaymentStatusConfirming, PaymentStatusExpired, WalletModeGenerated, false},
		{"pending to confirmed skips", PaymentStatusPending, PaymentStatusConfirmed, WalletModeGenerated, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransitionPayment(tt.from, tt.to, tt.mode))
		})
	}
}

func TestCanForcePayment(t *testing.T) {
	assert.True(t, CanForcePayment(PaymentStatusExpired, PaymentStatusConfirmed))
	assert.True(t, CanForcePayment(PaymentStatusPending, PaymentStatusFailed))
	assert.False(t, CanForcePayment(PaymentStatusConfirmed, PaymentStatusFailed))
	assert.False(t, CanForcePayment(PaymentStatusForwarded, PaymentStatusConfirmed))
	assert.False(t, CanForcePayment(PaymentStatusRefunded, PaymentStatusConfirmed))
}

func TestPayment_Transition(t *testing.T) {
	now := time.Now()
	p := &Payment{Status: PaymentStatusConfirming, WalletMode: WalletModeGenerated}

	require.True(t, p.Transition(PaymentStatusConfirmed, now))
	require.NotNil(t, p.ConfirmedAt)
	assert.True(t, p.IsRefundable())

	require.True(t, p.Transition(PaymentStatusForwarded, now))
	require.NotNil(t, p.ForwardedAt)
	assert.True(t, p.IsTerminal())
	assert.False(t, p.IsRefundable())

	assert.False(t, p.Transition(PaymentStatusRefunded, now))
	assert.Equal(t, PaymentStatusForwarded, p.Status)
}

func TestPayment_IsExpired(t *testing.T) {
	now := time.Now()
	p := &Payment{Status: PaymentStatusPending, ExpiresAt: now.Add(-time.Second)}
	assert.True(t, p.IsExpired(now))

	p.Status = PaymentStatusConfirming
	assert.False(t, p.IsExpired(now))
}

func TestPayment_View(t *testing.T) {
	custodial := &Payment{ID: "pay_a", WalletMode: WalletModeGenerated}
	assert.Same(t, custodial, custodial.View())

	p := &Payment{
		ID:                "pay_b",
		WalletMode:        WalletModeAddressOnly,
		Address:           "0x52908400098527886E0F7030069857D2E4169EE7",
		AmountUSD:         decimal.RequireFromString("100"),
		FeeUSD:            decimal.RequireFromString("0.75"),
		CustomerAmountUSD: decimal.RequireFromString("100.75"),
		MerchantNetUSD:    decimal.RequireFromString("100"),
		CustomerPaysFee:   true,
	}
	v, ok := p.View().(*AddressOnlyPayment)
	require.True(t, ok)
	assert.Equal(t, p.Address, v.MerchantAddress)
	assert.True(t, v.CustomerAmount.Equal(v.RequestedAmount.Add(v.ProcessingFee)))
	assert.Equal(t, AllCryptoTypes(), v.SupportedCurrencies)
	assert.Equal(t, "pay_b", v.ID)
}

func TestNewPaymentID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		id := NewPaymentID()
		require.True(t, strings.HasPrefix(id, "pay_"))
		require.Len(t, id, 24)
		for _, r := range id[4:] {
			require.True(t, strings.ContainsRune(paymentIDAlphabet, r))
		}
		require.False(t, seen[id])
		seen[id] = true
	}
}

func TestWithdrawal_Transition(t *testing.T) {
	now := time.Now()
	w := &Withdrawal{Status: WithdrawalStatusCreated}

	assert.False(t, w.Transition(WithdrawalStatusProcessing, now), "processing requires gas validation first")
	require.True(t, w.Transition(WithdrawalStatusGasValidated, now))
	require.NotNil(t, w.GasValidatedAt)
	require.True(t, w.Transition(WithdrawalStatusProcessing, now))
	require.True(t, w.Transition(WithdrawalStatusCompleted, now))
	assert.True(t, w.IsTerminal())
	assert.False(t, w.Fail("late", now))
}

func TestWithdrawal_Fail(t *testing.T) {
	w := &Withdrawal{Status: WithdrawalStatusCreated}
	require.True(t, w.Fail("invalid password", time.Now()))
	require.NotNil(t, w.FailureReason)
	assert.Equal(t, "invalid password", *w.FailureReason)
	assert.Equal(t, WithdrawalStatusFailed, w.Status)
}

func TestWithdrawal_AwaitingApproval(t *testing.T) {
	assert.True(t, (&Withdrawal{Approval: ApprovalPending}).AwaitingApproval())
	assert.True(t, (&Withdrawal{Approval: ApprovalRejected}).AwaitingApproval())
	assert.False(t, (&Withdrawal{Approval: ApprovalApproved}).AwaitingApproval())
	assert.False(t, (&Withdrawal{Approval: ApprovalNotRequired}).AwaitingApproval())
}

func TestWalletRecord_CanSign(t *testing.T) {
	env := "$argon2id-aesgcm$..."
	empty := ""
	assert.True(t, (&WalletRecord{Mode: WalletModeGenerated, EncryptedPrivateKey: &env}).CanSign())
	assert.False(t, (&WalletRecord{Mode: WalletModeImported, EncryptedPrivateKey: &empty}).CanSign())
	assert.False(t, (&WalletRecord{Mode: WalletModeAddressOnly, EncryptedPrivateKey: &env}).CanSign())
}

func TestWebhookBackoff(t *testing.T) {
	base, limit := 15*time.Second, time.Hour
	assert.Equal(t, 15*time.Second, WebhookBackoff(0, base, limit))
	assert.Equal(t, 15*time.Second, WebhookBackoff(1, base, limit))
	assert.Equal(t, 30*time.Second, WebhookBackoff(2, base, limit))
	assert.Equal(t, 4*time.Minute, WebhookBackoff(5, base, limit))
	assert.Equal(t, time.Hour, WebhookBackoff(20, base, limit))
}

func TestBuildIdempotencyKey(t *testing.T) {
	id := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	key := BuildIdempotencyKey(id, "ORD-001")
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000:ORD-001", key)
}

func TestAdminActor(t *testing.T) {
	assert.Equal(t, "admin:ops", AdminActor("ops"))
}
