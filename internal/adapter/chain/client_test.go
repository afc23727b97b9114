package chain

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"cryptopay-gateway/config"
	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/apperror"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEVM struct {
	nonce   uint64
	sendErr error
	sent    []*types.Transaction
	receipt *types.Receipt
	pending bool
	inPool  bool
	head    uint64
	callErr error
}

func (f *fakeEVM) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	return f.nonce, f.callErr
}

func (f *fakeEVM) SuggestGasPrice(context.Context) (*big.Int, error) {
	return big.NewInt(7), f.callErr
}

func (f *fakeEVM) SendTransaction(_ context.Context, tx *types.Transaction) error {
	f.sent = append(f.sent, tx)
	return f.sendErr
}

func (f *fakeEVM) TransactionReceipt(context.Context, common.Hash) (*types.Receipt, error) {
	if f.callErr != nil {
		return nil, f.callErr
	}
	if f.receipt == nil {
		return nil, ethereum.NotFound
	}
	return f.receipt, nil
}

func (f *fakeEVM) TransactionByHash(context.Context, common.Hash) (*types.Transaction, bool, error) {
	if !f.inPool {
		return nil, false, ethereum.NotFound
	}
	return types.NewTx(&types.LegacyTx{}), f.pending, nil
}

func (f *fakeEVM) BlockNumber(context.Context) (uint64, error) {
	return f.head, nil
}

type fakeRPCError struct{}

func (fakeRPCError) Error() string  { return "nonce too low" }
func (fakeRPCError) ErrorCode() int { return -32000 }

func ethConfig() config.ChainConfig {
	return config.ChainConfig{
		ChainID:        1,
		Confirmations:  12,
		GasPriceGwei:   20,
		GasLimitNative: 21000,
		GasLimitToken:  65000,
		TokenContract:  "0xdAC17F958D2ee523a2206206994597C13D831ec7",
	}
}

func TestEVMClient_PrepareTransfer(t *testing.T) {
	backend := &fakeEVM{nonce: 3}
	c := newEVMClient(domain.NetworkEthereum, backend, ethConfig(), zerolog.Nop())

	u, err := c.PrepareTransfer(context.Background(), ports.TransferRequest{
		CryptoType: domain.CryptoUSDTETH,
		From:       "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
		To:         "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
		Amount:     decimal.RequireFromString("12.5"),
	})
	require.NoError(t, err)
	assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", u.From)
	assert.Equal(t, uint64(3), u.Nonce)
	assert.Equal(t, uint64(65000), u.GasLimit)
	assert.Equal(t, big.NewInt(12_500_000), u.Amount)
	assert.Equal(t, big.NewInt(20_000_000_000), u.GasPrice)
	assert.Equal(t, big.NewInt(1), u.ChainID)
	assert.Equal(t, ethConfig().TokenContract, u.TokenContract)
}

func TestEVMClient_PrepareTransfer_SuggestedGasPrice(t *testing.T) {
	cfg := ethConfig()
	cfg.GasPriceGwei = 0
	c := newEVMClient(domain.NetworkEthereum, &fakeEVM{}, cfg, zerolog.Nop())

	u, err := c.PrepareTransfer(context.Background(), ports.TransferRequest{
		CryptoType: domain.CryptoETH, From: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		To: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", Amount: decimal.NewFromInt(1),
	})
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(7), u.GasPrice)
	assert.Equal(t, uint64(21000), u.GasLimit)
}

func TestEVMClient_PrepareTransfer_WrongNetworkAndUpstream(t *testing.T) {
	c := newEVMClient(domain.NetworkEthereum, &fakeEVM{callErr: errors.New("dial tcp: refused")}, ethConfig(), zerolog.Nop())

	_, err := c.PrepareTransfer(context.Background(), ports.TransferRequest{CryptoType: domain.CryptoBNB})
	assert.Error(t, err)

	_, err = c.PrepareTransfer(context.Background(), ports.TransferRequest{CryptoType: domain.CryptoETH, Amount: decimal.NewFromInt(1)})
	assert.True(t, apperror.IsRetryable(err))
}

func TestEVMClient_Broadcast(t *testing.T) {
	raw, err := types.NewTx(&types.LegacyTx{Nonce: 1, Gas: 21000, GasPrice: big.NewInt(1), Value: big.NewInt(1)}).MarshalBinary()
	require.NoError(t, err)
	signed := &ports.SignedTransfer{Network: domain.NetworkEthereum, Raw: raw}

	backend := &fakeEVM{}
	c := newEVMClient(domain.NetworkEthereum, backend, ethConfig(), zerolog.Nop())
	require.NoError(t, c.Broadcast(context.Background(), signed))
	assert.Len(t, backend.sent, 1)

	backend.sendErr = errors.New("already known")
	require.NoError(t, c.Broadcast(context.Background(), signed))

	backend.sendErr = fakeRPCError{}
	err = c.Broadcast(context.Background(), signed)
	assert.True(t, apperror.Is(err, "CHAIN_002"))
	assert.False(t, apperror.IsRetryable(err))

	backend.sendErr = context.DeadlineExceeded
	err = c.Broadcast(context.Background(), signed)
	assert.True(t, apperror.IsRetryable(err))

	err = c.Broadcast(context.Background(), &ports.SignedTransfer{Raw: []byte{0x01}})
	assert.True(t, apperror.Is(err, "CHAIN_002"))
}

func TestEVMClient_TxStatus(t *testing.T) {
	hash := common.HexToHash("0x01").Hex()
	tests := []struct {
		name    string
		backend *fakeEVM
		want    domain.TxState
	}{
		{"unknown", &fakeEVM{}, domain.TxStateUnknown},
		{"in mempool", &fakeEVM{inPool: true, pending: true}, domain.TxStatePending},
		{"reverted", &fakeEVM{receipt: &types.Receipt{Status: types.ReceiptStatusFailed, BlockNumber: big.NewInt(100)}, head: 200}, domain.TxStateFailed},
		{"too few blocks", &fakeEVM{receipt: &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(100)}, head: 105}, domain.TxStatePending},
		{"deep enough", &fakeEVM{receipt: &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(100)}, head: 111}, domain.TxStateConfirmed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newEVMClient(domain.NetworkEthereum, tt.backend, ethConfig(), zerolog.Nop())
			got, err := c.TxStatus(context.Background(), hash)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type fakeSolana struct {
	blockhash  solana.Hash
	accountErr error
	sendErr    error
	sent       [][]byte
	status     *rpc.SignatureStatusesResult
	callErr    error
}

func (f *fakeSolana) GetLatestBlockhash(context.Context, rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error) {
	if f.callErr != nil {
		return nil, f.callErr
	}
	return &rpc.GetLatestBlockhashResult{Value: &rpc.LatestBlockhashResult{Blockhash: f.blockhash}}, nil
}

func (f *fakeSolana) GetAccountInfo(context.Context, solana.PublicKey) (*rpc.GetAccountInfoResult, error) {
	if f.accountErr != nil {
		return nil, f.accountErr
	}
	return &rpc.GetAccountInfoResult{}, nil
}

func (f *fakeSolana) SendRawTransaction(_ context.Context, raw []byte) (solana.Signature, error) {
	f.sent = append(f.sent, raw)
	return solana.Signature{}, f.sendErr
}

func (f *fakeSolana) GetSignatureStatuses(context.Context, bool, ...solana.Signature) (*rpc.GetSignatureStatusesResult, error) {
	return &rpc.GetSignatureStatusesResult{Value: []*rpc.SignatureStatusesResult{f.status}}, nil
}

func solConfig() config.ChainConfig {
	return config.ChainConfig{Confirmations: 1, TokenContract: usdtMint}
}

func TestSolanaClient_PrepareTransfer(t *testing.T) {
	from := solana.NewWallet().PublicKey().String()
	to := solana.NewWallet().PublicKey().String()
	backend := &fakeSolana{blockhash: solana.HashFromBytes(make([]byte, 32))}
	c := newSolanaClient(backend, solConfig(), zerolog.Nop())

	u, err := c.PrepareTransfer(context.Background(), ports.TransferRequest{
		CryptoType: domain.CryptoSOL, From: from, To: to, Amount: decimal.RequireFromString("0.5"),
	})
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(500_000_000), u.Amount)
	assert.Equal(t, backend.blockhash.String(), u.RecentBlockhash)
	assert.False(t, u.CreateTokenAccount)

	backend.accountErr = rpc.ErrNotFound
	u, err = c.PrepareTransfer(context.Background(), ports.TransferRequest{
		CryptoType: domain.CryptoUSDTSPL, From: from, To: to, Amount: decimal.NewFromInt(3),
	})
	require.NoError(t, err)
	assert.True(t, u.CreateTokenAccount)
	assert.Equal(t, usdtMint, u.TokenContract)
	assert.Equal(t, big.NewInt(3_000_000), u.Amount)

	_, err = c.PrepareTransfer(context.Background(), ports.TransferRequest{CryptoType: domain.CryptoSOL, To: "bad"})
	assert.True(t, apperror.Is(err, "PAY_009"))
}

func TestSolanaClient_TxStatus(t *testing.T) {
	two := uint64(2)
	sig := solana.SignatureFromBytes(make([]byte, 64)).String()
	tests := []struct {
		name   string
		status *rpc.SignatureStatusesResult
		want   domain.TxState
	}{
		{"unknown", nil, domain.TxStateUnknown},
		{"failed", &rpc.SignatureStatusesResult{Err: map[string]any{"InstructionError": 0}}, domain.TxStateFailed},
		{"processed", &rpc.SignatureStatusesResult{ConfirmationStatus: rpc.ConfirmationStatusProcessed, Confirmations: &two}, domain.TxStatePending},
		{"confirmed", &rpc.SignatureStatusesResult{ConfirmationStatus: rpc.ConfirmationStatusConfirmed, Confirmations: &two}, domain.TxStateConfirmed},
		{"finalized", &rpc.SignatureStatusesResult{ConfirmationStatus: rpc.ConfirmationStatusFinalized}, domain.TxStateConfirmed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newSolanaClient(&fakeSolana{status: tt.status}, solConfig(), zerolog.Nop())
			got, err := c.TxStatus(context.Background(), sig)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSolanaClient_BroadcastUpstreamError(t *testing.T) {
	c := newSolanaClient(&fakeSolana{sendErr: errors.New("connection reset")}, solConfig(), zerolog.Nop())
	err := c.Broadcast(context.Background(), &ports.SignedTransfer{Raw: []byte{1}})
	assert.True(t, apperror.IsRetryable(err))
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	_, err := r.Client(domain.NetworkSolana)
	assert.Error(t, err)

	sol := newSolanaClient(&fakeSolana{}, solConfig(), zerolog.Nop())
	r.Register(sol)
	got, err := r.Client(domain.NetworkSolana)
	require.NoError(t, err)
	assert.Same(t, sol, got)
}
