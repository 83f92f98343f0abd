package ethereum

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"sync/atomic"
	"testing"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/chainsafe/card-bridge/pkg/config"
	"github.com/chainsafe/card-bridge/pkg/ethereum/contracts"
)

// fakeBackend implements only what the tests exercise; the embedded
// interface panics on anything else.
type fakeBackend struct {
	Backend
	chainID  uint64
	lookups  atomic.Int32
	receipts func(n int32) (*types.Receipt, error)
}

func (f *fakeBackend) ChainID(context.Context) (*big.Int, error) {
	return new(big.Int).SetUint64(f.chainID), nil
}

func (f *fakeBackend) TransactionReceipt(context.Context, common.Hash) (*types.Receipt, error) {
	return f.receipts(f.lookups.Add(1))
}

func testChains() config.ChainsConfig {
	return config.ChainsConfig{
		A: config.ChainConfig{Name: "home", ChainID: 1, EndpointID: 30101},
		B: config.ChainConfig{Name: "card", ChainID: 8453, EndpointID: 30184},
	}
}

func newTestClient(t *testing.T, backends map[uint64]Backend) *Client {
	t.Helper()
	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey() failed: %v", err)
	}
	c, err := newClient(context.Background(), testChains(), backends,
		"0x"+hex.EncodeToString(crypto.FromECDSA(key)), 5*time.Millisecond, zap.NewNop())
	if err != nil {
		t.Fatalf("newClient() failed: %v", err)
	}
	return c
}

func TestNewClient_RejectsChainIDMismatch(t *testing.T) {
	key, _ := crypto.GenerateKey()
	_, err := newClient(context.Background(), testChains(), map[uint64]Backend{
		1:    &fakeBackend{chainID: 1},
		8453: &fakeBackend{chainID: 10},
	}, hex.EncodeToString(crypto.FromECDSA(key)), 0, zap.NewNop())
	if err == nil {
		t.Fatalf("expected chain id mismatch error")
	}
}

func TestSession_SwitchChain(t *testing.T) {
	c := newTestClient(t, map[uint64]Backend{
		1:    &fakeBackend{chainID: 1},
		8453: &fakeBackend{chainID: 8453},
	})
	ctx := context.Background()

	s := c.Session()
	active, _ := s.ActiveChain(ctx)
	if active != 1 {
		t.Fatalf("expected session to start on chain 1, got %d", active)
	}

	if err := s.SwitchChain(ctx, 8453); err != nil {
		t.Fatalf("SwitchChain() failed: %v", err)
	}
	active, _ = s.ActiveChain(ctx)
	if active != 8453 {
		t.Fatalf("expected active chain 8453, got %d", active)
	}

	other, _ := c.Session().ActiveChain(ctx)
	if other != 1 {
		t.Fatalf("switching one session leaked into another: %d", other)
	}

	if err := s.SwitchChain(ctx, 42); !errors.Is(err, ErrUnknownChain) {
		t.Fatalf("expected ErrUnknownChain, got %v", err)
	}
}

func TestSession_WriteContract_RequiresActiveChain(t *testing.T) {
	c := newTestClient(t, map[uint64]Backend{
		1:    &fakeBackend{chainID: 1},
		8453: &fakeBackend{chainID: 8453},
	})
	erc20, err := contracts.ERC20ABI()
	if err != nil {
		t.Fatalf("ERC20ABI() failed: %v", err)
	}

	_, err = c.Session().WriteContract(context.Background(), ContractTx{
		ContractCall: ContractCall{ChainID: 8453, ABI: erc20, Method: contracts.MethodApprove},
	})
	if !errors.Is(err, ErrWrongChain) {
		t.Fatalf("expected ErrWrongChain, got %v", err)
	}
}

func TestSession_WaitForReceipt(t *testing.T) {
	want := &types.Receipt{Status: types.ReceiptStatusSuccessful}
	backend := &fakeBackend{chainID: 1, receipts: func(n int32) (*types.Receipt, error) {
		if n < 3 {
			return nil, geth.NotFound
		}
		return want, nil
	}}
	c := newTestClient(t, map[uint64]Backend{1: backend, 8453: &fakeBackend{chainID: 8453}})

	got, err := c.Session().WaitForReceipt(context.Background(), 1, common.Hash{1}, time.Second)
	if err != nil {
		t.Fatalf("WaitForReceipt() failed: %v", err)
	}
	if got != want {
		t.Fatalf("unexpected receipt %+v", got)
	}
	if backend.lookups.Load() != 3 {
		t.Fatalf("expected 3 lookups, got %d", backend.lookups.Load())
	}
}

func TestSession_WaitForReceipt_Timeout(t *testing.T) {
	backend := &fakeBackend{chainID: 1, receipts: func(int32) (*types.Receipt, error) {
		return nil, geth.NotFound
	}}
	c := newTestClient(t, map[uint64]Backend{1: backend, 8453: &fakeBackend{chainID: 8453}})

	_, err := c.Session().WaitForReceipt(context.Background(), 1, common.Hash{2}, 30*time.Millisecond)
	if !errors.Is(err, ErrReceiptTimeout) {
		t.Fatalf("expected ErrReceiptTimeout, got %v", err)
	}
	if !IsTimeout(err) {
		t.Fatalf("expected IsTimeout to match %v", err)
	}
}

type codedError struct{ code int }

func (e codedError) Error() string  { return fmt.Sprintf("rpc error %d", e.code) }
func (e codedError) ErrorCode() int { return e.code }

func TestErrorClassification(t *testing.T) {
	if !IsUserRejected(fmt.Errorf("send: %w", codedError{code: 4001})) {
		t.Errorf("expected 4001 to be a user rejection")
	}
	if !IsUserRejected(errors.New("MetaMask Tx Signature: User denied transaction signature.")) {
		t.Errorf("expected user denied message to be a rejection")
	}
	if IsUserRejected(codedError{code: -32000}) {
		t.Errorf("unexpected rejection for -32000")
	}
	if !IsInsufficientFunds(errors.New("insufficient funds for gas * price + value")) {
		t.Errorf("expected insufficient funds")
	}
	if !IsExecutionReverted(errors.New("execution reverted: LZ_InsufficientFee")) {
		t.Errorf("expected revert")
	}
	if !IsTimeout(context.DeadlineExceeded) {
		t.Errorf("expected deadline to be a timeout")
	}
	if !IsNetworkError(errors.New("dial tcp 127.0.0.1:8545: connect: connection refused")) {
		t.Errorf("expected network error")
	}
}
