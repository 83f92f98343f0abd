// Package ethereum holds the server wallet that signs bridge transactions on both chains.
package ethereum

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var (
	// ErrUnknownChain is returned for a chain id that is not configured.
	ErrUnknownChain = errors.New("chain not configured")
	// ErrWrongChain is returned when a write targets a chain other than the active one.
	ErrWrongChain = errors.New("transaction chain differs from active chain")
	// ErrReceiptTimeout is returned when no receipt appeared before the deadline.
	ErrReceiptTimeout = errors.New("timed out waiting for transaction receipt")
)

// ContractCall describes a read-only call against a contract on a given chain.
type ContractCall struct {
	ChainID uint64
	Address common.Address
	ABI     *abi.ABI
	Method  string
	Args    []any
}

// ContractTx is a state-changing contract call, optionally carrying native value.
type ContractTx struct {
	ContractCall
	Value *big.Int
}

// Wallet is the signing collaborator the bridge drives. Like a browser wallet it
// has one active chain at a time and only signs for that chain.
//
//go:generate mockery --name Wallet --output mocks --outpkg mocks --filename mock_wallet.go --with-expecter
type Wallet interface {
	Address() common.Address
	ActiveChain(ctx context.Context) (uint64, error)
	SwitchChain(ctx context.Context, chainID uint64) error
	ReadContract(ctx context.Context, call ContractCall) ([]any, error)
	WriteContract(ctx context.Context, tx ContractTx) (common.Hash, error)
	WaitForReceipt(ctx context.Context, chainID uint64, hash common.Hash, timeout time.Duration) (*types.Receipt, error)
}
