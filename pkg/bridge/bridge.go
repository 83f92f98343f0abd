// Package bridge holds the domain types of cross-chain card token transfers.
package bridge

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/chainsafe/card-bridge/pkg/config"
	"github.com/chainsafe/card-bridge/pkg/ethereum/contracts"
)

// Direction selects source and destination chain.
type Direction string

const (
	// AToB moves tokens from the home chain to the card chain
	AToB Direction = "a_to_b"
	// BToA moves tokens from the card chain back to the home chain
	BToA Direction = "b_to_a"
)

// Valid reports whether d is a known direction
func (d Direction) Valid() bool {
	return d == AToB || d == BToA
}

// Chain is the runtime view of one configured chain.
type Chain struct {
	Name             string
	ChainID          uint64
	EndpointID       uint32
	Token            common.Address
	OFT              common.Address
	Decimals         uint8
	RequiresApproval bool
}

// NewChain converts chain configuration
func NewChain(cfg config.ChainConfig) Chain {
	return Chain{
		Name:             cfg.Name,
		ChainID:          cfg.ChainID,
		EndpointID:       cfg.EndpointID,
		Token:            common.HexToAddress(cfg.TokenAddress),
		OFT:              common.HexToAddress(cfg.OFTAddress),
		Decimals:         cfg.TokenDecimals,
		RequiresApproval: cfg.RequiresApproval,
	}
}

// ToBaseUnits converts a human amount into the token's smallest unit, truncating extra precision.
func (c Chain) ToBaseUnits(amount decimal.Decimal) *big.Int {
	return amount.Shift(int32(c.Decimals)).Truncate(0).BigInt()
}

// FromBaseUnits converts a base-unit amount into human units.
func (c Chain) FromBaseUnits(v *big.Int) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(v, -int32(c.Decimals))
}

// Chains is the pair of chains the bridge connects.
type Chains struct {
	A Chain
	B Chain
}

// NewChains converts the chains configuration
func NewChains(cfg config.ChainsConfig) Chains {
	return Chains{A: NewChain(cfg.A), B: NewChain(cfg.B)}
}

// Route returns the source and destination chain for a direction.
func (c Chains) Route(d Direction) (src, dst Chain) {
	if d == BToA {
		return c.B, c.A
	}
	return c.A, c.B
}

// TransferRequest is a single user bridge action. Amount is in source-chain human units.
type TransferRequest struct {
	Direction Direction       `json:"direction"`
	Amount    decimal.Decimal `json:"amount"`
	Recipient common.Address  `json:"recipient"`
}

// Validate checks the request before any chain interaction
func (r TransferRequest) Validate() error {
	if !r.Direction.Valid() {
		return fmt.Errorf("unknown direction %q", r.Direction)
	}
	if !r.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}
	if r.Recipient == (common.Address{}) {
		return fmt.Errorf("recipient is required")
	}
	return nil
}

// Quote is the messaging fee for one transfer attempt together with the exact
// send parameters it was computed for. It is never reused across requests.
type Quote struct {
	Request    TransferRequest
	NativeFee  *big.Int
	LzTokenFee *big.Int
	Params     contracts.SendParam
}

// Fee returns the messaging fee to attach to send.
func (q *Quote) Fee() contracts.MessagingFee {
	lz := q.LzTokenFee
	if lz == nil {
		lz = new(big.Int)
	}
	return contracts.MessagingFee{NativeFee: q.NativeFee, LzTokenFee: lz}
}

// Balances holds the account's token balance on both sides of a route.
type Balances struct {
	Source   decimal.Decimal `json:"source"`
	Dest     decimal.Decimal `json:"dest"`
	Warnings []string        `json:"warnings,omitempty"`
}

// AllowanceResult is the outcome of an allowance check.
type AllowanceResult string

const (
	// AllowanceSufficient means no approval transaction was needed
	AllowanceSufficient AllowanceResult = "already_sufficient"
	// AllowanceApproved means an approval was mined
	AllowanceApproved AllowanceResult = "approved"
)

// State is a step of the transfer state machine.
type State string

// Transfer states in execution order
const (
	StateIdle         State = "idle"
	StateNetworkCheck State = "network_check"
	StateApproving    State = "approving"
	StateQuoting      State = "quoting"
	StateSending      State = "sending"
	StateConfirming   State = "confirming"
	StateCompleted    State = "completed"
	StateFailed       State = "failed"
	// StateBalances is emitted after completion once refreshed balances are known.
	StateBalances State = "balances"
)

// Terminal reports whether no further transitions follow s.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateFailed
}

// StatusEvent is a user-facing progress update.
type StatusEvent struct {
	State       State     `json:"state"`
	Message     string    `json:"message"`
	TxHash      string    `json:"tx_hash,omitempty"`
	ExplorerURL string    `json:"explorer_url,omitempty"`
	Reason      Reason    `json:"reason,omitempty"`
	Balances    *Balances `json:"balances,omitempty"`
	At          time.Time `json:"at"`
}

// StatusSink receives status events. Implementations must be safe for use
// from a goroutine other than the caller's.
type StatusSink interface {
	Emit(event StatusEvent)
}

// SinkFunc adapts a function to StatusSink
type SinkFunc func(StatusEvent)

// Emit calls f(event)
func (f SinkFunc) Emit(event StatusEvent) {
	f(event)
}

// Result summarises a finished transfer attempt.
type Result struct {
	State       State           `json:"state"`
	TxHash      string          `json:"tx_hash,omitempty"`
	ExplorerURL string          `json:"explorer_url,omitempty"`
	NativeFee   string          `json:"native_fee,omitempty"`
	Approval    AllowanceResult `json:"approval,omitempty"`
}
