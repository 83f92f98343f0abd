package service

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/card-bridge/pkg/bridge"
	"github.com/chainsafe/card-bridge/pkg/config"
	"github.com/chainsafe/card-bridge/pkg/ethereum"
	"github.com/chainsafe/card-bridge/pkg/ethereum/contracts"
)

const (
	bpsDenominator = 10_000
	// slippageBps is the fixed tolerance below the sent amount.
	slippageBps = 500
)

// Service defines the bridge operations
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	// Balances reads the account's token balance on the source and destination chain of direction.
	Balances(ctx context.Context, account common.Address, direction bridge.Direction) (*bridge.Balances, error)
	// EnsureAllowance raises owner's allowance for spender on chain to at least amount.
	EnsureAllowance(
		ctx context.Context,
		wallet ethereum.Wallet,
		chain bridge.Chain,
		owner, spender common.Address,
		amount *big.Int,
	) (bridge.AllowanceResult, error)
	// Quote computes a fresh messaging fee for req.
	Quote(ctx context.Context, req bridge.TransferRequest) (*bridge.Quote, error)
	// Transfer runs the full bridge state machine for req, reporting progress to sink.
	Transfer(ctx context.Context, req bridge.TransferRequest, sink bridge.StatusSink) (*bridge.Result, error)
}

// WalletFactory returns a fresh wallet session for one operation.
type WalletFactory func() ethereum.Wallet

// Settings are the execution knobs of the bridge.
type Settings struct {
	ApprovalTimeout     time.Duration
	ConfirmTimeout      time.Duration
	NetworkSwitchDelay  time.Duration
	BalanceRefreshDelay time.Duration
	ExplorerURL         string
}

// SettingsFromConfig converts bridge configuration
func SettingsFromConfig(cfg config.BridgeConfig) Settings {
	return Settings{
		ApprovalTimeout:     cfg.ApprovalTimeout,
		ConfirmTimeout:      cfg.ConfirmTimeout,
		NetworkSwitchDelay:  cfg.NetworkSwitchDelay,
		BalanceRefreshDelay: cfg.BalanceRefreshDelay,
		ExplorerURL:         cfg.ExplorerURL,
	}
}

type bridgeService struct {
	chains    bridge.Chains
	settings  Settings
	newWallet WalletFactory
	erc20     *abi.ABI
	oft       *abi.ABI
	now       func() time.Time
	logger    *zap.Logger
}

// NewService creates the bridge service
func NewService(chains bridge.Chains, settings Settings, newWallet WalletFactory, logger *zap.Logger) (Service, error) {
	return newService(chains, settings, newWallet, logger)
}

func newService(chains bridge.Chains, settings Settings, newWallet WalletFactory, logger *zap.Logger) (*bridgeService, error) {
	erc20, err := contracts.ERC20ABI()
	if err != nil {
		return nil, fmt.Errorf("failed to parse ERC20 ABI: %w", err)
	}
	oft, err := contracts.OFTABI()
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFT ABI: %w", err)
	}
	if settings.ApprovalTimeout <= 0 || settings.ConfirmTimeout <= 0 {
		return nil, fmt.Errorf("approval and confirm timeouts must be positive")
	}

	return &bridgeService{
		chains:    chains,
		settings:  settings,
		newWallet: newWallet,
		erc20:     erc20,
		oft:       oft,
		now:       time.Now,
		logger:    logger,
	}, nil
}

// CheckTokens verifies the configured decimals match what each token contract reports.
func CheckTokens(ctx context.Context, svc Service) error {
	s, ok := unwrap(svc).(*bridgeService)
	if !ok {
		return nil
	}
	w := s.newWallet()
	for _, chain := range []bridge.Chain{s.chains.A, s.chains.B} {
		out, err := w.ReadContract(ctx, ethereum.ContractCall{
			ChainID: chain.ChainID,
			Address: chain.Token,
			ABI:     s.erc20,
			Method:  contracts.MethodDecimals,
		})
		if err != nil {
			return fmt.Errorf("failed to read %s token decimals: %w", chain.Name, err)
		}
		decimals, err := contracts.UnpackUint8(out)
		if err != nil {
			return fmt.Errorf("failed to decode %s token decimals: %w", chain.Name, err)
		}
		if decimals != chain.Decimals {
			return fmt.Errorf("%s token reports %d decimals, configured %d", chain.Name, decimals, chain.Decimals)
		}
	}
	return nil
}

func unwrap(svc Service) Service {
	if ls, ok := svc.(*logService); ok {
		return unwrap(ls.svc)
	}
	return svc
}

func (s *bridgeService) explorerLink(hash common.Hash) string {
	return fmt.Sprintf("%s/tx/%s", s.settings.ExplorerURL, hash.Hex())
}
