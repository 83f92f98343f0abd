package ethereum

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/chainsafe/card-bridge/pkg/config"
)

const defaultReceiptPollInterval = 2 * time.Second

// Backend is the RPC surface the client needs from each chain.
type Backend interface {
	bind.ContractBackend
	geth.TransactionReader
	ChainID(ctx context.Context) (*big.Int, error)
}

type chainConn struct {
	cfg     config.ChainConfig
	backend Backend
	closer  func()

	// sendMu serializes nonce allocation for the shared signing key.
	sendMu sync.Mutex
}

// Client holds one RPC connection per configured chain and the bridge signing key.
type Client struct {
	chains       map[uint64]*chainConn
	defaultChain uint64
	privateKey   *ecdsa.PrivateKey
	address      common.Address
	pollInterval time.Duration
	logger       *zap.Logger
}

// NewClient dials both chains and checks every endpoint reports its configured chain id.
func NewClient(
	ctx context.Context,
	chains config.ChainsConfig,
	privateKeyHex string,
	pollInterval time.Duration,
	logger *zap.Logger,
) (*Client, error) {
	backends := make(map[uint64]Backend, 2)
	closers := make([]func(), 0, 2)
	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}

	for _, chain := range []config.ChainConfig{chains.A, chains.B} {
		ec, err := ethclient.DialContext(ctx, chain.RPCURL)
		if err != nil {
			closeAll()
			return nil, fmt.Errorf("failed to connect to %s RPC: %w", chain.Name, err)
		}
		closers = append(closers, ec.Close)
		backends[chain.ChainID] = ec
	}

	c, err := newClient(ctx, chains, backends, privateKeyHex, pollInterval, logger)
	if err != nil {
		closeAll()
		return nil, err
	}
	for i, chain := range []config.ChainConfig{chains.A, chains.B} {
		c.chains[chain.ChainID].closer = closers[i]
	}
	return c, nil
}

func newClient(
	ctx context.Context,
	chains config.ChainsConfig,
	backends map[uint64]Backend,
	privateKeyHex string,
	pollInterval time.Duration,
	logger *zap.Logger,
) (*Client, error) {
	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to load private key: %w", err)
	}
	if pollInterval <= 0 {
		pollInterval = defaultReceiptPollInterval
	}

	c := &Client{
		chains:       make(map[uint64]*chainConn, 2),
		defaultChain: chains.A.ChainID,
		privateKey:   privateKey,
		address:      crypto.PubkeyToAddress(privateKey.PublicKey),
		pollInterval: pollInterval,
		logger:       logger,
	}

	for _, chain := range []config.ChainConfig{chains.A, chains.B} {
		backend, ok := backends[chain.ChainID]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownChain, chain.ChainID)
		}
		remoteID, err := backend.ChainID(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read chain id from %s: %w", chain.Name, err)
		}
		if remoteID.Uint64() != chain.ChainID {
			return nil, fmt.Errorf("%s RPC reports chain id %s, expected %d", chain.Name, remoteID, chain.ChainID)
		}
		c.chains[chain.ChainID] = &chainConn{cfg: chain, backend: backend}

		logger.Info("Connected to chain",
			zap.String("chain", chain.Name),
			zap.Uint64("chain_id", chain.ChainID),
			zap.String("oft_address", chain.OFTAddress),
			zap.String("token_address", chain.TokenAddress))
	}

	logger.Info("Bridge wallet loaded", zap.String("address", c.address.Hex()))
	return c, nil
}

// Close closes the chain connections
func (c *Client) Close() {
	for _, conn := range c.chains {
		if conn.closer != nil {
			conn.closer()
		}
	}
}

// Address returns the signing address
func (c *Client) Address() common.Address {
	return c.address
}

// Session returns a Wallet whose active chain starts at chain A. Each
// bridge attempt uses its own session, so switching never leaks across requests.
func (c *Client) Session() *Session {
	s := &Session{client: c}
	s.active.Store(c.defaultChain)
	return s
}

func (c *Client) conn(chainID uint64) (*chainConn, error) {
	conn, ok := c.chains[chainID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownChain, chainID)
	}
	return conn, nil
}

// transactor returns a transaction signer for the chain with nonce and capped gas price
func (c *Client) transactor(ctx context.Context, conn *chainConn) (*bind.TransactOpts, error) {
	auth, err := bind.NewKeyedTransactorWithChainID(c.privateKey, new(big.Int).SetUint64(conn.cfg.ChainID))
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	auth.Context = ctx

	nonce, err := conn.backend.PendingNonceAt(ctx, c.address)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}
	auth.Nonce = new(big.Int).SetUint64(nonce)
	auth.GasLimit = conn.cfg.GasLimit

	if conn.cfg.MaxGasPrice != "" {
		maxGasPrice, ok := new(big.Int).SetString(conn.cfg.MaxGasPrice, 10)
		if !ok {
			return nil, fmt.Errorf("invalid max gas price %q", conn.cfg.MaxGasPrice)
		}

		gasPrice, err := conn.backend.SuggestGasPrice(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to suggest gas price: %w", err)
		}

		if gasPrice.Cmp(maxGasPrice) > 0 {
			c.logger.Warn("Suggested gas price exceeds maximum",
				zap.String("chain", conn.cfg.Name),
				zap.String("suggested", gasPrice.String()),
				zap.String("max", maxGasPrice.String()))
			auth.GasPrice = maxGasPrice
		} else {
			auth.GasPrice = gasPrice
		}
	}

	return auth, nil
}

// Session is a Wallet view of the Client with its own active chain.
type Session struct {
	client *Client
	active atomic.Uint64
}

var _ Wallet = (*Session)(nil)

// Address returns the signing address
func (s *Session) Address() common.Address {
	return s.client.address
}

// ActiveChain returns the chain the session currently signs for
func (s *Session) ActiveChain(context.Context) (uint64, error) {
	return s.active.Load(), nil
}

// SwitchChain makes chainID active after confirming its RPC is reachable.
func (s *Session) SwitchChain(ctx context.Context, chainID uint64) error {
	conn, err := s.client.conn(chainID)
	if err != nil {
		return err
	}
	remoteID, err := conn.backend.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("failed to reach %s: %w", conn.cfg.Name, err)
	}
	if remoteID.Uint64() != chainID {
		return fmt.Errorf("%s RPC reports chain id %s, expected %d", conn.cfg.Name, remoteID, chainID)
	}
	s.active.Store(chainID)
	return nil
}

// ReadContract performs an eth_call and returns the unpacked outputs.
func (s *Session) ReadContract(ctx context.Context, call ContractCall) ([]any, error) {
	conn, err := s.client.conn(call.ChainID)
	if err != nil {
		return nil, err
	}
	if call.ABI == nil {
		return nil, fmt.Errorf("no ABI for %s", call.Method)
	}

	bound := bind.NewBoundContract(call.Address, *call.ABI, conn.backend, nil, nil)
	var out []any
	if err = bound.Call(&bind.CallOpts{Context: ctx, From: s.client.address}, &out, call.Method, call.Args...); err != nil {
		return nil, fmt.Errorf("%s on %s: %w", call.Method, conn.cfg.Name, err)
	}
	return out, nil
}

// WriteContract signs and submits a transaction on the active chain.
func (s *Session) WriteContract(ctx context.Context, tx ContractTx) (common.Hash, error) {
	if active := s.active.Load(); active != tx.ChainID {
		return common.Hash{}, fmt.Errorf("%w: active %d, requested %d", ErrWrongChain, active, tx.ChainID)
	}
	conn, err := s.client.conn(tx.ChainID)
	if err != nil {
		return common.Hash{}, err
	}
	if tx.ABI == nil {
		return common.Hash{}, fmt.Errorf("no ABI for %s", tx.Method)
	}

	conn.sendMu.Lock()
	defer conn.sendMu.Unlock()

	opts, err := s.client.transactor(ctx, conn)
	if err != nil {
		return common.Hash{}, err
	}
	opts.Value = tx.Value

	bound := bind.NewBoundContract(tx.Address, *tx.ABI, conn.backend, conn.backend, nil)
	signed, err := bound.Transact(opts, tx.Method, tx.Args...)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to submit %s on %s: %w", tx.Method, conn.cfg.Name, err)
	}

	s.client.logger.Info("Transaction submitted",
		zap.String("chain", conn.cfg.Name),
		zap.String("method", tx.Method),
		zap.String("tx_hash", signed.Hash().Hex()),
		zap.Uint64("nonce", signed.Nonce()))

	return signed.Hash(), nil
}

// WaitForReceipt polls for the receipt of hash until it appears or timeout elapses.
func (s *Session) WaitForReceipt(ctx context.Context, chainID uint64, hash common.Hash, timeout time.Duration) (*types.Receipt, error) {
	conn, err := s.client.conn(chainID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(s.client.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := conn.backend.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, geth.NotFound) && ctx.Err() == nil {
			s.client.logger.Warn("Receipt lookup failed, retrying",
				zap.String("chain", conn.cfg.Name),
				zap.String("tx_hash", hash.Hex()),
				zap.Error(err))
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return nil, fmt.Errorf("%w: %s after %s", ErrReceiptTimeout, hash.Hex(), timeout)
			}
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
