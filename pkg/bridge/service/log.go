package service

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/card-bridge/pkg/bridge"
	"github.com/chainsafe/card-bridge/pkg/ethereum"
)

const serviceName = "BridgeService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the bridge Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// Balances wraps the service method with logging
func (ls *logService) Balances(ctx context.Context, account common.Address, direction bridge.Direction) (res *bridge.Balances, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.String("method", "Balances"),
			zap.String("account", account.Hex()),
			zap.String("direction", string(direction)),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			ls.logger.Error("Balances failed", append(fields, zap.Error(err))...)
			return
		}
		if len(res.Warnings) > 0 {
			ls.logger.Warn("Balances partially read", append(fields, zap.Strings("warnings", res.Warnings))...)
			return
		}
		ls.logger.Debug("Balances completed", fields...)
	}()

	return ls.svc.Balances(ctx, account, direction)
}

// EnsureAllowance wraps the service method with logging
func (ls *logService) EnsureAllowance(
	ctx context.Context,
	w ethereum.Wallet,
	chain bridge.Chain,
	owner, spender common.Address,
	amount *big.Int,
) (res bridge.AllowanceResult, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.String("method", "EnsureAllowance"),
			zap.String("chain", chain.Name),
			zap.String("owner", owner.Hex()),
			zap.String("spender", spender.Hex()),
			zap.String("amount", amount.String()),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			ls.logger.Error("EnsureAllowance failed", append(fields, zap.Error(err))...)
			return
		}
		ls.logger.Info("EnsureAllowance completed", append(fields, zap.String("result", string(res)))...)
	}()

	return ls.svc.EnsureAllowance(ctx, w, chain, owner, spender, amount)
}

// Quote wraps the service method with logging
func (ls *logService) Quote(ctx context.Context, req bridge.TransferRequest) (q *bridge.Quote, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.String("method", "Quote"),
			zap.String("direction", string(req.Direction)),
			zap.String("amount", req.Amount.String()),
			zap.String("recipient", req.Recipient.Hex()),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			ls.logger.Error("Quote failed", append(fields, zap.Error(err))...)
			return
		}
		ls.logger.Info("Quote completed", append(fields, zap.String("native_fee", q.NativeFee.String()))...)
	}()

	return ls.svc.Quote(ctx, req)
}

// Transfer wraps the service method with logging
func (ls *logService) Transfer(ctx context.Context, req bridge.TransferRequest, sink bridge.StatusSink) (res *bridge.Result, err error) {
	start := time.Now()

	ls.logger.Info("Transfer started",
		zap.String("service", serviceName),
		zap.String("method", "Transfer"),
		zap.String("direction", string(req.Direction)),
		zap.String("amount", req.Amount.String()),
		zap.String("recipient", req.Recipient.Hex()),
	)

	defer func() {
		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.String("method", "Transfer"),
			zap.Duration("duration", time.Since(start)),
		}
		if res != nil {
			fields = append(fields, zap.String("state", string(res.State)), zap.String("tx_hash", res.TxHash))
		}
		if err != nil {
			ls.logger.Error("Transfer failed", append(fields, zap.String("reason", string(bridge.ReasonOf(err))), zap.Error(err))...)
			return
		}
		ls.logger.Info("Transfer completed", fields...)
	}()

	return ls.svc.Transfer(ctx, req, sink)
}
