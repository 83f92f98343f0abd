package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/chainsafe/card-bridge/internal/metrics"
	apperrors "github.com/chainsafe/card-bridge/pkg/app/errors"
	"github.com/chainsafe/card-bridge/pkg/bridge"
	"github.com/chainsafe/card-bridge/pkg/ethereum"
	"github.com/chainsafe/card-bridge/pkg/ethereum/contracts"
)

const (
	balanceRefreshTimeout = 30 * time.Second
	weiDecimals           = 18
)

// attempt carries the per-call state of one transfer. It never outlives Transfer
// except for the post-completion balance refresh.
type attempt struct {
	req      bridge.TransferRequest
	src, dst bridge.Chain
	wallet   ethereum.Wallet
	sink     bridge.StatusSink
	result   *bridge.Result
}

// Transfer runs NetworkCheck, Approving (when the source token needs an allowance),
// Quoting, Sending and Confirming strictly in order. Every transition is emitted
// to sink. A failed attempt is never resumed; the caller starts over.
func (s *bridgeService) Transfer(ctx context.Context, req bridge.TransferRequest, sink bridge.StatusSink) (*bridge.Result, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.BadRequestError(err, err.Error())
	}
	if sink == nil {
		sink = bridge.SinkFunc(func(bridge.StatusEvent) {})
	}

	src, dst := s.chains.Route(req.Direction)
	a := &attempt{
		req:    req,
		src:    src,
		dst:    dst,
		wallet: s.newWallet(),
		sink:   sink,
		result: &bridge.Result{State: bridge.StateIdle},
	}

	start := time.Now()
	err := s.run(ctx, a)
	direction := string(req.Direction)
	metrics.TransferDuration.WithLabelValues(direction).Observe(time.Since(start).Seconds())

	if err != nil {
		reason := bridge.ReasonOf(err)
		metrics.TransfersTotal.WithLabelValues(direction, string(bridge.StateFailed), string(reason)).Inc()
		a.result.State = bridge.StateFailed
		s.emit(a, bridge.StatusEvent{
			State:       bridge.StateFailed,
			Message:     failureMessage(err, a),
			TxHash:      a.result.TxHash,
			ExplorerURL: a.result.ExplorerURL,
			Reason:      reason,
		})
		return a.result, toServiceError(err)
	}

	amount, _ := req.Amount.Float64()
	metrics.TransferAmount.WithLabelValues(direction).Observe(amount)
	metrics.TransfersTotal.WithLabelValues(direction, string(bridge.StateCompleted), "").Inc()
	return a.result, nil
}

func (s *bridgeService) run(ctx context.Context, a *attempt) error {
	s.transition(a, bridge.StateNetworkCheck, fmt.Sprintf("Checking wallet is on %s", a.src.Name))
	if err := s.ensureNetwork(ctx, a); err != nil {
		return err
	}

	if a.src.RequiresApproval {
		s.transition(a, bridge.StateApproving, fmt.Sprintf("Checking %s token allowance", a.src.Name))
		approval, err := s.EnsureAllowance(ctx, a.wallet, a.src, a.wallet.Address(), a.src.OFT, a.src.ToBaseUnits(a.req.Amount))
		if err != nil {
			return err
		}
		a.result.Approval = approval
	}

	s.transition(a, bridge.StateQuoting, "Getting bridge quote")
	q, err := s.quote(ctx, a.wallet, a.req)
	if err != nil {
		return err
	}
	a.result.NativeFee = q.NativeFee.String()

	s.transition(a, bridge.StateSending, fmt.Sprintf("Sending %s from %s to %s", a.req.Amount, a.src.Name, a.dst.Name))
	hash, err := s.send(ctx, a, q)
	if err != nil {
		return err
	}
	a.result.TxHash = hash.Hex()
	a.result.ExplorerURL = s.explorerLink(hash)

	s.emit(a, bridge.StatusEvent{
		State:       bridge.StateConfirming,
		Message:     "Waiting for confirmation",
		TxHash:      a.result.TxHash,
		ExplorerURL: a.result.ExplorerURL,
	})
	a.result.State = bridge.StateConfirming
	if err := s.confirm(ctx, a, hash); err != nil {
		return err
	}

	a.result.State = bridge.StateCompleted
	s.emit(a, bridge.StatusEvent{
		State:       bridge.StateCompleted,
		Message:     fmt.Sprintf("Transfer submitted. Track delivery to %s on the explorer", a.dst.Name),
		TxHash:      a.result.TxHash,
		ExplorerURL: a.result.ExplorerURL,
	})
	s.refreshBalancesLater(ctx, a)
	return nil
}

func (s *bridgeService) ensureNetwork(ctx context.Context, a *attempt) error {
	active, err := a.wallet.ActiveChain(ctx)
	if err != nil {
		return bridge.NewError(bridge.ErrNetworkMismatch, bridge.ReasonNetworkMismatch, err)
	}
	if active == a.src.ChainID {
		return nil
	}

	s.logger.Info("Switching wallet network",
		zap.Uint64("from", active),
		zap.Uint64("to", a.src.ChainID))

	if err := a.wallet.SwitchChain(ctx, a.src.ChainID); err != nil {
		if ethereum.IsUserRejected(err) {
			return bridge.NewError(bridge.ErrUserRejected, bridge.ReasonUserRejected, err)
		}
		return bridge.NewError(bridge.ErrNetworkMismatch, bridge.ReasonNetworkMismatch, err)
	}

	if err := sleep(ctx, s.settings.NetworkSwitchDelay); err != nil {
		return bridge.NewError(bridge.ErrNetworkMismatch, bridge.ReasonTimeout, err)
	}

	active, err = a.wallet.ActiveChain(ctx)
	if err != nil {
		return bridge.NewError(bridge.ErrNetworkMismatch, bridge.ReasonNetworkMismatch, err)
	}
	if active != a.src.ChainID {
		return bridge.NewError(bridge.ErrNetworkMismatch, bridge.ReasonNetworkMismatch,
			fmt.Errorf("wallet still on chain %d after switching to %d", active, a.src.ChainID))
	}
	return nil
}

// send submits the transfer with exactly the parameters the quote was computed for.
func (s *bridgeService) send(ctx context.Context, a *attempt, q *bridge.Quote) (common.Hash, error) {
	hash, err := a.wallet.WriteContract(ctx, ethereum.ContractTx{
		ContractCall: ethereum.ContractCall{
			ChainID: a.src.ChainID,
			Address: a.src.OFT,
			ABI:     s.oft,
			Method:  contracts.MethodSend,
			Args:    []any{q.Params, q.Fee(), a.wallet.Address()},
		},
		Value: q.NativeFee,
	})
	if err == nil {
		return hash, nil
	}

	switch {
	case ethereum.IsUserRejected(err):
		return common.Hash{}, bridge.NewError(bridge.ErrUserRejected, bridge.ReasonUserRejected, err)
	case ethereum.IsInsufficientFunds(err):
		return common.Hash{}, bridge.NewError(bridge.ErrSendFailed, bridge.ReasonInsufficientFunds,
			fmt.Errorf("%w: bridge fee is %s native plus gas: %w",
				bridge.ErrInsufficientFunds, decimal.NewFromBigInt(q.NativeFee, -weiDecimals), err))
	default:
		return common.Hash{}, bridge.NewError(bridge.ErrSendFailed, submitReason(err), err)
	}
}

// confirm only reports success for a mined receipt with successful status.
// The wait gets the full ConfirmTimeout regardless of how much of the request
// deadline earlier steps used, since the transaction is already submitted.
func (s *bridgeService) confirm(ctx context.Context, a *attempt, hash common.Hash) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.settings.ConfirmTimeout)
	defer cancel()

	receipt, err := a.wallet.WaitForReceipt(ctx, a.src.ChainID, hash, s.settings.ConfirmTimeout)
	if err != nil {
		if errors.Is(err, ethereum.ErrReceiptTimeout) || errors.Is(err, context.DeadlineExceeded) {
			return bridge.NewError(bridge.ErrConfirmTimeout, bridge.ReasonTimeout, err)
		}
		return bridge.NewError(bridge.ErrConfirmTimeout, submitReason(err), err)
	}
	if receipt == nil || receipt.Status != types.ReceiptStatusSuccessful {
		return bridge.NewError(bridge.ErrTransferReverted, bridge.ReasonReverted,
			fmt.Errorf("transaction %s reverted", hash.Hex()))
	}
	return nil
}

// refreshBalancesLater re-reads balances once chain state has had time to settle.
// It may race with a manual refresh; whichever read lands last wins.
func (s *bridgeService) refreshBalancesLater(ctx context.Context, a *attempt) {
	ctx = context.WithoutCancel(ctx)
	go func() {
		if err := sleep(ctx, s.settings.BalanceRefreshDelay); err != nil {
			return
		}
		ctx, cancel := context.WithTimeout(ctx, balanceRefreshTimeout)
		defer cancel()

		balances := s.readBalances(ctx, a.wallet, a.wallet.Address(), a.src, a.dst)
		s.emit(a, bridge.StatusEvent{
			State:    bridge.StateBalances,
			Message:  "Balances updated",
			Balances: balances,
		})
	}()
}

func (s *bridgeService) transition(a *attempt, state bridge.State, message string) {
	a.result.State = state
	s.emit(a, bridge.StatusEvent{State: state, Message: message})
}

func (s *bridgeService) emit(a *attempt, event bridge.StatusEvent) {
	event.At = s.now()
	a.sink.Emit(event)
}

func failureMessage(err error, a *attempt) string {
	switch {
	case errors.Is(err, bridge.ErrUserRejected):
		return "You rejected the request in your wallet"
	case errors.Is(err, bridge.ErrInsufficientFunds):
		if a.result.NativeFee != "" {
			return fmt.Sprintf("Insufficient funds: the bridge fee is %s wei plus gas", a.result.NativeFee)
		}
		return "Insufficient funds to pay for gas"
	case errors.Is(err, bridge.ErrNetworkMismatch):
		return fmt.Sprintf("Please switch your wallet to %s and try again", a.src.Name)
	case errors.Is(err, bridge.ErrApprovalFailed):
		return "Token approval failed"
	case errors.Is(err, bridge.ErrQuoteFailed):
		return "Failed to get bridge quote"
	case errors.Is(err, bridge.ErrConfirmTimeout):
		return "Timed out waiting for confirmation. The transfer may still complete, check the explorer"
	case errors.Is(err, bridge.ErrTransferReverted):
		return "Bridge transaction reverted"
	}

	switch bridge.ReasonOf(err) {
	case bridge.ReasonContractExecution:
		return "Bridge contract rejected the transaction"
	case bridge.ReasonNetwork:
		return "Network error while sending the transaction, please try again"
	case bridge.ReasonTimeout:
		return "The request timed out, please try again"
	default:
		return "Bridge transaction failed"
	}
}

// toServiceError maps the transfer taxonomy onto API error categories.
func toServiceError(err error) error {
	var svcErr *apperrors.ServiceError
	if errors.As(err, &svcErr) {
		return err
	}
	switch {
	case errors.Is(err, bridge.ErrUserRejected):
		return apperrors.ForbiddenError(err, "request rejected by wallet")
	case errors.Is(err, bridge.ErrInsufficientFunds):
		return apperrors.BadRequestError(err, "insufficient funds")
	case errors.Is(err, bridge.ErrNetworkMismatch):
		return apperrors.DependencyError(err, "wallet is on the wrong network")
	case errors.Is(err, bridge.ErrApprovalFailed):
		return apperrors.DependencyError(err, "token approval failed")
	case errors.Is(err, bridge.ErrQuoteFailed):
		return apperrors.DependencyError(err, "failed to get bridge quote")
	case errors.Is(err, bridge.ErrConfirmTimeout):
		return apperrors.TimeoutError(err, "timed out waiting for confirmation")
	case errors.Is(err, bridge.ErrTransferReverted):
		return apperrors.DependencyError(err, "bridge transaction reverted")
	case bridge.ReasonOf(err) == bridge.ReasonTimeout:
		return apperrors.TimeoutError(err, "bridge transaction timed out")
	default:
		return apperrors.DependencyError(err, "bridge transaction failed")
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
