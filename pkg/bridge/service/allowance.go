package service

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/chainsafe/card-bridge/internal/metrics"
	"github.com/chainsafe/card-bridge/pkg/bridge"
	"github.com/chainsafe/card-bridge/pkg/ethereum"
	"github.com/chainsafe/card-bridge/pkg/ethereum/contracts"
)

// EnsureAllowance approves exactly amount when the current allowance is lower
// and blocks until the approval is mined. A raised allowance is left in place
// even if the transfer that needed it is later abandoned.
func (s *bridgeService) EnsureAllowance(
	ctx context.Context,
	w ethereum.Wallet,
	chain bridge.Chain,
	owner, spender common.Address,
	amount *big.Int,
) (bridge.AllowanceResult, error) {
	out, err := w.ReadContract(ctx, ethereum.ContractCall{
		ChainID: chain.ChainID,
		Address: chain.Token,
		ABI:     s.erc20,
		Method:  contracts.MethodAllowance,
		Args:    []any{owner, spender},
	})
	if err != nil {
		return "", bridge.NewError(bridge.ErrApprovalFailed, submitReason(err), fmt.Errorf("failed to read allowance: %w", err))
	}
	current, err := contracts.UnpackUint256(out)
	if err != nil {
		return "", bridge.NewError(bridge.ErrApprovalFailed, bridge.ReasonContractExecution, err)
	}

	if current.Cmp(amount) >= 0 {
		metrics.ApprovalsTotal.WithLabelValues(chain.Name, string(bridge.AllowanceSufficient)).Inc()
		return bridge.AllowanceSufficient, nil
	}

	s.logger.Info("Raising allowance",
		zap.String("chain", chain.Name),
		zap.String("owner", owner.Hex()),
		zap.String("spender", spender.Hex()),
		zap.String("current", current.String()),
		zap.String("amount", amount.String()))

	hash, err := w.WriteContract(ctx, ethereum.ContractTx{
		ContractCall: ethereum.ContractCall{
			ChainID: chain.ChainID,
			Address: chain.Token,
			ABI:     s.erc20,
			Method:  contracts.MethodApprove,
			Args:    []any{spender, amount},
		},
	})
	if err != nil {
		metrics.ApprovalsTotal.WithLabelValues(chain.Name, "failed").Inc()
		switch {
		case ethereum.IsUserRejected(err):
			return "", bridge.NewError(bridge.ErrUserRejected, bridge.ReasonUserRejected, err)
		case ethereum.IsInsufficientFunds(err):
			return "", bridge.NewError(bridge.ErrInsufficientFunds, bridge.ReasonInsufficientFunds, err)
		default:
			return "", bridge.NewError(bridge.ErrApprovalFailed, submitReason(err), err)
		}
	}

	receipt, err := w.WaitForReceipt(ctx, chain.ChainID, hash, s.settings.ApprovalTimeout)
	if err != nil {
		metrics.ApprovalsTotal.WithLabelValues(chain.Name, "failed").Inc()
		return "", bridge.NewError(bridge.ErrApprovalFailed, submitReason(err), err)
	}
	if receipt == nil || receipt.Status != types.ReceiptStatusSuccessful {
		metrics.ApprovalsTotal.WithLabelValues(chain.Name, "reverted").Inc()
		return "", bridge.NewError(bridge.ErrApprovalFailed, bridge.ReasonApprovalFailed,
			fmt.Errorf("approval %s reverted", hash.Hex()))
	}

	metrics.ApprovalsTotal.WithLabelValues(chain.Name, string(bridge.AllowanceApproved)).Inc()
	return bridge.AllowanceApproved, nil
}

// submitReason classifies a chain error that is neither a rejection nor a funding problem.
func submitReason(err error) bridge.Reason {
	switch {
	case ethereum.IsTimeout(err):
		return bridge.ReasonTimeout
	case ethereum.IsExecutionReverted(err):
		return bridge.ReasonContractExecution
	case ethereum.IsNetworkError(err):
		return bridge.ReasonNetwork
	default:
		return bridge.ReasonUnknown
	}
}
