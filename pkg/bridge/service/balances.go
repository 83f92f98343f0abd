package service

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/chainsafe/card-bridge/internal/metrics"
	apperrors "github.com/chainsafe/card-bridge/pkg/app/errors"
	"github.com/chainsafe/card-bridge/pkg/bridge"
	"github.com/chainsafe/card-bridge/pkg/ethereum"
	"github.com/chainsafe/card-bridge/pkg/ethereum/contracts"
)

// Balances never fails because of a single chain: an unreadable side reads as
// zero and is reported in Warnings.
func (s *bridgeService) Balances(ctx context.Context, account common.Address, direction bridge.Direction) (*bridge.Balances, error) {
	if !direction.Valid() {
		return nil, apperrors.BadRequestError(nil, fmt.Sprintf("unknown direction %q", direction))
	}
	src, dst := s.chains.Route(direction)
	return s.readBalances(ctx, s.newWallet(), account, src, dst), nil
}

func (s *bridgeService) readBalances(ctx context.Context, w ethereum.Wallet, account common.Address, src, dst bridge.Chain) *bridge.Balances {
	var (
		balances = &bridge.Balances{Source: decimal.Zero, Dest: decimal.Zero}
		warnings [2]string
		g        errgroup.Group
	)

	read := func(chain bridge.Chain, into *decimal.Decimal, warning *string) func() error {
		return func() error {
			v, err := s.balanceOf(ctx, w, chain, account)
			if err != nil {
				metrics.BalanceReadErrors.WithLabelValues(chain.Name).Inc()
				s.logger.Warn("Balance read failed",
					zap.String("chain", chain.Name),
					zap.String("account", account.Hex()),
					zap.Error(err))
				*warning = fmt.Sprintf("could not read %s balance", chain.Name)
				return nil
			}
			*into = v
			return nil
		}
	}

	g.Go(read(src, &balances.Source, &warnings[0]))
	g.Go(read(dst, &balances.Dest, &warnings[1]))
	_ = g.Wait()

	for _, warning := range warnings {
		if warning != "" {
			balances.Warnings = append(balances.Warnings, warning)
		}
	}
	return balances
}

func (s *bridgeService) balanceOf(ctx context.Context, w ethereum.Wallet, chain bridge.Chain, account common.Address) (decimal.Decimal, error) {
	out, err := w.ReadContract(ctx, ethereum.ContractCall{
		ChainID: chain.ChainID,
		Address: chain.Token,
		ABI:     s.erc20,
		Method:  contracts.MethodBalanceOf,
		Args:    []any{account},
	})
	if err != nil {
		return decimal.Zero, err
	}
	raw, err := contracts.UnpackUint256(out)
	if err != nil {
		return decimal.Zero, err
	}
	return chain.FromBaseUnits(raw), nil
}
