package service

import (
	"context"
	"math/big"

	apperrors "github.com/chainsafe/card-bridge/pkg/app/errors"
	"github.com/chainsafe/card-bridge/pkg/bridge"
	"github.com/chainsafe/card-bridge/pkg/ethereum"
	"github.com/chainsafe/card-bridge/pkg/ethereum/contracts"
)

func (s *bridgeService) Quote(ctx context.Context, req bridge.TransferRequest) (*bridge.Quote, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.BadRequestError(err, err.Error())
	}
	q, err := s.quote(ctx, s.newWallet(), req)
	if err != nil {
		return nil, toServiceError(err)
	}
	return q, nil
}

// quote derives the send parameters from req and asks the source OFT for the fee.
// minAmountLD is always computed from this request's amount.
func (s *bridgeService) quote(ctx context.Context, w ethereum.Wallet, req bridge.TransferRequest) (*bridge.Quote, error) {
	src, dst := s.chains.Route(req.Direction)

	amountLD := src.ToBaseUnits(req.Amount)
	if amountLD.Sign() <= 0 {
		return nil, apperrors.BadRequestError(nil, "amount is below token precision")
	}

	params := contracts.SendParam{
		DstEid:       dst.EndpointID,
		To:           contracts.AddressToBytes32(req.Recipient),
		AmountLD:     amountLD,
		MinAmountLD:  s.minAmount(amountLD),
		ExtraOptions: []byte{},
		ComposeMsg:   []byte{},
		OftCmd:       []byte{},
	}

	out, err := w.ReadContract(ctx, ethereum.ContractCall{
		ChainID: src.ChainID,
		Address: src.OFT,
		ABI:     s.oft,
		Method:  contracts.MethodQuoteSend,
		Args:    []any{params, false},
	})
	if err != nil {
		return nil, bridge.NewError(bridge.ErrQuoteFailed, bridge.ReasonQuoteFailed, err)
	}
	fee, err := contracts.UnpackMessagingFee(out)
	if err != nil {
		return nil, bridge.NewError(bridge.ErrQuoteFailed, bridge.ReasonQuoteFailed, err)
	}

	return &bridge.Quote{
		Request:    req,
		NativeFee:  fee.NativeFee,
		LzTokenFee: fee.LzTokenFee,
		Params:     params,
	}, nil
}

func (s *bridgeService) minAmount(amountLD *big.Int) *big.Int {
	v := new(big.Int).Mul(amountLD, big.NewInt(bpsDenominator-slippageBps))
	return v.Quo(v, big.NewInt(bpsDenominator))
}
