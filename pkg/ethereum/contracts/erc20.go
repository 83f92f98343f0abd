package contracts

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
)

// ERC20MetaData contains the subset of the ERC20 ABI the bridge touches.
var ERC20MetaData = &bind.MetaData{
	ABI: "[{\"type\":\"function\",\"name\":\"allowance\",\"inputs\":[{\"name\":\"owner\",\"type\":\"address\",\"internalType\":\"address\"},{\"name\":\"spender\",\"type\":\"address\",\"internalType\":\"address\"}],\"outputs\":[{\"name\":\"\",\"type\":\"uint256\",\"internalType\":\"uint256\"}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"approve\",\"inputs\":[{\"name\":\"spender\",\"type\":\"address\",\"internalType\":\"address\"},{\"name\":\"value\",\"type\":\"uint256\",\"internalType\":\"uint256\"}],\"outputs\":[{\"name\":\"\",\"type\":\"bool\",\"internalType\":\"bool\"}],\"stateMutability\":\"nonpayable\"},{\"type\":\"function\",\"name\":\"balanceOf\",\"inputs\":[{\"name\":\"account\",\"type\":\"address\",\"internalType\":\"address\"}],\"outputs\":[{\"name\":\"\",\"type\":\"uint256\",\"internalType\":\"uint256\"}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"decimals\",\"inputs\":[],\"outputs\":[{\"name\":\"\",\"type\":\"uint8\",\"internalType\":\"uint8\"}],\"stateMutability\":\"view\"}]",
}

// ERC20 method names
const (
	MethodAllowance = "allowance"
	MethodApprove   = "approve"
	MethodBalanceOf = "balanceOf"
	MethodDecimals  = "decimals"
)

// ErrEmptyOutput is returned when a call produced no return values.
var ErrEmptyOutput = errors.New("contract call returned no values")

// ERC20ABI returns the parsed ERC20 ABI.
func ERC20ABI() (*abi.ABI, error) {
	return ERC20MetaData.GetAbi()
}

// UnpackUint256 converts the single uint256 output of a call.
func UnpackUint256(out []any) (*big.Int, error) {
	if len(out) == 0 {
		return nil, ErrEmptyOutput
	}
	v, ok := abi.ConvertType(out[0], new(*big.Int)).(**big.Int)
	if !ok || *v == nil {
		return nil, fmt.Errorf("unexpected uint256 output %T", out[0])
	}
	return *v, nil
}

// UnpackUint8 converts the single uint8 output of a call.
func UnpackUint8(out []any) (uint8, error) {
	if len(out) == 0 {
		return 0, ErrEmptyOutput
	}
	v, ok := abi.ConvertType(out[0], new(uint8)).(*uint8)
	if !ok {
		return 0, fmt.Errorf("unexpected uint8 output %T", out[0])
	}
	return *v, nil
}
