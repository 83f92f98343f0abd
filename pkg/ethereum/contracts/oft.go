package contracts

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// OFTMetaData contains the LayerZero OFT send/quote ABI.
var OFTMetaData = &bind.MetaData{
	ABI: "[{\"type\":\"function\",\"name\":\"quoteSend\",\"inputs\":[{\"name\":\"_sendParam\",\"type\":\"tuple\",\"internalType\":\"structSendParam\",\"components\":[{\"name\":\"dstEid\",\"type\":\"uint32\",\"internalType\":\"uint32\"},{\"name\":\"to\",\"type\":\"bytes32\",\"internalType\":\"bytes32\"},{\"name\":\"amountLD\",\"type\":\"uint256\",\"internalType\":\"uint256\"},{\"name\":\"minAmountLD\",\"type\":\"uint256\",\"internalType\":\"uint256\"},{\"name\":\"extraOptions\",\"type\":\"bytes\",\"internalType\":\"bytes\"},{\"name\":\"composeMsg\",\"type\":\"bytes\",\"internalType\":\"bytes\"},{\"name\":\"oftCmd\",\"type\":\"bytes\",\"internalType\":\"bytes\"}]},{\"name\":\"_payInLzToken\",\"type\":\"bool\",\"internalType\":\"bool\"}],\"outputs\":[{\"name\":\"msgFee\",\"type\":\"tuple\",\"internalType\":\"structMessagingFee\",\"components\":[{\"name\":\"nativeFee\",\"type\":\"uint256\",\"internalType\":\"uint256\"},{\"name\":\"lzTokenFee\",\"type\":\"uint256\",\"internalType\":\"uint256\"}]}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"send\",\"inputs\":[{\"name\":\"_sendParam\",\"type\":\"tuple\",\"internalType\":\"structSendParam\",\"components\":[{\"name\":\"dstEid\",\"type\":\"uint32\",\"internalType\":\"uint32\"},{\"name\":\"to\",\"type\":\"bytes32\",\"internalType\":\"bytes32\"},{\"name\":\"amountLD\",\"type\":\"uint256\",\"internalType\":\"uint256\"},{\"name\":\"minAmountLD\",\"type\":\"uint256\",\"internalType\":\"uint256\"},{\"name\":\"extraOptions\",\"type\":\"bytes\",\"internalType\":\"bytes\"},{\"name\":\"composeMsg\",\"type\":\"bytes\",\"internalType\":\"bytes\"},{\"name\":\"oftCmd\",\"type\":\"bytes\",\"internalType\":\"bytes\"}]},{\"name\":\"_fee\",\"type\":\"tuple\",\"internalType\":\"structMessagingFee\",\"components\":[{\"name\":\"nativeFee\",\"type\":\"uint256\",\"internalType\":\"uint256\"},{\"name\":\"lzTokenFee\",\"type\":\"uint256\",\"internalType\":\"uint256\"}]},{\"name\":\"_refundAddress\",\"type\":\"address\",\"internalType\":\"address\"}],\"outputs\":[{\"name\":\"msgReceipt\",\"type\":\"tuple\",\"internalType\":\"structMessagingReceipt\",\"components\":[{\"name\":\"guid\",\"type\":\"bytes32\",\"internalType\":\"bytes32\"},{\"name\":\"nonce\",\"type\":\"uint64\",\"internalType\":\"uint64\"},{\"name\":\"fee\",\"type\":\"tuple\",\"internalType\":\"structMessagingFee\",\"components\":[{\"name\":\"nativeFee\",\"type\":\"uint256\",\"internalType\":\"uint256\"},{\"name\":\"lzTokenFee\",\"type\":\"uint256\",\"internalType\":\"uint256\"}]}]},{\"name\":\"oftReceipt\",\"type\":\"tuple\",\"internalType\":\"structOFTReceipt\",\"components\":[{\"name\":\"amountSentLD\",\"type\":\"uint256\",\"internalType\":\"uint256\"},{\"name\":\"amountReceivedLD\",\"type\":\"uint256\",\"internalType\":\"uint256\"}]}],\"stateMutability\":\"payable\"}]",
}

// OFT method names
const (
	MethodQuoteSend = "quoteSend"
	MethodSend      = "send"
)

// SendParam is an auto generated low-level Go binding around an user-defined struct.
type SendParam struct {
	DstEid       uint32
	To           [32]byte
	AmountLD     *big.Int
	MinAmountLD  *big.Int
	ExtraOptions []byte
	ComposeMsg   []byte
	OftCmd       []byte
}

// MessagingFee is an auto generated low-level Go binding around an user-defined struct.
type MessagingFee struct {
	NativeFee  *big.Int
	LzTokenFee *big.Int
}

// OFTABI returns the parsed OFT ABI.
func OFTABI() (*abi.ABI, error) {
	return OFTMetaData.GetAbi()
}

// AddressToBytes32 left-pads an EVM address to the 32-byte recipient encoding used by OFT.
func AddressToBytes32(addr common.Address) [32]byte {
	var out [32]byte
	copy(out[12:], addr.Bytes())
	return out
}

// UnpackMessagingFee converts the quoteSend output.
func UnpackMessagingFee(out []any) (MessagingFee, error) {
	if len(out) == 0 {
		return MessagingFee{}, ErrEmptyOutput
	}
	fee, ok := abi.ConvertType(out[0], new(MessagingFee)).(*MessagingFee)
	if !ok || fee.NativeFee == nil {
		return MessagingFee{}, fmt.Errorf("unexpected quoteSend output %T", out[0])
	}
	if fee.LzTokenFee == nil {
		fee.LzTokenFee = new(big.Int)
	}
	return *fee, nil
}
