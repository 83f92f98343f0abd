package contracts

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestABIsParse(t *testing.T) {
	erc20, err := ERC20ABI()
	if err != nil {
		t.Fatalf("ERC20ABI() failed: %v", err)
	}
	for _, m := range []string{MethodAllowance, MethodApprove, MethodBalanceOf, MethodDecimals} {
		if _, ok := erc20.Methods[m]; !ok {
			t.Fatalf("ERC20 ABI missing %s", m)
		}
	}

	oft, err := OFTABI()
	if err != nil {
		t.Fatalf("OFTABI() failed: %v", err)
	}
	if !oft.Methods[MethodSend].IsPayable() {
		t.Fatalf("send must be payable")
	}
}

func TestQuoteSendRoundTrip(t *testing.T) {
	oft, err := OFTABI()
	if err != nil {
		t.Fatalf("OFTABI() failed: %v", err)
	}

	param := SendParam{
		DstEid:       30101,
		To:           AddressToBytes32(common.HexToAddress("0x52908400098527886E0F7030069857D2E4169EE7")),
		AmountLD:     big.NewInt(100),
		MinAmountLD:  big.NewInt(95),
		ExtraOptions: []byte{},
		ComposeMsg:   []byte{},
		OftCmd:       []byte{},
	}
	if _, err = oft.Pack(MethodQuoteSend, param, false); err != nil {
		t.Fatalf("Pack(quoteSend) failed: %v", err)
	}

	encodedFee, err := oft.Methods[MethodQuoteSend].Outputs.Pack(MessagingFee{NativeFee: big.NewInt(7), LzTokenFee: big.NewInt(0)})
	if err != nil {
		t.Fatalf("Outputs.Pack failed: %v", err)
	}
	out, err := oft.Unpack(MethodQuoteSend, encodedFee)
	if err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}
	fee, err := UnpackMessagingFee(out)
	if err != nil {
		t.Fatalf("UnpackMessagingFee failed: %v", err)
	}
	if fee.NativeFee.Int64() != 7 {
		t.Fatalf("expected native fee 7, got %s", fee.NativeFee)
	}
}

func TestAddressToBytes32(t *testing.T) {
	addr := common.HexToAddress("0x00000000000000000000000000000000000000ff")
	got := AddressToBytes32(addr)
	if got[31] != 0xff {
		t.Fatalf("expected last byte 0xff, got %x", got[31])
	}
	for i := 0; i < 12; i++ {
		if got[i] != 0 {
			t.Fatalf("expected zero padding at %d", i)
		}
	}
}

func TestUnpackHelpers(t *testing.T) {
	if _, err := UnpackUint256(nil); err != ErrEmptyOutput {
		t.Fatalf("expected ErrEmptyOutput, got %v", err)
	}
	v, err := UnpackUint256([]any{big.NewInt(42)})
	if err != nil || v.Int64() != 42 {
		t.Fatalf("UnpackUint256() = %v, %v", v, err)
	}
	d, err := UnpackUint8([]any{uint8(6)})
	if err != nil || d != 6 {
		t.Fatalf("UnpackUint8() = %v, %v", d, err)
	}
}
