// Package wallet provides a stub implementation of the ports.Wallet
// collaborator, used by the daemon in standalone mode and by tests. It moves
// no real funds; every transfer is reported as succeeded.
package wallet

import (
	"context"
	"fmt"

	"github.com/thanhpk/randstr"

	"github.com/marketnet/marketd/internal/core/domain"
	"github.com/marketnet/marketd/internal/core/ports"
)

type stubWallet struct {
	ownAddress domain.WalletAddress
}

// NewStubWallet returns a wallet reporting success for every transfer,
// stamping fresh payment ids.
func NewStubWallet(ownAddress domain.WalletAddress) ports.Wallet {
	return &stubWallet{ownAddress: ownAddress}
}

func (w *stubWallet) Address(
	_ context.Context, assetType string,
) (domain.WalletAddress, error) {
	return domain.WalletAddress(
		fmt.Sprintf("%s/%s", w.ownAddress, assetType),
	), nil
}

func (w *stubWallet) Transfer(
	_ context.Context, amount domain.AssetAmount,
	destination domain.WalletAddress,
) (*ports.PaymentReport, error) {
	return &ports.PaymentReport{
		Amount:      amount,
		Success:     true,
		Destination: destination,
		PaymentId:   domain.PaymentId(randstr.Hex(8)),
	}, nil
}
