package ports

import (
	"context"

	"github.com/marketnet/marketd/internal/core/domain"
)

// PaymentReport is what a wallet reports back after attempting a transfer.
// The core wraps reports into domain.Payments without second-guessing them.
type PaymentReport struct {
	Amount      domain.AssetAmount
	Success     bool
	Source      domain.WalletAddress
	Destination domain.WalletAddress
	PaymentId   domain.PaymentId
}

// Wallet is the collaborator that actually moves funds. Implementations may
// talk to any payment backend; the core only consumes their reports.
type Wallet interface {
	// Address returns the wallet's receiving address for the given asset
	// type.
	Address(ctx context.Context, assetType string) (domain.WalletAddress, error)
	// Transfer attempts to move the given amount to the destination address
	// and reports the outcome. A failed attempt is a report with Success
	// false, not an error; errors are reserved for the wallet being
	// unreachable.
	Transfer(
		ctx context.Context, amount domain.AssetAmount,
		destination domain.WalletAddress,
	) (*PaymentReport, error)
}
