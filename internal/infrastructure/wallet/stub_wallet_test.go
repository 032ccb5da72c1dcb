package wallet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marketnet/marketd/internal/core/domain"
)

func TestStubWallet(t *testing.T) {
	ctx := context.Background()
	walletSvc := NewStubWallet("own-address")

	address, err := walletSvc.Address(ctx, "BTC")
	require.NoError(t, err)
	require.Equal(t, domain.WalletAddress("own-address/BTC"), address)

	report, err := walletSvc.Transfer(
		ctx, domain.NewAssetAmount(3, "MB"), "partner-address",
	)
	require.NoError(t, err)
	require.True(t, report.Success)
	require.Equal(t, domain.NewAssetAmount(3, "MB"), report.Amount)
	require.Equal(t, domain.WalletAddress("partner-address"), report.Destination)
	require.NotEmpty(t, report.PaymentId)
	// the source address is resolved through Address by the caller
	require.Empty(t, report.Source)
}
