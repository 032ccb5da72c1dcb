package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marketnet/marketd/internal/core/domain"
)

func newBtcMbPair() domain.AssetPair {
	return domain.NewAssetPair(
		domain.NewAssetAmount(100, "BTC"), domain.NewAssetAmount(100, "MB"),
	)
}

func newTestTransaction() *domain.Transaction {
	return domain.NewTransaction(
		domain.NewTransactionId("0", 1),
		newBtcMbPair(),
		domain.NewOrderId("0", 2),
		domain.NewOrderId("2", 1),
		domain.Timestamp(0),
	)
}

func newTestPayment(amount domain.AssetAmount, success bool) domain.Payment {
	return domain.NewPayment(
		"0", domain.NewTransactionId("2", 2), amount,
		"a", "b", "aaa", domain.Timestamp(4), success,
	)
}

func TestTransactionFromProposedTrade(t *testing.T) {
	trade := domain.ProposeTrade(
		"0",
		domain.NewOrderId("0", 2),
		domain.NewOrderId("1", 3),
		newBtcMbPair(),
		domain.Timestamp(0),
	)

	transactionId := domain.NewTransactionId("1", 1)
	transaction := domain.TransactionFromProposedTrade(trade, transactionId)

	require.Equal(t, transactionId, transaction.TransactionId)
	require.Equal(t, trade.Assets, transaction.Assets)
	require.Equal(t, trade.RecipientOrderId, transaction.OrderId)
	require.Equal(t, trade.OrderId, transaction.PartnerOrderId)
	require.Equal(t, trade.Timestamp, transaction.Timestamp)
	require.True(t, transaction.TransferredAssets.Equal(trade.Assets.Zero()))
	require.Empty(t, transaction.Payments)
}

func TestTradeProposalIds(t *testing.T) {
	pair := newBtcMbPair()
	first := domain.ProposeTrade(
		"0", domain.NewOrderId("0", 1), domain.NewOrderId("1", 1), pair, domain.Timestamp(0),
	)
	second := domain.ProposeTrade(
		"0", domain.NewOrderId("0", 1), domain.NewOrderId("1", 1), pair, domain.Timestamp(0),
	)

	require.NotZero(t, first.ProposalId)
	require.Greater(t, second.ProposalId, first.ProposalId)
	require.Equal(t, "1", first.Price())
}

func TestTransactionAddPayment(t *testing.T) {
	transaction := newTestTransaction()

	err := transaction.AddPayment(
		newTestPayment(domain.NewAssetAmount(3, "MB"), true),
	)
	require.NoError(t, err)

	require.EqualValues(t, 0, transaction.TransferredAssets.First.Amount)
	require.EqualValues(t, 3, transaction.TransferredAssets.Second.Amount)
	require.NotEmpty(t, transaction.Payments)
}

func TestFailingTransactionAddPayment(t *testing.T) {
	transaction := newTestTransaction()

	err := transaction.AddPayment(
		newTestPayment(domain.NewAssetAmount(3, "EUR"), true),
	)
	require.ErrorIs(t, err, domain.ErrAssetMismatch)
	// failed call must not have mutated anything
	require.Empty(t, transaction.Payments)
	require.True(t, transaction.TransferredAssets.Equal(transaction.Assets.Zero()))
}

func TestTransactionAddPaymentOverflow(t *testing.T) {
	transaction := newTestTransaction()

	// a huge over-payment is still recorded faithfully
	err := transaction.AddPayment(
		newTestPayment(domain.NewAssetAmount(math.MaxUint64, "MB"), true),
	)
	require.NoError(t, err)
	require.EqualValues(t, uint64(math.MaxUint64), transaction.TransferredAssets.Second.Amount)

	// but totals never wrap: the next payment on that leg is rejected intact
	err = transaction.AddPayment(
		newTestPayment(domain.NewAssetAmount(1, "MB"), true),
	)
	require.ErrorIs(t, err, domain.ErrAmountOverflow)
	require.EqualValues(t, uint64(math.MaxUint64), transaction.TransferredAssets.Second.Amount)
	require.Len(t, transaction.Payments, 1)
}

func TestTransactionNextPayment(t *testing.T) {
	transaction := newTestTransaction()

	owedFirst, err := transaction.NextPayment(true)
	require.NoError(t, err)
	require.Equal(t, domain.NewAssetAmount(100, "BTC"), owedFirst)

	owedSecond, err := transaction.NextPayment(false)
	require.NoError(t, err)
	require.Equal(t, domain.NewAssetAmount(100, "MB"), owedSecond)

	err = transaction.AddPayment(
		newTestPayment(domain.NewAssetAmount(3, "MB"), true),
	)
	require.NoError(t, err)

	owedSecond, err = transaction.NextPayment(false)
	require.NoError(t, err)
	require.Equal(t, domain.NewAssetAmount(97, "MB"), owedSecond)

	owedFirst, err = transaction.NextPayment(true)
	require.NoError(t, err)
	require.Equal(t, domain.NewAssetAmount(100, "BTC"), owedFirst)
}

func TestTransactionIsPaymentComplete(t *testing.T) {
	transaction := newTestTransaction()
	require.False(t, transaction.IsPaymentComplete())

	err := transaction.AddPayment(
		newTestPayment(domain.NewAssetAmount(3, "MB"), true),
	)
	require.NoError(t, err)
	require.False(t, transaction.IsPaymentComplete())

	require.NoError(t, transaction.AddPayment(
		newTestPayment(domain.NewAssetAmount(100, "BTC"), true),
	))
	require.NoError(t, transaction.AddPayment(
		newTestPayment(domain.NewAssetAmount(97, "MB"), true),
	))
	require.True(t, transaction.IsPaymentComplete())
	require.Equal(t, domain.StatusComplete, transaction.Status())
}

func TestTransactionStatus(t *testing.T) {
	transaction := newTestTransaction()
	require.Equal(t, domain.StatusPending, transaction.Status())
	require.Equal(t, "pending", transaction.Status().String())

	err := transaction.AddPayment(
		newTestPayment(domain.NewAssetAmount(3, "MB"), false),
	)
	require.NoError(t, err)
	require.Equal(t, domain.StatusError, transaction.Status())

	// error is sticky: reaching full totals afterwards must not override it
	require.NoError(t, transaction.AddPayment(
		newTestPayment(domain.NewAssetAmount(100, "BTC"), true),
	))
	require.NoError(t, transaction.AddPayment(
		newTestPayment(domain.NewAssetAmount(97, "MB"), true),
	))
	require.True(t, transaction.IsPaymentComplete())
	require.Equal(t, domain.StatusError, transaction.Status())
	require.Equal(t, "error", transaction.Status().String())
}

func TestTransactionToBlockRecord(t *testing.T) {
	transaction := newTestTransaction()

	require.Equal(t, &domain.BlockRecord{Tx: domain.TransactionRecord{
		TraderId:           "0",
		TransactionNumber:  1,
		OrderNumber:        2,
		PartnerTraderId:    "2",
		PartnerOrderNumber: 1,
		PaymentComplete:    false,
		Status:             "pending",
		Assets: domain.AssetPairRecord{
			First:  domain.AssetAmountRecord{Amount: 100, Type: "BTC"},
			Second: domain.AssetAmountRecord{Amount: 100, Type: "MB"},
		},
		Transferred: domain.AssetPairRecord{
			First:  domain.AssetAmountRecord{Amount: 0, Type: "BTC"},
			Second: domain.AssetAmountRecord{Amount: 0, Type: "MB"},
		},
		Timestamp: 0,
	}}, transaction.ToBlockRecord())
}

func TestTransactionFromBlock(t *testing.T) {
	block := &domain.BlockRecord{Tx: domain.TransactionRecord{
		TraderId:           "0000000000000000000000000000000000000000",
		TransactionNumber:  1,
		OrderNumber:        1,
		PartnerTraderId:    "1111111111111111111111111111111111111111",
		PartnerOrderNumber: 1,
		PaymentComplete:    false,
		Status:             "pending",
		Assets: domain.AssetPairRecord{
			First:  domain.AssetAmountRecord{Amount: 30, Type: "BTC"},
			Second: domain.AssetAmountRecord{Amount: 30, Type: "MB"},
		},
		Transferred: domain.AssetPairRecord{
			First:  domain.AssetAmountRecord{Amount: 10, Type: "BTC"},
			Second: domain.AssetAmountRecord{Amount: 0, Type: "MB"},
		},
		Timestamp: 0,
	}}

	transaction, err := domain.TransactionFromBlock(block)
	require.NoError(t, err)

	require.Equal(t, block.Tx.TraderId, transaction.TransactionId.TraderId.String())
	require.EqualValues(t, block.Tx.TransactionNumber, transaction.TransactionId.TransactionNumber)
	require.Equal(t, block.Tx.TraderId, transaction.OrderId.TraderId.String())
	require.EqualValues(t, block.Tx.OrderNumber, transaction.OrderId.OrderNumber)
	require.Equal(t, block.Tx.PartnerTraderId, transaction.PartnerOrderId.TraderId.String())
	require.EqualValues(t, block.Tx.PartnerOrderNumber, transaction.PartnerOrderId.OrderNumber)
	require.EqualValues(t, block.Tx.Timestamp, transaction.Timestamp)
	require.Equal(t, domain.NewAssetAmount(30, "BTC"), transaction.Assets.First)
	require.Equal(t, domain.NewAssetAmount(30, "MB"), transaction.Assets.Second)
	require.Equal(t, domain.NewAssetAmount(10, "BTC"), transaction.TransferredAssets.First)
	require.Equal(t, domain.NewAssetAmount(0, "MB"), transaction.TransferredAssets.Second)

	// blocks are checkpoints, not replay logs: history does not survive
	require.Empty(t, transaction.Payments)
}

func TestTransactionBlockRoundTrip(t *testing.T) {
	transaction := newTestTransaction()
	require.NoError(t, transaction.AddPayment(
		newTestPayment(domain.NewAssetAmount(3, "MB"), true),
	))

	restored, err := domain.TransactionFromBlock(transaction.ToBlockRecord())
	require.NoError(t, err)

	require.Equal(t, transaction.TransactionId, restored.TransactionId)
	require.Equal(t, transaction.Assets, restored.Assets)
	require.Equal(t, transaction.TransferredAssets, restored.TransferredAssets)
	require.Equal(t, transaction.PartnerOrderId, restored.PartnerOrderId)
	require.Equal(t, transaction.Timestamp, restored.Timestamp)
	require.Empty(t, restored.Payments)
}

func TestFailingTransactionFromBlock(t *testing.T) {
	_, err := domain.TransactionFromBlock(nil)
	require.ErrorIs(t, err, domain.ErrMalformedBlock)

	_, err = domain.TransactionFromBlock(&domain.BlockRecord{})
	require.ErrorIs(t, err, domain.ErrMalformedBlock)
}
