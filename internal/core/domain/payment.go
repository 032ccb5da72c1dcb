package domain

// WalletAddress is the address of a wallet as reported by the wallet layer.
type WalletAddress string

// PaymentId is the opaque identifier a wallet assigns to a transfer attempt.
type PaymentId string

// Payment records one unidirectional transfer attempt within a transaction,
// as reported by the wallet layer. It is immutable history: a failed attempt
// keeps Success false forever, it is never corrected in place. Whether the
// transfer really happened is the wallet's responsibility; the core only
// bookkeeps what was reported.
type Payment struct {
	TraderId          TraderId
	TransactionId     TransactionId
	TransferredAssets AssetAmount
	AddressFrom       WalletAddress
	AddressTo         WalletAddress
	PaymentId         PaymentId
	Timestamp         Timestamp
	Success           bool
}

// NewPayment returns the record of a transfer attempt of the given amount
// from the given sender, targeting the given transaction.
func NewPayment(
	traderId TraderId, transactionId TransactionId, amount AssetAmount,
	addressFrom, addressTo WalletAddress, paymentId PaymentId,
	timestamp Timestamp, success bool,
) Payment {
	return Payment{
		TraderId:          traderId,
		TransactionId:     transactionId,
		TransferredAssets: amount,
		AddressFrom:       addressFrom,
		AddressTo:         addressTo,
		PaymentId:         paymentId,
		Timestamp:         timestamp,
		Success:           success,
	}
}
