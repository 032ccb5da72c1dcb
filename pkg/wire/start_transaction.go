// Package wire defines the network-facing messages of the market protocol
// and their codec. The core defines field identity, order and semantic type;
// byte-level framing is delegated to msgpack array encoding, which preserves
// the tuple order.
package wire

import (
	"fmt"

	"github.com/vmihailenco/msgpack"

	"github.com/marketnet/marketd/internal/core/domain"
)

// StartTransaction is the message that initiates (or re-initiates) the
// execution of an accepted trade with the counterparty. ProposalId carries
// the correlation id of the original trade proposal so the recipient can
// match this message against the proposal it holds.
type StartTransaction struct {
	TraderId         domain.TraderId
	TransactionId    domain.TransactionId
	OrderId          domain.OrderId
	RecipientOrderId domain.OrderId
	ProposalId       uint64
	Assets           domain.AssetPair
	Timestamp        domain.Timestamp
}

// StartTransactionData is any decoded incoming message exposing the fields
// of a start-transaction tuple.
type StartTransactionData interface {
	GetTraderId() domain.TraderId
	GetTransactionId() domain.TransactionId
	GetOrderId() domain.OrderId
	GetRecipientOrderId() domain.OrderId
	GetProposalId() uint64
	GetAssets() domain.AssetPair
	GetTimestamp() domain.Timestamp
}

// NewStartTransaction returns the initiation message for the given
// transaction terms.
func NewStartTransaction(
	traderId domain.TraderId, transactionId domain.TransactionId,
	orderId, recipientOrderId domain.OrderId, proposalId uint64,
	assets domain.AssetPair, timestamp domain.Timestamp,
) *StartTransaction {
	return &StartTransaction{
		TraderId:         traderId,
		TransactionId:    transactionId,
		OrderId:          orderId,
		RecipientOrderId: recipientOrderId,
		ProposalId:       proposalId,
		Assets:           assets,
		Timestamp:        timestamp,
	}
}

// StartTransactionFromNetwork reconstructs the message from a decoded
// incoming payload. No validation happens here: malformed numeric or
// identifier fields are expected to have already failed during lower-level
// decoding.
func StartTransactionFromNetwork(data StartTransactionData) *StartTransaction {
	return &StartTransaction{
		TraderId:         data.GetTraderId(),
		TransactionId:    data.GetTransactionId(),
		OrderId:          data.GetOrderId(),
		RecipientOrderId: data.GetRecipientOrderId(),
		ProposalId:       data.GetProposalId(),
		Assets:           data.GetAssets(),
		Timestamp:        data.GetTimestamp(),
	}
}

// ToNetwork serializes the message to the ordered field tuple used as the
// wire payload.
func (m *StartTransaction) ToNetwork() []interface{} {
	return []interface{}{
		m.TraderId,
		m.TransactionId,
		m.OrderId,
		m.RecipientOrderId,
		m.ProposalId,
		m.Assets,
		m.Timestamp,
	}
}

// GetTraderId implements StartTransactionData.
func (m *StartTransaction) GetTraderId() domain.TraderId { return m.TraderId }

// GetTransactionId implements StartTransactionData.
func (m *StartTransaction) GetTransactionId() domain.TransactionId { return m.TransactionId }

// GetOrderId implements StartTransactionData.
func (m *StartTransaction) GetOrderId() domain.OrderId { return m.OrderId }

// GetRecipientOrderId implements StartTransactionData.
func (m *StartTransaction) GetRecipientOrderId() domain.OrderId { return m.RecipientOrderId }

// GetProposalId implements StartTransactionData.
func (m *StartTransaction) GetProposalId() uint64 { return m.ProposalId }

// GetAssets implements StartTransactionData.
func (m *StartTransaction) GetAssets() domain.AssetPair { return m.Assets }

// GetTimestamp implements StartTransactionData.
func (m *StartTransaction) GetTimestamp() domain.Timestamp { return m.Timestamp }

// startTransactionTuple is the flattened wire layout. Encoded as a msgpack
// array, so field order on the wire matches declaration order.
type startTransactionTuple struct {
	_msgpack struct{} `msgpack:",asArray"`

	TraderId            string
	TransactionTraderId string
	TransactionNumber   uint32
	OrderTraderId       string
	OrderNumber         uint32
	RecipientTraderId   string
	RecipientNumber     uint32
	ProposalId          uint64
	FirstAmount         uint64
	FirstType           string
	SecondAmount        uint64
	SecondType          string
	Timestamp           float64
}

// Pack frames the message for transport.
func (m *StartTransaction) Pack() ([]byte, error) {
	return msgpack.Marshal(&startTransactionTuple{
		TraderId:            m.TraderId.String(),
		TransactionTraderId: m.TransactionId.TraderId.String(),
		TransactionNumber:   uint32(m.TransactionId.TransactionNumber),
		OrderTraderId:       m.OrderId.TraderId.String(),
		OrderNumber:         uint32(m.OrderId.OrderNumber),
		RecipientTraderId:   m.RecipientOrderId.TraderId.String(),
		RecipientNumber:     uint32(m.RecipientOrderId.OrderNumber),
		ProposalId:          m.ProposalId,
		FirstAmount:         m.Assets.First.Amount,
		FirstType:           m.Assets.First.AssetType,
		SecondAmount:        m.Assets.Second.Amount,
		SecondType:          m.Assets.Second.AssetType,
		Timestamp:           float64(m.Timestamp),
	})
}

// Unpack decodes a framed message produced by Pack.
func Unpack(payload []byte) (*StartTransaction, error) {
	tuple := &startTransactionTuple{}
	if err := msgpack.Unmarshal(payload, tuple); err != nil {
		return nil, fmt.Errorf("unpacking start transaction: %w", err)
	}

	return &StartTransaction{
		TraderId: domain.TraderId(tuple.TraderId),
		TransactionId: domain.NewTransactionId(
			domain.TraderId(tuple.TransactionTraderId),
			domain.TransactionNumber(tuple.TransactionNumber),
		),
		OrderId: domain.NewOrderId(
			domain.TraderId(tuple.OrderTraderId),
			domain.OrderNumber(tuple.OrderNumber),
		),
		RecipientOrderId: domain.NewOrderId(
			domain.TraderId(tuple.RecipientTraderId),
			domain.OrderNumber(tuple.RecipientNumber),
		),
		ProposalId: tuple.ProposalId,
		Assets: domain.NewAssetPair(
			domain.NewAssetAmount(tuple.FirstAmount, tuple.FirstType),
			domain.NewAssetAmount(tuple.SecondAmount, tuple.SecondType),
		),
		Timestamp: domain.Timestamp(tuple.Timestamp),
	}, nil
}
