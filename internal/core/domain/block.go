package domain

// AssetAmountRecord is the shape of one amount inside a ledger block.
type AssetAmountRecord struct {
	Amount uint64 `json:"amount"`
	Type   string `json:"type"`
}

// AssetPairRecord is the shape of a pair of amounts inside a ledger block.
type AssetPairRecord struct {
	First  AssetAmountRecord `json:"first"`
	Second AssetAmountRecord `json:"second"`
}

// TransactionRecord is the checkpoint of a transaction's terms and totals as
// persisted in a ledger block. The payment sequence is deliberately not part
// of it: a block is a checkpoint, not a replay log.
type TransactionRecord struct {
	TraderId           string          `json:"trader_id"`
	TransactionNumber  uint32          `json:"transaction_number"`
	OrderNumber        uint32          `json:"order_number"`
	PartnerTraderId    string          `json:"partner_trader_id"`
	PartnerOrderNumber uint32          `json:"partner_order_number"`
	PaymentComplete    bool            `json:"payment_complete"`
	Status             string          `json:"status"`
	Assets             AssetPairRecord `json:"assets"`
	Transferred        AssetPairRecord `json:"transferred"`
	Timestamp          float64         `json:"timestamp"`
}

// BlockRecord is the envelope a ledger block carries a transaction
// checkpoint in.
type BlockRecord struct {
	Tx TransactionRecord `json:"tx"`
}

// ToBlockRecord produces the checkpoint of the transaction's current terms
// and totals, suitable for handing to the ledger collaborator. It has no
// side effects.
func (t *Transaction) ToBlockRecord() *BlockRecord {
	return &BlockRecord{Tx: TransactionRecord{
		TraderId:           t.TransactionId.TraderId.String(),
		TransactionNumber:  uint32(t.TransactionId.TransactionNumber),
		OrderNumber:        uint32(t.OrderId.OrderNumber),
		PartnerTraderId:    t.PartnerOrderId.TraderId.String(),
		PartnerOrderNumber: uint32(t.PartnerOrderId.OrderNumber),
		PaymentComplete:    t.IsPaymentComplete(),
		Status:             t.Status().String(),
		Assets: AssetPairRecord{
			First:  AssetAmountRecord{Amount: t.Assets.First.Amount, Type: t.Assets.First.AssetType},
			Second: AssetAmountRecord{Amount: t.Assets.Second.Amount, Type: t.Assets.Second.AssetType},
		},
		Transferred: AssetPairRecord{
			First:  AssetAmountRecord{Amount: t.TransferredAssets.First.Amount, Type: t.TransferredAssets.First.AssetType},
			Second: AssetAmountRecord{Amount: t.TransferredAssets.Second.Amount, Type: t.TransferredAssets.Second.AssetType},
		},
		Timestamp: float64(t.Timestamp),
	}}
}

// TransactionFromBlock reconstructs a transaction from a previously
// persisted ledger block. This is a checkpoint restore, not a log replay:
// the transferred totals come back exact but the payment sequence comes back
// empty, so the length of Payments must not be taken as real history after
// reconstruction. The trader's order shares the trader id of the block and
// its recorded order number.
func TransactionFromBlock(block *BlockRecord) (*Transaction, error) {
	if block == nil || block.Tx.Assets.First.Type == "" || block.Tx.Assets.Second.Type == "" {
		return nil, ErrMalformedBlock
	}
	tx := block.Tx

	traderId := TraderId(tx.TraderId)
	partnerTraderId := TraderId(tx.PartnerTraderId)

	transaction := NewTransaction(
		NewTransactionId(traderId, TransactionNumber(tx.TransactionNumber)),
		AssetPair{
			First:  AssetAmount{Amount: tx.Assets.First.Amount, AssetType: tx.Assets.First.Type},
			Second: AssetAmount{Amount: tx.Assets.Second.Amount, AssetType: tx.Assets.Second.Type},
		},
		NewOrderId(traderId, OrderNumber(tx.OrderNumber)),
		NewOrderId(partnerTraderId, OrderNumber(tx.PartnerOrderNumber)),
		Timestamp(tx.Timestamp),
	)
	transaction.TransferredAssets = AssetPair{
		First:  AssetAmount{Amount: tx.Transferred.First.Amount, AssetType: tx.Transferred.First.Type},
		Second: AssetAmount{Amount: tx.Transferred.Second.Amount, AssetType: tx.Transferred.Second.Type},
	}
	return transaction, nil
}
