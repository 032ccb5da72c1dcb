package domain

// TransactionStatus is the closed set of states a transaction can report.
type TransactionStatus int

const (
	// StatusPending means no payment failed and the totals are still below
	// the agreed assets.
	StatusPending TransactionStatus = iota
	// StatusComplete means both legs are fully transferred.
	StatusComplete
	// StatusError means at least one recorded payment failed. Error is
	// sticky: it dominates completion even if later payments succeed and
	// the totals reach the agreed assets.
	StatusError
)

func (s TransactionStatus) String() string {
	switch s {
	case StatusComplete:
		return "complete"
	case StatusError:
		return "error"
	default:
		return "pending"
	}
}

// Transaction tracks the execution of one accepted trade: the agreed asset
// pair, how much of each leg has actually moved, and the full sequence of
// reported payments. It is the unit of ownership for one in-progress swap;
// mutating access must be serialized by the owning protocol layer.
type Transaction struct {
	TransactionId     TransactionId
	Assets            AssetPair
	TransferredAssets AssetPair
	OrderId           OrderId
	PartnerOrderId    OrderId
	Timestamp         Timestamp
	Payments          []Payment
}

// NewTransaction returns a transaction with the given identity and terms and
// zero transferred assets.
func NewTransaction(
	transactionId TransactionId, assets AssetPair,
	orderId, partnerOrderId OrderId, timestamp Timestamp,
) *Transaction {
	return &Transaction{
		TransactionId:     transactionId,
		Assets:            assets,
		TransferredAssets: assets.Zero(),
		OrderId:           orderId,
		PartnerOrderId:    partnerOrderId,
		Timestamp:         timestamp,
	}
}

// TransactionFromProposedTrade returns the transaction settling an accepted
// trade proposal under the given freshly minted id. The recipient order of
// the proposal is the accepting trader's own side.
func TransactionFromProposedTrade(trade *Trade, transactionId TransactionId) *Transaction {
	return NewTransaction(
		transactionId, trade.Assets,
		trade.RecipientOrderId, trade.OrderId, trade.Timestamp,
	)
}

// AddPayment appends the payment to the audit trail and adds its amount to
// the matching leg of the transferred totals. It fails with ErrAssetMismatch,
// before any mutation, if the payment's asset type matches neither leg.
//
// No over-payment check happens here: a counterparty reporting more than it
// owes must still be recorded faithfully for audit. Whether to clamp or
// reject such payments is the caller's policy. The one hard limit is
// representability: an amount that would overflow the leg total fails with
// ErrAmountOverflow, again before any mutation.
func (t *Transaction) AddPayment(payment Payment) error {
	switch payment.TransferredAssets.AssetType {
	case t.TransferredAssets.First.AssetType:
		total, err := t.TransferredAssets.First.Add(payment.TransferredAssets)
		if err != nil {
			return err
		}
		t.TransferredAssets.First = total
	case t.TransferredAssets.Second.AssetType:
		total, err := t.TransferredAssets.Second.Add(payment.TransferredAssets)
		if err != nil {
			return err
		}
		t.TransferredAssets.Second = total
	default:
		return ErrAssetMismatch
	}

	t.Payments = append(t.Payments, payment)
	return nil
}

// NextPayment returns the amount still owed on the requested leg, ie. the
// agreed amount minus what has been transferred so far.
func (t *Transaction) NextPayment(forFirstLeg bool) (AssetAmount, error) {
	if forFirstLeg {
		return t.Assets.First.Sub(t.TransferredAssets.First)
	}
	return t.Assets.Second.Sub(t.TransferredAssets.Second)
}

// IsPaymentComplete returns whether both legs are fully transferred. This is
// a pure quantity check; unlike Status it ignores failed payments.
func (t *Transaction) IsPaymentComplete() bool {
	return t.TransferredAssets.Equal(t.Assets)
}

// Status derives the current state from the recorded payments and totals.
// It is recomputed on every read, never cached.
func (t *Transaction) Status() TransactionStatus {
	for _, payment := range t.Payments {
		if !payment.Success {
			return StatusError
		}
	}
	if t.IsPaymentComplete() {
		return StatusComplete
	}
	return StatusPending
}
