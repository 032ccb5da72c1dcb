package domain

import "sync/atomic"

// proposalSequence backs the monotonic proposal ids stamped on outgoing
// trade proposals. Correlation only needs uniqueness within this trader's
// process lifetime.
var proposalSequence uint64

// Trade is a proposal to exchange an asset pair between two named orders.
// It is a message, not an aggregate: created once by the proposing side and
// never mutated.
type Trade struct {
	TraderId         TraderId
	OrderId          OrderId
	RecipientOrderId OrderId
	ProposalId       uint64
	Assets           AssetPair
	Timestamp        Timestamp
}

// ProposeTrade returns a new proposal by the given trader to exchange the
// given assets between its own order and the recipient's one. A fresh
// proposal id is stamped so that later accept, reject or counter messages
// can be correlated back to this proposal.
func ProposeTrade(
	traderId TraderId, orderId, recipientOrderId OrderId,
	assets AssetPair, timestamp Timestamp,
) *Trade {
	return &Trade{
		TraderId:         traderId,
		OrderId:          orderId,
		RecipientOrderId: recipientOrderId,
		ProposalId:       atomic.AddUint64(&proposalSequence, 1),
		Assets:           assets,
		Timestamp:        timestamp,
	}
}

// Price returns the implied quote of the proposed pair, second asset per
// unit of the first.
func (t *Trade) Price() string {
	return t.Assets.Price()
}
