package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AssetPair couples the two quantities exchanged in a transaction: First is
// given away in exchange for Second, from the proposer's perspective. The
// type signature of a pair is fixed at creation; the core never swaps or
// retags the legs.
type AssetPair struct {
	First  AssetAmount
	Second AssetAmount
}

// NewAssetPair returns a pair of the two given amounts.
func NewAssetPair(first, second AssetAmount) AssetPair {
	return AssetPair{First: first, Second: second}
}

// Zero returns a pair with the same type signature and both quantities at
// zero. Used to initialize the transferred totals of a fresh transaction.
func (p AssetPair) Zero() AssetPair {
	return AssetPair{
		First:  AssetAmount{Amount: 0, AssetType: p.First.AssetType},
		Second: AssetAmount{Amount: 0, AssetType: p.Second.AssetType},
	}
}

// Equal returns whether both legs match structurally.
func (p AssetPair) Equal(other AssetPair) bool {
	return p == other
}

// Price returns the implied quote of the pair, ie. how much of the second
// asset is exchanged per unit of the first, truncated to 8 decimal places.
func (p AssetPair) Price() string {
	if p.First.Amount == 0 {
		return "0"
	}
	return decimal.NewFromInt(int64(p.Second.Amount)).Div(
		decimal.NewFromInt(int64(p.First.Amount)),
	).Truncate(8).String()
}

func (p AssetPair) String() string {
	return fmt.Sprintf("%s/%s", p.First, p.Second)
}
