package domain

import (
	"fmt"
	"math"
)

// AssetAmount is an immutable quantity tagged with the type of asset it
// counts. Arithmetic between two amounts is defined only when their asset
// types match.
type AssetAmount struct {
	Amount    uint64
	AssetType string
}

// NewAssetAmount returns an amount of the given asset type.
func NewAssetAmount(amount uint64, assetType string) AssetAmount {
	return AssetAmount{Amount: amount, AssetType: assetType}
}

// Add returns the sum of the two amounts. It fails with ErrAssetMismatch if
// the asset types differ and with ErrAmountOverflow if the sum does not fit
// in a uint64.
func (a AssetAmount) Add(other AssetAmount) (AssetAmount, error) {
	if a.AssetType != other.AssetType {
		return AssetAmount{}, ErrAssetMismatch
	}
	if a.Amount > math.MaxUint64-other.Amount {
		return AssetAmount{}, ErrAmountOverflow
	}
	return AssetAmount{Amount: a.Amount + other.Amount, AssetType: a.AssetType}, nil
}

// Sub returns the difference of the two amounts. It fails with
// ErrAssetMismatch if the asset types differ and with ErrNegativeAmount if
// the result would drop below zero.
func (a AssetAmount) Sub(other AssetAmount) (AssetAmount, error) {
	if a.AssetType != other.AssetType {
		return AssetAmount{}, ErrAssetMismatch
	}
	if other.Amount > a.Amount {
		return AssetAmount{}, ErrNegativeAmount
	}
	return AssetAmount{Amount: a.Amount - other.Amount, AssetType: a.AssetType}, nil
}

// Cmp compares the two amounts, returning -1, 0 or 1, or ErrAssetMismatch if
// the asset types differ.
func (a AssetAmount) Cmp(other AssetAmount) (int, error) {
	if a.AssetType != other.AssetType {
		return 0, ErrAssetMismatch
	}
	switch {
	case a.Amount < other.Amount:
		return -1, nil
	case a.Amount > other.Amount:
		return 1, nil
	default:
		return 0, nil
	}
}

// Equal returns whether both quantity and asset type match.
func (a AssetAmount) Equal(other AssetAmount) bool {
	return a == other
}

func (a AssetAmount) String() string {
	return fmt.Sprintf("%d %s", a.Amount, a.AssetType)
}
